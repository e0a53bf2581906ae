package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	technicianuc "ispdesk/internal/application/technician/usecases"
	"ispdesk/internal/shared/logger"
	"ispdesk/internal/shared/utils"
)

type TechnicianHandler struct {
	createTechnicianUC technicianuc.CreateTechnicianExecutor
	listTechniciansUC  technicianuc.ListTechniciansExecutor
	updateStatusUC     technicianuc.UpdateTechnicianStatusExecutor
	logger             logger.Interface
}

func NewTechnicianHandler(
	createTechnicianUC technicianuc.CreateTechnicianExecutor,
	listTechniciansUC technicianuc.ListTechniciansExecutor,
	updateStatusUC technicianuc.UpdateTechnicianStatusExecutor,
	logger logger.Interface,
) *TechnicianHandler {
	return &TechnicianHandler{
		createTechnicianUC: createTechnicianUC,
		listTechniciansUC:  listTechniciansUC,
		updateStatusUC:     updateStatusUC,
		logger:             logger,
	}
}

func (h *TechnicianHandler) CreateTechnician(c *gin.Context) {
	var cmd technicianuc.CreateTechnicianCommand
	if err := bindJSON(c, &cmd); err != nil {
		h.logger.Warnw("invalid request body for create technician", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createTechnicianUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Technician created successfully")
}

func (h *TechnicianHandler) ListTechnicians(c *gin.Context) {
	result, err := h.listTechniciansUC.Execute(c.Request.Context(), technicianuc.ListTechniciansQuery{Search: listQuery(c)})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	respondList(c, result)
}

func (h *TechnicianHandler) UpdateTechnicianStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := bindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update technician status", "technician_id", c.Param("id"), "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := technicianuc.UpdateTechnicianStatusCommand{
		TechnicianID: c.Param("id"),
		Status:       req.Status,
	}

	result, err := h.updateStatusUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Technician status updated successfully", result)
}
