package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	clientuc "ispdesk/internal/application/client/usecases"
	planuc "ispdesk/internal/application/plan/usecases"
	technicianuc "ispdesk/internal/application/technician/usecases"
	"ispdesk/internal/shared/logger"
	"ispdesk/internal/shared/utils"
)

// ReferenceHandler serves the selector data used by the create dialogs. Every
// call reads the current rows; nothing is cached.
type ReferenceHandler struct {
	listPlanOptionsUC   planuc.ListPlanOptionsExecutor
	listClientOptionsUC clientuc.ListClientOptionsExecutor
	listTechniciansUC   technicianuc.ListAvailableTechniciansExecutor
	logger              logger.Interface
}

func NewReferenceHandler(
	listPlanOptionsUC planuc.ListPlanOptionsExecutor,
	listClientOptionsUC clientuc.ListClientOptionsExecutor,
	listTechniciansUC technicianuc.ListAvailableTechniciansExecutor,
	logger logger.Interface,
) *ReferenceHandler {
	return &ReferenceHandler{
		listPlanOptionsUC:   listPlanOptionsUC,
		listClientOptionsUC: listClientOptionsUC,
		listTechniciansUC:   listTechniciansUC,
		logger:              logger,
	}
}

// ListPlans handles GET /api/v1/reference/plans
func (h *ReferenceHandler) ListPlans(c *gin.Context) {
	result, err := h.listPlanOptionsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListClients handles GET /api/v1/reference/clients
func (h *ReferenceHandler) ListClients(c *gin.Context) {
	result, err := h.listClientOptionsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTechnicians handles GET /api/v1/reference/technicians
func (h *ReferenceHandler) ListTechnicians(c *gin.Context) {
	result, err := h.listTechniciansUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
