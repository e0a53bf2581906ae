package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	clientuc "ispdesk/internal/application/client/usecases"
	"ispdesk/internal/shared/logger"
	"ispdesk/internal/shared/utils"
)

type ClientHandler struct {
	createClientUC clientuc.CreateClientExecutor
	getClientUC    clientuc.GetClientExecutor
	listClientsUC  clientuc.ListClientsExecutor
	updateStatusUC clientuc.UpdateClientStatusExecutor
	logger         logger.Interface
}

func NewClientHandler(
	createClientUC clientuc.CreateClientExecutor,
	getClientUC clientuc.GetClientExecutor,
	listClientsUC clientuc.ListClientsExecutor,
	updateStatusUC clientuc.UpdateClientStatusExecutor,
	logger logger.Interface,
) *ClientHandler {
	return &ClientHandler{
		createClientUC: createClientUC,
		getClientUC:    getClientUC,
		listClientsUC:  listClientsUC,
		updateStatusUC: updateStatusUC,
		logger:         logger,
	}
}

// CreateClient handles POST /api/v1/clients
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var cmd clientuc.CreateClientCommand
	if err := bindJSON(c, &cmd); err != nil {
		h.logger.Warnw("invalid request body for create client", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createClientUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Client created successfully")
}

// ListClients handles GET /api/v1/clients?search=
func (h *ClientHandler) ListClients(c *gin.Context) {
	result, err := h.listClientsUC.Execute(c.Request.Context(), clientuc.ListClientsQuery{Search: listQuery(c)})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	respondList(c, result)
}

// GetClient handles GET /api/v1/clients/:id
func (h *ClientHandler) GetClient(c *gin.Context) {
	result, err := h.getClientUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateClientStatus handles PATCH /api/v1/clients/:id/status
func (h *ClientHandler) UpdateClientStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := bindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update client status", "client_id", c.Param("id"), "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := clientuc.UpdateClientStatusCommand{
		ClientID: c.Param("id"),
		Status:   req.Status,
	}

	result, err := h.updateStatusUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Client status updated successfully", result)
}
