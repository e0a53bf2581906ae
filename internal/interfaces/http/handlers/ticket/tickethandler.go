package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ispdesk/internal/application/ticket/usecases"
	"ispdesk/internal/shared/errors"
	"ispdesk/internal/shared/logger"
	"ispdesk/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC     usecases.CreateTicketExecutor
	listTicketsUC      usecases.ListTicketsExecutor
	getTicketUC        usecases.GetTicketExecutor
	updateStatusUC     usecases.UpdateTicketStatusExecutor
	assignTechnicianUC usecases.AssignTechnicianExecutor
	addCommentUC       usecases.AddCommentExecutor
	listCommentsUC     usecases.ListCommentsExecutor
	logger             logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	getTicketUC usecases.GetTicketExecutor,
	updateStatusUC usecases.UpdateTicketStatusExecutor,
	assignTechnicianUC usecases.AssignTechnicianExecutor,
	addCommentUC usecases.AddCommentExecutor,
	listCommentsUC usecases.ListCommentsExecutor,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:     createTicketUC,
		listTicketsUC:      listTicketsUC,
		getTicketUC:        getTicketUC,
		updateStatusUC:     updateStatusUC,
		assignTechnicianUC: assignTechnicianUC,
		addCommentUC:       addCommentUC,
		listCommentsUC:     listCommentsUC,
		logger:             logger,
	}
}

// CreateTicket handles POST /api/v1/tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var cmd usecases.CreateTicketCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, invalidBody(err))
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// ListTickets handles GET /api/v1/tickets?search=
func (h *TicketHandler) ListTickets(c *gin.Context) {
	result, err := h.listTicketsUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{Search: c.Query("search")})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Count, result.Search)
}

// GetTicket handles GET /api/v1/tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	result, err := h.getTicketUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateTicketStatus handles PATCH /api/v1/tickets/:id/status
func (h *TicketHandler) UpdateTicketStatus(c *gin.Context) {
	ticketID := c.Param("id")

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket status", "ticket_id", ticketID, "error", err)
		utils.ErrorResponseWithError(c, invalidBody(err))
		return
	}

	cmd := usecases.UpdateTicketStatusCommand{
		TicketID: ticketID,
		Status:   req.Status,
	}

	result, err := h.updateStatusUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket status updated successfully", result)
}

// AssignTechnician handles PATCH /api/v1/tickets/:id/technician
func (h *TicketHandler) AssignTechnician(c *gin.Context) {
	ticketID := c.Param("id")

	var req AssignTechnicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for assign technician", "ticket_id", ticketID, "error", err)
		utils.ErrorResponseWithError(c, invalidBody(err))
		return
	}

	result, err := h.assignTechnicianUC.Execute(c.Request.Context(), req.ToCommand(ticketID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Technician assigned successfully", result)
}

// AddComment handles POST /api/v1/tickets/:id/comments
func (h *TicketHandler) AddComment(c *gin.Context) {
	ticketID := c.Param("id")

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add comment", "ticket_id", ticketID, "error", err)
		utils.ErrorResponseWithError(c, invalidBody(err))
		return
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), req.ToCommand(ticketID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Comment added successfully")
}

// ListComments handles GET /api/v1/tickets/:id/comments
func (h *TicketHandler) ListComments(c *gin.Context) {
	result, err := h.listCommentsUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func invalidBody(err error) error {
	return errors.NewValidationError("Invalid request body", err.Error())
}
