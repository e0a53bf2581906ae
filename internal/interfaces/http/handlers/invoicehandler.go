package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	invoiceuc "ispdesk/internal/application/invoice/usecases"
	"ispdesk/internal/shared/logger"
	"ispdesk/internal/shared/utils"
)

type InvoiceHandler struct {
	createInvoiceUC invoiceuc.CreateInvoiceExecutor
	listInvoicesUC  invoiceuc.ListInvoicesExecutor
	updateStatusUC  invoiceuc.UpdateInvoiceStatusExecutor
	suggestAmountUC invoiceuc.SuggestInvoiceAmountExecutor
	logger          logger.Interface
}

func NewInvoiceHandler(
	createInvoiceUC invoiceuc.CreateInvoiceExecutor,
	listInvoicesUC invoiceuc.ListInvoicesExecutor,
	updateStatusUC invoiceuc.UpdateInvoiceStatusExecutor,
	suggestAmountUC invoiceuc.SuggestInvoiceAmountExecutor,
	logger logger.Interface,
) *InvoiceHandler {
	return &InvoiceHandler{
		createInvoiceUC: createInvoiceUC,
		listInvoicesUC:  listInvoicesUC,
		updateStatusUC:  updateStatusUC,
		suggestAmountUC: suggestAmountUC,
		logger:          logger,
	}
}

// CreateInvoice handles POST /api/v1/invoices
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var cmd invoiceuc.CreateInvoiceCommand
	if err := bindJSON(c, &cmd); err != nil {
		h.logger.Warnw("invalid request body for create invoice", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createInvoiceUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Invoice created successfully")
}

// ListInvoices handles GET /api/v1/invoices?search=
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	result, err := h.listInvoicesUC.Execute(c.Request.Context(), invoiceuc.ListInvoicesQuery{Search: listQuery(c)})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	respondList(c, result)
}

// UpdateInvoiceStatus handles PATCH /api/v1/invoices/:id/status
func (h *InvoiceHandler) UpdateInvoiceStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := bindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update invoice status", "invoice_id", c.Param("id"), "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := invoiceuc.UpdateInvoiceStatusCommand{
		InvoiceID: c.Param("id"),
		Status:    req.Status,
	}

	result, err := h.updateStatusUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Invoice status updated successfully", result)
}

// SuggestAmount handles GET /api/v1/invoices/suggested-amount?client_id=
// The amount is null when the client has no plan.
func (h *InvoiceHandler) SuggestAmount(c *gin.Context) {
	result, err := h.suggestAmountUC.Execute(c.Request.Context(), c.Query("client_id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
