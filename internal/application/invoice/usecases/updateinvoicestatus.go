package usecases

import (
	"context"

	"ispdesk/internal/application/invoice/dto"
	"ispdesk/internal/domain/invoice"
	"ispdesk/internal/shared/errors"
	"ispdesk/internal/shared/logger"
	"ispdesk/internal/shared/utils"
)

type UpdateInvoiceStatusCommand struct {
	InvoiceID string `json:"-" validate:"required,uuid"`
	Status    string `json:"status" validate:"required,oneof=pending paid overdue cancelled"`
}

type UpdateInvoiceStatusUseCase struct {
	invoiceRepo invoice.Repository
	logger      logger.Interface
}

func NewUpdateInvoiceStatusUseCase(invoiceRepo invoice.Repository, logger logger.Interface) *UpdateInvoiceStatusUseCase {
	return &UpdateInvoiceStatusUseCase{
		invoiceRepo: invoiceRepo,
		logger:      logger,
	}
}

// Execute applies the status change, stamping or clearing the payment date,
// and returns the row as stored afterwards.
func (uc *UpdateInvoiceStatusUseCase) Execute(ctx context.Context, cmd UpdateInvoiceStatusCommand) (*dto.InvoiceDTO, error) {
	uc.logger.Infow("executing update invoice status use case", "invoice_id", cmd.InvoiceID, "status", cmd.Status)

	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, err
	}

	inv, err := uc.invoiceRepo.GetByID(ctx, cmd.InvoiceID)
	if err != nil {
		uc.logger.Errorw("failed to get invoice", "error", err, "invoice_id", cmd.InvoiceID)
		return nil, errors.NewInternalError("failed to get invoice")
	}
	if inv == nil {
		return nil, errors.NewNotFoundError("invoice not found", cmd.InvoiceID)
	}

	if err := inv.ChangeStatus(invoice.Status(cmd.Status)); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.invoiceRepo.UpdateStatus(ctx, inv); err != nil {
		uc.logger.Errorw("failed to update invoice status", "error", err, "invoice_id", cmd.InvoiceID)
		return nil, errors.NewInternalError("failed to update invoice status")
	}

	updated, err := uc.invoiceRepo.GetByID(ctx, cmd.InvoiceID)
	if err != nil || updated == nil {
		uc.logger.Errorw("failed to reload invoice", "error", err, "invoice_id", cmd.InvoiceID)
		return nil, errors.NewInternalError("failed to reload invoice")
	}

	uc.logger.Infow("invoice status updated", "invoice_id", cmd.InvoiceID, "status", cmd.Status)
	return dto.ToInvoiceDTO(updated), nil
}
