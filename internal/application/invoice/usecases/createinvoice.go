package usecases

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"ispdesk/internal/application/invoice/dto"
	"ispdesk/internal/domain/client"
	"ispdesk/internal/domain/invoice"
	"ispdesk/internal/domain/sequence"
	"ispdesk/internal/shared/constants"
	"ispdesk/internal/shared/db"
	"ispdesk/internal/shared/errors"
	"ispdesk/internal/shared/logger"
	"ispdesk/internal/shared/utils"
)

type CreateInvoiceCommand struct {
	ClientID string          `json:"client_id" validate:"required,uuid"`
	Amount   decimal.Decimal `json:"amount"`
	// DueDate is YYYY-MM-DD; blank means DefaultDueDays from today.
	DueDate string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
}

type CreateInvoiceUseCase struct {
	invoiceRepo invoice.Repository
	clientRepo  client.Repository
	counter     sequence.Counter
	txManager   db.Transactor
	logger      logger.Interface
}

func NewCreateInvoiceUseCase(
	invoiceRepo invoice.Repository,
	clientRepo client.Repository,
	counter sequence.Counter,
	txManager db.Transactor,
	logger logger.Interface,
) *CreateInvoiceUseCase {
	return &CreateInvoiceUseCase{
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		counter:     counter,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *CreateInvoiceUseCase) Execute(ctx context.Context, cmd CreateInvoiceCommand) (*dto.InvoiceDTO, error) {
	uc.logger.Infow("executing create invoice use case", "client_id", cmd.ClientID)

	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, err
	}
	if !cmd.Amount.IsPositive() {
		return nil, errors.NewValidationError("Validation failed", "amount must be greater than 0")
	}
	dueDate, err := utils.ParseDate(cmd.DueDate)
	if err != nil {
		return nil, errors.NewValidationError("Validation failed", "due_date must be a date in 2006-01-02 format")
	}

	owner, err := uc.clientRepo.GetByID(ctx, cmd.ClientID)
	if err != nil {
		uc.logger.WithContext(ctx).Errorw("failed to load client", "error", err, "client_id", cmd.ClientID)
		return nil, errors.NewInternalError("failed to load client")
	}
	if owner == nil {
		return nil, errors.NewValidationError("Validation failed", "client_id does not reference an existing client")
	}

	var due time.Time
	if dueDate != nil {
		due = *dueDate
	}

	var created *invoice.Invoice
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		n, err := uc.counter.Next(txCtx, constants.SequenceInvoices)
		if err != nil {
			return err
		}

		inv, err := invoice.NewInvoice(sequence.Format(constants.InvoicePrefix, n), cmd.ClientID, cmd.Amount, due)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.invoiceRepo.Create(txCtx, inv); err != nil {
			return err
		}
		created = inv
		return nil
	})
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to create invoice", "error", err, "client_id", cmd.ClientID)
		return nil, errors.NewInternalError("failed to create invoice")
	}

	uc.logger.Infow("invoice created successfully", "invoice_id", created.ID(), "invoice_number", created.Number())

	reloaded, err := uc.invoiceRepo.GetByID(ctx, created.ID())
	if err != nil || reloaded == nil {
		uc.logger.Warnw("failed to reload created invoice", "error", err, "invoice_id", created.ID())
		return dto.ToInvoiceDTO(created), nil
	}
	return dto.ToInvoiceDTO(reloaded), nil
}
