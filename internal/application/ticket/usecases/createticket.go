package usecases

import (
	"context"

	"ispdesk/internal/application/ticket/dto"
	"ispdesk/internal/domain/client"
	"ispdesk/internal/domain/sequence"
	"ispdesk/internal/domain/technician"
	"ispdesk/internal/domain/ticket"
	vo "ispdesk/internal/domain/ticket/valueobjects"
	"ispdesk/internal/shared/constants"
	"ispdesk/internal/shared/db"
	"ispdesk/internal/shared/errors"
	"ispdesk/internal/shared/logger"
	"ispdesk/internal/shared/utils"
)

type CreateTicketCommand struct {
	ClientID     string `json:"client_id" validate:"required,uuid"`
	Title        string `json:"title" validate:"required,min=3,max=200"`
	Description  string `json:"description" validate:"required,min=10,max=5000"`
	Priority     string `json:"priority" validate:"omitempty,oneof=low medium high critical"`
	TechnicianID string `json:"technician_id" validate:"omitempty,uuid"`
}

type CreateTicketUseCase struct {
	ticketRepo     ticket.TicketRepository
	clientRepo     client.Repository
	technicianRepo technician.Repository
	counter        sequence.Counter
	txManager      db.Transactor
	logger         logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	clientRepo client.Repository,
	technicianRepo technician.Repository,
	counter sequence.Counter,
	txManager db.Transactor,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:     ticketRepo,
		clientRepo:     clientRepo,
		technicianRepo: technicianRepo,
		counter:        counter,
		txManager:      txManager,
		logger:         logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing create ticket use case", "title", cmd.Title, "client_id", cmd.ClientID)

	if err := utils.ValidateStruct(cmd); err != nil {
		uc.logger.Warnw("invalid create ticket command", "error", err)
		return nil, err
	}

	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ensureReferences(ctx, cmd); err != nil {
		return nil, err
	}

	var created *ticket.Ticket
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		n, err := uc.counter.Next(txCtx, constants.SequenceTickets)
		if err != nil {
			return err
		}

		newTicket, err := ticket.NewTicket(
			sequence.Format(constants.TicketPrefix, n),
			cmd.ClientID,
			cmd.Title,
			cmd.Description,
			priority,
			utils.NilIfEmpty(cmd.TechnicianID),
		)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.ticketRepo.Create(txCtx, newTicket); err != nil {
			return err
		}
		created = newTicket
		return nil
	})
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to create ticket", "error", err)
		return nil, errors.NewInternalError("failed to create ticket")
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", created.ID(), "ticket_number", created.Number())

	reloaded, err := uc.ticketRepo.GetByID(ctx, created.ID())
	if err != nil || reloaded == nil {
		uc.logger.Warnw("failed to reload created ticket", "error", err, "ticket_id", created.ID())
		return dto.ToTicketDTO(created), nil
	}
	return dto.ToTicketDTO(reloaded), nil
}

func (uc *CreateTicketUseCase) ensureReferences(ctx context.Context, cmd CreateTicketCommand) error {
	c, err := uc.clientRepo.GetByID(ctx, cmd.ClientID)
	if err != nil {
		uc.logger.WithContext(ctx).Errorw("failed to load client", "error", err, "client_id", cmd.ClientID)
		return errors.NewInternalError("failed to load client")
	}
	if c == nil {
		return errors.NewValidationError("Validation failed", "client_id does not reference an existing client")
	}

	if cmd.TechnicianID == "" {
		return nil
	}
	tech, err := uc.technicianRepo.GetByID(ctx, cmd.TechnicianID)
	if err != nil {
		uc.logger.WithContext(ctx).Errorw("failed to load technician", "error", err, "technician_id", cmd.TechnicianID)
		return errors.NewInternalError("failed to load technician")
	}
	if tech == nil {
		return errors.NewValidationError("Validation failed", "technician_id does not reference an existing technician")
	}
	return nil
}
