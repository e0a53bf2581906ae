package usecases

import (
	"context"

	"ispdesk/internal/application/ticket/dto"
	"ispdesk/internal/domain/ticket"
	vo "ispdesk/internal/domain/ticket/valueobjects"
	"ispdesk/internal/shared/errors"
	"ispdesk/internal/shared/logger"
	"ispdesk/internal/shared/utils"
)

type UpdateTicketStatusCommand struct {
	TicketID string `json:"-" validate:"required,uuid"`
	Status   string `json:"status" validate:"required,oneof=open in_progress resolved closed"`
}

type UpdateTicketStatusUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewUpdateTicketStatusUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *UpdateTicketStatusUseCase {
	return &UpdateTicketStatusUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *UpdateTicketStatusUseCase) Execute(ctx context.Context, cmd UpdateTicketStatusCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing update ticket status use case", "ticket_id", cmd.TicketID, "status", cmd.Status)

	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, err
	}

	t, err := loadTicket(ctx, uc.ticketRepo, uc.logger, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if err := t.ChangeStatus(vo.TicketStatus(cmd.Status)); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.UpdateStatus(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket status", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewInternalError("failed to update ticket status")
	}

	uc.logger.Infow("ticket status updated", "ticket_id", cmd.TicketID, "status", cmd.Status)
	return reloadTicket(ctx, uc.ticketRepo, uc.logger, cmd.TicketID)
}

// loadTicket maps a missing ticket to a not-found error.
func loadTicket(ctx context.Context, repo ticket.TicketRepository, log logger.Interface, ticketID string) (*ticket.Ticket, error) {
	t, err := repo.GetByID(ctx, ticketID)
	if err != nil {
		log.Errorw("failed to get ticket", "error", err, "ticket_id", ticketID)
		return nil, errors.NewInternalError("failed to get ticket")
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found", ticketID)
	}
	return t, nil
}

func reloadTicket(ctx context.Context, repo ticket.TicketRepository, log logger.Interface, ticketID string) (*dto.TicketDTO, error) {
	t, err := repo.GetByID(ctx, ticketID)
	if err != nil || t == nil {
		log.Errorw("failed to reload ticket", "error", err, "ticket_id", ticketID)
		return nil, errors.NewInternalError("failed to reload ticket")
	}
	return dto.ToTicketDTO(t), nil
}
