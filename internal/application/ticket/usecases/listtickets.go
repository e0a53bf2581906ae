package usecases

import (
	"context"

	commondto "ispdesk/internal/application/common/dto"
	"ispdesk/internal/application/ticket/dto"
	"ispdesk/internal/domain/ticket"
	"ispdesk/internal/shared/errors"
	"ispdesk/internal/shared/logger"
	"ispdesk/internal/shared/utils"
)

type ListTicketsQuery struct {
	Search string
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*commondto.ListResult[*dto.TicketDTO], error) {
	tickets, err := uc.ticketRepo.List(ctx)
	if err != nil {
		uc.logger.WithContext(ctx).Errorw("failed to load tickets", "error", err)
		return nil, errors.NewInternalError("failed to load tickets")
	}
	return commondto.NewListResult(tickets, query.Search, dto.SearchFields, dto.ToTicketDTO), nil
}

type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, ticketID string) (*dto.TicketDTO, error) {
	if err := utils.ValidateID(ticketID); err != nil {
		return nil, err
	}

	t, err := uc.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "error", err, "ticket_id", ticketID)
		return nil, errors.NewInternalError("failed to get ticket")
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found", ticketID)
	}
	return dto.ToTicketDTO(t), nil
}
