package usecases

import (
	"context"

	commondto "ispdesk/internal/application/common/dto"
	"ispdesk/internal/application/ticket/dto"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*commondto.ListResult[*dto.TicketDTO], error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, ticketID string) (*dto.TicketDTO, error)
}

type UpdateTicketStatusExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketStatusCommand) (*dto.TicketDTO, error)
}

type AssignTechnicianExecutor interface {
	Execute(ctx context.Context, cmd AssignTechnicianCommand) (*dto.TicketDTO, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error)
}

type ListCommentsExecutor interface {
	Execute(ctx context.Context, ticketID string) ([]*dto.CommentDTO, error)
}
