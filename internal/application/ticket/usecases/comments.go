package usecases

import (
	"context"

	"ispdesk/internal/application/ticket/dto"
	"ispdesk/internal/domain/ticket"
	"ispdesk/internal/shared/errors"
	"ispdesk/internal/shared/logger"
	"ispdesk/internal/shared/mapper"
	"ispdesk/internal/shared/utils"
)

type AddCommentCommand struct {
	TicketID  string `json:"-" validate:"required,uuid"`
	Comment   string `json:"comment" validate:"required,min=1,max=5000"`
	CreatedBy string `json:"created_by" validate:"required,min=1,max=100"`
}

type AddCommentUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error) {
	uc.logger.Infow("executing add comment use case", "ticket_id", cmd.TicketID, "created_by", cmd.CreatedBy)

	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, err
	}

	if _, err := loadTicket(ctx, uc.ticketRepo, uc.logger, cmd.TicketID); err != nil {
		return nil, err
	}

	comment, err := ticket.NewComment(cmd.TicketID, cmd.Comment, cmd.CreatedBy)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "error", err, "ticket_id", cmd.TicketID)
		return nil, errors.NewInternalError("failed to save comment")
	}

	uc.logger.Infow("comment added successfully", "comment_id", comment.ID(), "ticket_id", cmd.TicketID)
	return dto.ToCommentDTO(comment), nil
}

type ListCommentsUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewListCommentsUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	logger logger.Interface,
) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *ListCommentsUseCase) Execute(ctx context.Context, ticketID string) ([]*dto.CommentDTO, error) {
	if err := utils.ValidateID(ticketID); err != nil {
		return nil, err
	}
	if _, err := loadTicket(ctx, uc.ticketRepo, uc.logger, ticketID); err != nil {
		return nil, err
	}

	comments, err := uc.commentRepo.ListByTicketID(ctx, ticketID)
	if err != nil {
		uc.logger.WithContext(ctx).Errorw("failed to load comments", "error", err, "ticket_id", ticketID)
		return nil, errors.NewInternalError("failed to load comments")
	}
	return mapper.MapSlice(comments, dto.ToCommentDTO), nil
}
