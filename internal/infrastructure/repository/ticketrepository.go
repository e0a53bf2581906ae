package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"ispdesk/internal/domain/ticket"
	"ispdesk/internal/infrastructure/persistence/mappers"
	"ispdesk/internal/infrastructure/persistence/models"
	"ispdesk/internal/shared/db"
	"ispdesk/internal/shared/logger"
)

type TicketRepository struct {
	db     *gorm.DB
	retry  *db.Retrier
	mapper mappers.TicketMapper
	logger logger.Interface
}

func NewTicketRepository(gormDB *gorm.DB, retry *db.Retrier, logger logger.Interface) ticket.TicketRepository {
	return &TicketRepository{
		db:     gormDB,
		retry:  retry,
		mapper: mappers.NewTicketMapper(),
		logger: logger,
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)

	if err := db.GetTxFromContext(ctx, r.db).Omit("Client", "Technician").Create(model).Error; err != nil {
		r.logger.Errorw("failed to create ticket", "error", err, "ticket_number", t.Number())
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	r.logger.Infow("ticket created successfully", "ticket_id", model.ID, "ticket_number", model.TicketNumber)
	return nil
}

func (r *TicketRepository) withRelations(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db).
		Joins("Client").
		Joins("Technician")
}

func (r *TicketRepository) GetByID(ctx context.Context, id string) (*ticket.Ticket, error) {
	var model models.TicketModel
	err := r.retry.Do(ctx, func(ctx context.Context) error {
		return r.withRelations(ctx).Where("tickets.id = ?", id).First(&model).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get ticket by ID", "error", err, "ticket_id", id)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(ctx context.Context) ([]*ticket.Ticket, error) {
	var ticketModels []*models.TicketModel
	err := r.retry.Do(ctx, func(ctx context.Context) error {
		ticketModels = nil
		return r.withRelations(ctx).Order("tickets.created_at DESC").Find(&ticketModels).Error
	})
	if err != nil {
		r.logger.Errorw("failed to list tickets", "error", err)
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	return r.mapper.ToDomainList(ticketModels)
}

func (r *TicketRepository) UpdateStatus(ctx context.Context, t *ticket.Ticket) error {
	return r.updateColumns(ctx, t, "status", map[string]interface{}{
		"status":      t.Status().String(),
		"resolved_at": t.ResolvedAt(),
		"updated_at":  t.UpdatedAt(),
	})
}

func (r *TicketRepository) UpdateTechnician(ctx context.Context, t *ticket.Ticket) error {
	return r.updateColumns(ctx, t, "technician", map[string]interface{}{
		"technician_id": t.TechnicianID(),
		"updated_at":    t.UpdatedAt(),
	})
}

func (r *TicketRepository) updateColumns(ctx context.Context, t *ticket.Ticket, what string, columns map[string]interface{}) error {
	err := r.retry.Do(ctx, func(ctx context.Context) error {
		return db.GetTxFromContext(ctx, r.db).
			Model(&models.TicketModel{}).
			Where("id = ?", t.ID()).
			Updates(columns).Error
	})
	if err != nil {
		r.logger.Errorw("failed to update ticket "+what, "error", err, "ticket_id", t.ID())
		return fmt.Errorf("failed to update ticket %s: %w", what, err)
	}

	r.logger.Infow("ticket "+what+" updated", "ticket_id", t.ID())
	return nil
}

type TicketCommentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
	logger logger.Interface
}

func NewTicketCommentRepository(gormDB *gorm.DB, logger logger.Interface) ticket.CommentRepository {
	return &TicketCommentRepository{
		db:     gormDB,
		mapper: mappers.NewTicketMapper(),
		logger: logger,
	}
}

func (r *TicketCommentRepository) Create(ctx context.Context, c *ticket.Comment) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(r.mapper.CommentToModel(c)).Error; err != nil {
		r.logger.Errorw("failed to create ticket comment", "error", err, "ticket_id", c.TicketID())
		return fmt.Errorf("failed to create ticket comment: %w", err)
	}
	return nil
}

func (r *TicketCommentRepository) ListByTicketID(ctx context.Context, ticketID string) ([]*ticket.Comment, error) {
	var commentModels []*models.CommentModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&commentModels).Error; err != nil {
		r.logger.Errorw("failed to list ticket comments", "error", err, "ticket_id", ticketID)
		return nil, fmt.Errorf("failed to list ticket comments: %w", err)
	}

	comments := make([]*ticket.Comment, 0, len(commentModels))
	for _, m := range commentModels {
		c, err := r.mapper.CommentToDomain(m)
		if err != nil {
			return nil, fmt.Errorf("failed to map ticket comment %s: %w", m.ID, err)
		}
		comments = append(comments, c)
	}
	return comments, nil
}
