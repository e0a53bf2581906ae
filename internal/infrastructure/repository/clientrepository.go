package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"ispdesk/internal/domain/client"
	"ispdesk/internal/infrastructure/persistence/mappers"
	"ispdesk/internal/infrastructure/persistence/models"
	"ispdesk/internal/shared/db"
	"ispdesk/internal/shared/logger"
)

type ClientRepositoryImpl struct {
	db     *gorm.DB
	retry  *db.Retrier
	mapper mappers.ClientMapper
	logger logger.Interface
}

func NewClientRepository(gormDB *gorm.DB, retry *db.Retrier, logger logger.Interface) client.Repository {
	return &ClientRepositoryImpl{
		db:     gormDB,
		retry:  retry,
		mapper: mappers.NewClientMapper(),
		logger: logger,
	}
}

func (r *ClientRepositoryImpl) Create(ctx context.Context, c *client.Client) error {
	model := r.mapper.ToModel(c)

	if err := db.GetTxFromContext(ctx, r.db).Omit("Plan").Create(model).Error; err != nil {
		r.logger.Errorw("failed to create client", "error", err, "name", c.Name())
		return fmt.Errorf("failed to create client: %w", err)
	}

	r.logger.Infow("client created successfully", "client_id", model.ID)
	return nil
}

func (r *ClientRepositoryImpl) GetByID(ctx context.Context, id string) (*client.Client, error) {
	var model models.ClientModel
	err := r.retry.Do(ctx, func(ctx context.Context) error {
		return db.GetTxFromContext(ctx, r.db).
			Joins("Plan").
			Where("clients.id = ?", id).
			First(&model).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get client by ID", "error", err, "client_id", id)
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ClientRepositoryImpl) List(ctx context.Context) ([]*client.Client, error) {
	var clientModels []*models.ClientModel
	err := r.retry.Do(ctx, func(ctx context.Context) error {
		clientModels = nil
		return db.GetTxFromContext(ctx, r.db).
			Joins("Plan").
			Order("clients.name ASC").
			Find(&clientModels).Error
	})
	if err != nil {
		r.logger.Errorw("failed to list clients", "error", err)
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	return r.mapper.ToEntities(clientModels)
}

func (r *ClientRepositoryImpl) UpdateStatus(ctx context.Context, c *client.Client) error {
	err := r.retry.Do(ctx, func(ctx context.Context) error {
		return db.GetTxFromContext(ctx, r.db).
			Model(&models.ClientModel{}).
			Where("id = ?", c.ID()).
			Updates(map[string]interface{}{
				"status":     c.Status().String(),
				"updated_at": c.UpdatedAt(),
			}).Error
	})
	if err != nil {
		r.logger.Errorw("failed to update client status", "error", err, "client_id", c.ID())
		return fmt.Errorf("failed to update client status: %w", err)
	}

	r.logger.Infow("client status updated", "client_id", c.ID(), "status", c.Status())
	return nil
}
