package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"ispdesk/internal/domain/inventory"
	"ispdesk/internal/infrastructure/persistence/mappers"
	"ispdesk/internal/infrastructure/persistence/models"
	"ispdesk/internal/shared/db"
	"ispdesk/internal/shared/logger"
)

type InventoryRepositoryImpl struct {
	db     *gorm.DB
	retry  *db.Retrier
	mapper mappers.InventoryMapper
	logger logger.Interface
}

func NewInventoryRepository(gormDB *gorm.DB, retry *db.Retrier, logger logger.Interface) inventory.Repository {
	return &InventoryRepositoryImpl{
		db:     gormDB,
		retry:  retry,
		mapper: mappers.NewInventoryMapper(),
		logger: logger,
	}
}

func (r *InventoryRepositoryImpl) Create(ctx context.Context, item *inventory.Item) error {
	model := r.mapper.ToModel(item)

	if err := db.GetTxFromContext(ctx, r.db).Omit("Client").Create(model).Error; err != nil {
		r.logger.Errorw("failed to create inventory item", "error", err, "name", item.Name())
		return fmt.Errorf("failed to create inventory item: %w", err)
	}

	r.logger.Infow("inventory item created successfully", "item_id", model.ID)
	return nil
}

func (r *InventoryRepositoryImpl) GetByID(ctx context.Context, id string) (*inventory.Item, error) {
	var model models.InventoryItemModel
	err := r.retry.Do(ctx, func(ctx context.Context) error {
		return db.GetTxFromContext(ctx, r.db).
			Joins("Client").
			Where("inventory_items.id = ?", id).
			First(&model).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get inventory item by ID", "error", err, "item_id", id)
		return nil, fmt.Errorf("failed to get inventory item: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *InventoryRepositoryImpl) List(ctx context.Context) ([]*inventory.Item, error) {
	var itemModels []*models.InventoryItemModel
	err := r.retry.Do(ctx, func(ctx context.Context) error {
		itemModels = nil
		return db.GetTxFromContext(ctx, r.db).
			Joins("Client").
			Order("inventory_items.name ASC").
			Find(&itemModels).Error
	})
	if err != nil {
		r.logger.Errorw("failed to list inventory items", "error", err)
		return nil, fmt.Errorf("failed to list inventory items: %w", err)
	}

	return r.mapper.ToEntities(itemModels)
}

func (r *InventoryRepositoryImpl) UpdateStatus(ctx context.Context, item *inventory.Item) error {
	err := r.retry.Do(ctx, func(ctx context.Context) error {
		return db.GetTxFromContext(ctx, r.db).
			Model(&models.InventoryItemModel{}).
			Where("id = ?", item.ID()).
			Updates(map[string]interface{}{
				"status":      item.Status().String(),
				"assigned_to": item.AssignedTo(),
				"updated_at":  item.UpdatedAt(),
			}).Error
	})
	if err != nil {
		r.logger.Errorw("failed to update inventory item status", "error", err, "item_id", item.ID())
		return fmt.Errorf("failed to update inventory item status: %w", err)
	}

	r.logger.Infow("inventory item status updated", "item_id", item.ID(), "status", item.Status())
	return nil
}
