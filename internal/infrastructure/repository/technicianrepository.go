package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"ispdesk/internal/domain/technician"
	"ispdesk/internal/infrastructure/persistence/mappers"
	"ispdesk/internal/infrastructure/persistence/models"
	"ispdesk/internal/shared/db"
	"ispdesk/internal/shared/logger"
)

type TechnicianRepositoryImpl struct {
	db     *gorm.DB
	retry  *db.Retrier
	mapper mappers.TechnicianMapper
	logger logger.Interface
}

func NewTechnicianRepository(gormDB *gorm.DB, retry *db.Retrier, logger logger.Interface) technician.Repository {
	return &TechnicianRepositoryImpl{
		db:     gormDB,
		retry:  retry,
		mapper: mappers.NewTechnicianMapper(),
		logger: logger,
	}
}

func (r *TechnicianRepositoryImpl) Create(ctx context.Context, t *technician.Technician) error {
	model := r.mapper.ToModel(t)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create technician", "error", err, "name", t.Name())
		return fmt.Errorf("failed to create technician: %w", err)
	}

	r.logger.Infow("technician created successfully", "technician_id", model.ID)
	return nil
}

func (r *TechnicianRepositoryImpl) GetByID(ctx context.Context, id string) (*technician.Technician, error) {
	var model models.TechnicianModel
	err := r.retry.Do(ctx, func(ctx context.Context) error {
		return db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get technician by ID", "error", err, "technician_id", id)
		return nil, fmt.Errorf("failed to get technician: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *TechnicianRepositoryImpl) List(ctx context.Context) ([]*technician.Technician, error) {
	return r.list(ctx, nil)
}

func (r *TechnicianRepositoryImpl) ListByStatus(ctx context.Context, status technician.Status) ([]*technician.Technician, error) {
	return r.list(ctx, db.StatusIn(status.String()))
}

func (r *TechnicianRepositoryImpl) list(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]*technician.Technician, error) {
	var technicianModels []*models.TechnicianModel
	err := r.retry.Do(ctx, func(ctx context.Context) error {
		technicianModels = nil
		query := db.GetTxFromContext(ctx, r.db)
		if scope != nil {
			query = query.Scopes(scope)
		}
		return query.Order("name ASC").Find(&technicianModels).Error
	})
	if err != nil {
		r.logger.Errorw("failed to list technicians", "error", err)
		return nil, fmt.Errorf("failed to list technicians: %w", err)
	}

	return r.mapper.ToEntities(technicianModels)
}

func (r *TechnicianRepositoryImpl) UpdateStatus(ctx context.Context, t *technician.Technician) error {
	err := r.retry.Do(ctx, func(ctx context.Context) error {
		return db.GetTxFromContext(ctx, r.db).
			Model(&models.TechnicianModel{}).
			Where("id = ?", t.ID()).
			Updates(map[string]interface{}{
				"status":     t.Status().String(),
				"updated_at": t.UpdatedAt(),
			}).Error
	})
	if err != nil {
		r.logger.Errorw("failed to update technician status", "error", err, "technician_id", t.ID())
		return fmt.Errorf("failed to update technician status: %w", err)
	}

	r.logger.Infow("technician status updated", "technician_id", t.ID(), "status", t.Status())
	return nil
}
