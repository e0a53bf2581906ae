package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"ispdesk/internal/domain/plan"
	"ispdesk/internal/infrastructure/persistence/mappers"
	"ispdesk/internal/infrastructure/persistence/models"
	"ispdesk/internal/shared/db"
	"ispdesk/internal/shared/logger"
)

type PlanRepositoryImpl struct {
	db     *gorm.DB
	retry  *db.Retrier
	mapper mappers.PlanMapper
	logger logger.Interface
}

func NewPlanRepository(gormDB *gorm.DB, retry *db.Retrier, logger logger.Interface) plan.Repository {
	return &PlanRepositoryImpl{
		db:     gormDB,
		retry:  retry,
		mapper: mappers.NewPlanMapper(),
		logger: logger,
	}
}

func (r *PlanRepositoryImpl) Create(ctx context.Context, p *plan.Plan) error {
	model := r.mapper.ToModel(p)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create plan", "error", err, "name", p.Name())
		return fmt.Errorf("failed to create plan: %w", err)
	}

	r.logger.Infow("plan created successfully", "plan_id", model.ID, "name", model.Name)
	return nil
}

func (r *PlanRepositoryImpl) GetByID(ctx context.Context, id string) (*plan.Plan, error) {
	var model models.PlanModel
	err := r.retry.Do(ctx, func(ctx context.Context) error {
		return db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get plan by ID", "error", err, "plan_id", id)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *PlanRepositoryImpl) List(ctx context.Context) ([]*plan.Plan, error) {
	var planModels []*models.PlanModel
	err := r.retry.Do(ctx, func(ctx context.Context) error {
		planModels = nil
		return db.GetTxFromContext(ctx, r.db).Order("name ASC").Find(&planModels).Error
	})
	if err != nil {
		r.logger.Errorw("failed to list plans", "error", err)
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	return r.mapper.ToEntities(planModels)
}
