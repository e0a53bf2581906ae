package mappers

import (
	"ispdesk/internal/domain/plan"
	"ispdesk/internal/infrastructure/persistence/models"
	"ispdesk/internal/shared/mapper"
)

// PlanMapper handles the conversion between domain entities and persistence models
type PlanMapper interface {
	// ToEntity converts a persistence model to a domain entity
	ToEntity(model *models.PlanModel) (*plan.Plan, error)

	// ToModel converts a domain entity to a persistence model
	ToModel(entity *plan.Plan) *models.PlanModel

	// ToEntities converts multiple persistence models to domain entities
	ToEntities(models []*models.PlanModel) ([]*plan.Plan, error)
}

// planMapper is the concrete implementation of PlanMapper
type planMapper struct{}

// NewPlanMapper creates a new plan mapper
func NewPlanMapper() PlanMapper {
	return &planMapper{}
}

func (m *planMapper) ToEntity(model *models.PlanModel) (*plan.Plan, error) {
	if model == nil {
		return nil, nil
	}
	return plan.ReconstructPlan(
		model.ID,
		model.Name,
		model.DownloadSpeed,
		model.UploadSpeed,
		model.Price,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *planMapper) ToModel(entity *plan.Plan) *models.PlanModel {
	return &models.PlanModel{
		ID:            entity.ID(),
		Name:          entity.Name(),
		DownloadSpeed: entity.DownloadSpeed(),
		UploadSpeed:   entity.UploadSpeed(),
		Price:         entity.Price(),
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}
}

func (m *planMapper) ToEntities(items []*models.PlanModel) ([]*plan.Plan, error) {
	return mapper.MapSliceWithError(items, m.ToEntity)
}
