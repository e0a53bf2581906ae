package mappers

import (
	"ispdesk/internal/domain/technician"
	"ispdesk/internal/infrastructure/persistence/models"
	"ispdesk/internal/shared/mapper"
)

type TechnicianMapper interface {
	ToEntity(model *models.TechnicianModel) (*technician.Technician, error)
	ToModel(entity *technician.Technician) *models.TechnicianModel
	ToEntities(models []*models.TechnicianModel) ([]*technician.Technician, error)
}

type technicianMapper struct{}

func NewTechnicianMapper() TechnicianMapper {
	return &technicianMapper{}
}

func (m *technicianMapper) ToEntity(model *models.TechnicianModel) (*technician.Technician, error) {
	if model == nil {
		return nil, nil
	}
	return technician.ReconstructTechnician(
		model.ID,
		model.Name,
		model.Phone,
		model.Email,
		technician.Status(model.Status),
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *technicianMapper) ToModel(entity *technician.Technician) *models.TechnicianModel {
	return &models.TechnicianModel{
		ID:        entity.ID(),
		Name:      entity.Name(),
		Phone:     entity.Phone(),
		Email:     entity.Email(),
		Status:    entity.Status().String(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

func (m *technicianMapper) ToEntities(items []*models.TechnicianModel) ([]*technician.Technician, error) {
	return mapper.MapSliceWithError(items, m.ToEntity)
}
