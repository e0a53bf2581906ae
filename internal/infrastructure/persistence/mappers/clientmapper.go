package mappers

import (
	"ispdesk/internal/domain/client"
	"ispdesk/internal/infrastructure/persistence/models"
	"ispdesk/internal/shared/mapper"
)

// ClientMapper converts between client entities and rows. Rows loaded with
// their plan joined produce a client carrying a PlanSummary.
type ClientMapper interface {
	ToEntity(model *models.ClientModel) (*client.Client, error)
	ToModel(entity *client.Client) *models.ClientModel
	ToEntities(models []*models.ClientModel) ([]*client.Client, error)
}

type clientMapper struct{}

func NewClientMapper() ClientMapper {
	return &clientMapper{}
}

func (m *clientMapper) ToEntity(model *models.ClientModel) (*client.Client, error) {
	if model == nil {
		return nil, nil
	}

	var planSummary *client.PlanSummary
	if model.Plan != nil && model.Plan.ID != "" {
		planSummary = &client.PlanSummary{
			ID:            model.Plan.ID,
			Name:          model.Plan.Name,
			DownloadSpeed: model.Plan.DownloadSpeed,
			UploadSpeed:   model.Plan.UploadSpeed,
			Price:         model.Plan.Price,
		}
	}

	return client.ReconstructClient(
		model.ID,
		model.Name,
		client.DocumentType(model.DocumentType),
		model.DocumentNumber,
		model.Address,
		model.Phone,
		client.Contact{
			Email:      model.Email,
			IPAddress:  model.IPAddress,
			MACAddress: model.MACAddress,
		},
		model.PlanID,
		client.Status(model.Status),
		model.RegistrationDate,
		model.CreatedAt,
		model.UpdatedAt,
		planSummary,
	)
}

func (m *clientMapper) ToModel(entity *client.Client) *models.ClientModel {
	return &models.ClientModel{
		ID:               entity.ID(),
		Name:             entity.Name(),
		DocumentType:     string(entity.DocumentType()),
		DocumentNumber:   entity.DocumentNumber(),
		Address:          entity.Address(),
		Phone:            entity.Phone(),
		Email:            entity.Email(),
		IPAddress:        entity.IPAddress(),
		MACAddress:       entity.MACAddress(),
		PlanID:           entity.PlanID(),
		Status:           entity.Status().String(),
		RegistrationDate: entity.RegistrationDate(),
		CreatedAt:        entity.CreatedAt(),
		UpdatedAt:        entity.UpdatedAt(),
	}
}

func (m *clientMapper) ToEntities(items []*models.ClientModel) ([]*client.Client, error) {
	return mapper.MapSliceWithError(items, m.ToEntity)
}
