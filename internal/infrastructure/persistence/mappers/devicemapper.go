package mappers

import (
	"ispdesk/internal/domain/device"
	"ispdesk/internal/infrastructure/persistence/models"
	"ispdesk/internal/shared/mapper"
)

type DeviceMapper interface {
	ToEntity(model *models.NetworkDeviceModel) (*device.Device, error)
	ToModel(entity *device.Device) *models.NetworkDeviceModel
	ToEntities(models []*models.NetworkDeviceModel) ([]*device.Device, error)
}

type deviceMapper struct{}

func NewDeviceMapper() DeviceMapper {
	return &deviceMapper{}
}

func (m *deviceMapper) ToEntity(model *models.NetworkDeviceModel) (*device.Device, error) {
	if model == nil {
		return nil, nil
	}
	return device.ReconstructDevice(
		model.ID,
		model.Name,
		model.IPAddress,
		device.Type(model.Type),
		model.Model,
		model.Location,
		device.Status(model.Status),
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *deviceMapper) ToModel(entity *device.Device) *models.NetworkDeviceModel {
	return &models.NetworkDeviceModel{
		ID:        entity.ID(),
		Name:      entity.Name(),
		IPAddress: entity.IPAddress(),
		Type:      string(entity.Type()),
		Model:     entity.Model(),
		Location:  entity.Location(),
		Status:    entity.Status().String(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

func (m *deviceMapper) ToEntities(items []*models.NetworkDeviceModel) ([]*device.Device, error) {
	return mapper.MapSliceWithError(items, m.ToEntity)
}
