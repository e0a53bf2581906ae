package mappers

import (
	"ispdesk/internal/domain/inventory"
	"ispdesk/internal/infrastructure/persistence/models"
	"ispdesk/internal/shared/mapper"
)

type InventoryMapper interface {
	ToEntity(model *models.InventoryItemModel) (*inventory.Item, error)
	ToModel(entity *inventory.Item) *models.InventoryItemModel
	ToEntities(models []*models.InventoryItemModel) ([]*inventory.Item, error)
}

type inventoryMapper struct{}

func NewInventoryMapper() InventoryMapper {
	return &inventoryMapper{}
}

func (m *inventoryMapper) ToEntity(model *models.InventoryItemModel) (*inventory.Item, error) {
	if model == nil {
		return nil, nil
	}
	return inventory.ReconstructItem(
		model.ID,
		model.Name,
		model.Type,
		inventory.Details{
			Model:           model.Model,
			SerialNumber:    model.SerialNumber,
			PurchaseDate:    model.PurchaseDate,
			WarrantyEndDate: model.WarrantyEndDate,
		},
		inventory.Status(model.Status),
		model.AssignedTo,
		model.CreatedAt,
		model.UpdatedAt,
		clientRef(model.Client),
	)
}

func (m *inventoryMapper) ToModel(entity *inventory.Item) *models.InventoryItemModel {
	return &models.InventoryItemModel{
		ID:              entity.ID(),
		Name:            entity.Name(),
		Type:            entity.Type(),
		Model:           entity.Model(),
		SerialNumber:    entity.SerialNumber(),
		PurchaseDate:    entity.PurchaseDate(),
		WarrantyEndDate: entity.WarrantyEndDate(),
		Status:          entity.Status().String(),
		AssignedTo:      entity.AssignedTo(),
		CreatedAt:       entity.CreatedAt(),
		UpdatedAt:       entity.UpdatedAt(),
	}
}

func (m *inventoryMapper) ToEntities(items []*models.InventoryItemModel) ([]*inventory.Item, error) {
	return mapper.MapSliceWithError(items, m.ToEntity)
}
