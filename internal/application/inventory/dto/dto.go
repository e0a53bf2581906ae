package dto

import (
	"time"

	commondto "ispdesk/internal/application/common/dto"
	"ispdesk/internal/domain/inventory"
	"ispdesk/internal/domain/shared"
	"ispdesk/internal/shared/biztime"
	"ispdesk/internal/shared/search"
)

type ItemDTO struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Type            string            `json:"type"`
	Model           *string           `json:"model"`
	SerialNumber    *string           `json:"serial_number"`
	PurchaseDate    *time.Time        `json:"purchase_date"`
	WarrantyEndDate *time.Time        `json:"warranty_end_date"`
	UnderWarranty   bool              `json:"under_warranty"`
	Status          string            `json:"status"`
	AssignedTo      *string           `json:"assigned_to"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
	Client          *commondto.Option `json:"client"`
}

func ToItemDTO(i *inventory.Item) *ItemDTO {
	if i == nil {
		return nil
	}
	return &ItemDTO{
		ID:              i.ID(),
		Name:            i.Name(),
		Type:            i.Type(),
		Model:           i.Model(),
		SerialNumber:    i.SerialNumber(),
		PurchaseDate:    i.PurchaseDate(),
		WarrantyEndDate: i.WarrantyEndDate(),
		UnderWarranty:   i.IsUnderWarranty(biztime.NowUTC()),
		Status:          i.Status().String(),
		AssignedTo:      i.AssignedTo(),
		CreatedAt:       i.CreatedAt(),
		UpdatedAt:       i.UpdatedAt(),
		Client:          commondto.ToRefOption(i.Client()),
	}
}

// SearchFields are matched by the inventory search box: name, type, serial
// number and the assigned client's name.
func SearchFields(i *inventory.Item) []string {
	return []string{i.Name(), i.Type(), search.Deref(i.SerialNumber()), shared.RefName(i.Client())}
}
