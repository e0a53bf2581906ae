package dto

import (
	"time"

	"ispdesk/internal/domain/device"
)

type DeviceDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IPAddress string    `json:"ip_address"`
	Type      string    `json:"type"`
	Model     *string   `json:"model"`
	Location  *string   `json:"location"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToDeviceDTO(d *device.Device) *DeviceDTO {
	if d == nil {
		return nil
	}
	return &DeviceDTO{
		ID:        d.ID(),
		Name:      d.Name(),
		IPAddress: d.IPAddress(),
		Type:      string(d.Type()),
		Model:     d.Model(),
		Location:  d.Location(),
		Status:    d.Status().String(),
		CreatedAt: d.CreatedAt(),
		UpdatedAt: d.UpdatedAt(),
	}
}

func SearchFields(d *device.Device) []string {
	return []string{d.Name(), d.IPAddress(), string(d.Type())}
}
