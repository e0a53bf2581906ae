package dto

import (
	"time"

	commondto "ispdesk/internal/application/common/dto"
	"ispdesk/internal/domain/technician"
	"ispdesk/internal/shared/search"
)

type TechnicianDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     *string   `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToTechnicianDTO(t *technician.Technician) *TechnicianDTO {
	if t == nil {
		return nil
	}
	return &TechnicianDTO{
		ID:        t.ID(),
		Name:      t.Name(),
		Phone:     t.Phone(),
		Email:     t.Email(),
		Status:    t.Status().String(),
		CreatedAt: t.CreatedAt(),
		UpdatedAt: t.UpdatedAt(),
	}
}

func ToTechnicianOption(t *technician.Technician) commondto.Option {
	return commondto.Option{ID: t.ID(), Name: t.Name()}
}

func SearchFields(t *technician.Technician) []string {
	return []string{t.Name(), t.Phone(), search.Deref(t.Email())}
}
