package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"ispdesk/internal/domain/client"
	"ispdesk/internal/shared/search"
)

type PlanSummaryDTO struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	DownloadSpeed int             `json:"download_speed"`
	UploadSpeed   int             `json:"upload_speed"`
	Price         decimal.Decimal `json:"price"`
}

type ClientDTO struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	DocumentType     string          `json:"document_type"`
	DocumentNumber   string          `json:"document_number"`
	Address          string          `json:"address"`
	Phone            string          `json:"phone"`
	Email            *string         `json:"email"`
	IPAddress        *string         `json:"ip_address"`
	MACAddress       *string         `json:"mac_address"`
	PlanID           *string         `json:"plan_id"`
	Status           string          `json:"status"`
	RegistrationDate time.Time       `json:"registration_date"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
	Plan             *PlanSummaryDTO `json:"plan"`
}

// ClientOption is the reference row used by selectors in other dialogs.
type ClientOption struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	PlanID *string `json:"plan_id"`
}

func ToClientDTO(c *client.Client) *ClientDTO {
	if c == nil {
		return nil
	}
	return &ClientDTO{
		ID:               c.ID(),
		Name:             c.Name(),
		DocumentType:     c.DocumentType().String(),
		DocumentNumber:   c.DocumentNumber(),
		Address:          c.Address(),
		Phone:            c.Phone(),
		Email:            c.Email(),
		IPAddress:        c.IPAddress(),
		MACAddress:       c.MACAddress(),
		PlanID:           c.PlanID(),
		Status:           c.Status().String(),
		RegistrationDate: c.RegistrationDate(),
		CreatedAt:        c.CreatedAt(),
		UpdatedAt:        c.UpdatedAt(),
		Plan:             toPlanSummaryDTO(c.Plan()),
	}
}

func toPlanSummaryDTO(p *client.PlanSummary) *PlanSummaryDTO {
	if p == nil {
		return nil
	}
	return &PlanSummaryDTO{
		ID:            p.ID,
		Name:          p.Name,
		DownloadSpeed: p.DownloadSpeed,
		UploadSpeed:   p.UploadSpeed,
		Price:         p.Price,
	}
}

func ToClientOption(c *client.Client) ClientOption {
	return ClientOption{ID: c.ID(), Name: c.Name(), PlanID: c.PlanID()}
}

// SearchFields are matched by the clients search box: name, document number
// and IP address.
func SearchFields(c *client.Client) []string {
	return []string{c.Name(), c.DocumentNumber(), search.Deref(c.IPAddress())}
}
