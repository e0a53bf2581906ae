package dto

import (
	"time"

	"github.com/shopspring/decimal"

	commondto "ispdesk/internal/application/common/dto"
	"ispdesk/internal/domain/invoice"
	"ispdesk/internal/domain/shared"
)

type InvoiceDTO struct {
	ID            string            `json:"id"`
	InvoiceNumber string            `json:"invoice_number"`
	ClientID      string            `json:"client_id"`
	Amount        decimal.Decimal   `json:"amount"`
	Status        string            `json:"status"`
	DueDate       time.Time         `json:"due_date"`
	PaymentDate   *time.Time        `json:"payment_date"`
	IsOverdue     bool              `json:"is_overdue"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	Client        *commondto.Option `json:"client"`
}

// SuggestedAmountDTO carries the plan price of a client. Amount is null when
// the client has no plan, in which case the caller keeps its current value.
type SuggestedAmountDTO struct {
	ClientID string           `json:"client_id"`
	Amount   *decimal.Decimal `json:"amount"`
}

func ToInvoiceDTO(i *invoice.Invoice) *InvoiceDTO {
	if i == nil {
		return nil
	}
	return &InvoiceDTO{
		ID:            i.ID(),
		InvoiceNumber: i.Number(),
		ClientID:      i.ClientID(),
		Amount:        i.Amount(),
		Status:        i.Status().String(),
		DueDate:       i.DueDate(),
		PaymentDate:   i.PaymentDate(),
		IsOverdue:     i.IsOverdue(),
		CreatedAt:     i.CreatedAt(),
		UpdatedAt:     i.UpdatedAt(),
		Client:        commondto.ToRefOption(i.Client()),
	}
}

// SearchFields are matched by the billing search box: invoice number and
// client name.
func SearchFields(i *invoice.Invoice) []string {
	return []string{i.Number(), shared.RefName(i.Client())}
}
