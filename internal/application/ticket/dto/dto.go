package dto

import (
	"time"

	commondto "ispdesk/internal/application/common/dto"
	"ispdesk/internal/domain/shared"
	"ispdesk/internal/domain/ticket"
)

type TicketDTO struct {
	ID           string            `json:"id"`
	TicketNumber string            `json:"ticket_number"`
	ClientID     string            `json:"client_id"`
	TechnicianID *string           `json:"technician_id"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	Priority     string            `json:"priority"`
	Status       string            `json:"status"`
	ResolvedAt   *time.Time        `json:"resolved_at"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
	Client       *commondto.Option `json:"client"`
	Technician   *commondto.Option `json:"technician"`
}

type CommentDTO struct {
	ID        string    `json:"id"`
	TicketID  string    `json:"ticket_id"`
	Comment   string    `json:"comment"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

func ToTicketDTO(t *ticket.Ticket) *TicketDTO {
	if t == nil {
		return nil
	}
	return &TicketDTO{
		ID:           t.ID(),
		TicketNumber: t.Number(),
		ClientID:     t.ClientID(),
		TechnicianID: t.TechnicianID(),
		Title:        t.Title(),
		Description:  t.Description(),
		Priority:     t.Priority().String(),
		Status:       t.Status().String(),
		ResolvedAt:   t.ResolvedAt(),
		CreatedAt:    t.CreatedAt(),
		UpdatedAt:    t.UpdatedAt(),
		Client:       commondto.ToRefOption(t.Client()),
		Technician:   commondto.ToRefOption(t.Technician()),
	}
}

func ToCommentDTO(c *ticket.Comment) *CommentDTO {
	if c == nil {
		return nil
	}
	return &CommentDTO{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		Comment:   c.Comment(),
		CreatedBy: c.CreatedBy(),
		CreatedAt: c.CreatedAt(),
	}
}

// SearchFields are matched by the tickets search box: ticket number, title
// and client name.
func SearchFields(t *ticket.Ticket) []string {
	return []string{t.Number(), t.Title(), shared.RefName(t.Client())}
}
