package ticket

import (
	"ispdesk/internal/application/ticket/usecases"
)

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// AssignTechnicianRequest assigns a technician. An empty technician_id
// unassigns the ticket.
type AssignTechnicianRequest struct {
	TechnicianID string `json:"technician_id"`
}

func (r *AssignTechnicianRequest) ToCommand(ticketID string) usecases.AssignTechnicianCommand {
	return usecases.AssignTechnicianCommand{
		TicketID:     ticketID,
		TechnicianID: r.TechnicianID,
	}
}

type AddCommentRequest struct {
	Comment   string `json:"comment"`
	CreatedBy string `json:"created_by"`
}

func (r *AddCommentRequest) ToCommand(ticketID string) usecases.AddCommentCommand {
	return usecases.AddCommentCommand{
		TicketID:  ticketID,
		Comment:   r.Comment,
		CreatedBy: r.CreatedBy,
	}
}
