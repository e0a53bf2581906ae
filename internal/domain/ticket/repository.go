package ticket

import "context"

type TicketRepository interface {
	Create(ctx context.Context, ticket *Ticket) error
	// GetByID returns the ticket with client and technician joined, or nil when absent.
	GetByID(ctx context.Context, id string) (*Ticket, error)
	// List returns every ticket with client and technician joined, newest first.
	List(ctx context.Context) ([]*Ticket, error)
	// UpdateStatus persists status and resolved_at.
	UpdateStatus(ctx context.Context, ticket *Ticket) error
	UpdateTechnician(ctx context.Context, ticket *Ticket) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error
	// ListByTicketID returns a ticket's comments, oldest first.
	ListByTicketID(ctx context.Context, ticketID string) ([]*Comment, error)
}
