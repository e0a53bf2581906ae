package invoice

import "context"

type Repository interface {
	Create(ctx context.Context, invoice *Invoice) error
	// GetByID returns the invoice with its client joined, or nil when absent.
	GetByID(ctx context.Context, id string) (*Invoice, error)
	// List returns every invoice with its client joined, latest due date first.
	List(ctx context.Context) ([]*Invoice, error)
	// UpdateStatus persists status and payment date.
	UpdateStatus(ctx context.Context, invoice *Invoice) error
}
