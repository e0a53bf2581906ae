package inventory

import "context"

type Repository interface {
	Create(ctx context.Context, item *Item) error
	// GetByID returns the item with its assigned client joined, or nil when absent.
	GetByID(ctx context.Context, id string) (*Item, error)
	// List returns every item with its assigned client joined, ordered by name.
	List(ctx context.Context) ([]*Item, error)
	// UpdateStatus persists status and assigned_to.
	UpdateStatus(ctx context.Context, item *Item) error
}
