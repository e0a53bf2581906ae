package client

import "context"

type Repository interface {
	Create(ctx context.Context, client *Client) error
	// GetByID returns the client with its plan joined, or nil when absent.
	GetByID(ctx context.Context, id string) (*Client, error)
	// List returns every client with its plan joined, ordered by name.
	List(ctx context.Context) ([]*Client, error)
	// UpdateStatus persists the client's current status and nothing else.
	UpdateStatus(ctx context.Context, client *Client) error
}
