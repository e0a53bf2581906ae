package device

import "context"

type Repository interface {
	Create(ctx context.Context, device *Device) error
	GetByID(ctx context.Context, id string) (*Device, error)
	// List returns every device ordered by name.
	List(ctx context.Context) ([]*Device, error)
	UpdateStatus(ctx context.Context, device *Device) error
}
