package technician

import "context"

type Repository interface {
	Create(ctx context.Context, technician *Technician) error
	GetByID(ctx context.Context, id string) (*Technician, error)
	// List returns every technician ordered by name.
	List(ctx context.Context) ([]*Technician, error)
	// ListByStatus returns technicians in the given status ordered by name.
	ListByStatus(ctx context.Context, status Status) ([]*Technician, error)
	UpdateStatus(ctx context.Context, technician *Technician) error
}
