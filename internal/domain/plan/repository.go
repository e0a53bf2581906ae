package plan

import "context"

type Repository interface {
	Create(ctx context.Context, plan *Plan) error
	GetByID(ctx context.Context, id string) (*Plan, error)
	// List returns every plan ordered by name.
	List(ctx context.Context) ([]*Plan, error)
}
