package usecases

import (
	"context"

	"ispdesk/internal/domain/plan"
)

type mockPlanRepository struct {
	CreateFunc  func(ctx context.Context, p *plan.Plan) error
	GetByIDFunc func(ctx context.Context, id string) (*plan.Plan, error)
	ListFunc    func(ctx context.Context) ([]*plan.Plan, error)
}

func (m *mockPlanRepository) Create(ctx context.Context, p *plan.Plan) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *mockPlanRepository) GetByID(ctx context.Context, id string) (*plan.Plan, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPlanRepository) List(ctx context.Context) ([]*plan.Plan, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}
