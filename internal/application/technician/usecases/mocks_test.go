package usecases

import (
	"context"

	"ispdesk/internal/domain/technician"
)

type mockTechnicianRepository struct {
	CreateFunc       func(ctx context.Context, t *technician.Technician) error
	GetByIDFunc      func(ctx context.Context, id string) (*technician.Technician, error)
	ListFunc         func(ctx context.Context) ([]*technician.Technician, error)
	ListByStatusFunc func(ctx context.Context, status technician.Status) ([]*technician.Technician, error)
	UpdateStatusFunc func(ctx context.Context, t *technician.Technician) error
}

func (m *mockTechnicianRepository) Create(ctx context.Context, t *technician.Technician) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return nil
}

func (m *mockTechnicianRepository) GetByID(ctx context.Context, id string) (*technician.Technician, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTechnicianRepository) List(ctx context.Context) ([]*technician.Technician, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockTechnicianRepository) ListByStatus(ctx context.Context, status technician.Status) ([]*technician.Technician, error) {
	if m.ListByStatusFunc != nil {
		return m.ListByStatusFunc(ctx, status)
	}
	return nil, nil
}

func (m *mockTechnicianRepository) UpdateStatus(ctx context.Context, t *technician.Technician) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, t)
	}
	return nil
}
