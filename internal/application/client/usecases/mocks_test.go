package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"ispdesk/internal/domain/client"
	"ispdesk/internal/domain/plan"
)

type mockClientRepository struct {
	CreateFunc       func(ctx context.Context, c *client.Client) error
	GetByIDFunc      func(ctx context.Context, id string) (*client.Client, error)
	ListFunc         func(ctx context.Context) ([]*client.Client, error)
	UpdateStatusFunc func(ctx context.Context, c *client.Client) error
}

func (m *mockClientRepository) Create(ctx context.Context, c *client.Client) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *mockClientRepository) GetByID(ctx context.Context, id string) (*client.Client, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockClientRepository) List(ctx context.Context) ([]*client.Client, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockClientRepository) UpdateStatus(ctx context.Context, c *client.Client) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, c)
	}
	return nil
}

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

func strPtr(s string) *string { return &s }

func newTestClient(t *testing.T, id, name, document string, ip *string, status client.Status) *client.Client {
	t.Helper()
	now := time.Now().UTC()
	c, err := client.ReconstructClient(
		id, name, client.DocumentDNI, document, "Av. Grau 123", "987654321",
		client.Contact{IPAddress: ip}, nil, status, now, now, now, nil,
	)
	require.NoError(t, err)
	return c
}

func newTestPlan(t *testing.T, id string) *plan.Plan {
	t.Helper()
	p, err := plan.ReconstructPlan(id, "Fibra 100", 100, 50, decimal.NewFromInt(65000), time.Now(), time.Now())
	require.NoError(t, err)
	return p
}
