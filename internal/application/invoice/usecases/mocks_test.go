package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"ispdesk/internal/domain/client"
	"ispdesk/internal/domain/invoice"
	"ispdesk/internal/domain/shared"
)

type mockInvoiceRepository struct {
	CreateFunc       func(ctx context.Context, inv *invoice.Invoice) error
	GetByIDFunc      func(ctx context.Context, id string) (*invoice.Invoice, error)
	ListFunc         func(ctx context.Context) ([]*invoice.Invoice, error)
	UpdateStatusFunc func(ctx context.Context, inv *invoice.Invoice) error
}

func (m *mockInvoiceRepository) Create(ctx context.Context, inv *invoice.Invoice) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, inv)
	}
	return nil
}

func (m *mockInvoiceRepository) GetByID(ctx context.Context, id string) (*invoice.Invoice, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockInvoiceRepository) List(ctx context.Context) ([]*invoice.Invoice, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockInvoiceRepository) UpdateStatus(ctx context.Context, inv *invoice.Invoice) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, inv)
	}
	return nil
}

type mockClientRepository struct {
	GetByIDFunc func(ctx context.Context, id string) (*client.Client, error)
}

func (m *mockClientRepository) Create(ctx context.Context, c *client.Client) error {
	return nil
}

func (m *mockClientRepository) GetByID(ctx context.Context, id string) (*client.Client, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockClientRepository) List(ctx context.Context) ([]*client.Client, error) {
	return nil, nil
}

func (m *mockClientRepository) UpdateStatus(ctx context.Context, c *client.Client) error {
	return nil
}

type mockCounter struct {
	NextFunc func(ctx context.Context, name string) (int64, error)
}

func (m *mockCounter) Next(ctx context.Context, name string) (int64, error) {
	if m.NextFunc != nil {
		return m.NextFunc(ctx, name)
	}
	return 1, nil
}

func newTestClient(t *testing.T, id string, plan *client.PlanSummary) *client.Client {
	t.Helper()
	now := time.Now().UTC()
	var planID *string
	if plan != nil {
		planID = &plan.ID
	}
	c, err := client.ReconstructClient(
		id, "Ana Torres", client.DocumentDNI, "10481234", "Av. Grau 123", "987654321",
		client.Contact{}, planID, client.StatusActive, now, now, now, plan,
	)
	require.NoError(t, err)
	return c
}

func newTestInvoice(t *testing.T, id, number, clientName string, status invoice.Status) *invoice.Invoice {
	t.Helper()
	now := time.Now().UTC()
	inv, err := invoice.ReconstructInvoice(
		id, number, "client-1", decimal.NewFromInt(65000), status,
		now.AddDate(0, 0, 10), nil, now, now,
		&shared.Ref{ID: "client-1", Name: clientName},
	)
	require.NoError(t, err)
	return inv
}
