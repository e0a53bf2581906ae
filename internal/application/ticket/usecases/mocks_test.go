package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ispdesk/internal/domain/client"
	"ispdesk/internal/domain/shared"
	"ispdesk/internal/domain/technician"
	"ispdesk/internal/domain/ticket"
	vo "ispdesk/internal/domain/ticket/valueobjects"
)

type mockTicketRepository struct {
	CreateFunc           func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc          func(ctx context.Context, id string) (*ticket.Ticket, error)
	ListFunc             func(ctx context.Context) ([]*ticket.Ticket, error)
	UpdateStatusFunc     func(ctx context.Context, t *ticket.Ticket) error
	UpdateTechnicianFunc func(ctx context.Context, t *ticket.Ticket) error
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id string) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context) ([]*ticket.Ticket, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockTicketRepository) UpdateStatus(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) UpdateTechnician(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateTechnicianFunc != nil {
		return m.UpdateTechnicianFunc(ctx, t)
	}
	return nil
}

type mockCommentRepository struct {
	CreateFunc         func(ctx context.Context, comment *ticket.Comment) error
	ListByTicketIDFunc func(ctx context.Context, ticketID string) ([]*ticket.Comment, error)
}

func (m *mockCommentRepository) Create(ctx context.Context, comment *ticket.Comment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, comment)
	}
	return nil
}

func (m *mockCommentRepository) ListByTicketID(ctx context.Context, ticketID string) ([]*ticket.Comment, error) {
	if m.ListByTicketIDFunc != nil {
		return m.ListByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
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

type mockTechnicianRepository struct {
	GetByIDFunc func(ctx context.Context, id string) (*technician.Technician, error)
}

func (m *mockTechnicianRepository) Create(ctx context.Context, t *technician.Technician) error {
	return nil
}

func (m *mockTechnicianRepository) GetByID(ctx context.Context, id string) (*technician.Technician, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTechnicianRepository) List(ctx context.Context) ([]*technician.Technician, error) {
	return nil, nil
}

func (m *mockTechnicianRepository) ListByStatus(ctx context.Context, status technician.Status) ([]*technician.Technician, error) {
	return nil, nil
}

func (m *mockTechnicianRepository) UpdateStatus(ctx context.Context, t *technician.Technician) error {
	return nil
}

type mockCounter struct {
	next int64
}

func (m *mockCounter) Next(ctx context.Context, name string) (int64, error) {
	m.next++
	return m.next, nil
}

func existingClients(t *testing.T) *mockClientRepository {
	return &mockClientRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*client.Client, error) {
			now := time.Now().UTC()
			c, err := client.ReconstructClient(
				id, "Ana Torres", client.DocumentDNI, "10481234", "Av. Grau 123", "987654321",
				client.Contact{}, nil, client.StatusActive, now, now, now, nil,
			)
			require.NoError(t, err)
			return c, nil
		},
	}
}

func newTestTechnician(t *testing.T, id string, status technician.Status) *technician.Technician {
	t.Helper()
	tech, err := technician.ReconstructTechnician(id, "Pedro Huaman", "9876543210", nil, status, time.Now(), time.Now())
	require.NoError(t, err)
	return tech
}

func newTestTicket(t *testing.T, id, number, title, clientName string, status vo.TicketStatus) *ticket.Ticket {
	t.Helper()
	now := time.Now().UTC()
	var resolvedAt *time.Time
	if status.IsResolved() {
		resolvedAt = &now
	}
	tk, err := ticket.ReconstructTicket(
		id, number, "client-1", nil, title, "Connection drops every evening",
		vo.PriorityMedium, status, resolvedAt, now, now,
		&shared.Ref{ID: "client-1", Name: clientName}, nil,
	)
	require.NoError(t, err)
	return tk
}
