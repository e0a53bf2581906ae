package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ispdesk/internal/domain/client"
	"ispdesk/internal/domain/device"
	"ispdesk/internal/domain/inventory"
	"ispdesk/internal/domain/invoice"
	"ispdesk/internal/domain/technician"
	"ispdesk/internal/domain/ticket"
	vo "ispdesk/internal/domain/ticket/valueobjects"
	"ispdesk/internal/shared/testutil"
)

func TestClientRepository_JoinsPlan(t *testing.T) {
	gormDB := newTestDB(t)
	ctx := context.Background()

	p := seedPlan(t, gormDB, "Fibra 100")
	withPlan := seedClient(t, gormDB, "Maria Lopez", ptr(p.ID()))
	seedClient(t, gormDB, "Ana Torres", nil)

	repo := NewClientRepository(gormDB, testRetrier(), testutil.NewMockLogger())

	got, err := repo.GetByID(ctx, withPlan.ID())
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.Plan())
	assert.Equal(t, "Fibra 100", got.Plan().Name)
	assert.True(t, decimal.RequireFromString("59.90").Equal(got.Plan().Price))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Ana Torres", list[0].Name())
	assert.Nil(t, list[0].Plan())
	assert.Equal(t, "Maria Lopez", list[1].Name())
}

func TestClientRepository_GetByIDMissing(t *testing.T) {
	gormDB := newTestDB(t)

	got, err := NewClientRepository(gormDB, testRetrier(), testutil.NewMockLogger()).
		GetByID(context.Background(), "00000000-0000-0000-0000-000000000000")

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestClientRepository_UpdateStatus(t *testing.T) {
	gormDB := newTestDB(t)
	ctx := context.Background()
	repo := NewClientRepository(gormDB, testRetrier(), testutil.NewMockLogger())

	c := seedClient(t, gormDB, "Maria Lopez", nil)
	require.NoError(t, c.ChangeStatus(client.StatusSuspended))
	require.NoError(t, repo.UpdateStatus(ctx, c))

	got, err := repo.GetByID(ctx, c.ID())
	require.NoError(t, err)
	assert.Equal(t, client.StatusSuspended, got.Status())
}

func TestInvoiceRepository_PaymentDateFollowsStatus(t *testing.T) {
	gormDB := newTestDB(t)
	ctx := context.Background()
	repo := NewInvoiceRepository(gormDB, testRetrier(), testutil.NewMockLogger())

	c := seedClient(t, gormDB, "Maria Lopez", nil)
	inv, err := invoice.NewInvoice("INV-00001", c.ID(), decimal.RequireFromString("89.90"), time.Now().UTC().AddDate(0, 0, 10))
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, inv))

	require.NoError(t, inv.ChangeStatus(invoice.StatusPaid))
	require.NoError(t, repo.UpdateStatus(ctx, inv))

	got, err := repo.GetByID(ctx, inv.ID())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, invoice.StatusPaid, got.Status())
	assert.NotNil(t, got.PaymentDate())
	require.NotNil(t, got.Client())
	assert.Equal(t, "Maria Lopez", got.Client().Name)

	require.NoError(t, inv.ChangeStatus(invoice.StatusPending))
	require.NoError(t, repo.UpdateStatus(ctx, inv))

	got, err = repo.GetByID(ctx, inv.ID())
	require.NoError(t, err)
	assert.Nil(t, got.PaymentDate())
}

func TestTicketRepository_RelationsAndUpdates(t *testing.T) {
	gormDB := newTestDB(t)
	ctx := context.Background()
	log := testutil.NewMockLogger()
	tickets := NewTicketRepository(gormDB, testRetrier(), log)
	technicians := NewTechnicianRepository(gormDB, testRetrier(), log)

	c := seedClient(t, gormDB, "Maria Lopez", nil)
	tech, err := technician.NewTechnician("Carlos Ruiz", "0987654321", nil, technician.StatusActive)
	require.NoError(t, err)
	require.NoError(t, technicians.Create(ctx, tech))

	first, err := ticket.NewTicket("T-00001", c.ID(), "Sin conexion", "El router no enciende desde ayer", vo.PriorityHigh, nil)
	require.NoError(t, err)
	require.NoError(t, tickets.Create(ctx, first))

	second, err := ticket.NewTicket("T-00002", c.ID(), "Lentitud", "La velocidad es menor a la contratada", vo.PriorityLow, ptr(tech.ID()))
	require.NoError(t, err)
	require.NoError(t, tickets.Create(ctx, second))

	list, err := tickets.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, tk := range list {
		require.NotNil(t, tk.Client())
		assert.Equal(t, "Maria Lopez", tk.Client().Name)
	}

	got, err := tickets.GetByID(ctx, second.ID())
	require.NoError(t, err)
	require.NotNil(t, got.Technician())
	assert.Equal(t, "Carlos Ruiz", got.Technician().Name)

	require.NoError(t, first.ChangeStatus(vo.StatusResolved))
	require.NoError(t, tickets.UpdateStatus(ctx, first))
	require.NoError(t, first.AssignTechnician(ptr(tech.ID())))
	require.NoError(t, tickets.UpdateTechnician(ctx, first))

	got, err = tickets.GetByID(ctx, first.ID())
	require.NoError(t, err)
	assert.Equal(t, vo.StatusResolved, got.Status())
	assert.NotNil(t, got.ResolvedAt())
	require.NotNil(t, got.TechnicianID())
	assert.Equal(t, tech.ID(), *got.TechnicianID())
}

func TestTicketCommentRepository_ListsOldestFirst(t *testing.T) {
	gormDB := newTestDB(t)
	ctx := context.Background()
	log := testutil.NewMockLogger()

	c := seedClient(t, gormDB, "Maria Lopez", nil)
	tk, err := ticket.NewTicket("T-00001", c.ID(), "Sin conexion", "El router no enciende desde ayer", vo.PriorityMedium, nil)
	require.NoError(t, err)
	require.NoError(t, NewTicketRepository(gormDB, testRetrier(), log).Create(ctx, tk))

	comments := NewTicketCommentRepository(gormDB, log)
	older, err := ticket.ReconstructComment("c-1", tk.ID(), "Revisando la linea", "soporte", time.Now().UTC().Add(-time.Hour))
	require.NoError(t, err)
	newer, err := ticket.ReconstructComment("c-2", tk.ID(), "Tecnico en camino", "soporte", time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, comments.Create(ctx, newer))
	require.NoError(t, comments.Create(ctx, older))

	list, err := comments.ListByTicketID(ctx, tk.ID())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Revisando la linea", list[0].Comment())
	assert.Equal(t, "Tecnico en camino", list[1].Comment())
}

func TestTechnicianRepository_ListByStatus(t *testing.T) {
	gormDB := newTestDB(t)
	ctx := context.Background()
	repo := NewTechnicianRepository(gormDB, testRetrier(), testutil.NewMockLogger())

	for _, tc := range []struct {
		name   string
		status technician.Status
	}{
		{"Luis Paredes", technician.StatusActive},
		{"Carlos Ruiz", technician.StatusActive},
		{"Jorge Salas", technician.StatusOnLeave},
	} {
		tech, err := technician.NewTechnician(tc.name, "0987654321", nil, tc.status)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, tech))
	}

	active, err := repo.ListByStatus(ctx, technician.StatusActive)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "Carlos Ruiz", active[0].Name())
	assert.Equal(t, "Luis Paredes", active[1].Name())

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestInventoryRepository_AssignmentRoundTrip(t *testing.T) {
	gormDB := newTestDB(t)
	ctx := context.Background()
	repo := NewInventoryRepository(gormDB, testRetrier(), testutil.NewMockLogger())

	c := seedClient(t, gormDB, "Maria Lopez", nil)
	item, err := inventory.NewItem("ONU Huawei", "onu", inventory.Details{}, inventory.StatusAssigned, ptr(c.ID()))
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, item))

	got, err := repo.GetByID(ctx, item.ID())
	require.NoError(t, err)
	require.NotNil(t, got.Client())
	assert.Equal(t, "Maria Lopez", got.Client().Name)

	require.NoError(t, item.ChangeStatus(inventory.StatusMaintenance))
	require.NoError(t, repo.UpdateStatus(ctx, item))

	got, err = repo.GetByID(ctx, item.ID())
	require.NoError(t, err)
	assert.Equal(t, inventory.StatusMaintenance, got.Status())
	assert.Nil(t, got.AssignedTo())
	assert.Nil(t, got.Client())
}

func TestDeviceRepository_CreateListUpdate(t *testing.T) {
	gormDB := newTestDB(t)
	ctx := context.Background()
	repo := NewDeviceRepository(gormDB, testRetrier(), testutil.NewMockLogger())

	d, err := device.NewDevice("Router Principal", "192.168.1.1", device.TypeRouter, nil, ptr("Nodo central"), device.StatusActive)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, d))

	require.NoError(t, d.ChangeStatus(device.StatusWarning))
	require.NoError(t, repo.UpdateStatus(ctx, d))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, device.StatusWarning, list[0].Status())
	assert.Equal(t, "192.168.1.1", list[0].IPAddress())
	require.NotNil(t, list[0].Location())
	assert.Equal(t, "Nodo central", *list[0].Location())
}

func ptr(s string) *string {
	return &s
}
