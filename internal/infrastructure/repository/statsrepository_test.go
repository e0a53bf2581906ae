package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ispdesk/internal/domain/client"
	"ispdesk/internal/domain/invoice"
	"ispdesk/internal/shared/testutil"
)

func TestStatsRepository_Counts(t *testing.T) {
	gormDB := newTestDB(t)
	ctx := context.Background()
	log := testutil.NewMockLogger()

	seedClient(t, gormDB, "Maria Lopez", nil)
	seedClient(t, gormDB, "Ana Torres", nil)
	suspended := seedClient(t, gormDB, "Jose Diaz", nil)
	require.NoError(t, suspended.ChangeStatus(client.StatusSuspended))
	require.NoError(t, NewClientRepository(gormDB, testRetrier(), log).UpdateStatus(ctx, suspended))

	stats := NewStatsRepository(gormDB, testRetrier(), log)

	counts, err := stats.CountClientsByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"active": 2, "suspended": 1}, counts)

	tickets, err := stats.CountTicketsByStatus(ctx)
	require.NoError(t, err)
	assert.Empty(t, tickets)
}

func TestStatsRepository_InvoiceSums(t *testing.T) {
	gormDB := newTestDB(t)
	ctx := context.Background()
	log := testutil.NewMockLogger()
	invoices := NewInvoiceRepository(gormDB, testRetrier(), log)

	c := seedClient(t, gormDB, "Maria Lopez", nil)
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	create := func(number, amount string, due time.Time, status invoice.Status) {
		inv, err := invoice.NewInvoice(number, c.ID(), decimal.RequireFromString(amount), due)
		require.NoError(t, err)
		require.NoError(t, invoices.Create(ctx, inv))
		if status != invoice.StatusPending {
			require.NoError(t, inv.ChangeStatus(status))
			require.NoError(t, invoices.UpdateStatus(ctx, inv))
		}
	}
	create("INV-00001", "50.00", today.AddDate(0, 0, 5), invoice.StatusPending)
	create("INV-00002", "30.50", today.AddDate(0, 0, -3), invoice.StatusPending)
	create("INV-00003", "20.00", today.AddDate(0, 0, -9), invoice.StatusOverdue)
	create("INV-00004", "99.90", today.AddDate(0, 0, -1), invoice.StatusPaid)

	stats := NewStatsRepository(gormDB, testRetrier(), log)

	pending, err := stats.SumInvoicesByStatus(ctx, "pending")
	require.NoError(t, err)
	assert.Equal(t, int64(2), pending.Count)
	assert.True(t, decimal.RequireFromString("80.50").Equal(pending.Total), pending.Total.String())

	pastDue, err := stats.SumPastDueInvoices(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, int64(2), pastDue.Count)
	assert.True(t, decimal.RequireFromString("50.50").Equal(pastDue.Total), pastDue.Total.String())

	cancelled, err := stats.SumInvoicesByStatus(ctx, "cancelled")
	require.NoError(t, err)
	assert.Equal(t, int64(0), cancelled.Count)
	assert.True(t, cancelled.Total.IsZero())
}
