// Package report defines the aggregate queries behind the dashboard.
package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceSummary is the number of matching invoices and the sum of their amounts.
type InvoiceSummary struct {
	Count int64
	Total decimal.Decimal
}

// StatsRepository answers count and sum queries without loading rows.
type StatsRepository interface {
	CountClientsByStatus(ctx context.Context) (map[string]int64, error)
	CountTicketsByStatus(ctx context.Context) (map[string]int64, error)
	CountDevicesByStatus(ctx context.Context) (map[string]int64, error)
	SumInvoicesByStatus(ctx context.Context, status string) (InvoiceSummary, error)
	// SumPastDueInvoices covers invoices marked overdue plus pending invoices
	// due before asOf.
	SumPastDueInvoices(ctx context.Context, asOf time.Time) (InvoiceSummary, error)
}

// NetworkSnapshot is the latest set of router readings and when it was taken.
type NetworkSnapshot struct {
	Routers   []RouterReading
	UpdatedAt time.Time
}

type RouterReading struct {
	Name        string
	Status      string
	CPULoad     float64
	MemoryUsage float64
	Uptime      string
}

// SnapshotReader exposes the monitor's latest snapshot.
type SnapshotReader interface {
	Snapshot() NetworkSnapshot
}
