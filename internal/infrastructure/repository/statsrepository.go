package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"ispdesk/internal/domain/invoice"
	"ispdesk/internal/domain/report"
	"ispdesk/internal/infrastructure/persistence/models"
	"ispdesk/internal/shared/db"
	"ispdesk/internal/shared/logger"
)

type statusCount struct {
	Status string
	Count  int64
}

type invoiceSum struct {
	Count int64
	Total decimal.Decimal
}

// StatsRepository computes dashboard aggregates with GROUP BY and SUM queries.
type StatsRepository struct {
	db     *gorm.DB
	retry  *db.Retrier
	logger logger.Interface
}

func NewStatsRepository(gormDB *gorm.DB, retry *db.Retrier, logger logger.Interface) report.StatsRepository {
	return &StatsRepository{
		db:     gormDB,
		retry:  retry,
		logger: logger,
	}
}

func (r *StatsRepository) CountClientsByStatus(ctx context.Context) (map[string]int64, error) {
	return r.countByStatus(ctx, &models.ClientModel{}, "clients")
}

func (r *StatsRepository) CountTicketsByStatus(ctx context.Context) (map[string]int64, error) {
	return r.countByStatus(ctx, &models.TicketModel{}, "tickets")
}

func (r *StatsRepository) CountDevicesByStatus(ctx context.Context) (map[string]int64, error) {
	return r.countByStatus(ctx, &models.NetworkDeviceModel{}, "network devices")
}

func (r *StatsRepository) countByStatus(ctx context.Context, model interface{}, what string) (map[string]int64, error) {
	var rows []statusCount
	err := r.retry.Do(ctx, func(ctx context.Context) error {
		rows = nil
		return db.GetTxFromContext(ctx, r.db).
			Model(model).
			Select("status, COUNT(*) AS count").
			Group("status").
			Scan(&rows).Error
	})
	if err != nil {
		r.logger.Errorw("failed to count "+what+" by status", "error", err)
		return nil, fmt.Errorf("failed to count %s by status: %w", what, err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *StatsRepository) SumInvoicesByStatus(ctx context.Context, status string) (report.InvoiceSummary, error) {
	return r.sumInvoices(ctx, "invoices with status "+status, func(tx *gorm.DB) *gorm.DB {
		return tx.Scopes(db.StatusIn(status))
	})
}

func (r *StatsRepository) SumPastDueInvoices(ctx context.Context, asOf time.Time) (report.InvoiceSummary, error) {
	return r.sumInvoices(ctx, "past due invoices", func(tx *gorm.DB) *gorm.DB {
		return tx.Where("status = ? OR (status = ? AND due_date < ?)",
			invoice.StatusOverdue.String(),
			invoice.StatusPending.String(),
			asOf,
		)
	})
}

func (r *StatsRepository) sumInvoices(ctx context.Context, what string, filter func(*gorm.DB) *gorm.DB) (report.InvoiceSummary, error) {
	var sum invoiceSum
	err := r.retry.Do(ctx, func(ctx context.Context) error {
		sum = invoiceSum{}
		query := db.GetTxFromContext(ctx, r.db).Model(&models.InvoiceModel{})
		return filter(query).
			Select("COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total").
			Scan(&sum).Error
	})
	if err != nil {
		r.logger.Errorw("failed to sum "+what, "error", err)
		return report.InvoiceSummary{}, fmt.Errorf("failed to sum %s: %w", what, err)
	}

	return report.InvoiceSummary{Count: sum.Count, Total: sum.Total}, nil
}
