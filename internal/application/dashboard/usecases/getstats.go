package usecases

import (
	"context"

	"golang.org/x/sync/errgroup"

	"ispdesk/internal/application/dashboard/dto"
	"ispdesk/internal/domain/invoice"
	"ispdesk/internal/domain/report"
	vo "ispdesk/internal/domain/ticket/valueobjects"
	"ispdesk/internal/shared/biztime"
	"ispdesk/internal/shared/errors"
	"ispdesk/internal/shared/logger"
)

type GetStatsExecutor interface {
	Execute(ctx context.Context) (*dto.StatsDTO, error)
}

type GetNetworkExecutor interface {
	Execute(ctx context.Context) (*dto.NetworkDTO, error)
}

// GetStatsUseCase gathers the dashboard counters concurrently.
type GetStatsUseCase struct {
	statsRepo report.StatsRepository
	logger    logger.Interface
}

func NewGetStatsUseCase(statsRepo report.StatsRepository, logger logger.Interface) *GetStatsUseCase {
	return &GetStatsUseCase{
		statsRepo: statsRepo,
		logger:    logger,
	}
}

func (uc *GetStatsUseCase) Execute(ctx context.Context) (*dto.StatsDTO, error) {
	uc.logger.Debugw("fetching dashboard stats")

	now := biztime.NowUTC()

	var (
		clients map[string]int64
		tickets map[string]int64
		devices map[string]int64
		pending report.InvoiceSummary
		overdue report.InvoiceSummary
		paid    report.InvoiceSummary
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		counts, err := uc.statsRepo.CountClientsByStatus(gctx)
		if err != nil {
			uc.logger.Errorw("failed to count clients", "error", err)
			return errors.NewInternalError("failed to count clients")
		}
		clients = counts
		return nil
	})

	g.Go(func() error {
		counts, err := uc.statsRepo.CountTicketsByStatus(gctx)
		if err != nil {
			uc.logger.Errorw("failed to count tickets", "error", err)
			return errors.NewInternalError("failed to count tickets")
		}
		tickets = counts
		return nil
	})

	g.Go(func() error {
		counts, err := uc.statsRepo.CountDevicesByStatus(gctx)
		if err != nil {
			uc.logger.Errorw("failed to count devices", "error", err)
			return errors.NewInternalError("failed to count devices")
		}
		devices = counts
		return nil
	})

	g.Go(func() error {
		sum, err := uc.statsRepo.SumInvoicesByStatus(gctx, invoice.StatusPending.String())
		if err != nil {
			uc.logger.Errorw("failed to sum pending invoices", "error", err)
			return errors.NewInternalError("failed to sum pending invoices")
		}
		pending = sum
		return nil
	})

	g.Go(func() error {
		sum, err := uc.statsRepo.SumPastDueInvoices(gctx, biztime.StartOfDayUTC(now))
		if err != nil {
			uc.logger.Errorw("failed to sum overdue invoices", "error", err)
			return errors.NewInternalError("failed to sum overdue invoices")
		}
		overdue = sum
		return nil
	})

	g.Go(func() error {
		sum, err := uc.statsRepo.SumInvoicesByStatus(gctx, invoice.StatusPaid.String())
		if err != nil {
			uc.logger.Errorw("failed to sum paid invoices", "error", err)
			return errors.NewInternalError("failed to sum paid invoices")
		}
		paid = sum
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dto.StatsDTO{
		Clients:     dto.ToCountsDTO(clients),
		Tickets:     dto.ToCountsDTO(tickets),
		OpenTickets: countActiveTickets(tickets),
		Invoices: dto.InvoiceStatsDTO{
			Pending: dto.ToInvoiceSummaryDTO(pending),
			Overdue: dto.ToInvoiceSummaryDTO(overdue),
			Paid:    dto.ToInvoiceSummaryDTO(paid),
		},
		Devices:     dto.ToCountsDTO(devices),
		GeneratedAt: now,
	}, nil
}

// GetNetworkUseCase returns the router snapshot kept by the status monitor.
type GetNetworkUseCase struct {
	snapshots report.SnapshotReader
}

func NewGetNetworkUseCase(snapshots report.SnapshotReader) *GetNetworkUseCase {
	return &GetNetworkUseCase{snapshots: snapshots}
}

func (uc *GetNetworkUseCase) Execute(ctx context.Context) (*dto.NetworkDTO, error) {
	return dto.ToNetworkDTO(uc.snapshots.Snapshot()), nil
}

func countActiveTickets(byStatus map[string]int64) int64 {
	var n int64
	for _, st := range vo.ActiveTicketStatuses {
		n += byStatus[st.String()]
	}
	return n
}
