package router

import (
	"context"
	"fmt"
	"sync"
	"time"

	"ispdesk/internal/domain/device"
	"ispdesk/internal/domain/report"
	"ispdesk/internal/shared/biztime"
	"ispdesk/internal/shared/config"
	"ispdesk/internal/shared/logger"
)

// Monitor keeps the latest router readings for the dashboard. The scheduler
// calls Execute on every tick; readers see the last successful sample.
type Monitor struct {
	sampler device.StatusSampler
	logger  logger.Interface

	mu        sync.RWMutex
	routers   []device.RouterStatus
	updatedAt time.Time
}

func NewMonitor(sampler device.StatusSampler, logger logger.Interface) *Monitor {
	return &Monitor{
		sampler: sampler,
		logger:  logger,
	}
}

// NewSampler picks the sampler for the configured mode. Only routeros mode
// with a monitor address reads a real device.
func NewSampler(cfg config.RouterConfig) device.StatusSampler {
	if cfg.Mode == ModeRouterOS && cfg.MonitorAddress != "" {
		return NewRouterOSSampler(cfg.MonitorAddress, cfg.MonitorUsername, cfg.MonitorPassword, cfg.ConnectTimeout())
	}
	return NewSimulatedSampler()
}

// Execute takes one sample and returns the number of routers read. On
// failure the previous snapshot is kept.
func (m *Monitor) Execute(ctx context.Context) (int, error) {
	m.mu.RLock()
	previous := make([]device.RouterStatus, len(m.routers))
	copy(previous, m.routers)
	m.mu.RUnlock()

	routers, err := m.sampler.Sample(ctx, previous)
	if err != nil {
		return 0, fmt.Errorf("failed to sample routers: %w", err)
	}

	m.mu.Lock()
	m.routers = routers
	m.updatedAt = biztime.NowUTC()
	m.mu.Unlock()

	m.logger.Debugw("router status refreshed", "routers", len(routers))
	return len(routers), nil
}

func (m *Monitor) Snapshot() report.NetworkSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	readings := make([]report.RouterReading, len(m.routers))
	for i, r := range m.routers {
		readings[i] = report.RouterReading{
			Name:        r.Name,
			Status:      r.Status.String(),
			CPULoad:     r.CPULoad,
			MemoryUsage: r.MemoryUsage,
			Uptime:      r.Uptime,
		}
	}

	return report.NetworkSnapshot{
		Routers:   readings,
		UpdatedAt: m.updatedAt,
	}
}
