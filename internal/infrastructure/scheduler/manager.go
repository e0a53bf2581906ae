// Package scheduler runs background jobs using gocron v2.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"

	"ispdesk/internal/shared/biztime"
	"ispdesk/internal/shared/logger"
)

const (
	defaultMonitorInterval = 30 * time.Second
	stopTimeout            = 10 * time.Second
)

// BatchJob is one scheduled unit of work. Execute returns the number of
// items processed.
type BatchJob interface {
	Execute(ctx context.Context) (int, error)
}

// SchedulerManager owns the single gocron scheduler of the process.
type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	mu      sync.RWMutex
	started bool
}

// NewSchedulerManager creates a scheduler in the business timezone. gocron's
// own diagnostics go to log.
func NewSchedulerManager(log logger.Interface) (*SchedulerManager, error) {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(biztime.Location()),
		gocron.WithLogger(log),
		gocron.WithStopTimeout(stopTimeout),
	)
	if err != nil {
		return nil, err
	}
	return &SchedulerManager{scheduler: s, logger: log}, nil
}

// RegisterRouterMonitorJob refreshes the router status snapshot every
// interval, starting at once. A slow sample delays the next run instead of
// overlapping it, and no run outlives its interval.
func (m *SchedulerManager) RegisterRouterMonitorJob(monitor BatchJob, interval time.Duration) error {
	if interval <= 0 {
		interval = defaultMonitorInterval
	}
	return m.every("router-monitor", "failed to refresh router status", monitor, interval, "router", "monitor")
}

// every registers job on a fixed interval. Failures are logged with failMsg
// and never unschedule the job.
func (m *SchedulerManager) every(name, failMsg string, job BatchJob, interval time.Duration, tags ...string) error {
	task := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), interval)
		defer cancel()

		started := time.Now()
		n, err := job.Execute(ctx)
		if err == nil {
			m.logger.Debugw("scheduled job finished", "job", name, "count", n, "duration", time.Since(started))
		}
		return err
	}

	_, err := m.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(task),
		gocron.WithName(name),
		gocron.WithTags(tags...),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithEventListeners(
			gocron.AfterJobRunsWithError(func(_ uuid.UUID, jobName string, err error) {
				m.logger.Errorw(failMsg, "job", jobName, "error", err)
			}),
		),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered job", "job", name, "interval", interval.String())
	return nil
}

func (m *SchedulerManager) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler started", "job_count", len(m.scheduler.Jobs()))
}

// Stop waits up to stopTimeout for running jobs, then shuts the scheduler down.
// Calling it before Start is a no-op.
func (m *SchedulerManager) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.started {
		return nil
	}

	m.started = false
	if err := m.scheduler.Shutdown(); err != nil {
		m.logger.Errorw("scheduler shutdown with error", "error", err)
		return err
	}
	m.logger.Infow("scheduler stopped")
	return nil
}

func (m *SchedulerManager) IsStarted() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.started
}

func (m *SchedulerManager) Jobs() []gocron.Job {
	return m.scheduler.Jobs()
}
