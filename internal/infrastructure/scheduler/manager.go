// Package scheduler provides scheduler management using gocron v2.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"tongpass/internal/shared/biztime"
	"tongpass/internal/shared/logger"
)

// BatchJob defines the interface for a scheduled batch processing job.
// Each Execute call processes a batch and returns the number of items processed.
type BatchJob interface {
	Execute(ctx context.Context) (int, error)
}

// SchedulerManager manages all scheduled jobs using gocron v2.
type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	// Track whether the scheduler has been started
	started   bool
	startedMu sync.RWMutex
}

// NewSchedulerManager creates a new SchedulerManager instance.
// It initializes gocron with the business timezone so interval anchoring
// matches the site clocks.
func NewSchedulerManager(log logger.Interface) (*SchedulerManager, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(biztime.Location()),
	)
	if err != nil {
		return nil, err
	}

	return &SchedulerManager{
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// RegisterAutoCheckoutJob registers the sweep that closes stale open
// attendance records on sites with an automatic checkout policy. The sweep is
// idempotent, so the interval needs no coordination with deploys or restarts.
func (m *SchedulerManager) RegisterAutoCheckoutJob(sweep BatchJob, interval time.Duration) error {
	_, err := m.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()
			m.runAutoCheckoutSweep(ctx, sweep)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("attendance", "auto-checkout"),
		gocron.WithName("attendance-auto-checkout"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered auto-checkout job", "interval", interval.String())
	return nil
}

func (m *SchedulerManager) runAutoCheckoutSweep(ctx context.Context, sweep BatchJob) {
	m.logger.Debugw("auto-checkout sweep started")

	startTime := biztime.NowUTC()

	closedCount, err := sweep.Execute(ctx)
	if err != nil {
		m.logger.Errorw("auto-checkout sweep failed",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	if closedCount > 0 {
		m.logger.Infow("stale attendance records closed",
			"count", closedCount,
			"duration", time.Since(startTime),
		)
	} else {
		m.logger.Debugw("no stale attendance records",
			"duration", time.Since(startTime),
		)
	}
}

// Start starts the scheduler if it is not already running.
func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler manager started", "job_count", len(m.scheduler.Jobs()))
}

// Stop gracefully stops the scheduler.
// It waits for all running jobs to complete before returning.
func (m *SchedulerManager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	m.logger.Infow("stopping scheduler manager")

	err := m.scheduler.Shutdown()
	m.started = false

	if err != nil {
		m.logger.Errorw("scheduler manager shutdown with error", "error", err)
		return err
	}

	m.logger.Infow("scheduler manager stopped")
	return nil
}

// IsStarted returns whether the scheduler is running.
func (m *SchedulerManager) IsStarted() bool {
	m.startedMu.RLock()
	defer m.startedMu.RUnlock()
	return m.started
}
