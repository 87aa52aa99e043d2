package cron

import (
	"context"
	"time"

	"frontdesk/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	// MidnightSpec fires at the start of every day in the scheduler's location.
	MidnightSpec = "0 0 * * *"
	// HealthSpec is how often the store is probed in the background.
	HealthSpec = "@every 30s"

	jobTimeout = 10 * time.Second
)

// Worker runs the front desk's background jobs.
type Worker struct {
	scheduler *cron.Cron
	logger    *zap.Logger
}

// NewWorker schedules the daily counter rollover and the store health probe.
// ensureToday is typically DailyTracker.EnsureToday wrapped to drop the record.
func NewWorker(loc *time.Location, logger *zap.Logger, ensureToday func(ctx context.Context) error, backend string, store utils.Pinger) (*Worker, error) {
	if loc == nil {
		loc = time.Local
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	w := &Worker{
		scheduler: cron.New(cron.WithLocation(loc)),
		logger:    logger,
	}

	if _, err := w.scheduler.AddFunc(MidnightSpec, w.openDay(ensureToday)); err != nil {
		return nil, err
	}
	if store != nil {
		if _, err := w.scheduler.AddFunc(HealthSpec, w.probeStore(backend, store)); err != nil {
			return nil, err
		}
	}
	return w, nil
}

func (w *Worker) openDay(ensureToday func(ctx context.Context) error) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()
		if err := ensureToday(ctx); err != nil {
			w.logger.Error("[DayRollover] failed to open today's counters", zap.Error(err))
			return
		}
		w.logger.Info("[DayRollover] today's counters are ready")
	}
}

func (w *Worker) probeStore(backend string, store utils.Pinger) func() {
	return func() {
		status := utils.CheckHealth(context.Background(), backend, store)
		if !status.Store {
			w.logger.Warn("[HealthMonitor] store connection lost", zap.String("backend", backend), zap.String("error", status.Error))
		}
	}
}

// Start runs the scheduler in its own goroutine.
func (w *Worker) Start() {
	w.scheduler.Start()
	w.logger.Info("[Worker] background jobs started", zap.Int("jobs", len(w.scheduler.Entries())))
}

// Stop halts scheduling and waits for running jobs, bounded by ctx.
func (w *Worker) Stop(ctx context.Context) {
	done := w.scheduler.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		w.logger.Warn("[Worker] stopped before running jobs finished")
	}
}

// Entries exposes the scheduled jobs, mainly for inspection.
func (w *Worker) Entries() []cron.Entry {
	return w.scheduler.Entries()
}
