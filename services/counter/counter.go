// Package counter keeps the per-day check-in and check-out tallies.
package counter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"frontdesk/database/kvstore"
	"frontdesk/models"
	"frontdesk/utils"

	"go.uber.org/zap"
)

// DailyTracker is the only writer of the daily counter record. Every
// operation, reads included, first creates today's entry if it is missing.
type DailyTracker interface {
	EnsureToday(ctx context.Context) (models.DailyCounter, error)
	IncrementCheckIns(ctx context.Context) (models.DailyCounter, error)
	IncrementCheckOuts(ctx context.Context) (models.DailyCounter, error)
	Today(ctx context.Context) (models.DailyCounter, error)
	TodayKey() string
}

type DefaultDailyTracker struct {
	Store    kvstore.Store
	Location *time.Location
	Now      func() time.Time
	Logger   *zap.Logger

	mu sync.Mutex
}

func NewDailyTracker(store kvstore.Store, loc *time.Location, logger *zap.Logger) *DefaultDailyTracker {
	if loc == nil {
		loc = time.Local
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultDailyTracker{Store: store, Location: loc, Now: time.Now, Logger: logger}
}

// DateKey formats a day the way counter records are keyed, e.g. "Wed Oct 14 2026".
func DateKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(utils.DayKeyLayout)
}

func (t *DefaultDailyTracker) TodayKey() string {
	return DateKey(t.Now(), t.Location)
}

func (t *DefaultDailyTracker) EnsureToday(ctx context.Context) (models.DailyCounter, error) {
	return t.update(ctx, nil)
}

func (t *DefaultDailyTracker) Today(ctx context.Context) (models.DailyCounter, error) {
	return t.update(ctx, nil)
}

func (t *DefaultDailyTracker) IncrementCheckIns(ctx context.Context) (models.DailyCounter, error) {
	return t.update(ctx, func(c *models.DailyCounter) { c.CheckIns++ })
}

func (t *DefaultDailyTracker) IncrementCheckOuts(ctx context.Context) (models.DailyCounter, error) {
	return t.update(ctx, func(c *models.DailyCounter) { c.CheckOuts++ })
}

// update loads all counters, creates today's entry when absent, applies mutate
// and writes the full mapping back if anything changed.
func (t *DefaultDailyTracker) update(ctx context.Context, mutate func(*models.DailyCounter)) (models.DailyCounter, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	counters, err := t.load(ctx)
	if err != nil {
		return models.DailyCounter{}, err
	}

	key := t.TodayKey()
	today, exists := counters[key]
	if exists && mutate == nil {
		return today, nil
	}
	if !exists {
		t.Logger.Info("Seeded daily counter", zap.String("date", key))
	}
	if mutate != nil {
		mutate(&today)
	}

	counters[key] = today
	if err := t.save(ctx, counters); err != nil {
		return models.DailyCounter{}, err
	}
	return today, nil
}

// All returns every stored day. Records are never pruned.
func (t *DefaultDailyTracker) All(ctx context.Context) (models.DailyCounters, error) {
	return t.load(ctx)
}

func (t *DefaultDailyTracker) load(ctx context.Context) (models.DailyCounters, error) {
	raw, err := t.Store.Get(ctx, utils.DailyCountersKey)
	if errors.Is(err, kvstore.ErrNotFound) {
		return models.DailyCounters{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read daily counters: %w", err)
	}
	counters := models.DailyCounters{}
	if err := json.Unmarshal([]byte(raw), &counters); err != nil {
		return nil, fmt.Errorf("failed to parse daily counters: %w", err)
	}
	if counters == nil {
		counters = models.DailyCounters{}
	}
	return counters, nil
}

func (t *DefaultDailyTracker) save(ctx context.Context, counters models.DailyCounters) error {
	data, err := json.Marshal(counters)
	if err != nil {
		return fmt.Errorf("failed to marshal daily counters: %w", err)
	}
	if err := t.Store.Set(ctx, utils.DailyCountersKey, string(data)); err != nil {
		return fmt.Errorf("failed to save daily counters: %w", err)
	}
	return nil
}
