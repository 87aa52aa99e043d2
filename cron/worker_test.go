package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func TestWorkerSchedulesMidnightRollover(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	w, err := NewWorker(ist, nil, func(context.Context) error { return nil }, "memory", stubPinger{})
	require.NoError(t, err)

	entries := w.Entries()
	require.Len(t, entries, 2)

	from := time.Date(2026, time.October, 14, 18, 45, 0, 0, ist)
	midnight := entries[0].Schedule.Next(from)
	assert.True(t, midnight.Equal(time.Date(2026, time.October, 15, 0, 0, 0, 0, ist)), "next rollover %s", midnight)
	probe := entries[1].Schedule.Next(from)
	assert.True(t, probe.Equal(from.Add(30*time.Second)), "next probe %s", probe)
}

func TestWorkerWithoutStoreSkipsProbe(t *testing.T) {
	w, err := NewWorker(time.UTC, nil, func(context.Context) error { return nil }, "", nil)
	require.NoError(t, err)
	assert.Len(t, w.Entries(), 1)
}

func TestOpenDayCallsEnsureToday(t *testing.T) {
	calls := 0
	ensure := func(ctx context.Context) error {
		calls++
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		if calls > 1 {
			return errors.New("store down")
		}
		return nil
	}
	w, err := NewWorker(time.UTC, nil, ensure, "", nil)
	require.NoError(t, err)

	job := w.openDay(ensure)
	job()
	job()
	assert.Equal(t, 2, calls)
}

func TestStartStop(t *testing.T) {
	w, err := NewWorker(time.UTC, nil, func(context.Context) error { return nil }, "memory", stubPinger{})
	require.NoError(t, err)

	w.Start()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	w.Stop(ctx)
}
