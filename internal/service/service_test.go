package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRunner struct {
	calls atomic.Int32
	err   error
}

func (r *countingRunner) Run(context.Context) error {
	r.calls.Add(1)
	return r.err
}

func TestRunOnce(t *testing.T) {
	runner := &countingRunner{}
	svc := NewMuxService(runner, "", cron.New())

	require.NoError(t, svc.RunOnce(context.Background()))
	assert.Equal(t, int32(1), runner.calls.Load())

	runner.err = errors.New("boom")
	assert.Error(t, svc.RunOnce(context.Background()))
}

func TestScheduleInvalidExpr(t *testing.T) {
	svc := NewMuxService(&countingRunner{}, "not a cron expr", cron.New())

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	assert.Error(t, svc.Schedule(ctx))
}

func TestScheduleStopsOnContextDone(t *testing.T) {
	svc := NewMuxService(&countingRunner{}, "@every 1h", cron.New())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Schedule(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Schedule did not return after context cancellation")
	}
}
