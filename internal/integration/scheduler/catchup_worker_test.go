package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/radio-billing/backend/internal/application/usecase/generation"
)

type countingRunner struct {
	calls atomic.Int32
	err   error
}

func (r *countingRunner) Execute(context.Context) (*generation.GenerationOutput, error) {
	r.calls.Add(1)
	if r.err != nil {
		return nil, r.err
	}
	return &generation.GenerationOutput{GeneratedCount: 1}, nil
}

func TestCatchUpWorker_RunsImmediatelyAndOnTick(t *testing.T) {
	runner := &countingRunner{}
	worker := NewCatchUpWorker(runner, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		worker.Start(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for runner.calls.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("expected at least 3 runs, got %d", runner.calls.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after cancellation")
	}
}

func TestCatchUpWorker_SurvivesFailures(t *testing.T) {
	runner := &countingRunner{err: errors.New("database is locked")}
	worker := NewCatchUpWorker(runner, time.Hour)

	worker.runOnce(context.Background())
	worker.runOnce(context.Background())

	if runner.calls.Load() != 2 {
		t.Errorf("expected 2 calls, got %d", runner.calls.Load())
	}
}

func TestNewCatchUpWorker_NonPositiveInterval(t *testing.T) {
	for _, interval := range []time.Duration{0, -5 * time.Minute} {
		worker := NewCatchUpWorker(&countingRunner{}, interval)
		if worker.interval != DefaultInterval {
			t.Errorf("interval %s: expected %s, got %s", interval, DefaultInterval, worker.interval)
		}
	}
}

func TestCatchUpWorker_StartsWithZeroInterval(t *testing.T) {
	runner := &countingRunner{}
	worker := NewCatchUpWorker(runner, 0)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		worker.Start(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for runner.calls.Load() < 1 {
		select {
		case <-deadline:
			t.Fatal("expected the immediate run")
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after cancellation")
	}
}
