// Package scheduler runs periodic background batches.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/radio-billing/backend/internal/application/usecase/generation"
)

// CatchUpRunner generates missing expenses for the current month.
type CatchUpRunner interface {
	Execute(ctx context.Context) (*generation.GenerationOutput, error)
}

// CatchUpWorker periodically fills in expenses for templates that have none this month.
type CatchUpWorker struct {
	runner   CatchUpRunner
	interval time.Duration
}

// DefaultInterval is used when the worker is given a non-positive interval.
const DefaultInterval = time.Hour

// NewCatchUpWorker creates a new catch-up worker.
func NewCatchUpWorker(runner CatchUpRunner, interval time.Duration) *CatchUpWorker {
	if interval <= 0 {
		slog.Warn("Invalid catch-up interval, using default", "interval", interval, "default", DefaultInterval)
		interval = DefaultInterval
	}
	return &CatchUpWorker{
		runner:   runner,
		interval: interval,
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *CatchUpWorker) Start(ctx context.Context) {
	slog.Info("Catch-up worker started", "interval", w.interval)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// Run immediately on start, then on ticker
	w.runOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Catch-up worker shutting down")
			return
		case <-ticker.C:
			w.runOnce(ctx)
		}
	}
}

func (w *CatchUpWorker) runOnce(ctx context.Context) {
	output, err := w.runner.Execute(ctx)
	if err != nil {
		slog.Error("Catch-up generation failed", "error", err)
		return
	}

	if output.GeneratedCount == 0 && len(output.Errors) == 0 {
		slog.Debug("Catch-up generation found nothing to do", "month", output.TargetMonth)
		return
	}

	slog.Info("Catch-up generation completed",
		"batchRunID", output.BatchRunID.String(),
		"month", output.TargetMonth,
		"generated", output.GeneratedCount,
		"skipped", output.SkippedCount,
		"errors", len(output.Errors),
	)
}
