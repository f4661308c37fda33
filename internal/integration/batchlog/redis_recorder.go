// Package batchlog records batch run summaries in Redis.
package batchlog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/radio-billing/backend/internal/application/adapter"
	"github.com/radio-billing/backend/internal/domain/entity"
)

const keyPrefix = "billing:batch_run:"

// redisRecorder implements the adapter.BatchRunRecorder interface.
type redisRecorder struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisRecorder creates a recorder keeping runs for ttl. A zero ttl keeps them forever.
func NewRedisRecorder(client *redis.Client, ttl time.Duration) adapter.BatchRunRecorder {
	return &redisRecorder{
		client: client,
		ttl:    ttl,
	}
}

// runRecord is the stored JSON form of a batch run.
type runRecord struct {
	ID         string         `json:"id"`
	Operation  string         `json:"operation"`
	StartedAt  time.Time      `json:"startedAt"`
	FinishedAt time.Time      `json:"finishedAt"`
	Counters   map[string]int `json:"counters"`
	Errors     []string       `json:"errors"`
}

// Record stores the run under its ID and as the latest run of its operation.
func (r *redisRecorder) Record(ctx context.Context, run *entity.BatchRun) error {
	payload, err := json.Marshal(runRecord{
		ID:         run.ID.String(),
		Operation:  string(run.Operation),
		StartedAt:  run.StartedAt,
		FinishedAt: run.FinishedAt,
		Counters:   run.Counters,
		Errors:     run.Errors,
	})
	if err != nil {
		return fmt.Errorf("failed to encode batch run: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, keyPrefix+run.ID.String(), payload, r.ttl)
		pipe.Set(ctx, lastKey(run.Operation), payload, r.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to record batch run: %w", err)
	}
	return nil
}

// Last returns the latest run of the operation, or nil when none is stored.
func (r *redisRecorder) Last(ctx context.Context, operation entity.BatchOperation) (*entity.BatchRun, error) {
	payload, err := r.client.Get(ctx, lastKey(operation)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read batch run: %w", err)
	}

	var rec runRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode batch run: %w", err)
	}

	run := &entity.BatchRun{
		Operation:  entity.BatchOperation(rec.Operation),
		StartedAt:  rec.StartedAt,
		FinishedAt: rec.FinishedAt,
		Counters:   rec.Counters,
		Errors:     rec.Errors,
	}
	if err := run.ID.UnmarshalText([]byte(rec.ID)); err != nil {
		return nil, fmt.Errorf("failed to decode batch run id: %w", err)
	}
	return run, nil
}

func lastKey(operation entity.BatchOperation) string {
	return keyPrefix + "last:" + string(operation)
}
