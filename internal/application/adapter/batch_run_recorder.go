// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/radio-billing/backend/internal/domain/entity"
)

// BatchRunRecorder stores summaries of batch executions.
type BatchRunRecorder interface {
	// Record stores the run as the latest run of its operation.
	Record(ctx context.Context, run *entity.BatchRun) error

	// Last retrieves the latest run of the operation, or nil when none was recorded.
	Last(ctx context.Context, operation entity.BatchOperation) (*entity.BatchRun, error)
}
