// Package batch contains batch-run bookkeeping use cases.
package batch

import (
	"context"
	"fmt"

	"github.com/radio-billing/backend/internal/application/adapter"
	"github.com/radio-billing/backend/internal/domain/entity"
)

// GetLastRunInput represents the input for looking up the latest batch run.
type GetLastRunInput struct {
	Operation entity.BatchOperation
}

// GetLastRunOutput represents the latest batch run, nil when none was recorded.
type GetLastRunOutput struct {
	Run *entity.BatchRun
}

// GetLastRunUseCase handles latest batch run lookups.
type GetLastRunUseCase struct {
	recorder adapter.BatchRunRecorder
}

// NewGetLastRunUseCase creates a new GetLastRunUseCase instance.
func NewGetLastRunUseCase(recorder adapter.BatchRunRecorder) *GetLastRunUseCase {
	return &GetLastRunUseCase{recorder: recorder}
}

// Execute returns the latest run of the operation.
func (uc *GetLastRunUseCase) Execute(ctx context.Context, input GetLastRunInput) (*GetLastRunOutput, error) {
	if uc.recorder == nil {
		return &GetLastRunOutput{}, nil
	}
	run, err := uc.recorder.Last(ctx, input.Operation)
	if err != nil {
		return nil, fmt.Errorf("failed to load last batch run: %w", err)
	}
	return &GetLastRunOutput{Run: run}, nil
}
