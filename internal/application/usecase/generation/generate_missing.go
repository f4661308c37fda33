// Package generation contains recurring expense generation use cases.
package generation

import (
	"context"

	"github.com/radio-billing/backend/internal/application/adapter"
	"github.com/radio-billing/backend/internal/domain/entity"
	"github.com/radio-billing/backend/internal/domain/valueobject"
)

// GenerateMissingUseCase generates instances for the current month only for templates
// that have none yet. Used by periodic catch-up runs.
type GenerateMissingUseCase struct {
	generator *generator
}

// NewGenerateMissingUseCase creates a new GenerateMissingUseCase instance.
func NewGenerateMissingUseCase(
	templateRepo adapter.ExpenseTemplateRepository,
	expenseRepo adapter.ExpenseRepository,
	logRepo adapter.GenerationLogRepository,
	recorder adapter.BatchRunRecorder,
	clock adapter.Clock,
) *GenerateMissingUseCase {
	return &GenerateMissingUseCase{
		generator: &generator{
			templateRepo: templateRepo,
			expenseRepo:  expenseRepo,
			logRepo:      logRepo,
			recorder:     recorder,
			clock:        clock,
		},
	}
}

// Execute runs catch-up generation for the month of the clock's current time.
func (uc *GenerateMissingUseCase) Execute(ctx context.Context) (*GenerationOutput, error) {
	current := valueobject.YearMonthOf(uc.generator.clock.Now())
	return uc.generator.run(ctx, entity.BatchOperationCatchUp, current, true)
}
