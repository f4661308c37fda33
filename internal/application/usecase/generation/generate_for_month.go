// Package generation contains recurring expense generation use cases.
package generation

import (
	"context"

	"github.com/radio-billing/backend/internal/application/adapter"
	"github.com/radio-billing/backend/internal/domain/entity"
	"github.com/radio-billing/backend/internal/domain/valueobject"
)

// GenerateForMonthInput represents the input for generating a target payment month.
type GenerateForMonthInput struct {
	Year  int
	Month int
}

// GenerateForMonthUseCase generates or refreshes expenses of every template for a month.
type GenerateForMonthUseCase struct {
	generator *generator
}

// NewGenerateForMonthUseCase creates a new GenerateForMonthUseCase instance.
func NewGenerateForMonthUseCase(
	templateRepo adapter.ExpenseTemplateRepository,
	expenseRepo adapter.ExpenseRepository,
	logRepo adapter.GenerationLogRepository,
	recorder adapter.BatchRunRecorder,
	clock adapter.Clock,
) *GenerateForMonthUseCase {
	return &GenerateForMonthUseCase{
		generator: &generator{
			templateRepo: templateRepo,
			expenseRepo:  expenseRepo,
			logRepo:      logRepo,
			recorder:     recorder,
			clock:        clock,
		},
	}
}

// Execute runs generation for the target month. An invalid month fails immediately;
// per-template failures are reported in the output.
func (uc *GenerateForMonthUseCase) Execute(ctx context.Context, input GenerateForMonthInput) (*GenerationOutput, error) {
	target, err := valueobject.NewYearMonth(input.Year, input.Month)
	if err != nil {
		return nil, err
	}
	return uc.generator.run(ctx, entity.BatchOperationGenerate, target, false)
}
