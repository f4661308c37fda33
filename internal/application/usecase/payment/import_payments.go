// Package payment contains payment import and listing use cases.
package payment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/radio-billing/backend/internal/application/adapter"
	"github.com/radio-billing/backend/internal/application/usecase/batch"
	"github.com/radio-billing/backend/internal/domain/entity"
	domainerror "github.com/radio-billing/backend/internal/domain/error"
)

// ImportMode selects whether an import replaces or extends existing payments.
type ImportMode string

const (
	ImportModeOverwrite ImportMode = "overwrite"
	ImportModeAppend    ImportMode = "append"
)

// ImportPaymentsInput represents the input for a payment import.
type ImportPaymentsInput struct {
	Mode ImportMode
	Rows []PaymentRow
}

// RowError describes a rejected import row.
type RowError struct {
	Line    int
	Message string
}

// ImportPaymentsOutput represents the summary of a payment import.
type ImportPaymentsOutput struct {
	BatchRunID    string
	Mode          ImportMode
	ImportedCount int
	RejectedCount int
	Errors        []RowError
}

// ImportPaymentsUseCase handles bulk payment import.
type ImportPaymentsUseCase struct {
	paymentRepo adapter.PaymentRepository
	recorder    adapter.BatchRunRecorder
	clock       adapter.Clock
}

// NewImportPaymentsUseCase creates a new ImportPaymentsUseCase instance.
func NewImportPaymentsUseCase(
	paymentRepo adapter.PaymentRepository,
	recorder adapter.BatchRunRecorder,
	clock adapter.Clock,
) *ImportPaymentsUseCase {
	return &ImportPaymentsUseCase{
		paymentRepo: paymentRepo,
		recorder:    recorder,
		clock:       clock,
	}
}

// Execute imports the valid rows and reports the rejected ones. Overwrite mode removes
// every existing payment together with its pairings.
func (uc *ImportPaymentsUseCase) Execute(ctx context.Context, input ImportPaymentsInput) (*ImportPaymentsOutput, error) {
	if input.Mode != ImportModeOverwrite && input.Mode != ImportModeAppend {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidImportMode,
			fmt.Sprintf("import mode must be overwrite or append, got %q", input.Mode),
			domainerror.ErrInvalidImportMode,
		)
	}

	run := entity.NewBatchRun(entity.BatchOperationImportPayments, uc.clock.Now())
	output := &ImportPaymentsOutput{BatchRunID: run.ID.String(), Mode: input.Mode}

	payments := make([]*entity.Payment, 0, len(input.Rows))
	for _, row := range input.Rows {
		payment, err := row.toEntity()
		if err != nil {
			output.Errors = append(output.Errors, RowError{Line: row.Line, Message: err.Error()})
			continue
		}
		payments = append(payments, payment)
	}

	var err error
	if input.Mode == ImportModeOverwrite {
		err = uc.paymentRepo.ReplaceAll(ctx, payments)
	} else if len(payments) > 0 {
		err = uc.paymentRepo.CreateBatch(ctx, payments)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to import payments: %w", err)
	}

	output.ImportedCount = len(payments)
	output.RejectedCount = len(output.Errors)

	slog.Info("Payments imported",
		"batchRunID", output.BatchRunID,
		"mode", input.Mode,
		"imported", output.ImportedCount,
		"rejected", output.RejectedCount,
	)

	run.Counters["imported"] = output.ImportedCount
	run.Counters["rejected"] = output.RejectedCount
	for _, e := range output.Errors {
		run.Errors = append(run.Errors, e.Message)
	}
	run.Finish(uc.clock.Now())
	batch.Record(ctx, uc.recorder, run)

	return output, nil
}
