// Package reconciliation contains expense and order reconciliation use cases.
package reconciliation

import (
	"context"
	"log/slog"

	"github.com/radio-billing/backend/internal/application/adapter"
	"github.com/radio-billing/backend/internal/domain/entity"
	"github.com/radio-billing/backend/internal/domain/valueobject"
)

// MatchExpensesUseCase reconciles unreconciled expenses against unreconciled payments.
type MatchExpensesUseCase struct {
	expenseRepo        adapter.ExpenseRepository
	paymentRepo        adapter.PaymentRepository
	reconciliationRepo adapter.ReconciliationRepository
	recorder           adapter.BatchRunRecorder
	reporter           adapter.ReportService
	clock              adapter.Clock
	config             valueobject.MatchingConfig
}

// NewMatchExpensesUseCase creates a new MatchExpensesUseCase instance.
func NewMatchExpensesUseCase(
	expenseRepo adapter.ExpenseRepository,
	paymentRepo adapter.PaymentRepository,
	reconciliationRepo adapter.ReconciliationRepository,
	recorder adapter.BatchRunRecorder,
	reporter adapter.ReportService,
	clock adapter.Clock,
	config valueobject.MatchingConfig,
) *MatchExpensesUseCase {
	return &MatchExpensesUseCase{
		expenseRepo:        expenseRepo,
		paymentRepo:        paymentRepo,
		reconciliationRepo: reconciliationRepo,
		recorder:           recorder,
		reporter:           reporter,
		clock:              clock,
		config:             config,
	}
}

// Execute runs one matching pass. The expected month of an expense is the month of its
// payment date, which already encodes the payment timing applied at generation.
func (uc *MatchExpensesUseCase) Execute(ctx context.Context) (*MatchOutput, error) {
	expenses, err := uc.expenseRepo.FindUnreconciled(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := uc.paymentRepo.FindUnreconciled(ctx)
	if err != nil {
		return nil, err
	}

	run := entity.NewBatchRun(entity.BatchOperationMatchExpenses, uc.clock.Now())
	logger := slog.Default().With("batchRunID", run.ID.String(), "kind", entity.MatchKindExpense)

	candidates := make([]candidate, 0, len(expenses))
	for _, e := range expenses {
		candidates = append(candidates, candidate{
			RecordID:      e.ID,
			PayeeName:     e.Payee.Name,
			PayeeCode:     uc.config.NormalizeCode(e.Payee.Code),
			Amount:        e.Amount,
			ExpectedMonth: e.ExpectedPaymentMonth(),
		})
	}

	output := matchFirstWins(candidates, payments, uc.config, func(c candidate, p *entity.Payment) error {
		return uc.reconciliationRepo.CommitExpenseMatch(ctx, entity.NewExpenseMatch(c.RecordID, p.ID, run.ID))
	})
	output.BatchRunID = run.ID.String()

	for _, e := range output.Errors {
		logger.Warn("Skipped expense pair after commit failure", "expenseID", e.RecordID, "error", e.Message)
	}
	logger.Info("Expense reconciliation finished",
		"matched", output.MatchedCount,
		"unmatched", output.UnmatchedCount,
		"errors", len(output.Errors),
	)

	finishRun(ctx, run, output, entity.MatchKindExpense, uc.recorder, uc.reporter, uc.clock)
	return output, nil
}
