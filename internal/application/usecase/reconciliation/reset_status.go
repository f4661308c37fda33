// Package reconciliation contains expense and order reconciliation use cases.
package reconciliation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/radio-billing/backend/internal/application/adapter"
	"github.com/radio-billing/backend/internal/domain/entity"
	domainerror "github.com/radio-billing/backend/internal/domain/error"
)

// ResetStatusInput represents the input for reverting a matched record.
type ResetStatusInput struct {
	Kind     entity.MatchKind
	RecordID int64
}

// ResetStatusOutput represents the result of a revert.
type ResetStatusOutput struct {
	Kind            entity.MatchKind
	RecordID        int64
	PairingsRemoved int
	PaymentIDs      []int64
}

// ResetStatusUseCase reverts a matched expense or order to unprocessed, releasing its payments.
// This is the only way a matched record returns to the matching pool.
type ResetStatusUseCase struct {
	reconciliationRepo adapter.ReconciliationRepository
}

// NewResetStatusUseCase creates a new ResetStatusUseCase instance.
func NewResetStatusUseCase(reconciliationRepo adapter.ReconciliationRepository) *ResetStatusUseCase {
	return &ResetStatusUseCase{
		reconciliationRepo: reconciliationRepo,
	}
}

// Execute performs the revert.
func (uc *ResetStatusUseCase) Execute(ctx context.Context, input ResetStatusInput) (*ResetStatusOutput, error) {
	if !input.Kind.IsValid() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidMatchKind,
			fmt.Sprintf("match kind must be %q or %q", entity.MatchKindExpense, entity.MatchKindOrder),
			domainerror.ErrInvalidMatchKind,
		)
	}

	pairings, err := uc.reconciliationRepo.FindByRecord(ctx, input.Kind, input.RecordID)
	if err != nil {
		return nil, err
	}
	if len(pairings) == 0 {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeNotMatched,
			fmt.Sprintf("%s %d has no reconciliation pairing", input.Kind, input.RecordID),
			domainerror.ErrNotMatched,
		)
	}

	removed, err := uc.reconciliationRepo.Reset(ctx, input.Kind, input.RecordID)
	if err != nil {
		return nil, err
	}

	paymentIDs := make([]int64, 0, len(pairings))
	for _, p := range pairings {
		paymentIDs = append(paymentIDs, p.PaymentID)
	}

	slog.Info("Reconciliation pairing reverted",
		"kind", input.Kind,
		"recordID", input.RecordID,
		"pairings", removed,
	)

	return &ResetStatusOutput{
		Kind:            input.Kind,
		RecordID:        input.RecordID,
		PairingsRemoved: removed,
		PaymentIDs:      paymentIDs,
	}, nil
}
