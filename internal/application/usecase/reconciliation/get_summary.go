// Package reconciliation contains expense and order reconciliation use cases.
package reconciliation

import (
	"context"

	"github.com/radio-billing/backend/internal/application/adapter"
	"github.com/radio-billing/backend/internal/domain/valueobject"
)

// GetSummaryOutput represents the output for getting reconciliation summary.
type GetSummaryOutput struct {
	Summary valueobject.ReconciliationSummary
}

// GetSummaryUseCase handles getting reconciliation summary.
type GetSummaryUseCase struct {
	expenseRepo adapter.ExpenseRepository
	paymentRepo adapter.PaymentRepository
	orderRepo   adapter.OrderRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(
	expenseRepo adapter.ExpenseRepository,
	paymentRepo adapter.PaymentRepository,
	orderRepo adapter.OrderRepository,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		expenseRepo: expenseRepo,
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
	}
}

// Execute retrieves status counts of every record set.
func (uc *GetSummaryUseCase) Execute(ctx context.Context) (*GetSummaryOutput, error) {
	expenses, err := uc.expenseRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := uc.paymentRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := uc.orderRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	return &GetSummaryOutput{
		Summary: valueobject.ReconciliationSummary{
			Expenses: expenses,
			Payments: payments,
			Orders:   orders,
		},
	}, nil
}
