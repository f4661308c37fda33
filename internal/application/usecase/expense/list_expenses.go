// Package expense contains manual expense use cases.
package expense

import (
	"context"
	"fmt"

	"github.com/radio-billing/backend/internal/application/adapter"
	"github.com/radio-billing/backend/internal/domain/entity"
	"github.com/radio-billing/backend/internal/domain/valueobject"
)

// ListExpensesInput represents the optional filters for listing expenses.
type ListExpensesInput struct {
	Status       string // Empty for all statuses
	PaymentMonth string // YYYY-MM, empty for all months
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Expenses []*entity.Expense
}

// ListExpensesUseCase handles listing expenses.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute lists expenses in ascending ID order.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	var filter adapter.ExpenseFilter

	if input.Status != "" {
		status, err := parseStatus(input.Status)
		if err != nil {
			return nil, err
		}
		filter.Status = &status
	}

	if input.PaymentMonth != "" {
		month, err := valueobject.ParseYearMonth(input.PaymentMonth)
		if err != nil {
			return nil, err
		}
		filter.PaymentMonth = &month
	}

	expenses, err := uc.expenseRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	return &ListExpensesOutput{Expenses: expenses}, nil
}
