// Package expense contains manual expense use cases.
package expense

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/radio-billing/backend/internal/application/adapter"
	"github.com/radio-billing/backend/internal/domain/entity"
	domainerror "github.com/radio-billing/backend/internal/domain/error"
	"github.com/radio-billing/backend/internal/domain/valueobject"
)

// CreateExpenseInput represents the input for entering an expense by hand.
type CreateExpenseInput struct {
	PayeeName   string
	PayeeCode   string
	Title       string
	Amount      decimal.Decimal
	PaymentDate time.Time
	Notes       string
}

// CreateExpenseOutput represents the output of manual expense creation.
type CreateExpenseOutput struct {
	Expense *entity.Expense
}

// CreateExpenseUseCase handles manual expense creation.
type CreateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(expenseRepo adapter.ExpenseRepository) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute creates the expense with status unprocessed.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	name := strings.TrimSpace(input.PayeeName)
	if name == "" || input.PaymentDate.IsZero() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeMissingLedgerFields,
			"payee name and payment date are required",
			domainerror.ErrMissingPayeeName,
		)
	}
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}

	expense := entity.NewManualExpense(
		valueobject.PayeeIdentity{Name: name, Code: strings.TrimSpace(input.PayeeCode)},
		input.Title,
		input.Amount,
		input.PaymentDate,
		input.Notes,
	)

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return &CreateExpenseOutput{Expense: expense}, nil
}

func validateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAmount,
			"amount must not be negative",
			domainerror.ErrInvalidAmount,
		)
	}
	return nil
}

func parseStatus(s string) (entity.RecordStatus, error) {
	status, ok := entity.ParseRecordStatus(strings.TrimSpace(s))
	if !ok {
		return "", domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidStatus,
			fmt.Sprintf("unknown status %q", s),
			domainerror.ErrInvalidStatus,
		)
	}
	return status, nil
}
