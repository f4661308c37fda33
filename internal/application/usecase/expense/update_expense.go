// Package expense contains manual expense use cases.
package expense

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/radio-billing/backend/internal/application/adapter"
	"github.com/radio-billing/backend/internal/domain/entity"
	domainerror "github.com/radio-billing/backend/internal/domain/error"
	"github.com/radio-billing/backend/internal/domain/valueobject"
)

// UpdateExpenseInput represents the input for expense update. Nil fields are left unchanged.
type UpdateExpenseInput struct {
	ExpenseID   int64
	PayeeName   *string
	PayeeCode   *string
	Title       *string
	Amount      *decimal.Decimal
	PaymentDate *time.Time
	Status      *string
	Notes       *string
}

// UpdateExpenseOutput represents the output of expense update.
type UpdateExpenseOutput struct {
	Expense *entity.Expense
}

// UpdateExpenseUseCase handles expense update logic.
type UpdateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(expenseRepo adapter.ExpenseRepository) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense update.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	expense, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID)
	if err != nil {
		if errors.Is(err, domainerror.ErrExpenseNotFound) {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeExpenseNotFound,
				fmt.Sprintf("expense %d not found", input.ExpenseID),
				domainerror.ErrExpenseNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find expense: %w", err)
	}

	if expense.IsGenerated() && (input.Amount != nil || input.PaymentDate != nil) {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeGeneratedFieldLocked,
			fmt.Sprintf("expense %d is generated from template %d; edit the template instead", expense.ID, *expense.TemplateID),
			domainerror.ErrGeneratedFieldLocked,
		)
	}

	if input.PayeeName != nil {
		name := strings.TrimSpace(*input.PayeeName)
		if name == "" {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeMissingLedgerFields,
				"payee name cannot be empty",
				domainerror.ErrMissingPayeeName,
			)
		}
		expense.Payee.Name = name
	}
	if input.PayeeCode != nil {
		expense.Payee.Code = strings.TrimSpace(*input.PayeeCode)
	}
	if input.Title != nil {
		expense.Title = *input.Title
	}
	if input.Amount != nil {
		if err := validateAmount(*input.Amount); err != nil {
			return nil, err
		}
		expense.Amount = *input.Amount
	}
	if input.PaymentDate != nil {
		expense.PaymentDate = valueobject.YearMonthOf(*input.PaymentDate).LastDay()
	}
	if input.Status != nil {
		status, err := parseStatus(*input.Status)
		if err != nil {
			return nil, err
		}
		expense.Status = status
	}
	if input.Notes != nil {
		expense.Notes = *input.Notes
	}

	expense.UpdatedAt = time.Now().UTC()

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	return &UpdateExpenseOutput{Expense: expense}, nil
}
