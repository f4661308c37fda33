// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/radio-billing/backend/internal/domain/entity"
	"github.com/radio-billing/backend/internal/domain/valueobject"
)

// ExpenseFilter narrows expense listings. Nil fields are not applied.
type ExpenseFilter struct {
	Status       *entity.RecordStatus
	PaymentMonth *valueobject.YearMonth
}

// ExpenseRepository defines the interface for expense instance persistence operations.
type ExpenseRepository interface {
	// Create inserts a new expense and assigns its ID.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by its ID.
	FindByID(ctx context.Context, id int64) (*entity.Expense, error)

	// FindAll retrieves expenses matching the filter ordered by ascending ID.
	FindAll(ctx context.Context, filter ExpenseFilter) ([]*entity.Expense, error)

	// FindUnreconciled retrieves expenses whose status is not matched, ordered by ascending ID.
	FindUnreconciled(ctx context.Context) ([]*entity.Expense, error)

	// FindByTemplateAndMonth retrieves the expense generated from a template for a month.
	// Returns nil without error when none exists.
	FindByTemplateAndMonth(ctx context.Context, templateID int64, generationMonth string) (*entity.Expense, error)

	// Update updates an existing expense in the database.
	Update(ctx context.Context, expense *entity.Expense) error

	// CountByStatus returns expense counts per status.
	CountByStatus(ctx context.Context) (valueobject.StatusCounts, error)
}
