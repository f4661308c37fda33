// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/radio-billing/backend/internal/domain/entity"
)

// GenerationLogRepository defines the interface for recurring generation bookkeeping.
type GenerationLogRepository interface {
	// InsertGenerated inserts the expense and its log entry in one transaction.
	// On success both IDs are assigned and entry.ExpenseID refers to the expense.
	InsertGenerated(ctx context.Context, expense *entity.Expense, entry *entity.GenerationLogEntry) error

	// FindByMonth retrieves the log entries of a generation month.
	FindByMonth(ctx context.Context, generationMonth string) ([]*entity.GenerationLogEntry, error)
}
