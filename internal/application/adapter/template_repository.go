// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/radio-billing/backend/internal/domain/entity"
)

// ExpenseTemplateRepository defines the interface for expense template persistence operations.
type ExpenseTemplateRepository interface {
	// Create inserts a new template and assigns its ID.
	Create(ctx context.Context, template *entity.ExpenseTemplate) error

	// FindByID retrieves a template by its ID.
	FindByID(ctx context.Context, id int64) (*entity.ExpenseTemplate, error)

	// FindAll retrieves all non-deleted templates ordered by ascending ID.
	FindAll(ctx context.Context) ([]*entity.ExpenseTemplate, error)

	// Update updates an existing template in the database.
	Update(ctx context.Context, template *entity.ExpenseTemplate) error

	// Delete soft-deletes a template. Generated expenses keep their template link.
	Delete(ctx context.Context, id int64) error
}
