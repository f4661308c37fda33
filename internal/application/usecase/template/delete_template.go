// Package template contains expense template use cases.
package template

import (
	"context"
	"fmt"

	"github.com/radio-billing/backend/internal/application/adapter"
)

// DeleteTemplateInput represents the input for template deletion.
type DeleteTemplateInput struct {
	TemplateID int64
}

// DeleteTemplateUseCase soft-deletes a template. Generated expenses are never removed.
type DeleteTemplateUseCase struct {
	templateRepo adapter.ExpenseTemplateRepository
}

// NewDeleteTemplateUseCase creates a new DeleteTemplateUseCase instance.
func NewDeleteTemplateUseCase(templateRepo adapter.ExpenseTemplateRepository) *DeleteTemplateUseCase {
	return &DeleteTemplateUseCase{
		templateRepo: templateRepo,
	}
}

// Execute performs the template deletion.
func (uc *DeleteTemplateUseCase) Execute(ctx context.Context, input DeleteTemplateInput) error {
	if _, err := findTemplate(ctx, uc.templateRepo, input.TemplateID); err != nil {
		return err
	}
	if err := uc.templateRepo.Delete(ctx, input.TemplateID); err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}
	return nil
}
