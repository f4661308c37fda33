// Package template contains expense template use cases.
package template

import (
	"context"
	"fmt"

	"github.com/radio-billing/backend/internal/application/adapter"
	"github.com/radio-billing/backend/internal/domain/entity"
)

// ListTemplatesOutput represents the output of listing templates.
type ListTemplatesOutput struct {
	Templates []*entity.ExpenseTemplate
}

// ListTemplatesUseCase handles listing templates.
type ListTemplatesUseCase struct {
	templateRepo adapter.ExpenseTemplateRepository
}

// NewListTemplatesUseCase creates a new ListTemplatesUseCase instance.
func NewListTemplatesUseCase(templateRepo adapter.ExpenseTemplateRepository) *ListTemplatesUseCase {
	return &ListTemplatesUseCase{
		templateRepo: templateRepo,
	}
}

// Execute lists every template.
func (uc *ListTemplatesUseCase) Execute(ctx context.Context) (*ListTemplatesOutput, error) {
	templates, err := uc.templateRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return &ListTemplatesOutput{Templates: templates}, nil
}

// GetTemplateInput represents the input for fetching one template.
type GetTemplateInput struct {
	TemplateID int64
}

// GetTemplateUseCase handles fetching one template.
type GetTemplateUseCase struct {
	templateRepo adapter.ExpenseTemplateRepository
}

// NewGetTemplateUseCase creates a new GetTemplateUseCase instance.
func NewGetTemplateUseCase(templateRepo adapter.ExpenseTemplateRepository) *GetTemplateUseCase {
	return &GetTemplateUseCase{
		templateRepo: templateRepo,
	}
}

// Execute fetches the template.
func (uc *GetTemplateUseCase) Execute(ctx context.Context, input GetTemplateInput) (*entity.ExpenseTemplate, error) {
	return findTemplate(ctx, uc.templateRepo, input.TemplateID)
}
