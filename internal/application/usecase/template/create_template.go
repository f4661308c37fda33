// Package template contains expense template use cases.
package template

import (
	"context"
	"fmt"

	"github.com/radio-billing/backend/internal/application/adapter"
	"github.com/radio-billing/backend/internal/domain/entity"
)

// CreateTemplateInput represents the input for template creation.
type CreateTemplateInput struct {
	Fields TemplateFields
}

// CreateTemplateOutput represents the output of template creation.
type CreateTemplateOutput struct {
	Template *entity.ExpenseTemplate
}

// CreateTemplateUseCase handles template creation logic.
type CreateTemplateUseCase struct {
	templateRepo adapter.ExpenseTemplateRepository
}

// NewCreateTemplateUseCase creates a new CreateTemplateUseCase instance.
func NewCreateTemplateUseCase(templateRepo adapter.ExpenseTemplateRepository) *CreateTemplateUseCase {
	return &CreateTemplateUseCase{
		templateRepo: templateRepo,
	}
}

// Execute performs the template creation.
func (uc *CreateTemplateUseCase) Execute(ctx context.Context, input CreateTemplateInput) (*CreateTemplateOutput, error) {
	parsed, err := validateFields(input.Fields)
	if err != nil {
		return nil, err
	}

	template := entity.NewExpenseTemplate(
		parsed.payee,
		input.Fields.Title,
		input.Fields.BaseAmount,
		parsed.mode,
		parsed.weekdays,
		parsed.timing,
	)
	template.ValidFrom = input.Fields.ValidFrom
	template.ValidTo = input.Fields.ValidTo
	template.Notes = input.Fields.Notes

	if err := uc.templateRepo.Create(ctx, template); err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}

	return &CreateTemplateOutput{Template: template}, nil
}
