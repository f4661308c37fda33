// Package template contains expense template use cases.
package template

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/radio-billing/backend/internal/application/adapter"
	"github.com/radio-billing/backend/internal/domain/entity"
	domainerror "github.com/radio-billing/backend/internal/domain/error"
)

// UpdateTemplateInput represents the input for template update. All fields are replaced.
type UpdateTemplateInput struct {
	TemplateID int64
	Fields     TemplateFields
}

// UpdateTemplateOutput represents the output of template update.
type UpdateTemplateOutput struct {
	Template *entity.ExpenseTemplate
}

// UpdateTemplateUseCase handles template update logic. Already generated expenses keep
// their amounts until the next generation run for their month.
type UpdateTemplateUseCase struct {
	templateRepo adapter.ExpenseTemplateRepository
}

// NewUpdateTemplateUseCase creates a new UpdateTemplateUseCase instance.
func NewUpdateTemplateUseCase(templateRepo adapter.ExpenseTemplateRepository) *UpdateTemplateUseCase {
	return &UpdateTemplateUseCase{
		templateRepo: templateRepo,
	}
}

// Execute performs the template update.
func (uc *UpdateTemplateUseCase) Execute(ctx context.Context, input UpdateTemplateInput) (*UpdateTemplateOutput, error) {
	template, err := findTemplate(ctx, uc.templateRepo, input.TemplateID)
	if err != nil {
		return nil, err
	}

	parsed, err := validateFields(input.Fields)
	if err != nil {
		return nil, err
	}

	template.Payee = parsed.payee
	template.Title = input.Fields.Title
	template.BaseAmount = input.Fields.BaseAmount
	template.PricingMode = parsed.mode
	template.Weekdays = parsed.weekdays
	template.Timing = parsed.timing
	template.ValidFrom = input.Fields.ValidFrom
	template.ValidTo = input.Fields.ValidTo
	template.Notes = input.Fields.Notes
	template.UpdatedAt = time.Now().UTC()

	if err := uc.templateRepo.Update(ctx, template); err != nil {
		return nil, fmt.Errorf("failed to update template: %w", err)
	}

	return &UpdateTemplateOutput{Template: template}, nil
}

func findTemplate(ctx context.Context, repo adapter.ExpenseTemplateRepository, id int64) (*entity.ExpenseTemplate, error) {
	template, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrTemplateNotFound) {
			return nil, domainerror.NewTemplateError(
				domainerror.ErrCodeTemplateNotFound,
				fmt.Sprintf("expense template %d not found", id),
				domainerror.ErrTemplateNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find template: %w", err)
	}
	return template, nil
}
