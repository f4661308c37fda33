// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/radio-billing/backend/internal/application/adapter"
	"github.com/radio-billing/backend/internal/domain/entity"
	domainerror "github.com/radio-billing/backend/internal/domain/error"
	"github.com/radio-billing/backend/internal/integration/persistence/model"
)

// expenseTemplateRepository implements the adapter.ExpenseTemplateRepository interface.
type expenseTemplateRepository struct {
	db *gorm.DB
}

// NewExpenseTemplateRepository creates a new expense template repository instance.
func NewExpenseTemplateRepository(db *gorm.DB) adapter.ExpenseTemplateRepository {
	return &expenseTemplateRepository{
		db: db,
	}
}

// Create creates a new template in the database.
func (r *expenseTemplateRepository) Create(ctx context.Context, template *entity.ExpenseTemplate) error {
	templateModel := model.ExpenseTemplateFromEntity(template)
	if err := r.db.WithContext(ctx).Create(templateModel).Error; err != nil {
		return err
	}
	template.ID = templateModel.ID
	return nil
}

// FindByID retrieves a template by its ID.
func (r *expenseTemplateRepository) FindByID(ctx context.Context, id int64) (*entity.ExpenseTemplate, error) {
	var templateModel model.ExpenseTemplateModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&templateModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTemplateNotFound
		}
		return nil, result.Error
	}
	return templateModel.ToEntity(), nil
}

// FindAll retrieves all templates ordered by ascending ID.
func (r *expenseTemplateRepository) FindAll(ctx context.Context) ([]*entity.ExpenseTemplate, error) {
	var templateModels []model.ExpenseTemplateModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&templateModels).Error; err != nil {
		return nil, err
	}

	templates := make([]*entity.ExpenseTemplate, len(templateModels))
	for i := range templateModels {
		templates[i] = templateModels[i].ToEntity()
	}
	return templates, nil
}

// Update updates an existing template in the database.
func (r *expenseTemplateRepository) Update(ctx context.Context, template *entity.ExpenseTemplate) error {
	return r.db.WithContext(ctx).Save(model.ExpenseTemplateFromEntity(template)).Error
}

// Delete soft-deletes a template.
func (r *expenseTemplateRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.ExpenseTemplateModel{}, "id = ?", id).Error
}
