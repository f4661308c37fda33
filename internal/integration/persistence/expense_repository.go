// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/radio-billing/backend/internal/application/adapter"
	"github.com/radio-billing/backend/internal/domain/entity"
	domainerror "github.com/radio-billing/backend/internal/domain/error"
	"github.com/radio-billing/backend/internal/domain/valueobject"
	"github.com/radio-billing/backend/internal/integration/persistence/model"
)

// expenseRepository implements the adapter.ExpenseRepository and
// adapter.GenerationLogRepository interfaces.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// NewGenerationLogRepository creates a new generation log repository instance.
func NewGenerationLogRepository(db *gorm.DB) adapter.GenerationLogRepository {
	return &expenseRepository{
		db: db,
	}
}

// Create creates a new expense in the database.
func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.ExpenseFromEntity(expense)
	if err := r.db.WithContext(ctx).Create(expenseModel).Error; err != nil {
		return err
	}
	expense.ID = expenseModel.ID
	return nil
}

// FindByID retrieves an expense by its ID.
func (r *expenseRepository) FindByID(ctx context.Context, id int64) (*entity.Expense, error) {
	var expenseModel model.ExpenseModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrExpenseNotFound
		}
		return nil, result.Error
	}
	return expenseModel.ToEntity(), nil
}

// FindAll retrieves expenses matching the filter ordered by ascending ID.
func (r *expenseRepository) FindAll(ctx context.Context, filter adapter.ExpenseFilter) ([]*entity.Expense, error) {
	query := r.db.WithContext(ctx).Model(&model.ExpenseModel{})
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.PaymentMonth != nil {
		query = inMonth(query, "payment_date", *filter.PaymentMonth)
	}
	return r.find(query)
}

// FindUnreconciled retrieves expenses whose status is not matched, ordered by ascending ID.
func (r *expenseRepository) FindUnreconciled(ctx context.Context) ([]*entity.Expense, error) {
	query := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Where("status <> ?", string(entity.StatusMatched))
	return r.find(query)
}

// FindByTemplateAndMonth retrieves the expense generated from a template for a month.
func (r *expenseRepository) FindByTemplateAndMonth(ctx context.Context, templateID int64, generationMonth string) (*entity.Expense, error) {
	var expenseModel model.ExpenseModel
	result := r.db.WithContext(ctx).
		Where("template_id = ? AND generation_month = ?", templateID, generationMonth).
		Order("id ASC").
		First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return expenseModel.ToEntity(), nil
}

// Update updates an existing expense in the database.
func (r *expenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	return r.db.WithContext(ctx).Save(model.ExpenseFromEntity(expense)).Error
}

// CountByStatus returns expense counts per status.
func (r *expenseRepository) CountByStatus(ctx context.Context) (valueobject.StatusCounts, error) {
	return countByStatus(ctx, r.db, &model.ExpenseModel{})
}

// InsertGenerated inserts a generated expense and its log entry in one transaction.
func (r *expenseRepository) InsertGenerated(ctx context.Context, expense *entity.Expense, entry *entity.GenerationLogEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		expenseModel := model.ExpenseFromEntity(expense)
		if err := tx.Create(expenseModel).Error; err != nil {
			return err
		}

		entry.ExpenseID = expenseModel.ID
		logModel := model.GenerationLogFromEntity(entry)
		if err := tx.Create(logModel).Error; err != nil {
			return err
		}

		expense.ID = expenseModel.ID
		entry.ID = logModel.ID
		return nil
	})
}

// FindByMonth retrieves the log entries of a generation month.
func (r *expenseRepository) FindByMonth(ctx context.Context, generationMonth string) ([]*entity.GenerationLogEntry, error) {
	var logModels []model.GenerationLogModel
	err := r.db.WithContext(ctx).
		Where("generation_month = ?", generationMonth).
		Order("template_id ASC").
		Find(&logModels).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*entity.GenerationLogEntry, len(logModels))
	for i := range logModels {
		entries[i] = logModels[i].ToEntity()
	}
	return entries, nil
}

func (r *expenseRepository) find(query *gorm.DB) ([]*entity.Expense, error) {
	var expenseModels []model.ExpenseModel
	if err := query.Order("id ASC").Find(&expenseModels).Error; err != nil {
		return nil, err
	}

	expenses := make([]*entity.Expense, len(expenseModels))
	for i := range expenseModels {
		expenses[i] = expenseModels[i].ToEntity()
	}
	return expenses, nil
}
