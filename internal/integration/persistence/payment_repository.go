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

const paymentInsertBatchSize = 200

// paymentRepository implements the adapter.PaymentRepository interface.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository instance.
func NewPaymentRepository(db *gorm.DB) adapter.PaymentRepository {
	return &paymentRepository{
		db: db,
	}
}

// CreateBatch inserts payments in one transaction, assigning IDs in slice order.
func (r *paymentRepository) CreateBatch(ctx context.Context, payments []*entity.Payment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return insertPayments(tx, payments)
	})
}

// ReplaceAll deletes every payment and pairing, returns previously paired records to
// unprocessed and inserts the given payments in one transaction.
func (r *paymentRepository) ReplaceAll(ctx context.Context, payments []*entity.Payment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		pairedExpenses := tx.Model(&model.ReconciliationMatchModel{}).
			Select("expense_id").
			Where("kind = ?", string(entity.MatchKindExpense))
		if err := markUnprocessed(tx, &model.ExpenseModel{}, pairedExpenses); err != nil {
			return err
		}

		pairedOrders := tx.Model(&model.ReconciliationMatchModel{}).
			Select("order_id").
			Where("kind = ?", string(entity.MatchKindOrder))
		if err := markUnprocessed(tx, &model.OrderContractModel{}, pairedOrders); err != nil {
			return err
		}

		if err := tx.Where("1 = 1").Delete(&model.ReconciliationMatchModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&model.PaymentModel{}).Error; err != nil {
			return err
		}

		return insertPayments(tx, payments)
	})
}

// FindByID retrieves a payment by its ID.
func (r *paymentRepository) FindByID(ctx context.Context, id int64) (*entity.Payment, error) {
	var paymentModel model.PaymentModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&paymentModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPaymentNotFound
		}
		return nil, result.Error
	}
	return paymentModel.ToEntity(), nil
}

// FindAll retrieves payments matching the filter ordered by ascending ID.
func (r *paymentRepository) FindAll(ctx context.Context, filter adapter.PaymentFilter) ([]*entity.Payment, error) {
	query := r.db.WithContext(ctx).Model(&model.PaymentModel{})
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.PaymentMonth != nil {
		query = inMonth(query, "payment_date", *filter.PaymentMonth)
	}
	return r.find(query)
}

// FindUnreconciled retrieves payments whose status is not matched, ordered by ascending ID.
func (r *paymentRepository) FindUnreconciled(ctx context.Context) ([]*entity.Payment, error) {
	query := r.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("status <> ?", string(entity.StatusMatched))
	return r.find(query)
}

// CountByStatus returns payment counts per status.
func (r *paymentRepository) CountByStatus(ctx context.Context) (valueobject.StatusCounts, error) {
	return countByStatus(ctx, r.db, &model.PaymentModel{})
}

func (r *paymentRepository) find(query *gorm.DB) ([]*entity.Payment, error) {
	var paymentModels []model.PaymentModel
	if err := query.Order("id ASC").Find(&paymentModels).Error; err != nil {
		return nil, err
	}

	payments := make([]*entity.Payment, len(paymentModels))
	for i := range paymentModels {
		payments[i] = paymentModels[i].ToEntity()
	}
	return payments, nil
}

func insertPayments(tx *gorm.DB, payments []*entity.Payment) error {
	if len(payments) == 0 {
		return nil
	}

	paymentModels := make([]*model.PaymentModel, len(payments))
	for i, p := range payments {
		paymentModels[i] = model.PaymentFromEntity(p)
	}
	if err := tx.CreateInBatches(paymentModels, paymentInsertBatchSize).Error; err != nil {
		return err
	}

	for i, m := range paymentModels {
		payments[i].ID = m.ID
	}
	return nil
}
