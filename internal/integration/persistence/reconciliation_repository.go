// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/radio-billing/backend/internal/application/adapter"
	"github.com/radio-billing/backend/internal/domain/entity"
	"github.com/radio-billing/backend/internal/integration/persistence/model"
)

// reconciliationRepository implements the adapter.ReconciliationRepository interface.
type reconciliationRepository struct {
	db *gorm.DB
}

// NewReconciliationRepository creates a new reconciliation repository instance.
func NewReconciliationRepository(db *gorm.DB) adapter.ReconciliationRepository {
	return &reconciliationRepository{
		db: db,
	}
}

// CommitExpenseMatch marks both records matched and stores the pairing in one transaction.
// The payment is guarded first so a payment taken by another pass is reported as such.
func (r *reconciliationRepository) CommitExpenseMatch(ctx context.Context, match *entity.ReconciliationMatch) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := markMatched(tx, &model.PaymentModel{}, "payment", match.PaymentID); err != nil {
			return err
		}
		if err := markMatched(tx, &model.ExpenseModel{}, "expense", *match.ExpenseID); err != nil {
			return err
		}
		return tx.Create(model.ReconciliationMatchFromEntity(match)).Error
	})
}

// CommitOrderMatch marks the payment matched and stores the (order, month) pairing in one
// transaction. The order status is maintained by the caller once all months are known.
func (r *reconciliationRepository) CommitOrderMatch(ctx context.Context, match *entity.ReconciliationMatch) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := markMatched(tx, &model.PaymentModel{}, "payment", match.PaymentID); err != nil {
			return err
		}
		return tx.Create(model.ReconciliationMatchFromEntity(match)).Error
	})
}

// FindOrderMatches retrieves every order pairing.
func (r *reconciliationRepository) FindOrderMatches(ctx context.Context) ([]*entity.ReconciliationMatch, error) {
	var matchModels []model.ReconciliationMatchModel
	err := r.db.WithContext(ctx).
		Where("kind = ?", string(entity.MatchKindOrder)).
		Order("order_id ASC, occurrence_month ASC").
		Find(&matchModels).Error
	if err != nil {
		return nil, err
	}
	return toMatchEntities(matchModels), nil
}

// FindByRecord retrieves the pairings that involve the record.
func (r *reconciliationRepository) FindByRecord(ctx context.Context, kind entity.MatchKind, recordID int64) ([]*entity.ReconciliationMatch, error) {
	var matchModels []model.ReconciliationMatchModel
	err := r.db.WithContext(ctx).
		Where("kind = ? AND "+recordColumn(kind)+" = ?", string(kind), recordID).
		Order("matched_at ASC").
		Find(&matchModels).Error
	if err != nil {
		return nil, err
	}
	return toMatchEntities(matchModels), nil
}

// Reset removes the pairings of the record and returns the record and its payments to
// unprocessed in one transaction.
func (r *reconciliationRepository) Reset(ctx context.Context, kind entity.MatchKind, recordID int64) (int, error) {
	var removed int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var paymentIDs []int64
		err := tx.Model(&model.ReconciliationMatchModel{}).
			Where("kind = ? AND "+recordColumn(kind)+" = ?", string(kind), recordID).
			Pluck("payment_id", &paymentIDs).Error
		if err != nil {
			return err
		}
		if len(paymentIDs) == 0 {
			return nil
		}

		if err := markUnprocessed(tx, &model.PaymentModel{}, paymentIDs); err != nil {
			return err
		}

		var recordTable interface{} = &model.ExpenseModel{}
		if kind == entity.MatchKindOrder {
			recordTable = &model.OrderContractModel{}
		}
		if err := markUnprocessed(tx, recordTable, []int64{recordID}); err != nil {
			return err
		}

		result := tx.Where("kind = ? AND "+recordColumn(kind)+" = ?", string(kind), recordID).
			Delete(&model.ReconciliationMatchModel{})
		if result.Error != nil {
			return result.Error
		}
		removed = int(result.RowsAffected)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

func recordColumn(kind entity.MatchKind) string {
	if kind == entity.MatchKindOrder {
		return "order_id"
	}
	return "expense_id"
}

func toMatchEntities(matchModels []model.ReconciliationMatchModel) []*entity.ReconciliationMatch {
	matches := make([]*entity.ReconciliationMatch, len(matchModels))
	for i := range matchModels {
		matches[i] = matchModels[i].ToEntity()
	}
	return matches
}
