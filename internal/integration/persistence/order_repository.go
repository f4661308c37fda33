// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/radio-billing/backend/internal/application/adapter"
	"github.com/radio-billing/backend/internal/domain/entity"
	domainerror "github.com/radio-billing/backend/internal/domain/error"
	"github.com/radio-billing/backend/internal/domain/valueobject"
	"github.com/radio-billing/backend/internal/integration/persistence/model"
)

// orderRepository implements the adapter.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order contract repository instance.
func NewOrderRepository(db *gorm.DB) adapter.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create creates a new order contract in the database.
func (r *orderRepository) Create(ctx context.Context, order *entity.OrderContract) error {
	orderModel := model.OrderContractFromEntity(order)
	if err := r.db.WithContext(ctx).Create(orderModel).Error; err != nil {
		return err
	}
	order.ID = orderModel.ID
	return nil
}

// FindByID retrieves an order contract by its ID.
func (r *orderRepository) FindByID(ctx context.Context, id int64) (*entity.OrderContract, error) {
	var orderModel model.OrderContractModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&orderModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrOrderNotFound
		}
		return nil, result.Error
	}
	return orderModel.ToEntity(), nil
}

// FindAll retrieves all order contracts ordered by ascending ID.
func (r *orderRepository) FindAll(ctx context.Context) ([]*entity.OrderContract, error) {
	var orderModels []model.OrderContractModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&orderModels).Error; err != nil {
		return nil, err
	}

	orders := make([]*entity.OrderContract, len(orderModels))
	for i := range orderModels {
		orders[i] = orderModels[i].ToEntity()
	}
	return orders, nil
}

// Update updates an existing order contract in the database.
func (r *orderRepository) Update(ctx context.Context, order *entity.OrderContract) error {
	return r.db.WithContext(ctx).Save(model.OrderContractFromEntity(order)).Error
}

// UpdateStatus sets the reconciliation status of an order contract.
func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, status entity.RecordStatus) error {
	result := r.db.WithContext(ctx).
		Model(&model.OrderContractModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrOrderNotFound
	}
	return nil
}

// CountByStatus returns order counts per status.
func (r *orderRepository) CountByStatus(ctx context.Context) (valueobject.StatusCounts, error) {
	return countByStatus(ctx, r.db, &model.OrderContractModel{})
}
