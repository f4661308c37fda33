// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/radio-billing/backend/internal/domain/entity"
	"github.com/radio-billing/backend/internal/domain/valueobject"
)

// OrderRepository defines the interface for order contract persistence operations.
type OrderRepository interface {
	// Create inserts a new order contract and assigns its ID.
	Create(ctx context.Context, order *entity.OrderContract) error

	// FindByID retrieves an order contract by its ID.
	FindByID(ctx context.Context, id int64) (*entity.OrderContract, error)

	// FindAll retrieves all order contracts ordered by ascending ID.
	FindAll(ctx context.Context) ([]*entity.OrderContract, error)

	// Update updates an existing order contract in the database.
	Update(ctx context.Context, order *entity.OrderContract) error

	// UpdateStatus sets the reconciliation status of an order contract.
	UpdateStatus(ctx context.Context, id int64, status entity.RecordStatus) error

	// CountByStatus returns order counts per status.
	CountByStatus(ctx context.Context) (valueobject.StatusCounts, error)
}
