// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/radio-billing/backend/internal/domain/entity"
	"github.com/radio-billing/backend/internal/domain/valueobject"
)

// PaymentFilter narrows payment listings. Nil fields are not applied.
type PaymentFilter struct {
	Status       *entity.RecordStatus
	PaymentMonth *valueobject.YearMonth
}

// PaymentRepository defines the interface for payment record persistence operations.
type PaymentRepository interface {
	// CreateBatch inserts payments in one transaction, assigning IDs in slice order.
	CreateBatch(ctx context.Context, payments []*entity.Payment) error

	// ReplaceAll deletes every payment (and its pairings) and inserts the given ones in one transaction.
	ReplaceAll(ctx context.Context, payments []*entity.Payment) error

	// FindByID retrieves a payment by its ID.
	FindByID(ctx context.Context, id int64) (*entity.Payment, error)

	// FindAll retrieves payments matching the filter ordered by ascending ID.
	FindAll(ctx context.Context, filter PaymentFilter) ([]*entity.Payment, error)

	// FindUnreconciled retrieves payments whose status is not matched, ordered by ascending ID.
	FindUnreconciled(ctx context.Context) ([]*entity.Payment, error)

	// CountByStatus returns payment counts per status.
	CountByStatus(ctx context.Context) (valueobject.StatusCounts, error)
}
