// Package order contains purchase-order contract use cases.
package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/radio-billing/backend/internal/application/adapter"
	"github.com/radio-billing/backend/internal/domain/entity"
	domainerror "github.com/radio-billing/backend/internal/domain/error"
)

// UpdateDocumentsInput represents the document lifecycle flags to change. Nil leaves a flag as is.
type UpdateDocumentsInput struct {
	OrderID              int64
	OrderPlaced          *bool
	DocumentsDistributed *bool
}

// UpdateDocumentsOutput represents the output of a document flag update.
type UpdateDocumentsOutput struct {
	Order *entity.OrderContract
}

// UpdateDocumentsUseCase records order placement and paperwork distribution.
type UpdateDocumentsUseCase struct {
	orderRepo adapter.OrderRepository
}

// NewUpdateDocumentsUseCase creates a new UpdateDocumentsUseCase instance.
func NewUpdateDocumentsUseCase(orderRepo adapter.OrderRepository) *UpdateDocumentsUseCase {
	return &UpdateDocumentsUseCase{
		orderRepo: orderRepo,
	}
}

// Execute performs the update.
func (uc *UpdateDocumentsUseCase) Execute(ctx context.Context, input UpdateDocumentsInput) (*UpdateDocumentsOutput, error) {
	order, err := uc.orderRepo.FindByID(ctx, input.OrderID)
	if err != nil {
		if errors.Is(err, domainerror.ErrOrderNotFound) {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeOrderNotFound,
				fmt.Sprintf("order contract %d not found", input.OrderID),
				domainerror.ErrOrderNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find order: %w", err)
	}

	if input.OrderPlaced != nil {
		order.OrderPlaced = *input.OrderPlaced
	}
	if input.DocumentsDistributed != nil {
		order.DocumentsDistributed = *input.DocumentsDistributed
	}
	order.UpdatedAt = time.Now().UTC()

	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	return &UpdateDocumentsOutput{Order: order}, nil
}
