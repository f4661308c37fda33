// Package order contains purchase-order contract use cases.
package order

import (
	"context"
	"fmt"

	"github.com/radio-billing/backend/internal/application/adapter"
	"github.com/radio-billing/backend/internal/domain/entity"
)

// ListOrdersOutput represents the output of listing order contracts.
type ListOrdersOutput struct {
	Orders []*entity.OrderContract
}

// ListOrdersUseCase handles listing order contracts.
type ListOrdersUseCase struct {
	orderRepo adapter.OrderRepository
}

// NewListOrdersUseCase creates a new ListOrdersUseCase instance.
func NewListOrdersUseCase(orderRepo adapter.OrderRepository) *ListOrdersUseCase {
	return &ListOrdersUseCase{
		orderRepo: orderRepo,
	}
}

// Execute lists every order contract.
func (uc *ListOrdersUseCase) Execute(ctx context.Context) (*ListOrdersOutput, error) {
	orders, err := uc.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return &ListOrdersOutput{Orders: orders}, nil
}
