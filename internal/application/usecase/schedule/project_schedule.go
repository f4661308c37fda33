// Package schedule contains order schedule projection use cases.
package schedule

import (
	"context"
	"log/slog"

	"github.com/radio-billing/backend/internal/application/adapter"
	"github.com/radio-billing/backend/internal/domain/valueobject"
)

// ProjectScheduleInput represents the input for projecting the order schedule.
type ProjectScheduleInput struct {
	Month *valueobject.YearMonth // Optional occurrence month filter
}

// ProjectScheduleOutput represents the projected obligations.
type ProjectScheduleOutput struct {
	Obligations []ProjectedObligation
	Errors      []valueobject.ItemError
}

// ProjectScheduleUseCase expands order contracts into monthly obligations.
type ProjectScheduleUseCase struct {
	orderRepo adapter.OrderRepository
	projector projector
}

// NewProjectScheduleUseCase creates a new ProjectScheduleUseCase instance.
func NewProjectScheduleUseCase(orderRepo adapter.OrderRepository, config valueobject.MatchingConfig) *ProjectScheduleUseCase {
	return &ProjectScheduleUseCase{
		orderRepo: orderRepo,
		projector: projector{config: config},
	}
}

// Execute projects every order contract.
func (uc *ProjectScheduleUseCase) Execute(ctx context.Context, input ProjectScheduleInput) (*ProjectScheduleOutput, error) {
	orders, err := uc.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	obligations, errs := uc.projector.project(orders, input.Month)
	for _, e := range errs {
		slog.Warn("Skipping order with invalid configuration", "orderID", e.RecordID, "error", e.Message)
	}

	return &ProjectScheduleOutput{
		Obligations: obligations,
		Errors:      errs,
	}, nil
}
