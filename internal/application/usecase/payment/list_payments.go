// Package payment contains payment import and listing use cases.
package payment

import (
	"context"
	"fmt"
	"strings"

	"github.com/radio-billing/backend/internal/application/adapter"
	"github.com/radio-billing/backend/internal/domain/entity"
	domainerror "github.com/radio-billing/backend/internal/domain/error"
	"github.com/radio-billing/backend/internal/domain/valueobject"
)

// ListPaymentsInput represents the optional filters for listing payments.
type ListPaymentsInput struct {
	Status       string
	PaymentMonth string // YYYY-MM
}

// ListPaymentsOutput represents the output of listing payments.
type ListPaymentsOutput struct {
	Payments []*entity.Payment
}

// ListPaymentsUseCase handles listing payments.
type ListPaymentsUseCase struct {
	paymentRepo adapter.PaymentRepository
}

// NewListPaymentsUseCase creates a new ListPaymentsUseCase instance.
func NewListPaymentsUseCase(paymentRepo adapter.PaymentRepository) *ListPaymentsUseCase {
	return &ListPaymentsUseCase{
		paymentRepo: paymentRepo,
	}
}

// Execute lists payments in ascending ID order.
func (uc *ListPaymentsUseCase) Execute(ctx context.Context, input ListPaymentsInput) (*ListPaymentsOutput, error) {
	var filter adapter.PaymentFilter

	if s := strings.TrimSpace(input.Status); s != "" {
		status, ok := entity.ParseRecordStatus(s)
		if !ok {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeInvalidStatus,
				fmt.Sprintf("unknown status %q", s),
				domainerror.ErrInvalidStatus,
			)
		}
		filter.Status = &status
	}

	if input.PaymentMonth != "" {
		month, err := valueobject.ParseYearMonth(input.PaymentMonth)
		if err != nil {
			return nil, err
		}
		filter.PaymentMonth = &month
	}

	payments, err := uc.paymentRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	return &ListPaymentsOutput{Payments: payments}, nil
}
