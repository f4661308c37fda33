// Package order contains purchase-order contract use cases.
package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/radio-billing/backend/internal/application/adapter"
	"github.com/radio-billing/backend/internal/domain/entity"
	domainerror "github.com/radio-billing/backend/internal/domain/error"
	"github.com/radio-billing/backend/internal/domain/valueobject"
)

// CreateOrderInput represents the input for registering an order contract.
// Regular contracts use the period and pricing fields; spot contracts use the spot fields.
type CreateOrderInput struct {
	OrderType            string
	PayeeName            string
	PayeeCode            string
	Title                string
	PricingMode          string
	BaseAmount           decimal.Decimal
	Weekdays             string
	ContractStart        *time.Time
	ContractEnd          *time.Time
	SpotAmount           decimal.Decimal
	ImplementationDate   *time.Time
	PaymentTiming        string
	OrderPlaced          bool
	DocumentsDistributed bool
}

// CreateOrderOutput represents the output of order creation.
type CreateOrderOutput struct {
	Order *entity.OrderContract
}

// CreateOrderUseCase handles order contract registration.
type CreateOrderUseCase struct {
	orderRepo adapter.OrderRepository
}

// NewCreateOrderUseCase creates a new CreateOrderUseCase instance.
func NewCreateOrderUseCase(orderRepo adapter.OrderRepository) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orderRepo: orderRepo,
	}
}

// Execute validates and stores the contract.
func (uc *CreateOrderUseCase) Execute(ctx context.Context, input CreateOrderInput) (*CreateOrderOutput, error) {
	orderType, ok := entity.ParseOrderType(strings.TrimSpace(input.OrderType))
	if !ok {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidOrderType,
			fmt.Sprintf("order type must be regular or spot, got %q", input.OrderType),
			domainerror.ErrInvalidOrderType,
		)
	}

	name := strings.TrimSpace(input.PayeeName)
	if name == "" {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeMissingLedgerFields,
			"payee name is required",
			domainerror.ErrMissingPayeeName,
		)
	}
	payee := valueobject.PayeeIdentity{Name: name, Code: strings.TrimSpace(input.PayeeCode)}

	timingLabel := input.PaymentTiming
	if strings.TrimSpace(timingLabel) == "" {
		timingLabel = string(valueobject.PaymentTimingEndOfCurrentMonth)
	}
	timing, err := valueobject.ParsePaymentTiming(timingLabel)
	if err != nil {
		return nil, err
	}

	var order *entity.OrderContract
	if orderType == entity.OrderTypeSpot {
		order, err = newSpot(input, payee, timing)
	} else {
		order, err = newRegular(input, payee, timing)
	}
	if err != nil {
		return nil, err
	}

	order.OrderPlaced = input.OrderPlaced
	order.DocumentsDistributed = input.DocumentsDistributed

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return &CreateOrderOutput{Order: order}, nil
}

func newSpot(input CreateOrderInput, payee valueobject.PayeeIdentity, timing valueobject.PaymentTiming) (*entity.OrderContract, error) {
	if input.ImplementationDate == nil || input.SpotAmount.IsZero() {
		return nil, domainerror.NewConfigurationError(
			domainerror.ErrCodeMissingSpotDetails,
			"spot contract requires an amount and an implementation date",
			domainerror.ErrMissingSpotDetails,
		)
	}
	if input.SpotAmount.IsNegative() {
		return nil, invalidAmount()
	}
	return entity.NewSpotOrder(payee, input.Title, input.SpotAmount, *input.ImplementationDate, timing), nil
}

func newRegular(input CreateOrderInput, payee valueobject.PayeeIdentity, timing valueobject.PaymentTiming) (*entity.OrderContract, error) {
	if input.ContractStart == nil || input.ContractEnd == nil || input.ContractEnd.Before(*input.ContractStart) {
		return nil, domainerror.NewConfigurationError(
			domainerror.ErrCodeMissingContractPeriod,
			"regular contract requires a start date on or before its end date",
			domainerror.ErrMissingContractPeriod,
		)
	}
	if input.BaseAmount.IsNegative() {
		return nil, invalidAmount()
	}

	modeLabel := input.PricingMode
	if strings.TrimSpace(modeLabel) == "" {
		modeLabel = string(valueobject.PricingModeFixedMonthly)
	}
	mode, err := valueobject.ParsePricingMode(modeLabel)
	if err != nil {
		return nil, err
	}

	weekdays, err := valueobject.ParseWeekdaySet(input.Weekdays)
	if err != nil {
		return nil, err
	}
	if mode == valueobject.PricingModeCountBased && weekdays.IsEmpty() {
		return nil, domainerror.NewConfigurationError(
			domainerror.ErrCodeNoBroadcastDays,
			"count-based contracts require broadcast weekdays",
			domainerror.ErrNoBroadcastDays,
		)
	}

	return entity.NewRegularOrder(
		payee,
		input.Title,
		mode,
		input.BaseAmount,
		weekdays,
		*input.ContractStart,
		*input.ContractEnd,
		timing,
	), nil
}

func invalidAmount() error {
	return domainerror.NewLedgerError(
		domainerror.ErrCodeInvalidAmount,
		"amount must not be negative",
		domainerror.ErrInvalidAmount,
	)
}
