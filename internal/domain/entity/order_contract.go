// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"

	domainerror "github.com/radio-billing/backend/internal/domain/error"
	"github.com/radio-billing/backend/internal/domain/valueobject"
)

// OrderType distinguishes recurring contracts from one-off spots.
type OrderType string

const (
	OrderTypeRegular OrderType = "regular"
	OrderTypeSpot    OrderType = "spot"
)

var orderTypeAliases = map[string]OrderType{
	"regular": OrderTypeRegular,
	"レギュラー":   OrderTypeRegular,
	"spot":    OrderTypeSpot,
	"スポット":    OrderTypeSpot,
}

// ParseOrderType resolves an order type name or its Japanese label.
func ParseOrderType(s string) (OrderType, bool) {
	t, ok := orderTypeAliases[s]
	return t, ok
}

// OrderContract is a purchase-order obligation with a contract period or a single spot date.
type OrderContract struct {
	ID                   int64
	Payee                valueobject.PayeeIdentity
	Title                string
	OrderType            OrderType
	PricingMode          valueobject.PricingMode
	BaseAmount           decimal.Decimal // Monthly amount, or unit price per broadcast when count-based
	Weekdays             valueobject.WeekdaySet
	ContractStart        *time.Time
	ContractEnd          *time.Time
	SpotAmount           decimal.Decimal
	ImplementationDate   *time.Time
	Timing               valueobject.PaymentTiming
	OrderPlaced          bool
	DocumentsDistributed bool
	Status               RecordStatus
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// NewRegularOrder creates a recurring contract over a period.
func NewRegularOrder(
	payee valueobject.PayeeIdentity,
	title string,
	pricingMode valueobject.PricingMode,
	baseAmount decimal.Decimal,
	weekdays valueobject.WeekdaySet,
	contractStart, contractEnd time.Time,
	timing valueobject.PaymentTiming,
) *OrderContract {
	now := time.Now().UTC()

	return &OrderContract{
		Payee:         payee,
		Title:         title,
		OrderType:     OrderTypeRegular,
		PricingMode:   pricingMode,
		BaseAmount:    baseAmount,
		Weekdays:      weekdays,
		ContractStart: &contractStart,
		ContractEnd:   &contractEnd,
		Timing:        timing,
		Status:        StatusUnprocessed,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// NewSpotOrder creates a one-off contract with a single implementation date.
func NewSpotOrder(
	payee valueobject.PayeeIdentity,
	title string,
	spotAmount decimal.Decimal,
	implementationDate time.Time,
	timing valueobject.PaymentTiming,
) *OrderContract {
	now := time.Now().UTC()

	return &OrderContract{
		Payee:              payee,
		Title:              title,
		OrderType:          OrderTypeSpot,
		PricingMode:        valueobject.PricingModeFixedMonthly,
		SpotAmount:         spotAmount,
		ImplementationDate: &implementationDate,
		Timing:             timing,
		Status:             StatusUnprocessed,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// Pricing returns the amount rule of a regular contract.
func (o *OrderContract) Pricing() valueobject.Pricing {
	return valueobject.Pricing{
		Mode:       o.PricingMode,
		BaseAmount: o.BaseAmount,
		Weekdays:   o.Weekdays,
	}
}

// IsSpot reports whether the contract is a one-off.
func (o *OrderContract) IsSpot() bool {
	return o.OrderType == OrderTypeSpot
}

// DocumentComplete reports whether the order was placed and its paperwork distributed.
func (o *OrderContract) DocumentComplete() bool {
	return o.OrderPlaced && o.DocumentsDistributed
}

// OccurrenceMonths lists the months the contract bills for: the implementation month of a
// spot, or every month from contract start to end inclusive for a regular contract.
func (o *OrderContract) OccurrenceMonths() ([]valueobject.YearMonth, error) {
	if o.IsSpot() {
		if o.ImplementationDate == nil {
			return nil, domainerror.NewConfigurationError(
				domainerror.ErrCodeMissingSpotDetails,
				"spot contract has no implementation date",
				domainerror.ErrMissingSpotDetails,
			)
		}
		return []valueobject.YearMonth{valueobject.YearMonthOf(*o.ImplementationDate)}, nil
	}

	if o.ContractStart == nil || o.ContractEnd == nil {
		return nil, domainerror.NewConfigurationError(
			domainerror.ErrCodeMissingContractPeriod,
			"regular contract has no contract period",
			domainerror.ErrMissingContractPeriod,
		)
	}

	start := valueobject.YearMonthOf(*o.ContractStart)
	end := valueobject.YearMonthOf(*o.ContractEnd)
	var months []valueobject.YearMonth
	for m := start; !m.After(end); m = m.AddMonths(1) {
		months = append(months, m)
	}
	return months, nil
}
