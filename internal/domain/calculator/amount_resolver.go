// Package calculator holds the pure calendar, timing and amount rules of billing.
package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"

	domainerror "github.com/radio-billing/backend/internal/domain/error"
	"github.com/radio-billing/backend/internal/domain/valueobject"
)

// Breakdown explains how an amount was derived.
type Breakdown struct {
	Mode            valueobject.PricingMode
	Month           valueobject.YearMonth
	OccurrenceCount int
	UnitPrice       decimal.Decimal
	Weekdays        valueobject.WeekdaySet
	Amount          decimal.Decimal
}

// ResolveAmount computes the amount billed for the given month.
// Fixed pricing returns the base amount unchanged; count-based pricing multiplies
// the broadcast count of the month by the unit price.
func ResolveAmount(pricing valueobject.Pricing, month valueobject.YearMonth) (decimal.Decimal, Breakdown, error) {
	breakdown := Breakdown{
		Mode:      pricing.Mode,
		Month:     month,
		UnitPrice: pricing.BaseAmount,
		Weekdays:  pricing.Weekdays,
	}

	switch pricing.Mode {
	case valueobject.PricingModeFixedMonthly:
		breakdown.Amount = pricing.BaseAmount
		return pricing.BaseAmount, breakdown, nil

	case valueobject.PricingModeCountBased:
		if err := requireBroadcastDays(pricing); err != nil {
			return decimal.Zero, breakdown, err
		}
		count, err := CountMultiWeekdayOccurrences(month.Year, month.Month, pricing.Weekdays)
		if err != nil {
			return decimal.Zero, breakdown, err
		}
		amount := pricing.BaseAmount.Mul(decimal.NewFromInt(int64(count)))
		breakdown.OccurrenceCount = count
		breakdown.Amount = amount
		return amount, breakdown, nil
	}

	return decimal.Zero, breakdown, unknownPricingMode(pricing.Mode)
}

// ResolveAmountWithCount is ResolveAmount with a caller-supplied broadcast count for
// count-based pricing, used when no per-month calendar source is available.
func ResolveAmountWithCount(pricing valueobject.Pricing, month valueobject.YearMonth, count int) (decimal.Decimal, Breakdown, error) {
	if pricing.Mode != valueobject.PricingModeCountBased {
		return ResolveAmount(pricing, month)
	}

	breakdown := Breakdown{
		Mode:      pricing.Mode,
		Month:     month,
		UnitPrice: pricing.BaseAmount,
		Weekdays:  pricing.Weekdays,
	}
	if err := requireBroadcastDays(pricing); err != nil {
		return decimal.Zero, breakdown, err
	}

	amount := pricing.BaseAmount.Mul(decimal.NewFromInt(int64(count)))
	breakdown.OccurrenceCount = count
	breakdown.Amount = amount
	return amount, breakdown, nil
}

func requireBroadcastDays(pricing valueobject.Pricing) error {
	if pricing.Weekdays.IsEmpty() {
		return domainerror.NewConfigurationError(
			domainerror.ErrCodeNoBroadcastDays,
			"count-based pricing requires at least one broadcast weekday",
			domainerror.ErrNoBroadcastDays,
		)
	}
	return pricing.Weekdays.Validate()
}

func unknownPricingMode(mode valueobject.PricingMode) error {
	return domainerror.NewConfigurationError(
		domainerror.ErrCodeUnknownPricingMode,
		fmt.Sprintf("unknown pricing mode %q", string(mode)),
		domainerror.ErrUnknownPricingMode,
	)
}
