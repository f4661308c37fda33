// Package valueobject contains domain value objects for the billing reconciliation system.
package valueobject

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	domainerror "github.com/radio-billing/backend/internal/domain/error"
)

// PricingMode selects how an obligation amount is computed.
type PricingMode string

const (
	PricingModeFixedMonthly PricingMode = "fixed_monthly"
	PricingModeCountBased   PricingMode = "count_based"
)

var pricingModeAliases = map[string]PricingMode{
	"fixed_monthly": PricingModeFixedMonthly,
	"月額固定":          PricingModeFixedMonthly,
	"count_based":   PricingModeCountBased,
	"回数ベース":         PricingModeCountBased,
}

// ParsePricingMode resolves a pricing mode name or its Japanese label.
func ParsePricingMode(s string) (PricingMode, error) {
	if m, ok := pricingModeAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return m, nil
	}
	return "", domainerror.NewConfigurationError(
		domainerror.ErrCodeUnknownPricingMode,
		fmt.Sprintf("unknown pricing mode %q", s),
		domainerror.ErrUnknownPricingMode,
	)
}

// IsValid checks if the pricing mode is known.
func (m PricingMode) IsValid() bool {
	return m == PricingModeFixedMonthly || m == PricingModeCountBased
}

// Pricing is the amount rule shared by expense templates and order contracts.
// For count-based pricing BaseAmount is the per-broadcast unit price.
type Pricing struct {
	Mode       PricingMode
	BaseAmount decimal.Decimal
	Weekdays   WeekdaySet
}
