// Package valueobject contains domain value objects for the billing reconciliation system.
package valueobject

import (
	"fmt"
	"strings"

	domainerror "github.com/radio-billing/backend/internal/domain/error"
)

// PaymentTiming names when an obligation is paid relative to its occurrence month.
type PaymentTiming string

const (
	PaymentTimingEndOfCurrentMonth PaymentTiming = "end_of_current_month"
	PaymentTimingEndOfNextMonth    PaymentTiming = "end_of_next_month"
)

var paymentTimingAliases = map[string]PaymentTiming{
	"end_of_current_month": PaymentTimingEndOfCurrentMonth,
	"当月末":                  PaymentTimingEndOfCurrentMonth,
	"当月末払い":                PaymentTimingEndOfCurrentMonth,
	"end_of_next_month":    PaymentTimingEndOfNextMonth,
	"翌月末":                  PaymentTimingEndOfNextMonth,
	"翌月末払い":                PaymentTimingEndOfNextMonth,
}

// ParsePaymentTiming resolves a policy name or its Japanese label.
func ParsePaymentTiming(s string) (PaymentTiming, error) {
	if t, ok := paymentTimingAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return t, nil
	}
	return "", domainerror.NewConfigurationError(
		domainerror.ErrCodeUnknownPaymentTiming,
		fmt.Sprintf("unknown payment timing %q", s),
		domainerror.ErrUnknownPaymentTiming,
	)
}

// IsValid checks if the policy is one of the known values.
func (t PaymentTiming) IsValid() bool {
	return t == PaymentTimingEndOfCurrentMonth || t == PaymentTimingEndOfNextMonth
}

// MonthOffset is the number of months between occurrence and payment.
func (t PaymentTiming) MonthOffset() int {
	if t == PaymentTimingEndOfNextMonth {
		return 1
	}
	return 0
}
