// Package calculator holds the pure calendar, timing and amount rules of billing.
package calculator

import (
	"fmt"

	domainerror "github.com/radio-billing/backend/internal/domain/error"
	"github.com/radio-billing/backend/internal/domain/valueobject"
)

// ResolveExpectedPaymentMonth maps the month billable activity happened in to the month
// its payment is due.
func ResolveExpectedPaymentMonth(occurrenceYear, occurrenceMonth int, policy valueobject.PaymentTiming) (valueobject.YearMonth, error) {
	ym, err := timingMonth(occurrenceYear, occurrenceMonth, policy)
	if err != nil {
		return valueobject.YearMonth{}, err
	}
	return ym.AddMonths(policy.MonthOffset()), nil
}

// ResolveOccurrenceMonth is the exact inverse of ResolveExpectedPaymentMonth.
func ResolveOccurrenceMonth(paymentYear, paymentMonth int, policy valueobject.PaymentTiming) (valueobject.YearMonth, error) {
	ym, err := timingMonth(paymentYear, paymentMonth, policy)
	if err != nil {
		return valueobject.YearMonth{}, err
	}
	return ym.AddMonths(-policy.MonthOffset()), nil
}

func timingMonth(year, month int, policy valueobject.PaymentTiming) (valueobject.YearMonth, error) {
	if month < 1 || month > 12 {
		return valueobject.YearMonth{}, domainerror.NewCalendarError(
			domainerror.ErrCodeInvalidMonth,
			fmt.Sprintf("month must be between 1 and 12, got %d", month),
			domainerror.ErrInvalidMonth,
		)
	}
	if !policy.IsValid() {
		return valueobject.YearMonth{}, domainerror.NewConfigurationError(
			domainerror.ErrCodeUnknownPaymentTiming,
			fmt.Sprintf("unknown payment timing %q", string(policy)),
			domainerror.ErrUnknownPaymentTiming,
		)
	}
	return valueobject.NewYearMonth(year, month)
}
