// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/radio-billing/backend/internal/domain/valueobject"
)

// ExpenseTemplate is a recurring obligation definition ("expense master").
type ExpenseTemplate struct {
	ID          int64
	Payee       valueobject.PayeeIdentity
	Title       string
	BaseAmount  decimal.Decimal // Monthly amount, or unit price per broadcast when count-based
	PricingMode valueobject.PricingMode
	Weekdays    valueobject.WeekdaySet // Used only when count-based
	ValidFrom   *time.Time             // Inclusive, optional
	ValidTo     *time.Time             // Inclusive, optional
	Timing      valueobject.PaymentTiming
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewExpenseTemplate creates a new ExpenseTemplate entity.
func NewExpenseTemplate(
	payee valueobject.PayeeIdentity,
	title string,
	baseAmount decimal.Decimal,
	pricingMode valueobject.PricingMode,
	weekdays valueobject.WeekdaySet,
	timing valueobject.PaymentTiming,
) *ExpenseTemplate {
	now := time.Now().UTC()

	return &ExpenseTemplate{
		Payee:       payee,
		Title:       title,
		BaseAmount:  baseAmount,
		PricingMode: pricingMode,
		Weekdays:    weekdays,
		Timing:      timing,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Pricing returns the amount rule of the template.
func (t *ExpenseTemplate) Pricing() valueobject.Pricing {
	return valueobject.Pricing{
		Mode:       t.PricingMode,
		BaseAmount: t.BaseAmount,
		Weekdays:   t.Weekdays,
	}
}

// NotStartedBy reports whether the validity period begins after the month's first day.
func (t *ExpenseTemplate) NotStartedBy(month valueobject.YearMonth) bool {
	return t.ValidFrom != nil && month.FirstDay().Before(truncateToDay(*t.ValidFrom))
}

// EndedBefore reports whether the validity period closed before the month's first day.
func (t *ExpenseTemplate) EndedBefore(month valueobject.YearMonth) bool {
	return t.ValidTo != nil && month.FirstDay().After(truncateToDay(*t.ValidTo))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
