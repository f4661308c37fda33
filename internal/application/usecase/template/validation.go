// Package template contains expense template use cases.
package template

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	domainerror "github.com/radio-billing/backend/internal/domain/error"
	"github.com/radio-billing/backend/internal/domain/valueobject"
)

// TemplateFields carries the editable attributes of a template as entered by staff.
type TemplateFields struct {
	PayeeName     string
	PayeeCode     string
	Title         string
	BaseAmount    decimal.Decimal
	PricingMode   string // fixed_monthly, count_based or a Japanese label
	Weekdays      string // e.g. "月,水,金"
	ValidFrom     *time.Time
	ValidTo       *time.Time
	PaymentTiming string // end_of_current_month, end_of_next_month or a Japanese label
	Notes         string
}

// parsedFields is TemplateFields after validation.
type parsedFields struct {
	payee    valueobject.PayeeIdentity
	mode     valueobject.PricingMode
	weekdays valueobject.WeekdaySet
	timing   valueobject.PaymentTiming
}

func validateFields(f TemplateFields) (*parsedFields, error) {
	name := strings.TrimSpace(f.PayeeName)
	if name == "" {
		return nil, domainerror.NewTemplateError(
			domainerror.ErrCodeMissingPayeeName,
			"payee name is required",
			domainerror.ErrMissingPayeeName,
		)
	}

	if f.BaseAmount.IsNegative() {
		return nil, domainerror.NewTemplateError(
			domainerror.ErrCodeInvalidTemplateAmount,
			"base amount must not be negative",
			domainerror.ErrInvalidTemplateAmount,
		)
	}

	if strings.TrimSpace(f.PricingMode) == "" {
		f.PricingMode = string(valueobject.PricingModeFixedMonthly)
	}
	if strings.TrimSpace(f.PaymentTiming) == "" {
		f.PaymentTiming = string(valueobject.PaymentTimingEndOfCurrentMonth)
	}

	mode, err := valueobject.ParsePricingMode(f.PricingMode)
	if err != nil {
		return nil, domainerror.NewTemplateError(domainerror.ErrCodeInvalidTemplatePricing, "invalid pricing mode", err)
	}

	timing, err := valueobject.ParsePaymentTiming(f.PaymentTiming)
	if err != nil {
		return nil, domainerror.NewTemplateError(domainerror.ErrCodeInvalidTemplatePricing, "invalid payment timing", err)
	}

	weekdays, err := valueobject.ParseWeekdaySet(f.Weekdays)
	if err != nil {
		return nil, domainerror.NewTemplateError(domainerror.ErrCodeInvalidTemplatePricing, "invalid broadcast weekdays", err)
	}
	if mode == valueobject.PricingModeCountBased && weekdays.IsEmpty() {
		return nil, domainerror.NewTemplateError(
			domainerror.ErrCodeInvalidTemplatePricing,
			"count-based templates require broadcast weekdays",
			domainerror.ErrNoBroadcastDays,
		)
	}

	if f.ValidFrom != nil && f.ValidTo != nil && f.ValidTo.Before(*f.ValidFrom) {
		return nil, domainerror.NewTemplateError(
			domainerror.ErrCodeInvalidValidityPeriod,
			"validity end must not precede validity start",
			domainerror.ErrInvalidValidityPeriod,
		)
	}

	return &parsedFields{
		payee:    valueobject.PayeeIdentity{Name: name, Code: strings.TrimSpace(f.PayeeCode)},
		mode:     mode,
		weekdays: weekdays,
		timing:   timing,
	}, nil
}
