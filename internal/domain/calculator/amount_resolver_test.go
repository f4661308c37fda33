package calculator

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainerror "github.com/radio-billing/backend/internal/domain/error"
	"github.com/radio-billing/backend/internal/domain/valueobject"
)

func TestResolveAmount(t *testing.T) {
	october := valueobject.YearMonth{Year: 2024, Month: 10}

	t.Run("fixed monthly returns base amount", func(t *testing.T) {
		pricing := valueobject.Pricing{
			Mode:       valueobject.PricingModeFixedMonthly,
			BaseAmount: decimal.NewFromInt(200000),
		}

		amount, breakdown, err := ResolveAmount(pricing, october)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !amount.Equal(decimal.NewFromInt(200000)) {
			t.Errorf("expected 200000, got %s", amount)
		}
		if breakdown.OccurrenceCount != 0 {
			t.Errorf("expected no occurrence count, got %d", breakdown.OccurrenceCount)
		}
	})

	t.Run("fixed monthly ignores weekdays", func(t *testing.T) {
		pricing := valueobject.Pricing{
			Mode:       valueobject.PricingModeFixedMonthly,
			BaseAmount: decimal.NewFromInt(1000),
		}
		if _, _, err := ResolveAmount(pricing, october); err != nil {
			t.Errorf("expected no error for fixed pricing without weekdays, got %v", err)
		}
	})

	t.Run("count based multiplies broadcasts", func(t *testing.T) {
		pricing := valueobject.Pricing{
			Mode:       valueobject.PricingModeCountBased,
			BaseAmount: decimal.NewFromInt(50000),
			Weekdays:   valueobject.NewWeekdaySet(valueobject.Monday, valueobject.Wednesday, valueobject.Friday),
		}

		amount, breakdown, err := ResolveAmount(pricing, october)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !amount.Equal(decimal.NewFromInt(650000)) {
			t.Errorf("expected 650000, got %s", amount)
		}
		if breakdown.OccurrenceCount != 13 {
			t.Errorf("expected 13 broadcasts, got %d", breakdown.OccurrenceCount)
		}
		if !breakdown.UnitPrice.Equal(decimal.NewFromInt(50000)) {
			t.Errorf("expected unit price 50000, got %s", breakdown.UnitPrice)
		}
		if breakdown.Month != october {
			t.Errorf("expected month %s, got %s", october, breakdown.Month)
		}
	})

	t.Run("count based without weekdays is a configuration error", func(t *testing.T) {
		pricing := valueobject.Pricing{
			Mode:       valueobject.PricingModeCountBased,
			BaseAmount: decimal.NewFromInt(50000),
		}

		_, _, err := ResolveAmount(pricing, october)
		if !errors.Is(err, domainerror.ErrNoBroadcastDays) {
			t.Fatalf("expected ErrNoBroadcastDays, got %v", err)
		}
		var cfgErr *domainerror.ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Fatal("expected ConfigurationError")
		}
		if cfgErr.Code != domainerror.ErrCodeNoBroadcastDays {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeNoBroadcastDays, cfgErr.Code)
		}
	})

	t.Run("unknown pricing mode", func(t *testing.T) {
		pricing := valueobject.Pricing{Mode: valueobject.PricingMode("hourly")}
		_, _, err := ResolveAmount(pricing, october)
		if !errors.Is(err, domainerror.ErrUnknownPricingMode) {
			t.Errorf("expected ErrUnknownPricingMode, got %v", err)
		}
	})
}

func TestResolveAmountWithCount(t *testing.T) {
	month := valueobject.YearMonth{Year: 2024, Month: 10}
	pricing := valueobject.Pricing{
		Mode:       valueobject.PricingModeCountBased,
		BaseAmount: decimal.NewFromInt(30000),
		Weekdays:   valueobject.NewWeekdaySet(valueobject.Tuesday),
	}

	amount, breakdown, err := ResolveAmountWithCount(pricing, month, valueobject.DefaultPlaceholderBroadcastCount)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !amount.Equal(decimal.NewFromInt(120000)) {
		t.Errorf("expected 120000, got %s", amount)
	}
	if breakdown.OccurrenceCount != 4 {
		t.Errorf("expected count 4, got %d", breakdown.OccurrenceCount)
	}

	t.Run("fixed pricing ignores count", func(t *testing.T) {
		fixed := valueobject.Pricing{Mode: valueobject.PricingModeFixedMonthly, BaseAmount: decimal.NewFromInt(80000)}
		amount, _, err := ResolveAmountWithCount(fixed, month, 4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !amount.Equal(decimal.NewFromInt(80000)) {
			t.Errorf("expected 80000, got %s", amount)
		}
	})
}

func TestResolveAmount_UnknownWeekday(t *testing.T) {
	month := valueobject.YearMonth{Year: 2024, Month: 10}
	pricing := valueobject.Pricing{
		Mode:       valueobject.PricingModeCountBased,
		BaseAmount: decimal.NewFromInt(50000),
		Weekdays:   valueobject.WeekdaySet{"X"},
	}

	amount, _, err := ResolveAmount(pricing, month)
	if !errors.Is(err, domainerror.ErrUnknownWeekday) {
		t.Errorf("ResolveAmount: expected ErrUnknownWeekday, got %s, %v", amount, err)
	}
	var cfgErr *domainerror.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Errorf("expected a configuration error, got %T", err)
	}

	amount, _, err = ResolveAmountWithCount(pricing, month, 4)
	if !errors.Is(err, domainerror.ErrUnknownWeekday) {
		t.Errorf("ResolveAmountWithCount: expected ErrUnknownWeekday, got %s, %v", amount, err)
	}
}
