package calculator

import (
	"errors"
	"testing"

	domainerror "github.com/radio-billing/backend/internal/domain/error"
	"github.com/radio-billing/backend/internal/domain/valueobject"
)

func TestResolveExpectedPaymentMonth(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		month    int
		policy   valueobject.PaymentTiming
		expected string
	}{
		{name: "current month is identity", year: 2024, month: 10, policy: valueobject.PaymentTimingEndOfCurrentMonth, expected: "2024-10"},
		{name: "next month adds one", year: 2024, month: 10, policy: valueobject.PaymentTimingEndOfNextMonth, expected: "2024-11"},
		{name: "december rolls into january", year: 2024, month: 12, policy: valueobject.PaymentTimingEndOfNextMonth, expected: "2025-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveExpectedPaymentMonth(tt.year, tt.month, tt.policy)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestResolveOccurrenceMonth(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		month    int
		policy   valueobject.PaymentTiming
		expected string
	}{
		{name: "current month is identity", year: 2024, month: 11, policy: valueobject.PaymentTimingEndOfCurrentMonth, expected: "2024-11"},
		{name: "next month subtracts one", year: 2024, month: 11, policy: valueobject.PaymentTimingEndOfNextMonth, expected: "2024-10"},
		{name: "january rolls back to december", year: 2025, month: 1, policy: valueobject.PaymentTimingEndOfNextMonth, expected: "2024-12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveOccurrenceMonth(tt.year, tt.month, tt.policy)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestPaymentTiming_RoundTrip(t *testing.T) {
	policies := []valueobject.PaymentTiming{
		valueobject.PaymentTimingEndOfCurrentMonth,
		valueobject.PaymentTimingEndOfNextMonth,
	}

	for _, policy := range policies {
		for year := 2020; year <= 2030; year++ {
			for month := 1; month <= 12; month++ {
				expected, err := ResolveExpectedPaymentMonth(year, month, policy)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				back, err := ResolveOccurrenceMonth(expected.Year, expected.Month, policy)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if back.Year != year || back.Month != month {
					t.Errorf("%s %d-%02d: round trip gave %s", policy, year, month, back)
				}

				occurrence, err := ResolveOccurrenceMonth(year, month, policy)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				forward, err := ResolveExpectedPaymentMonth(occurrence.Year, occurrence.Month, policy)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if forward.Year != year || forward.Month != month {
					t.Errorf("%s %d-%02d: inverse round trip gave %s", policy, year, month, forward)
				}
			}
		}
	}
}

func TestPaymentTiming_InvalidMonth(t *testing.T) {
	for _, month := range []int{0, 13, -1} {
		if _, err := ResolveExpectedPaymentMonth(2024, month, valueobject.PaymentTimingEndOfNextMonth); !errors.Is(err, domainerror.ErrInvalidMonth) {
			t.Errorf("expected ErrInvalidMonth for %d, got %v", month, err)
		}
		if _, err := ResolveOccurrenceMonth(2024, month, valueobject.PaymentTimingEndOfNextMonth); !errors.Is(err, domainerror.ErrInvalidMonth) {
			t.Errorf("expected ErrInvalidMonth for %d, got %v", month, err)
		}
	}

	t.Run("unknown policy", func(t *testing.T) {
		_, err := ResolveExpectedPaymentMonth(2024, 5, valueobject.PaymentTiming("weekly"))
		if !errors.Is(err, domainerror.ErrUnknownPaymentTiming) {
			t.Errorf("expected ErrUnknownPaymentTiming, got %v", err)
		}
	})
}
