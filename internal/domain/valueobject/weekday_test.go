package valueobject

import (
	"errors"
	"testing"
	"time"

	domainerror "github.com/radio-billing/backend/internal/domain/error"
)

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		token    string
		expected Weekday
	}{
		{token: "月", expected: Monday},
		{token: "月曜", expected: Monday},
		{token: "月曜日", expected: Monday},
		{token: "Wed", expected: Wednesday},
		{token: "friday", expected: Friday},
		{token: " 日 ", expected: Sunday},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseWeekday(tt.token)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}

	t.Run("unknown token", func(t *testing.T) {
		_, err := ParseWeekday("funday")
		if !errors.Is(err, domainerror.ErrUnknownWeekday) {
			t.Errorf("expected ErrUnknownWeekday, got %v", err)
		}
	})
}

func TestParseWeekdaySet(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "comma separated", input: "月,水,金", expected: "月,水,金"},
		{name: "bare japanese run", input: "月水金", expected: "月,水,金"},
		{name: "suffixed run", input: "月曜日水曜日", expected: "月,水"},
		{name: "english names", input: "mon, wed, fri", expected: "月,水,金"},
		{name: "unordered with duplicates", input: "金,月,金", expected: "月,金"},
		{name: "ideographic comma", input: "土、日", expected: "土,日"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWeekdaySet(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got.String())
			}
		})
	}

	t.Run("unknown token fails the whole set", func(t *testing.T) {
		_, err := ParseWeekdaySet("月,xyz")
		var cfgErr *domainerror.ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Fatalf("expected ConfigurationError, got %v", err)
		}
		if cfgErr.Code != domainerror.ErrCodeUnknownWeekday {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeUnknownWeekday, cfgErr.Code)
		}
	})
}

func TestWeekday_TimeWeekday(t *testing.T) {
	if Monday.TimeWeekday() != time.Monday {
		t.Errorf("expected Monday, got %v", Monday.TimeWeekday())
	}
	if Sunday.TimeWeekday() != time.Sunday {
		t.Errorf("expected Sunday, got %v", Sunday.TimeWeekday())
	}
	if Weekday("x").TimeWeekday() >= 0 {
		t.Error("expected negative weekday for unknown token")
	}
}

func TestWeekdaySet_Validate(t *testing.T) {
	set := NewWeekdaySet("X", Friday, Monday, Friday)
	if len(set) != 3 || set[0] != Monday || set[1] != Friday || set[2] != "X" {
		t.Fatalf("unexpected set %v", set)
	}
	if err := set.Validate(); !errors.Is(err, domainerror.ErrUnknownWeekday) {
		t.Errorf("expected ErrUnknownWeekday, got %v", err)
	}

	if err := NewWeekdaySet(Monday, Wednesday).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := (WeekdaySet{}).Validate(); err != nil {
		t.Errorf("empty set: unexpected error: %v", err)
	}
}
