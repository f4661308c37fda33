package model

import (
	"errors"
	"testing"

	domainerror "github.com/radio-billing/backend/internal/domain/error"
	"github.com/radio-billing/backend/internal/domain/valueobject"
)

func TestWeekdaysFromColumn(t *testing.T) {
	tests := []struct {
		name      string
		column    string
		want      string
		wantError bool
	}{
		{"empty", "", "", false},
		{"stored set", "月,水,金", "月,水,金", false},
		{"english tokens", "mon,fri", "月,金", false},
		{"unknown token kept", "月,Funday", "月,Funday", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := weekdaysFromColumn(tt.column)
			if got := set.String(); got != tt.want {
				t.Errorf("weekdaysFromColumn(%q) = %q, want %q", tt.column, got, tt.want)
			}
			err := set.Validate()
			if tt.wantError != errors.Is(err, domainerror.ErrUnknownWeekday) {
				t.Errorf("Validate() = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestExpenseTemplateModel_ToEntityKeepsUnknownWeekday(t *testing.T) {
	m := &ExpenseTemplateModel{
		ID:          1,
		PayeeName:   "FM Partner",
		PricingMode: string(valueobject.PricingModeCountBased),
		Weekdays:    "X",
	}

	template := m.ToEntity()
	if template.Weekdays.IsEmpty() {
		t.Fatal("an unreadable weekday column must not become an empty set")
	}
	if err := template.Weekdays.Validate(); !errors.Is(err, domainerror.ErrUnknownWeekday) {
		t.Errorf("expected ErrUnknownWeekday, got %v", err)
	}
}
