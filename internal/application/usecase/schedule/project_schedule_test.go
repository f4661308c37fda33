package schedule

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/radio-billing/backend/internal/domain/entity"
	"github.com/radio-billing/backend/internal/domain/valueobject"
)

func regularOrder(id int64, code string, mode valueobject.PricingMode, amount int64, days valueobject.WeekdaySet) *entity.OrderContract {
	o := entity.NewRegularOrder(
		valueobject.PayeeIdentity{Name: "Partner", Code: code},
		"Morning program",
		mode,
		decimal.NewFromInt(amount),
		days,
		date(2024, 11, 15),
		date(2025, 2, 3),
		valueobject.PaymentTimingEndOfNextMonth,
	)
	o.ID = id
	return o
}

func spotOrder(id int64, code string, amount int64) *entity.OrderContract {
	o := entity.NewSpotOrder(
		valueobject.PayeeIdentity{Name: "Event", Code: code},
		"Festival spot",
		decimal.NewFromInt(amount),
		date(2024, 12, 20),
		valueobject.PaymentTimingEndOfCurrentMonth,
	)
	o.ID = id
	return o
}

func TestProjectSchedule(t *testing.T) {
	orders := &fakeOrderRepo{orders: []*entity.OrderContract{
		regularOrder(1, "42", valueobject.PricingModeFixedMonthly, 100000, nil),
		spotOrder(2, "7", 300000),
		regularOrder(3, "8", valueobject.PricingModeCountBased, 20000, valueobject.NewWeekdaySet(valueobject.Monday, valueobject.Friday)),
	}}
	uc := NewProjectScheduleUseCase(orders, valueobject.DefaultMatchingConfig())

	out, err := uc.Execute(context.Background(), ProjectScheduleInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Regular orders span 2024-11 through 2025-02 (4 months each), the spot adds one.
	if len(out.Obligations) != 9 {
		t.Fatalf("expected 9 obligations, got %d", len(out.Obligations))
	}

	first := out.Obligations[0]
	if first.OccurrenceMonth.String() != "2024-11" || first.ExpectedPaymentMonth.String() != "2024-12" {
		t.Errorf("unexpected months %s/%s", first.OccurrenceMonth, first.ExpectedPaymentMonth)
	}
	if first.PayeeCode != "0042" || !first.Amount.Equal(decimal.NewFromInt(100000)) {
		t.Errorf("unexpected first obligation %+v", first)
	}
	if out.Obligations[3].OccurrenceMonth.String() != "2025-02" {
		t.Errorf("expected the last regular month to be 2025-02, got %s", out.Obligations[3].OccurrenceMonth)
	}

	spot := out.Obligations[4]
	if spot.OrderID != 2 || spot.OccurrenceMonth.String() != "2024-12" || !spot.Amount.Equal(decimal.NewFromInt(300000)) {
		t.Errorf("unexpected spot obligation %+v", spot)
	}

	counted := out.Obligations[5]
	if !counted.Amount.Equal(decimal.NewFromInt(80000)) || counted.Breakdown.OccurrenceCount != 4 {
		t.Errorf("expected placeholder count 4 x 20000, got %s (%d)", counted.Amount, counted.Breakdown.OccurrenceCount)
	}
}

func TestProjectSchedule_FilterAndErrors(t *testing.T) {
	broken := regularOrder(4, "9", valueobject.PricingModeCountBased, 1000, nil)
	orders := &fakeOrderRepo{orders: []*entity.OrderContract{
		regularOrder(1, "42", valueobject.PricingModeFixedMonthly, 100000, nil),
		spotOrder(2, "7", 300000),
		broken,
	}}
	uc := NewProjectScheduleUseCase(orders, valueobject.DefaultMatchingConfig())

	december := valueobject.YearMonth{Year: 2024, Month: 12}
	out, err := uc.Execute(context.Background(), ProjectScheduleInput{Month: &december})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.Obligations) != 2 {
		t.Fatalf("expected 2 obligations in 2024-12, got %d", len(out.Obligations))
	}
	if len(out.Errors) != 1 || out.Errors[0].RecordID != 4 || out.Errors[0].Kind != valueobject.ItemErrorConfiguration {
		t.Errorf("expected a configuration error for order 4, got %+v", out.Errors)
	}
}

func TestGetCompleteness(t *testing.T) {
	documented := spotOrder(1, "7", 300000)
	documented.OrderPlaced = true
	documented.DocumentsDistributed = true

	undocumented := spotOrder(2, "8", 100000)
	undocumented.OrderPlaced = true

	unpaid := spotOrder(3, "9", 50000)
	unpaid.OrderPlaced = true
	unpaid.DocumentsDistributed = true

	paired := spotOrder(4, "10", 70000)
	paired.OrderPlaced = true
	paired.DocumentsDistributed = true

	orders := &fakeOrderRepo{orders: []*entity.OrderContract{documented, undocumented, unpaid, paired}}
	payments := &fakePaymentRepo{payments: []*entity.Payment{
		payment("0007", 300000, date(2024, 12, 25)),
		payment("8", 1, date(2024, 12, 1)),
		payment("9", 50000, date(2025, 1, 5)),
	}}
	recon := &fakeReconciliationRepo{}
	_ = recon.CommitOrderMatch(context.Background(), entity.NewOrderMatch(4, "2024-12", 99, uuid.New()))

	uc := NewGetCompletenessUseCase(orders, payments, recon, valueobject.DefaultMatchingConfig())
	out, err := uc.Execute(context.Background(), GetCompletenessInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []valueobject.Completeness{
		valueobject.CompletenessGreen,
		valueobject.CompletenessYellow,
		valueobject.CompletenessRed,
		valueobject.CompletenessGreen,
	}
	if len(out.Items) != len(expected) {
		t.Fatalf("expected %d items, got %d", len(expected), len(out.Items))
	}
	for i, want := range expected {
		if out.Items[i].Completeness != want {
			t.Errorf("order %d: expected %s, got %s", out.Items[i].Obligation.OrderID, want, out.Items[i].Completeness)
		}
	}
	if out.Counts.Green != 2 || out.Counts.Yellow != 1 || out.Counts.Red != 1 {
		t.Errorf("unexpected counts %+v", out.Counts)
	}
}
