// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/radio-billing/backend/internal/domain/valueobject"
)

// ExpenseSource records how an expense instance was created.
type ExpenseSource string

const (
	ExpenseSourceManual    ExpenseSource = "manual"
	ExpenseSourceGenerated ExpenseSource = "generated"
)

// Expense is a concrete monthly obligation, generated from a template or entered by hand.
type Expense struct {
	ID              int64
	Payee           valueobject.PayeeIdentity
	Title           string
	Amount          decimal.Decimal
	PaymentDate     time.Time // Last calendar day of the expected payment month
	Status          RecordStatus
	TemplateID      *int64
	GenerationMonth *string // YYYY-MM
	Source          ExpenseSource
	Timing          valueobject.PaymentTiming
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewGeneratedExpense creates an expense derived from a template for a generation month.
func NewGeneratedExpense(
	template *ExpenseTemplate,
	generationMonth valueobject.YearMonth,
	amount decimal.Decimal,
) *Expense {
	now := time.Now().UTC()
	templateID := template.ID
	month := generationMonth.String()

	return &Expense{
		Payee:           template.Payee,
		Title:           template.Title,
		Amount:          amount,
		PaymentDate:     generationMonth.LastDay(),
		Status:          StatusUnprocessed,
		TemplateID:      &templateID,
		GenerationMonth: &month,
		Source:          ExpenseSourceGenerated,
		Timing:          template.Timing,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// NewManualExpense creates a hand-entered expense. The payment date is moved to the last
// day of its month.
func NewManualExpense(
	payee valueobject.PayeeIdentity,
	title string,
	amount decimal.Decimal,
	paymentDate time.Time,
	notes string,
) *Expense {
	now := time.Now().UTC()

	return &Expense{
		Payee:       payee,
		Title:       title,
		Amount:      amount,
		PaymentDate: valueobject.YearMonthOf(paymentDate).LastDay(),
		Status:      StatusUnprocessed,
		Source:      ExpenseSourceManual,
		Timing:      valueobject.PaymentTimingEndOfCurrentMonth,
		Notes:       notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsGenerated reports whether the generator owns this expense's amount and payment date.
func (e *Expense) IsGenerated() bool {
	return e.Source == ExpenseSourceGenerated && e.TemplateID != nil
}

// ExpectedPaymentMonth is the month the payment date falls in.
func (e *Expense) ExpectedPaymentMonth() valueobject.YearMonth {
	return valueobject.YearMonthOf(e.PaymentDate)
}

// ApplyGeneration refreshes generator-owned fields in place, leaving status untouched.
func (e *Expense) ApplyGeneration(template *ExpenseTemplate, generationMonth valueobject.YearMonth, amount decimal.Decimal) {
	e.Payee = template.Payee
	e.Title = template.Title
	e.Amount = amount
	e.PaymentDate = generationMonth.LastDay()
	e.Timing = template.Timing
	e.UpdatedAt = time.Now().UTC()
}
