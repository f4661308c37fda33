// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// MatchKind identifies which matcher variant produced a pairing.
type MatchKind string

const (
	MatchKindExpense MatchKind = "expense"
	MatchKindOrder   MatchKind = "order"
)

// IsValid checks if the kind is one of the known values.
func (k MatchKind) IsValid() bool {
	return k == MatchKindExpense || k == MatchKindOrder
}

// ReconciliationMatch records one expected-obligation/payment pairing.
type ReconciliationMatch struct {
	ID              uuid.UUID
	Kind            MatchKind
	ExpenseID       *int64
	OrderID         *int64
	OccurrenceMonth *string // YYYY-MM, set for order matches
	PaymentID       int64
	BatchRunID      uuid.UUID
	MatchedAt       time.Time
}

// NewExpenseMatch pairs an expense with a payment.
func NewExpenseMatch(expenseID, paymentID int64, batchRunID uuid.UUID) *ReconciliationMatch {
	return &ReconciliationMatch{
		ID:         uuid.New(),
		Kind:       MatchKindExpense,
		ExpenseID:  &expenseID,
		PaymentID:  paymentID,
		BatchRunID: batchRunID,
		MatchedAt:  time.Now().UTC(),
	}
}

// NewOrderMatch pairs one projected month of an order with a payment.
func NewOrderMatch(orderID int64, occurrenceMonth string, paymentID int64, batchRunID uuid.UUID) *ReconciliationMatch {
	return &ReconciliationMatch{
		ID:              uuid.New(),
		Kind:            MatchKindOrder,
		OrderID:         &orderID,
		OccurrenceMonth: &occurrenceMonth,
		PaymentID:       paymentID,
		BatchRunID:      batchRunID,
		MatchedAt:       time.Now().UTC(),
	}
}
