// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/radio-billing/backend/internal/domain/valueobject"
)

// Payment is an actual payment line imported from an external ledger.
type Payment struct {
	ID          int64
	Subject     string
	Payee       valueobject.PayeeIdentity
	Amount      decimal.Decimal
	PaymentDate time.Time
	Status      RecordStatus
	ImportedAt  time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewPayment creates a new Payment entity with status unprocessed.
func NewPayment(
	subject string,
	payee valueobject.PayeeIdentity,
	amount decimal.Decimal,
	paymentDate time.Time,
) *Payment {
	now := time.Now().UTC()

	return &Payment{
		Subject:     subject,
		Payee:       payee,
		Amount:      amount,
		PaymentDate: paymentDate,
		Status:      StatusUnprocessed,
		ImportedAt:  now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// PaymentMonth is the month the payment was made in.
func (p *Payment) PaymentMonth() valueobject.YearMonth {
	return valueobject.YearMonthOf(p.PaymentDate)
}
