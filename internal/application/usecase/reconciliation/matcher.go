// Package reconciliation contains expense and order reconciliation use cases.
package reconciliation

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/radio-billing/backend/internal/domain/entity"
	domainerror "github.com/radio-billing/backend/internal/domain/error"
	"github.com/radio-billing/backend/internal/domain/valueobject"
)

// candidate is an expected obligation waiting for a payment.
type candidate struct {
	RecordID      int64
	Month         string // occurrence month for order obligations
	PayeeName     string
	PayeeCode     string // normalized
	Amount        decimal.Decimal
	ExpectedMonth valueobject.YearMonth
}

// MatchedPair describes one committed pairing.
type MatchedPair struct {
	RecordID      int64
	Month         string
	PaymentID     int64
	PayeeCode     string
	Amount        decimal.Decimal
	ExpectedMonth string
}

// UnmatchedItem describes a candidate left without a payment.
type UnmatchedItem struct {
	RecordID      int64
	Month         string
	PayeeName     string
	PayeeCode     string
	Amount        decimal.Decimal
	ExpectedMonth string
	Reason        string
}

// MatchOutput is the summary returned by both matcher variants.
type MatchOutput struct {
	BatchRunID     string
	MatchedCount   int
	UnmatchedCount int
	Matched        []MatchedPair
	Unmatched      []UnmatchedItem
	Errors         []valueobject.ItemError
}

// commitFunc persists one pairing. A returned error rolls back only that pair.
type commitFunc func(c candidate, payment *entity.Payment) error

// matchFirstWins pairs each candidate, in the given order, with the first unused payment
// sharing its normalized payee code, integer amount and expected month. Payments must be
// sorted by ascending ID. There is no backtracking: a payment taken by an earlier candidate
// is never reconsidered.
func matchFirstWins(candidates []candidate, payments []*entity.Payment, cfg valueobject.MatchingConfig, commit commitFunc) *MatchOutput {
	output := &MatchOutput{}
	used := make([]bool, len(payments))
	codes := make([]string, len(payments))
	for i, p := range payments {
		codes[i] = cfg.NormalizeCode(p.Payee.Code)
	}

	for _, c := range candidates {
		idx := -1
		if c.PayeeCode != "" {
			for i, p := range payments {
				if used[i] || codes[i] != c.PayeeCode {
					continue
				}
				if !valueobject.AmountsEqual(c.Amount, p.Amount) {
					continue
				}
				if p.PaymentMonth() != c.ExpectedMonth {
					continue
				}
				idx = i
				break
			}
		}

		if idx < 0 {
			output.UnmatchedCount++
			output.Unmatched = append(output.Unmatched, UnmatchedItem{
				RecordID:      c.RecordID,
				Month:         c.Month,
				PayeeName:     c.PayeeName,
				PayeeCode:     c.PayeeCode,
				Amount:        c.Amount,
				ExpectedMonth: c.ExpectedMonth.String(),
				Reason:        valueobject.UnmatchedReasonNoPayment,
			})
			continue
		}

		payment := payments[idx]
		if err := commit(c, payment); err != nil {
			if errors.Is(err, domainerror.ErrAlreadyMatched) {
				used[idx] = true
			}
			output.Errors = append(output.Errors, valueobject.ItemError{
				Kind:     valueobject.ItemErrorPersistence,
				RecordID: c.RecordID,
				Month:    c.Month,
				Message:  err.Error(),
			})
			continue
		}

		used[idx] = true
		output.MatchedCount++
		output.Matched = append(output.Matched, MatchedPair{
			RecordID:      c.RecordID,
			Month:         c.Month,
			PaymentID:     payment.ID,
			PayeeCode:     c.PayeeCode,
			Amount:        c.Amount,
			ExpectedMonth: c.ExpectedMonth.String(),
		})
	}

	return output
}
