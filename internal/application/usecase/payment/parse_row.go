// Package payment contains payment import and listing use cases.
package payment

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/radio-billing/backend/internal/domain/entity"
	domainerror "github.com/radio-billing/backend/internal/domain/error"
	"github.com/radio-billing/backend/internal/domain/valueobject"
)

// PaymentRow is one imported ledger line. Header mapping and encoding are handled by the caller.
type PaymentRow struct {
	Line        int
	Subject     string
	PayeeName   string
	PayeeCode   string
	Amount      string // e.g. "¥1,234,000"
	PaymentDate string // "2024/10/31" or "2024-10-31"
	Status      string // Optional
}

var amountNoise = strings.NewReplacer(",", "", "¥", "", "￥", "", "円", "", "$", "", " ", "", "　", "")

var dateLayouts = []string{
	"2006/1/2",
	"2006-1-2",
	"2006/01/02 15:04:05",
	"2006-01-02 15:04:05",
}

// ParseAmount strips thousands separators and currency symbols.
func ParseAmount(s string) (decimal.Decimal, error) {
	cleaned := amountNoise.Replace(strings.TrimSpace(s))
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAmount,
			fmt.Sprintf("cannot parse amount %q", s),
			domainerror.ErrInvalidAmount,
		)
	}
	return amount, nil
}

// ParsePaymentDate accepts slash or hyphen delimited dates with optional zero padding.
func ParsePaymentDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, domainerror.NewCalendarError(
		domainerror.ErrCodeInvalidDate,
		fmt.Sprintf("cannot parse payment date %q", s),
		domainerror.ErrInvalidDate,
	)
}

func (r PaymentRow) toEntity() (*entity.Payment, error) {
	name := strings.TrimSpace(r.PayeeName)
	if name == "" {
		return nil, rowError(r.Line, "payee name is required", domainerror.ErrMissingPayeeName)
	}

	amount, err := ParseAmount(r.Amount)
	if err != nil {
		return nil, rowError(r.Line, "invalid amount", err)
	}

	date, err := ParsePaymentDate(r.PaymentDate)
	if err != nil {
		return nil, rowError(r.Line, "invalid payment date", err)
	}

	payment := entity.NewPayment(
		strings.TrimSpace(r.Subject),
		valueobject.PayeeIdentity{Name: name, Code: strings.TrimSpace(r.PayeeCode)},
		amount,
		date,
	)

	if s := strings.TrimSpace(r.Status); s != "" {
		status, ok := entity.ParseRecordStatus(s)
		if !ok {
			return nil, rowError(r.Line, fmt.Sprintf("unknown status %q", s), domainerror.ErrInvalidStatus)
		}
		payment.Status = status
	}

	return payment, nil
}

func rowError(line int, message string, err error) error {
	return domainerror.NewLedgerError(
		domainerror.ErrCodeInvalidImportRow,
		fmt.Sprintf("line %d: %s", line, message),
		err,
	)
}
