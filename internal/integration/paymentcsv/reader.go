// Package paymentcsv reads bank-style payment exports into import rows.
package paymentcsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/radio-billing/backend/internal/application/usecase/payment"
)

// Encoding names accepted by Read.
const (
	EncodingUTF8     = "utf-8"
	EncodingShiftJIS = "shift_jis"
)

// ErrMissingColumn is returned when a required header is absent.
var ErrMissingColumn = errors.New("missing required column")

type field int

const (
	fieldSubject field = iota
	fieldPayeeName
	fieldPayeeCode
	fieldAmount
	fieldPaymentDate
	fieldStatus
)

var headerAliases = map[string]field{
	"subject":      fieldSubject,
	"件名":           fieldSubject,
	"payee_name":   fieldPayeeName,
	"支払先":          fieldPayeeName,
	"payee_code":   fieldPayeeCode,
	"支払先コード":       fieldPayeeCode,
	"amount":       fieldAmount,
	"金額":           fieldAmount,
	"payment_date": fieldPaymentDate,
	"支払日":          fieldPaymentDate,
	"status":       fieldStatus,
	"状態":           fieldStatus,
}

var requiredFields = []struct {
	field field
	name  string
}{
	{fieldPayeeName, "payee_name"},
	{fieldAmount, "amount"},
	{fieldPaymentDate, "payment_date"},
}

// Read decodes a CSV export with a header row. Line numbers on the returned rows are
// 1-based file lines, so the first data row is line 2.
func Read(r io.Reader, encoding string) ([]payment.PaymentRow, error) {
	decoded, err := decode(r, encoding)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(decoded)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns := make(map[field]int)
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if f, ok := headerAliases[key]; ok {
			columns[f] = i
		}
	}
	for _, req := range requiredFields {
		if _, ok := columns[req.field]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, req.name)
		}
	}

	var rows []payment.PaymentRow
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read payment rows: %w", err)
		}
		if isBlank(record) {
			continue
		}
		line, _ := cr.FieldPos(0)

		rows = append(rows, payment.PaymentRow{
			Line:        line,
			Subject:     cell(record, columns, fieldSubject),
			PayeeName:   cell(record, columns, fieldPayeeName),
			PayeeCode:   cell(record, columns, fieldPayeeCode),
			Amount:      cell(record, columns, fieldAmount),
			PaymentDate: cell(record, columns, fieldPaymentDate),
			Status:      cell(record, columns, fieldStatus),
		})
	}
	return rows, nil
}

func decode(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", EncodingUTF8, "utf8":
		return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())), nil
	case EncodingShiftJIS, "sjis", "cp932":
		return transform.NewReader(r, japanese.ShiftJIS.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q", encoding)
	}
}

func cell(record []string, columns map[field]int, f field) string {
	i, ok := columns[f]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
