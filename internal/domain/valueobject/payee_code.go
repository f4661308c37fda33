// Package valueobject contains domain value objects for the billing reconciliation system.
package valueobject

import (
	"regexp"
	"strings"
)

// DefaultPayeeCodeWidth is the zero-padded width used for numeric payee codes.
const DefaultPayeeCodeWidth = 4

var (
	numericCodeRegex      = regexp.MustCompile(`^[0-9]+$`)
	spreadsheetFloatRegex = regexp.MustCompile(`^([0-9]+)\.0+$`)
)

// NormalizePayeeCode zero-pads pure-numeric codes to width characters.
// Alphanumeric codes pass through unchanged and empty input stays empty.
// Codes exported as "42.0" by spreadsheet tools are treated as numeric.
func NormalizePayeeCode(code string, width int) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return ""
	}

	if m := spreadsheetFloatRegex.FindStringSubmatch(code); m != nil {
		code = m[1]
	}

	if !numericCodeRegex.MatchString(code) {
		return code
	}

	if len(code) >= width {
		return code
	}
	return strings.Repeat("0", width-len(code)) + code
}

// PayeeIdentity identifies a payment counterparty.
type PayeeIdentity struct {
	Name string
	Code string
}

// NormalizedCode returns the payee code normalized to the given width.
func (p PayeeIdentity) NormalizedCode(width int) string {
	return NormalizePayeeCode(p.Code, width)
}
