// Package valueobject contains domain value objects for the billing reconciliation system.
package valueobject

import "github.com/shopspring/decimal"

// DefaultPlaceholderBroadcastCount stands in for a monthly broadcast count when projecting
// count-based contracts without a per-month calendar source.
const DefaultPlaceholderBroadcastCount = 4

// MatchingConfig contains the configuration for three-key reconciliation.
type MatchingConfig struct {
	PayeeCodeWidth            int
	PlaceholderBroadcastCount int
}

// DefaultMatchingConfig returns the default matching configuration.
func DefaultMatchingConfig() MatchingConfig {
	return MatchingConfig{
		PayeeCodeWidth:            DefaultPayeeCodeWidth,
		PlaceholderBroadcastCount: DefaultPlaceholderBroadcastCount,
	}
}

// NormalizeCode applies the configured payee code width.
func (c MatchingConfig) NormalizeCode(code string) string {
	width := c.PayeeCodeWidth
	if width <= 0 {
		width = DefaultPayeeCodeWidth
	}
	return NormalizePayeeCode(code, width)
}

// AmountsEqual compares two amounts after truncating both to whole units.
func AmountsEqual(a, b decimal.Decimal) bool {
	return a.IntPart() == b.IntPart()
}
