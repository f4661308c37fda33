package valueobject

import "testing"

func TestNormalizePayeeCode(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		width    int
		expected string
	}{
		{name: "numeric code is zero padded", code: "42", width: 4, expected: "0042"},
		{name: "alphanumeric code passes through", code: "A1", width: 4, expected: "A1"},
		{name: "empty code stays empty", code: "", width: 4, expected: ""},
		{name: "whitespace only is empty", code: "   ", width: 4, expected: ""},
		{name: "already padded", code: "0042", width: 4, expected: "0042"},
		{name: "longer than width", code: "123456", width: 4, expected: "123456"},
		{name: "spreadsheet float export", code: "42.0", width: 4, expected: "0042"},
		{name: "surrounding whitespace trimmed", code: " 7 ", width: 4, expected: "0007"},
		{name: "custom width", code: "42", width: 6, expected: "000042"},
		{name: "decimal with fraction is not numeric", code: "42.5", width: 4, expected: "42.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePayeeCode(tt.code, tt.width)
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestNormalizePayeeCode_Idempotent(t *testing.T) {
	for _, code := range []string{"1", "42", "0042", "A1", "", "99999"} {
		once := NormalizePayeeCode(code, DefaultPayeeCodeWidth)
		twice := NormalizePayeeCode(once, DefaultPayeeCodeWidth)
		if once != twice {
			t.Errorf("%q: normalization not idempotent (%q vs %q)", code, once, twice)
		}
	}
}

func TestMatchingConfig_NormalizeCode(t *testing.T) {
	cfg := MatchingConfig{PayeeCodeWidth: 0}
	if got := cfg.NormalizeCode("42"); got != "0042" {
		t.Errorf("expected default width fallback, got %q", got)
	}

	cfg = DefaultMatchingConfig()
	if cfg.PlaceholderBroadcastCount != 4 {
		t.Errorf("expected placeholder count 4, got %d", cfg.PlaceholderBroadcastCount)
	}
}
