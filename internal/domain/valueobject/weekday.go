// Package valueobject contains domain value objects for the billing reconciliation system.
package valueobject

import (
	"fmt"
	"sort"
	"strings"
	"time"

	domainerror "github.com/radio-billing/backend/internal/domain/error"
)

// Weekday is one of the seven broadcast day tokens, ordered Monday to Sunday.
type Weekday string

const (
	Monday    Weekday = "月"
	Tuesday   Weekday = "火"
	Wednesday Weekday = "水"
	Thursday  Weekday = "木"
	Friday    Weekday = "金"
	Saturday  Weekday = "土"
	Sunday    Weekday = "日"
)

// AllWeekdays lists the closed weekday set in Monday→Sunday order.
var AllWeekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var weekdayAliases = map[string]Weekday{
	"月": Monday, "mon": Monday, "monday": Monday,
	"火": Tuesday, "tue": Tuesday, "tuesday": Tuesday,
	"水": Wednesday, "wed": Wednesday, "wednesday": Wednesday,
	"木": Thursday, "thu": Thursday, "thursday": Thursday,
	"金": Friday, "fri": Friday, "friday": Friday,
	"土": Saturday, "sat": Saturday, "saturday": Saturday,
	"日": Sunday, "sun": Sunday, "sunday": Sunday,
}

// ParseWeekday resolves a weekday token. Unrecognized tokens are a configuration error.
func ParseWeekday(token string) (Weekday, error) {
	key := strings.ToLower(strings.TrimSpace(token))
	key = strings.TrimSuffix(key, "曜日")
	key = strings.TrimSuffix(key, "曜")
	if wd, ok := weekdayAliases[key]; ok {
		return wd, nil
	}
	return "", domainerror.NewConfigurationError(
		domainerror.ErrCodeUnknownWeekday,
		fmt.Sprintf("unrecognized weekday token %q", token),
		domainerror.ErrUnknownWeekday,
	)
}

// Index returns the Monday-based position (0..6), or -1 for an invalid value.
func (w Weekday) Index() int {
	for i, wd := range AllWeekdays {
		if wd == w {
			return i
		}
	}
	return -1
}

// TimeWeekday converts to the standard library weekday.
func (w Weekday) TimeWeekday() time.Weekday {
	idx := w.Index()
	if idx < 0 {
		return -1
	}
	return time.Weekday((idx + 1) % 7)
}

// WeekdaySet is an ordered, duplicate-free set of weekdays.
type WeekdaySet []Weekday

// NewWeekdaySet builds a set from weekdays, dropping duplicates and sorting Monday→Sunday.
// Unrecognized values are kept after the valid days so Validate can report them.
func NewWeekdaySet(days ...Weekday) WeekdaySet {
	seen := make(map[Weekday]bool, len(days))
	set := make(WeekdaySet, 0, len(days))
	for _, d := range days {
		if seen[d] {
			continue
		}
		seen[d] = true
		set = append(set, d)
	}
	sort.SliceStable(set, func(i, j int) bool { return sortIndex(set[i]) < sortIndex(set[j]) })
	return set
}

func sortIndex(w Weekday) int {
	if idx := w.Index(); idx >= 0 {
		return idx
	}
	return len(AllWeekdays)
}

// Validate returns ErrUnknownWeekday for the first value outside the closed set.
func (s WeekdaySet) Validate() error {
	for _, d := range s {
		if d.Index() < 0 {
			return domainerror.NewConfigurationError(
				domainerror.ErrCodeUnknownWeekday,
				fmt.Sprintf("unrecognized weekday %q", string(d)),
				domainerror.ErrUnknownWeekday,
			)
		}
	}
	return nil
}

// ParseWeekdaySet parses a comma, slash or space separated list of weekday tokens.
// A string of bare Japanese day characters ("月水金") is also accepted.
func ParseWeekdaySet(s string) (WeekdaySet, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return WeekdaySet{}, nil
	}

	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '/' || r == ' ' || r == '、' || r == '・'
	})
	if len(tokens) == 1 && !isASCII(tokens[0]) {
		tokens = splitRunes(tokens[0])
	}

	days := make([]Weekday, 0, len(tokens))
	for _, tok := range tokens {
		wd, err := ParseWeekday(tok)
		if err != nil {
			return nil, err
		}
		days = append(days, wd)
	}
	return NewWeekdaySet(days...), nil
}

// Contains reports whether the set includes w.
func (s WeekdaySet) Contains(w Weekday) bool {
	for _, d := range s {
		if d == w {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the set has no weekdays.
func (s WeekdaySet) IsEmpty() bool {
	return len(s) == 0
}

// String renders the set as a comma separated list.
func (s WeekdaySet) String() string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = string(d)
	}
	return strings.Join(parts, ",")
}

func isASCII(s string) bool {
	for _, r := range s {
		if r > 127 {
			return false
		}
	}
	return true
}

// splitRunes splits "月水金" into single-day tokens while keeping "月曜日" style suffixes attached.
func splitRunes(s string) []string {
	var tokens []string
	for _, r := range s {
		if len(tokens) > 0 && (r == '曜' || r == '日' && strings.HasSuffix(tokens[len(tokens)-1], "曜")) {
			tokens[len(tokens)-1] += string(r)
			continue
		}
		tokens = append(tokens, string(r))
	}
	return tokens
}
