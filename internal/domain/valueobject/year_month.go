// Package valueobject contains domain value objects for the billing reconciliation system.
package valueobject

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	domainerror "github.com/radio-billing/backend/internal/domain/error"
)

// YearMonth identifies a calendar month.
type YearMonth struct {
	Year  int
	Month int
}

// NewYearMonth creates a YearMonth, validating the month range.
func NewYearMonth(year, month int) (YearMonth, error) {
	if month < 1 || month > 12 {
		return YearMonth{}, domainerror.NewCalendarError(
			domainerror.ErrCodeInvalidMonth,
			fmt.Sprintf("month must be between 1 and 12, got %d", month),
			domainerror.ErrInvalidMonth,
		)
	}
	if year < 1 || year > 9999 {
		return YearMonth{}, domainerror.NewCalendarError(
			domainerror.ErrCodeInvalidDate,
			fmt.Sprintf("year must be between 1 and 9999, got %d", year),
			domainerror.ErrInvalidDate,
		)
	}
	return YearMonth{Year: year, Month: month}, nil
}

// YearMonthOf returns the month containing t.
func YearMonthOf(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: int(t.Month())}
}

// ParseYearMonth parses "YYYY-MM" (or "YYYY/MM").
func ParseYearMonth(s string) (YearMonth, error) {
	s = strings.TrimSpace(s)
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '-' || r == '/' })
	if len(parts) != 2 || len(parts[0]) != 4 {
		return YearMonth{}, domainerror.NewCalendarError(
			domainerror.ErrCodeInvalidDate,
			"year-month must be in YYYY-MM format",
			domainerror.ErrInvalidDate,
		)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return YearMonth{}, domainerror.NewCalendarError(domainerror.ErrCodeInvalidDate, "invalid year", domainerror.ErrInvalidDate)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return YearMonth{}, domainerror.NewCalendarError(domainerror.ErrCodeInvalidMonth, "invalid month", domainerror.ErrInvalidMonth)
	}

	return NewYearMonth(year, month)
}

// String formats the month as YYYY-MM.
func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, ym.Month)
}

// AddMonths shifts the month by n, rolling the year as needed.
func (ym YearMonth) AddMonths(n int) YearMonth {
	idx := ym.Year*12 + (ym.Month - 1) + n
	return YearMonth{Year: idx / 12, Month: idx%12 + 1}
}

// FirstDay returns midnight UTC on the first day of the month.
func (ym YearMonth) FirstDay() time.Time {
	return time.Date(ym.Year, time.Month(ym.Month), 1, 0, 0, 0, 0, time.UTC)
}

// LastDay returns midnight UTC on the last calendar day of the month.
func (ym YearMonth) LastDay() time.Time {
	return time.Date(ym.Year, time.Month(ym.Month)+1, 0, 0, 0, 0, 0, time.UTC)
}

// DaysIn returns the number of days in the month.
func (ym YearMonth) DaysIn() int {
	return ym.LastDay().Day()
}

// Before reports whether ym is strictly earlier than other.
func (ym YearMonth) Before(other YearMonth) bool {
	if ym.Year != other.Year {
		return ym.Year < other.Year
	}
	return ym.Month < other.Month
}

// After reports whether ym is strictly later than other.
func (ym YearMonth) After(other YearMonth) bool {
	return other.Before(ym)
}

// IsZero reports whether the value is unset.
func (ym YearMonth) IsZero() bool {
	return ym.Year == 0 && ym.Month == 0
}
