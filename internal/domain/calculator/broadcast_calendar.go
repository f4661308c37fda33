// Package calculator holds the pure calendar, timing and amount rules of billing.
package calculator

import (
	"fmt"
	"time"

	domainerror "github.com/radio-billing/backend/internal/domain/error"
	"github.com/radio-billing/backend/internal/domain/valueobject"
)

// CountWeekdayOccurrences returns how many times weekday falls within the month.
func CountWeekdayOccurrences(year, month int, weekday valueobject.Weekday) (int, error) {
	if err := validateCalendarMonth(year, month); err != nil {
		return 0, err
	}
	target := weekday.TimeWeekday()
	if target < 0 {
		return 0, domainerror.NewConfigurationError(
			domainerror.ErrCodeUnknownWeekday,
			fmt.Sprintf("unrecognized weekday %q", string(weekday)),
			domainerror.ErrUnknownWeekday,
		)
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	days := first.AddDate(0, 1, -1).Day()

	// Every weekday occurs four times in the first 28 days; the remaining
	// days-28 days start on the same weekday as the first of the month.
	offset := (int(target) - int(first.Weekday()) + 7) % 7
	count := 4
	if offset < days-28 {
		count++
	}
	return count, nil
}

// CountMultiWeekdayOccurrences sums CountWeekdayOccurrences over the set.
// Duplicates in the set are counted once; any unrecognized weekday is an error.
func CountMultiWeekdayOccurrences(year, month int, weekdays valueobject.WeekdaySet) (int, error) {
	if err := validateCalendarMonth(year, month); err != nil {
		return 0, err
	}
	if err := weekdays.Validate(); err != nil {
		return 0, err
	}

	total := 0
	for _, wd := range valueobject.NewWeekdaySet(weekdays...) {
		n, err := CountWeekdayOccurrences(year, month, wd)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

func validateCalendarMonth(year, month int) error {
	if month < 1 || month > 12 || year < 1 || year > 9999 {
		return domainerror.NewCalendarError(
			domainerror.ErrCodeInvalidDate,
			fmt.Sprintf("invalid calendar month %d-%d", year, month),
			domainerror.ErrInvalidDate,
		)
	}
	return nil
}
