// Package error defines domain-specific errors for the billing reconciliation application.
package error

import "errors"

// Calendar domain errors.
var (
	// ErrInvalidDate is returned when a year, month or date cannot form a calendar date.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidMonth is returned when a month is outside 1..12.
	ErrInvalidMonth = errors.New("invalid month")
)

// CalendarErrorCode defines error codes for calendar errors.
// Format: CAL-XXYYYY where XX is category and YYYY is specific error.
type CalendarErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidDate  CalendarErrorCode = "CAL-010001"
	ErrCodeInvalidMonth CalendarErrorCode = "CAL-010002"
)

// CalendarError represents a calendar error with code and message.
type CalendarError struct {
	Code    CalendarErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CalendarError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CalendarError) Unwrap() error {
	return e.Err
}

// NewCalendarError creates a new CalendarError with the given code and message.
func NewCalendarError(code CalendarErrorCode, message string, err error) *CalendarError {
	return &CalendarError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
