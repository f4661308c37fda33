// Package error defines domain-specific errors for the billing reconciliation application.
package error

import "errors"

// Report email domain errors.
var (
	// ErrMissingRecipient is returned when no report recipient is configured.
	ErrMissingRecipient = errors.New("report recipient not configured")

	// ErrReportsDisabled is returned once the mail provider has rejected a report.
	ErrReportsDisabled = errors.New("reconciliation reports disabled")
)

// EmailErrorCode defines error codes for email errors.
// Format: EMAIL-XXYYYY where XX is category and YYYY is specific error.
type EmailErrorCode string

const (
	// Send errors (02XXXX)
	ErrCodePermanentEmailFailure EmailErrorCode = "EMAIL-020002"
	ErrCodeTemporaryEmailFailure EmailErrorCode = "EMAIL-020003"
	ErrCodeMissingRecipient      EmailErrorCode = "EMAIL-020004"
	ErrCodeReportsDisabled       EmailErrorCode = "EMAIL-020005"

	// Template errors (03XXXX)
	ErrCodeTemplateRenderFailed EmailErrorCode = "EMAIL-030002"
)

// EmailError represents an email error with code and message.
type EmailError struct {
	Code    EmailErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EmailError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EmailError) Unwrap() error {
	return e.Err
}

// NewEmailError creates a new EmailError with the given code and message.
func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
