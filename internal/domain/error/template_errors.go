// Package error defines domain-specific errors for the billing reconciliation application.
package error

import "errors"

// Expense template domain errors.
var (
	// ErrTemplateNotFound is returned when an expense template is not found.
	ErrTemplateNotFound = errors.New("expense template not found")

	// ErrInvalidTemplateAmount is returned when the base amount is negative.
	ErrInvalidTemplateAmount = errors.New("invalid template amount")

	// ErrMissingPayeeName is returned when a payee name is empty.
	ErrMissingPayeeName = errors.New("payee name is required")

	// ErrInvalidValidityPeriod is returned when the validity end precedes its start.
	ErrInvalidValidityPeriod = errors.New("validity end precedes start")
)

// TemplateErrorCode defines error codes for expense template errors.
// Format: TPL-XXYYYY where XX is category and YYYY is specific error.
type TemplateErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeTemplateNotFound       TemplateErrorCode = "TPL-010001"
	ErrCodeInvalidTemplateAmount  TemplateErrorCode = "TPL-010002"
	ErrCodeMissingPayeeName       TemplateErrorCode = "TPL-010003"
	ErrCodeInvalidValidityPeriod  TemplateErrorCode = "TPL-010004"
	ErrCodeInvalidTemplatePricing TemplateErrorCode = "TPL-010005"
	ErrCodeMissingTemplateFields  TemplateErrorCode = "TPL-010006"
)

// TemplateError represents an expense template error with code and message.
type TemplateError struct {
	Code    TemplateErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TemplateError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TemplateError) Unwrap() error {
	return e.Err
}

// NewTemplateError creates a new TemplateError with the given code and message.
func NewTemplateError(code TemplateErrorCode, message string, err error) *TemplateError {
	return &TemplateError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
