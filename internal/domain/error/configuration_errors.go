// Package error defines domain-specific errors for the billing reconciliation application.
package error

import "errors"

// Configuration domain errors. A template or contract carrying one of these is skipped
// by batch operations rather than aborting the batch.
var (
	// ErrNoBroadcastDays is returned when a count-based obligation has no weekdays configured.
	ErrNoBroadcastDays = errors.New("no broadcast days configured")

	// ErrUnknownWeekday is returned when a weekday token is not one of the seven known days.
	ErrUnknownWeekday = errors.New("unknown weekday")

	// ErrUnknownPricingMode is returned when the pricing mode is not recognized.
	ErrUnknownPricingMode = errors.New("unknown pricing mode")

	// ErrUnknownPaymentTiming is returned when the payment timing policy is not recognized.
	ErrUnknownPaymentTiming = errors.New("unknown payment timing")

	// ErrMissingSpotDetails is returned when a spot contract lacks its amount or implementation date.
	ErrMissingSpotDetails = errors.New("spot contract requires amount and implementation date")

	// ErrMissingContractPeriod is returned when a regular contract lacks its start or end date.
	ErrMissingContractPeriod = errors.New("regular contract requires start and end dates")
)

// ConfigurationErrorCode defines error codes for configuration errors.
// Format: CFG-XXYYYY where XX is category and YYYY is specific error.
type ConfigurationErrorCode string

const (
	// Pricing errors (01XXXX)
	ErrCodeNoBroadcastDays    ConfigurationErrorCode = "CFG-010001"
	ErrCodeUnknownWeekday     ConfigurationErrorCode = "CFG-010002"
	ErrCodeUnknownPricingMode ConfigurationErrorCode = "CFG-010003"

	// Timing errors (02XXXX)
	ErrCodeUnknownPaymentTiming ConfigurationErrorCode = "CFG-020001"

	// Contract errors (03XXXX)
	ErrCodeMissingSpotDetails    ConfigurationErrorCode = "CFG-030001"
	ErrCodeMissingContractPeriod ConfigurationErrorCode = "CFG-030002"
)

// ConfigurationError represents a configuration error with code and message.
type ConfigurationError struct {
	Code    ConfigurationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// NewConfigurationError creates a new ConfigurationError with the given code and message.
func NewConfigurationError(code ConfigurationErrorCode, message string, err error) *ConfigurationError {
	return &ConfigurationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
