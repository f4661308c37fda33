// Package error defines domain-specific errors for the billing reconciliation application.
package error

import "errors"

// Persistence domain errors.
var (
	// ErrPersistenceFailed is returned when a write during a batch fails and is rolled back.
	ErrPersistenceFailed = errors.New("persistence failure")

	// ErrAlreadyMatched is returned when a record was matched by another pass before commit.
	ErrAlreadyMatched = errors.New("record already matched")
)

// PersistenceErrorCode defines error codes for persistence errors.
// Format: PER-XXYYYY where XX is category and YYYY is specific error.
type PersistenceErrorCode string

const (
	// Write errors (01XXXX)
	ErrCodePersistenceFailed PersistenceErrorCode = "PER-010001"
	ErrCodeAlreadyMatched    PersistenceErrorCode = "PER-010002"
)

// PersistenceError represents a persistence error with code and message.
type PersistenceError struct {
	Code    PersistenceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PersistenceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NewPersistenceError creates a new PersistenceError with the given code and message.
func NewPersistenceError(code PersistenceErrorCode, message string, err error) *PersistenceError {
	return &PersistenceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
