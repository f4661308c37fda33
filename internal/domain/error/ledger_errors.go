// Package error defines domain-specific errors for the billing reconciliation application.
package error

import "errors"

// Ledger domain errors covering expenses, payments and order contracts.
var (
	// ErrExpenseNotFound is returned when an expense instance is not found.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrPaymentNotFound is returned when a payment record is not found.
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrOrderNotFound is returned when an order contract is not found.
	ErrOrderNotFound = errors.New("order contract not found")

	// ErrInvalidStatus is returned when a record status is not recognized.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidAmount is returned when an amount is negative or cannot be parsed.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidImportRow is returned when an imported payment row is malformed.
	ErrInvalidImportRow = errors.New("invalid import row")

	// ErrInvalidImportMode is returned when the import mode is neither overwrite nor append.
	ErrInvalidImportMode = errors.New("invalid import mode")

	// ErrInvalidOrderType is returned when the order type is not regular or spot.
	ErrInvalidOrderType = errors.New("invalid order type")

	// ErrInvalidMatchKind is returned when a reset targets an unknown record kind.
	ErrInvalidMatchKind = errors.New("invalid match kind")

	// ErrNotMatched is returned when resetting a record that is not matched.
	ErrNotMatched = errors.New("record is not matched")

	// ErrGeneratedFieldLocked is returned when editing the amount or payment date of a
	// template-generated expense.
	ErrGeneratedFieldLocked = errors.New("generated expense field cannot be edited")

	// ErrBatchThrottled is returned when one client triggers batches too often.
	ErrBatchThrottled = errors.New("too many batch triggers")
)

// LedgerErrorCode defines error codes for ledger errors.
// Format: LDG-XXYYYY where XX is category and YYYY is specific error.
type LedgerErrorCode string

const (
	// Lookup errors (01XXXX)
	ErrCodeExpenseNotFound LedgerErrorCode = "LDG-010001"
	ErrCodePaymentNotFound LedgerErrorCode = "LDG-010002"
	ErrCodeOrderNotFound   LedgerErrorCode = "LDG-010003"

	// Validation errors (02XXXX)
	ErrCodeInvalidStatus        LedgerErrorCode = "LDG-020001"
	ErrCodeInvalidAmount        LedgerErrorCode = "LDG-020002"
	ErrCodeInvalidImportRow     LedgerErrorCode = "LDG-020003"
	ErrCodeInvalidImportMode    LedgerErrorCode = "LDG-020004"
	ErrCodeInvalidOrderType     LedgerErrorCode = "LDG-020005"
	ErrCodeMissingLedgerFields  LedgerErrorCode = "LDG-020006"
	ErrCodeGeneratedFieldLocked LedgerErrorCode = "LDG-020007"

	// Reconciliation errors (03XXXX)
	ErrCodeInvalidMatchKind LedgerErrorCode = "LDG-030001"
	ErrCodeNotMatched       LedgerErrorCode = "LDG-030002"

	// Batch errors (04XXXX)
	ErrCodeBatchThrottled LedgerErrorCode = "LDG-040001"
)

// LedgerError represents a ledger error with code and message.
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
