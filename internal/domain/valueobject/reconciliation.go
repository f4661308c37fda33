// Package valueobject contains domain value objects for the billing reconciliation system.
package valueobject

// UnmatchedReasonNoPayment is recorded for every candidate left without a payment.
const UnmatchedReasonNoPayment = "no corresponding payment found"

// ItemErrorKind classifies a per-record failure inside a batch.
type ItemErrorKind string

const (
	ItemErrorConfiguration ItemErrorKind = "configuration"
	ItemErrorPersistence   ItemErrorKind = "persistence"
	ItemErrorCalendar      ItemErrorKind = "calendar"
)

// ItemError describes one record skipped by a batch pass.
type ItemError struct {
	Kind     ItemErrorKind
	RecordID int64
	Month    string // YYYY-MM, empty when not month-scoped
	Message  string
}

// StatusCounts holds record counts per reconciliation status.
type StatusCounts struct {
	Unprocessed int64
	Processing  int64
	Matched     int64
	Completed   int64
}

// Total returns the sum of all buckets.
func (c StatusCounts) Total() int64 {
	return c.Unprocessed + c.Processing + c.Matched + c.Completed
}

// ReconciliationSummary contains status counts per record set.
type ReconciliationSummary struct {
	Expenses StatusCounts
	Payments StatusCounts
	Orders   StatusCounts
}
