// Package entity defines the core business entities for the domain layer.
package entity

// RecordStatus is the reconciliation state shared by expenses, payments and orders.
type RecordStatus string

const (
	StatusUnprocessed RecordStatus = "unprocessed"
	StatusProcessing  RecordStatus = "processing"
	StatusMatched     RecordStatus = "matched"
	StatusCompleted   RecordStatus = "completed"
)

var statusAliases = map[string]RecordStatus{
	"unprocessed": StatusUnprocessed,
	"未処理":         StatusUnprocessed,
	"processing":  StatusProcessing,
	"処理中":         StatusProcessing,
	"matched":     StatusMatched,
	"照合済":         StatusMatched,
	"completed":   StatusCompleted,
	"完了":          StatusCompleted,
}

// ParseRecordStatus resolves a status name or its Japanese label.
func ParseRecordStatus(s string) (RecordStatus, bool) {
	status, ok := statusAliases[s]
	return status, ok
}

// IsValid checks if the status is one of the known values.
func (s RecordStatus) IsValid() bool {
	switch s {
	case StatusUnprocessed, StatusProcessing, StatusMatched, StatusCompleted:
		return true
	}
	return false
}

// IsReconciled reports whether the record is excluded from matching passes.
func (s RecordStatus) IsReconciled() bool {
	return s == StatusMatched
}
