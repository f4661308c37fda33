// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// BatchOperation names a batch entry point.
type BatchOperation string

const (
	BatchOperationGenerate        BatchOperation = "generate"
	BatchOperationCatchUp         BatchOperation = "catch_up"
	BatchOperationMatchExpenses   BatchOperation = "match_expenses"
	BatchOperationMatchOrders     BatchOperation = "match_orders"
	BatchOperationImportPayments  BatchOperation = "import_payments"
	BatchOperationProjectSchedule BatchOperation = "project_schedule"
)

// BatchRun summarizes one execution of a batch operation.
type BatchRun struct {
	ID         uuid.UUID
	Operation  BatchOperation
	StartedAt  time.Time
	FinishedAt time.Time
	Counters   map[string]int
	Errors     []string
}

// NewBatchRun starts a run record for the operation.
func NewBatchRun(operation BatchOperation, startedAt time.Time) *BatchRun {
	return &BatchRun{
		ID:        uuid.New(),
		Operation: operation,
		StartedAt: startedAt,
		Counters:  make(map[string]int),
	}
}

// Finish stamps the end time.
func (b *BatchRun) Finish(at time.Time) {
	b.FinishedAt = at
}
