// Package batch contains batch-run bookkeeping use cases.
package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/radio-billing/backend/internal/application/adapter"
	"github.com/radio-billing/backend/internal/domain/entity"
	domainerror "github.com/radio-billing/backend/internal/domain/error"
	"github.com/radio-billing/backend/internal/domain/valueobject"
)

// Record stores the run when a recorder is configured. Recording failures are logged
// and never fail the batch.
func Record(ctx context.Context, recorder adapter.BatchRunRecorder, run *entity.BatchRun) {
	if recorder == nil {
		return
	}
	if err := recorder.Record(ctx, run); err != nil {
		slog.Warn("Failed to record batch run",
			"batchRunID", run.ID.String(),
			"operation", run.Operation,
			"error", err,
		)
	}
}

// ErrorMessages flattens item errors for a batch run record.
func ErrorMessages(errs []valueobject.ItemError) []string {
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, FormatItemError(e))
	}
	return messages
}

// FormatItemError renders an item error as a single line.
func FormatItemError(e valueobject.ItemError) string {
	if e.Month != "" {
		return fmt.Sprintf("%s #%d %s: %s", e.Kind, e.RecordID, e.Month, e.Message)
	}
	return fmt.Sprintf("%s #%d: %s", e.Kind, e.RecordID, e.Message)
}

// NewItemError classifies a per-record failure by the domain error it carries.
// Errors that are neither configuration nor calendar errors count as persistence failures.
func NewItemError(recordID int64, month string, err error) valueobject.ItemError {
	kind := valueobject.ItemErrorPersistence

	var cfgErr *domainerror.ConfigurationError
	var calErr *domainerror.CalendarError
	switch {
	case errors.As(err, &cfgErr):
		kind = valueobject.ItemErrorConfiguration
	case errors.As(err, &calErr):
		kind = valueobject.ItemErrorCalendar
	}

	return valueobject.ItemError{Kind: kind, RecordID: recordID, Month: month, Message: err.Error()}
}
