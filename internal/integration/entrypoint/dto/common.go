// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/radio-billing/backend/internal/domain/calculator"
	"github.com/radio-billing/backend/internal/domain/valueobject"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// ItemErrorResponse describes one record skipped by a batch pass.
type ItemErrorResponse struct {
	Kind     string `json:"kind"`
	RecordID int64  `json:"record_id"`
	Month    string `json:"month,omitempty"`
	Message  string `json:"message"`
}

// BreakdownResponse explains how an amount was derived.
type BreakdownResponse struct {
	Mode            string   `json:"mode"`
	Month           string   `json:"month"`
	OccurrenceCount int      `json:"occurrence_count"`
	UnitPrice       string   `json:"unit_price"`
	Weekdays        []string `json:"weekdays"`
	Amount          string   `json:"amount"`
}

// ToItemErrorResponses converts batch item errors to DTOs.
func ToItemErrorResponses(errs []valueobject.ItemError) []ItemErrorResponse {
	responses := make([]ItemErrorResponse, len(errs))
	for i, e := range errs {
		responses[i] = ItemErrorResponse{
			Kind:     string(e.Kind),
			RecordID: e.RecordID,
			Month:    e.Month,
			Message:  e.Message,
		}
	}
	return responses
}

// ToBreakdownResponse converts an amount breakdown to a DTO.
func ToBreakdownResponse(b calculator.Breakdown) BreakdownResponse {
	return BreakdownResponse{
		Mode:            string(b.Mode),
		Month:           b.Month.String(),
		OccurrenceCount: b.OccurrenceCount,
		UnitPrice:       b.UnitPrice.String(),
		Weekdays:        weekdayStrings(b.Weekdays),
		Amount:          b.Amount.String(),
	}
}

func weekdayStrings(set valueobject.WeekdaySet) []string {
	days := make([]string, len(set))
	for i, d := range set {
		days[i] = string(d)
	}
	return days
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}
