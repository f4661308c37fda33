package dto

import (
	"github.com/radio-billing/backend/internal/application/usecase/reconciliation"
	"github.com/radio-billing/backend/internal/domain/valueobject"
)

// MatchedPairResponse describes one committed pairing.
type MatchedPairResponse struct {
	RecordID      int64  `json:"record_id"`
	Month         string `json:"month,omitempty"`
	PaymentID     int64  `json:"payment_id"`
	PayeeCode     string `json:"payee_code"`
	Amount        string `json:"amount"`
	ExpectedMonth string `json:"expected_month"`
}

// UnmatchedItemResponse describes a candidate left without a payment.
type UnmatchedItemResponse struct {
	RecordID      int64  `json:"record_id"`
	Month         string `json:"month,omitempty"`
	PayeeName     string `json:"payee_name"`
	PayeeCode     string `json:"payee_code"`
	Amount        string `json:"amount"`
	ExpectedMonth string `json:"expected_month"`
	Reason        string `json:"reason"`
}

// MatchResponse represents the summary of a matching batch.
type MatchResponse struct {
	BatchRunID     string                  `json:"batch_run_id"`
	MatchedCount   int                     `json:"matched_count"`
	UnmatchedCount int                     `json:"unmatched_count"`
	Matched        []MatchedPairResponse   `json:"matched"`
	Unmatched      []UnmatchedItemResponse `json:"unmatched"`
	Errors         []ItemErrorResponse     `json:"errors"`
}

// ResetRequest represents the request for POST /reconciliation/reset.
type ResetRequest struct {
	Kind     string `json:"kind" binding:"required,oneof=expense order"`
	RecordID int64  `json:"record_id" binding:"required,gt=0"`
}

// ResetResponse represents the response for POST /reconciliation/reset.
type ResetResponse struct {
	Kind            string  `json:"kind"`
	RecordID        int64   `json:"record_id"`
	PairingsRemoved int     `json:"pairings_removed"`
	PaymentIDs      []int64 `json:"payment_ids"`
}

// StatusCountsResponse holds record counts per status.
type StatusCountsResponse struct {
	Unprocessed int64 `json:"unprocessed"`
	Processing  int64 `json:"processing"`
	Matched     int64 `json:"matched"`
	Completed   int64 `json:"completed"`
	Total       int64 `json:"total"`
}

// SummaryResponse represents the response for GET /reconciliation/summary.
type SummaryResponse struct {
	Expenses StatusCountsResponse `json:"expenses"`
	Payments StatusCountsResponse `json:"payments"`
	Orders   StatusCountsResponse `json:"orders"`
}

// ToMatchResponse converts a matching summary to a DTO.
func ToMatchResponse(output *reconciliation.MatchOutput) MatchResponse {
	matched := make([]MatchedPairResponse, len(output.Matched))
	for i, m := range output.Matched {
		matched[i] = MatchedPairResponse{
			RecordID:      m.RecordID,
			Month:         m.Month,
			PaymentID:     m.PaymentID,
			PayeeCode:     m.PayeeCode,
			Amount:        m.Amount.String(),
			ExpectedMonth: m.ExpectedMonth,
		}
	}

	unmatched := make([]UnmatchedItemResponse, len(output.Unmatched))
	for i, u := range output.Unmatched {
		unmatched[i] = UnmatchedItemResponse{
			RecordID:      u.RecordID,
			Month:         u.Month,
			PayeeName:     u.PayeeName,
			PayeeCode:     u.PayeeCode,
			Amount:        u.Amount.String(),
			ExpectedMonth: u.ExpectedMonth,
			Reason:        u.Reason,
		}
	}

	return MatchResponse{
		BatchRunID:     output.BatchRunID,
		MatchedCount:   output.MatchedCount,
		UnmatchedCount: output.UnmatchedCount,
		Matched:        matched,
		Unmatched:      unmatched,
		Errors:         ToItemErrorResponses(output.Errors),
	}
}

// ToResetResponse converts a revert result to a DTO.
func ToResetResponse(output *reconciliation.ResetStatusOutput) ResetResponse {
	paymentIDs := output.PaymentIDs
	if paymentIDs == nil {
		paymentIDs = []int64{}
	}
	return ResetResponse{
		Kind:            string(output.Kind),
		RecordID:        output.RecordID,
		PairingsRemoved: output.PairingsRemoved,
		PaymentIDs:      paymentIDs,
	}
}

// ToSummaryResponse converts status counts to a DTO.
func ToSummaryResponse(summary valueobject.ReconciliationSummary) SummaryResponse {
	return SummaryResponse{
		Expenses: toStatusCounts(summary.Expenses),
		Payments: toStatusCounts(summary.Payments),
		Orders:   toStatusCounts(summary.Orders),
	}
}

func toStatusCounts(c valueobject.StatusCounts) StatusCountsResponse {
	return StatusCountsResponse{
		Unprocessed: c.Unprocessed,
		Processing:  c.Processing,
		Matched:     c.Matched,
		Completed:   c.Completed,
		Total:       c.Total(),
	}
}
