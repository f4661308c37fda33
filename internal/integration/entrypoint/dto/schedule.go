package dto

import (
	"github.com/radio-billing/backend/internal/application/usecase/schedule"
)

// ObligationResponse is one projected monthly obligation of an order contract.
type ObligationResponse struct {
	OrderID              int64             `json:"order_id"`
	PayeeName            string            `json:"payee_name"`
	PayeeCode            string            `json:"payee_code"`
	Title                string            `json:"title"`
	OrderType            string            `json:"order_type"`
	OccurrenceMonth      string            `json:"occurrence_month"`
	ExpectedPaymentMonth string            `json:"expected_payment_month"`
	Amount               string            `json:"amount"`
	Breakdown            BreakdownResponse `json:"breakdown"`
	OrderPlaced          bool              `json:"order_placed"`
	DocumentsDistributed bool              `json:"documents_distributed"`
}

// ScheduleResponse represents the response for GET /schedule.
type ScheduleResponse struct {
	Obligations []ObligationResponse `json:"obligations"`
	Errors      []ItemErrorResponse  `json:"errors"`
}

// CompletenessItemResponse is an obligation with its traffic light.
type CompletenessItemResponse struct {
	ObligationResponse
	HasPayment   bool   `json:"has_payment"`
	Completeness string `json:"completeness"`
}

// CompletenessCountsResponse tallies obligations per traffic light.
type CompletenessCountsResponse struct {
	Red    int `json:"red"`
	Yellow int `json:"yellow"`
	Green  int `json:"green"`
}

// CompletenessResponse represents the response for GET /schedule/completeness.
type CompletenessResponse struct {
	Items  []CompletenessItemResponse `json:"items"`
	Counts CompletenessCountsResponse `json:"counts"`
	Errors []ItemErrorResponse        `json:"errors"`
}

// ToScheduleResponse converts a projection to a DTO.
func ToScheduleResponse(output *schedule.ProjectScheduleOutput) ScheduleResponse {
	obligations := make([]ObligationResponse, len(output.Obligations))
	for i, o := range output.Obligations {
		obligations[i] = toObligationResponse(o)
	}
	return ScheduleResponse{
		Obligations: obligations,
		Errors:      ToItemErrorResponses(output.Errors),
	}
}

// ToCompletenessResponse converts a completeness report to a DTO.
func ToCompletenessResponse(output *schedule.GetCompletenessOutput) CompletenessResponse {
	items := make([]CompletenessItemResponse, len(output.Items))
	for i, item := range output.Items {
		items[i] = CompletenessItemResponse{
			ObligationResponse: toObligationResponse(item.Obligation),
			HasPayment:         item.HasPayment,
			Completeness:       string(item.Completeness),
		}
	}
	return CompletenessResponse{
		Items: items,
		Counts: CompletenessCountsResponse{
			Red:    output.Counts.Red,
			Yellow: output.Counts.Yellow,
			Green:  output.Counts.Green,
		},
		Errors: ToItemErrorResponses(output.Errors),
	}
}

func toObligationResponse(o schedule.ProjectedObligation) ObligationResponse {
	return ObligationResponse{
		OrderID:              o.OrderID,
		PayeeName:            o.PayeeName,
		PayeeCode:            o.PayeeCode,
		Title:                o.Title,
		OrderType:            string(o.OrderType),
		OccurrenceMonth:      o.OccurrenceMonth.String(),
		ExpectedPaymentMonth: o.ExpectedPaymentMonth.String(),
		Amount:               o.Amount.String(),
		Breakdown:            ToBreakdownResponse(o.Breakdown),
		OrderPlaced:          o.OrderPlaced,
		DocumentsDistributed: o.DocumentsDistributed,
	}
}
