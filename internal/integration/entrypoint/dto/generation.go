package dto

import (
	"github.com/radio-billing/backend/internal/application/usecase/generation"
)

// GenerateRequest represents the request body for generating a target payment month.
type GenerateRequest struct {
	Year  int `json:"year" binding:"required"`
	Month int `json:"month" binding:"required"`
}

// GeneratedItemResponse describes one expense created or refreshed by a run.
type GeneratedItemResponse struct {
	ExpenseID       int64             `json:"expense_id"`
	TemplateID      int64             `json:"template_id"`
	PayeeName       string            `json:"payee_name"`
	PayeeCode       string            `json:"payee_code"`
	Title           string            `json:"title"`
	Amount          string            `json:"amount"`
	PaymentDate     string            `json:"payment_date"`
	OccurrenceMonth string            `json:"occurrence_month"`
	Breakdown       BreakdownResponse `json:"breakdown"`
}

// SkippedItemResponse describes a template that produced nothing.
type SkippedItemResponse struct {
	TemplateID int64  `json:"template_id"`
	Reason     string `json:"reason"`
}

// GenerationResponse represents the summary of a generation run.
type GenerationResponse struct {
	BatchRunID     string                  `json:"batch_run_id"`
	TargetMonth    string                  `json:"target_month"`
	GeneratedCount int                     `json:"generated_count"`
	UpdatedCount   int                     `json:"updated_count"`
	SkippedCount   int                     `json:"skipped_count"`
	Generated      []GeneratedItemResponse `json:"generated"`
	Updated        []GeneratedItemResponse `json:"updated"`
	Skipped        []SkippedItemResponse   `json:"skipped"`
	Errors         []ItemErrorResponse     `json:"errors"`
}

// ToGenerationResponse converts a generation summary to a DTO.
func ToGenerationResponse(output *generation.GenerationOutput) GenerationResponse {
	skipped := make([]SkippedItemResponse, len(output.Skipped))
	for i, s := range output.Skipped {
		skipped[i] = SkippedItemResponse{TemplateID: s.TemplateID, Reason: s.Reason}
	}

	return GenerationResponse{
		BatchRunID:     output.BatchRunID.String(),
		TargetMonth:    output.TargetMonth,
		GeneratedCount: output.GeneratedCount,
		UpdatedCount:   output.UpdatedCount,
		SkippedCount:   output.SkippedCount,
		Generated:      toGeneratedItems(output.Generated),
		Updated:        toGeneratedItems(output.Updated),
		Skipped:        skipped,
		Errors:         ToItemErrorResponses(output.Errors),
	}
}

func toGeneratedItems(items []generation.GeneratedItem) []GeneratedItemResponse {
	responses := make([]GeneratedItemResponse, len(items))
	for i, item := range items {
		responses[i] = GeneratedItemResponse{
			ExpenseID:       item.ExpenseID,
			TemplateID:      item.TemplateID,
			PayeeName:       item.PayeeName,
			PayeeCode:       item.PayeeCode,
			Title:           item.Title,
			Amount:          item.Amount.String(),
			PaymentDate:     item.PaymentDate.Format(DateLayout),
			OccurrenceMonth: item.OccurrenceMonth,
			Breakdown:       ToBreakdownResponse(item.Breakdown),
		}
	}
	return responses
}
