package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/radio-billing/backend/internal/domain/entity"
)

// TemplateRequest represents the request body for template creation and update.
// An update replaces every editable field.
type TemplateRequest struct {
	PayeeName     string          `json:"payee_name" binding:"required"`
	PayeeCode     string          `json:"payee_code"`
	Title         string          `json:"title"`
	BaseAmount    decimal.Decimal `json:"base_amount"`
	PricingMode   string          `json:"pricing_mode"`
	Weekdays      string          `json:"weekdays"`
	ValidFrom     *string         `json:"valid_from,omitempty"`
	ValidTo       *string         `json:"valid_to,omitempty"`
	PaymentTiming string          `json:"payment_timing"`
	Notes         string          `json:"notes"`
}

// TemplateResponse represents a single expense template in API responses.
type TemplateResponse struct {
	ID            int64     `json:"id"`
	PayeeName     string    `json:"payee_name"`
	PayeeCode     string    `json:"payee_code"`
	Title         string    `json:"title"`
	BaseAmount    string    `json:"base_amount"`
	PricingMode   string    `json:"pricing_mode"`
	Weekdays      []string  `json:"weekdays"`
	ValidFrom     *string   `json:"valid_from,omitempty"`
	ValidTo       *string   `json:"valid_to,omitempty"`
	PaymentTiming string    `json:"payment_timing"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TemplateListResponse represents the response for listing templates.
type TemplateListResponse struct {
	Templates []TemplateResponse `json:"templates"`
}

// ToTemplateResponse converts a domain ExpenseTemplate entity to a TemplateResponse DTO.
func ToTemplateResponse(t *entity.ExpenseTemplate) TemplateResponse {
	return TemplateResponse{
		ID:            t.ID,
		PayeeName:     t.Payee.Name,
		PayeeCode:     t.Payee.Code,
		Title:         t.Title,
		BaseAmount:    t.BaseAmount.String(),
		PricingMode:   string(t.PricingMode),
		Weekdays:      weekdayStrings(t.Weekdays),
		ValidFrom:     formatOptionalDate(t.ValidFrom),
		ValidTo:       formatOptionalDate(t.ValidTo),
		PaymentTiming: string(t.Timing),
		Notes:         t.Notes,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

// ToTemplateListResponse converts a slice of templates to a list response.
func ToTemplateListResponse(templates []*entity.ExpenseTemplate) TemplateListResponse {
	responses := make([]TemplateResponse, len(templates))
	for i, t := range templates {
		responses[i] = ToTemplateResponse(t)
	}
	return TemplateListResponse{Templates: responses}
}
