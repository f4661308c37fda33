package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/radio-billing/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for manual expense creation.
type CreateExpenseRequest struct {
	PayeeName   string          `json:"payee_name" binding:"required"`
	PayeeCode   string          `json:"payee_code"`
	Title       string          `json:"title"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate string          `json:"payment_date" binding:"required"`
	Notes       string          `json:"notes"`
}

// UpdateExpenseRequest represents the request body for expense update.
type UpdateExpenseRequest struct {
	PayeeName   *string          `json:"payee_name,omitempty"`
	PayeeCode   *string          `json:"payee_code,omitempty"`
	Title       *string          `json:"title,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	PaymentDate *string          `json:"payment_date,omitempty"`
	Status      *string          `json:"status,omitempty"`
	Notes       *string          `json:"notes,omitempty"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID              int64     `json:"id"`
	PayeeName       string    `json:"payee_name"`
	PayeeCode       string    `json:"payee_code"`
	Title           string    `json:"title"`
	Amount          string    `json:"amount"`
	PaymentDate     string    `json:"payment_date"`
	Status          string    `json:"status"`
	TemplateID      *int64    `json:"template_id,omitempty"`
	GenerationMonth *string   `json:"generation_month,omitempty"`
	Source          string    `json:"source"`
	PaymentTiming   string    `json:"payment_timing"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToExpenseResponse converts a domain Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(e *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:              e.ID,
		PayeeName:       e.Payee.Name,
		PayeeCode:       e.Payee.Code,
		Title:           e.Title,
		Amount:          e.Amount.String(),
		PaymentDate:     e.PaymentDate.Format(DateLayout),
		Status:          string(e.Status),
		TemplateID:      e.TemplateID,
		GenerationMonth: e.GenerationMonth,
		Source:          string(e.Source),
		PaymentTiming:   string(e.Timing),
		Notes:           e.Notes,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

// ToExpenseListResponse converts a slice of expenses to a list response.
func ToExpenseListResponse(expenses []*entity.Expense) ExpenseListResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		responses[i] = ToExpenseResponse(e)
	}
	return ExpenseListResponse{Expenses: responses}
}
