package dto

import (
	"time"

	"github.com/radio-billing/backend/internal/application/usecase/payment"
	"github.com/radio-billing/backend/internal/domain/entity"
)

// PaymentRowRequest is one ledger line of a JSON import.
type PaymentRowRequest struct {
	Subject     string `json:"subject"`
	PayeeName   string `json:"payee_name"`
	PayeeCode   string `json:"payee_code"`
	Amount      string `json:"amount"`
	PaymentDate string `json:"payment_date"`
	Status      string `json:"status"`
}

// ImportPaymentsRequest represents the JSON body for payment import.
type ImportPaymentsRequest struct {
	Mode string              `json:"mode" binding:"required,oneof=overwrite append"`
	Rows []PaymentRowRequest `json:"rows"`
}

// RowErrorResponse describes a rejected import row.
type RowErrorResponse struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// ImportPaymentsResponse represents the response for payment import.
type ImportPaymentsResponse struct {
	BatchRunID    string             `json:"batch_run_id"`
	Mode          string             `json:"mode"`
	ImportedCount int                `json:"imported_count"`
	RejectedCount int                `json:"rejected_count"`
	Errors        []RowErrorResponse `json:"errors"`
}

// PaymentResponse represents a single payment in API responses.
type PaymentResponse struct {
	ID          int64     `json:"id"`
	Subject     string    `json:"subject"`
	PayeeName   string    `json:"payee_name"`
	PayeeCode   string    `json:"payee_code"`
	Amount      string    `json:"amount"`
	PaymentDate string    `json:"payment_date"`
	Status      string    `json:"status"`
	ImportedAt  time.Time `json:"imported_at"`
}

// PaymentListResponse represents the response for listing payments.
type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

// ToPaymentRows converts JSON rows to import rows numbered from 1.
func ToPaymentRows(rows []PaymentRowRequest) []payment.PaymentRow {
	out := make([]payment.PaymentRow, len(rows))
	for i, r := range rows {
		out[i] = payment.PaymentRow{
			Line:        i + 1,
			Subject:     r.Subject,
			PayeeName:   r.PayeeName,
			PayeeCode:   r.PayeeCode,
			Amount:      r.Amount,
			PaymentDate: r.PaymentDate,
			Status:      r.Status,
		}
	}
	return out
}

// ToImportPaymentsResponse converts an import summary to a DTO.
func ToImportPaymentsResponse(output *payment.ImportPaymentsOutput) ImportPaymentsResponse {
	errs := make([]RowErrorResponse, len(output.Errors))
	for i, e := range output.Errors {
		errs[i] = RowErrorResponse{Line: e.Line, Message: e.Message}
	}
	return ImportPaymentsResponse{
		BatchRunID:    output.BatchRunID,
		Mode:          string(output.Mode),
		ImportedCount: output.ImportedCount,
		RejectedCount: output.RejectedCount,
		Errors:        errs,
	}
}

// ToPaymentResponse converts a domain Payment entity to a PaymentResponse DTO.
func ToPaymentResponse(p *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:          p.ID,
		Subject:     p.Subject,
		PayeeName:   p.Payee.Name,
		PayeeCode:   p.Payee.Code,
		Amount:      p.Amount.String(),
		PaymentDate: p.PaymentDate.Format(DateLayout),
		Status:      string(p.Status),
		ImportedAt:  p.ImportedAt,
	}
}

// ToPaymentListResponse converts a slice of payments to a list response.
func ToPaymentListResponse(payments []*entity.Payment) PaymentListResponse {
	responses := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		responses[i] = ToPaymentResponse(p)
	}
	return PaymentListResponse{Payments: responses}
}
