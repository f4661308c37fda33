// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/shopspring/decimal"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// ReconciliationReport is the content of the report mailed after a matching batch.
type ReconciliationReport struct {
	BatchRunID     string
	Kind           string
	MatchedCount   int
	UnmatchedCount int
	Unmatched      []ReportLine
	Errors         []string
}

// ReportLine describes one unmatched candidate in the report.
type ReportLine struct {
	RecordID  int64
	PayeeName string
	PayeeCode string
	Amount    decimal.Decimal
	Month     string
	Reason    string
}

// ReportService defines the interface for delivering reconciliation reports.
type ReportService interface {
	// SendReconciliationReport renders and sends the report to the configured recipient.
	SendReconciliationReport(ctx context.Context, report ReconciliationReport) error
}
