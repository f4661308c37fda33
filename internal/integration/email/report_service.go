// Package email provides email sending functionality.
package email

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/radio-billing/backend/internal/application/adapter"
	domainerror "github.com/radio-billing/backend/internal/domain/error"
	"github.com/radio-billing/backend/internal/integration/email/templates"
)

const reportTemplate = "reconciliation_report"

// ReportService renders reconciliation reports and sends them to a fixed recipient.
// After the provider rejects a report it stops sending until the process restarts.
type ReportService struct {
	sender    adapter.EmailSender
	renderer  *templates.Renderer
	recipient string
	disabled  atomic.Bool
}

// NewReportService creates a new report service.
func NewReportService(sender adapter.EmailSender, renderer *templates.Renderer, recipient string) *ReportService {
	return &ReportService{
		sender:    sender,
		renderer:  renderer,
		recipient: recipient,
	}
}

// SendReconciliationReport renders and sends the report.
func (s *ReportService) SendReconciliationReport(ctx context.Context, report adapter.ReconciliationReport) error {
	if s.recipient == "" {
		return domainerror.NewEmailError(
			domainerror.ErrCodeMissingRecipient,
			"cannot send reconciliation report",
			domainerror.ErrMissingRecipient,
		)
	}
	if s.disabled.Load() {
		return domainerror.NewEmailError(
			domainerror.ErrCodeReportsDisabled,
			"reconciliation report not sent",
			domainerror.ErrReportsDisabled,
		)
	}

	data := templates.ReconciliationReportData{
		BatchRunID:     report.BatchRunID,
		Kind:           report.Kind,
		MatchedCount:   report.MatchedCount,
		UnmatchedCount: report.UnmatchedCount,
		Errors:         report.Errors,
	}
	for _, line := range report.Unmatched {
		data.Unmatched = append(data.Unmatched, templates.ReportLineData{
			RecordID:  line.RecordID,
			PayeeName: line.PayeeName,
			PayeeCode: line.PayeeCode,
			Amount:    line.Amount.StringFixed(0),
			Month:     line.Month,
			Reason:    line.Reason,
		})
	}

	html, text, err := s.renderer.Render(reportTemplate, data)
	if err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeTemplateRenderFailed,
			"failed to render reconciliation report",
			err,
		)
	}

	subject := fmt.Sprintf("[Reconciliation] %s: %d matched, %d unmatched",
		report.Kind, report.MatchedCount, report.UnmatchedCount)

	result, err := s.sender.Send(ctx, adapter.SendEmailInput{
		To:      s.recipient,
		Subject: subject,
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		var emailErr *domainerror.EmailError
		if errors.As(err, &emailErr) && emailErr.Code == domainerror.ErrCodePermanentEmailFailure {
			s.disabled.Store(true)
			slog.Error("Mail provider rejected the reconciliation report, reports disabled",
				"batchRunID", report.BatchRunID,
				"recipient", s.recipient,
				"error", err,
			)
		}
		return err
	}

	slog.Info("Reconciliation report sent",
		"batchRunID", report.BatchRunID,
		"resendID", result.ResendID,
	)
	return nil
}

// Disabled reports whether a rejection has switched reports off.
func (s *ReportService) Disabled() bool {
	return s.disabled.Load()
}

// Ensure ReportService implements adapter.ReportService.
var _ adapter.ReportService = (*ReportService)(nil)
