// Package reconciliation contains expense and order reconciliation use cases.
package reconciliation

import (
	"context"
	"log/slog"

	"github.com/radio-billing/backend/internal/application/adapter"
	"github.com/radio-billing/backend/internal/application/usecase/batch"
	"github.com/radio-billing/backend/internal/domain/entity"
)

// finishRun sends the report and records the batch run when the services are configured.
// A report failure is added to the run's error list.
func finishRun(
	ctx context.Context,
	run *entity.BatchRun,
	output *MatchOutput,
	kind entity.MatchKind,
	recorder adapter.BatchRunRecorder,
	reporter adapter.ReportService,
	clock adapter.Clock,
) {
	run.Counters["matched"] = output.MatchedCount
	run.Counters["unmatched"] = output.UnmatchedCount
	run.Errors = batch.ErrorMessages(output.Errors)

	if reporter != nil {
		if err := sendReport(ctx, run, output, kind, reporter); err != nil {
			slog.Warn("Failed to send reconciliation report",
				"batchRunID", run.ID.String(),
				"error", err,
			)
			run.Errors = append(run.Errors, "report: "+err.Error())
		}
	}

	run.Finish(clock.Now())
	batch.Record(ctx, recorder, run)
}

func sendReport(
	ctx context.Context,
	run *entity.BatchRun,
	output *MatchOutput,
	kind entity.MatchKind,
	reporter adapter.ReportService,
) error {

	report := adapter.ReconciliationReport{
		BatchRunID:     run.ID.String(),
		Kind:           string(kind),
		MatchedCount:   output.MatchedCount,
		UnmatchedCount: output.UnmatchedCount,
		Errors:         run.Errors,
	}
	for _, u := range output.Unmatched {
		report.Unmatched = append(report.Unmatched, adapter.ReportLine{
			RecordID:  u.RecordID,
			PayeeName: u.PayeeName,
			PayeeCode: u.PayeeCode,
			Amount:    u.Amount,
			Month:     u.ExpectedMonth,
			Reason:    u.Reason,
		})
	}

	return reporter.SendReconciliationReport(ctx, report)
}
