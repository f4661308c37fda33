package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/radio-billing/backend/internal/application/usecase/generation"
	"github.com/radio-billing/backend/internal/application/usecase/reconciliation"
	"github.com/radio-billing/backend/internal/domain/valueobject"
)

func TestSetupLogging(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  string
		wantErr bool
	}{
		{name: "console info", level: "info", format: "console"},
		{name: "json debug", level: "debug", format: "json"},
		{name: "unknown level", level: "verbose", format: "console", wantErr: true},
		{name: "unknown format", level: "info", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := setupLogging(tt.level, tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("setupLogging() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPrintGeneration(t *testing.T) {
	var buf bytes.Buffer
	printGeneration(&buf, &generation.GenerationOutput{
		BatchRunID:     uuid.New(),
		TargetMonth:    "2024-11",
		GeneratedCount: 1,
		SkippedCount:   1,
		Generated: []generation.GeneratedItem{{
			ExpenseID:   10,
			TemplateID:  3,
			PayeeName:   "Radio Co",
			PayeeCode:   "0042",
			Amount:      decimal.NewFromInt(100000),
			PaymentDate: time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC),
		}},
		Skipped: []generation.SkippedItem{{TemplateID: 4, Reason: "already generated"}},
		Errors: []valueobject.ItemError{{
			Kind:     valueobject.ItemErrorCalendar,
			RecordID: 5,
			Message:  "invalid broadcast weekday",
		}},
	})

	out := buf.String()
	for _, want := range []string{"2024-11: 1 generated, 0 updated, 1 skipped", "2024-11-30", "100000", "skipped template #4", "invalid broadcast weekday"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestPrintMatch(t *testing.T) {
	var buf bytes.Buffer
	printMatch(&buf, &reconciliation.MatchOutput{
		BatchRunID:     "run-1",
		MatchedCount:   1,
		UnmatchedCount: 1,
		Matched: []reconciliation.MatchedPair{{
			RecordID: 1, PaymentID: 7, PayeeCode: "0042", Amount: decimal.NewFromInt(5000), ExpectedMonth: "2024-11",
		}},
		Unmatched: []reconciliation.UnmatchedItem{{
			RecordID: 2, PayeeName: "Studio", PayeeCode: "0009", Amount: decimal.NewFromInt(800), ExpectedMonth: "2024-12", Reason: "no payment found",
		}},
	})

	out := buf.String()
	for _, want := range []string{"Run run-1: 1 matched, 1 unmatched", "0042", "Studio", "no payment found"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestGenerationHelp(t *testing.T) {
	generate := generateCmd()
	if strings.Contains(generate.Long, "skipped") {
		t.Errorf("generate updates existing expenses, help says otherwise: %q", generate.Long)
	}
	if !strings.Contains(generate.Long, "updated in place") {
		t.Errorf("generate help should mention in-place updates: %q", generate.Long)
	}

	catchUp := catchUpCmd()
	if !strings.Contains(catchUp.Short, "current-month") {
		t.Errorf("catch-up covers the current month only: %q", catchUp.Short)
	}
	if strings.Contains(catchUp.Short+catchUp.Long, "every month") {
		t.Errorf("catch-up help claims to cover missed months: %q", catchUp.Short)
	}
}
