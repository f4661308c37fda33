// Package generation contains recurring expense generation use cases.
package generation

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/radio-billing/backend/internal/application/adapter"
	"github.com/radio-billing/backend/internal/application/usecase/batch"
	"github.com/radio-billing/backend/internal/domain/calculator"
	"github.com/radio-billing/backend/internal/domain/entity"
	"github.com/radio-billing/backend/internal/domain/valueobject"
)

// Skip reasons reported for templates outside their validity period.
const (
	SkipReasonNotStarted = "not yet started"
	SkipReasonEnded      = "already ended"
	SkipReasonExisting   = "instance already exists"
)

// GeneratedItem describes one expense created or refreshed by a run.
type GeneratedItem struct {
	ExpenseID       int64
	TemplateID      int64
	PayeeName       string
	PayeeCode       string
	Title           string
	Amount          decimal.Decimal
	PaymentDate     time.Time
	OccurrenceMonth string
	Breakdown       calculator.Breakdown
}

// SkippedItem describes a template that produced nothing this run.
type SkippedItem struct {
	TemplateID int64
	Reason     string
}

// GenerationOutput is the summary returned by both generation modes.
type GenerationOutput struct {
	BatchRunID     uuid.UUID
	TargetMonth    string
	GeneratedCount int
	UpdatedCount   int
	SkippedCount   int
	Generated      []GeneratedItem
	Updated        []GeneratedItem
	Skipped        []SkippedItem
	Errors         []valueobject.ItemError
}

type outcome int

const (
	outcomeGenerated outcome = iota
	outcomeUpdated
	outcomeSkipped
	outcomeFailed
)

// generator runs the per-template state machine shared by the generation use cases.
type generator struct {
	templateRepo adapter.ExpenseTemplateRepository
	expenseRepo  adapter.ExpenseRepository
	logRepo      adapter.GenerationLogRepository
	recorder     adapter.BatchRunRecorder
	clock        adapter.Clock
}

// run evaluates every template for the target payment month. With onlyMissing set,
// templates that already have an instance for the month are left untouched.
func (g *generator) run(ctx context.Context, operation entity.BatchOperation, target valueobject.YearMonth, onlyMissing bool) (*GenerationOutput, error) {
	templates, err := g.templateRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	run := entity.NewBatchRun(operation, g.clock.Now())
	output := &GenerationOutput{
		BatchRunID:  run.ID,
		TargetMonth: target.String(),
	}
	logger := slog.Default().With("batchRunID", run.ID.String(), "targetMonth", target.String())

	for _, template := range templates {
		item, result, itemErr := g.generateOne(ctx, template, target, onlyMissing)
		switch result {
		case outcomeGenerated:
			output.GeneratedCount++
			output.Generated = append(output.Generated, item)
		case outcomeUpdated:
			output.UpdatedCount++
			output.Updated = append(output.Updated, item)
		case outcomeSkipped:
			output.SkippedCount++
			output.Skipped = append(output.Skipped, SkippedItem{TemplateID: template.ID, Reason: itemErr.Message})
		case outcomeFailed:
			logger.Warn("Skipping template after generation failure",
				"templateID", template.ID,
				"kind", itemErr.Kind,
				"error", itemErr.Message,
			)
			output.Errors = append(output.Errors, *itemErr)
		}
	}

	logger.Info("Recurring expense generation finished",
		"generated", output.GeneratedCount,
		"updated", output.UpdatedCount,
		"skipped", output.SkippedCount,
		"errors", len(output.Errors),
	)

	run.Counters["generated"] = output.GeneratedCount
	run.Counters["updated"] = output.UpdatedCount
	run.Counters["skipped"] = output.SkippedCount
	run.Errors = batch.ErrorMessages(output.Errors)
	run.Finish(g.clock.Now())
	batch.Record(ctx, g.recorder, run)

	return output, nil
}

func (g *generator) generateOne(
	ctx context.Context,
	template *entity.ExpenseTemplate,
	target valueobject.YearMonth,
	onlyMissing bool,
) (GeneratedItem, outcome, *valueobject.ItemError) {
	month := target.String()

	occurrence, err := calculator.ResolveOccurrenceMonth(target.Year, target.Month, template.Timing)
	if err != nil {
		return GeneratedItem{}, outcomeFailed, itemError(template.ID, month, err)
	}

	if template.NotStartedBy(occurrence) {
		return GeneratedItem{}, outcomeSkipped, &valueobject.ItemError{RecordID: template.ID, Month: month, Message: SkipReasonNotStarted}
	}
	if template.EndedBefore(occurrence) {
		return GeneratedItem{}, outcomeSkipped, &valueobject.ItemError{RecordID: template.ID, Month: month, Message: SkipReasonEnded}
	}

	existing, err := g.expenseRepo.FindByTemplateAndMonth(ctx, template.ID, month)
	if err != nil {
		return GeneratedItem{}, outcomeFailed, itemError(template.ID, month, err)
	}
	if existing != nil && onlyMissing {
		return GeneratedItem{}, outcomeSkipped, &valueobject.ItemError{RecordID: template.ID, Month: month, Message: SkipReasonExisting}
	}

	amount, breakdown, err := calculator.ResolveAmount(template.Pricing(), occurrence)
	if err != nil {
		return GeneratedItem{}, outcomeFailed, itemError(template.ID, month, err)
	}

	if existing != nil {
		existing.ApplyGeneration(template, target, amount)
		if err := g.expenseRepo.Update(ctx, existing); err != nil {
			return GeneratedItem{}, outcomeFailed, itemError(template.ID, month, err)
		}
		return newGeneratedItem(existing, template, occurrence, breakdown), outcomeUpdated, nil
	}

	expense := entity.NewGeneratedExpense(template, target, amount)
	entry := &entity.GenerationLogEntry{
		TemplateID:      template.ID,
		GenerationMonth: month,
		CreatedAt:       g.clock.Now(),
	}
	if err := g.logRepo.InsertGenerated(ctx, expense, entry); err != nil {
		return GeneratedItem{}, outcomeFailed, itemError(template.ID, month, err)
	}
	return newGeneratedItem(expense, template, occurrence, breakdown), outcomeGenerated, nil
}

func newGeneratedItem(expense *entity.Expense, template *entity.ExpenseTemplate, occurrence valueobject.YearMonth, breakdown calculator.Breakdown) GeneratedItem {
	return GeneratedItem{
		ExpenseID:       expense.ID,
		TemplateID:      template.ID,
		PayeeName:       expense.Payee.Name,
		PayeeCode:       expense.Payee.Code,
		Title:           expense.Title,
		Amount:          expense.Amount,
		PaymentDate:     expense.PaymentDate,
		OccurrenceMonth: occurrence.String(),
		Breakdown:       breakdown,
	}
}

func itemError(templateID int64, month string, err error) *valueobject.ItemError {
	e := batch.NewItemError(templateID, month, err)
	return &e
}
