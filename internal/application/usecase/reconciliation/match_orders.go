// Package reconciliation contains expense and order reconciliation use cases.
package reconciliation

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/radio-billing/backend/internal/application/adapter"
	"github.com/radio-billing/backend/internal/application/usecase/batch"
	"github.com/radio-billing/backend/internal/domain/calculator"
	"github.com/radio-billing/backend/internal/domain/entity"
	"github.com/radio-billing/backend/internal/domain/valueobject"
)

// MatchOrdersUseCase reconciles projected order obligations against unreconciled payments.
// Each (order, occurrence month) is a separate candidate.
type MatchOrdersUseCase struct {
	orderRepo          adapter.OrderRepository
	paymentRepo        adapter.PaymentRepository
	reconciliationRepo adapter.ReconciliationRepository
	recorder           adapter.BatchRunRecorder
	reporter           adapter.ReportService
	clock              adapter.Clock
	config             valueobject.MatchingConfig
}

// NewMatchOrdersUseCase creates a new MatchOrdersUseCase instance.
func NewMatchOrdersUseCase(
	orderRepo adapter.OrderRepository,
	paymentRepo adapter.PaymentRepository,
	reconciliationRepo adapter.ReconciliationRepository,
	recorder adapter.BatchRunRecorder,
	reporter adapter.ReportService,
	clock adapter.Clock,
	config valueobject.MatchingConfig,
) *MatchOrdersUseCase {
	return &MatchOrdersUseCase{
		orderRepo:          orderRepo,
		paymentRepo:        paymentRepo,
		reconciliationRepo: reconciliationRepo,
		recorder:           recorder,
		reporter:           reporter,
		clock:              clock,
		config:             config,
	}
}

// Execute runs one matching pass over every order obligation without a pairing.
func (uc *MatchOrdersUseCase) Execute(ctx context.Context) (*MatchOutput, error) {
	orders, err := uc.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	existing, err := uc.reconciliationRepo.FindOrderMatches(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := uc.paymentRepo.FindUnreconciled(ctx)
	if err != nil {
		return nil, err
	}

	run := entity.NewBatchRun(entity.BatchOperationMatchOrders, uc.clock.Now())
	logger := slog.Default().With("batchRunID", run.ID.String(), "kind", entity.MatchKindOrder)

	matchedMonths := make(map[int64]map[string]bool)
	for _, m := range existing {
		if m.OrderID == nil || m.OccurrenceMonth == nil {
			continue
		}
		markMonth(matchedMonths, *m.OrderID, *m.OccurrenceMonth)
	}

	var candidates []candidate
	var configErrors []valueobject.ItemError
	monthCounts := make(map[int64]int, len(orders))
	for _, order := range orders {
		orderCandidates, total, err := uc.orderCandidates(order)
		if err != nil {
			logger.Warn("Skipping order with invalid configuration", "orderID", order.ID, "error", err)
			configErrors = append(configErrors, batch.NewItemError(order.ID, "", err))
			continue
		}
		monthCounts[order.ID] = total
		for _, c := range orderCandidates {
			if matchedMonths[c.RecordID][c.Month] {
				continue
			}
			candidates = append(candidates, c)
		}
	}

	output := matchFirstWins(candidates, payments, uc.config, func(c candidate, p *entity.Payment) error {
		return uc.reconciliationRepo.CommitOrderMatch(ctx, entity.NewOrderMatch(c.RecordID, c.Month, p.ID, run.ID))
	})
	output.BatchRunID = run.ID.String()
	output.Errors = append(configErrors, output.Errors...)

	touched := make(map[int64]bool)
	for _, pair := range output.Matched {
		markMonth(matchedMonths, pair.RecordID, pair.Month)
		touched[pair.RecordID] = true
	}
	for _, order := range orders {
		if !touched[order.ID] {
			continue
		}
		status := entity.StatusProcessing
		if len(matchedMonths[order.ID]) >= monthCounts[order.ID] {
			status = entity.StatusMatched
		}
		if order.Status == status {
			continue
		}
		if err := uc.orderRepo.UpdateStatus(ctx, order.ID, status); err != nil {
			output.Errors = append(output.Errors, batch.NewItemError(order.ID, "", err))
		}
	}

	logger.Info("Order reconciliation finished",
		"matched", output.MatchedCount,
		"unmatched", output.UnmatchedCount,
		"errors", len(output.Errors),
	)

	finishRun(ctx, run, output, entity.MatchKindOrder, uc.recorder, uc.reporter, uc.clock)
	return output, nil
}

// orderCandidates expands an order into one candidate per occurrence month. Count-based
// amounts use the broadcast count of the expected payment month.
func (uc *MatchOrdersUseCase) orderCandidates(order *entity.OrderContract) ([]candidate, int, error) {
	months, err := order.OccurrenceMonths()
	if err != nil {
		return nil, 0, err
	}

	code := uc.config.NormalizeCode(order.Payee.Code)
	candidates := make([]candidate, 0, len(months))
	for _, month := range months {
		expected, err := calculator.ResolveExpectedPaymentMonth(month.Year, month.Month, order.Timing)
		if err != nil {
			return nil, 0, err
		}

		var amount decimal.Decimal
		if order.IsSpot() {
			amount = order.SpotAmount
		} else {
			amount, _, err = calculator.ResolveAmount(order.Pricing(), expected)
			if err != nil {
				return nil, 0, err
			}
		}

		candidates = append(candidates, candidate{
			RecordID:      order.ID,
			Month:         month.String(),
			PayeeName:     order.Payee.Name,
			PayeeCode:     code,
			Amount:        amount,
			ExpectedMonth: expected,
		})
	}
	return candidates, len(months), nil
}

func markMonth(months map[int64]map[string]bool, orderID int64, month string) {
	if months[orderID] == nil {
		months[orderID] = make(map[string]bool)
	}
	months[orderID][month] = true
}
