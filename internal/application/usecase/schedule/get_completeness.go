// Package schedule contains order schedule projection use cases.
package schedule

import (
	"context"

	"github.com/radio-billing/backend/internal/application/adapter"
	"github.com/radio-billing/backend/internal/domain/valueobject"
)

// GetCompletenessInput represents the input for the completeness report.
type GetCompletenessInput struct {
	Month *valueobject.YearMonth // Optional occurrence month filter
}

// CompletenessItem is a projected obligation with its traffic light.
type CompletenessItem struct {
	Obligation   ProjectedObligation
	HasPayment   bool
	Completeness valueobject.Completeness
}

// CompletenessCounts tallies items per traffic light.
type CompletenessCounts struct {
	Red    int
	Yellow int
	Green  int
}

// GetCompletenessOutput represents the completeness report.
type GetCompletenessOutput struct {
	Items  []CompletenessItem
	Counts CompletenessCounts
	Errors []valueobject.ItemError
}

// GetCompletenessUseCase classifies projected obligations as red, yellow or green.
type GetCompletenessUseCase struct {
	orderRepo          adapter.OrderRepository
	paymentRepo        adapter.PaymentRepository
	reconciliationRepo adapter.ReconciliationRepository
	projector          projector
}

// NewGetCompletenessUseCase creates a new GetCompletenessUseCase instance.
func NewGetCompletenessUseCase(
	orderRepo adapter.OrderRepository,
	paymentRepo adapter.PaymentRepository,
	reconciliationRepo adapter.ReconciliationRepository,
	config valueobject.MatchingConfig,
) *GetCompletenessUseCase {
	return &GetCompletenessUseCase{
		orderRepo:          orderRepo,
		paymentRepo:        paymentRepo,
		reconciliationRepo: reconciliationRepo,
		projector:          projector{config: config},
	}
}

// Execute builds the report. An obligation counts as paid when it has a pairing, or when
// any imported payment with the same payee code falls in its expected payment month.
func (uc *GetCompletenessUseCase) Execute(ctx context.Context, input GetCompletenessInput) (*GetCompletenessOutput, error) {
	orders, err := uc.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	matches, err := uc.reconciliationRepo.FindOrderMatches(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := uc.paymentRepo.FindAll(ctx, adapter.PaymentFilter{})
	if err != nil {
		return nil, err
	}

	matched := make(map[int64]map[string]bool)
	for _, m := range matches {
		if m.OrderID == nil || m.OccurrenceMonth == nil {
			continue
		}
		if matched[*m.OrderID] == nil {
			matched[*m.OrderID] = make(map[string]bool)
		}
		matched[*m.OrderID][*m.OccurrenceMonth] = true
	}

	paidMonths := make(map[string]map[valueobject.YearMonth]bool)
	for _, p := range payments {
		code := uc.projector.config.NormalizeCode(p.Payee.Code)
		if code == "" {
			continue
		}
		if paidMonths[code] == nil {
			paidMonths[code] = make(map[valueobject.YearMonth]bool)
		}
		paidMonths[code][p.PaymentMonth()] = true
	}

	obligations, errs := uc.projector.project(orders, input.Month)
	output := &GetCompletenessOutput{Errors: errs}
	for _, o := range obligations {
		hasPayment := matched[o.OrderID][o.OccurrenceMonth.String()] ||
			(o.PayeeCode != "" && paidMonths[o.PayeeCode][o.ExpectedPaymentMonth])

		light := valueobject.ClassifyCompleteness(o.OrderPlaced, o.DocumentsDistributed, hasPayment)
		switch light {
		case valueobject.CompletenessRed:
			output.Counts.Red++
		case valueobject.CompletenessYellow:
			output.Counts.Yellow++
		case valueobject.CompletenessGreen:
			output.Counts.Green++
		}

		output.Items = append(output.Items, CompletenessItem{
			Obligation:   o,
			HasPayment:   hasPayment,
			Completeness: light,
		})
	}
	return output, nil
}
