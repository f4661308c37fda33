// Package schedule contains order schedule projection use cases.
package schedule

import (
	"github.com/shopspring/decimal"

	"github.com/radio-billing/backend/internal/application/usecase/batch"
	"github.com/radio-billing/backend/internal/domain/calculator"
	"github.com/radio-billing/backend/internal/domain/entity"
	"github.com/radio-billing/backend/internal/domain/valueobject"
)

// ProjectedObligation is one expected payment derived from an order contract.
type ProjectedObligation struct {
	OrderID              int64
	PayeeName            string
	PayeeCode            string
	Title                string
	OrderType            entity.OrderType
	OccurrenceMonth      valueobject.YearMonth
	ExpectedPaymentMonth valueobject.YearMonth
	Amount               decimal.Decimal
	Breakdown            calculator.Breakdown
	OrderPlaced          bool
	DocumentsDistributed bool
}

// projector expands contracts into monthly obligations.
type projector struct {
	config valueobject.MatchingConfig
}

// project expands every order. Orders that fail configuration are skipped and reported.
// A non-nil filter keeps only obligations whose occurrence month equals it.
func (p projector) project(orders []*entity.OrderContract, filter *valueobject.YearMonth) ([]ProjectedObligation, []valueobject.ItemError) {
	var obligations []ProjectedObligation
	var errs []valueobject.ItemError

	for _, order := range orders {
		items, err := p.projectOrder(order, filter)
		if err != nil {
			errs = append(errs, batch.NewItemError(order.ID, "", err))
			continue
		}
		obligations = append(obligations, items...)
	}
	return obligations, errs
}

func (p projector) projectOrder(order *entity.OrderContract, filter *valueobject.YearMonth) ([]ProjectedObligation, error) {
	months, err := order.OccurrenceMonths()
	if err != nil {
		return nil, err
	}

	placeholder := p.config.PlaceholderBroadcastCount
	if placeholder <= 0 {
		placeholder = valueobject.DefaultPlaceholderBroadcastCount
	}

	var items []ProjectedObligation
	for _, month := range months {
		if filter != nil && month != *filter {
			continue
		}

		expected, err := calculator.ResolveExpectedPaymentMonth(month.Year, month.Month, order.Timing)
		if err != nil {
			return nil, err
		}

		var amount decimal.Decimal
		var breakdown calculator.Breakdown
		if order.IsSpot() {
			amount = order.SpotAmount
			breakdown = calculator.Breakdown{
				Mode:      valueobject.PricingModeFixedMonthly,
				Month:     month,
				UnitPrice: order.SpotAmount,
				Amount:    order.SpotAmount,
			}
		} else {
			// TODO: switch to calculator.ResolveAmount once order sheets quote per-month broadcast counts.
			amount, breakdown, err = calculator.ResolveAmountWithCount(order.Pricing(), month, placeholder)
			if err != nil {
				return nil, err
			}
		}

		items = append(items, ProjectedObligation{
			OrderID:              order.ID,
			PayeeName:            order.Payee.Name,
			PayeeCode:            p.config.NormalizeCode(order.Payee.Code),
			Title:                order.Title,
			OrderType:            order.OrderType,
			OccurrenceMonth:      month,
			ExpectedPaymentMonth: expected,
			Amount:               amount,
			Breakdown:            breakdown,
			OrderPlaced:          order.OrderPlaced,
			DocumentsDistributed: order.DocumentsDistributed,
		})
	}
	return items, nil
}
