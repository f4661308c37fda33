package schedule

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/radio-billing/backend/internal/application/adapter"
	"github.com/radio-billing/backend/internal/domain/entity"
	domainerror "github.com/radio-billing/backend/internal/domain/error"
	"github.com/radio-billing/backend/internal/domain/valueobject"
)

type fakeOrderRepo struct {
	orders []*entity.OrderContract
}

func (r *fakeOrderRepo) Create(_ context.Context, o *entity.OrderContract) error {
	o.ID = int64(len(r.orders) + 1)
	r.orders = append(r.orders, o)
	return nil
}

func (r *fakeOrderRepo) FindByID(_ context.Context, id int64) (*entity.OrderContract, error) {
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, domainerror.ErrOrderNotFound
}

func (r *fakeOrderRepo) FindAll(_ context.Context) ([]*entity.OrderContract, error) {
	return r.orders, nil
}

func (r *fakeOrderRepo) Update(_ context.Context, _ *entity.OrderContract) error { return nil }

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, _ int64, _ entity.RecordStatus) error {
	return nil
}

func (r *fakeOrderRepo) CountByStatus(_ context.Context) (valueobject.StatusCounts, error) {
	return valueobject.StatusCounts{}, nil
}

type fakePaymentRepo struct {
	payments []*entity.Payment
}

func (r *fakePaymentRepo) CreateBatch(_ context.Context, payments []*entity.Payment) error {
	r.payments = append(r.payments, payments...)
	return nil
}

func (r *fakePaymentRepo) ReplaceAll(_ context.Context, payments []*entity.Payment) error {
	r.payments = payments
	return nil
}

func (r *fakePaymentRepo) FindByID(_ context.Context, _ int64) (*entity.Payment, error) {
	return nil, domainerror.ErrPaymentNotFound
}

func (r *fakePaymentRepo) FindAll(_ context.Context, _ adapter.PaymentFilter) ([]*entity.Payment, error) {
	return r.payments, nil
}

func (r *fakePaymentRepo) FindUnreconciled(_ context.Context) ([]*entity.Payment, error) {
	return r.payments, nil
}

func (r *fakePaymentRepo) CountByStatus(_ context.Context) (valueobject.StatusCounts, error) {
	return valueobject.StatusCounts{}, nil
}

type fakeReconciliationRepo struct {
	matches []*entity.ReconciliationMatch
}

func (r *fakeReconciliationRepo) CommitExpenseMatch(_ context.Context, _ *entity.ReconciliationMatch) error {
	return nil
}

func (r *fakeReconciliationRepo) CommitOrderMatch(_ context.Context, m *entity.ReconciliationMatch) error {
	r.matches = append(r.matches, m)
	return nil
}

func (r *fakeReconciliationRepo) FindOrderMatches(_ context.Context) ([]*entity.ReconciliationMatch, error) {
	return r.matches, nil
}

func (r *fakeReconciliationRepo) FindByRecord(_ context.Context, _ entity.MatchKind, _ int64) ([]*entity.ReconciliationMatch, error) {
	return nil, nil
}

func (r *fakeReconciliationRepo) Reset(_ context.Context, _ entity.MatchKind, _ int64) (int, error) {
	return 0, nil
}

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func payment(code string, amount int64, paidOn time.Time) *entity.Payment {
	return entity.NewPayment("Transfer", valueobject.PayeeIdentity{Name: "Payee", Code: code}, decimal.NewFromInt(amount), paidOn)
}
