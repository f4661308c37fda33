package reconciliation

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/radio-billing/backend/internal/application/adapter"
	"github.com/radio-billing/backend/internal/domain/entity"
	domainerror "github.com/radio-billing/backend/internal/domain/error"
	"github.com/radio-billing/backend/internal/domain/valueobject"
)

// ledger is an in-memory record store shared by the fake repositories.
type ledger struct {
	expenses   map[int64]*entity.Expense
	payments   map[int64]*entity.Payment
	orders     map[int64]*entity.OrderContract
	matches    []*entity.ReconciliationMatch
	failCommit map[int64]bool // candidate record IDs whose commit fails
}

func newLedger() *ledger {
	return &ledger{
		expenses:   make(map[int64]*entity.Expense),
		payments:   make(map[int64]*entity.Payment),
		orders:     make(map[int64]*entity.OrderContract),
		failCommit: make(map[int64]bool),
	}
}

func sortedKeys[T any](m map[int64]T) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func countStatus(counts *valueobject.StatusCounts, status entity.RecordStatus) {
	switch status {
	case entity.StatusUnprocessed:
		counts.Unprocessed++
	case entity.StatusProcessing:
		counts.Processing++
	case entity.StatusMatched:
		counts.Matched++
	case entity.StatusCompleted:
		counts.Completed++
	}
}

type fakeExpenseRepo struct{ *ledger }

func (r fakeExpenseRepo) Create(_ context.Context, e *entity.Expense) error {
	e.ID = int64(len(r.expenses) + 1)
	r.expenses[e.ID] = e
	return nil
}

func (r fakeExpenseRepo) FindByID(_ context.Context, id int64) (*entity.Expense, error) {
	if e, ok := r.expenses[id]; ok {
		return e, nil
	}
	return nil, domainerror.ErrExpenseNotFound
}

func (r fakeExpenseRepo) FindAll(_ context.Context, _ adapter.ExpenseFilter) ([]*entity.Expense, error) {
	var out []*entity.Expense
	for _, id := range sortedKeys(r.expenses) {
		out = append(out, r.expenses[id])
	}
	return out, nil
}

func (r fakeExpenseRepo) FindUnreconciled(_ context.Context) ([]*entity.Expense, error) {
	var out []*entity.Expense
	for _, id := range sortedKeys(r.expenses) {
		if r.expenses[id].Status != entity.StatusMatched {
			out = append(out, r.expenses[id])
		}
	}
	return out, nil
}

func (r fakeExpenseRepo) FindByTemplateAndMonth(_ context.Context, _ int64, _ string) (*entity.Expense, error) {
	return nil, nil
}

func (r fakeExpenseRepo) Update(_ context.Context, e *entity.Expense) error {
	r.expenses[e.ID] = e
	return nil
}

func (r fakeExpenseRepo) CountByStatus(_ context.Context) (valueobject.StatusCounts, error) {
	var counts valueobject.StatusCounts
	for _, e := range r.expenses {
		countStatus(&counts, e.Status)
	}
	return counts, nil
}

type fakePaymentRepo struct{ *ledger }

func (r fakePaymentRepo) CreateBatch(_ context.Context, payments []*entity.Payment) error {
	for _, p := range payments {
		p.ID = int64(len(r.payments) + 1)
		r.payments[p.ID] = p
	}
	return nil
}

func (r fakePaymentRepo) ReplaceAll(ctx context.Context, payments []*entity.Payment) error {
	for k := range r.payments {
		delete(r.payments, k)
	}
	return r.CreateBatch(ctx, payments)
}

func (r fakePaymentRepo) FindByID(_ context.Context, id int64) (*entity.Payment, error) {
	if p, ok := r.payments[id]; ok {
		return p, nil
	}
	return nil, domainerror.ErrPaymentNotFound
}

func (r fakePaymentRepo) FindAll(_ context.Context, _ adapter.PaymentFilter) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, id := range sortedKeys(r.payments) {
		out = append(out, r.payments[id])
	}
	return out, nil
}

func (r fakePaymentRepo) FindUnreconciled(_ context.Context) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, id := range sortedKeys(r.payments) {
		if r.payments[id].Status != entity.StatusMatched {
			out = append(out, r.payments[id])
		}
	}
	return out, nil
}

func (r fakePaymentRepo) CountByStatus(_ context.Context) (valueobject.StatusCounts, error) {
	var counts valueobject.StatusCounts
	for _, p := range r.payments {
		countStatus(&counts, p.Status)
	}
	return counts, nil
}

type fakeOrderRepo struct{ *ledger }

func (r fakeOrderRepo) Create(_ context.Context, o *entity.OrderContract) error {
	o.ID = int64(len(r.orders) + 1)
	r.orders[o.ID] = o
	return nil
}

func (r fakeOrderRepo) FindByID(_ context.Context, id int64) (*entity.OrderContract, error) {
	if o, ok := r.orders[id]; ok {
		return o, nil
	}
	return nil, domainerror.ErrOrderNotFound
}

func (r fakeOrderRepo) FindAll(_ context.Context) ([]*entity.OrderContract, error) {
	var out []*entity.OrderContract
	for _, id := range sortedKeys(r.orders) {
		out = append(out, r.orders[id])
	}
	return out, nil
}

func (r fakeOrderRepo) Update(_ context.Context, o *entity.OrderContract) error {
	r.orders[o.ID] = o
	return nil
}

func (r fakeOrderRepo) UpdateStatus(_ context.Context, id int64, status entity.RecordStatus) error {
	r.orders[id].Status = status
	return nil
}

func (r fakeOrderRepo) CountByStatus(_ context.Context) (valueobject.StatusCounts, error) {
	var counts valueobject.StatusCounts
	for _, o := range r.orders {
		countStatus(&counts, o.Status)
	}
	return counts, nil
}

type fakeReconciliationRepo struct{ *ledger }

func (r fakeReconciliationRepo) CommitExpenseMatch(_ context.Context, m *entity.ReconciliationMatch) error {
	if r.failCommit[*m.ExpenseID] {
		return domainerror.NewPersistenceError(domainerror.ErrCodePersistenceFailed, "commit failed", errors.New("database is locked"))
	}
	expense := r.expenses[*m.ExpenseID]
	payment := r.payments[m.PaymentID]
	if expense.Status == entity.StatusMatched || payment.Status == entity.StatusMatched {
		return domainerror.NewPersistenceError(domainerror.ErrCodeAlreadyMatched, "already matched", domainerror.ErrAlreadyMatched)
	}
	expense.Status = entity.StatusMatched
	payment.Status = entity.StatusMatched
	r.ledger.matches = append(r.ledger.matches, m)
	return nil
}

func (r fakeReconciliationRepo) CommitOrderMatch(_ context.Context, m *entity.ReconciliationMatch) error {
	if r.failCommit[*m.OrderID] {
		return domainerror.NewPersistenceError(domainerror.ErrCodePersistenceFailed, "commit failed", errors.New("database is locked"))
	}
	payment := r.payments[m.PaymentID]
	if payment.Status == entity.StatusMatched {
		return domainerror.NewPersistenceError(domainerror.ErrCodeAlreadyMatched, "already matched", domainerror.ErrAlreadyMatched)
	}
	payment.Status = entity.StatusMatched
	r.ledger.matches = append(r.ledger.matches, m)
	return nil
}

func (r fakeReconciliationRepo) FindOrderMatches(_ context.Context) ([]*entity.ReconciliationMatch, error) {
	var out []*entity.ReconciliationMatch
	for _, m := range r.ledger.matches {
		if m.Kind == entity.MatchKindOrder {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r fakeReconciliationRepo) FindByRecord(_ context.Context, kind entity.MatchKind, id int64) ([]*entity.ReconciliationMatch, error) {
	var out []*entity.ReconciliationMatch
	for _, m := range r.ledger.matches {
		if matchesRecord(m, kind, id) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r fakeReconciliationRepo) Reset(_ context.Context, kind entity.MatchKind, id int64) (int, error) {
	var kept []*entity.ReconciliationMatch
	removed := 0
	for _, m := range r.ledger.matches {
		if !matchesRecord(m, kind, id) {
			kept = append(kept, m)
			continue
		}
		removed++
		r.payments[m.PaymentID].Status = entity.StatusUnprocessed
	}
	r.ledger.matches = kept
	if kind == entity.MatchKindExpense {
		r.expenses[id].Status = entity.StatusUnprocessed
	} else {
		r.orders[id].Status = entity.StatusUnprocessed
	}
	return removed, nil
}

func matchesRecord(m *entity.ReconciliationMatch, kind entity.MatchKind, id int64) bool {
	if m.Kind != kind {
		return false
	}
	if kind == entity.MatchKindExpense {
		return m.ExpenseID != nil && *m.ExpenseID == id
	}
	return m.OrderID != nil && *m.OrderID == id
}

type fakeReporter struct {
	reports []adapter.ReconciliationReport
	err     error
}

func (r *fakeReporter) SendReconciliationReport(_ context.Context, report adapter.ReconciliationReport) error {
	if r.err != nil {
		return r.err
	}
	r.reports = append(r.reports, report)
	return nil
}

type fakeRecorder struct {
	runs []*entity.BatchRun
}

func (r *fakeRecorder) Record(_ context.Context, run *entity.BatchRun) error {
	r.runs = append(r.runs, run)
	return nil
}

func (r *fakeRecorder) Last(_ context.Context, _ entity.BatchOperation) (*entity.BatchRun, error) {
	return nil, nil
}

type fixedClock struct{}

func (fixedClock) Now() time.Time { return time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC) }
