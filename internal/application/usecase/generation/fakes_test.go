package generation

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

type fakeTemplateRepo struct {
	templates []*entity.ExpenseTemplate
}

func (r *fakeTemplateRepo) Create(_ context.Context, t *entity.ExpenseTemplate) error {
	t.ID = int64(len(r.templates) + 1)
	r.templates = append(r.templates, t)
	return nil
}

func (r *fakeTemplateRepo) FindByID(_ context.Context, id int64) (*entity.ExpenseTemplate, error) {
	for _, t := range r.templates {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, domainerror.ErrTemplateNotFound
}

func (r *fakeTemplateRepo) FindAll(_ context.Context) ([]*entity.ExpenseTemplate, error) {
	return r.templates, nil
}

func (r *fakeTemplateRepo) Update(_ context.Context, _ *entity.ExpenseTemplate) error { return nil }

func (r *fakeTemplateRepo) Delete(_ context.Context, _ int64) error { return nil }

type fakeExpenseStore struct {
	expenses  map[int64]*entity.Expense
	logs      []*entity.GenerationLogEntry
	nextID    int64
	failFor   map[int64]bool // template IDs whose insert fails
	updateErr error
}

func newFakeExpenseStore() *fakeExpenseStore {
	return &fakeExpenseStore{expenses: make(map[int64]*entity.Expense), failFor: make(map[int64]bool)}
}

func (s *fakeExpenseStore) Create(_ context.Context, e *entity.Expense) error {
	s.nextID++
	e.ID = s.nextID
	s.expenses[e.ID] = e
	return nil
}

func (s *fakeExpenseStore) FindByID(_ context.Context, id int64) (*entity.Expense, error) {
	if e, ok := s.expenses[id]; ok {
		return e, nil
	}
	return nil, domainerror.ErrExpenseNotFound
}

func (s *fakeExpenseStore) FindAll(_ context.Context, _ adapter.ExpenseFilter) ([]*entity.Expense, error) {
	return s.sorted(), nil
}

func (s *fakeExpenseStore) FindUnreconciled(_ context.Context) ([]*entity.Expense, error) {
	var out []*entity.Expense
	for _, e := range s.sorted() {
		if e.Status != entity.StatusMatched {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *fakeExpenseStore) FindByTemplateAndMonth(_ context.Context, templateID int64, month string) (*entity.Expense, error) {
	for _, e := range s.expenses {
		if e.TemplateID != nil && *e.TemplateID == templateID && e.GenerationMonth != nil && *e.GenerationMonth == month {
			return e, nil
		}
	}
	return nil, nil
}

func (s *fakeExpenseStore) Update(_ context.Context, e *entity.Expense) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.expenses[e.ID] = e
	return nil
}

func (s *fakeExpenseStore) CountByStatus(_ context.Context) (valueobject.StatusCounts, error) {
	return valueobject.StatusCounts{}, nil
}

func (s *fakeExpenseStore) InsertGenerated(ctx context.Context, e *entity.Expense, entry *entity.GenerationLogEntry) error {
	if s.failFor[*e.TemplateID] {
		return domainerror.NewPersistenceError(domainerror.ErrCodePersistenceFailed, "insert failed", errors.New("disk full"))
	}
	for _, l := range s.logs {
		if l.TemplateID == entry.TemplateID && l.GenerationMonth == entry.GenerationMonth {
			return domainerror.NewPersistenceError(domainerror.ErrCodePersistenceFailed, "duplicate generation", domainerror.ErrPersistenceFailed)
		}
	}
	_ = s.Create(ctx, e)
	entry.ID = int64(len(s.logs) + 1)
	entry.ExpenseID = e.ID
	s.logs = append(s.logs, entry)
	return nil
}

func (s *fakeExpenseStore) FindByMonth(_ context.Context, month string) ([]*entity.GenerationLogEntry, error) {
	var out []*entity.GenerationLogEntry
	for _, l := range s.logs {
		if l.GenerationMonth == month {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *fakeExpenseStore) sorted() []*entity.Expense {
	out := make([]*entity.Expense, 0, len(s.expenses))
	for _, e := range s.expenses {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type fakeRecorder struct {
	runs []*entity.BatchRun
}

func (r *fakeRecorder) Record(_ context.Context, run *entity.BatchRun) error {
	r.runs = append(r.runs, run)
	return nil
}

func (r *fakeRecorder) Last(_ context.Context, _ entity.BatchOperation) (*entity.BatchRun, error) {
	if len(r.runs) == 0 {
		return nil, nil
	}
	return r.runs[len(r.runs)-1], nil
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }
