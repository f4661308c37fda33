package payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/radio-billing/backend/internal/application/adapter"
	"github.com/radio-billing/backend/internal/domain/entity"
	domainerror "github.com/radio-billing/backend/internal/domain/error"
	"github.com/radio-billing/backend/internal/domain/valueobject"
)

type fakePaymentRepo struct {
	payments     []*entity.Payment
	replaceCalls int
}

func (r *fakePaymentRepo) CreateBatch(_ context.Context, payments []*entity.Payment) error {
	for _, p := range payments {
		p.ID = int64(len(r.payments) + 1)
		r.payments = append(r.payments, p)
	}
	return nil
}

func (r *fakePaymentRepo) ReplaceAll(ctx context.Context, payments []*entity.Payment) error {
	r.replaceCalls++
	r.payments = nil
	return r.CreateBatch(ctx, payments)
}

func (r *fakePaymentRepo) FindByID(context.Context, int64) (*entity.Payment, error) {
	return nil, domainerror.ErrPaymentNotFound
}

func (r *fakePaymentRepo) FindAll(_ context.Context, filter adapter.PaymentFilter) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range r.payments {
		if filter.PaymentMonth != nil && p.PaymentMonth() != *filter.PaymentMonth {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePaymentRepo) FindUnreconciled(context.Context) ([]*entity.Payment, error) {
	return nil, nil
}

func (r *fakePaymentRepo) CountByStatus(context.Context) (valueobject.StatusCounts, error) {
	return valueobject.StatusCounts{}, nil
}

type fakeRecorder struct {
	runs []*entity.BatchRun
}

func (r *fakeRecorder) Record(_ context.Context, run *entity.BatchRun) error {
	r.runs = append(r.runs, run)
	return nil
}

func (r *fakeRecorder) Last(context.Context, entity.BatchOperation) (*entity.BatchRun, error) {
	return nil, nil
}

type fixedClock struct{}

func (fixedClock) Now() time.Time { return time.Date(2024, 11, 1, 9, 0, 0, 0, time.UTC) }

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"1,234,000", 1234000},
		{"¥650,000", 650000},
		{"￥ 12,000円", 12000},
		{"5000.0", 5000},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(decimal.NewFromInt(tt.want)) {
				t.Errorf("ParseAmount(%q) = %s, want %d", tt.in, got, tt.want)
			}
		})
	}

	if _, err := ParseAmount("twelve"); !errors.Is(err, domainerror.ErrInvalidAmount) {
		t.Errorf("expected invalid amount, got %v", err)
	}
}

func TestParsePaymentDate(t *testing.T) {
	want := time.Date(2024, 10, 5, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{"2024/10/05", "2024-10-05", "2024/10/5", "2024-10-05 13:20:00"} {
		t.Run(in, func(t *testing.T) {
			got, err := ParsePaymentDate(in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(want) {
				t.Errorf("got %v, want %v", got, want)
			}
		})
	}

	if _, err := ParsePaymentDate("10/05/2024"); !errors.Is(err, domainerror.ErrInvalidDate) {
		t.Errorf("expected invalid date, got %v", err)
	}
}

func TestImportPayments(t *testing.T) {
	rows := []PaymentRow{
		{Line: 2, Subject: "October fee", PayeeName: "FM Partner", PayeeCode: "42", Amount: "650,000", PaymentDate: "2024/11/30"},
		{Line: 3, PayeeName: "", Amount: "100", PaymentDate: "2024/11/30"},
		{Line: 4, PayeeName: "Studio", Amount: "abc", PaymentDate: "2024/11/30"},
		{Line: 5, PayeeName: "Studio", Amount: "1000", PaymentDate: "2024-11-15", Status: "完了"},
		{Line: 6, PayeeName: "Studio", Amount: "1000", PaymentDate: "2024-11-15", Status: "paid"},
	}

	t.Run("append keeps valid rows and reports the rest", func(t *testing.T) {
		repo := &fakePaymentRepo{}
		recorder := &fakeRecorder{}
		out, err := NewImportPaymentsUseCase(repo, recorder, fixedClock{}).Execute(context.Background(), ImportPaymentsInput{
			Mode: ImportModeAppend,
			Rows: rows,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.ImportedCount != 2 || out.RejectedCount != 3 {
			t.Errorf("expected 2 imported and 3 rejected, got %d/%d", out.ImportedCount, out.RejectedCount)
		}
		if repo.payments[0].Status != entity.StatusUnprocessed || repo.payments[1].Status != entity.StatusCompleted {
			t.Errorf("unexpected statuses %s/%s", repo.payments[0].Status, repo.payments[1].Status)
		}
		if out.Errors[0].Line != 3 {
			t.Errorf("expected first rejected line 3, got %d", out.Errors[0].Line)
		}
		if len(recorder.runs) != 1 || recorder.runs[0].Counters["imported"] != 2 {
			t.Errorf("expected import run to be recorded, got %v", recorder.runs)
		}
	})

	t.Run("overwrite replaces existing payments", func(t *testing.T) {
		repo := &fakePaymentRepo{}
		uc := NewImportPaymentsUseCase(repo, nil, fixedClock{})
		ctx := context.Background()
		if _, err := uc.Execute(ctx, ImportPaymentsInput{Mode: ImportModeAppend, Rows: rows[:1]}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.Execute(ctx, ImportPaymentsInput{Mode: ImportModeOverwrite, Rows: rows[3:4]}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.replaceCalls != 1 || len(repo.payments) != 1 || repo.payments[0].Payee.Name != "Studio" {
			t.Errorf("expected only the overwrite rows to remain, got %d payments", len(repo.payments))
		}
	})

	t.Run("invalid mode fails immediately", func(t *testing.T) {
		_, err := NewImportPaymentsUseCase(&fakePaymentRepo{}, nil, fixedClock{}).Execute(context.Background(), ImportPaymentsInput{Mode: "merge"})
		var ledgerErr *domainerror.LedgerError
		if !errors.As(err, &ledgerErr) || ledgerErr.Code != domainerror.ErrCodeInvalidImportMode {
			t.Errorf("expected invalid import mode, got %v", err)
		}
	})
}
