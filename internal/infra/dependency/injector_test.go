package dependency

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/radio-billing/backend/config"
	"github.com/radio-billing/backend/internal/application/adapter"
	"github.com/radio-billing/backend/internal/integration/persistence/model"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type recordingSender struct {
	sent []adapter.SendEmailInput
}

func (s *recordingSender) Send(_ context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	s.sent = append(s.sent, input)
	return &adapter.SendEmailResult{ResendID: fmt.Sprintf("email-%d", len(s.sent))}, nil
}

type apiHarness struct {
	t      *testing.T
	engine *gin.Engine
	sender *recordingSender
}

func newAPIHarness(t *testing.T, configure ...func(*config.Config)) *apiHarness {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	if err := db.AutoMigrate(model.AllModels()...); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	cfg := &config.Config{
		Server: config.ServerConfig{Environment: "test"},
		Billing: config.BillingConfig{
			PayeeCodeWidth:            4,
			PlaceholderBroadcastCount: 4,
			Timezone:                  "UTC",
		},
		Email: config.EmailConfig{ReportRecipient: "accounting@example.com"},
	}
	for _, fn := range configure {
		fn(cfg)
	}

	sender := &recordingSender{}
	injector := NewInjector(cfg, db, Options{
		EmailSender: sender,
		Clock:       fixedClock{now: time.Date(2024, 11, 15, 9, 0, 0, 0, time.UTC)},
	})

	return &apiHarness{
		t:      t,
		engine: injector.Router.Setup(cfg.Server.Environment),
		sender: sender,
	}
}

func (h *apiHarness) do(method, path string, body interface{}) (int, map[string]interface{}) {
	h.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			h.t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.engine.ServeHTTP(rec, req)

	var decoded map[string]interface{}
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
			h.t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
		}
	}
	return rec.Code, decoded
}

func TestAPI_GenerateImportMatchAndReset(t *testing.T) {
	h := newAPIHarness(t)

	status, body := h.do(http.MethodPost, "/api/v1/templates", map[string]interface{}{
		"payee_name":  "Radio Co",
		"payee_code":  "42",
		"title":       "Monthly program fee",
		"base_amount": 100000,
	})
	if status != http.StatusCreated {
		t.Fatalf("create template: expected 201, got %d: %v", status, body)
	}

	status, body = h.do(http.MethodPost, "/api/v1/generation/run", map[string]interface{}{"year": 2024, "month": 11})
	if status != http.StatusOK {
		t.Fatalf("generate: expected 200, got %d: %v", status, body)
	}
	if body["generated_count"] != float64(1) {
		t.Fatalf("expected 1 generated expense, got %v", body["generated_count"])
	}
	generated := body["generated"].([]interface{})[0].(map[string]interface{})
	if generated["payment_date"] != "2024-11-30" {
		t.Errorf("expected payment date 2024-11-30, got %v", generated["payment_date"])
	}
	expenseID := int64(generated["expense_id"].(float64))

	status, body = h.do(http.MethodPost, "/api/v1/payments/import", map[string]interface{}{
		"mode": "overwrite",
		"rows": []map[string]string{
			{"payee_name": "Radio Co", "payee_code": "0042", "amount": "¥100,000", "payment_date": "2024/11/30"},
			{"payee_name": "", "amount": "1", "payment_date": "2024/11/30"},
		},
	})
	if status != http.StatusOK {
		t.Fatalf("import: expected 200, got %d: %v", status, body)
	}
	if body["imported_count"] != float64(1) || body["rejected_count"] != float64(1) {
		t.Fatalf("expected 1 imported and 1 rejected, got %v", body)
	}

	status, body = h.do(http.MethodPost, "/api/v1/reconciliation/expenses", nil)
	if status != http.StatusOK {
		t.Fatalf("match: expected 200, got %d: %v", status, body)
	}
	if body["matched_count"] != float64(1) || body["unmatched_count"] != float64(0) {
		t.Fatalf("expected one match, got %v", body)
	}
	if len(h.sender.sent) != 1 {
		t.Errorf("expected one report email, got %d", len(h.sender.sent))
	}

	status, body = h.do(http.MethodGet, "/api/v1/reconciliation/summary", nil)
	if status != http.StatusOK {
		t.Fatalf("summary: expected 200, got %d", status)
	}
	expenses := body["expenses"].(map[string]interface{})
	if expenses["matched"] != float64(1) {
		t.Errorf("expected 1 matched expense, got %v", expenses["matched"])
	}

	status, body = h.do(http.MethodPost, "/api/v1/reconciliation/reset", map[string]interface{}{
		"kind":      "expense",
		"record_id": expenseID,
	})
	if status != http.StatusOK {
		t.Fatalf("reset: expected 200, got %d: %v", status, body)
	}
	if body["pairings_removed"] != float64(1) {
		t.Errorf("expected 1 pairing removed, got %v", body["pairings_removed"])
	}

	status, _ = h.do(http.MethodPost, "/api/v1/reconciliation/reset", map[string]interface{}{
		"kind":      "expense",
		"record_id": expenseID,
	})
	if status != http.StatusConflict {
		t.Errorf("second reset: expected 409, got %d", status)
	}
}

func TestAPI_ErrorMapping(t *testing.T) {
	h := newAPIHarness(t)

	tests := []struct {
		name     string
		method   string
		path     string
		body     interface{}
		wantCode int
		wantErr  string
	}{
		{
			name:     "unknown template",
			method:   http.MethodGet,
			path:     "/api/v1/templates/999",
			wantCode: http.StatusNotFound,
			wantErr:  "TPL-010001",
		},
		{
			name:     "non numeric template id",
			method:   http.MethodGet,
			path:     "/api/v1/templates/abc",
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "invalid generation month",
			method:   http.MethodPost,
			path:     "/api/v1/generation/run",
			body:     map[string]interface{}{"year": 2024, "month": 13},
			wantCode: http.StatusBadRequest,
			wantErr:  "CAL-010002",
		},
		{
			name:   "count based template without weekdays",
			method: http.MethodPost,
			path:   "/api/v1/templates",
			body: map[string]interface{}{
				"payee_name":   "Studio",
				"base_amount":  5000,
				"pricing_mode": "count_based",
			},
			wantCode: http.StatusBadRequest,
			wantErr:  "TPL-010005",
		},
		{
			name:     "unknown order",
			method:   http.MethodPatch,
			path:     "/api/v1/orders/42/documents",
			body:     map[string]interface{}{"order_placed": true},
			wantCode: http.StatusNotFound,
			wantErr:  "LDG-010003",
		},
		{
			name:     "invalid schedule month",
			method:   http.MethodGet,
			path:     "/api/v1/schedule?month=2024-13",
			wantCode: http.StatusBadRequest,
			wantErr:  "CAL-010002",
		},
		{
			name:     "invalid status filter",
			method:   http.MethodGet,
			path:     "/api/v1/expenses?status=lost",
			wantCode: http.StatusBadRequest,
			wantErr:  "LDG-020001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := h.do(tt.method, tt.path, tt.body)
			if status != tt.wantCode {
				t.Fatalf("expected %d, got %d: %v", tt.wantCode, status, body)
			}
			if tt.wantErr != "" && body["code"] != tt.wantErr {
				t.Errorf("expected code %s, got %v", tt.wantErr, body["code"])
			}
		})
	}
}

func TestAPI_ScheduleCompleteness(t *testing.T) {
	h := newAPIHarness(t)

	status, body := h.do(http.MethodPost, "/api/v1/orders", map[string]interface{}{
		"order_type":          "spot",
		"payee_name":          "Event Hall",
		"payee_code":          "7",
		"spot_amount":         30000,
		"implementation_date": "2024-10-12",
		"payment_timing":      "end_of_next_month",
		"order_placed":        true,
	})
	if status != http.StatusCreated {
		t.Fatalf("create order: expected 201, got %d: %v", status, body)
	}
	orderID := int64(body["id"].(float64))

	status, body = h.do(http.MethodGet, "/api/v1/schedule/completeness?month=2024-10", nil)
	if status != http.StatusOK {
		t.Fatalf("completeness: expected 200, got %d", status)
	}
	items := body["items"].([]interface{})
	if len(items) != 1 {
		t.Fatalf("expected 1 obligation, got %d", len(items))
	}
	item := items[0].(map[string]interface{})
	if item["expected_payment_month"] != "2024-11" || item["completeness"] != "red" {
		t.Errorf("unexpected obligation: %v", item)
	}

	status, _ = h.do(http.MethodPatch, fmt.Sprintf("/api/v1/orders/%d/documents", orderID), map[string]interface{}{
		"documents_distributed": true,
	})
	if status != http.StatusOK {
		t.Fatalf("update documents: expected 200, got %d", status)
	}

	status, _ = h.do(http.MethodPost, "/api/v1/payments/import", map[string]interface{}{
		"mode": "append",
		"rows": []map[string]string{
			{"payee_name": "Event Hall", "payee_code": "0007", "amount": "30000", "payment_date": "2024-11-29"},
		},
	})
	if status != http.StatusOK {
		t.Fatalf("import: expected 200, got %d", status)
	}

	_, body = h.do(http.MethodGet, "/api/v1/schedule/completeness?month=2024-10", nil)
	counts := body["counts"].(map[string]interface{})
	if counts["green"] != float64(1) {
		t.Errorf("expected a green obligation, got %v", counts)
	}
}

func TestAPI_HealthWithoutRedis(t *testing.T) {
	h := newAPIHarness(t)

	status, body := h.do(http.MethodGet, "/health", nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if body["database"] != "connected" || body["redis"] != "disabled" {
		t.Errorf("unexpected health response: %v", body)
	}
}

func TestAPI_LastRunWithoutRecorder(t *testing.T) {
	h := newAPIHarness(t)

	status, body := h.do(http.MethodGet, "/api/v1/batches/last?operation=generate", nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if body["run"] != nil {
		t.Errorf("expected no run, got %v", body["run"])
	}

	status, _ = h.do(http.MethodGet, "/api/v1/batches/last", nil)
	if status != http.StatusBadRequest {
		t.Errorf("expected 400 without operation, got %d", status)
	}
}

func TestAPI_BatchThrottle(t *testing.T) {
	h := newAPIHarness(t, func(cfg *config.Config) {
		cfg.Throttle = config.ThrottleConfig{MaxTriggers: 1, Window: time.Minute}
	})

	status, _ := h.do(http.MethodPost, "/api/v1/reconciliation/expenses", nil)
	if status != http.StatusOK {
		t.Fatalf("first trigger: expected 200, got %d", status)
	}

	status, body := h.do(http.MethodPost, "/api/v1/reconciliation/orders", nil)
	if status != http.StatusTooManyRequests {
		t.Fatalf("second trigger: expected 429, got %d", status)
	}
	if body["code"] != "LDG-040001" {
		t.Errorf("expected LDG-040001, got %v", body["code"])
	}

	status, _ = h.do(http.MethodGet, "/api/v1/reconciliation/summary", nil)
	if status != http.StatusOK {
		t.Errorf("read endpoints must not be throttled, got %d", status)
	}
}

func TestAPI_ExpensePaymentDates(t *testing.T) {
	h := newAPIHarness(t)

	status, body := h.do(http.MethodPost, "/api/v1/expenses", map[string]interface{}{
		"payee_name":   "Studio",
		"amount":       800,
		"payment_date": "2024-11-15",
	})
	if status != http.StatusCreated {
		t.Fatalf("create expense: expected 201, got %d: %v", status, body)
	}
	if body["payment_date"] != "2024-11-30" {
		t.Errorf("expected payment date 2024-11-30, got %v", body["payment_date"])
	}

	path := fmt.Sprintf("/api/v1/expenses/%d", int64(body["id"].(float64)))
	status, body = h.do(http.MethodPatch, path, map[string]interface{}{"payment_date": "2025-02-03"})
	if status != http.StatusOK {
		t.Fatalf("update expense: expected 200, got %d: %v", status, body)
	}
	if body["payment_date"] != "2025-02-28" {
		t.Errorf("expected payment date 2025-02-28, got %v", body["payment_date"])
	}
}

func TestAPI_GeneratedExpenseAmountIsLocked(t *testing.T) {
	h := newAPIHarness(t)

	status, body := h.do(http.MethodPost, "/api/v1/templates", map[string]interface{}{
		"payee_name":     "FM Partner",
		"payee_code":     "42",
		"title":          "Weekday spots",
		"base_amount":    50000,
		"pricing_mode":   "count_based",
		"weekdays":       "月,水,金",
		"payment_timing": "end_of_next_month",
	})
	if status != http.StatusCreated {
		t.Fatalf("create template: expected 201, got %d: %v", status, body)
	}

	status, body = h.do(http.MethodPost, "/api/v1/generation/run", map[string]interface{}{"year": 2024, "month": 11})
	if status != http.StatusOK {
		t.Fatalf("generate: expected 200, got %d: %v", status, body)
	}
	generated := body["generated"].([]interface{})[0].(map[string]interface{})
	path := fmt.Sprintf("/api/v1/expenses/%d", int64(generated["expense_id"].(float64)))

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{"amount", map[string]interface{}{"amount": 1}},
		{"payment date", map[string]interface{}{"payment_date": "2024-12-31"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := h.do(http.MethodPatch, path, tt.body)
			if status != http.StatusConflict {
				t.Fatalf("expected 409, got %d: %v", status, body)
			}
			if body["code"] != "LDG-020007" {
				t.Errorf("unexpected error code %v", body["code"])
			}
		})
	}

	status, body = h.do(http.MethodPatch, path, map[string]interface{}{"notes": "aired as planned"})
	if status != http.StatusOK {
		t.Fatalf("update notes: expected 200, got %d: %v", status, body)
	}
	if body["amount"] != "650000" {
		t.Errorf("expected amount 650000 to be kept, got %v", body["amount"])
	}
}
