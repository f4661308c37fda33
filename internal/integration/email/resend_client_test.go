package email

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/radio-billing/backend/internal/application/adapter"
	domainerror "github.com/radio-billing/backend/internal/domain/error"
)

func TestResendClient_Send(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		wantCode domainerror.EmailErrorCode
	}{
		{"accepted", http.StatusOK, ""},
		{"invalid recipient", http.StatusUnprocessableEntity, domainerror.ErrCodePermanentEmailFailure},
		{"bad api key", http.StatusUnauthorized, domainerror.ErrCodePermanentEmailFailure},
		{"unverified sender", http.StatusForbidden, domainerror.ErrCodePermanentEmailFailure},
		{"rate limited", http.StatusTooManyRequests, domainerror.ErrCodeTemporaryEmailFailure},
		{"server error", http.StatusInternalServerError, domainerror.ErrCodeTemporaryEmailFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got map[string]any
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost || r.URL.Path != "/emails" {
					t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
				}
				_ = json.NewDecoder(r.Body).Decode(&got)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				if tt.status == http.StatusOK {
					_, _ = w.Write([]byte(`{"id":"email-123"}`))
					return
				}
				_, _ = w.Write([]byte(`{"message":"refused"}`))
			}))
			defer server.Close()

			client := NewResendClient("re_test", "Billing", "billing@example.com", server.URL)
			result, err := client.Send(context.Background(), adapter.SendEmailInput{
				To:      "accounting@example.com",
				Subject: "[Reconciliation] expense: 1 matched, 0 unmatched",
				Text:    "body",
			})

			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if result.ResendID != "email-123" {
					t.Errorf("unexpected id %q", result.ResendID)
				}
				if got["from"] != "Billing <billing@example.com>" {
					t.Errorf("unexpected sender %v", got["from"])
				}
				return
			}

			var emailErr *domainerror.EmailError
			if !errors.As(err, &emailErr) || emailErr.Code != tt.wantCode {
				t.Errorf("expected %s, got %v", tt.wantCode, err)
			}
		})
	}
}

func TestResendClient_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := NewResendClient("re_test", "Billing", "billing@example.com", url).Send(context.Background(), adapter.SendEmailInput{To: "a@example.com"})
	var emailErr *domainerror.EmailError
	if !errors.As(err, &emailErr) || emailErr.Code != domainerror.ErrCodeTemporaryEmailFailure {
		t.Errorf("expected unavailable provider, got %v", err)
	}
}
