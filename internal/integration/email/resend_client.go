// Package email sends reconciliation reports through Resend.
package email

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/resend/resend-go/v2"

	"github.com/radio-billing/backend/internal/application/adapter"
	domainerror "github.com/radio-billing/backend/internal/domain/error"
)

const sendTimeout = 15 * time.Second

// ResendClient implements adapter.EmailSender using the Resend API.
type ResendClient struct {
	client *resend.Client
	from   string
}

// NewResendClient creates a Resend client. A non-empty baseURL points it at another
// Resend-compatible endpoint.
func NewResendClient(apiKey, fromName, fromEmail, baseURL string) *ResendClient {
	httpClient := &http.Client{
		Timeout:   sendTimeout,
		Transport: statusCapture{next: http.DefaultTransport},
	}
	client := resend.NewCustomClient(httpClient, apiKey)
	if baseURL != "" {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		if parsed, err := url.Parse(baseURL); err == nil {
			client.BaseURL = parsed
		}
	}

	return &ResendClient{
		client: client,
		from:   fmt.Sprintf("%s <%s>", fromName, fromEmail),
	}
}

// Send delivers one message. Failures are EmailErrors coded as a rejection when the
// provider refused the request itself and as unavailable otherwise.
func (c *ResendClient) Send(ctx context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	var status int
	ctx = context.WithValue(ctx, statusKey{}, &status)

	resp, err := c.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{input.To},
		Subject: input.Subject,
		Html:    input.HTML,
		Text:    input.Text,
	})
	if err != nil {
		if rejectedStatus(status) {
			return nil, domainerror.NewEmailError(
				domainerror.ErrCodePermanentEmailFailure,
				fmt.Sprintf("report rejected by mail provider (HTTP %d)", status),
				err,
			)
		}
		return nil, domainerror.NewEmailError(
			domainerror.ErrCodeTemporaryEmailFailure,
			"mail provider unavailable",
			err,
		)
	}

	return &adapter.SendEmailResult{ResendID: resp.Id}, nil
}

// rejectedStatus reports whether resending the same report can never succeed: the key,
// sender or recipient is wrong. Rate limits and server errors are not rejections.
func rejectedStatus(status int) bool {
	switch status {
	case http.StatusBadRequest,
		http.StatusUnauthorized,
		http.StatusForbidden,
		http.StatusUnprocessableEntity:
		return true
	default:
		return false
	}
}

type statusKey struct{}

// statusCapture copies the response status into the *int stored in the request context.
type statusCapture struct {
	next http.RoundTripper
}

func (t statusCapture) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.next.RoundTrip(req)
	if resp != nil {
		if status, ok := req.Context().Value(statusKey{}).(*int); ok {
			*status = resp.StatusCode
		}
	}
	return resp, err
}

var _ adapter.EmailSender = (*ResendClient)(nil)
