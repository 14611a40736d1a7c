// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package payments

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stripe/stripe-go/v81"
	"github.com/stretchr/testify/assert"

	"github.com/canonical/billing-service/internal/logging"
	"github.com/canonical/billing-service/internal/monitoring"
	"github.com/canonical/billing-service/internal/tracing"
)

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestIsTimeout(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil},
		{name: "deadline", err: fmt.Errorf("failed to cancel subscription: %w", context.DeadlineExceeded), want: true},
		{name: "transport timeout", err: &url.Error{Op: "Post", URL: "https://api.stripe.com/v1/customers", Err: timeoutError{}}, want: true},
		{name: "gateway timeout answer", err: &stripe.Error{HTTPStatusCode: http.StatusGatewayTimeout}, want: true},
		{name: "lock timeout", err: fmt.Errorf("failed to update subscription: %w", &stripe.Error{HTTPStatusCode: http.StatusTooManyRequests, Code: stripe.ErrorCodeLockTimeout}), want: true},
		{name: "card declined", err: &stripe.Error{HTTPStatusCode: http.StatusPaymentRequired, Code: stripe.ErrorCodeCardDeclined}},
		{name: "message mentioning a timeout", err: errors.New("Client.Timeout exceeded while awaiting headers")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTimeout(tt.err))
		})
	}
}

func TestClientTimeoutIsReported(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)

	logger := logging.NewNoopLogger()
	c := NewClient(
		Config{SecretKey: "sk_test_123", Timeout: 20 * time.Millisecond, APIURL: srv.URL},
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("test", logger),
		logger,
	)

	_, err := c.GetSubscription(context.Background(), "sub_1")
	assert.True(t, IsTimeout(err), "expected a timeout, got %v", err)
}
