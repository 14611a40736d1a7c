// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/billing-service/internal/payments"
	"github.com/canonical/billing-service/internal/storage"
	"github.com/canonical/billing-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_webhooks.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

const checkoutCompleted = `{
	"id": "cs_1",
	"mode": "subscription",
	"customer": "cus_1",
	"subscription": "sub_1",
	"metadata": {"team_id": "10", "tier_id": "2"}
}`

func TestService_HandleEvent(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	sub := &types.Subscription{ID: "sub_1", CustomerID: "cus_1", Status: types.SubscriptionStatusActive, CurrentPeriodStart: &start, CurrentPeriodEnd: &end}
	billing := &types.Billing{TeamID: 10, StripeCustomerID: "cus_1", SubscriptionID: "sub_1", StartDate: &start, RenewalDate: &end}

	tests := []struct {
		name        string
		signature   string
		event       *payments.Event
		setupMocks  func(*MockStorageInterface, *MockProcessorInterface, *MockLoggerInterface)
		expectedErr error
		wantErr     bool
	}{
		{
			name:        "missing signature",
			setupMocks:  func(*MockStorageInterface, *MockProcessorInterface, *MockLoggerInterface) {},
			expectedErr: ErrMissingSignature,
		},
		{
			name:      "invalid signature",
			signature: "t=1,v1=bad",
			setupMocks: func(_ *MockStorageInterface, mockProcessor *MockProcessorInterface, mockLogger *MockLoggerInterface) {
				security := NewMockSecurityLoggerInterface(gomock.NewController(t))
				security.EXPECT().AuthnFailure("payment-processor", gomock.Any())
				mockLogger.EXPECT().Security().Return(security)
				mockProcessor.EXPECT().ConstructEvent(gomock.Any(), "t=1,v1=bad").Return(nil, errors.New("no valid signature"))
			},
			expectedErr: ErrInvalidSignature,
		},
		{
			name:      "checkout completed records billing and moves the team",
			signature: "t=1,v1=ok",
			event:     &payments.Event{ID: "evt_1", Type: payments.EventCheckoutSessionCompleted, Raw: []byte(checkoutCompleted)},
			setupMocks: func(mockStorage *MockStorageInterface, mockProcessor *MockProcessorInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()
				mockProcessor.EXPECT().GetSubscription(gomock.Any(), "sub_1").Return(sub, nil)
				mockStorage.EXPECT().CreateBilling(gomock.Any(), billing).Return(&types.Billing{ID: 1}, nil)
				mockStorage.EXPECT().SetTeamTier(gomock.Any(), int64(10), int64(2)).Return(nil)
			},
		},
		{
			name:      "redelivered checkout is acknowledged",
			signature: "t=1,v1=ok",
			event:     &payments.Event{ID: "evt_1", Type: payments.EventCheckoutSessionCompleted, Raw: []byte(checkoutCompleted)},
			setupMocks: func(mockStorage *MockStorageInterface, mockProcessor *MockProcessorInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()
				mockProcessor.EXPECT().GetSubscription(gomock.Any(), "sub_1").Return(sub, nil)
				mockStorage.EXPECT().CreateBilling(gomock.Any(), billing).Return(nil, storage.ErrDuplicateKey)
			},
		},
		{
			name:      "checkout without team metadata",
			signature: "t=1,v1=ok",
			event: &payments.Event{ID: "evt_2", Type: payments.EventCheckoutSessionCompleted, Raw: []byte(
				`{"id": "cs_2", "mode": "subscription", "subscription": "sub_2", "metadata": {}}`,
			)},
			setupMocks: func(*MockStorageInterface, *MockProcessorInterface, *MockLoggerInterface) {},
			wantErr:    true,
		},
		{
			name:      "setup checkout registers the card",
			signature: "t=1,v1=ok",
			event: &payments.Event{ID: "evt_3", Type: payments.EventCheckoutSessionCompleted, Raw: []byte(
				`{"id": "cs_3", "mode": "setup", "customer": "cus_1", "setup_intent": "seti_1"}`,
			)},
			setupMocks: func(_ *MockStorageInterface, mockProcessor *MockProcessorInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()
				mockProcessor.EXPECT().GetSetupIntent(gomock.Any(), "seti_1").Return(&payments.SetupIntent{ID: "seti_1", PaymentMethodID: "pm_1"}, nil)
				mockProcessor.EXPECT().SetDefaultPaymentMethod(gomock.Any(), "cus_1", "pm_1").Return(nil)
			},
		},
		{
			name:      "setup intent succeeded registers the card",
			signature: "t=1,v1=ok",
			event: &payments.Event{ID: "evt_4", Type: payments.EventSetupIntentSucceeded, Raw: []byte(
				`{"id": "seti_2", "customer": {"id": "cus_2"}, "payment_method": "pm_2"}`,
			)},
			setupMocks: func(_ *MockStorageInterface, mockProcessor *MockProcessorInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()
				mockProcessor.EXPECT().SetDefaultPaymentMethod(gomock.Any(), "cus_2", "pm_2").Return(nil)
			},
		},
		{
			name:      "processor failure is returned for redelivery",
			signature: "t=1,v1=ok",
			event:     &payments.Event{ID: "evt_1", Type: payments.EventCheckoutSessionCompleted, Raw: []byte(checkoutCompleted)},
			setupMocks: func(_ *MockStorageInterface, mockProcessor *MockProcessorInterface, _ *MockLoggerInterface) {
				mockProcessor.EXPECT().GetSubscription(gomock.Any(), "sub_1").Return(nil, context.DeadlineExceeded)
			},
			wantErr: true,
		},
		{
			name:       "other events are ignored",
			signature:  "t=1,v1=ok",
			event:      &payments.Event{ID: "evt_5", Type: "invoice.paid", Raw: []byte(`{}`)},
			setupMocks: func(*MockStorageInterface, *MockProcessorInterface, *MockLoggerInterface) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockStorage := NewMockStorageInterface(ctrl)
			mockProcessor := NewMockProcessorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "webhooks.Service.HandleEvent").DoAndReturn(
				func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
					return ctx, trace.SpanFromContext(ctx)
				},
			)
			mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()

			if tt.event != nil {
				mockProcessor.EXPECT().ConstructEvent(gomock.Any(), tt.signature).Return(tt.event, nil)
			}
			tt.setupMocks(mockStorage, mockProcessor, mockLogger)

			svc := NewService(mockStorage, mockProcessor, mockTracer, mockMonitor, mockLogger)
			err := svc.HandleEvent(context.Background(), []byte(`{}`), tt.signature)

			switch {
			case tt.expectedErr != nil:
				if !errors.Is(err, tt.expectedErr) {
					t.Errorf("expected %v, got %v", tt.expectedErr, err)
				}
			case tt.wantErr:
				if err == nil {
					t.Error("expected an error")
				}
			case err != nil:
				t.Errorf("unexpected error %v", err)
			}
		})
	}
}
