// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	httptypes "github.com/canonical/billing-service/internal/http/types"
	"github.com/canonical/billing-service/internal/types"
	"github.com/canonical/billing-service/pkg/authentication"
)

func TestAPI_Endpoints(t *testing.T) {
	owner := &authentication.Principal{UserID: 1, Username: "alice", Email: "alice@example.com", TeamID: 10}
	member := &authentication.Principal{UserID: 2, Username: "bob", TeamID: 10}
	team := &types.Team{ID: 10, OwnerID: 1, TierID: 2}

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		principal      *authentication.Principal
		setupMocks     func(*MockServiceInterface, *MockLoggerInterface)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:      "limits",
			method:    http.MethodGet,
			path:      "/api/v0/billing/limits",
			principal: member,
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface) {
				svc.EXPECT().GetLimits(gomock.Any(), int64(10)).Return(&Limits{TierName: "COMMUNITY", TierID: 1}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "limits without a principal",
			method:         http.MethodGet,
			path:           "/api/v0/billing/limits",
			setupMocks:     func(*MockServiceInterface, *MockLoggerInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "limits without a team",
			method:         http.MethodGet,
			path:           "/api/v0/billing/limits",
			principal:      &authentication.Principal{UserID: 3},
			setupMocks:     func(*MockServiceInterface, *MockLoggerInterface) {},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:      "plan change by a member is forbidden",
			method:    http.MethodPost,
			path:      "/api/v0/billing/plan",
			body:      `{"tier_id": 3}`,
			principal: member,
			setupMocks: func(svc *MockServiceInterface, logger *MockLoggerInterface) {
				security := NewMockSecurityLoggerInterface(gomock.NewController(t))
				security.EXPECT().AuthzFailure("bob", "/api/v0/billing/plan")
				logger.EXPECT().Security().Return(security)
				svc.EXPECT().GetTeam(gomock.Any(), int64(10)).Return(team, nil)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:      "plan change rejected by limits",
			method:    http.MethodPost,
			path:      "/api/v0/billing/plan",
			body:      `{"tier_id": 1}`,
			principal: owner,
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface) {
				svc.EXPECT().GetTeam(gomock.Any(), int64(10)).Return(team, nil)
				svc.EXPECT().UpdatePlan(gomock.Any(), int64(10), int64(1), "192.0.2.1").
					Return(&LimitExceededError{Dimensions: []string{DimensionProjects, DimensionStorage}})
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   "Too many projects to switch to this plan",
		},
		{
			name:      "plan change returns the new plan",
			method:    http.MethodPost,
			path:      "/api/v0/billing/plan",
			body:      `{"tier_id": 3}`,
			principal: owner,
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface) {
				svc.EXPECT().GetTeam(gomock.Any(), int64(10)).Return(team, nil)
				svc.EXPECT().UpdatePlan(gomock.Any(), int64(10), int64(3), "192.0.2.1").Return(nil)
				svc.EXPECT().GetPlan(gomock.Any(), int64(10), "192.0.2.1").Return(&Plan{TierID: 3, TierName: "TEAM"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:      "plan change without a tier",
			method:    http.MethodPost,
			path:      "/api/v0/billing/plan",
			body:      `{}`,
			principal: owner,
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface) {
				svc.EXPECT().GetTeam(gomock.Any(), int64(10)).Return(team, nil)
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:      "malformed addon body",
			method:    http.MethodPost,
			path:      "/api/v0/billing/addon",
			body:      `{"users": "three"}`,
			principal: owner,
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface) {
				svc.EXPECT().GetTeam(gomock.Any(), int64(10)).Return(team, nil)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:      "addon without subscription",
			method:    http.MethodPost,
			path:      "/api/v0/billing/addon",
			body:      `{"users": 3}`,
			principal: owner,
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface) {
				svc.EXPECT().GetTeam(gomock.Any(), int64(10)).Return(team, nil)
				svc.EXPECT().AddAddon(gomock.Any(), int64(10), &AddonRequest{Users: 3}).Return(reject(KindUnprocessable, "No valid subscription"))
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   "No valid subscription",
		},
		{
			name:      "cancel times out at the processor",
			method:    http.MethodPost,
			path:      "/api/v0/billing/cancel",
			principal: owner,
			setupMocks: func(svc *MockServiceInterface, logger *MockLoggerInterface) {
				svc.EXPECT().GetTeam(gomock.Any(), int64(10)).Return(team, nil)
				svc.EXPECT().Cancel(gomock.Any(), int64(10)).Return(processorError("cancel subscription", context.DeadlineExceeded))
				logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusGatewayTimeout,
			expectedBody:   "Payment provider timed out, please try again",
		},
		{
			name:      "internal errors stay opaque",
			method:    http.MethodGet,
			path:      "/api/v0/billing/plans",
			principal: member,
			setupMocks: func(svc *MockServiceInterface, logger *MockLoggerInterface) {
				svc.EXPECT().ListPlans(gomock.Any(), int64(10)).Return(nil, errors.New("connection refused"))
				logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "Internal server error",
		},
		{
			name:      "checkout session for the owner",
			method:    http.MethodPost,
			path:      "/api/v0/billing/create-checkout-session",
			body:      `{"tier_id": 2}`,
			principal: owner,
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface) {
				svc.EXPECT().GetTeam(gomock.Any(), int64(10)).Return(team, nil)
				svc.EXPECT().CreateCheckoutSession(gomock.Any(), &CheckoutInput{TeamID: 10, TierID: 2, UserID: 1, Email: "alice@example.com"}).
					Return(&types.CheckoutSession{ID: "cs_1", URL: "https://checkout.example.com/cs_1"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:      "setup session without billing",
			method:    http.MethodPost,
			path:      "/api/v0/billing/create-authd-checkout-session",
			principal: owner,
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface) {
				svc.EXPECT().GetTeam(gomock.Any(), int64(10)).Return(team, nil)
				svc.EXPECT().CreateSetupSession(gomock.Any(), int64(10)).Return(nil, reject(KindUnprocessable, "No valid subscription"))
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:      "invoices",
			method:    http.MethodGet,
			path:      "/api/v0/billing/invoices",
			principal: member,
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface) {
				svc.EXPECT().ListInvoices(gomock.Any(), int64(10)).Return([]*types.Invoice{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:      "payment method",
			method:    http.MethodGet,
			path:      "/api/v0/billing/payment-method",
			principal: member,
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface) {
				svc.EXPECT().GetPaymentMethod(gomock.Any(), int64(10)).Return(&PaymentMethodStatus{HasPaymentMethod: true}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:      "addon prices on the free plan",
			method:    http.MethodGet,
			path:      "/api/v0/billing/addon-prices",
			principal: member,
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface) {
				svc.EXPECT().GetAddonPrices(gomock.Any(), int64(10)).Return(nil, reject(KindUnprocessable, "Addons are not available on this plan"))
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockService := NewMockServiceInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			tt.setupMocks(mockService, mockLogger)

			req := httptest.NewRequest(tt.method, tt.path, bytes.NewBufferString(tt.body))
			if tt.principal != nil {
				req = req.WithContext(authentication.WithPrincipal(req.Context(), tt.principal))
			}
			w := httptest.NewRecorder()

			mux := chi.NewMux()
			NewAPI(mockService, mockLogger).RegisterEndpoints(mux)
			mux.ServeHTTP(w, req)

			res := w.Result()
			defer res.Body.Close()

			body, _ := io.ReadAll(res.Body)
			if res.StatusCode != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d. Body: %s", tt.expectedStatus, res.StatusCode, body)
			}

			if tt.expectedBody == "" {
				return
			}

			var errResp httptypes.ErrorResponse
			if err := json.Unmarshal(body, &errResp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if errResp.Message != tt.expectedBody || errResp.Status != tt.expectedStatus {
				t.Errorf("expected %d %q, got %d %q", tt.expectedStatus, tt.expectedBody, errResp.Status, errResp.Message)
			}
		})
	}
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	req.RemoteAddr = "81.2.69.160:4321"
	if got := clientIP(req); got != "81.2.69.160" {
		t.Errorf("expected host only, got %q", got)
	}

	req.RemoteAddr = "81.2.69.160"
	if got := clientIP(req); got != "81.2.69.160" {
		t.Errorf("expected bare address, got %q", got)
	}
}
