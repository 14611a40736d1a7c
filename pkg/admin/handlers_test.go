// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

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
	"github.com/canonical/billing-service/internal/storage"
	"github.com/canonical/billing-service/internal/types"
	"github.com/canonical/billing-service/pkg/authentication"
)

// fakeAuth admits requests carrying the admin token and tags them with its subject
func fakeAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer admin" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(authentication.WithSubject(r.Context(), "admin-client")))
	})
}

func TestAPI_Endpoints(t *testing.T) {
	tests := []struct {
		name            string
		method          string
		path            string
		body            string
		admin           bool
		setupMocks      func(*MockServiceInterface, *MockLoggerInterface)
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:   "public catalogue",
			method: http.MethodGet,
			path:   "/api/v0/tiers",
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface) {
				svc.EXPECT().ListTiers(gomock.Any(), false).Return([]*types.Tier{{ID: 1, Name: "free"}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "single tier",
			method: http.MethodGet,
			path:   "/api/v0/tiers/2",
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface) {
				svc.EXPECT().GetTier(gomock.Any(), int64(2)).Return(&types.Tier{ID: 2}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "unknown tier",
			method: http.MethodGet,
			path:   "/api/v0/tiers/42",
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface) {
				svc.EXPECT().GetTier(gomock.Any(), int64(42)).Return(nil, storage.ErrNotFound)
			},
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "Not found",
		},
		{
			name:            "malformed tier id",
			method:          http.MethodGet,
			path:            "/api/v0/tiers/abc",
			setupMocks:      func(*MockServiceInterface, *MockLoggerInterface) {},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Invalid id",
		},
		{
			name:           "admin routes need a token",
			method:         http.MethodGet,
			path:           "/api/v0/admin/tiers",
			setupMocks:     func(*MockServiceInterface, *MockLoggerInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "admins list custom tiers too",
			method: http.MethodGet,
			path:   "/api/v0/admin/tiers",
			admin:  true,
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface) {
				svc.EXPECT().ListTiers(gomock.Any(), true).Return([]*types.Tier{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "create tier",
			method: http.MethodPost,
			path:   "/api/v0/admin/tiers",
			body:   `{"name": "pro", "base_user_limit": 10, "flat_price_id": "price_flat"}`,
			admin:  true,
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface) {
				svc.EXPECT().CreateTier(gomock.Any(), "admin-client", gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, req *TierRequest) (*types.Tier, error) {
						if req.Name != "pro" || req.BaseUserLimit == nil || *req.BaseUserLimit != 10 {
							t.Errorf("unexpected request %+v", req)
						}
						return &types.Tier{ID: 4, Name: "pro"}, nil
					},
				)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "tier without a name",
			method:         http.MethodPost,
			path:           "/api/v0/admin/tiers",
			body:           `{"base_user_limit": 10}`,
			admin:          true,
			setupMocks:     func(*MockServiceInterface, *MockLoggerInterface) {},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "negative limit",
			method:         http.MethodPost,
			path:           "/api/v0/admin/tiers",
			body:           `{"name": "pro", "base_project_limit": -1}`,
			admin:          true,
			setupMocks:     func(*MockServiceInterface, *MockLoggerInterface) {},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:   "duplicate prices",
			method: http.MethodPost,
			path:   "/api/v0/admin/tiers",
			body:   `{"name": "pro", "flat_price_id": "price_flat"}`,
			admin:  true,
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface) {
				svc.EXPECT().CreateTier(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, ErrTierExists)
			},
			expectedStatus:  http.StatusConflict,
			expectedMessage: "Tier prices are already in use",
		},
		{
			name:   "custom billing",
			method: http.MethodPost,
			path:   "/api/v0/admin/teams/10/custom-billing",
			body:   `{"tier_id": 9, "start_date": "2026-04-01T00:00:00Z", "renewal_date": "2027-04-01T00:00:00Z"}`,
			admin:  true,
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface) {
				svc.EXPECT().CreateCustomBilling(gomock.Any(), "admin-client", int64(10), gomock.Any()).
					Return(&types.CustomBilling{ID: 1, TeamID: 10}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "renewal before start",
			method:         http.MethodPost,
			path:           "/api/v0/admin/teams/10/custom-billing",
			body:           `{"tier_id": 9, "start_date": "2026-04-01T00:00:00Z", "renewal_date": "2026-03-01T00:00:00Z"}`,
			admin:          true,
			setupMocks:     func(*MockServiceInterface, *MockLoggerInterface) {},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:   "catalogue tier",
			method: http.MethodPost,
			path:   "/api/v0/admin/teams/10/custom-billing",
			body:   `{"tier_id": 2, "start_date": "2026-04-01T00:00:00Z", "renewal_date": "2027-04-01T00:00:00Z"}`,
			admin:  true,
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface) {
				svc.EXPECT().CreateCustomBilling(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, ErrTierNotCustom)
			},
			expectedStatus:  http.StatusUnprocessableEntity,
			expectedMessage: "Tier is not custom",
		},
		{
			name:   "tier bound elsewhere",
			method: http.MethodPost,
			path:   "/api/v0/admin/teams/10/custom-billing",
			body:   `{"tier_id": 9, "start_date": "2026-04-01T00:00:00Z", "renewal_date": "2027-04-01T00:00:00Z"}`,
			admin:  true,
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface) {
				svc.EXPECT().CreateCustomBilling(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, ErrTierBound)
			},
			expectedStatus:  http.StatusConflict,
			expectedMessage: "Tier is already bound to another team",
		},
		{
			name:   "enable a suspended user",
			method: http.MethodPost,
			path:   "/api/v0/admin/users/enable",
			body:   `{"email": " Owner@Acme.test"}`,
			admin:  true,
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface) {
				svc.EXPECT().SetUserActive(gomock.Any(), "admin-client", "owner@acme.test", true).Return(&types.User{ID: 5, Email: "owner@acme.test", IsActive: true}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "disable an unknown user",
			method: http.MethodPost,
			path:   "/api/v0/admin/users/disable",
			body:   `{"email": "ghost@acme.test"}`,
			admin:  true,
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface) {
				svc.EXPECT().SetUserActive(gomock.Any(), "admin-client", "ghost@acme.test", false).Return(nil, storage.ErrNotFound)
			},
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "Not found",
		},
		{
			name:           "user toggles need a token",
			method:         http.MethodPost,
			path:           "/api/v0/admin/users/disable",
			body:           `{"email": "owner@acme.test"}`,
			setupMocks:     func(*MockServiceInterface, *MockLoggerInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "storage failure",
			method: http.MethodGet,
			path:   "/api/v0/tiers",
			setupMocks: func(svc *MockServiceInterface, logger *MockLoggerInterface) {
				svc.EXPECT().ListTiers(gomock.Any(), false).Return(nil, errors.New("database is down"))
				logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockService := NewMockServiceInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			tt.setupMocks(mockService, mockLogger)

			req := httptest.NewRequest(tt.method, tt.path, bytes.NewBufferString(tt.body))
			if tt.admin {
				req.Header.Set("Authorization", "Bearer admin")
			}
			w := httptest.NewRecorder()

			mux := chi.NewMux()
			NewAPI(mockService, fakeAuth, mockLogger).RegisterEndpoints(mux)
			mux.ServeHTTP(w, req)

			res := w.Result()
			defer res.Body.Close()

			body, _ := io.ReadAll(res.Body)
			if res.StatusCode != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d. Body: %s", tt.expectedStatus, res.StatusCode, body)
			}

			if tt.expectedMessage == "" {
				return
			}

			var errResp httptypes.ErrorResponse
			if err := json.Unmarshal(body, &errResp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if errResp.Message != tt.expectedMessage {
				t.Errorf("expected message %q, got %q", tt.expectedMessage, errResp.Message)
			}
		})
	}
}
