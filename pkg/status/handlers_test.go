// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/billing-service/internal/version"
)

//go:generate mockgen -build_flags=--mod=mod -package status -destination ./mock_status.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package status -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package status -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package status -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func TestAPI_Status(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		setupMocks     func(*MockPingerInterface, *MockMonitorInterface, *MockLoggerInterface)
		expectedStatus int
		expectedBody   Status
	}{
		{
			name:           "alive",
			path:           "/api/v0/status",
			setupMocks:     func(*MockPingerInterface, *MockMonitorInterface, *MockLoggerInterface) {},
			expectedStatus: http.StatusOK,
			expectedBody:   Status{Status: "ok", Version: version.Version},
		},
		{
			name: "ready",
			path: "/api/v0/status/ready",
			setupMocks: func(db *MockPingerInterface, _ *MockMonitorInterface, _ *MockLoggerInterface) {
				db.EXPECT().Ping(gomock.Any()).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   Status{Status: "ok", Version: version.Version},
		},
		{
			name: "database down",
			path: "/api/v0/status/ready",
			setupMocks: func(db *MockPingerInterface, _ *MockMonitorInterface, logger *MockLoggerInterface) {
				db.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))
				logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   Status{Status: "unavailable", Version: version.Version},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			db := NewMockPingerInterface(ctrl)
			monitor := NewMockMonitorInterface(ctrl)
			logger := NewMockLoggerInterface(ctrl)
			tracer := NewMockTracingInterface(ctrl)
			tracer.EXPECT().Start(gomock.Any(), "status.API.ready").DoAndReturn(
				func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
					return ctx, trace.SpanFromContext(ctx)
				},
			).AnyTimes()
			tt.setupMocks(db, monitor, logger)

			mux := chi.NewMux()
			NewAPI(db, tracer, monitor, logger).RegisterEndpoints(mux)

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			var body Status
			if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if body != tt.expectedBody {
				t.Errorf("expected %+v, got %+v", tt.expectedBody, body)
			}
		})
	}
}
