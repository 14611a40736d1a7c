// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/billing-service/internal/storage"
	"github.com/canonical/billing-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package admin -destination ./mock_admin.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package admin -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package admin -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package admin -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func strPtr(s string) *string {
	return &s
}

type serviceMocks struct {
	storage  *MockStorageInterface
	logger   *MockLoggerInterface
	security *MockSecurityLoggerInterface
}

func newTestService(t *testing.T, span string) (*Service, *serviceMocks) {
	ctrl := gomock.NewController(t)

	m := &serviceMocks{
		storage:  NewMockStorageInterface(ctrl),
		logger:   NewMockLoggerInterface(ctrl),
		security: NewMockSecurityLoggerInterface(ctrl),
	}

	tracer := NewMockTracingInterface(ctrl)
	tracer.EXPECT().Start(gomock.Any(), span).DoAndReturn(
		func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		},
	)
	m.logger.EXPECT().Security().Return(m.security).AnyTimes()

	return NewService(m.storage, tracer, NewMockMonitorInterface(ctrl), m.logger), m
}

func TestService_ListTiers(t *testing.T) {
	catalogue := []*types.Tier{
		{ID: 1, Name: "free"},
		{ID: 2, Name: "team", FlatPriceID: strPtr("price_flat")},
		{ID: 3, Name: "acme", IsCustom: true},
	}

	tests := []struct {
		name          string
		includeCustom bool
		expected      []int64
	}{
		{name: "public catalogue hides custom tiers", expected: []int64{1, 2}},
		{name: "admins see every tier", includeCustom: true, expected: []int64{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestService(t, "admin.Service.ListTiers")
			m.storage.EXPECT().ListTiers(gomock.Any()).Return(catalogue, nil)

			tiers, err := svc.ListTiers(context.Background(), tt.includeCustom)
			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}

			if len(tiers) != len(tt.expected) {
				t.Fatalf("expected %d tiers, got %d", len(tt.expected), len(tiers))
			}
			for i, id := range tt.expected {
				if tiers[i].ID != id {
					t.Errorf("expected tier %d at %d, got %d", id, i, tiers[i].ID)
				}
			}
		})
	}
}

func TestService_CreateTier(t *testing.T) {
	req := &TierRequest{Name: "pro", FlatPriceID: strPtr("price_flat"), StoragePriceID: strPtr("price_storage")}

	t.Run("created and audited", func(t *testing.T) {
		svc, m := newTestService(t, "admin.Service.CreateTier")

		m.storage.EXPECT().CreateTier(gomock.Any(), req.tier()).Return(&types.Tier{ID: 4, Name: "pro"}, nil)
		m.security.EXPECT().AdminAction("admin-client", "create-tier", "pro")

		tier, err := svc.CreateTier(context.Background(), "admin-client", req)
		if err != nil {
			t.Fatalf("unexpected error %v", err)
		}
		if tier.ID != 4 {
			t.Errorf("unexpected tier %+v", tier)
		}
	})

	t.Run("prices already bound", func(t *testing.T) {
		svc, m := newTestService(t, "admin.Service.CreateTier")

		m.storage.EXPECT().CreateTier(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("price or subscription already bound to a tier: %w", storage.ErrDuplicateKey))

		if _, err := svc.CreateTier(context.Background(), "admin-client", req); !errors.Is(err, ErrTierExists) {
			t.Errorf("expected %v, got %v", ErrTierExists, err)
		}
	})
}

func TestService_CreateCustomBilling(t *testing.T) {
	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	renewal := start.AddDate(1, 0, 0)
	req := &CustomBillingRequest{TierID: 9, StartDate: start, RenewalDate: renewal}

	custom := &types.Tier{ID: 9, Name: "acme", IsCustom: true}

	tests := []struct {
		name        string
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name: "team moves to the custom tier",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetTeam(gomock.Any(), int64(10)).Return(&types.Team{ID: 10}, nil)
				m.storage.EXPECT().GetTier(gomock.Any(), int64(9)).Return(custom, nil)
				m.storage.EXPECT().CountTeamsOnTier(gomock.Any(), int64(9), int64(10)).Return(int64(0), nil)
				m.storage.EXPECT().CreateCustomBilling(gomock.Any(), &types.CustomBilling{TeamID: 10, StartDate: &start, RenewalDate: &renewal}).
					Return(&types.CustomBilling{ID: 1, TeamID: 10}, nil)
				m.storage.EXPECT().SetTeamTier(gomock.Any(), int64(10), int64(9)).Return(nil)
				m.security.EXPECT().AdminAction("admin-client", "create-custom-billing", "10")
				m.logger.EXPECT().Infof(gomock.Any(), gomock.Any())
			},
		},
		{
			name: "unknown team",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetTeam(gomock.Any(), int64(10)).Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
		{
			name: "catalogue tiers can't be bound",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetTeam(gomock.Any(), int64(10)).Return(&types.Team{ID: 10}, nil)
				m.storage.EXPECT().GetTier(gomock.Any(), int64(9)).Return(&types.Tier{ID: 9, Name: "team"}, nil)
			},
			expectedErr: ErrTierNotCustom,
		},
		{
			name: "tier already used by another team",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetTeam(gomock.Any(), int64(10)).Return(&types.Team{ID: 10}, nil)
				m.storage.EXPECT().GetTier(gomock.Any(), int64(9)).Return(custom, nil)
				m.storage.EXPECT().CountTeamsOnTier(gomock.Any(), int64(9), int64(10)).Return(int64(1), nil)
			},
			expectedErr: ErrTierBound,
		},
		{
			name: "team already billed",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetTeam(gomock.Any(), int64(10)).Return(&types.Team{ID: 10}, nil)
				m.storage.EXPECT().GetTier(gomock.Any(), int64(9)).Return(custom, nil)
				m.storage.EXPECT().CountTeamsOnTier(gomock.Any(), int64(9), int64(10)).Return(int64(0), nil)
				m.storage.EXPECT().CreateCustomBilling(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("custom billing already exists: %w", storage.ErrDuplicateKey))
			},
			expectedErr: ErrCustomBilled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestService(t, "admin.Service.CreateCustomBilling")
			tt.setupMocks(m)

			billing, err := svc.CreateCustomBilling(context.Background(), "admin-client", 10, req)

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Errorf("expected %v, got %v", tt.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if billing.TeamID != 10 {
				t.Errorf("unexpected billing %+v", billing)
			}
		})
	}
}

func TestService_SetUserActive(t *testing.T) {
	tests := []struct {
		name   string
		active bool
		action string
	}{
		{name: "enable", active: true, action: "enable-user"},
		{name: "disable", active: false, action: "disable-user"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestService(t, "admin.Service.SetUserActive")

			m.storage.EXPECT().SetUserActive(gomock.Any(), "owner@acme.test", tt.active).Return(&types.User{ID: 5, Email: "owner@acme.test", IsActive: tt.active}, nil)
			m.security.EXPECT().AdminAction("admin-client", tt.action, "5")

			user, err := svc.SetUserActive(context.Background(), "admin-client", "owner@acme.test", tt.active)
			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if user.IsActive != tt.active {
				t.Errorf("expected active %v, got %+v", tt.active, user)
			}
		})
	}

	t.Run("unknown email is not audited", func(t *testing.T) {
		svc, m := newTestService(t, "admin.Service.SetUserActive")

		m.storage.EXPECT().SetUserActive(gomock.Any(), "ghost@acme.test", true).Return(nil, storage.ErrNotFound)

		if _, err := svc.SetUserActive(context.Background(), "admin-client", "ghost@acme.test", true); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected %v, got %v", storage.ErrNotFound, err)
		}
	})
}
