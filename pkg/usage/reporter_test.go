// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package usage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/canonical/billing-service/internal/email"
	"github.com/canonical/billing-service/internal/storage"
	"github.com/canonical/billing-service/internal/types"
)

type reporterMocks struct {
	storage   *MockStorageInterface
	processor *MockProcessorInterface
	sender    *MockSenderInterface
	monitor   *MockMonitorInterface
	logger    *MockLoggerInterface
}

func newTestReporter(t *testing.T) (*Reporter, *reporterMocks) {
	ctrl := gomock.NewController(t)

	m := &reporterMocks{
		storage:   NewMockStorageInterface(ctrl),
		processor: NewMockProcessorInterface(ctrl),
		sender:    NewMockSenderInterface(ctrl),
		monitor:   NewMockMonitorInterface(ctrl),
		logger:    NewMockLoggerInterface(ctrl),
	}

	r := NewReporter(m.storage, m.processor, m.sender, NewConfig(9000, 0.9, 1000, "support@example.com"), passthroughTracer(ctrl), m.monitor, m.logger)
	r.now = func() time.Time { return runDay }

	return r, m
}

func strPtr(s string) *string {
	return &s
}

var (
	proTier = &types.Tier{ID: 2, Name: "PRO", FlatPriceID: strPtr("price_flat"), StoragePriceID: strPtr("price_storage")}

	proSubscription = &types.Subscription{
		ID: "sub_1",
		Items: []types.LineItem{
			{ID: "si_flat", Quantity: 1, Price: types.Price{ID: "price_flat"}},
			{ID: "si_storage", Price: types.Price{ID: "price_storage", Tiers: []types.PriceTier{{UpTo: 10}, {UnitAmount: 5}}}},
		},
	}

	activeBilling = &types.Billing{TeamID: 1, StripeCustomerID: "cus_1", SubscriptionID: "sub_1"}
)

func TestReporter_Report(t *testing.T) {
	canceled := runDay.AddDate(0, -1, 0)

	tests := []struct {
		name       string
		team       *types.Team
		setupMocks func(*reporterMocks)
		wantErr    bool
	}{
		{
			name: "billed team reports its usage",
			team: &types.Team{ID: 1, TierID: 2, Usage: 5000},
			setupMocks: func(m *reporterMocks) {
				m.storage.EXPECT().GetBilling(gomock.Any(), int64(1)).Return(activeBilling, nil)
				m.storage.EXPECT().GetTier(gomock.Any(), int64(2)).Return(proTier, nil)
				m.processor.EXPECT().GetSubscription(gomock.Any(), "sub_1").Return(proSubscription, nil)
				m.processor.EXPECT().ReportUsage(gomock.Any(), "si_storage", int64(5000), runDay).Return(nil)
				m.monitor.EXPECT().SetStorageUsageRatio(map[string]string{"team": "1"}, 0.5).Return(nil)
			},
		},
		{
			name: "usage close to the included storage raises an alert",
			team: &types.Team{ID: 1, TierID: 2, Usage: 9500},
			setupMocks: func(m *reporterMocks) {
				m.storage.EXPECT().GetBilling(gomock.Any(), int64(1)).Return(activeBilling, nil)
				m.storage.EXPECT().GetTier(gomock.Any(), int64(2)).Return(proTier, nil)
				m.processor.EXPECT().GetSubscription(gomock.Any(), "sub_1").Return(proSubscription, nil)
				m.processor.EXPECT().ReportUsage(gomock.Any(), "si_storage", int64(9500), runDay).Return(nil)
				m.monitor.EXPECT().SetStorageUsageRatio(map[string]string{"team": "1"}, 0.95).Return(nil)
				m.logger.EXPECT().Warnw(gomock.Any(), gomock.Any())
				m.monitor.EXPECT().IncUsageAlerts(map[string]string{"tier": "PRO"}).Return(nil)
			},
		},
		{
			name: "subscription without a storage price is skipped",
			team: &types.Team{ID: 1, TierID: 2, Usage: 5000},
			setupMocks: func(m *reporterMocks) {
				m.storage.EXPECT().GetBilling(gomock.Any(), int64(1)).Return(activeBilling, nil)
				m.storage.EXPECT().GetTier(gomock.Any(), int64(2)).Return(proTier, nil)
				m.processor.EXPECT().GetSubscription(gomock.Any(), "sub_1").Return(&types.Subscription{ID: "sub_1"}, nil)
				m.logger.EXPECT().Warnf(gomock.Any(), gomock.Any())
			},
		},
		{
			name: "canceled subscription is not reported",
			team: &types.Team{ID: 1, TierID: 1, Usage: 5000},
			setupMocks: func(m *reporterMocks) {
				m.storage.EXPECT().GetBilling(gomock.Any(), int64(1)).Return(&types.Billing{TeamID: 1, SubscriptionID: "sub_1", CancelDate: &canceled}, nil)
				m.logger.EXPECT().Debugf(gomock.Any(), gomock.Any())
			},
		},
		{
			name: "canceled team over the free allowance is suspended",
			team: &types.Team{ID: 1, Name: "acme", OwnerID: 5, TierID: 1, Usage: 9500},
			setupMocks: func(m *reporterMocks) {
				m.storage.EXPECT().GetBilling(gomock.Any(), int64(1)).Return(&types.Billing{TeamID: 1, SubscriptionID: "sub_1", CancelDate: &canceled}, nil)
				m.logger.EXPECT().Debugf(gomock.Any(), gomock.Any())
				m.storage.EXPECT().GetUser(gomock.Any(), int64(5)).Return(&types.User{ID: 5, Email: "owner@acme.test", IsActive: true}, nil)
				m.storage.EXPECT().DeactivateTeamUsers(gomock.Any(), int64(1)).Return(int64(2), nil)
				m.logger.EXPECT().Warnw(gomock.Any(), gomock.Any())
				m.sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "processor failure",
			team: &types.Team{ID: 1, TierID: 2, Usage: 5000},
			setupMocks: func(m *reporterMocks) {
				m.storage.EXPECT().GetBilling(gomock.Any(), int64(1)).Return(activeBilling, nil)
				m.storage.EXPECT().GetTier(gomock.Any(), int64(2)).Return(proTier, nil)
				m.processor.EXPECT().GetSubscription(gomock.Any(), "sub_1").Return(proSubscription, nil)
				m.processor.EXPECT().ReportUsage(gomock.Any(), "si_storage", int64(5000), runDay).Return(context.DeadlineExceeded)
				m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			wantErr: true,
		},
		{
			name: "custom billing is left alone",
			team: &types.Team{ID: 1, TierID: 4, Usage: 50000},
			setupMocks: func(m *reporterMocks) {
				m.storage.EXPECT().GetBilling(gomock.Any(), int64(1)).Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().GetCustomBilling(gomock.Any(), int64(1)).Return(&types.CustomBilling{TeamID: 1}, nil)
			},
		},
		{
			name: "free team within the allowance",
			team: &types.Team{ID: 1, TierID: 1, Usage: 9000},
			setupMocks: func(m *reporterMocks) {
				m.storage.EXPECT().GetBilling(gomock.Any(), int64(1)).Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().GetCustomBilling(gomock.Any(), int64(1)).Return(nil, storage.ErrNotFound)
			},
		},
		{
			name: "free team over the allowance is suspended",
			team: &types.Team{ID: 1, Name: "acme", OwnerID: 5, TierID: 1, Usage: 9001},
			setupMocks: func(m *reporterMocks) {
				m.storage.EXPECT().GetBilling(gomock.Any(), int64(1)).Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().GetCustomBilling(gomock.Any(), int64(1)).Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().GetUser(gomock.Any(), int64(5)).Return(&types.User{ID: 5, Email: "owner@acme.test", IsActive: true}, nil)
				m.storage.EXPECT().DeactivateTeamUsers(gomock.Any(), int64(1)).Return(int64(3), nil)
				m.logger.EXPECT().Warnw(gomock.Any(), gomock.Any())
				m.sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg *email.Message) error {
					assert.Equal(t, "owner@acme.test", msg.To)
					assert.Equal(t, email.TagSuspension, msg.Tag)
					assert.Contains(t, msg.TextBody, "9001 MB")
					return nil
				})
			},
		},
		{
			name: "suspension email failure does not fail the suspension",
			team: &types.Team{ID: 1, Name: "acme", OwnerID: 5, TierID: 1, Usage: 12000},
			setupMocks: func(m *reporterMocks) {
				m.storage.EXPECT().GetBilling(gomock.Any(), int64(1)).Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().GetCustomBilling(gomock.Any(), int64(1)).Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().GetUser(gomock.Any(), int64(5)).Return(&types.User{ID: 5, Email: "owner@acme.test", IsActive: true}, nil)
				m.storage.EXPECT().DeactivateTeamUsers(gomock.Any(), int64(1)).Return(int64(1), nil)
				m.logger.EXPECT().Warnw(gomock.Any(), gomock.Any())
				m.sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("postmark is down"))
				m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
		},
		{
			name: "already suspended team is not suspended again",
			team: &types.Team{ID: 1, OwnerID: 5, TierID: 1, Usage: 12000},
			setupMocks: func(m *reporterMocks) {
				m.storage.EXPECT().GetBilling(gomock.Any(), int64(1)).Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().GetCustomBilling(gomock.Any(), int64(1)).Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().GetUser(gomock.Any(), int64(5)).Return(&types.User{ID: 5, IsActive: false}, nil)
				m.logger.EXPECT().Debugf(gomock.Any(), gomock.Any())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, m := newTestReporter(t)
			tt.setupMocks(m)

			err := r.Report(context.Background(), []*types.Team{tt.team})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestReporter_ReportIsolatesTeams(t *testing.T) {
	r, m := newTestReporter(t)

	m.storage.EXPECT().GetBilling(gomock.Any(), int64(1)).Return(nil, errors.New("connection reset"))
	m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any())

	m.storage.EXPECT().GetBilling(gomock.Any(), int64(2)).Return(&types.Billing{TeamID: 2, SubscriptionID: "sub_1"}, nil)
	m.storage.EXPECT().GetTier(gomock.Any(), int64(2)).Return(proTier, nil)
	m.processor.EXPECT().GetSubscription(gomock.Any(), "sub_1").Return(proSubscription, nil)
	m.processor.EXPECT().ReportUsage(gomock.Any(), "si_storage", int64(1000), runDay).Return(nil)
	m.monitor.EXPECT().SetStorageUsageRatio(map[string]string{"team": "2"}, 0.1).Return(nil)

	err := r.Report(context.Background(), []*types.Team{
		{ID: 1, TierID: 2, Usage: 5000},
		{ID: 2, TierID: 2, Usage: 1000},
	})

	assert.ErrorContains(t, err, "team 1")
	assert.NotContains(t, err.Error(), "team 2")
}
