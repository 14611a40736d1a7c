// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

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

//go:generate mockgen -build_flags=--mod=mod -package billing -destination ./mock_billing.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package billing -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package billing -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package billing -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

type fixture struct {
	storage   *MockStorageInterface
	processor *MockProcessorInterface
	svc       *Service
}

func newFixture(t *testing.T, span string) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		storage:   NewMockStorageInterface(ctrl),
		processor: NewMockProcessorInterface(ctrl),
	}

	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), span).DoAndReturn(
		func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		},
	)
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()

	f.svc = NewService(f.storage, f.processor, NewConfig(1, 30, "GB", 1000), mockTracer, mockMonitor, mockLogger)
	f.svc.now = func() time.Time { return fixedNow }

	return f
}

func freeTier() *types.Tier {
	return &types.Tier{
		ID:                    1,
		Name:                  "COMMUNITY",
		BaseUserLimit:         ptr(int64(1)),
		BaseProjectLimit:      ptr(int64(1)),
		BaseCollaboratorLimit: ptr(int64(2)),
		BaseStorageLimit:      ptr(int64(1000)),
		StoragePriceID:        ptr("price_storage_free"),
	}
}

func proTier() *types.Tier {
	return &types.Tier{
		ID:                    2,
		Name:                  "PRO",
		BaseUserLimit:         ptr(int64(5)),
		BaseProjectLimit:      ptr(int64(10)),
		BaseCollaboratorLimit: ptr(int64(5)),
		BaseStorageLimit:      ptr(int64(10000)),
		FlatPriceID:           ptr("price_pro_flat"),
		StoragePriceID:        ptr("price_pro_storage"),
		UserPriceID:           ptr("price_pro_user"),
		ProjectPriceID:        ptr("price_pro_project"),
		CollaboratorPriceID:   ptr("price_pro_collab"),
	}
}

func teamTier() *types.Tier {
	return &types.Tier{
		ID:                    3,
		Name:                  "TEAM",
		BaseUserLimit:         ptr(int64(20)),
		BaseProjectLimit:      ptr(int64(50)),
		BaseCollaboratorLimit: ptr(int64(20)),
		BaseStorageLimit:      ptr(int64(50000)),
		FlatPriceID:           ptr("price_team_flat"),
		StoragePriceID:        ptr("price_team_storage"),
		UserPriceID:           ptr("price_team_user"),
	}
}

func billingRow() *types.Billing {
	return &types.Billing{ID: 1, TeamID: 10, StripeCustomerID: "cus_1", SubscriptionID: "sub_1"}
}

// expectState primes the lookups every plan operation starts with
func (f *fixture) expectState(team *types.Team, tier *types.Tier, b *types.Billing, custom *types.CustomBilling) {
	f.storage.EXPECT().GetTeam(gomock.Any(), team.ID).Return(team, nil)
	f.storage.EXPECT().GetTier(gomock.Any(), team.TierID).Return(tier, nil)

	if b != nil {
		f.storage.EXPECT().GetBilling(gomock.Any(), team.ID).Return(b, nil)
	} else {
		f.storage.EXPECT().GetBilling(gomock.Any(), team.ID).Return(nil, storage.ErrNotFound)
	}

	if custom != nil {
		f.storage.EXPECT().GetCustomBilling(gomock.Any(), team.ID).Return(custom, nil)
	} else {
		f.storage.EXPECT().GetCustomBilling(gomock.Any(), team.ID).Return(nil, storage.ErrNotFound)
	}
}

func (f *fixture) expectLimits(teamID int64, counts *types.TeamCounts, addons *types.AddonTotals) {
	f.storage.EXPECT().GetTeamCounts(gomock.Any(), teamID).Return(counts, nil)
	f.storage.EXPECT().SumTierAddons(gomock.Any(), teamID).Return(addons, nil)
}

func TestService_UpdatePlanRejectsEachExceededDimension(t *testing.T) {
	within := types.TeamCounts{Users: 5, Projects: 10, Collaborators: 5}

	tests := []struct {
		name      string
		counts    types.TeamCounts
		usage     int64
		dimension string
	}{
		{name: "users", counts: types.TeamCounts{Users: 6, Projects: 10, Collaborators: 5}, usage: 100, dimension: DimensionUsers},
		{name: "projects", counts: types.TeamCounts{Users: 5, Projects: 11, Collaborators: 5}, usage: 100, dimension: DimensionProjects},
		{name: "collaborators", counts: types.TeamCounts{Users: 5, Projects: 10, Collaborators: 6}, usage: 100, dimension: DimensionCollaborators},
		{name: "storage", counts: within, usage: 10001, dimension: DimensionStorage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, "billing.Service.UpdatePlan")

			team := &types.Team{ID: 10, OwnerID: 1, TierID: 3, Usage: tt.usage}
			f.expectState(team, teamTier(), billingRow(), nil)
			f.storage.EXPECT().GetTier(gomock.Any(), int64(2)).Return(proTier(), nil)
			counts := tt.counts
			f.expectLimits(10, &counts, &types.AddonTotals{})

			err := f.svc.UpdatePlan(context.Background(), 10, 2, "")

			var limitErr *LimitExceededError
			if !errors.As(err, &limitErr) {
				t.Fatalf("expected LimitExceededError, got %v", err)
			}

			if len(limitErr.Dimensions) != 1 || !limitErr.Has(tt.dimension) {
				t.Errorf("expected only %s to be exceeded, got %v", tt.dimension, limitErr.Dimensions)
			}

			if StatusCode(err) != 422 {
				t.Errorf("expected 422, got %d", StatusCode(err))
			}
		})
	}
}

func TestService_UpdatePlanRejections(t *testing.T) {
	tests := []struct {
		name      string
		team      *types.Team
		tier      *types.Tier
		dest      int64
		setup     func(*fixture)
		wantKind  RejectionKind
		wantMatch string
	}{
		{
			name:      "custom tier",
			team:      &types.Team{ID: 10, TierID: 9},
			tier:      &types.Tier{ID: 9, Name: "ACME", IsCustom: true},
			dest:      2,
			setup:     func(*fixture) {},
			wantKind:  KindConflict,
			wantMatch: "Custom plans can't be changed, contact support",
		},
		{
			name:      "same tier",
			team:      &types.Team{ID: 10, TierID: 2},
			tier:      proTier(),
			dest:      2,
			setup:     func(*fixture) {},
			wantKind:  KindConflict,
			wantMatch: "Team is already on this plan",
		},
		{
			name: "custom tier of another team",
			team: &types.Team{ID: 10, TierID: 2},
			tier: proTier(),
			dest: 9,
			setup: func(f *fixture) {
				f.storage.EXPECT().GetTier(gomock.Any(), int64(9)).Return(&types.Tier{ID: 9, IsCustom: true}, nil)
				f.storage.EXPECT().CountTeamsOnTier(gomock.Any(), int64(9), int64(10)).Return(int64(1), nil)
			},
			wantKind:  KindConflict,
			wantMatch: "This plan belongs to another team",
		},
		{
			name: "no payment method for a paid tier",
			team: &types.Team{ID: 10, TierID: 2},
			tier: proTier(),
			dest: 3,
			setup: func(f *fixture) {
				f.storage.EXPECT().GetTier(gomock.Any(), int64(3)).Return(teamTier(), nil)
				f.expectLimits(10, &types.TeamCounts{Users: 1}, &types.AddonTotals{})
				f.processor.EXPECT().HasDefaultPaymentMethod(gomock.Any(), "cus_1").Return(false, nil)
			},
			wantKind:  KindUnprocessable,
			wantMatch: "No valid payment method",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, "billing.Service.UpdatePlan")

			f.expectState(tt.team, tt.tier, billingRow(), nil)
			tt.setup(f)

			err := f.svc.UpdatePlan(context.Background(), tt.team.ID, tt.dest, "")

			var rejection *RejectionError
			if !errors.As(err, &rejection) {
				t.Fatalf("expected RejectionError, got %v", err)
			}
			if rejection.Kind != tt.wantKind {
				t.Errorf("expected kind %d, got %d", tt.wantKind, rejection.Kind)
			}
			if rejection.Message != tt.wantMatch {
				t.Errorf("expected message %q, got %q", tt.wantMatch, rejection.Message)
			}
		})
	}
}

func TestService_UpdatePlanSwapsLinesAndClearsAddons(t *testing.T) {
	f := newFixture(t, "billing.Service.UpdatePlan")

	team := &types.Team{ID: 10, OwnerID: 1, TierID: 2, Usage: 2000}
	f.expectState(team, proTier(), billingRow(), nil)
	f.storage.EXPECT().GetTier(gomock.Any(), int64(3)).Return(teamTier(), nil)
	f.expectLimits(10, &types.TeamCounts{Users: 6, Projects: 2}, &types.AddonTotals{Users: 2, Projects: 1})
	f.processor.EXPECT().HasDefaultPaymentMethod(gomock.Any(), "cus_1").Return(true, nil)

	sub := &types.Subscription{
		ID:     "sub_1",
		Status: types.SubscriptionStatusActive,
		Items: []types.LineItem{
			{ID: "si_flat", Quantity: 1, Price: types.Price{ID: "price_pro_flat"}},
			{ID: "si_storage", Price: types.Price{ID: "price_pro_storage"}},
			{ID: "si_user", Quantity: 2, Price: types.Price{ID: "price_pro_user"}},
			{ID: "si_project", Quantity: 1, Price: types.Price{ID: "price_pro_project"}},
		},
	}
	f.processor.EXPECT().GetSubscription(gomock.Any(), "sub_1").Return(sub, nil)

	f.processor.EXPECT().UpdateSubscriptionItems(gomock.Any(), "sub_1", []types.LineItemUpdate{
		{ID: "si_flat", PriceID: "price_team_flat"},
		{ID: "si_storage", PriceID: "price_team_storage"},
		{ID: "si_user", Deleted: true},
		{ID: "si_project", Deleted: true},
	}).Return(sub, nil)

	gomock.InOrder(
		f.storage.EXPECT().SetTeamTier(gomock.Any(), int64(10), int64(3)).Return(nil),
		f.storage.EXPECT().CreateTierAddon(gomock.Any(), &types.TierAddon{
			TeamID:                 10,
			AdditionalUserCount:    -2,
			AdditionalProjectCount: -1,
		}).Return(&types.TierAddon{ID: 5}, nil),
	)

	if err := f.svc.UpdatePlan(context.Background(), 10, 3, ""); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestService_UpdatePlanWithoutBillingRequiresCheckout(t *testing.T) {
	f := newFixture(t, "billing.Service.UpdatePlan")

	team := &types.Team{ID: 10, Name: "research", OwnerID: 1, TierID: 1}
	f.expectState(team, freeTier(), nil, nil)
	f.storage.EXPECT().GetTier(gomock.Any(), int64(2)).Return(proTier(), nil)
	f.expectLimits(10, &types.TeamCounts{Users: 1, Projects: 1}, &types.AddonTotals{})

	// no customer, subscription or tier change may happen
	f.processor.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).Times(0)
	f.processor.EXPECT().CreateSubscription(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	f.storage.EXPECT().SetTeamTier(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := f.svc.UpdatePlan(context.Background(), 10, 2, "81.2.69.160")
	if StatusCode(err) != 422 || Message(err) != "No valid payment method" {
		t.Errorf("expected 422 No valid payment method, got %d %q", StatusCode(err), Message(err))
	}
}

func TestService_AddAddonRejectedWithoutProcessorCalls(t *testing.T) {
	tests := []struct {
		name   string
		tier   *types.Tier
		b      *types.Billing
		custom *types.CustomBilling
		want   string
	}{
		{
			name:   "custom billing",
			tier:   proTier(),
			custom: &types.CustomBilling{ID: 1, TeamID: 10},
			want:   "Addons are not available on a custom plan",
		},
		{
			name: "no billing",
			tier: proTier(),
			want: "No valid subscription",
		},
		{
			name: "free tier",
			tier: freeTier(),
			b:    billingRow(),
			want: "Addons are not available on the free plan",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, "billing.Service.AddAddon")

			team := &types.Team{ID: 10, TierID: tt.tier.ID}
			f.expectState(team, tt.tier, tt.b, tt.custom)

			err := f.svc.AddAddon(context.Background(), 10, &AddonRequest{Users: 1})

			var rejection *RejectionError
			if !errors.As(err, &rejection) {
				t.Fatalf("expected RejectionError, got %v", err)
			}
			if rejection.Message != tt.want {
				t.Errorf("expected %q, got %q", tt.want, rejection.Message)
			}
		})
	}
}

func TestService_AddAddonRequiresPaymentMethod(t *testing.T) {
	f := newFixture(t, "billing.Service.AddAddon")

	f.expectState(&types.Team{ID: 10, TierID: 2}, proTier(), billingRow(), nil)
	f.processor.EXPECT().HasDefaultPaymentMethod(gomock.Any(), "cus_1").Return(false, nil)

	err := f.svc.AddAddon(context.Background(), 10, &AddonRequest{Projects: 2})
	if StatusCode(err) != 422 || Message(err) != "No valid payment method" {
		t.Errorf("expected 422 No valid payment method, got %d %q", StatusCode(err), Message(err))
	}
}

func TestService_AddAddonUpsertsLinesAndRecordsDelta(t *testing.T) {
	f := newFixture(t, "billing.Service.AddAddon")

	tier := proTier()
	tier.BaseCollaboratorLimit = nil

	f.expectState(&types.Team{ID: 10, TierID: 2}, tier, billingRow(), nil)
	f.processor.EXPECT().HasDefaultPaymentMethod(gomock.Any(), "cus_1").Return(true, nil)
	f.storage.EXPECT().SumTierAddons(gomock.Any(), int64(10)).Return(&types.AddonTotals{Users: 3}, nil)
	f.processor.EXPECT().GetSubscription(gomock.Any(), "sub_1").Return(&types.Subscription{
		ID: "sub_1",
		Items: []types.LineItem{
			{ID: "si_flat", Quantity: 1, Price: types.Price{ID: "price_pro_flat"}},
			{ID: "si_user", Quantity: 3, Price: types.Price{ID: "price_pro_user"}},
		},
	}, nil)

	users, projects := int64(5), int64(4)
	f.processor.EXPECT().UpdateSubscriptionItems(gomock.Any(), "sub_1", []types.LineItemUpdate{
		{ID: "si_user", Quantity: &users},
		{PriceID: "price_pro_project", Quantity: &projects},
	}).Return(&types.Subscription{ID: "sub_1"}, nil)

	f.storage.EXPECT().CreateTierAddon(gomock.Any(), &types.TierAddon{
		TeamID:                 10,
		AdditionalUserCount:    2,
		AdditionalProjectCount: 4,
	}).Return(&types.TierAddon{ID: 7}, nil)

	err := f.svc.AddAddon(context.Background(), 10, &AddonRequest{Users: 2, Projects: 4, Collaborators: 3})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestService_AddAddonProcessorFailureWritesNothing(t *testing.T) {
	f := newFixture(t, "billing.Service.AddAddon")

	f.expectState(&types.Team{ID: 10, TierID: 2}, proTier(), billingRow(), nil)
	f.processor.EXPECT().HasDefaultPaymentMethod(gomock.Any(), "cus_1").Return(true, nil)
	f.storage.EXPECT().SumTierAddons(gomock.Any(), int64(10)).Return(&types.AddonTotals{}, nil)
	f.processor.EXPECT().GetSubscription(gomock.Any(), "sub_1").Return(&types.Subscription{ID: "sub_1"}, nil)
	f.processor.EXPECT().UpdateSubscriptionItems(gomock.Any(), "sub_1", gomock.Any()).Return(nil, context.DeadlineExceeded)

	err := f.svc.AddAddon(context.Background(), 10, &AddonRequest{Users: 1})

	var processorErr *ProcessorError
	if !errors.As(err, &processorErr) {
		t.Fatalf("expected ProcessorError, got %v", err)
	}
	if StatusCode(err) != 504 {
		t.Errorf("expected 504 on timeout, got %d", StatusCode(err))
	}
}

func TestService_Cancel(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(*fixture)
		wantStatus int
	}{
		{
			name: "no billing makes no external call",
			setup: func(f *fixture) {
				f.storage.EXPECT().GetBilling(gomock.Any(), int64(10)).Return(nil, storage.ErrNotFound)
			},
			wantStatus: 422,
		},
		{
			name: "already canceled",
			setup: func(f *fixture) {
				b := billingRow()
				b.CancelDate = &fixedNow
				f.storage.EXPECT().GetBilling(gomock.Any(), int64(10)).Return(b, nil)
			},
			wantStatus: 409,
		},
		{
			name: "processor leaves the subscription active",
			setup: func(f *fixture) {
				f.storage.EXPECT().GetBilling(gomock.Any(), int64(10)).Return(billingRow(), nil)
				f.processor.EXPECT().CancelSubscription(gomock.Any(), "sub_1").Return(&types.Subscription{ID: "sub_1", Status: "past_due"}, nil)
			},
			wantStatus: 500,
		},
		{
			name: "canceled team moves to the free tier without addons",
			setup: func(f *fixture) {
				f.storage.EXPECT().GetBilling(gomock.Any(), int64(10)).Return(billingRow(), nil)
				f.processor.EXPECT().CancelSubscription(gomock.Any(), "sub_1").Return(&types.Subscription{ID: "sub_1", Status: types.SubscriptionStatusCanceled}, nil)
				f.storage.EXPECT().SetBillingCancelDate(gomock.Any(), int64(10), fixedNow).Return(nil)
				f.storage.EXPECT().GetTeam(gomock.Any(), int64(10)).Return(&types.Team{ID: 10, TierID: 2}, nil)
				f.storage.EXPECT().SetTeamTier(gomock.Any(), int64(10), int64(1)).Return(nil)
				f.storage.EXPECT().SumTierAddons(gomock.Any(), int64(10)).Return(&types.AddonTotals{Users: 2, Collaborators: 1}, nil)
				f.storage.EXPECT().CreateTierAddon(gomock.Any(), &types.TierAddon{TeamID: 10, AdditionalUserCount: -2, AdditionalCollaboratorCount: -1}).
					Return(&types.TierAddon{ID: 7, TeamID: 10}, nil)
			},
		},
		{
			name: "canceled free team keeps its tier",
			setup: func(f *fixture) {
				f.storage.EXPECT().GetBilling(gomock.Any(), int64(10)).Return(billingRow(), nil)
				f.processor.EXPECT().CancelSubscription(gomock.Any(), "sub_1").Return(&types.Subscription{ID: "sub_1", Status: types.SubscriptionStatusCanceled}, nil)
				f.storage.EXPECT().SetBillingCancelDate(gomock.Any(), int64(10), fixedNow).Return(nil)
				f.storage.EXPECT().GetTeam(gomock.Any(), int64(10)).Return(&types.Team{ID: 10, TierID: 1}, nil)
				f.storage.EXPECT().SumTierAddons(gomock.Any(), int64(10)).Return(&types.AddonTotals{}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, "billing.Service.Cancel")
			tt.setup(f)

			err := f.svc.Cancel(context.Background(), 10)

			if tt.wantStatus == 0 {
				if err != nil {
					t.Fatalf("unexpected error %v", err)
				}
				return
			}

			if got := StatusCode(err); got != tt.wantStatus {
				t.Errorf("expected status %d, got %d (%v)", tt.wantStatus, got, err)
			}
		})
	}
}

func TestService_CreateSubscriptionLosingConcurrentFirstRead(t *testing.T) {
	tests := []struct {
		name     string
		existing *types.Billing
		orphan   bool
	}{
		{
			name:     "replayed subscription is the stored one",
			existing: &types.Billing{ID: 4, TeamID: 10, StripeCustomerID: "cus_new", SubscriptionID: "sub_new"},
		},
		{
			name:     "second subscription is canceled",
			existing: &types.Billing{ID: 4, TeamID: 10, StripeCustomerID: "cus_other", SubscriptionID: "sub_other"},
			orphan:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, "billing.Service.CreateSubscription")

			team := &types.Team{ID: 10, Name: "research", OwnerID: 1, TierID: 1}
			f.expectState(team, freeTier(), nil, nil)
			f.storage.EXPECT().GetTier(gomock.Any(), int64(1)).Return(freeTier(), nil)
			f.storage.EXPECT().GetUser(gomock.Any(), int64(1)).Return(&types.User{ID: 1, Email: "owner@example.com"}, nil)
			f.processor.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).Return("cus_new", nil)
			f.processor.EXPECT().CreateSubscription(gomock.Any(), "cus_new", []string{"price_storage_free"}, int64(0), gomock.Any()).
				Return(&types.Subscription{ID: "sub_new"}, nil)
			f.storage.EXPECT().CreateBilling(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			f.storage.EXPECT().GetBilling(gomock.Any(), int64(10)).Return(tt.existing, nil)

			if tt.orphan {
				f.processor.EXPECT().CancelSubscription(gomock.Any(), "sub_new").
					Return(&types.Subscription{ID: "sub_new", Status: types.SubscriptionStatusCanceled}, nil)
			}

			b, err := f.svc.CreateSubscription(context.Background(), 10, 1, false, "")

			if tt.orphan {
				if StatusCode(err) != 409 || Message(err) != "Team already has a subscription" {
					t.Errorf("expected 409 conflict, got %d %q", StatusCode(err), Message(err))
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if b.SubscriptionID != "sub_new" {
				t.Errorf("expected the stored billing, got %+v", b)
			}
		})
	}
}

func TestService_GetPlan(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	sub := &types.Subscription{
		ID:                 "sub_1",
		Status:             types.SubscriptionStatusActive,
		CurrentPeriodStart: &start,
		CurrentPeriodEnd:   &end,
		Items: []types.LineItem{
			{ID: "si_flat", Quantity: 1, Price: types.Price{ID: "price_pro_flat", Currency: "gbp", UnitAmount: 1500}},
			{ID: "si_storage", Price: types.Price{ID: "price_pro_storage", Tiers: []types.PriceTier{{UpTo: 10}, {UnitAmount: 2}}}},
			{ID: "si_user", Quantity: 3, Price: types.Price{ID: "price_pro_user", UnitAmount: 500}},
		},
	}

	t.Run("paid tier reports addons and billed usage", func(t *testing.T) {
		f := newFixture(t, "billing.Service.GetPlan")

		f.expectState(&types.Team{ID: 10, TierID: 2, Usage: 12000}, proTier(), billingRow(), nil)
		f.processor.EXPECT().GetSubscription(gomock.Any(), "sub_1").Return(sub, nil)
		f.processor.EXPECT().GetPrice(gomock.Any(), "price_pro_project").Return(&types.Price{ID: "price_pro_project", UnitAmount: 300}, nil)
		f.processor.EXPECT().GetPrice(gomock.Any(), "price_pro_collab").Return(&types.Price{ID: "price_pro_collab", UnitAmount: 200}, nil)

		plan, err := f.svc.GetPlan(context.Background(), 10, "")
		if err != nil {
			t.Fatalf("unexpected error %v", err)
		}

		if plan.BasePrice != 1500 || plan.Currency != "gbp" {
			t.Errorf("unexpected base price %d %s", plan.BasePrice, plan.Currency)
		}
		if plan.IncludedUsage != 10000 || plan.BilledUsage != 2000 || plan.StorageUnitPrice != 2 {
			t.Errorf("unexpected storage figures %+v", plan)
		}
		if plan.Users == nil || plan.Users.Quantity != 3 || plan.Users.UnitPrice != 500 {
			t.Errorf("unexpected users line %+v", plan.Users)
		}
		if plan.Projects == nil || plan.Projects.Quantity != 0 || plan.Projects.UnitPrice != 300 {
			t.Errorf("unexpected projects line %+v", plan.Projects)
		}
		if !plan.PeriodStart.Equal(start) || !plan.PeriodEnd.Equal(end) {
			t.Errorf("unexpected period %v - %v", plan.PeriodStart, plan.PeriodEnd)
		}
	})

	t.Run("free tier omits addons", func(t *testing.T) {
		f := newFixture(t, "billing.Service.GetPlan")

		f.expectState(&types.Team{ID: 10, TierID: 1, Usage: 10}, freeTier(), billingRow(), nil)
		f.processor.EXPECT().GetSubscription(gomock.Any(), "sub_1").Return(&types.Subscription{ID: "sub_1"}, nil)

		plan, err := f.svc.GetPlan(context.Background(), 10, "")
		if err != nil {
			t.Fatalf("unexpected error %v", err)
		}

		if plan.Users != nil || plan.Projects != nil || plan.Collaborators != nil {
			t.Errorf("expected no addon sections, got %+v", plan)
		}
	})

	t.Run("unbilled team is subscribed on first read", func(t *testing.T) {
		f := newFixture(t, "billing.Service.GetPlan")

		team := &types.Team{ID: 10, Name: "research", OwnerID: 1, TierID: 1}
		f.expectState(team, freeTier(), nil, nil)
		f.storage.EXPECT().GetUser(gomock.Any(), int64(1)).Return(&types.User{ID: 1, Email: "owner@example.com"}, nil)
		f.processor.EXPECT().CreateCustomer(gomock.Any(), &types.Customer{Email: "owner@example.com", Name: "research", Country: "GB", IdempotencyKey: "team-10-customer"}).Return("cus_new", nil)
		f.processor.EXPECT().CreateSubscription(gomock.Any(), "cus_new", []string{"price_storage_free"}, int64(0), gomock.Any()).
			Return(&types.Subscription{ID: "sub_new", CurrentPeriodStart: &start, CurrentPeriodEnd: &end}, nil)
		f.storage.EXPECT().CreateBilling(gomock.Any(), gomock.Any()).
			Return(&types.Billing{ID: 4, TeamID: 10, StripeCustomerID: "cus_new", SubscriptionID: "sub_new"}, nil)
		f.processor.EXPECT().GetSubscription(gomock.Any(), "sub_new").
			Return(&types.Subscription{ID: "sub_new", CurrentPeriodStart: &start, CurrentPeriodEnd: &end}, nil)

		plan, err := f.svc.GetPlan(context.Background(), 10, "10.0.0.4")
		if err != nil {
			t.Fatalf("unexpected error %v", err)
		}

		if !plan.PeriodStart.Equal(start) {
			t.Errorf("expected period start %v, got %v", start, plan.PeriodStart)
		}
	})

	t.Run("custom billing reads local dates only", func(t *testing.T) {
		f := newFixture(t, "billing.Service.GetPlan")

		f.expectState(&types.Team{ID: 10, TierID: 9}, &types.Tier{ID: 9, Name: "ACME", IsCustom: true}, nil, &types.CustomBilling{ID: 1, TeamID: 10, StartDate: &start, RenewalDate: &end})

		plan, err := f.svc.GetPlan(context.Background(), 10, "")
		if err != nil {
			t.Fatalf("unexpected error %v", err)
		}

		if !plan.IsCustom || !plan.PeriodEnd.Equal(end) {
			t.Errorf("unexpected custom plan %+v", plan)
		}
	})
}

func TestService_CreateCheckoutSession(t *testing.T) {
	t.Run("free tier", func(t *testing.T) {
		f := newFixture(t, "billing.Service.CreateCheckoutSession")

		f.expectState(&types.Team{ID: 10, TierID: 1}, freeTier(), nil, nil)
		f.storage.EXPECT().GetTier(gomock.Any(), int64(1)).Return(freeTier(), nil)

		_, err := f.svc.CreateCheckoutSession(context.Background(), &CheckoutInput{TeamID: 10, TierID: 1, UserID: 1, Email: "owner@example.com"})
		if StatusCode(err) != 409 || Message(err) != "Can't pay for a free tier" {
			t.Errorf("expected 409 free tier rejection, got %d %q", StatusCode(err), Message(err))
		}
	})

	t.Run("subscription checkout tagged with team and tier", func(t *testing.T) {
		f := newFixture(t, "billing.Service.CreateCheckoutSession")

		f.expectState(&types.Team{ID: 10, TierID: 1}, freeTier(), nil, nil)
		f.storage.EXPECT().GetTier(gomock.Any(), int64(2)).Return(proTier(), nil)

		one := int64(1)
		f.processor.EXPECT().CreateCheckoutSession(gomock.Any(), &payments.CheckoutRequest{
			Mode:              payments.CheckoutModeSubscription,
			CustomerEmail:     "owner@example.com",
			ClientReferenceID: "1",
			Lines:             []payments.CheckoutLine{{PriceID: "price_pro_flat", Quantity: &one}, {PriceID: "price_pro_storage"}},
			Metadata:          map[string]string{payments.MetadataTeamID: "10", payments.MetadataTierID: "2"},
		}).Return(&types.CheckoutSession{ID: "cs_1", URL: "https://checkout.example.com/cs_1"}, nil)

		session, err := f.svc.CreateCheckoutSession(context.Background(), &CheckoutInput{TeamID: 10, TierID: 2, UserID: 1, Email: "owner@example.com"})
		if err != nil {
			t.Fatalf("unexpected error %v", err)
		}
		if session.ID != "cs_1" {
			t.Errorf("expected session cs_1, got %s", session.ID)
		}
	})
}

func TestPlanItemUpdates(t *testing.T) {
	free := freeTier()
	pro := proTier()

	sub := &types.Subscription{Items: []types.LineItem{
		{ID: "si_storage", Price: types.Price{ID: "price_storage_free"}},
	}}

	got := planItemUpdates(free, pro, sub)
	want := []types.LineItemUpdate{
		{PriceID: "price_pro_flat"},
		{ID: "si_storage", PriceID: "price_pro_storage"},
	}

	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("update %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestIsPublicIP(t *testing.T) {
	for ip, want := range map[string]bool{
		"81.2.69.160":   true,
		"2a00:1450::1":  true,
		"10.0.0.4":      false,
		"192.168.1.1":   false,
		"127.0.0.1":     false,
		"::1":           false,
		"":              false,
		"not-an-ip":     false,
		"169.254.10.10": false,
	} {
		if got := isPublicIP(ip); got != want {
			t.Errorf("%q: expected %v, got %v", ip, want, got)
		}
	}
}
