// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"context"
	"time"

	"github.com/canonical/billing-service/internal/payments"
	"github.com/canonical/billing-service/internal/types"
)

type ServiceInterface interface {
	GetTeam(ctx context.Context, teamID int64) (*types.Team, error)
	GetLimits(ctx context.Context, teamID int64) (*Limits, error)
	GetPlan(ctx context.Context, teamID int64, clientIP string) (*Plan, error)
	ListPlans(ctx context.Context, teamID int64) ([]*PlanOption, error)
	CreateSubscription(ctx context.Context, teamID, tierID int64, trial bool, clientIP string) (*types.Billing, error)
	UpdatePlan(ctx context.Context, teamID, tierID int64, clientIP string) error
	AddAddon(ctx context.Context, teamID int64, req *AddonRequest) error
	Cancel(ctx context.Context, teamID int64) error
	CreateCheckoutSession(ctx context.Context, req *CheckoutInput) (*types.CheckoutSession, error)
	CreateSetupSession(ctx context.Context, teamID int64) (*types.CheckoutSession, error)
	ListInvoices(ctx context.Context, teamID int64) ([]*types.Invoice, error)
	GetAddonPrices(ctx context.Context, teamID int64) (*AddonPrices, error)
	GetPaymentMethod(ctx context.Context, teamID int64) (*PaymentMethodStatus, error)
}

// StorageInterface is the subset of the persistence layer the billing service needs
type StorageInterface interface {
	GetTeam(ctx context.Context, id int64) (*types.Team, error)
	SetTeamTier(ctx context.Context, teamID, tierID int64) error
	CountTeamsOnTier(ctx context.Context, tierID, excludeTeamID int64) (int64, error)
	GetTeamCounts(ctx context.Context, teamID int64) (*types.TeamCounts, error)
	GetTier(ctx context.Context, id int64) (*types.Tier, error)
	ListTiers(ctx context.Context) ([]*types.Tier, error)
	SumTierAddons(ctx context.Context, teamID int64) (*types.AddonTotals, error)
	CreateTierAddon(ctx context.Context, a *types.TierAddon) (*types.TierAddon, error)
	GetBilling(ctx context.Context, teamID int64) (*types.Billing, error)
	CreateBilling(ctx context.Context, b *types.Billing) (*types.Billing, error)
	SetBillingCancelDate(ctx context.Context, teamID int64, at time.Time) error
	GetCustomBilling(ctx context.Context, teamID int64) (*types.CustomBilling, error)
	GetUser(ctx context.Context, id int64) (*types.User, error)
}

// ProcessorInterface is the subset of the payment processor client the billing service needs
type ProcessorInterface interface {
	CreateCustomer(ctx context.Context, customer *types.Customer) (string, error)
	HasDefaultPaymentMethod(ctx context.Context, customerID string) (bool, error)
	CreateSubscription(ctx context.Context, customerID string, priceIDs []string, trialDays int64, metadata map[string]string) (*types.Subscription, error)
	GetSubscription(ctx context.Context, subscriptionID string) (*types.Subscription, error)
	UpdateSubscriptionItems(ctx context.Context, subscriptionID string, items []types.LineItemUpdate) (*types.Subscription, error)
	CancelSubscription(ctx context.Context, subscriptionID string) (*types.Subscription, error)
	GetPrice(ctx context.Context, priceID string) (*types.Price, error)
	CreateCheckoutSession(ctx context.Context, req *payments.CheckoutRequest) (*types.CheckoutSession, error)
	ListInvoices(ctx context.Context, customerID string, limit int64) ([]*types.Invoice, error)
}
