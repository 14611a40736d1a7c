// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package payments

import (
	"context"
	"time"

	"github.com/canonical/billing-service/internal/types"
)

// ProcessorInterface is the subset of the payment processor API the service relies on
type ProcessorInterface interface {
	CreateCustomer(ctx context.Context, customer *types.Customer) (string, error)
	HasDefaultPaymentMethod(ctx context.Context, customerID string) (bool, error)
	SetDefaultPaymentMethod(ctx context.Context, customerID, paymentMethodID string) error
	CreateSubscription(ctx context.Context, customerID string, priceIDs []string, trialDays int64, metadata map[string]string) (*types.Subscription, error)
	GetSubscription(ctx context.Context, subscriptionID string) (*types.Subscription, error)
	UpdateSubscriptionItems(ctx context.Context, subscriptionID string, items []types.LineItemUpdate) (*types.Subscription, error)
	CancelSubscription(ctx context.Context, subscriptionID string) (*types.Subscription, error)
	ReportUsage(ctx context.Context, itemID string, quantity int64, at time.Time) error
	GetPrice(ctx context.Context, priceID string) (*types.Price, error)
	GetSetupIntent(ctx context.Context, setupIntentID string) (*SetupIntent, error)
	CreateCheckoutSession(ctx context.Context, req *CheckoutRequest) (*types.CheckoutSession, error)
	ListInvoices(ctx context.Context, customerID string, limit int64) ([]*types.Invoice, error)
	ConstructEvent(payload []byte, signature string) (*Event, error)
}
