// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/canonical/billing-service/internal/payments"
	"github.com/canonical/billing-service/internal/types"
)

// StorageInterface defines the storage operations required by the webhooks package.
// It is a subset of the internal/storage interface.
type StorageInterface interface {
	CreateBilling(ctx context.Context, b *types.Billing) (*types.Billing, error)
	SetTeamTier(ctx context.Context, teamID, tierID int64) error
}

// ProcessorInterface is the subset of the payment processor client used to complete events
type ProcessorInterface interface {
	ConstructEvent(payload []byte, signature string) (*payments.Event, error)
	GetSubscription(ctx context.Context, subscriptionID string) (*types.Subscription, error)
	GetSetupIntent(ctx context.Context, setupIntentID string) (*payments.SetupIntent, error)
	SetDefaultPaymentMethod(ctx context.Context, customerID, paymentMethodID string) error
}

// ServiceInterface defines the webhook service operations.
type ServiceInterface interface {
	HandleEvent(ctx context.Context, payload []byte, signature string) error
}
