// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"context"

	"github.com/canonical/billing-service/internal/types"
)

type ServiceInterface interface {
	ListTiers(ctx context.Context, includeCustom bool) ([]*types.Tier, error)
	GetTier(ctx context.Context, id int64) (*types.Tier, error)
	CreateTier(ctx context.Context, subject string, req *TierRequest) (*types.Tier, error)
	CreateCustomBilling(ctx context.Context, subject string, teamID int64, req *CustomBillingRequest) (*types.CustomBilling, error)
	SetUserActive(ctx context.Context, subject, email string, active bool) (*types.User, error)
}

type StorageInterface interface {
	ListTiers(ctx context.Context) ([]*types.Tier, error)
	GetTier(ctx context.Context, id int64) (*types.Tier, error)
	CreateTier(ctx context.Context, t *types.Tier) (*types.Tier, error)
	GetTeam(ctx context.Context, id int64) (*types.Team, error)
	CountTeamsOnTier(ctx context.Context, tierID, excludeTeamID int64) (int64, error)
	CreateCustomBilling(ctx context.Context, b *types.CustomBilling) (*types.CustomBilling, error)
	SetTeamTier(ctx context.Context, teamID, tierID int64) error
	SetUserActive(ctx context.Context, email string, active bool) (*types.User, error)
}
