// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/canonical/billing-service/internal/types"
)

type StorageInterface interface {
	GetTeam(ctx context.Context, id int64) (*types.Team, error)
	GetTeamByUserID(ctx context.Context, userID int64) (*types.Team, error)
	ListTeams(ctx context.Context) ([]*types.Team, error)
	SetTeamTier(ctx context.Context, teamID, tierID int64) error
	UpdateTeamUsage(ctx context.Context, teamID, usage int64) error
	CountTeamsOnTier(ctx context.Context, tierID, excludeTeamID int64) (int64, error)
	GetTeamCounts(ctx context.Context, teamID int64) (*types.TeamCounts, error)

	GetTier(ctx context.Context, id int64) (*types.Tier, error)
	ListTiers(ctx context.Context) ([]*types.Tier, error)
	CreateTier(ctx context.Context, t *types.Tier) (*types.Tier, error)

	SumTierAddons(ctx context.Context, teamID int64) (*types.AddonTotals, error)
	CreateTierAddon(ctx context.Context, a *types.TierAddon) (*types.TierAddon, error)

	GetBilling(ctx context.Context, teamID int64) (*types.Billing, error)
	CreateBilling(ctx context.Context, b *types.Billing) (*types.Billing, error)
	SetBillingCancelDate(ctx context.Context, teamID int64, at time.Time) error
	GetCustomBilling(ctx context.Context, teamID int64) (*types.CustomBilling, error)
	CreateCustomBilling(ctx context.Context, b *types.CustomBilling) (*types.CustomBilling, error)

	GetUser(ctx context.Context, id int64) (*types.User, error)
	GetUserByUsername(ctx context.Context, username string) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	GetUserProfile(ctx context.Context, userID int64) (*types.UserProfile, error)
	CreateUserProfile(ctx context.Context, p *types.UserProfile) error
	ListTeamMembers(ctx context.Context, teamID int64) ([]*types.TeamMember, error)
	ListUserTeams(ctx context.Context) (map[int64]int64, error)
	DeactivateTeamUsers(ctx context.Context, teamID int64) (int64, error)

	CreateInvite(ctx context.Context, i *types.Invite) (*types.Invite, error)
	GetInviteByUID(ctx context.Context, uid string) (*types.Invite, error)
	GetInviteByEmail(ctx context.Context, email string) (*types.Invite, error)
	ListPendingInvites(ctx context.Context, teamID int64) ([]*types.Invite, error)
	AcceptInvite(ctx context.Context, id int64, at time.Time) error

	CreateUsages(ctx context.Context, usages []*types.Usage) error
	SumUserUsages(ctx context.Context) (map[int64]int64, error)
}
