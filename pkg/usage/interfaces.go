// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package usage

import (
	"context"
	"time"

	"github.com/canonical/billing-service/internal/email"
	"github.com/canonical/billing-service/internal/types"
)

// SourceInterface lists the storage units holding user data
type SourceInterface interface {
	List(ctx context.Context) ([]Entry, error)
}

type StorageInterface interface {
	ListUserTeams(ctx context.Context) (map[int64]int64, error)
	SumUserUsages(ctx context.Context) (map[int64]int64, error)
	CreateUsages(ctx context.Context, usages []*types.Usage) error
	ListTeams(ctx context.Context) ([]*types.Team, error)
	UpdateTeamUsage(ctx context.Context, teamID, usage int64) error
	GetTier(ctx context.Context, id int64) (*types.Tier, error)
	GetBilling(ctx context.Context, teamID int64) (*types.Billing, error)
	GetCustomBilling(ctx context.Context, teamID int64) (*types.CustomBilling, error)
	GetUser(ctx context.Context, id int64) (*types.User, error)
	DeactivateTeamUsers(ctx context.Context, teamID int64) (int64, error)
}

type ProcessorInterface interface {
	GetSubscription(ctx context.Context, subscriptionID string) (*types.Subscription, error)
	ReportUsage(ctx context.Context, itemID string, quantity int64, at time.Time) error
}

type SenderInterface interface {
	Send(ctx context.Context, msg *email.Message) error
}

type CollectorInterface interface {
	Collect(ctx context.Context) (*Result, error)
}

type ReporterInterface interface {
	Report(ctx context.Context, teams []*types.Team) error
}

// LockInterface keeps a single replica running the daily job
type LockInterface interface {
	Acquire(ctx context.Context) (bool, error)
	Release(ctx context.Context) error
}

type JobInterface interface {
	Run(ctx context.Context) error
}
