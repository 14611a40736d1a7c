// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

//go:build integration

package storage

import (
	"context"
	"testing"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/canonical/billing-service/internal/db"
	"github.com/canonical/billing-service/internal/logging"
	"github.com/canonical/billing-service/internal/monitoring"
	"github.com/canonical/billing-service/internal/tracing"
	"github.com/canonical/billing-service/internal/types"
	"github.com/canonical/billing-service/migrations"
)

func setupDatabase(t *testing.T) (*Storage, *db.DBClient) {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("billing"),
		postgres.WithUsername("billing"),
		postgres.WithPassword("billing"),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test", logger)

	client, err := db.NewDBClient(
		db.Config{DSN: dsn, MaxConns: 4, MinConns: 1, MaxConnLifetime: time.Hour, MaxConnIdleTime: time.Minute},
		tracer,
		monitor,
		logger,
	)
	require.NoError(t, err)
	t.Cleanup(client.Close)

	provider, err := goose.NewProvider(goose.DialectPostgres, client.DB(), migrations.EmbedMigrations)
	require.NoError(t, err)
	_, err = provider.Up(ctx)
	require.NoError(t, err)

	return NewStorage(client, tracer, monitor, logger), client
}

func TestStorageIntegration(t *testing.T) {
	ctx := context.Background()
	s, client := setupDatabase(t)

	seed := []string{
		`INSERT INTO users (id, email, username) VALUES (1, 'owner@example.com', 'owner'), (2, 'collab@example.com', 'collab'), (3, 'member@example.com', 'member'), (4, 'dave@example.com', 'dave'), (5, 'backup@example.com', 'backup')`,
		`INSERT INTO teams (id, name, owner_id, tier_id, usage) VALUES (10, 'research', 1, 1, 0)`,
		`INSERT INTO user_profiles (user_id, team_id, name, is_collaborator) VALUES (1, 10, 'Owner', FALSE), (2, 10, 'Collab', TRUE), (3, 10, 'Member', FALSE)`,
		`INSERT INTO collections (uid, owner_id) VALUES ('project-one-uid-0000000', 1), ('project-two-uid-0000000', 3)`,
		`INSERT INTO collections (uid, owner_id, deleted) VALUES ('project-old-uid-0000000', 1, TRUE)`,
		`INSERT INTO invites (uid, from_team_id, email, is_collaborator) VALUES ('invite-uid-00000000000', 10, 'new@example.com', FALSE)`,
	}
	for _, stmt := range seed {
		_, err := client.DB().ExecContext(ctx, stmt)
		require.NoError(t, err)
	}

	t.Run("default tier is seeded", func(t *testing.T) {
		tier, err := s.GetTier(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "COMMUNITY", tier.Name)
		assert.False(t, tier.IsPaid())
	})

	t.Run("team counts", func(t *testing.T) {
		counts, err := s.GetTeamCounts(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, &types.TeamCounts{Users: 3, Projects: 2, Collaborators: 1}, counts)
	})

	t.Run("addon ledger sums deltas", func(t *testing.T) {
		_, err := s.CreateTierAddon(ctx, &types.TierAddon{TeamID: 10, AdditionalUserCount: 2})
		require.NoError(t, err)
		_, err = s.CreateTierAddon(ctx, &types.TierAddon{TeamID: 10, AdditionalUserCount: 1, AdditionalProjectCount: 4})
		require.NoError(t, err)

		totals, err := s.SumTierAddons(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, &types.AddonTotals{Users: 3, Projects: 4}, totals)
	})

	t.Run("billing is unique per customer", func(t *testing.T) {
		_, err := s.GetBilling(ctx, 10)
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = s.CreateBilling(ctx, &types.Billing{TeamID: 10, StripeCustomerID: "cus_1", SubscriptionID: "sub_1"})
		require.NoError(t, err)

		_, err = s.CreateBilling(ctx, &types.Billing{TeamID: 10, StripeCustomerID: "cus_1", SubscriptionID: "sub_1"})
		assert.ErrorIs(t, err, ErrDuplicateKey)

		b, err := s.GetBilling(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, "sub_1", b.SubscriptionID)
	})

	t.Run("suspension is applied once", func(t *testing.T) {
		n, err := s.DeactivateTeamUsers(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)

		n, err = s.DeactivateTeamUsers(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)
	})

	t.Run("enabling lifts the suspension", func(t *testing.T) {
		u, err := s.SetUserActive(ctx, "owner@example.com", true)
		require.NoError(t, err)
		assert.True(t, u.IsActive)

		var verified bool
		require.NoError(t, client.DB().QueryRowContext(ctx, `SELECT email_verified IS NOT NULL FROM users WHERE id = 1`).Scan(&verified))
		assert.True(t, verified)

		_, err = s.SetUserActive(ctx, "ghost@example.com", true)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("signup opens one team per owner", func(t *testing.T) {
		team, err := s.CreateTeam(ctx, &types.Team{Name: "lab", OwnerID: 4, TierID: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(0), team.Usage)

		_, err = s.CreateTeam(ctx, &types.Team{Name: "lab again", OwnerID: 4, TierID: 1})
		assert.ErrorIs(t, err, ErrDuplicateKey)

		require.NoError(t, s.CreateUserProfile(ctx, &types.UserProfile{UserID: 4, TeamID: team.ID, Name: "Dave"}))

		got, err := s.GetTeamByUserID(ctx, 4)
		require.NoError(t, err)
		assert.Equal(t, team.ID, got.ID)

		require.NoError(t, s.CreateUserProfile(ctx, &types.UserProfile{UserID: 5, TeamID: team.ID, Name: "backup", IsTrustedService: true}))
		_, err = s.CreateTrustedService(ctx, &types.TrustedService{UserID: 5, TeamID: team.ID, Name: "backup", BaseURL: "https://backup.example.com"})
		require.NoError(t, err)

		services, err := s.ListTrustedServices(ctx, team.ID)
		require.NoError(t, err)
		require.Len(t, services, 1)
		assert.Equal(t, "backup", services[0].Name)

		// service accounts don't take a seat
		counts, err := s.GetTeamCounts(ctx, team.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), counts.Users)
	})
}
