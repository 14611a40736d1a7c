// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/billing-service/internal/types"
)

var tierColumns = []string{
	"id",
	"name",
	"base_user_limit",
	"base_project_limit",
	"base_collaborator_limit",
	"base_storage_limit",
	"stripe_flat_price_id",
	"stripe_storage_price_id",
	"stripe_user_price_id",
	"stripe_collaborator_price_id",
	"stripe_project_price_id",
	"is_custom",
	"custom_subscription_id",
}

func scanTier(row sq.RowScanner) (*types.Tier, error) {
	var t types.Tier
	err := row.Scan(
		&t.ID,
		&t.Name,
		&t.BaseUserLimit,
		&t.BaseProjectLimit,
		&t.BaseCollaboratorLimit,
		&t.BaseStorageLimit,
		&t.FlatPriceID,
		&t.StoragePriceID,
		&t.UserPriceID,
		&t.CollaboratorPriceID,
		&t.ProjectPriceID,
		&t.IsCustom,
		&t.CustomSubscriptionID,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Storage) GetTier(ctx context.Context, id int64) (*types.Tier, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTier")
	defer span.End()

	t, err := scanTier(
		s.db.Statement(ctx).
			Select(tierColumns...).
			From("tiers").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tier: %w", err)
	}

	return t, nil
}

func (s *Storage) ListTiers(ctx context.Context) ([]*types.Tier, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTiers")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(tierColumns...).
		From("tiers").
		OrderBy("id").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tiers: %w", err)
	}
	defer rows.Close()

	var tiers []*types.Tier
	for rows.Next() {
		t, err := scanTier(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tier: %w", err)
		}
		tiers = append(tiers, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tier rows: %w", err)
	}

	return tiers, nil
}

func (s *Storage) CreateTier(ctx context.Context, t *types.Tier) (*types.Tier, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTier")
	defer span.End()

	tier, err := scanTier(
		s.db.Statement(ctx).
			Insert("tiers").
			Columns(tierColumns[1:]...).
			Values(
				t.Name,
				t.BaseUserLimit,
				t.BaseProjectLimit,
				t.BaseCollaboratorLimit,
				t.BaseStorageLimit,
				t.FlatPriceID,
				t.StoragePriceID,
				t.UserPriceID,
				t.CollaboratorPriceID,
				t.ProjectPriceID,
				t.IsCustom,
				t.CustomSubscriptionID,
			).
			Suffix("RETURNING "+joinColumns(tierColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, writeError("insert tier", err, "price or subscription already bound to a tier")
	}

	return tier, nil
}
