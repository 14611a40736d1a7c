// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/billing-service/internal/types"
)

var billingColumns = []string{
	"id",
	"team_id",
	"stripe_customer_id",
	"subscription_id",
	"start_date",
	"renewal_date",
	"trial_start",
	"trial_end",
	"cancel_date",
}

var customBillingColumns = []string{"id", "team_id", "start_date", "renewal_date", "cancel_date"}

func scanBilling(row sq.RowScanner) (*types.Billing, error) {
	var b types.Billing
	err := row.Scan(
		&b.ID,
		&b.TeamID,
		&b.StripeCustomerID,
		&b.SubscriptionID,
		&b.StartDate,
		&b.RenewalDate,
		&b.TrialStart,
		&b.TrialEnd,
		&b.CancelDate,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func scanCustomBilling(row sq.RowScanner) (*types.CustomBilling, error) {
	var b types.CustomBilling
	if err := row.Scan(&b.ID, &b.TeamID, &b.StartDate, &b.RenewalDate, &b.CancelDate); err != nil {
		return nil, err
	}
	return &b, nil
}

// GetBilling returns ErrNotFound for teams that never had a processor subscription
func (s *Storage) GetBilling(ctx context.Context, teamID int64) (*types.Billing, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetBilling")
	defer span.End()

	b, err := scanBilling(
		s.db.Statement(ctx).
			Select(billingColumns...).
			From("billings").
			Where(sq.Eq{"team_id": teamID}).
			QueryRowContext(ctx),
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get billing: %w", err)
	}

	return b, nil
}

// CreateBilling fails with ErrDuplicateKey when the team, customer or subscription
// is already recorded, which is what makes webhook redelivery harmless
func (s *Storage) CreateBilling(ctx context.Context, b *types.Billing) (*types.Billing, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateBilling")
	defer span.End()

	billing, err := scanBilling(
		s.db.Statement(ctx).
			Insert("billings").
			Columns(billingColumns[1:]...).
			Values(
				b.TeamID,
				b.StripeCustomerID,
				b.SubscriptionID,
				b.StartDate,
				b.RenewalDate,
				b.TrialStart,
				b.TrialEnd,
				b.CancelDate,
			).
			// a clash leaves the transaction usable and returns no row
			Suffix("ON CONFLICT DO NOTHING RETURNING "+joinColumns(billingColumns)).
			QueryRowContext(ctx),
	)
	if isNoRows(err) {
		return nil, fmt.Errorf("billing of team %d already exists: %w", b.TeamID, ErrDuplicateKey)
	}
	if err != nil {
		return nil, writeError("insert billing", err, "billing already exists")
	}

	return billing, nil
}

func (s *Storage) SetBillingCancelDate(ctx context.Context, teamID int64, at time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetBillingCancelDate")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("billings").
		Set("cancel_date", at).
		Where(sq.Eq{"team_id": teamID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to set billing cancel date: %w", err)
	}

	return expectAffected(res)
}

func (s *Storage) GetCustomBilling(ctx context.Context, teamID int64) (*types.CustomBilling, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCustomBilling")
	defer span.End()

	b, err := scanCustomBilling(
		s.db.Statement(ctx).
			Select(customBillingColumns...).
			From("custom_billings").
			Where(sq.Eq{"team_id": teamID}).
			QueryRowContext(ctx),
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get custom billing: %w", err)
	}

	return b, nil
}

func (s *Storage) CreateCustomBilling(ctx context.Context, b *types.CustomBilling) (*types.CustomBilling, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateCustomBilling")
	defer span.End()

	billing, err := scanCustomBilling(
		s.db.Statement(ctx).
			Insert("custom_billings").
			Columns(customBillingColumns[1:]...).
			Values(b.TeamID, b.StartDate, b.RenewalDate, b.CancelDate).
			Suffix("RETURNING "+joinColumns(customBillingColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, writeError("insert custom billing", err, "custom billing already exists")
	}

	return billing, nil
}

// SumTierAddons folds the addon ledger of a team into totals
func (s *Storage) SumTierAddons(ctx context.Context, teamID int64) (*types.AddonTotals, error) {
	ctx, span := s.tracer.Start(ctx, "storage.SumTierAddons")
	defer span.End()

	var totals types.AddonTotals
	err := s.db.Statement(ctx).
		Select(
			"COALESCE(SUM(additional_user_count), 0)",
			"COALESCE(SUM(additional_project_count), 0)",
			"COALESCE(SUM(additional_collaborator_count), 0)",
		).
		From("tier_addons").
		Where(sq.Eq{"team_id": teamID}).
		QueryRowContext(ctx).
		Scan(&totals.Users, &totals.Projects, &totals.Collaborators)
	if err != nil {
		return nil, fmt.Errorf("failed to sum tier addons: %w", err)
	}

	return &totals, nil
}

func (s *Storage) CreateTierAddon(ctx context.Context, a *types.TierAddon) (*types.TierAddon, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTierAddon")
	defer span.End()

	var addon types.TierAddon
	err := s.db.Statement(ctx).
		Insert("tier_addons").
		Columns("team_id", "additional_user_count", "additional_project_count", "additional_collaborator_count").
		Values(a.TeamID, a.AdditionalUserCount, a.AdditionalProjectCount, a.AdditionalCollaboratorCount).
		Suffix("RETURNING id, team_id, additional_user_count, additional_project_count, additional_collaborator_count, created_date").
		QueryRowContext(ctx).
		Scan(
			&addon.ID,
			&addon.TeamID,
			&addon.AdditionalUserCount,
			&addon.AdditionalProjectCount,
			&addon.AdditionalCollaboratorCount,
			&addon.CreatedAt,
		)
	if err != nil {
		return nil, writeError("insert tier addon", err, "tier addon already exists")
	}

	return &addon, nil
}
