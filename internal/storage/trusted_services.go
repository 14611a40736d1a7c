// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/billing-service/internal/types"
)

var trustedServiceColumns = []string{"id", "user_id", "team_id", "name", "base_url", "created_date"}

func scanTrustedService(row sq.RowScanner) (*types.TrustedService, error) {
	var ts types.TrustedService
	if err := row.Scan(&ts.ID, &ts.UserID, &ts.TeamID, &ts.Name, &ts.BaseURL, &ts.CreatedDate); err != nil {
		return nil, err
	}
	return &ts, nil
}

func (s *Storage) CreateTrustedService(ctx context.Context, ts *types.TrustedService) (*types.TrustedService, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTrustedService")
	defer span.End()

	created, err := scanTrustedService(
		s.db.Statement(ctx).
			Insert("trusted_services").
			Columns("user_id", "team_id", "name", "base_url").
			Values(ts.UserID, ts.TeamID, ts.Name, ts.BaseURL).
			Suffix("RETURNING "+joinColumns(trustedServiceColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, writeError("insert trusted service", err, "service account already registered")
	}

	return created, nil
}

func (s *Storage) ListTrustedServices(ctx context.Context, teamID int64) ([]*types.TrustedService, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTrustedServices")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(trustedServiceColumns...).
		From("trusted_services").
		Where(sq.Eq{"team_id": teamID}).
		OrderBy("id").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list trusted services: %w", err)
	}
	defer rows.Close()

	services := make([]*types.TrustedService, 0)
	for rows.Next() {
		ts, err := scanTrustedService(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trusted service: %w", err)
		}
		services = append(services, ts)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trusted service rows: %w", err)
	}

	return services, nil
}
