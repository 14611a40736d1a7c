// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	"github.com/canonical/billing-service/internal/types"
)

// CreateUsages appends the daily audit samples in a single statement
func (s *Storage) CreateUsages(ctx context.Context, usages []*types.Usage) error {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUsages")
	defer span.End()

	if len(usages) == 0 {
		return nil
	}

	query := s.db.Statement(ctx).
		Insert("usages").
		Columns("user_id", "date", "usage")

	for _, u := range usages {
		query = query.Values(u.UserID, u.Date, u.Usage)
	}

	if _, err := query.ExecContext(ctx); err != nil {
		return writeError("insert usages", err, "usage sample already recorded")
	}

	return nil
}

// SumUserUsages returns the running total of the audit samples of every user
func (s *Storage) SumUserUsages(ctx context.Context) (map[int64]int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.SumUserUsages")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("user_id", "COALESCE(SUM(usage), 0)").
		From("usages").
		GroupBy("user_id").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum usages: %w", err)
	}
	defer rows.Close()

	totals := make(map[int64]int64)
	for rows.Next() {
		var userID, total int64
		if err := rows.Scan(&userID, &total); err != nil {
			return nil, fmt.Errorf("failed to scan usage total: %w", err)
		}
		totals[userID] = total
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating usage rows: %w", err)
	}

	return totals, nil
}
