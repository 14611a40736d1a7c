// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/billing-service/internal/types"
)

var teamColumns = []string{"t.id", "t.name", "t.owner_id", "t.tier_id", "t.usage"}

func scanTeam(row sq.RowScanner) (*types.Team, error) {
	var t types.Team
	if err := row.Scan(&t.ID, &t.Name, &t.OwnerID, &t.TierID, &t.Usage); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Storage) GetTeam(ctx context.Context, id int64) (*types.Team, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTeam")
	defer span.End()

	t, err := scanTeam(
		s.db.Statement(ctx).
			Select(teamColumns...).
			From("teams t").
			Where(sq.Eq{"t.id": id}).
			QueryRowContext(ctx),
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	return t, nil
}

// GetTeamByUserID resolves the team a user belongs to through its profile
func (s *Storage) GetTeamByUserID(ctx context.Context, userID int64) (*types.Team, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTeamByUserID")
	defer span.End()

	t, err := scanTeam(
		s.db.Statement(ctx).
			Select(teamColumns...).
			From("teams t").
			Join("user_profiles p ON p.team_id = t.id").
			Where(sq.Eq{"p.user_id": userID}).
			QueryRowContext(ctx),
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get team for user: %w", err)
	}

	return t, nil
}

func (s *Storage) ListTeams(ctx context.Context) ([]*types.Team, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTeams")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(teamColumns...).
		From("teams t").
		OrderBy("t.id").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	defer rows.Close()

	var teams []*types.Team
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating team rows: %w", err)
	}

	return teams, nil
}

// CreateTeam opens a team owned by t.OwnerID, an owner holds at most one team
func (s *Storage) CreateTeam(ctx context.Context, t *types.Team) (*types.Team, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTeam")
	defer span.End()

	team, err := scanTeam(
		s.db.Statement(ctx).
			Insert("teams").
			Columns("name", "owner_id", "tier_id").
			Values(t.Name, t.OwnerID, t.TierID).
			Suffix("RETURNING id, name, owner_id, tier_id, usage").
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, writeError("insert team", err, "user already owns a team")
	}

	return team, nil
}

func (s *Storage) SetTeamTier(ctx context.Context, teamID, tierID int64) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetTeamTier")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("teams").
		Set("tier_id", tierID).
		Where(sq.Eq{"id": teamID}).
		ExecContext(ctx)
	if err != nil {
		return writeError("set team tier", err, "team tier conflict")
	}

	return expectAffected(res)
}

func (s *Storage) UpdateTeamUsage(ctx context.Context, teamID, usage int64) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateTeamUsage")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("teams").
		Set("usage", usage).
		Where(sq.Eq{"id": teamID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update team usage: %w", err)
	}

	return expectAffected(res)
}

// CountTeamsOnTier counts the teams other than excludeTeamID referencing the tier
func (s *Storage) CountTeamsOnTier(ctx context.Context, tierID, excludeTeamID int64) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountTeamsOnTier")
	defer span.End()

	var count int64
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("teams").
		Where(sq.Eq{"tier_id": tierID}).
		Where(sq.NotEq{"id": excludeTeamID}).
		QueryRowContext(ctx).
		Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count teams on tier: %w", err)
	}

	return count, nil
}

// GetTeamCounts returns the seats and projects a team consumes, pending invites
// count against the seat type they were issued for
func (s *Storage) GetTeamCounts(ctx context.Context, teamID int64) (*types.TeamCounts, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTeamCounts")
	defer span.End()

	counts := new(types.TeamCounts)

	var users, collaborators int64
	err := s.db.Statement(ctx).
		Select(
			"COUNT(*) FILTER (WHERE NOT p.is_collaborator AND NOT p.is_trusted_service)",
			"COUNT(*) FILTER (WHERE p.is_collaborator)",
		).
		From("user_profiles p").
		Join("users u ON u.id = p.user_id").
		Where(sq.Eq{"p.team_id": teamID, "u.is_active": true}).
		QueryRowContext(ctx).
		Scan(&users, &collaborators)
	if err != nil {
		return nil, fmt.Errorf("failed to count team members: %w", err)
	}

	var invitedUsers, invitedCollaborators int64
	err = s.db.Statement(ctx).
		Select(
			"COUNT(*) FILTER (WHERE NOT is_collaborator)",
			"COUNT(*) FILTER (WHERE is_collaborator)",
		).
		From("invites").
		Where(sq.Eq{"from_team_id": teamID, "accepted_date": nil}).
		QueryRowContext(ctx).
		Scan(&invitedUsers, &invitedCollaborators)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending invites: %w", err)
	}

	err = s.db.Statement(ctx).
		Select("COUNT(*)").
		From("collections c").
		Join("user_profiles p ON p.user_id = c.owner_id").
		Where(sq.Eq{"p.team_id": teamID, "c.deleted": false}).
		QueryRowContext(ctx).
		Scan(&counts.Projects)
	if err != nil {
		return nil, fmt.Errorf("failed to count projects: %w", err)
	}

	counts.Users = users + invitedUsers
	counts.Collaborators = collaborators + invitedCollaborators

	return counts, nil
}
