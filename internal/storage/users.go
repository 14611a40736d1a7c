// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/billing-service/internal/types"
)

func (s *Storage) getUser(ctx context.Context, where sq.Eq) (*types.User, error) {
	var u types.User
	err := s.db.Statement(ctx).
		Select("id", "email", "is_active").
		From("users").
		Where(where).
		QueryRowContext(ctx).
		Scan(&u.ID, &u.Email, &u.IsActive)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &u, nil
}

func (s *Storage) GetUser(ctx context.Context, id int64) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUser")
	defer span.End()

	return s.getUser(ctx, sq.Eq{"id": id})
}

// GetUserByUsername looks up the account matching the sync backend identity
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByUsername")
	defer span.End()

	return s.getUser(ctx, sq.Eq{"username": username})
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByEmail")
	defer span.End()

	return s.getUser(ctx, sq.Eq{"email": email})
}

func (s *Storage) GetUserProfile(ctx context.Context, userID int64) (*types.UserProfile, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserProfile")
	defer span.End()

	var p types.UserProfile
	err := s.db.Statement(ctx).
		Select("user_id", "team_id", "name", "is_collaborator", "is_trusted_service").
		From("user_profiles").
		Where(sq.Eq{"user_id": userID}).
		QueryRowContext(ctx).
		Scan(&p.UserID, &p.TeamID, &p.Name, &p.IsCollaborator, &p.IsTrustedService)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}

	return &p, nil
}

func (s *Storage) CreateUserProfile(ctx context.Context, p *types.UserProfile) error {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUserProfile")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("user_profiles").
		Columns("user_id", "team_id", "name", "is_collaborator", "is_trusted_service").
		Values(p.UserID, p.TeamID, p.Name, p.IsCollaborator, p.IsTrustedService).
		ExecContext(ctx)
	if err != nil {
		return writeError("insert user profile", err, "user already has a profile")
	}

	return nil
}

func (s *Storage) UpdateUserProfileName(ctx context.Context, userID int64, name string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateUserProfileName")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("user_profiles").
		Set("name", name).
		Where(sq.Eq{"user_id": userID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update user profile: %w", err)
	}

	return expectAffected(res)
}

// SetUserActive toggles the account matching email, enabling also marks the email as verified
func (s *Storage) SetUserActive(ctx context.Context, email string, active bool) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.SetUserActive")
	defer span.End()

	q := s.db.Statement(ctx).
		Update("users").
		Set("is_active", active).
		Where(sq.Eq{"email": email}).
		Suffix("RETURNING id, email, is_active")

	if active {
		q = q.Set("email_verified", sq.Expr("COALESCE(email_verified, NOW())"))
	}

	var u types.User
	if err := q.QueryRowContext(ctx).Scan(&u.ID, &u.Email, &u.IsActive); err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to set user active: %w", err)
	}

	return &u, nil
}

func (s *Storage) ListTeamMembers(ctx context.Context, teamID int64) ([]*types.TeamMember, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTeamMembers")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("u.id", "u.email", "u.is_active", "p.team_id", "p.name", "p.is_collaborator", "p.is_trusted_service").
		From("users u").
		Join("user_profiles p ON p.user_id = u.id").
		Where(sq.Eq{"p.team_id": teamID}).
		OrderBy("u.id").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	defer rows.Close()

	var members []*types.TeamMember
	for rows.Next() {
		var m types.TeamMember
		if err := rows.Scan(
			&m.ID,
			&m.Email,
			&m.IsActive,
			&m.Profile.TeamID,
			&m.Profile.Name,
			&m.Profile.IsCollaborator,
			&m.Profile.IsTrustedService,
		); err != nil {
			return nil, fmt.Errorf("failed to scan team member: %w", err)
		}
		m.Profile.UserID = m.ID
		members = append(members, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating team member rows: %w", err)
	}

	return members, nil
}

// ListUserTeams maps every user holding a profile to its team
func (s *Storage) ListUserTeams(ctx context.Context) (map[int64]int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListUserTeams")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("user_id", "team_id").
		From("user_profiles").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list user teams: %w", err)
	}
	defer rows.Close()

	teams := make(map[int64]int64)
	for rows.Next() {
		var userID, teamID int64
		if err := rows.Scan(&userID, &teamID); err != nil {
			return nil, fmt.Errorf("failed to scan user team: %w", err)
		}
		teams[userID] = teamID
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user team rows: %w", err)
	}

	return teams, nil
}

// DeactivateTeamUsers marks every still active user of the team inactive and
// returns how many rows changed
func (s *Storage) DeactivateTeamUsers(ctx context.Context, teamID int64) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.DeactivateTeamUsers")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("users").
		Set("is_active", false).
		Where(sq.Eq{"is_active": true}).
		Where("id IN (SELECT user_id FROM user_profiles WHERE team_id = ?)", teamID).
		ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to deactivate team users: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return n, nil
}
