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

var inviteColumns = []string{"id", "uid", "from_team_id", "email", "is_collaborator", "sent_date", "accepted_date"}

func scanInvite(row sq.RowScanner) (*types.Invite, error) {
	var i types.Invite
	if err := row.Scan(&i.ID, &i.UID, &i.FromTeamID, &i.Email, &i.IsCollaborator, &i.SentDate, &i.AcceptedDate); err != nil {
		return nil, err
	}
	return &i, nil
}

func (s *Storage) CreateInvite(ctx context.Context, i *types.Invite) (*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateInvite")
	defer span.End()

	invite, err := scanInvite(
		s.db.Statement(ctx).
			Insert("invites").
			Columns("uid", "from_team_id", "email", "is_collaborator").
			Values(i.UID, i.FromTeamID, i.Email, i.IsCollaborator).
			Suffix("RETURNING "+joinColumns(inviteColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, writeError("insert invite", err, "email already invited")
	}

	return invite, nil
}

func (s *Storage) getInvite(ctx context.Context, where sq.Eq) (*types.Invite, error) {
	invite, err := scanInvite(
		s.db.Statement(ctx).
			Select(inviteColumns...).
			From("invites").
			Where(where).
			QueryRowContext(ctx),
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invite: %w", err)
	}

	return invite, nil
}

func (s *Storage) GetInviteByUID(ctx context.Context, uid string) (*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInviteByUID")
	defer span.End()

	return s.getInvite(ctx, sq.Eq{"uid": uid})
}

func (s *Storage) GetInviteByEmail(ctx context.Context, email string) (*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInviteByEmail")
	defer span.End()

	return s.getInvite(ctx, sq.Eq{"email": email})
}

func (s *Storage) ListPendingInvites(ctx context.Context, teamID int64) ([]*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPendingInvites")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(inviteColumns...).
		From("invites").
		Where(sq.Eq{"from_team_id": teamID, "accepted_date": nil}).
		OrderBy("sent_date").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending invites: %w", err)
	}
	defer rows.Close()

	var invites []*types.Invite
	for rows.Next() {
		i, err := scanInvite(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invite: %w", err)
		}
		invites = append(invites, i)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invite rows: %w", err)
	}

	return invites, nil
}

// AcceptInvite stamps a pending invite, accepting twice yields ErrNotFound
func (s *Storage) AcceptInvite(ctx context.Context, id int64, at time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.AcceptInvite")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("invites").
		Set("accepted_date", at).
		Where(sq.Eq{"id": id, "accepted_date": nil}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to accept invite: %w", err)
	}

	return expectAffected(res)
}
