// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package team

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/canonical/billing-service/internal/email"
	"github.com/canonical/billing-service/internal/logging"
	"github.com/canonical/billing-service/internal/monitoring"
	"github.com/canonical/billing-service/internal/storage"
	"github.com/canonical/billing-service/internal/tracing"
	"github.com/canonical/billing-service/internal/types"
	"github.com/canonical/billing-service/pkg/authentication"
)

type Service struct {
	storage StorageInterface
	sender  SenderInterface
	cfg     *Config

	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) GetTeamView(ctx context.Context, teamID, userID int64) (*View, error) {
	ctx, span := s.tracer.Start(ctx, "team.Service.GetTeamView")
	defer span.End()

	team, err := s.storage.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	if team.OwnerID != userID {
		return nil, ErrNotOwner
	}

	members, err := s.storage.ListTeamMembers(ctx, teamID)
	if err != nil {
		return nil, err
	}

	invites, err := s.storage.ListPendingInvites(ctx, teamID)
	if err != nil {
		return nil, err
	}

	view := &View{
		Profiles:       make([]Member, 0, len(members)),
		PendingInvites: make([]PendingInvite, 0, len(invites)),
	}

	for _, m := range members {
		view.Profiles = append(view.Profiles, Member{
			ID:               m.ID,
			Email:            m.Email,
			Name:             m.Profile.Name,
			IsActive:         m.IsActive,
			IsCollaborator:   m.Profile.IsCollaborator,
			IsTrustedService: m.Profile.IsTrustedService,
		})
	}

	for _, i := range invites {
		view.PendingInvites = append(view.PendingInvites, PendingInvite{
			Email:          i.Email,
			SentDate:       i.SentDate,
			IsCollaborator: i.IsCollaborator,
		})
	}

	return view, nil
}

// Invite records a pending invite and emails it, a pending invite already counts against the team limits
func (s *Service) Invite(ctx context.Context, teamID int64, emailAddress string, collaborator bool) (*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "team.Service.Invite")
	defer span.End()

	emailAddress = normalizeEmail(emailAddress)

	user, err := s.storage.GetUserByEmail(ctx, emailAddress)
	switch {
	case err == nil:
		if _, err := s.storage.GetUserProfile(ctx, user.ID); err == nil {
			return nil, ErrAlreadyMember
		} else if !errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
	case !errors.Is(err, storage.ErrNotFound):
		return nil, err
	}

	if _, err := s.storage.GetInviteByEmail(ctx, emailAddress); err == nil {
		return nil, ErrAlreadyInvited
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	team, err := s.storage.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	invite, err := s.storage.CreateInvite(ctx, &types.Invite{
		UID:            uuid.NewString(),
		FromTeamID:     teamID,
		Email:          emailAddress,
		IsCollaborator: collaborator,
	})
	if errors.Is(err, storage.ErrDuplicateKey) {
		return nil, ErrAlreadyInvited
	}
	if err != nil {
		return nil, err
	}

	s.notify(ctx, team, invite)

	return invite, nil
}

func (s *Service) notify(ctx context.Context, team *types.Team, invite *types.Invite) {
	msg, err := email.InviteNotice(invite.Email, team.Name, fmt.Sprintf(s.cfg.AcceptURLFormat, invite.UID), invite.IsCollaborator)
	if err != nil {
		s.logger.Errorf("failed to render invite for team %d: %v", team.ID, err)
		return
	}

	if err := s.sender.Send(ctx, msg); err != nil {
		s.logger.Errorf("failed to send invite for team %d: %v", team.ID, err)
	}
}

// AcceptInvite joins the caller to the inviting team. The team limits are not checked again.
func (s *Service) AcceptInvite(ctx context.Context, uid string, p *authentication.Principal) (*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "team.Service.AcceptInvite")
	defer span.End()

	invite, err := s.storage.GetInviteByUID(ctx, uid)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrInviteNotFound
	}
	if err != nil {
		return nil, err
	}

	if invite.AcceptedDate != nil {
		return nil, ErrInviteAccepted
	}

	if normalizeEmail(p.Email) != invite.Email {
		return nil, ErrInviteEmailMismatch
	}

	if p.HasTeam() {
		return nil, ErrAlreadyMember
	}

	err = s.storage.CreateUserProfile(ctx, &types.UserProfile{
		UserID:         p.UserID,
		TeamID:         invite.FromTeamID,
		Name:           p.Username,
		IsCollaborator: invite.IsCollaborator,
	})
	if errors.Is(err, storage.ErrDuplicateKey) {
		return nil, ErrAlreadyMember
	}
	if err != nil {
		return nil, err
	}

	now := s.now()
	if err := s.storage.AcceptInvite(ctx, invite.ID, now); err != nil {
		return nil, err
	}

	invite.AcceptedDate = &now
	s.logger.Infof("user %d joined team %d", p.UserID, invite.FromTeamID)

	return invite, nil
}

// CreateUser opens the profile of a signed up user and a team it owns on the free tier.
// Joining an existing team only happens through an invite.
func (s *Service) CreateUser(ctx context.Context, p *authentication.Principal, req *CreateUserRequest) (*types.UserProfile, error) {
	ctx, span := s.tracer.Start(ctx, "team.Service.CreateUser")
	defer span.End()

	if p.HasTeam() {
		return nil, ErrUserExists
	}

	name := req.TeamName
	if name == "" {
		name = req.Name
	}

	team, err := s.storage.CreateTeam(ctx, &types.Team{Name: name, OwnerID: p.UserID, TierID: s.cfg.FreeTierID})
	if errors.Is(err, storage.ErrDuplicateKey) {
		return nil, ErrUserExists
	}
	if err != nil {
		return nil, err
	}

	profile := &types.UserProfile{UserID: p.UserID, TeamID: team.ID, Name: req.Name}

	err = s.storage.CreateUserProfile(ctx, profile)
	if errors.Is(err, storage.ErrDuplicateKey) {
		return nil, ErrUserExists
	}
	if err != nil {
		return nil, err
	}

	s.logger.Infof("user %d created team %d on tier %d", p.UserID, team.ID, team.TierID)

	return profile, nil
}

func (s *Service) GetProfile(ctx context.Context, userID int64) (*types.UserProfile, error) {
	ctx, span := s.tracer.Start(ctx, "team.Service.GetProfile")
	defer span.End()

	return s.storage.GetUserProfile(ctx, userID)
}

// UpdateProfile only changes the display name
func (s *Service) UpdateProfile(ctx context.Context, userID int64, name string) (*types.UserProfile, error) {
	ctx, span := s.tracer.Start(ctx, "team.Service.UpdateProfile")
	defer span.End()

	if err := s.storage.UpdateUserProfileName(ctx, userID, name); err != nil {
		return nil, err
	}

	return s.storage.GetUserProfile(ctx, userID)
}

func (s *Service) ListTrustedServices(ctx context.Context, teamID, userID int64) ([]*types.TrustedService, error) {
	ctx, span := s.tracer.Start(ctx, "team.Service.ListTrustedServices")
	defer span.End()

	if err := s.requireOwner(ctx, teamID, userID, ErrNotServiceViewer); err != nil {
		return nil, err
	}

	return s.storage.ListTrustedServices(ctx, teamID)
}

// CreateTrustedService binds an existing account without a team to the owner's team as a service account
func (s *Service) CreateTrustedService(ctx context.Context, teamID, userID int64, req *TrustedServiceRequest) (*types.TrustedService, error) {
	ctx, span := s.tracer.Start(ctx, "team.Service.CreateTrustedService")
	defer span.End()

	if err := s.requireOwner(ctx, teamID, userID, ErrNotServiceCreator); err != nil {
		return nil, err
	}

	account, err := s.storage.GetUserByEmail(ctx, normalizeEmail(req.ID))
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrServiceUnknown
	}
	if err != nil {
		return nil, err
	}

	err = s.storage.CreateUserProfile(ctx, &types.UserProfile{
		UserID:           account.ID,
		TeamID:           teamID,
		Name:             req.Name,
		IsTrustedService: true,
	})
	if errors.Is(err, storage.ErrDuplicateKey) {
		return nil, ErrAlreadyMember
	}
	if err != nil {
		return nil, err
	}

	ts, err := s.storage.CreateTrustedService(ctx, &types.TrustedService{
		UserID:  account.ID,
		TeamID:  teamID,
		Name:    req.Name,
		BaseURL: req.BaseURL,
	})
	if errors.Is(err, storage.ErrDuplicateKey) {
		return nil, ErrAlreadyMember
	}
	if err != nil {
		return nil, err
	}

	s.logger.Infof("team %d registered trusted service %d for user %d", teamID, ts.ID, account.ID)

	return ts, nil
}

func (s *Service) requireOwner(ctx context.Context, teamID, userID int64, denied error) error {
	team, err := s.storage.GetTeam(ctx, teamID)
	if err != nil {
		return err
	}

	if team.OwnerID != userID {
		return denied
	}

	return nil
}

func normalizeEmail(e string) string {
	return strings.ToLower(strings.TrimSpace(e))
}

func NewService(storage StorageInterface, sender SenderInterface, cfg *Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage
	s.sender = sender
	s.cfg = cfg
	s.now = time.Now

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
