// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package team

import (
	"context"
	"time"

	"github.com/canonical/billing-service/internal/email"
	"github.com/canonical/billing-service/internal/types"
	"github.com/canonical/billing-service/pkg/authentication"
)

type ServiceInterface interface {
	GetTeamView(ctx context.Context, teamID, userID int64) (*View, error)
	Invite(ctx context.Context, teamID int64, emailAddress string, collaborator bool) (*types.Invite, error)
	AcceptInvite(ctx context.Context, uid string, p *authentication.Principal) (*types.Invite, error)
	CreateUser(ctx context.Context, p *authentication.Principal, req *CreateUserRequest) (*types.UserProfile, error)
	GetProfile(ctx context.Context, userID int64) (*types.UserProfile, error)
	UpdateProfile(ctx context.Context, userID int64, name string) (*types.UserProfile, error)
	ListTrustedServices(ctx context.Context, teamID, userID int64) ([]*types.TrustedService, error)
	CreateTrustedService(ctx context.Context, teamID, userID int64, req *TrustedServiceRequest) (*types.TrustedService, error)
}

type StorageInterface interface {
	GetTeam(ctx context.Context, id int64) (*types.Team, error)
	ListTeamMembers(ctx context.Context, teamID int64) ([]*types.TeamMember, error)
	ListPendingInvites(ctx context.Context, teamID int64) ([]*types.Invite, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	GetUserProfile(ctx context.Context, userID int64) (*types.UserProfile, error)
	CreateUserProfile(ctx context.Context, p *types.UserProfile) error
	GetInviteByEmail(ctx context.Context, email string) (*types.Invite, error)
	GetInviteByUID(ctx context.Context, uid string) (*types.Invite, error)
	CreateInvite(ctx context.Context, i *types.Invite) (*types.Invite, error)
	AcceptInvite(ctx context.Context, id int64, at time.Time) error
	CreateTeam(ctx context.Context, t *types.Team) (*types.Team, error)
	UpdateUserProfileName(ctx context.Context, userID int64, name string) error
	CreateTrustedService(ctx context.Context, ts *types.TrustedService) (*types.TrustedService, error)
	ListTrustedServices(ctx context.Context, teamID int64) ([]*types.TrustedService, error)
}

type SenderInterface interface {
	Send(ctx context.Context, msg *email.Message) error
}
