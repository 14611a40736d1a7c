// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package team

import (
	"errors"
	"time"
)

var (
	ErrNotOwner            = errors.New("only owners can view the team")
	ErrAlreadyMember       = errors.New("user is already a member of a team")
	ErrAlreadyInvited      = errors.New("email already invited")
	ErrInviteNotFound      = errors.New("invite not found")
	ErrInviteAccepted      = errors.New("invite already accepted")
	ErrInviteEmailMismatch = errors.New("invite was sent to another email")
	ErrUserExists          = errors.New("user already has a profile")
	ErrNotServiceViewer    = errors.New("only owners can view trusted services")
	ErrNotServiceCreator   = errors.New("only owners can create trusted services")
	ErrServiceUnknown      = errors.New("service account not found")
)

type Config struct {
	// AcceptURLFormat receives the invite uid through a single %s verb
	AcceptURLFormat string
	// FreeTierID is the tier new teams start on
	FreeTierID int64
}

// CreateUserRequest opens the profile of a signed up user together with its own team
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	TeamName string `json:"team_name" validate:"max=200"`
}

type UpdateUserRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

// TrustedServiceRequest registers an existing account, identified by its email, as a service of the team
type TrustedServiceRequest struct {
	ID      string `json:"id" validate:"required,email"`
	Name    string `json:"name" validate:"required,max=200"`
	BaseURL string `json:"base_url" validate:"omitempty,url,max=500"`
}

type TrustedServiceCreated struct {
	ID int64 `json:"id"`
}

type InviteRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type Member struct {
	ID               int64  `json:"id"`
	Email            string `json:"email"`
	Name             string `json:"name"`
	IsActive         bool   `json:"is_active"`
	IsCollaborator   bool   `json:"is_collaborator"`
	IsTrustedService bool   `json:"is_trusted_service"`
}

type PendingInvite struct {
	Email          string    `json:"email"`
	SentDate       time.Time `json:"sent_date"`
	IsCollaborator bool      `json:"is_collaborator"`
}

// View is the team page, trusted services are listed as members and filtered by clients
type View struct {
	Profiles       []Member        `json:"profiles"`
	PendingInvites []PendingInvite `json:"pending_invites"`
}
