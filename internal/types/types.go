// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// Tier is a catalogue entry, nil limits are unlimited and nil prices are not sold
type Tier struct {
	ID                    int64   `db:"id" json:"id"`
	Name                  string  `db:"name" json:"name"`
	BaseUserLimit         *int64  `db:"base_user_limit" json:"base_user_limit"`
	BaseProjectLimit      *int64  `db:"base_project_limit" json:"base_project_limit"`
	BaseCollaboratorLimit *int64  `db:"base_collaborator_limit" json:"base_collaborator_limit"`
	BaseStorageLimit      *int64  `db:"base_storage_limit" json:"base_storage_limit"`
	FlatPriceID           *string `db:"stripe_flat_price_id" json:"flat_price_id"`
	StoragePriceID        *string `db:"stripe_storage_price_id" json:"storage_price_id"`
	UserPriceID           *string `db:"stripe_user_price_id" json:"user_price_id"`
	CollaboratorPriceID   *string `db:"stripe_collaborator_price_id" json:"collaborator_price_id"`
	ProjectPriceID        *string `db:"stripe_project_price_id" json:"project_price_id"`
	IsCustom              bool    `db:"is_custom" json:"is_custom"`
	CustomSubscriptionID  *string `db:"custom_subscription_id" json:"custom_subscription_id"`
}

// IsPaid reports whether switching to the tier incurs a flat charge
func (t *Tier) IsPaid() bool {
	return t.FlatPriceID != nil && *t.FlatPriceID != ""
}

// PriceIDs returns every price reference of the tier that is set
func (t *Tier) PriceIDs() []string {
	ids := make([]string, 0, 5)
	for _, p := range []*string{t.FlatPriceID, t.StoragePriceID, t.UserPriceID, t.CollaboratorPriceID, t.ProjectPriceID} {
		if p != nil && *p != "" {
			ids = append(ids, *p)
		}
	}
	return ids
}

type Team struct {
	ID      int64  `db:"id"`
	Name    string `db:"name"`
	OwnerID int64  `db:"owner_id"`
	TierID  int64  `db:"tier_id"`
	// Usage is the storage used by the team in MB
	Usage int64 `db:"usage"`
}

// TierAddon is a ledger row, the increments are deltas and never totals
type TierAddon struct {
	ID                          int64     `db:"id"`
	TeamID                      int64     `db:"team_id"`
	AdditionalUserCount         int64     `db:"additional_user_count"`
	AdditionalProjectCount      int64     `db:"additional_project_count"`
	AdditionalCollaboratorCount int64     `db:"additional_collaborator_count"`
	CreatedAt                   time.Time `db:"created_date"`
}

// AddonTotals is the sum of every TierAddon row of a team
type AddonTotals struct {
	Users         int64
	Projects      int64
	Collaborators int64
}

type Billing struct {
	ID               int64      `db:"id"`
	TeamID           int64      `db:"team_id"`
	StripeCustomerID string     `db:"stripe_customer_id"`
	SubscriptionID   string     `db:"subscription_id"`
	StartDate        *time.Time `db:"start_date"`
	RenewalDate      *time.Time `db:"renewal_date"`
	TrialStart       *time.Time `db:"trial_start"`
	TrialEnd         *time.Time `db:"trial_end"`
	CancelDate       *time.Time `db:"cancel_date"`
}

type CustomBilling struct {
	ID          int64      `db:"id" json:"id"`
	TeamID      int64      `db:"team_id" json:"team_id"`
	StartDate   *time.Time `db:"start_date" json:"start_date"`
	RenewalDate *time.Time `db:"renewal_date" json:"renewal_date"`
	CancelDate  *time.Time `db:"cancel_date" json:"cancel_date,omitempty"`
}

// Usage is a daily per user audit sample
type Usage struct {
	ID     int64     `db:"id"`
	UserID int64     `db:"user_id"`
	Date   time.Time `db:"date"`
	Usage  int64     `db:"usage"`
}

type Invite struct {
	ID             int64      `db:"id" json:"id"`
	UID            string     `db:"uid" json:"uid"`
	FromTeamID     int64      `db:"from_team_id" json:"team_id"`
	Email          string     `db:"email" json:"email"`
	IsCollaborator bool       `db:"is_collaborator" json:"is_collaborator"`
	SentDate       time.Time  `db:"sent_date" json:"sent_date"`
	AcceptedDate   *time.Time `db:"accepted_date" json:"accepted_date,omitempty"`
}

type User struct {
	ID       int64  `db:"id" json:"id"`
	Email    string `db:"email" json:"email"`
	IsActive bool   `db:"is_active" json:"is_active"`
}

type UserProfile struct {
	UserID           int64  `db:"user_id" json:"id"`
	TeamID           int64  `db:"team_id" json:"team_id"`
	Name             string `db:"name" json:"name"`
	IsCollaborator   bool   `db:"is_collaborator" json:"is_collaborator"`
	IsTrustedService bool   `db:"is_trusted_service" json:"is_trusted_service"`
}

// TrustedService is a service account acting on behalf of a team
type TrustedService struct {
	ID          int64     `db:"id" json:"id"`
	UserID      int64     `db:"user_id" json:"user_id"`
	TeamID      int64     `db:"team_id" json:"team_id"`
	Name        string    `db:"name" json:"name"`
	BaseURL     string    `db:"base_url" json:"base_url"`
	CreatedDate time.Time `db:"created_date" json:"created_date"`
}

// TeamMember is a user joined with its profile
type TeamMember struct {
	User
	Profile UserProfile
}

// UserIdentity is the identity returned by the sync backend for a valid credential
type UserIdentity struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// TeamCounts is what a team currently consumes, pending invites included
type TeamCounts struct {
	Users         int64
	Projects      int64
	Collaborators int64
}
