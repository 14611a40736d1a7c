// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"errors"
	"strings"
	"time"

	"github.com/canonical/billing-service/internal/types"
)

var (
	ErrTierNotCustom   = errors.New("tier is not custom")
	ErrTierBound       = errors.New("tier is already bound to another team")
	ErrTierExists      = errors.New("tier prices are already in use")
	ErrCustomBilled    = errors.New("team already has custom billing")
)

// TierRequest describes a catalogue entry, omitted limits are unlimited
type TierRequest struct {
	Name                  string  `json:"name" validate:"required,max=50"`
	BaseUserLimit         *int64  `json:"base_user_limit" validate:"omitempty,min=0"`
	BaseProjectLimit      *int64  `json:"base_project_limit" validate:"omitempty,min=0"`
	BaseCollaboratorLimit *int64  `json:"base_collaborator_limit" validate:"omitempty,min=0"`
	BaseStorageLimit      *int64  `json:"base_storage_limit" validate:"omitempty,min=0"`
	FlatPriceID           *string `json:"flat_price_id"`
	StoragePriceID        *string `json:"storage_price_id"`
	UserPriceID           *string `json:"user_price_id"`
	CollaboratorPriceID   *string `json:"collaborator_price_id"`
	ProjectPriceID        *string `json:"project_price_id"`
	IsCustom              bool    `json:"is_custom"`
	CustomSubscriptionID  *string `json:"custom_subscription_id"`
}

func (r *TierRequest) tier() *types.Tier {
	return &types.Tier{
		Name:                  r.Name,
		BaseUserLimit:         r.BaseUserLimit,
		BaseProjectLimit:      r.BaseProjectLimit,
		BaseCollaboratorLimit: r.BaseCollaboratorLimit,
		BaseStorageLimit:      r.BaseStorageLimit,
		FlatPriceID:           r.FlatPriceID,
		StoragePriceID:        r.StoragePriceID,
		UserPriceID:           r.UserPriceID,
		CollaboratorPriceID:   r.CollaboratorPriceID,
		ProjectPriceID:        r.ProjectPriceID,
		IsCustom:              r.IsCustom,
		CustomSubscriptionID:  r.CustomSubscriptionID,
	}
}

// CustomBillingRequest moves a team onto a negotiated tier billed outside the processor
type CustomBillingRequest struct {
	TierID      int64     `json:"tier_id" validate:"required,gt=0"`
	StartDate   time.Time `json:"start_date" validate:"required"`
	RenewalDate time.Time `json:"renewal_date" validate:"required,gtfield=StartDate"`
}

// UserRequest names an account by the email it signed up with
type UserRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (r *UserRequest) email() string {
	return strings.ToLower(strings.TrimSpace(r.Email))
}
