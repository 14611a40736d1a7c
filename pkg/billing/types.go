// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"time"

	"github.com/canonical/billing-service/internal/types"
)

// Limits is what a team consumes against what its plan allows, nil limits are unlimited
type Limits struct {
	HasBilling           bool   `json:"has_billing"`
	IsCustom             bool   `json:"is_custom"`
	TierName             string `json:"tier_name"`
	TierID               int64  `json:"tier_id"`
	UsersLimit           *int64 `json:"users_limit"`
	ProjectsLimit        *int64 `json:"projects_limit"`
	CollaboratorsLimit   *int64 `json:"collaborators_limit"`
	Users                int64  `json:"users"`
	Projects             int64  `json:"projects"`
	Collaborators        int64  `json:"collaborators"`
	Storage              int64  `json:"storage"`
	StorageIncludedLimit *int64 `json:"storage_included_limit"`
}

// AddonLine is one kind of purchased increment on the live subscription
type AddonLine struct {
	PriceID   string `json:"price_id"`
	Quantity  int64  `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

type Plan struct {
	TierID      int64      `json:"tier_id"`
	TierName    string     `json:"tier_name"`
	IsCustom    bool       `json:"is_custom"`
	Status      string     `json:"status,omitempty"`
	Currency    string     `json:"currency,omitempty"`
	PeriodStart *time.Time `json:"period_start"`
	PeriodEnd   *time.Time `json:"period_end"`
	TrialStart  *time.Time `json:"trial_start"`
	TrialEnd    *time.Time `json:"trial_end"`
	CancelDate  *time.Time `json:"cancel_date"`
	BasePrice   int64      `json:"base_price"`

	Users         *AddonLine `json:"users,omitempty"`
	Projects      *AddonLine `json:"projects,omitempty"`
	Collaborators *AddonLine `json:"collaborators,omitempty"`

	// Usage figures are in MB
	Usage            int64 `json:"usage"`
	IncludedUsage    int64 `json:"included_usage"`
	BilledUsage      int64 `json:"billed_usage"`
	StorageUnitPrice int64 `json:"storage_unit_price"`
}

// PlanOption is a tier the team may look at when switching plans
type PlanOption struct {
	ID                    int64  `json:"id"`
	Name                  string `json:"name"`
	BaseUserLimit         *int64 `json:"base_user_limit"`
	BaseProjectLimit      *int64 `json:"base_project_limit"`
	BaseCollaboratorLimit *int64 `json:"base_collaborator_limit"`
	BaseStorageLimit      *int64 `json:"base_storage_limit"`
	IsPaid                bool   `json:"is_paid"`
	IsCustom              bool   `json:"is_custom"`
	Current               bool   `json:"current"`
	// Eligible is false when the team consumes more than the tier allows
	Eligible bool     `json:"eligible"`
	Exceeded []string `json:"exceeded,omitempty"`
}

type AddonRequest struct {
	Users         int64 `json:"users" validate:"gte=0"`
	Projects      int64 `json:"projects" validate:"gte=0"`
	Collaborators int64 `json:"collaborators" validate:"gte=0"`
}

type AddonPrices struct {
	Users         *types.Price `json:"users,omitempty"`
	Projects      *types.Price `json:"projects,omitempty"`
	Collaborators *types.Price `json:"collaborators,omitempty"`
}

type PaymentMethodStatus struct {
	HasPaymentMethod bool `json:"has_payment_method"`
}

// CheckoutInput opens a hosted subscription checkout for a team owner
type CheckoutInput struct {
	TeamID int64
	TierID int64
	UserID int64
	Email  string
}

type PlanRequest struct {
	TierID int64 `json:"tier_id" validate:"required,gt=0"`
}

type CheckoutRequest struct {
	TierID int64 `json:"tier_id" validate:"required,gt=0"`
}
