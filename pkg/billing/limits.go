// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"github.com/canonical/billing-service/internal/types"
)

// addLimit extends a base limit, an unlimited base stays unlimited whatever was bought
func addLimit(base *int64, delta int64) *int64 {
	if base == nil {
		return nil
	}

	v := *base + delta
	return &v
}

// reached is true once no further unit fits under the limit
func reached(count int64, limit *int64) bool {
	return limit != nil && count >= *limit
}

func exceeds(count int64, limit *int64) bool {
	return limit != nil && count > *limit
}

func (l *Limits) UsersReached() bool {
	return reached(l.Users, l.UsersLimit)
}

func (l *Limits) ProjectsReached() bool {
	return reached(l.Projects, l.ProjectsLimit)
}

func (l *Limits) CollaboratorsReached() bool {
	return reached(l.Collaborators, l.CollaboratorsLimit)
}

// computeLimits folds the addon ledger into the tier limits, addons only apply to processor billed teams
func computeLimits(team *types.Team, tier *types.Tier, counts *types.TeamCounts, addons *types.AddonTotals, billed, custom bool) *Limits {
	if addons == nil || !billed || custom {
		addons = new(types.AddonTotals)
	}

	return &Limits{
		HasBilling:           billed || custom,
		IsCustom:             custom,
		TierName:             tier.Name,
		TierID:               tier.ID,
		UsersLimit:           addLimit(tier.BaseUserLimit, addons.Users),
		ProjectsLimit:        addLimit(tier.BaseProjectLimit, addons.Projects),
		CollaboratorsLimit:   addLimit(tier.BaseCollaboratorLimit, addons.Collaborators),
		Users:                counts.Users,
		Projects:             counts.Projects,
		Collaborators:        counts.Collaborators,
		Storage:              team.Usage,
		StorageIncludedLimit: tier.BaseStorageLimit,
	}
}

// exceededDimensions checks every dimension of the destination tier, in canonical order
func exceededDimensions(limits *Limits, dest *types.Tier, addons *types.AddonTotals) []string {
	if addons == nil {
		addons = new(types.AddonTotals)
	}

	exceeded := make([]string, 0, 4)

	if exceeds(limits.Users, addLimit(dest.BaseUserLimit, addons.Users)) {
		exceeded = append(exceeded, DimensionUsers)
	}
	if exceeds(limits.Projects, addLimit(dest.BaseProjectLimit, addons.Projects)) {
		exceeded = append(exceeded, DimensionProjects)
	}
	if exceeds(limits.Collaborators, addLimit(dest.BaseCollaboratorLimit, addons.Collaborators)) {
		exceeded = append(exceeded, DimensionCollaborators)
	}
	if exceeds(limits.Storage, dest.BaseStorageLimit) {
		exceeded = append(exceeded, DimensionStorage)
	}

	return exceeded
}

// IncludedStorageMB is the usage covered by the first band of a graduated storage price
func IncludedStorageMB(price types.Price, unitMB int64) int64 {
	if len(price.Tiers) == 0 {
		return 0
	}

	return price.Tiers[0].UpTo * unitMB
}

// marginalStoragePrice is the unit amount charged past the included band
func marginalStoragePrice(price types.Price) int64 {
	if len(price.Tiers) < 2 {
		return price.UnitAmount
	}

	return price.Tiers[1].UnitAmount
}

func billedUsage(usage, included int64) int64 {
	if usage <= included {
		return 0
	}

	return usage - included
}
