// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"reflect"
	"testing"

	"github.com/canonical/billing-service/internal/types"
)

func ptr[T any](v T) *T {
	return &v
}

func TestComputeLimits(t *testing.T) {
	team := &types.Team{ID: 10, TierID: 2, Usage: 1500}
	counts := &types.TeamCounts{Users: 3, Projects: 4, Collaborators: 1}
	addons := &types.AddonTotals{Users: 2, Projects: 5, Collaborators: 3}

	tests := []struct {
		name   string
		tier   *types.Tier
		billed bool
		custom bool
		want   *Limits
	}{
		{
			name:   "billed team gets addons on top of base limits",
			tier:   &types.Tier{ID: 2, Name: "PRO", BaseUserLimit: ptr(int64(5)), BaseProjectLimit: ptr(int64(10)), BaseCollaboratorLimit: ptr(int64(2)), BaseStorageLimit: ptr(int64(10000))},
			billed: true,
			want: &Limits{
				HasBilling: true, TierName: "PRO", TierID: 2,
				UsersLimit: ptr(int64(7)), ProjectsLimit: ptr(int64(15)), CollaboratorsLimit: ptr(int64(5)),
				Users: 3, Projects: 4, Collaborators: 1, Storage: 1500, StorageIncludedLimit: ptr(int64(10000)),
			},
		},
		{
			name:   "null base stays unlimited whatever the addons",
			tier:   &types.Tier{ID: 2, Name: "ENTERPRISE", BaseProjectLimit: ptr(int64(10))},
			billed: true,
			want: &Limits{
				HasBilling: true, TierName: "ENTERPRISE", TierID: 2,
				ProjectsLimit: ptr(int64(15)),
				Users:         3, Projects: 4, Collaborators: 1, Storage: 1500,
			},
		},
		{
			name: "unbilled team reports base limits only",
			tier: &types.Tier{ID: 1, Name: "COMMUNITY", BaseUserLimit: ptr(int64(1)), BaseProjectLimit: ptr(int64(1)), BaseCollaboratorLimit: ptr(int64(2)), BaseStorageLimit: ptr(int64(1000))},
			want: &Limits{
				TierName: "COMMUNITY", TierID: 1,
				UsersLimit: ptr(int64(1)), ProjectsLimit: ptr(int64(1)), CollaboratorsLimit: ptr(int64(2)),
				Users: 3, Projects: 4, Collaborators: 1, Storage: 1500, StorageIncludedLimit: ptr(int64(1000)),
			},
		},
		{
			name:   "custom billing disables addons",
			tier:   &types.Tier{ID: 9, Name: "ACME", BaseUserLimit: ptr(int64(50)), IsCustom: true},
			custom: true,
			want: &Limits{
				HasBilling: true, IsCustom: true, TierName: "ACME", TierID: 9,
				UsersLimit: ptr(int64(50)),
				Users:      3, Projects: 4, Collaborators: 1, Storage: 1500,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := computeLimits(team, tt.tier, counts, addons, tt.billed, tt.custom)

			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestAddonLedgerOrderDoesNotMatter(t *testing.T) {
	base := ptr(int64(5))
	rows := []int64{3, -2, 7, 1, -4}

	sum := func(order []int) *int64 {
		var total int64
		for _, i := range order {
			total += rows[i]
		}
		return addLimit(base, total)
	}

	want := *base + 5
	for _, order := range [][]int{{0, 1, 2, 3, 4}, {4, 3, 2, 1, 0}, {2, 0, 4, 1, 3}} {
		if got := sum(order); *got != want {
			t.Errorf("order %v: expected %d, got %d", order, want, *got)
		}
	}

	if addLimit(nil, 100) != nil {
		t.Error("expected unlimited base to stay unlimited")
	}
}

func TestLimitsReached(t *testing.T) {
	tests := []struct {
		name   string
		limits Limits
		want   bool
	}{
		{name: "below the limit", limits: Limits{Projects: 4, ProjectsLimit: ptr(int64(5))}},
		{name: "at the limit", limits: Limits{Projects: 5, ProjectsLimit: ptr(int64(5))}, want: true},
		{name: "over the limit", limits: Limits{Projects: 6, ProjectsLimit: ptr(int64(5))}, want: true},
		{name: "unlimited", limits: Limits{Projects: 500}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.limits.ProjectsReached(); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestExceededDimensions(t *testing.T) {
	dest := &types.Tier{
		BaseUserLimit:         ptr(int64(5)),
		BaseProjectLimit:      ptr(int64(5)),
		BaseCollaboratorLimit: ptr(int64(5)),
		BaseStorageLimit:      ptr(int64(5000)),
	}
	within := Limits{Users: 5, Projects: 5, Collaborators: 5, Storage: 5000}

	tests := []struct {
		name   string
		mutate func(*Limits)
		addons *types.AddonTotals
		want   []string
	}{
		{name: "everything fits", mutate: func(*Limits) {}, want: []string{}},
		{name: "users over", mutate: func(l *Limits) { l.Users = 6 }, want: []string{DimensionUsers}},
		{name: "projects over", mutate: func(l *Limits) { l.Projects = 6 }, want: []string{DimensionProjects}},
		{name: "collaborators over", mutate: func(l *Limits) { l.Collaborators = 6 }, want: []string{DimensionCollaborators}},
		{name: "storage over", mutate: func(l *Limits) { l.Storage = 5001 }, want: []string{DimensionStorage}},
		{
			name:   "existing addons extend the destination",
			mutate: func(l *Limits) { l.Users = 7 },
			addons: &types.AddonTotals{Users: 2},
			want:   []string{},
		},
		{
			name:   "every dimension reported in order",
			mutate: func(l *Limits) { l.Users, l.Projects, l.Collaborators, l.Storage = 9, 9, 9, 9000 },
			want:   []string{DimensionUsers, DimensionProjects, DimensionCollaborators, DimensionStorage},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limits := within
			tt.mutate(&limits)

			got := exceededDimensions(&limits, dest, tt.addons)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestStoragePricing(t *testing.T) {
	price := types.Price{Tiers: []types.PriceTier{{UpTo: 10, UnitAmount: 0}, {UnitAmount: 5}}}

	included := IncludedStorageMB(price, 1000)
	if included != 10000 {
		t.Fatalf("expected 10000 MB included, got %d", included)
	}

	if got := marginalStoragePrice(price); got != 5 {
		t.Errorf("expected marginal price 5, got %d", got)
	}

	if got := billedUsage(9000, included); got != 0 {
		t.Errorf("expected nothing billed under the threshold, got %d", got)
	}

	if got := billedUsage(12500, included); got != 2500 {
		t.Errorf("expected 2500 MB billed, got %d", got)
	}

	if got := IncludedStorageMB(types.Price{UnitAmount: 3}, 1000); got != 0 {
		t.Errorf("expected flat price to include nothing, got %d", got)
	}
}
