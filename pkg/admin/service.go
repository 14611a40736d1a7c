// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/canonical/billing-service/internal/logging"
	"github.com/canonical/billing-service/internal/monitoring"
	"github.com/canonical/billing-service/internal/storage"
	"github.com/canonical/billing-service/internal/tracing"
	"github.com/canonical/billing-service/internal/types"
)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// ListTiers returns the catalogue, custom tiers are only listed when includeCustom is set
func (s *Service) ListTiers(ctx context.Context, includeCustom bool) ([]*types.Tier, error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.ListTiers")
	defer span.End()

	tiers, err := s.storage.ListTiers(ctx)
	if err != nil {
		return nil, err
	}

	listed := make([]*types.Tier, 0, len(tiers))
	for _, t := range tiers {
		if t.IsCustom && !includeCustom {
			continue
		}
		listed = append(listed, t)
	}

	return listed, nil
}

func (s *Service) GetTier(ctx context.Context, id int64) (*types.Tier, error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.GetTier")
	defer span.End()

	return s.storage.GetTier(ctx, id)
}

func (s *Service) CreateTier(ctx context.Context, subject string, req *TierRequest) (*types.Tier, error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.CreateTier")
	defer span.End()

	tier, err := s.storage.CreateTier(ctx, req.tier())
	if errors.Is(err, storage.ErrDuplicateKey) {
		return nil, fmt.Errorf("%w: %v", ErrTierExists, err)
	}
	if err != nil {
		return nil, err
	}

	s.logger.Security().AdminAction(subject, "create-tier", tier.Name)

	return tier, nil
}

// CreateCustomBilling binds a custom tier to exactly one team and records the negotiated period
func (s *Service) CreateCustomBilling(ctx context.Context, subject string, teamID int64, req *CustomBillingRequest) (*types.CustomBilling, error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.CreateCustomBilling")
	defer span.End()

	if _, err := s.storage.GetTeam(ctx, teamID); err != nil {
		return nil, err
	}

	tier, err := s.storage.GetTier(ctx, req.TierID)
	if err != nil {
		return nil, err
	}

	if !tier.IsCustom {
		return nil, ErrTierNotCustom
	}

	bound, err := s.storage.CountTeamsOnTier(ctx, tier.ID, teamID)
	if err != nil {
		return nil, err
	}

	if bound > 0 {
		return nil, ErrTierBound
	}

	start, renewal := req.StartDate.UTC(), req.RenewalDate.UTC()

	billing, err := s.storage.CreateCustomBilling(ctx, &types.CustomBilling{
		TeamID:      teamID,
		StartDate:   &start,
		RenewalDate: &renewal,
	})
	if errors.Is(err, storage.ErrDuplicateKey) {
		return nil, ErrCustomBilled
	}
	if err != nil {
		return nil, err
	}

	if err := s.storage.SetTeamTier(ctx, teamID, tier.ID); err != nil {
		return nil, err
	}

	s.logger.Security().AdminAction(subject, "create-custom-billing", strconv.FormatInt(teamID, 10))
	s.logger.Infof("team %d moved to custom tier %q", teamID, tier.Name)

	return billing, nil
}

// SetUserActive enables or disables an account, enabling is the only way back from a suspension
func (s *Service) SetUserActive(ctx context.Context, subject, email string, active bool) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.SetUserActive")
	defer span.End()

	user, err := s.storage.SetUserActive(ctx, email, active)
	if err != nil {
		return nil, err
	}

	action := "disable-user"
	if active {
		action = "enable-user"
	}

	s.logger.Security().AdminAction(subject, action, strconv.FormatInt(user.ID, 10))

	return user, nil
}

func NewService(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
