// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package usage

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/canonical/billing-service/internal/email"
	"github.com/canonical/billing-service/internal/logging"
	"github.com/canonical/billing-service/internal/monitoring"
	"github.com/canonical/billing-service/internal/storage"
	"github.com/canonical/billing-service/internal/tracing"
	"github.com/canonical/billing-service/internal/types"
	"github.com/canonical/billing-service/pkg/billing"
)

// Reporter pushes the stored usage of every team to the payment processor
// and suspends unbilled or canceled teams that outgrew the free allowance
type Reporter struct {
	storage   StorageInterface
	processor ProcessorInterface
	sender    SenderInterface

	cfg *Config
	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Report handles every team independently, the failures are joined
func (r *Reporter) Report(ctx context.Context, teams []*types.Team) error {
	ctx, span := r.tracer.Start(ctx, "usage.Reporter.Report")
	defer span.End()

	var errs []error
	for _, team := range teams {
		if err := r.reportTeam(ctx, team); err != nil {
			r.logger.Errorf("failed to report usage of team %d: %v", team.ID, err)
			errs = append(errs, fmt.Errorf("team %d: %w", team.ID, err))
		}
	}

	return errors.Join(errs...)
}

func (r *Reporter) reportTeam(ctx context.Context, team *types.Team) error {
	b, err := r.storage.GetBilling(ctx, team.ID)
	switch {
	case err == nil:
		return r.reportBilled(ctx, team, b)
	case !errors.Is(err, storage.ErrNotFound):
		return err
	}

	_, err = r.storage.GetCustomBilling(ctx, team.ID)
	switch {
	case err == nil:
		// invoiced outside the processor
		return nil
	case !errors.Is(err, storage.ErrNotFound):
		return err
	}

	return r.enforceFreeAllowance(ctx, team)
}

func (r *Reporter) reportBilled(ctx context.Context, team *types.Team, b *types.Billing) error {
	// canceled teams are back on the free plan
	if b.CancelDate != nil {
		r.logger.Debugf("subscription of team %d is canceled, not reporting", team.ID)
		return r.enforceFreeAllowance(ctx, team)
	}

	tier, err := r.storage.GetTier(ctx, team.TierID)
	if err != nil {
		return err
	}

	sub, err := r.processor.GetSubscription(ctx, b.SubscriptionID)
	if err != nil {
		return err
	}

	var priceID string
	if tier.StoragePriceID != nil {
		priceID = *tier.StoragePriceID
	}

	item := types.LineItemFor(priceID, sub)
	if item == nil {
		r.logger.Warnf("subscription %s of team %d has no storage price, not reporting", b.SubscriptionID, team.ID)
		return nil
	}

	// the processor keeps the last quantity set during the period
	if err := r.processor.ReportUsage(ctx, item.ID, team.Usage, r.now()); err != nil {
		return err
	}

	r.alert(team, tier, billing.IncludedStorageMB(item.Price, r.cfg.StorageTierUnitMB))

	return nil
}

// alert is advisory only
func (r *Reporter) alert(team *types.Team, tier *types.Tier, includedMB int64) {
	if includedMB <= 0 {
		return
	}

	ratio := float64(team.Usage) / float64(includedMB)
	r.monitor.SetStorageUsageRatio(map[string]string{"team": strconv.FormatInt(team.ID, 10)}, ratio)

	if ratio <= r.cfg.AlertRatio {
		return
	}

	r.logger.Warnw("team storage usage is close to the included storage",
		"team", team.ID,
		"tier", tier.Name,
		"usage_mb", team.Usage,
		"included_mb", includedMB,
		"ratio", ratio,
	)
	r.monitor.IncUsageAlerts(map[string]string{"tier": tier.Name})
}

func (r *Reporter) enforceFreeAllowance(ctx context.Context, team *types.Team) error {
	if team.Usage <= r.cfg.FreeTierUsageLimitMB {
		return nil
	}

	owner, err := r.storage.GetUser(ctx, team.OwnerID)
	if err != nil {
		return err
	}

	if !owner.IsActive {
		r.logger.Debugf("team %d is already suspended", team.ID)
		return nil
	}

	n, err := r.storage.DeactivateTeamUsers(ctx, team.ID)
	if err != nil {
		return err
	}

	r.logger.Warnw("suspended team over the free storage allowance",
		"team", team.ID,
		"usage_mb", team.Usage,
		"limit_mb", r.cfg.FreeTierUsageLimitMB,
		"users", n,
	)

	r.notify(ctx, team, owner)

	return nil
}

func (r *Reporter) notify(ctx context.Context, team *types.Team, owner *types.User) {
	msg, err := email.SuspensionNotice(owner.Email, team.Name, team.Usage, r.cfg.FreeTierUsageLimitMB, r.cfg.SupportEmail)
	if err != nil {
		r.logger.Errorf("failed to render suspension notice for team %d: %v", team.ID, err)
		return
	}

	if err := r.sender.Send(ctx, msg); err != nil {
		r.logger.Errorf("failed to send suspension notice for team %d: %v", team.ID, err)
	}
}

func NewReporter(storage StorageInterface, processor ProcessorInterface, sender SenderInterface, cfg *Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Reporter {
	r := new(Reporter)

	r.storage = storage
	r.processor = processor
	r.sender = sender

	r.cfg = cfg
	r.now = time.Now

	r.tracer = tracer
	r.monitor = monitor
	r.logger = logger

	return r
}
