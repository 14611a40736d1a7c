// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"context"
	"errors"
	"fmt"
	"net/netip"
	"strconv"
	"time"

	"github.com/canonical/billing-service/internal/logging"
	"github.com/canonical/billing-service/internal/monitoring"
	"github.com/canonical/billing-service/internal/payments"
	"github.com/canonical/billing-service/internal/storage"
	"github.com/canonical/billing-service/internal/tracing"
	"github.com/canonical/billing-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage   StorageInterface
	processor ProcessorInterface
	cfg       *Config

	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// teamState is everything known locally about a team's plan
type teamState struct {
	team   *types.Team
	tier   *types.Tier
	billed *types.Billing
	custom *types.CustomBilling
}

func (s *Service) loadState(ctx context.Context, teamID int64) (*teamState, error) {
	team, err := s.storage.GetTeam(ctx, teamID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, reject(KindNotFound, "Team not found")
	}
	if err != nil {
		return nil, err
	}

	tier, err := s.storage.GetTier(ctx, team.TierID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tier %d of team %d: %w", team.TierID, team.ID, err)
	}

	state := &teamState{team: team, tier: tier}

	state.billed, err = s.storage.GetBilling(ctx, teamID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	state.custom, err = s.storage.GetCustomBilling(ctx, teamID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	if state.billed != nil && state.custom != nil {
		s.logger.Warnf("team %d has both billing and custom billing, treating it as custom", teamID)
		state.billed = nil
	}

	return state, nil
}

func (s *Service) isFree(tier *types.Tier) bool {
	return tier.ID == s.cfg.FreeTierID
}

func (s *Service) limitsFor(ctx context.Context, state *teamState) (*Limits, *types.AddonTotals, error) {
	counts, err := s.storage.GetTeamCounts(ctx, state.team.ID)
	if err != nil {
		return nil, nil, err
	}

	addons, err := s.storage.SumTierAddons(ctx, state.team.ID)
	if err != nil {
		return nil, nil, err
	}

	return computeLimits(state.team, state.tier, counts, addons, state.billed != nil, state.custom != nil), addons, nil
}

func (s *Service) GetTeam(ctx context.Context, teamID int64) (*types.Team, error) {
	ctx, span := s.tracer.Start(ctx, "billing.Service.GetTeam")
	defer span.End()

	team, err := s.storage.GetTeam(ctx, teamID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, reject(KindNotFound, "Team not found")
	}

	return team, err
}

func (s *Service) GetLimits(ctx context.Context, teamID int64) (*Limits, error) {
	ctx, span := s.tracer.Start(ctx, "billing.Service.GetLimits")
	defer span.End()

	state, err := s.loadState(ctx, teamID)
	if err != nil {
		return nil, err
	}

	limits, _, err := s.limitsFor(ctx, state)
	return limits, err
}

// GetPlan creates the subscription of teams that never had one before reading it back
func (s *Service) GetPlan(ctx context.Context, teamID int64, clientIP string) (*Plan, error) {
	ctx, span := s.tracer.Start(ctx, "billing.Service.GetPlan")
	defer span.End()

	state, err := s.loadState(ctx, teamID)
	if err != nil {
		return nil, err
	}

	plan := &Plan{
		TierID:   state.tier.ID,
		TierName: state.tier.Name,
		Usage:    state.team.Usage,
	}

	if state.custom != nil {
		plan.IsCustom = true
		plan.PeriodStart = state.custom.StartDate
		plan.PeriodEnd = state.custom.RenewalDate
		plan.CancelDate = state.custom.CancelDate
		return plan, nil
	}

	if state.billed == nil {
		if !hasSubscriptionPrices(state.tier) {
			return plan, nil
		}

		s.logger.Infof("team %d has no subscription, creating one for tier %d", teamID, state.tier.ID)

		state.billed, err = s.subscribe(ctx, state.team, state.tier, state.tier.IsPaid(), clientIP)
		if err != nil {
			return nil, err
		}
	}

	plan.CancelDate = state.billed.CancelDate

	sub, err := s.processor.GetSubscription(ctx, state.billed.SubscriptionID)
	if err != nil {
		return nil, processorError("get subscription", err)
	}

	plan.Status = sub.Status
	plan.PeriodStart = sub.CurrentPeriodStart
	plan.PeriodEnd = sub.CurrentPeriodEnd
	plan.TrialStart = sub.TrialStart
	plan.TrialEnd = sub.TrialEnd

	if item := types.LineItemFor(deref(state.tier.FlatPriceID), sub); item != nil {
		plan.BasePrice = item.Price.UnitAmount
		plan.Currency = item.Price.Currency
	}

	if item := types.LineItemFor(deref(state.tier.StoragePriceID), sub); item != nil {
		plan.IncludedUsage = IncludedStorageMB(item.Price, s.cfg.StorageTierUnitMB)
		plan.StorageUnitPrice = marginalStoragePrice(item.Price)
		plan.BilledUsage = billedUsage(state.team.Usage, plan.IncludedUsage)
	}

	if s.isFree(state.tier) || state.tier.IsCustom {
		return plan, nil
	}

	if plan.Users, err = s.addonLine(ctx, state.tier.UserPriceID, sub); err != nil {
		return nil, err
	}
	if plan.Projects, err = s.addonLine(ctx, state.tier.ProjectPriceID, sub); err != nil {
		return nil, err
	}
	if plan.Collaborators, err = s.addonLine(ctx, state.tier.CollaboratorPriceID, sub); err != nil {
		return nil, err
	}

	return plan, nil
}

// addonLine reads the quantity from the subscription, the price is looked up when nothing was bought yet
func (s *Service) addonLine(ctx context.Context, priceID *string, sub *types.Subscription) (*AddonLine, error) {
	id := deref(priceID)
	if id == "" {
		return nil, nil
	}

	if item := types.LineItemFor(id, sub); item != nil {
		return &AddonLine{PriceID: id, Quantity: item.Quantity, UnitPrice: item.Price.UnitAmount}, nil
	}

	price, err := s.processor.GetPrice(ctx, id)
	if err != nil {
		return nil, processorError("get addon price", err)
	}

	return &AddonLine{PriceID: id, UnitPrice: price.UnitAmount}, nil
}

func (s *Service) ListPlans(ctx context.Context, teamID int64) ([]*PlanOption, error) {
	ctx, span := s.tracer.Start(ctx, "billing.Service.ListPlans")
	defer span.End()

	state, err := s.loadState(ctx, teamID)
	if err != nil {
		return nil, err
	}

	limits, addons, err := s.limitsFor(ctx, state)
	if err != nil {
		return nil, err
	}

	tiers, err := s.storage.ListTiers(ctx)
	if err != nil {
		return nil, err
	}

	options := make([]*PlanOption, 0, len(tiers))
	for _, tier := range tiers {
		if tier.IsCustom && tier.ID != state.team.TierID {
			continue
		}

		exceeded := exceededDimensions(limits, tier, addons)

		options = append(options, &PlanOption{
			ID:                    tier.ID,
			Name:                  tier.Name,
			BaseUserLimit:         tier.BaseUserLimit,
			BaseProjectLimit:      tier.BaseProjectLimit,
			BaseCollaboratorLimit: tier.BaseCollaboratorLimit,
			BaseStorageLimit:      tier.BaseStorageLimit,
			IsPaid:                tier.IsPaid(),
			IsCustom:              tier.IsCustom,
			Current:               tier.ID == state.team.TierID,
			Eligible:              len(exceeded) == 0,
			Exceeded:              exceeded,
		})
	}

	return options, nil
}

func (s *Service) CreateSubscription(ctx context.Context, teamID, tierID int64, trial bool, clientIP string) (*types.Billing, error) {
	ctx, span := s.tracer.Start(ctx, "billing.Service.CreateSubscription")
	defer span.End()

	state, err := s.loadState(ctx, teamID)
	if err != nil {
		return nil, err
	}

	if state.custom != nil {
		return nil, reject(KindConflict, "Team is on a custom plan")
	}

	if state.billed != nil {
		return nil, reject(KindConflict, "Team already has a subscription")
	}

	tier, err := s.destinationTier(ctx, state.team, tierID)
	if err != nil {
		return nil, err
	}

	return s.subscribe(ctx, state.team, tier, trial, clientIP)
}

// subscribe opens a customer and a subscription with the flat and storage prices of the tier,
// the Billing row is written only once both exist
func (s *Service) subscribe(ctx context.Context, team *types.Team, tier *types.Tier, trial bool, clientIP string) (*types.Billing, error) {
	prices := subscriptionPrices(tier)
	if len(prices) == 0 {
		return nil, reject(KindUnprocessable, "Plan %s can't be subscribed to", tier.Name)
	}

	owner, err := s.storage.GetUser(ctx, team.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get owner of team %d: %w", team.ID, err)
	}

	customerID, err := s.processor.CreateCustomer(ctx, s.customerFor(team, owner, clientIP))
	if err != nil {
		return nil, processorError("create customer", err)
	}

	var trialDays int64
	if trial {
		trialDays = s.cfg.TrialDays
	}

	sub, err := s.processor.CreateSubscription(ctx, customerID, prices, trialDays, teamMetadata(team.ID, tier.ID))
	if err != nil {
		return nil, processorError("create subscription", err)
	}

	b, err := s.storage.CreateBilling(ctx, &types.Billing{
		TeamID:           team.ID,
		StripeCustomerID: customerID,
		SubscriptionID:   sub.ID,
		StartDate:        sub.CurrentPeriodStart,
		RenewalDate:      sub.CurrentPeriodEnd,
		TrialStart:       sub.TrialStart,
		TrialEnd:         sub.TrialEnd,
	})
	if errors.Is(err, storage.ErrDuplicateKey) {
		return s.settleDuplicate(ctx, team.ID, sub.ID)
	}
	if err != nil {
		return nil, err
	}

	if team.TierID != tier.ID {
		if err := s.storage.SetTeamTier(ctx, team.ID, tier.ID); err != nil {
			return nil, err
		}
	}

	s.logger.Infof("team %d subscribed to tier %d with subscription %s", team.ID, tier.ID, sub.ID)

	return b, nil
}

// settleDuplicate resolves a subscription created while another request billed the team first:
// a replay of the winning subscription is success, anything else is canceled at the processor
func (s *Service) settleDuplicate(ctx context.Context, teamID int64, subscriptionID string) (*types.Billing, error) {
	existing, err := s.storage.GetBilling(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get billing of team %d: %w", teamID, err)
	}

	if existing.SubscriptionID == subscriptionID {
		return existing, nil
	}

	s.logger.Errorf("team %d got subscription %s while billed by %s, canceling it", teamID, subscriptionID, existing.SubscriptionID)

	if _, err := s.processor.CancelSubscription(ctx, subscriptionID); err != nil {
		s.logger.Errorf("failed to cancel orphan subscription %s of team %d: %v", subscriptionID, teamID, err)
	}

	return nil, reject(KindConflict, "Team already has a subscription")
}

func (s *Service) customerFor(team *types.Team, owner *types.User, clientIP string) *types.Customer {
	c := &types.Customer{
		Email:          owner.Email,
		Name:           team.Name,
		IdempotencyKey: fmt.Sprintf("team-%d-customer", team.ID),
	}

	if isPublicIP(clientIP) {
		c.IP = clientIP
	} else {
		c.Country = s.cfg.DefaultTaxCountry
	}

	return c
}

// destinationTier refuses unknown tiers and custom tiers bound to another team
func (s *Service) destinationTier(ctx context.Context, team *types.Team, tierID int64) (*types.Tier, error) {
	tier, err := s.storage.GetTier(ctx, tierID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, reject(KindNotFound, "Tier not found")
	}
	if err != nil {
		return nil, err
	}

	if !tier.IsCustom {
		return tier, nil
	}

	n, err := s.storage.CountTeamsOnTier(ctx, tier.ID, team.ID)
	if err != nil {
		return nil, err
	}

	if n > 0 {
		return nil, reject(KindConflict, "This plan belongs to another team")
	}

	return tier, nil
}

func (s *Service) UpdatePlan(ctx context.Context, teamID, tierID int64, clientIP string) error {
	ctx, span := s.tracer.Start(ctx, "billing.Service.UpdatePlan")
	defer span.End()

	state, err := s.loadState(ctx, teamID)
	if err != nil {
		return err
	}

	if state.tier.IsCustom || state.custom != nil {
		return reject(KindConflict, "Custom plans can't be changed, contact support")
	}

	if state.team.TierID == tierID {
		return reject(KindConflict, "Team is already on this plan")
	}

	dest, err := s.destinationTier(ctx, state.team, tierID)
	if err != nil {
		return err
	}

	limits, addons, err := s.limitsFor(ctx, state)
	if err != nil {
		return err
	}

	if exceeded := exceededDimensions(limits, dest, addons); len(exceeded) > 0 {
		return &LimitExceededError{Dimensions: exceeded}
	}

	if state.billed == nil {
		// paid plans without a customer go through checkout
		if dest.IsPaid() {
			return reject(KindUnprocessable, "No valid payment method")
		}

		if hasSubscriptionPrices(dest) {
			_, err := s.subscribe(ctx, state.team, dest, false, clientIP)
			return err
		}

		return s.storage.SetTeamTier(ctx, teamID, dest.ID)
	}

	if !hasSubscriptionPrices(dest) {
		return reject(KindUnprocessable, "Plan %s can't replace a subscription, cancel it instead", dest.Name)
	}

	if dest.IsPaid() {
		ok, err := s.processor.HasDefaultPaymentMethod(ctx, state.billed.StripeCustomerID)
		if err != nil {
			return processorError("check payment method", err)
		}
		if !ok {
			return reject(KindUnprocessable, "No valid payment method")
		}
	}

	sub, err := s.processor.GetSubscription(ctx, state.billed.SubscriptionID)
	if err != nil {
		return processorError("get subscription", err)
	}

	if sub.Status == types.SubscriptionStatusCanceled {
		return reject(KindUnprocessable, "Subscription was canceled, contact support to resume it")
	}

	if updates := planItemUpdates(state.tier, dest, sub); len(updates) > 0 {
		if _, err := s.processor.UpdateSubscriptionItems(ctx, sub.ID, updates); err != nil {
			return processorError("update subscription", err)
		}
	}

	if err := s.storage.SetTeamTier(ctx, teamID, dest.ID); err != nil {
		return err
	}

	// addons never survive a plan change
	if err := s.clearAddons(ctx, teamID, addons); err != nil {
		return err
	}

	s.logger.Infof("team %d switched from tier %d to tier %d", teamID, state.tier.ID, dest.ID)

	return nil
}

// planItemUpdates swaps flat and storage lines to the destination prices and drops every addon line
func planItemUpdates(from, to *types.Tier, sub *types.Subscription) []types.LineItemUpdate {
	updates := make([]types.LineItemUpdate, 0, len(sub.Items)+2)

	replace := func(oldPrice, newPrice *string) {
		oldID, newID := deref(oldPrice), deref(newPrice)

		item := types.LineItemFor(oldID, sub)
		switch {
		case item != nil && newID != "":
			if item.Price.ID != newID {
				updates = append(updates, types.LineItemUpdate{ID: item.ID, PriceID: newID})
			}
		case item != nil:
			updates = append(updates, types.LineItemUpdate{ID: item.ID, Deleted: true})
		case newID != "" && types.LineItemFor(newID, sub) == nil:
			updates = append(updates, types.LineItemUpdate{PriceID: newID})
		}
	}

	replace(from.FlatPriceID, to.FlatPriceID)
	replace(from.StoragePriceID, to.StoragePriceID)

	for _, p := range []*string{from.UserPriceID, from.ProjectPriceID, from.CollaboratorPriceID} {
		if item := types.LineItemFor(deref(p), sub); item != nil {
			updates = append(updates, types.LineItemUpdate{ID: item.ID, Deleted: true})
		}
	}

	return updates
}

func (s *Service) AddAddon(ctx context.Context, teamID int64, req *AddonRequest) error {
	ctx, span := s.tracer.Start(ctx, "billing.Service.AddAddon")
	defer span.End()

	if req.Users < 0 || req.Projects < 0 || req.Collaborators < 0 {
		return reject(KindUnprocessable, "Addon quantities can't be negative")
	}

	if req.Users == 0 && req.Projects == 0 && req.Collaborators == 0 {
		return reject(KindUnprocessable, "Nothing to add")
	}

	state, err := s.loadState(ctx, teamID)
	if err != nil {
		return err
	}

	if state.custom != nil || state.tier.IsCustom {
		return reject(KindUnprocessable, "Addons are not available on a custom plan")
	}

	if state.billed == nil {
		return reject(KindUnprocessable, "No valid subscription")
	}

	if s.isFree(state.tier) {
		return reject(KindUnprocessable, "Addons are not available on the free plan")
	}

	ok, err := s.processor.HasDefaultPaymentMethod(ctx, state.billed.StripeCustomerID)
	if err != nil {
		return processorError("check payment method", err)
	}
	if !ok {
		return reject(KindUnprocessable, "No valid payment method")
	}

	totals, err := s.storage.SumTierAddons(ctx, teamID)
	if err != nil {
		return err
	}

	sub, err := s.processor.GetSubscription(ctx, state.billed.SubscriptionID)
	if err != nil {
		return processorError("get subscription", err)
	}

	delta := &types.TierAddon{TeamID: teamID}
	updates := make([]types.LineItemUpdate, 0, 3)

	dimensions := []struct {
		name      string
		increment int64
		prior     int64
		base      *int64
		price     *string
		delta     *int64
	}{
		{DimensionUsers, req.Users, totals.Users, state.tier.BaseUserLimit, state.tier.UserPriceID, &delta.AdditionalUserCount},
		{DimensionProjects, req.Projects, totals.Projects, state.tier.BaseProjectLimit, state.tier.ProjectPriceID, &delta.AdditionalProjectCount},
		{DimensionCollaborators, req.Collaborators, totals.Collaborators, state.tier.BaseCollaboratorLimit, state.tier.CollaboratorPriceID, &delta.AdditionalCollaboratorCount},
	}

	for _, d := range dimensions {
		// unlimited dimensions have nothing to buy
		if d.increment == 0 || d.base == nil {
			continue
		}

		priceID := deref(d.price)
		if priceID == "" {
			return reject(KindUnprocessable, "Additional %s are not sold on this plan", d.name)
		}

		total := d.prior + d.increment
		update := types.LineItemUpdate{PriceID: priceID, Quantity: &total}
		if item := types.LineItemFor(priceID, sub); item != nil {
			update.ID = item.ID
			update.PriceID = ""
		}

		updates = append(updates, update)
		*d.delta = d.increment
	}

	if len(updates) == 0 {
		return reject(KindUnprocessable, "Nothing to add, these limits are already unlimited")
	}

	if _, err := s.processor.UpdateSubscriptionItems(ctx, sub.ID, updates); err != nil {
		return processorError("update subscription", err)
	}

	if _, err := s.storage.CreateTierAddon(ctx, delta); err != nil {
		return err
	}

	s.logger.Infof("team %d bought %d users, %d projects and %d collaborators", teamID, delta.AdditionalUserCount, delta.AdditionalProjectCount, delta.AdditionalCollaboratorCount)

	return nil
}

func (s *Service) Cancel(ctx context.Context, teamID int64) error {
	ctx, span := s.tracer.Start(ctx, "billing.Service.Cancel")
	defer span.End()

	b, err := s.storage.GetBilling(ctx, teamID)
	if errors.Is(err, storage.ErrNotFound) {
		return reject(KindUnprocessable, "No valid subscription to cancel. Try changing your plan")
	}
	if err != nil {
		return err
	}

	if b.CancelDate != nil {
		return reject(KindConflict, "Subscription is already canceled")
	}

	sub, err := s.processor.CancelSubscription(ctx, b.SubscriptionID)
	if err != nil {
		return processorError("cancel subscription", err)
	}

	if sub.Status != types.SubscriptionStatusCanceled {
		return fmt.Errorf("subscription %s of team %d is %q after cancellation", sub.ID, teamID, sub.Status)
	}

	if err := s.storage.SetBillingCancelDate(ctx, teamID, s.now().UTC()); err != nil {
		return err
	}

	// a canceled team falls back to the free plan and loses its addons
	team, err := s.storage.GetTeam(ctx, teamID)
	if err != nil {
		return err
	}

	if team.TierID != s.cfg.FreeTierID {
		if err := s.storage.SetTeamTier(ctx, teamID, s.cfg.FreeTierID); err != nil {
			return err
		}
	}

	addons, err := s.storage.SumTierAddons(ctx, teamID)
	if err != nil {
		return err
	}

	if err := s.clearAddons(ctx, teamID, addons); err != nil {
		return err
	}

	s.logger.Infof("team %d canceled subscription %s and moved to tier %d", teamID, sub.ID, s.cfg.FreeTierID)

	return nil
}

// clearAddons balances the addon ledger to zero with a compensating row
func (s *Service) clearAddons(ctx context.Context, teamID int64, addons *types.AddonTotals) error {
	if addons.Users == 0 && addons.Projects == 0 && addons.Collaborators == 0 {
		return nil
	}

	_, err := s.storage.CreateTierAddon(ctx, &types.TierAddon{
		TeamID:                      teamID,
		AdditionalUserCount:         -addons.Users,
		AdditionalProjectCount:      -addons.Projects,
		AdditionalCollaboratorCount: -addons.Collaborators,
	})

	return err
}

func (s *Service) CreateCheckoutSession(ctx context.Context, in *CheckoutInput) (*types.CheckoutSession, error) {
	ctx, span := s.tracer.Start(ctx, "billing.Service.CreateCheckoutSession")
	defer span.End()

	state, err := s.loadState(ctx, in.TeamID)
	if err != nil {
		return nil, err
	}

	tier, err := s.destinationTier(ctx, state.team, in.TierID)
	if err != nil {
		return nil, err
	}

	if !tier.IsPaid() {
		return nil, reject(KindConflict, "Can't pay for a free tier")
	}

	if state.billed != nil || state.custom != nil {
		return nil, reject(KindConflict, "Team already has a subscription, change the plan instead")
	}

	one := int64(1)
	lines := []payments.CheckoutLine{{PriceID: *tier.FlatPriceID, Quantity: &one}}
	if id := deref(tier.StoragePriceID); id != "" {
		lines = append(lines, payments.CheckoutLine{PriceID: id})
	}

	session, err := s.processor.CreateCheckoutSession(ctx, &payments.CheckoutRequest{
		Mode:              payments.CheckoutModeSubscription,
		CustomerEmail:     in.Email,
		ClientReferenceID: strconv.FormatInt(in.UserID, 10),
		Lines:             lines,
		Metadata:          teamMetadata(in.TeamID, tier.ID),
	})
	if err != nil {
		return nil, processorError("create checkout session", err)
	}

	return session, nil
}

// CreateSetupSession lets a billed team register a card for its existing customer
func (s *Service) CreateSetupSession(ctx context.Context, teamID int64) (*types.CheckoutSession, error) {
	ctx, span := s.tracer.Start(ctx, "billing.Service.CreateSetupSession")
	defer span.End()

	b, err := s.storage.GetBilling(ctx, teamID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, reject(KindUnprocessable, "No valid subscription")
	}
	if err != nil {
		return nil, err
	}

	team, err := s.storage.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	session, err := s.processor.CreateCheckoutSession(ctx, &payments.CheckoutRequest{
		Mode:       payments.CheckoutModeSetup,
		CustomerID: b.StripeCustomerID,
		Metadata:   teamMetadata(teamID, team.TierID),
	})
	if err != nil {
		return nil, processorError("create setup session", err)
	}

	return session, nil
}

func (s *Service) ListInvoices(ctx context.Context, teamID int64) ([]*types.Invoice, error) {
	ctx, span := s.tracer.Start(ctx, "billing.Service.ListInvoices")
	defer span.End()

	b, err := s.storage.GetBilling(ctx, teamID)
	if errors.Is(err, storage.ErrNotFound) {
		return []*types.Invoice{}, nil
	}
	if err != nil {
		return nil, err
	}

	invoices, err := s.processor.ListInvoices(ctx, b.StripeCustomerID, s.cfg.InvoiceLimit)
	if err != nil {
		return nil, processorError("list invoices", err)
	}

	return invoices, nil
}

func (s *Service) GetAddonPrices(ctx context.Context, teamID int64) (*AddonPrices, error) {
	ctx, span := s.tracer.Start(ctx, "billing.Service.GetAddonPrices")
	defer span.End()

	state, err := s.loadState(ctx, teamID)
	if err != nil {
		return nil, err
	}

	if s.isFree(state.tier) || state.tier.IsCustom || state.custom != nil {
		return nil, reject(KindUnprocessable, "Addons are not available on this plan")
	}

	prices := new(AddonPrices)
	for _, p := range []struct {
		id   *string
		dest **types.Price
	}{
		{state.tier.UserPriceID, &prices.Users},
		{state.tier.ProjectPriceID, &prices.Projects},
		{state.tier.CollaboratorPriceID, &prices.Collaborators},
	} {
		id := deref(p.id)
		if id == "" {
			continue
		}

		price, err := s.processor.GetPrice(ctx, id)
		if err != nil {
			return nil, processorError("get addon price", err)
		}
		*p.dest = price
	}

	return prices, nil
}

func (s *Service) GetPaymentMethod(ctx context.Context, teamID int64) (*PaymentMethodStatus, error) {
	ctx, span := s.tracer.Start(ctx, "billing.Service.GetPaymentMethod")
	defer span.End()

	b, err := s.storage.GetBilling(ctx, teamID)
	if errors.Is(err, storage.ErrNotFound) {
		return &PaymentMethodStatus{}, nil
	}
	if err != nil {
		return nil, err
	}

	ok, err := s.processor.HasDefaultPaymentMethod(ctx, b.StripeCustomerID)
	if err != nil {
		return nil, processorError("check payment method", err)
	}

	return &PaymentMethodStatus{HasPaymentMethod: ok}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// subscriptionPrices are the lines a subscription starts with, addon lines only come from purchases
func subscriptionPrices(tier *types.Tier) []string {
	prices := make([]string, 0, 2)
	for _, p := range []*string{tier.FlatPriceID, tier.StoragePriceID} {
		if id := deref(p); id != "" {
			prices = append(prices, id)
		}
	}
	return prices
}

func hasSubscriptionPrices(tier *types.Tier) bool {
	return len(subscriptionPrices(tier)) > 0
}

func teamMetadata(teamID, tierID int64) map[string]string {
	return map[string]string{
		payments.MetadataTeamID: strconv.FormatInt(teamID, 10),
		payments.MetadataTierID: strconv.FormatInt(tierID, 10),
	}
}

// isPublicIP is false for anything the processor can't geolocate
func isPublicIP(ip string) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}

	return !addr.IsPrivate() && !addr.IsLoopback() && !addr.IsUnspecified() && !addr.IsLinkLocalUnicast() && !addr.IsMulticast()
}

func NewService(
	storage StorageInterface,
	processor ProcessorInterface,
	cfg *Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.processor = processor
	s.cfg = cfg
	s.now = time.Now

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
