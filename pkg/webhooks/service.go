// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/billing-service/internal/logging"
	"github.com/canonical/billing-service/internal/monitoring"
	"github.com/canonical/billing-service/internal/payments"
	"github.com/canonical/billing-service/internal/storage"
	"github.com/canonical/billing-service/internal/tracing"
	"github.com/canonical/billing-service/internal/types"
)

type Service struct {
	storage   StorageInterface
	processor ProcessorInterface
	tracer    tracing.TracingInterface
	monitor   monitoring.MonitorInterface
	logger    logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	processor ProcessorInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:   storage,
		processor: processor,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}

// HandleEvent verifies the processor signature and applies the event, unknown events are acknowledged
func (s *Service) HandleEvent(ctx context.Context, payload []byte, signature string) error {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleEvent")
	defer span.End()

	if signature == "" {
		return ErrMissingSignature
	}

	event, err := s.processor.ConstructEvent(payload, signature)
	if err != nil {
		s.logger.Security().AuthnFailure("payment-processor", err.Error())
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	s.logger.Debugf("Handling processor event %s of type %s", event.ID, event.Type)

	switch event.Type {
	case payments.EventCheckoutSessionCompleted:
		session, err := event.CheckoutSession()
		if err != nil {
			return err
		}

		switch session.Mode {
		case payments.CheckoutModeSubscription:
			return s.completeSubscription(ctx, session)
		case payments.CheckoutModeSetup:
			return s.completeSetup(ctx, session)
		default:
			s.logger.Warnf("Ignoring checkout session %s with mode %q", session.ID, session.Mode)
			return nil
		}
	case payments.EventSetupIntentSucceeded:
		intent, err := event.SetupIntent()
		if err != nil {
			return err
		}

		return s.registerPaymentMethod(ctx, intent)
	default:
		s.logger.Debugf("Ignoring processor event %s of type %s", event.ID, event.Type)
		return nil
	}
}

// completeSubscription records the Billing row of a paid checkout, redeliveries hit the unique constraint
func (s *Service) completeSubscription(ctx context.Context, session *payments.CheckoutSession) error {
	teamID, err := payments.MetadataInt64(session.Metadata, payments.MetadataTeamID)
	if err != nil {
		return fmt.Errorf("checkout session %s: %w", session.ID, err)
	}

	tierID, err := payments.MetadataInt64(session.Metadata, payments.MetadataTierID)
	if err != nil {
		return fmt.Errorf("checkout session %s: %w", session.ID, err)
	}

	sub, err := s.processor.GetSubscription(ctx, session.SubscriptionID)
	if err != nil {
		return fmt.Errorf("failed to get subscription %s: %w", session.SubscriptionID, err)
	}

	customerID := sub.CustomerID
	if customerID == "" {
		customerID = session.CustomerID
	}

	_, err = s.storage.CreateBilling(ctx, &types.Billing{
		TeamID:           teamID,
		StripeCustomerID: customerID,
		SubscriptionID:   sub.ID,
		StartDate:        sub.CurrentPeriodStart,
		RenewalDate:      sub.CurrentPeriodEnd,
		TrialStart:       sub.TrialStart,
		TrialEnd:         sub.TrialEnd,
	})
	if errors.Is(err, storage.ErrDuplicateKey) {
		s.logger.Infof("Subscription %s of team %d is already recorded", sub.ID, teamID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to record billing of team %d: %w", teamID, err)
	}

	if err := s.storage.SetTeamTier(ctx, teamID, tierID); err != nil {
		return fmt.Errorf("failed to move team %d to tier %d: %w", teamID, tierID, err)
	}

	s.logger.Infof("Team %d subscribed to tier %d through checkout %s", teamID, tierID, session.ID)
	return nil
}

func (s *Service) completeSetup(ctx context.Context, session *payments.CheckoutSession) error {
	if session.SetupIntentID == "" {
		return fmt.Errorf("setup checkout %s has no setup intent", session.ID)
	}

	intent, err := s.processor.GetSetupIntent(ctx, session.SetupIntentID)
	if err != nil {
		return fmt.Errorf("failed to get setup intent %s: %w", session.SetupIntentID, err)
	}

	if intent.CustomerID == "" {
		intent.CustomerID = session.CustomerID
	}

	return s.registerPaymentMethod(ctx, intent)
}

func (s *Service) registerPaymentMethod(ctx context.Context, intent *payments.SetupIntent) error {
	if intent.CustomerID == "" || intent.PaymentMethodID == "" {
		s.logger.Warnf("Setup intent %s has no customer or payment method, ignoring it", intent.ID)
		return nil
	}

	if err := s.processor.SetDefaultPaymentMethod(ctx, intent.CustomerID, intent.PaymentMethodID); err != nil {
		return fmt.Errorf("failed to set default payment method of %s: %w", intent.CustomerID, err)
	}

	s.logger.Infof("Customer %s registered payment method %s", intent.CustomerID, intent.PaymentMethodID)
	return nil
}
