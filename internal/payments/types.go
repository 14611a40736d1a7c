// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package payments

import (
	"encoding/json"
	"fmt"
)

const (
	EventCheckoutSessionCompleted = "checkout.session.completed"
	EventSetupIntentSucceeded     = "setup_intent.succeeded"

	CheckoutModeSubscription = "subscription"
	CheckoutModeSetup        = "setup"

	MetadataTeamID = "team_id"
	MetadataTierID = "tier_id"
)

// Event is a verified processor callback, Raw holds the event data object
type Event struct {
	ID   string
	Type string
	Raw  json.RawMessage
}

// CheckoutSession is the part of a completed checkout the service reacts to
type CheckoutSession struct {
	ID             string
	Mode           string
	CustomerID     string
	SubscriptionID string
	SetupIntentID  string
	Metadata       map[string]string
}

type SetupIntent struct {
	ID              string
	CustomerID      string
	PaymentMethodID string
	Metadata        map[string]string
}

type CheckoutLine struct {
	PriceID  string
	Quantity *int64
}

// CheckoutRequest opens a hosted checkout page either to subscribe or to register a card
type CheckoutRequest struct {
	Mode              string
	CustomerID        string
	CustomerEmail     string
	ClientReferenceID string
	Lines             []CheckoutLine
	Metadata          map[string]string
}

// expandable mirrors how the processor serializes a reference that may or may not be expanded
type expandable struct {
	ID string
}

func (e *expandable) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &e.ID)
	}

	var obj struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	e.ID = obj.ID
	return nil
}

// CheckoutSession decodes the event payload of a checkout event
func (e *Event) CheckoutSession() (*CheckoutSession, error) {
	var raw struct {
		ID           string            `json:"id"`
		Mode         string            `json:"mode"`
		Customer     *expandable       `json:"customer"`
		Subscription *expandable       `json:"subscription"`
		SetupIntent  *expandable       `json:"setup_intent"`
		Metadata     map[string]string `json:"metadata"`
	}

	if err := json.Unmarshal(e.Raw, &raw); err != nil {
		return nil, fmt.Errorf("malformed checkout session: %w", err)
	}

	s := &CheckoutSession{ID: raw.ID, Mode: raw.Mode, Metadata: raw.Metadata}
	if raw.Customer != nil {
		s.CustomerID = raw.Customer.ID
	}
	if raw.Subscription != nil {
		s.SubscriptionID = raw.Subscription.ID
	}
	if raw.SetupIntent != nil {
		s.SetupIntentID = raw.SetupIntent.ID
	}

	return s, nil
}

// SetupIntent decodes the event payload of a setup intent event
func (e *Event) SetupIntent() (*SetupIntent, error) {
	var raw struct {
		ID            string            `json:"id"`
		Customer      *expandable       `json:"customer"`
		PaymentMethod *expandable       `json:"payment_method"`
		Metadata      map[string]string `json:"metadata"`
	}

	if err := json.Unmarshal(e.Raw, &raw); err != nil {
		return nil, fmt.Errorf("malformed setup intent: %w", err)
	}

	si := &SetupIntent{ID: raw.ID, Metadata: raw.Metadata}
	if raw.Customer != nil {
		si.CustomerID = raw.Customer.ID
	}
	if raw.PaymentMethod != nil {
		si.PaymentMethodID = raw.PaymentMethod.ID
	}

	return si, nil
}
