// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

const (
	SubscriptionStatusCanceled = "canceled"
	SubscriptionStatusTrialing = "trialing"
	SubscriptionStatusActive   = "active"
)

// PriceTier is a graduated price band, UpTo is zero for the open ended band
type PriceTier struct {
	UpTo       int64 `json:"up_to"`
	UnitAmount int64 `json:"unit_amount"`
}

type Price struct {
	ID         string      `json:"id"`
	Currency   string      `json:"currency"`
	UnitAmount int64       `json:"unit_amount"`
	Tiers      []PriceTier `json:"tiers,omitempty"`
}

// LineItem is one priced entry of a processor subscription
type LineItem struct {
	ID       string `json:"id"`
	Quantity int64  `json:"quantity"`
	Price    Price  `json:"price"`
}

type Subscription struct {
	ID                 string            `json:"id"`
	CustomerID         string            `json:"customer_id"`
	Status             string            `json:"status"`
	CurrentPeriodStart *time.Time        `json:"current_period_start"`
	CurrentPeriodEnd   *time.Time        `json:"current_period_end"`
	TrialStart         *time.Time        `json:"trial_start"`
	TrialEnd           *time.Time        `json:"trial_end"`
	Items              []LineItem        `json:"items"`
	Metadata           map[string]string `json:"metadata"`
}

// LineItemFor returns the first line item billed with priceID, nil when none is
func LineItemFor(priceID string, sub *Subscription) *LineItem {
	if sub == nil || priceID == "" {
		return nil
	}

	for i := range sub.Items {
		if sub.Items[i].Price.ID == priceID {
			return &sub.Items[i]
		}
	}

	return nil
}

// LineItemUpdate is a change to a subscription item, an empty ID adds a new item
type LineItemUpdate struct {
	ID       string
	PriceID  string
	Quantity *int64
	Deleted  bool
}

type Invoice struct {
	ID         string     `json:"id"`
	Number     string     `json:"number"`
	Status     string     `json:"status"`
	Currency   string     `json:"currency"`
	AmountDue  int64      `json:"amount_due"`
	AmountPaid int64      `json:"amount_paid"`
	Paid       bool       `json:"paid"`
	HostedURL  string     `json:"hosted_invoice_url"`
	Created    time.Time  `json:"created"`
	PeriodEnd  *time.Time `json:"period_end"`
}

// Customer carries what the processor needs to open an account for a team
type Customer struct {
	Email   string
	Name    string
	IP      string
	Country string

	// IdempotencyKey makes concurrent creations for the same owner return one customer
	IdempotencyKey string
}

type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}
