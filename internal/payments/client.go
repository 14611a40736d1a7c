// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package payments

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
	"github.com/stripe/stripe-go/v81/webhook"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/canonical/billing-service/internal/logging"
	"github.com/canonical/billing-service/internal/monitoring"
	"github.com/canonical/billing-service/internal/tracing"
	"github.com/canonical/billing-service/internal/types"
)

var _ ProcessorInterface = (*Client)(nil)

type Config struct {
	SecretKey     string
	WebhookSecret string
	Timeout       time.Duration
	SuccessURL    string
	CancelURL     string
	MaxRetries    int64
	// APIURL overrides the processor endpoint, empty means the public API
	APIURL string
}

// Client talks to Stripe through a per instance API client, the package level key is never set
type Client struct {
	api *client.API

	webhookSecret string
	successURL    string
	cancelURL     string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// SubscriptionIdempotencyKey is the key sent when subscribing a customer
func SubscriptionIdempotencyKey(customerID string) string {
	return "subscription-" + customerID
}

func (c *Client) params(ctx context.Context) stripe.Params {
	return stripe.Params{Context: ctx}
}

// observe records whether the processor answered at all, API errors still count as available
func (c *Client) observe(err error) {
	tags := map[string]string{"component": "stripe"}

	var stripeErr *stripe.Error
	if err != nil && !errors.As(err, &stripeErr) {
		c.monitor.SetDependencyAvailability(tags, 0)
		return
	}

	c.monitor.SetDependencyAvailability(tags, 1)
}

func (c *Client) CreateCustomer(ctx context.Context, customer *types.Customer) (string, error) {
	ctx, span := c.tracer.Start(ctx, "payments.Client.CreateCustomer")
	defer span.End()

	params := &stripe.CustomerParams{
		Params: c.params(ctx),
		Email:  stripe.String(customer.Email),
		Name:   stripe.String(customer.Name),
	}

	if customer.IdempotencyKey != "" {
		params.SetIdempotencyKey(customer.IdempotencyKey)
	}

	if customer.IP != "" {
		params.Tax = &stripe.CustomerTaxParams{IPAddress: stripe.String(customer.IP)}
	} else if customer.Country != "" {
		params.Address = &stripe.AddressParams{Country: stripe.String(customer.Country)}
	}

	cus, err := c.api.Customers.New(params)
	c.observe(err)
	if err != nil {
		return "", fmt.Errorf("failed to create customer: %w", err)
	}

	return cus.ID, nil
}

func (c *Client) HasDefaultPaymentMethod(ctx context.Context, customerID string) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "payments.Client.HasDefaultPaymentMethod")
	defer span.End()

	cus, err := c.api.Customers.Get(customerID, &stripe.CustomerParams{Params: c.params(ctx)})
	c.observe(err)
	if err != nil {
		return false, fmt.Errorf("failed to get customer: %w", err)
	}

	if cus.InvoiceSettings != nil && cus.InvoiceSettings.DefaultPaymentMethod != nil && cus.InvoiceSettings.DefaultPaymentMethod.ID != "" {
		return true, nil
	}

	return cus.DefaultSource != nil && cus.DefaultSource.ID != "", nil
}

func (c *Client) SetDefaultPaymentMethod(ctx context.Context, customerID, paymentMethodID string) error {
	ctx, span := c.tracer.Start(ctx, "payments.Client.SetDefaultPaymentMethod")
	defer span.End()

	_, err := c.api.Customers.Update(customerID, &stripe.CustomerParams{
		Params: c.params(ctx),
		InvoiceSettings: &stripe.CustomerInvoiceSettingsParams{
			DefaultPaymentMethod: stripe.String(paymentMethodID),
		},
	})
	c.observe(err)
	if err != nil {
		return fmt.Errorf("failed to set default payment method: %w", err)
	}

	return nil
}

// CreateSubscription subscribes the customer to one unit of every price, metered
// prices are sent without quantity
func (c *Client) CreateSubscription(ctx context.Context, customerID string, priceIDs []string, trialDays int64, metadata map[string]string) (*types.Subscription, error) {
	ctx, span := c.tracer.Start(ctx, "payments.Client.CreateSubscription")
	defer span.End()

	params := &stripe.SubscriptionParams{
		Params:   c.params(ctx),
		Customer: stripe.String(customerID),
		Metadata: metadata,
	}
	params.AddExpand("items.data.price.tiers")
	// one subscription per customer, a replayed request gets the first one back
	params.SetIdempotencyKey(SubscriptionIdempotencyKey(customerID))

	for _, priceID := range priceIDs {
		params.Items = append(params.Items, &stripe.SubscriptionItemsParams{Price: stripe.String(priceID)})
	}

	if trialDays > 0 {
		params.TrialPeriodDays = stripe.Int64(trialDays)
		// a trial never needs a card up front
		params.PaymentBehavior = stripe.String("default_incomplete")
		params.TrialSettings = &stripe.SubscriptionTrialSettingsParams{
			EndBehavior: &stripe.SubscriptionTrialSettingsEndBehaviorParams{
				MissingPaymentMethod: stripe.String("pause"),
			},
		}
	}

	sub, err := c.api.Subscriptions.New(params)
	c.observe(err)
	if err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	return toSubscription(sub), nil
}

func (c *Client) GetSubscription(ctx context.Context, subscriptionID string) (*types.Subscription, error) {
	ctx, span := c.tracer.Start(ctx, "payments.Client.GetSubscription")
	defer span.End()

	params := &stripe.SubscriptionParams{Params: c.params(ctx)}
	params.AddExpand("items.data.price.tiers")

	sub, err := c.api.Subscriptions.Get(subscriptionID, params)
	c.observe(err)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return toSubscription(sub), nil
}

// UpdateSubscriptionItems applies every item change in a single subscription update
func (c *Client) UpdateSubscriptionItems(ctx context.Context, subscriptionID string, items []types.LineItemUpdate) (*types.Subscription, error) {
	ctx, span := c.tracer.Start(ctx, "payments.Client.UpdateSubscriptionItems")
	defer span.End()

	params := &stripe.SubscriptionParams{
		Params:            c.params(ctx),
		ProrationBehavior: stripe.String("create_prorations"),
	}
	params.AddExpand("items.data.price.tiers")

	for _, item := range items {
		p := new(stripe.SubscriptionItemsParams)

		if item.ID != "" {
			p.ID = stripe.String(item.ID)
		}

		if item.Deleted {
			p.Deleted = stripe.Bool(true)
			// metered items refuse deletion while usage is pending
			p.ClearUsage = stripe.Bool(true)
		} else if item.PriceID != "" {
			p.Price = stripe.String(item.PriceID)
		}

		if item.Quantity != nil && !item.Deleted {
			p.Quantity = stripe.Int64(*item.Quantity)
		}

		params.Items = append(params.Items, p)
	}

	sub, err := c.api.Subscriptions.Update(subscriptionID, params)
	c.observe(err)
	if err != nil {
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}

	return toSubscription(sub), nil
}

func (c *Client) CancelSubscription(ctx context.Context, subscriptionID string) (*types.Subscription, error) {
	ctx, span := c.tracer.Start(ctx, "payments.Client.CancelSubscription")
	defer span.End()

	sub, err := c.api.Subscriptions.Cancel(subscriptionID, &stripe.SubscriptionCancelParams{Params: c.params(ctx)})
	c.observe(err)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel subscription: %w", err)
	}

	return toSubscription(sub), nil
}

// ReportUsage sets the metered quantity of the item, it is a total and never an increment
func (c *Client) ReportUsage(ctx context.Context, itemID string, quantity int64, at time.Time) error {
	ctx, span := c.tracer.Start(ctx, "payments.Client.ReportUsage")
	defer span.End()

	_, err := c.api.UsageRecords.New(&stripe.UsageRecordParams{
		Params:           c.params(ctx),
		SubscriptionItem: stripe.String(itemID),
		Quantity:         stripe.Int64(quantity),
		Timestamp:        stripe.Int64(at.Unix()),
		Action:           stripe.String(stripe.UsageRecordActionSet),
	})
	c.observe(err)
	if err != nil {
		return fmt.Errorf("failed to report usage: %w", err)
	}

	return nil
}

func (c *Client) GetPrice(ctx context.Context, priceID string) (*types.Price, error) {
	ctx, span := c.tracer.Start(ctx, "payments.Client.GetPrice")
	defer span.End()

	params := &stripe.PriceParams{Params: c.params(ctx)}
	params.AddExpand("tiers")

	price, err := c.api.Prices.Get(priceID, params)
	c.observe(err)
	if err != nil {
		return nil, fmt.Errorf("failed to get price: %w", err)
	}

	p := toPrice(price)
	return &p, nil
}

func (c *Client) GetSetupIntent(ctx context.Context, setupIntentID string) (*SetupIntent, error) {
	ctx, span := c.tracer.Start(ctx, "payments.Client.GetSetupIntent")
	defer span.End()

	si, err := c.api.SetupIntents.Get(setupIntentID, &stripe.SetupIntentParams{Params: c.params(ctx)})
	c.observe(err)
	if err != nil {
		return nil, fmt.Errorf("failed to get setup intent: %w", err)
	}

	intent := &SetupIntent{ID: si.ID, Metadata: si.Metadata}
	if si.Customer != nil {
		intent.CustomerID = si.Customer.ID
	}
	if si.PaymentMethod != nil {
		intent.PaymentMethodID = si.PaymentMethod.ID
	}

	return intent, nil
}

func (c *Client) CreateCheckoutSession(ctx context.Context, req *CheckoutRequest) (*types.CheckoutSession, error) {
	ctx, span := c.tracer.Start(ctx, "payments.Client.CreateCheckoutSession")
	defer span.End()

	params := &stripe.CheckoutSessionParams{
		Params:             c.params(ctx),
		Mode:               stripe.String(req.Mode),
		SuccessURL:         stripe.String(c.successURL),
		CancelURL:          stripe.String(c.cancelURL),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Metadata:           req.Metadata,
	}

	if req.CustomerID != "" {
		params.Customer = stripe.String(req.CustomerID)
	} else if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}

	if req.ClientReferenceID != "" {
		params.ClientReferenceID = stripe.String(req.ClientReferenceID)
	}

	switch req.Mode {
	case CheckoutModeSubscription:
		params.SubscriptionData = &stripe.CheckoutSessionSubscriptionDataParams{Metadata: req.Metadata}
		for _, line := range req.Lines {
			item := &stripe.CheckoutSessionLineItemParams{Price: stripe.String(line.PriceID)}
			if line.Quantity != nil {
				item.Quantity = stripe.Int64(*line.Quantity)
			}
			params.LineItems = append(params.LineItems, item)
		}
	case CheckoutModeSetup:
		params.SetupIntentData = &stripe.CheckoutSessionSetupIntentDataParams{Metadata: req.Metadata}
	default:
		return nil, fmt.Errorf("unsupported checkout mode %q", req.Mode)
	}

	session, err := c.api.CheckoutSessions.New(params)
	c.observe(err)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	return &types.CheckoutSession{ID: session.ID, URL: session.URL}, nil
}

func (c *Client) ListInvoices(ctx context.Context, customerID string, limit int64) ([]*types.Invoice, error) {
	ctx, span := c.tracer.Start(ctx, "payments.Client.ListInvoices")
	defer span.End()

	params := &stripe.InvoiceListParams{Customer: stripe.String(customerID)}
	params.Context = ctx
	params.Limit = stripe.Int64(limit)
	params.Single = true

	invoices := make([]*types.Invoice, 0)

	iter := c.api.Invoices.List(params)
	for iter.Next() {
		invoices = append(invoices, toInvoice(iter.Invoice()))
	}

	err := iter.Err()
	c.observe(err)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	return invoices, nil
}

// ConstructEvent verifies the signature header against the endpoint secret
func (c *Client) ConstructEvent(payload []byte, signature string) (*Event, error) {
	event, err := webhook.ConstructEventWithOptions(
		payload,
		signature,
		c.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true},
	)
	if err != nil {
		return nil, err
	}

	e := &Event{ID: event.ID, Type: string(event.Type)}
	if event.Data != nil {
		e.Raw = event.Data.Raw
	}

	return e, nil
}

func unixTime(ts int64) *time.Time {
	if ts == 0 {
		return nil
	}

	t := time.Unix(ts, 0).UTC()
	return &t
}

func toPrice(p *stripe.Price) types.Price {
	if p == nil {
		return types.Price{}
	}

	price := types.Price{ID: p.ID, Currency: string(p.Currency), UnitAmount: p.UnitAmount}
	for _, tier := range p.Tiers {
		if tier == nil {
			continue
		}
		price.Tiers = append(price.Tiers, types.PriceTier{UpTo: tier.UpTo, UnitAmount: tier.UnitAmount})
	}

	return price
}

func toSubscription(s *stripe.Subscription) *types.Subscription {
	sub := &types.Subscription{
		ID:                 s.ID,
		Status:             string(s.Status),
		CurrentPeriodStart: unixTime(s.CurrentPeriodStart),
		CurrentPeriodEnd:   unixTime(s.CurrentPeriodEnd),
		TrialStart:         unixTime(s.TrialStart),
		TrialEnd:           unixTime(s.TrialEnd),
		Metadata:           s.Metadata,
	}

	if s.Customer != nil {
		sub.CustomerID = s.Customer.ID
	}

	if s.Items != nil {
		for _, item := range s.Items.Data {
			if item == nil {
				continue
			}
			sub.Items = append(sub.Items, types.LineItem{
				ID:       item.ID,
				Quantity: item.Quantity,
				Price:    toPrice(item.Price),
			})
		}
	}

	return sub
}

func toInvoice(i *stripe.Invoice) *types.Invoice {
	return &types.Invoice{
		ID:         i.ID,
		Number:     i.Number,
		Status:     string(i.Status),
		Currency:   string(i.Currency),
		AmountDue:  i.AmountDue,
		AmountPaid: i.AmountPaid,
		Paid:       i.Paid,
		HostedURL:  i.HostedInvoiceURL,
		Created:    time.Unix(i.Created, 0).UTC(),
		PeriodEnd:  unixTime(i.PeriodEnd),
	}
}

// MetadataInt64 reads an integer metadata entry written by this service
func MetadataInt64(metadata map[string]string, key string) (int64, error) {
	v, ok := metadata[key]
	if !ok {
		return 0, fmt.Errorf("metadata %q is missing", key)
	}

	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("metadata %q is not a number: %w", key, err)
	}

	return n, nil
}

func NewClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	c := new(Client)

	httpClient := &http.Client{
		Timeout:   cfg.Timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	backendConfig := func() *stripe.BackendConfig {
		bc := &stripe.BackendConfig{
			HTTPClient:        httpClient,
			LeveledLogger:     logger,
			MaxNetworkRetries: stripe.Int64(cfg.MaxRetries),
		}
		if cfg.APIURL != "" {
			bc.URL = stripe.String(cfg.APIURL)
		}
		return bc
	}

	backends := &stripe.Backends{
		API:     stripe.GetBackendWithConfig(stripe.APIBackend, backendConfig()),
		Connect: stripe.GetBackendWithConfig(stripe.ConnectBackend, backendConfig()),
		Uploads: stripe.GetBackendWithConfig(stripe.UploadsBackend, backendConfig()),
	}

	c.api = client.New(cfg.SecretKey, backends)
	c.webhookSecret = cfg.WebhookSecret
	c.successURL = cfg.SuccessURL
	c.cancelURL = cfg.CancelURL

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}
