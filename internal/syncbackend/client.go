// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package syncbackend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/canonical/billing-service/internal/logging"
	"github.com/canonical/billing-service/internal/monitoring"
	"github.com/canonical/billing-service/internal/tracing"
	"github.com/canonical/billing-service/internal/types"
)

// ErrInvalidCredential is returned when the sync backend refuses the credential
var ErrInvalidCredential = errors.New("invalid credential")

type ClientInterface interface {
	Validate(ctx context.Context, credential string) (*types.UserIdentity, error)
}

type Client struct {
	identityURL string
	client      *http.Client

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Validate forwards the credential untouched and returns the identity it belongs to
func (c *Client) Validate(ctx context.Context, credential string) (*types.UserIdentity, error) {
	ctx, span := c.tracer.Start(ctx, "syncbackend.Client.Validate")
	defer span.End()

	if credential == "" {
		return nil, ErrInvalidCredential
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.identityURL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", credential)
	req.Header.Set("Accept", "application/json")

	tags := map[string]string{"component": "sync-backend"}

	resp, err := c.client.Do(req)
	if err != nil {
		c.monitor.SetDependencyAvailability(tags, 0)
		return nil, fmt.Errorf("failed to reach sync backend: %w", err)
	}
	defer resp.Body.Close()

	c.monitor.SetDependencyAvailability(tags, 1)

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, ErrInvalidCredential
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("sync backend returned %d: %s", resp.StatusCode, body)
	}

	identity := new(types.UserIdentity)
	if err := json.NewDecoder(resp.Body).Decode(identity); err != nil {
		return nil, fmt.Errorf("malformed identity response: %w", err)
	}

	if identity.Username == "" {
		return nil, ErrInvalidCredential
	}

	return identity, nil
}

func NewClient(baseURL, identityPath string, timeout time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid sync backend url: %w", err)
	}

	c := new(Client)
	c.identityURL = u.JoinPath(identityPath).String()
	c.client = &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c, nil
}
