// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/canonical/billing-service/internal/logging"
	"github.com/canonical/billing-service/internal/monitoring"
	"github.com/canonical/billing-service/internal/tracing"
)

// AdminConfig describes which tokens may call the admin API
type AdminConfig struct {
	Issuer          string
	JWKSURL         string
	AllowedSubjects []string
	RequiredScope   string
}

var issuerClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}

// NewAdminVerifier verifies admin tokens against the configured issuer.
// Without an issuer the admin API stays closed.
func NewAdminVerifier(
	ctx context.Context,
	cfg AdminConfig,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (TokenVerifierInterface, error) {
	if cfg.Issuer == "" {
		logger.Warn("admin token issuer is not set, admin routes reject every request")
		return NewDisabledVerifier(), nil
	}

	if len(cfg.AllowedSubjects) == 0 && cfg.RequiredScope == "" {
		return nil, errors.New("admin api needs allowed subjects or a required scope")
	}

	tags := map[string]string{"component": "admin-issuer"}

	idTokenVerifier, err := issuerVerifier(ctx, cfg, logger)
	if err != nil {
		monitor.SetDependencyAvailability(tags, 0)
		return nil, err
	}

	monitor.SetDependencyAvailability(tags, 1)

	return NewJWTVerifier(idTokenVerifier, cfg.AllowedSubjects, cfg.RequiredScope, tracer, monitor, logger), nil
}

// issuerVerifier reads the signing keys from the JWKS URL when given, from OIDC discovery otherwise
func issuerVerifier(ctx context.Context, cfg AdminConfig, logger logging.LoggerInterface) (*oidc.IDTokenVerifier, error) {
	ctx = oidc.ClientContext(ctx, issuerClient)
	config := &oidc.Config{SkipClientIDCheck: true}

	if cfg.JWKSURL != "" {
		logger.Infof("admin tokens are verified with the keys at %s", cfg.JWKSURL)
		return oidc.NewVerifier(cfg.Issuer, oidc.NewRemoteKeySet(ctx, cfg.JWKSURL), config), nil
	}

	provider, err := oidc.NewProvider(ctx, cfg.Issuer)
	if err != nil {
		return nil, err
	}

	logger.Infof("admin tokens are verified with the keys discovered at %s", cfg.Issuer)

	return provider.Verifier(config), nil
}
