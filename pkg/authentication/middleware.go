// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"errors"
	"net/http"
	"strings"

	"github.com/canonical/billing-service/internal/http/types"
	"github.com/canonical/billing-service/internal/logging"
	"github.com/canonical/billing-service/internal/monitoring"
	"github.com/canonical/billing-service/internal/tracing"
)

const bearerPrefix = "Bearer "

// Middleware guards the admin API with a bearer token
type Middleware struct {
	verifier TokenVerifierInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (m *Middleware) Authenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Authenticate")
			defer span.End()

			token, found := bearerToken(r.Header)
			if !found {
				writeStatus(w, http.StatusUnauthorized, "missing authorization header", m.logger)
				return
			}

			subject, err := m.verifier.VerifyToken(ctx, token)
			switch {
			case errors.Is(err, ErrAdminDisabled):
				writeStatus(w, http.StatusServiceUnavailable, "admin api is not configured", m.logger)
				return
			case err != nil:
				m.logger.Debugf("admin token rejected: %v", err)
				m.logger.Security().AuthnFailure("", r.URL.Path)
				writeStatus(w, http.StatusUnauthorized, "invalid token", m.logger)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSubject(ctx, subject)))
		})
	}
}

// bearerToken only accepts the RFC 6750 "Bearer <token>" form
func bearerToken(headers http.Header) (string, bool) {
	token, found := strings.CutPrefix(headers.Get("Authorization"), bearerPrefix)
	if !found || token == "" {
		return "", false
	}

	return token, true
}

func writeStatus(w http.ResponseWriter, status int, message string, logger logging.LoggerInterface) {
	if err := types.WriteError(w, status, message); err != nil {
		logger.Errorf("failed to write %d response: %v", status, err)
	}
}

func NewMiddleware(verifier TokenVerifierInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	m := new(Middleware)

	m.verifier = verifier

	m.tracer = tracer
	m.monitor = monitor
	m.logger = logger

	return m
}
