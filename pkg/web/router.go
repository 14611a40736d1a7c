// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"
	"net/url"
	"time"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/billing-service/internal/db"
	"github.com/canonical/billing-service/internal/logging"
	"github.com/canonical/billing-service/internal/monitoring"
	"github.com/canonical/billing-service/internal/tracing"
	"github.com/canonical/billing-service/pkg/admin"
	"github.com/canonical/billing-service/pkg/authentication"
	"github.com/canonical/billing-service/pkg/billing"
	"github.com/canonical/billing-service/pkg/limits"
	"github.com/canonical/billing-service/pkg/metrics"
	"github.com/canonical/billing-service/pkg/status"
	"github.com/canonical/billing-service/pkg/team"
	"github.com/canonical/billing-service/pkg/webhooks"
)

type Config struct {
	SyncBackendURL *url.URL
	AllowedOrigins []string
	RequestTimeout time.Duration
}

// Services are the domain services exposed over http
type Services struct {
	Billing  billing.ServiceInterface
	Webhooks webhooks.ServiceInterface
	Team     team.ServiceInterface
	Admin    admin.ServiceInterface
}

func NewRouter(
	cfg Config,
	services Services,
	resolver *authentication.PrincipalResolver,
	adminAuth *authentication.Middleware,
	dbClient db.DBClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		middleware.RealIP,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(cfg.AllowedOrigins),
		middleware.Timeout(cfg.RequestTimeout),
		middleware.StripSlashes,
		db.TransactionMiddleware(dbClient, logger),
	)

	router.Use(middlewares...)

	gate := limits.NewGate(services.Billing, resolver, tracer, monitor, logger)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(dbClient, tracer, monitor, logger).RegisterEndpoints(router)
	webhooks.NewAPI(services.Webhooks, logger).RegisterEndpoints(router)
	admin.NewAPI(services.Admin, adminAuth.Authenticate(), logger).RegisterEndpoints(router)

	router.Group(func(r chi.Router) {
		r.Use(resolver.RequirePrincipal(), gate.Collaborators(), gate.PlanLimits())

		billing.NewAPI(services.Billing, logger).RegisterEndpoints(r)
		team.NewAPI(services.Team, logger).RegisterEndpoints(r)
	})

	// the sync backend authenticates its own routes, the gates only resolve callers they can
	router.Group(func(r chi.Router) {
		r.Use(gate.Collaborators(), gate.PlanLimits())

		r.Handle("/api/v1/*", newSyncBackendProxy(cfg.SyncBackendURL, monitor, logger))
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
