// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/billing-service/internal/http/types"
	"github.com/canonical/billing-service/internal/logging"
	"github.com/canonical/billing-service/internal/monitoring"
	"github.com/canonical/billing-service/internal/tracing"
	"github.com/canonical/billing-service/internal/version"
)

type Status struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type API struct {
	database PingerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/status", a.alive)
	mux.Get("/api/v0/status/ready", a.ready)
}

func (a *API) alive(w http.ResponseWriter, _ *http.Request) {
	a.write(w, http.StatusOK, Status{Status: "ok", Version: version.Version})
}

// ready reports whether the database answers, load balancers stop routing on a 503
func (a *API) ready(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.ready")
	defer span.End()

	if err := a.database.Ping(ctx); err != nil {
		a.logger.Errorf("database is unreachable: %v", err)
		a.write(w, http.StatusServiceUnavailable, Status{Status: "unavailable", Version: version.Version})
		return
	}

	a.write(w, http.StatusOK, Status{Status: "ok", Version: version.Version})
}

func (a *API) write(w http.ResponseWriter, status int, v any) {
	if err := types.WriteJSON(w, status, v); err != nil {
		a.logger.Errorf("failed to write response: %v", err)
	}
}

func NewAPI(database PingerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.database = database

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
