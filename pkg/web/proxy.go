// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"
	"net/http/httputil"
	"net/url"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/canonical/billing-service/internal/http/types"
	"github.com/canonical/billing-service/internal/logging"
	"github.com/canonical/billing-service/internal/monitoring"
)

// newSyncBackendProxy forwards requests untouched, the sync backend authenticates them itself
func newSyncBackendProxy(target *url.URL, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) http.Handler {
	tags := map[string]string{"component": "sync-backend"}

	return &httputil.ReverseProxy{
		Rewrite: func(r *httputil.ProxyRequest) {
			r.SetURL(target)
			r.SetXForwarded()
		},
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		ModifyResponse: func(*http.Response) error {
			monitor.SetDependencyAvailability(tags, 1)
			return nil
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			logger.Errorf("failed to proxy %s %s: %v", r.Method, r.URL.Path, err)
			monitor.SetDependencyAvailability(tags, 0)

			if err := types.WriteError(w, http.StatusBadGateway, "Sync backend unavailable"); err != nil {
				logger.Errorf("failed to write response: %v", err)
			}
		},
	}
}
