// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/canonical/billing-service/internal/logging"
)

func TestMonitorMetrics(t *testing.T) {
	m := NewMonitor("billing-service-test", logging.NewNoopLogger())

	if err := m.SetDependencyAvailability(map[string]string{"component": "stripe"}, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v := testutil.ToFloat64(m.dependencies.WithLabelValues("stripe")); v != 1 {
		t.Errorf("expected dependency gauge to be 1, got %v", v)
	}

	if err := m.SetStorageUsageRatio(map[string]string{"team": "42"}, 0.95); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v := testutil.ToFloat64(m.storageUsageRatio.WithLabelValues("42")); v != 0.95 {
		t.Errorf("expected usage ratio 0.95, got %v", v)
	}

	for range 2 {
		if err := m.IncUsageAlerts(map[string]string{"tier": "PRO"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if v := testutil.ToFloat64(m.usageAlerts.WithLabelValues("PRO")); v != 2 {
		t.Errorf("expected 2 usage alerts, got %v", v)
	}

	if err := m.SetResponseTimeMetric(map[string]string{"route": "GET/plan", "status": "200"}, 0.1); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestMonitorGetService(t *testing.T) {
	m := &Monitor{service: "svc"}

	if m.GetService() != "svc" {
		t.Errorf("expected svc, got %s", m.GetService())
	}

	if err := m.SetResponseTimeMetric(nil, 1); err == nil {
		t.Error("expected error for uninstantiated metric")
	}
}
