// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/canonical/billing-service/internal/logging"
	"github.com/canonical/billing-service/internal/monitoring"
)

var _ monitoring.MonitorInterface = (*Monitor)(nil)

type Monitor struct {
	service string

	responseTime      *prometheus.HistogramVec
	dependencies      *prometheus.GaugeVec
	storageUsageRatio *prometheus.GaugeVec
	usageAlerts       *prometheus.CounterVec

	logger logging.LoggerInterface
}

func (m *Monitor) GetService() string {
	return m.service
}

func (m *Monitor) SetResponseTimeMetric(tags map[string]string, value float64) error {
	if m.responseTime == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.responseTime.With(tags).Observe(value)

	return nil
}

func (m *Monitor) SetDependencyAvailability(tags map[string]string, value float64) error {
	if m.dependencies == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.dependencies.With(tags).Set(value)

	return nil
}

func (m *Monitor) SetStorageUsageRatio(tags map[string]string, value float64) error {
	if m.storageUsageRatio == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.storageUsageRatio.With(tags).Set(value)

	return nil
}

func (m *Monitor) IncUsageAlerts(tags map[string]string) error {
	if m.usageAlerts == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.usageAlerts.With(tags).Inc()

	return nil
}

func (m *Monitor) registerHistograms() {
	m.responseTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:        "http_response_time_seconds",
			Help:        "http_response_time_seconds",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"route", "status"},
	)

	if err := prometheus.Register(m.responseTime); err != nil {
		m.logger.Debugf("metric already registered: %v", err)
	}
}

func (m *Monitor) registerGauges() {
	m.dependencies = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name:        "dependency_available",
			Help:        "dependency_available",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"component"},
	)

	m.storageUsageRatio = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name:        "team_storage_usage_ratio",
			Help:        "ratio between a team's storage usage and the storage included in its tier",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"team"},
	)

	for _, g := range []prometheus.Collector{m.dependencies, m.storageUsageRatio} {
		if err := prometheus.Register(g); err != nil {
			m.logger.Debugf("metric already registered: %v", err)
		}
	}
}

func (m *Monitor) registerCounters() {
	m.usageAlerts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "team_storage_usage_alerts_total",
			Help:        "number of times a team crossed the storage usage alert ratio",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"tier"},
	)

	if err := prometheus.Register(m.usageAlerts); err != nil {
		m.logger.Debugf("metric already registered: %v", err)
	}
}

func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.logger = logger

	m.registerHistograms()
	m.registerGauges()
	m.registerCounters()

	return m
}
