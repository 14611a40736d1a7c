// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package usage

type Config struct {
	// FreeTierUsageLimitMB is the storage a team without billing may use before it is suspended
	FreeTierUsageLimitMB int64
	// AlertRatio is the share of the included storage above which billed teams are flagged
	AlertRatio        float64
	StorageTierUnitMB int64
	SupportEmail      string
}

func NewConfig(freeTierUsageLimitMB int64, alertRatio float64, storageTierUnitMB int64, supportEmail string) *Config {
	c := new(Config)
	c.FreeTierUsageLimitMB = freeTierUsageLimitMB
	c.AlertRatio = alertRatio
	c.StorageTierUnitMB = storageTierUnitMB
	c.SupportEmail = supportEmail

	return c
}
