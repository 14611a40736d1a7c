// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

type Config struct {
	// FreeTierID is the zero cost tier, addons are never sold on it
	FreeTierID int64
	TrialDays  int64
	// DefaultTaxCountry is used when the caller address can't locate the customer
	DefaultTaxCountry string
	// StorageTierUnitMB converts the included band of a storage price into MB
	StorageTierUnitMB int64
	InvoiceLimit      int64
}

func NewConfig(freeTierID, trialDays int64, defaultTaxCountry string, storageTierUnitMB int64) *Config {
	c := new(Config)
	c.FreeTierID = freeTierID
	c.TrialDays = trialDays
	c.DefaultTaxCountry = defaultTaxCountry
	c.StorageTierUnitMB = storageTierUnitMB
	c.InvoiceLimit = 24

	return c
}
