// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package usage

import (
	"errors"
)

const bytesPerMB = 1_000_000

var ErrScanFailed = errors.New("storage usage scan failed")

// Entry is one user owned storage unit, Name is relative to the scanned root
type Entry struct {
	Name string
	Size int64
}

// Result is the usage observed by one collection run, in MB.
// Teams without any stored data are absent, not zero.
type Result struct {
	Teams map[int64]int64
	Users map[int64]int64
	// Skipped counts the entries whose owner could not be identified
	Skipped int
}

// toMB rounds to the nearest MB
func toMB(bytes int64) int64 {
	return (bytes + bytesPerMB/2) / bytesPerMB
}
