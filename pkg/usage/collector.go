// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package usage

import (
	"context"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"time"

	"github.com/canonical/billing-service/internal/logging"
	"github.com/canonical/billing-service/internal/monitoring"
	"github.com/canonical/billing-service/internal/tracing"
	"github.com/canonical/billing-service/internal/types"
)

// user data lives under user_<id>/
var ownerPattern = regexp.MustCompile(`^user_(\d+)(?:/|$)`)

// Collector turns a storage scan into per team usage
type Collector struct {
	source  SourceInterface
	storage StorageInterface

	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Collect scans the storage and records one audit sample per user.
// Nothing is written when the scan fails.
func (c *Collector) Collect(ctx context.Context) (*Result, error) {
	ctx, span := c.tracer.Start(ctx, "usage.Collector.Collect")
	defer span.End()

	entries, err := c.source.List(ctx)
	if err != nil {
		c.logger.Errorf("failed to scan storage usage: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrScanFailed, err)
	}

	res := &Result{
		Teams: make(map[int64]int64),
		Users: make(map[int64]int64),
	}

	bytesByUser := make(map[int64]int64)
	for _, e := range entries {
		userID, ok := ownerOf(e.Name)
		if !ok {
			c.logger.Warnf("skipping storage entry %q: unexpected format", e.Name)
			res.Skipped++
			continue
		}
		bytesByUser[userID] += e.Size
	}

	userTeams, err := c.storage.ListUserTeams(ctx)
	if err != nil {
		return nil, err
	}

	recorded, err := c.storage.SumUserUsages(ctx)
	if err != nil {
		return nil, err
	}

	day := c.now().UTC().Truncate(24 * time.Hour)
	samples := make([]*types.Usage, 0, len(bytesByUser))

	for _, userID := range slices.Sorted(maps.Keys(bytesByUser)) {
		teamID, ok := userTeams[userID]
		if !ok {
			c.logger.Warnf("storage of user %d has no team, skipping", userID)
			res.Skipped++
			continue
		}

		mb := toMB(bytesByUser[userID])
		res.Users[userID] = mb
		res.Teams[teamID] += mb

		samples = append(samples, &types.Usage{UserID: userID, Date: day, Usage: mb - recorded[userID]})
	}

	// the samples are an audit trail, the next run compensates a missed one
	if err := c.storage.CreateUsages(ctx, samples); err != nil {
		c.logger.Errorf("failed to record usage samples: %v", err)
	}

	c.logger.Infow("collected storage usage", "entries", len(entries), "users", len(res.Users), "teams", len(res.Teams), "skipped", res.Skipped)

	return res, nil
}

func ownerOf(name string) (int64, bool) {
	m := ownerPattern.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}

	id, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, false
	}

	return id, true
}

func NewCollector(source SourceInterface, storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Collector {
	c := new(Collector)

	c.source = source
	c.storage = storage
	c.now = time.Now

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}
