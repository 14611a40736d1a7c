// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package usage

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/canonical/billing-service/internal/logging"
	"github.com/canonical/billing-service/internal/monitoring"
	"github.com/canonical/billing-service/internal/tracing"
)

// Job is the daily storage usage update: collect, store, report
type Job struct {
	collector CollectorInterface
	reporter  ReporterInterface
	storage   StorageInterface
	lock      LockInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (j *Job) Run(ctx context.Context) error {
	ctx, span := j.tracer.Start(ctx, "usage.Job.Run")
	defer span.End()

	acquired, err := j.lock.Acquire(ctx)
	if err != nil {
		return err
	}

	if !acquired {
		j.logger.Infof("storage usage update already running, skipping")
		return nil
	}

	defer func() {
		if err := j.lock.Release(ctx); err != nil {
			j.logger.Errorf("failed to release job lock: %v", err)
		}
	}()

	start := time.Now()

	res, err := j.collector.Collect(ctx)
	if err != nil {
		return err
	}

	var errs []error
	for _, teamID := range slices.Sorted(maps.Keys(res.Teams)) {
		if err := j.storage.UpdateTeamUsage(ctx, teamID, res.Teams[teamID]); err != nil {
			j.logger.Errorf("failed to update usage of team %d: %v", teamID, err)
			errs = append(errs, fmt.Errorf("team %d: %w", teamID, err))
		}
	}

	teams, err := j.storage.ListTeams(ctx)
	if err != nil {
		return errors.Join(append(errs, err)...)
	}

	if err := j.reporter.Report(ctx, teams); err != nil {
		errs = append(errs, err)
	}

	j.logger.Infow("storage usage update finished",
		"teams_updated", len(res.Teams),
		"teams_reported", len(teams),
		"failures", len(errs),
		"duration", time.Since(start).String(),
	)

	return errors.Join(errs...)
}

func NewJob(collector CollectorInterface, reporter ReporterInterface, storage StorageInterface, lock LockInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Job {
	j := new(Job)

	j.collector = collector
	j.reporter = reporter
	j.storage = storage
	j.lock = lock

	j.tracer = tracer
	j.monitor = monitor
	j.logger = logger

	return j
}
