// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package usage

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/canonical/billing-service/internal/logging"
)

// Scheduler runs the job once a day, a trigger firing while the previous run
// is still going is dropped
type Scheduler struct {
	cron     *cron.Cron
	schedule cron.Schedule
	job      JobInterface

	logger logging.LoggerInterface
}

func (s *Scheduler) Start() {
	s.logger.Infof("storage usage update scheduled, next run at %s", s.Next(time.Now()))
	s.cron.Start()
}

// Stop waits for a running job to finish or ctx to be done
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.logger.Warnf("storage usage update still running at shutdown")
	}
}

// Next is the first run after t
func (s *Scheduler) Next(t time.Time) time.Time {
	return s.schedule.Next(t)
}

func (s *Scheduler) run() {
	if err := s.job.Run(context.Background()); err != nil {
		s.logger.Errorf("storage usage update failed: %v", err)
	}
}

// cronLogger sends the cron library logs to the service logger
type cronLogger struct {
	logger logging.LoggerInterface
}

func (l *cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debugw(msg, keysAndValues...)
}

func (l *cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Errorw(msg, append(keysAndValues, "error", err)...)
}

func NewScheduler(job JobInterface, hour, minute int, location *time.Location, logger logging.LoggerInterface) (*Scheduler, error) {
	spec := fmt.Sprintf("%d %d * * *", minute, hour)

	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", spec, err)
	}

	// schedules parsed outside of cron carry no location
	if sched, ok := schedule.(*cron.SpecSchedule); ok {
		sched.Location = location
	}

	l := &cronLogger{logger: logger}

	s := new(Scheduler)
	s.job = job
	s.schedule = schedule
	s.logger = logger
	s.cron = cron.New(
		cron.WithLocation(location),
		cron.WithLogger(l),
		cron.WithChain(cron.Recover(l), cron.SkipIfStillRunning(l)),
	)
	s.cron.Schedule(schedule, cron.FuncJob(s.run))

	return s, nil
}
