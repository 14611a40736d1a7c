// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package usage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/canonical/billing-service/internal/logging"
)

func TestScheduler_Next(t *testing.T) {
	from := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		hour     int
		minute   int
		location *time.Location
		expected time.Time
	}{
		{
			name:     "later today",
			hour:     22,
			minute:   15,
			location: time.UTC,
			expected: time.Date(2026, 3, 14, 22, 15, 0, 0, time.UTC),
		},
		{
			name:     "tomorrow",
			hour:     2,
			location: time.UTC,
			expected: time.Date(2026, 3, 15, 2, 0, 0, 0, time.UTC),
		},
		{
			name:     "configured timezone",
			hour:     2,
			location: time.FixedZone("UTC+1", 3600),
			expected: time.Date(2026, 3, 15, 1, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewScheduler(NewMockJobInterface(gomock.NewController(t)), tt.hour, tt.minute, tt.location, logging.NewNoopLogger())
			require.NoError(t, err)

			next := s.Next(from)
			assert.True(t, next.Equal(tt.expected), "expected %s, got %s", tt.expected, next)
		})
	}
}

func TestScheduler_InvalidTime(t *testing.T) {
	_, err := NewScheduler(nil, 24, 0, time.UTC, logging.NewNoopLogger())
	assert.Error(t, err)

	_, err = NewScheduler(nil, 2, 60, time.UTC, logging.NewNoopLogger())
	assert.Error(t, err)
}

func TestScheduler_RunLogsFailures(t *testing.T) {
	ctrl := gomock.NewController(t)

	job := NewMockJobInterface(ctrl)
	logger := NewMockLoggerInterface(ctrl)

	job.EXPECT().Run(gomock.Any()).Return(errors.New("team 1: timeout"))
	logger.EXPECT().Errorf("storage usage update failed: %v", gomock.Any())

	s, err := NewScheduler(job, 2, 0, time.UTC, logger)
	require.NoError(t, err)

	s.run()
}

func TestScheduler_StartStop(t *testing.T) {
	s, err := NewScheduler(NewMockJobInterface(gomock.NewController(t)), 2, 0, time.UTC, logging.NewNoopLogger())
	require.NoError(t, err)

	s.Start()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	s.Stop(ctx)
	assert.NoError(t, ctx.Err(), "stop should not wait for an idle scheduler")
}

func TestCronLogger(t *testing.T) {
	logger := NewMockLoggerInterface(gomock.NewController(t))
	l := &cronLogger{logger: logger}

	logger.EXPECT().Debugw("wake", "now", "02:00")
	logger.EXPECT().Errorw("panic", "stack", "...", "error", gomock.Any())

	l.Info("wake", "now", "02:00")
	l.Error(errors.New("boom"), "panic", "stack", "...")
}
