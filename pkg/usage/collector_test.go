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
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/billing-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package usage -destination ./mock_usage.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package usage -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package usage -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package usage -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

var runDay = time.Date(2026, 3, 14, 2, 0, 5, 0, time.UTC)

func passthroughTracer(ctrl *gomock.Controller) *MockTracingInterface {
	tracer := NewMockTracingInterface(ctrl)
	tracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		},
	).AnyTimes()
	return tracer
}

func newTestCollector(t *testing.T) (*Collector, *MockSourceInterface, *MockStorageInterface, *MockLoggerInterface) {
	ctrl := gomock.NewController(t)

	source := NewMockSourceInterface(ctrl)
	storage := NewMockStorageInterface(ctrl)
	logger := NewMockLoggerInterface(ctrl)

	c := NewCollector(source, storage, passthroughTracer(ctrl), NewMockMonitorInterface(ctrl), logger)
	c.now = func() time.Time { return runDay }

	return c, source, storage, logger
}

func TestCollector_Collect(t *testing.T) {
	c, source, storage, logger := newTestCollector(t)

	source.EXPECT().List(gomock.Any()).Return([]Entry{
		{Name: "user_5/foo", Size: 1_000_000},
		{Name: "user_5/bar", Size: 2_000_000},
		{Name: "user_6/notes/a.bin", Size: 1_499_999},
		{Name: "user_x/baz", Size: 5_000_000},
		{Name: "avatar.png", Size: 7},
		{Name: "user_9/orphan", Size: 3_000_000},
	}, nil)
	storage.EXPECT().ListUserTeams(gomock.Any()).Return(map[int64]int64{5: 1, 6: 1, 7: 2}, nil)
	storage.EXPECT().SumUserUsages(gomock.Any()).Return(map[int64]int64{5: 1}, nil)
	storage.EXPECT().CreateUsages(gomock.Any(), []*types.Usage{
		{UserID: 5, Date: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), Usage: 2},
		{UserID: 6, Date: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), Usage: 1},
	}).Return(nil)
	logger.EXPECT().Warnf(gomock.Any(), gomock.Any()).Times(3)
	logger.EXPECT().Infow(gomock.Any(), gomock.Any()).AnyTimes()

	res, err := c.Collect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, map[int64]int64{1: 4}, res.Teams)
	assert.Equal(t, map[int64]int64{5: 3, 6: 1}, res.Users)
	assert.Equal(t, 3, res.Skipped)
}

func TestCollector_CollectOnlyUnparseableEntries(t *testing.T) {
	c, source, storage, logger := newTestCollector(t)

	source.EXPECT().List(gomock.Any()).Return([]Entry{{Name: "tmp/upload", Size: 10}}, nil)
	storage.EXPECT().ListUserTeams(gomock.Any()).Return(map[int64]int64{5: 1}, nil)
	storage.EXPECT().SumUserUsages(gomock.Any()).Return(map[int64]int64{}, nil)
	storage.EXPECT().CreateUsages(gomock.Any(), []*types.Usage{}).Return(nil)
	logger.EXPECT().Warnf(gomock.Any(), gomock.Any())
	logger.EXPECT().Infow(gomock.Any(), gomock.Any()).AnyTimes()

	res, err := c.Collect(context.Background())
	require.NoError(t, err)
	assert.Empty(t, res.Teams)
}

func TestCollector_CollectScanFailureWritesNothing(t *testing.T) {
	c, source, _, logger := newTestCollector(t)

	source.EXPECT().List(gomock.Any()).Return(nil, errors.New("access denied"))
	logger.EXPECT().Errorf(gomock.Any(), gomock.Any())

	res, err := c.Collect(context.Background())
	assert.ErrorIs(t, err, ErrScanFailed)
	assert.Nil(t, res)
}

func TestCollector_CollectStorageFailure(t *testing.T) {
	c, source, storage, _ := newTestCollector(t)

	source.EXPECT().List(gomock.Any()).Return([]Entry{{Name: "user_5/foo", Size: 1}}, nil)
	storage.EXPECT().ListUserTeams(gomock.Any()).Return(nil, errors.New("database is down"))

	_, err := c.Collect(context.Background())
	assert.Error(t, err)
}

func TestCollector_CollectAuditFailureIsNotFatal(t *testing.T) {
	c, source, storage, logger := newTestCollector(t)

	source.EXPECT().List(gomock.Any()).Return([]Entry{{Name: "user_5/foo", Size: 2_600_000}}, nil)
	storage.EXPECT().ListUserTeams(gomock.Any()).Return(map[int64]int64{5: 1}, nil)
	storage.EXPECT().SumUserUsages(gomock.Any()).Return(map[int64]int64{}, nil)
	storage.EXPECT().CreateUsages(gomock.Any(), gomock.Any()).Return(errors.New("database is down"))
	logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
	logger.EXPECT().Infow(gomock.Any(), gomock.Any()).AnyTimes()

	res, err := c.Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[int64]int64{1: 3}, res.Teams)
}

func TestOwnerOf(t *testing.T) {
	tests := []struct {
		name   string
		id     int64
		parsed bool
	}{
		{name: "user_5/foo", id: 5, parsed: true},
		{name: "user_42", id: 42, parsed: true},
		{name: "user_7/a/b/c", id: 7, parsed: true},
		{name: "user_x/foo"},
		{name: "user_5x/foo"},
		{name: "media/user_5/foo"},
		{name: "avatar.png"},
		{name: "user_99999999999999999999/foo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ownerOf(tt.name)
			assert.Equal(t, tt.parsed, ok)
			assert.Equal(t, tt.id, id)
		})
	}
}

func TestToMB(t *testing.T) {
	assert.Equal(t, int64(0), toMB(499_999))
	assert.Equal(t, int64(1), toMB(500_000))
	assert.Equal(t, int64(3), toMB(3_000_000))
	assert.Equal(t, int64(3), toMB(3_499_999))
}
