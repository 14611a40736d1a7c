// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package usage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/canonical/billing-service/internal/types"
)

type jobMocks struct {
	collector *MockCollectorInterface
	reporter  *MockReporterInterface
	storage   *MockStorageInterface
	lock      *MockLockInterface
	logger    *MockLoggerInterface
}

func newTestJob(t *testing.T) (*Job, *jobMocks) {
	ctrl := gomock.NewController(t)

	m := &jobMocks{
		collector: NewMockCollectorInterface(ctrl),
		reporter:  NewMockReporterInterface(ctrl),
		storage:   NewMockStorageInterface(ctrl),
		lock:      NewMockLockInterface(ctrl),
		logger:    NewMockLoggerInterface(ctrl),
	}

	return NewJob(m.collector, m.reporter, m.storage, m.lock, passthroughTracer(ctrl), NewMockMonitorInterface(ctrl), m.logger), m
}

func TestJob_Run(t *testing.T) {
	teams := []*types.Team{{ID: 1}, {ID: 2}, {ID: 3}}

	tests := []struct {
		name       string
		setupMocks func(*jobMocks)
		wantErr    bool
	}{
		{
			name: "collects, stores and reports",
			setupMocks: func(m *jobMocks) {
				gomock.InOrder(
					m.lock.EXPECT().Acquire(gomock.Any()).Return(true, nil),
					m.collector.EXPECT().Collect(gomock.Any()).Return(&Result{Teams: map[int64]int64{2: 40, 1: 3}}, nil),
					m.storage.EXPECT().UpdateTeamUsage(gomock.Any(), int64(1), int64(3)).Return(nil),
					m.storage.EXPECT().UpdateTeamUsage(gomock.Any(), int64(2), int64(40)).Return(nil),
					m.storage.EXPECT().ListTeams(gomock.Any()).Return(teams, nil),
					m.reporter.EXPECT().Report(gomock.Any(), teams).Return(nil),
					m.lock.EXPECT().Release(gomock.Any()).Return(nil),
				)
				m.logger.EXPECT().Infow(gomock.Any(), gomock.Any())
			},
		},
		{
			name: "another replica holds the lock",
			setupMocks: func(m *jobMocks) {
				m.lock.EXPECT().Acquire(gomock.Any()).Return(false, nil)
				m.logger.EXPECT().Infof(gomock.Any())
			},
		},
		{
			name: "lock failure",
			setupMocks: func(m *jobMocks) {
				m.lock.EXPECT().Acquire(gomock.Any()).Return(false, errors.New("redis is down"))
			},
			wantErr: true,
		},
		{
			name: "scan failure stores nothing",
			setupMocks: func(m *jobMocks) {
				m.lock.EXPECT().Acquire(gomock.Any()).Return(true, nil)
				m.collector.EXPECT().Collect(gomock.Any()).Return(nil, ErrScanFailed)
				m.lock.EXPECT().Release(gomock.Any()).Return(nil)
			},
			wantErr: true,
		},
		{
			name: "a failed team update does not stop the others",
			setupMocks: func(m *jobMocks) {
				m.lock.EXPECT().Acquire(gomock.Any()).Return(true, nil)
				m.collector.EXPECT().Collect(gomock.Any()).Return(&Result{Teams: map[int64]int64{1: 3, 2: 40}}, nil)
				m.storage.EXPECT().UpdateTeamUsage(gomock.Any(), int64(1), int64(3)).Return(errors.New("deadlock detected"))
				m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
				m.storage.EXPECT().UpdateTeamUsage(gomock.Any(), int64(2), int64(40)).Return(nil)
				m.storage.EXPECT().ListTeams(gomock.Any()).Return(teams, nil)
				m.reporter.EXPECT().Report(gomock.Any(), teams).Return(nil)
				m.lock.EXPECT().Release(gomock.Any()).Return(nil)
				m.logger.EXPECT().Infow(gomock.Any(), gomock.Any())
			},
			wantErr: true,
		},
		{
			name: "report failures are returned",
			setupMocks: func(m *jobMocks) {
				m.lock.EXPECT().Acquire(gomock.Any()).Return(true, nil)
				m.collector.EXPECT().Collect(gomock.Any()).Return(&Result{Teams: map[int64]int64{}}, nil)
				m.storage.EXPECT().ListTeams(gomock.Any()).Return(teams, nil)
				m.reporter.EXPECT().Report(gomock.Any(), teams).Return(errors.New("team 2: timeout"))
				m.lock.EXPECT().Release(gomock.Any()).Return(errors.New("redis is down"))
				m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
				m.logger.EXPECT().Infow(gomock.Any(), gomock.Any())
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j, m := newTestJob(t)
			tt.setupMocks(m)

			err := j.Run(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
