// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package team

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/billing-service/internal/email"
	"github.com/canonical/billing-service/internal/storage"
	"github.com/canonical/billing-service/internal/types"
	"github.com/canonical/billing-service/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package team -destination ./mock_team.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package team -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package team -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package team -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

var now = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

type serviceMocks struct {
	storage *MockStorageInterface
	sender  *MockSenderInterface
	logger  *MockLoggerInterface
}

func newTestService(t *testing.T, span string) (*Service, *serviceMocks) {
	ctrl := gomock.NewController(t)

	m := &serviceMocks{
		storage: NewMockStorageInterface(ctrl),
		sender:  NewMockSenderInterface(ctrl),
		logger:  NewMockLoggerInterface(ctrl),
	}

	tracer := NewMockTracingInterface(ctrl)
	tracer.EXPECT().Start(gomock.Any(), span).DoAndReturn(
		func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		},
	)

	svc := NewService(m.storage, m.sender, &Config{AcceptURLFormat: "https://app.example.com/signup?invite=%s", FreeTierID: 1}, tracer, NewMockMonitorInterface(ctrl), m.logger)
	svc.now = func() time.Time { return now }

	return svc, m
}

func TestService_GetTeamView(t *testing.T) {
	team := &types.Team{ID: 10, Name: "acme", OwnerID: 1}

	t.Run("owner sees members and pending invites", func(t *testing.T) {
		svc, m := newTestService(t, "team.Service.GetTeamView")

		m.storage.EXPECT().GetTeam(gomock.Any(), int64(10)).Return(team, nil)
		m.storage.EXPECT().ListTeamMembers(gomock.Any(), int64(10)).Return([]*types.TeamMember{
			{User: types.User{ID: 1, Email: "alice@acme.test", IsActive: true}, Profile: types.UserProfile{UserID: 1, TeamID: 10, Name: "alice"}},
			{User: types.User{ID: 3, Email: "carol@acme.test", IsActive: true}, Profile: types.UserProfile{UserID: 3, TeamID: 10, Name: "carol", IsCollaborator: true}},
		}, nil)
		m.storage.EXPECT().ListPendingInvites(gomock.Any(), int64(10)).Return([]*types.Invite{
			{ID: 7, Email: "dave@acme.test", SentDate: now},
		}, nil)

		view, err := svc.GetTeamView(context.Background(), 10, 1)
		if err != nil {
			t.Fatalf("unexpected error %v", err)
		}

		if len(view.Profiles) != 2 || !view.Profiles[1].IsCollaborator || view.Profiles[0].Name != "alice" {
			t.Errorf("unexpected profiles %+v", view.Profiles)
		}
		if len(view.PendingInvites) != 1 || view.PendingInvites[0].Email != "dave@acme.test" {
			t.Errorf("unexpected invites %+v", view.PendingInvites)
		}
	})

	t.Run("members can't see the team", func(t *testing.T) {
		svc, m := newTestService(t, "team.Service.GetTeamView")

		m.storage.EXPECT().GetTeam(gomock.Any(), int64(10)).Return(team, nil)

		if _, err := svc.GetTeamView(context.Background(), 10, 2); !errors.Is(err, ErrNotOwner) {
			t.Errorf("expected ErrNotOwner, got %v", err)
		}
	})
}

func TestService_Invite(t *testing.T) {
	team := &types.Team{ID: 10, Name: "acme", OwnerID: 1}

	tests := []struct {
		name         string
		email        string
		collaborator bool
		setupMocks   func(*serviceMocks)
		expectedErr  error
	}{
		{
			name:  "new user is invited and emailed",
			email: " Dave@Acme.test ",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "dave@acme.test").Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().GetInviteByEmail(gomock.Any(), "dave@acme.test").Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().GetTeam(gomock.Any(), int64(10)).Return(team, nil)
				m.storage.EXPECT().CreateInvite(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, i *types.Invite) (*types.Invite, error) {
					if i.Email != "dave@acme.test" || i.FromTeamID != 10 || i.IsCollaborator || len(i.UID) != 36 {
						t.Errorf("unexpected invite %+v", i)
					}
					created := *i
					created.ID = 7
					created.SentDate = now
					return &created, nil
				})
				m.sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg *email.Message) error {
					if msg.To != "dave@acme.test" || msg.Tag != email.TagInvite || !strings.Contains(msg.HTMLBody, "https://app.example.com/signup?invite=") {
						t.Errorf("unexpected message %+v", msg)
					}
					return nil
				})
			},
		},
		{
			name:         "existing user without a team can be invited as collaborator",
			email:        "erin@example.test",
			collaborator: true,
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "erin@example.test").Return(&types.User{ID: 8}, nil)
				m.storage.EXPECT().GetUserProfile(gomock.Any(), int64(8)).Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().GetInviteByEmail(gomock.Any(), "erin@example.test").Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().GetTeam(gomock.Any(), int64(10)).Return(team, nil)
				m.storage.EXPECT().CreateInvite(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, i *types.Invite) (*types.Invite, error) {
					if !i.IsCollaborator {
						t.Error("expected a collaborator invite")
					}
					return i, nil
				})
				m.sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("postmark is down"))
				m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())
			},
		},
		{
			name:  "member of a team",
			email: "bob@acme.test",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "bob@acme.test").Return(&types.User{ID: 2}, nil)
				m.storage.EXPECT().GetUserProfile(gomock.Any(), int64(2)).Return(&types.UserProfile{UserID: 2, TeamID: 10}, nil)
			},
			expectedErr: ErrAlreadyMember,
		},
		{
			name:  "already invited",
			email: "dave@acme.test",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "dave@acme.test").Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().GetInviteByEmail(gomock.Any(), "dave@acme.test").Return(&types.Invite{ID: 7}, nil)
			},
			expectedErr: ErrAlreadyInvited,
		},
		{
			name:  "concurrent invite of the same email",
			email: "dave@acme.test",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "dave@acme.test").Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().GetInviteByEmail(gomock.Any(), "dave@acme.test").Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().GetTeam(gomock.Any(), int64(10)).Return(team, nil)
				m.storage.EXPECT().CreateInvite(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("email already invited: %w", storage.ErrDuplicateKey))
			},
			expectedErr: ErrAlreadyInvited,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestService(t, "team.Service.Invite")
			tt.setupMocks(m)

			invite, err := svc.Invite(context.Background(), 10, tt.email, tt.collaborator)

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Errorf("expected %v, got %v", tt.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if invite == nil {
				t.Fatal("expected an invite")
			}
		})
	}
}

func TestService_AcceptInvite(t *testing.T) {
	accepted := now.AddDate(0, 0, -1)
	pending := func() *types.Invite {
		return &types.Invite{ID: 7, UID: "uid-1", FromTeamID: 10, Email: "dave@acme.test", IsCollaborator: true}
	}
	dave := &authentication.Principal{UserID: 4, Username: "dave", Email: "Dave@acme.test"}

	tests := []struct {
		name        string
		principal   *authentication.Principal
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name:      "invitee joins the team",
			principal: dave,
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetInviteByUID(gomock.Any(), "uid-1").Return(pending(), nil)
				m.storage.EXPECT().CreateUserProfile(gomock.Any(), &types.UserProfile{UserID: 4, TeamID: 10, Name: "dave", IsCollaborator: true}).Return(nil)
				m.storage.EXPECT().AcceptInvite(gomock.Any(), int64(7), now).Return(nil)
				m.logger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any())
			},
		},
		{
			name:      "unknown invite",
			principal: dave,
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetInviteByUID(gomock.Any(), "uid-1").Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrInviteNotFound,
		},
		{
			name:      "invite used twice",
			principal: dave,
			setupMocks: func(m *serviceMocks) {
				i := pending()
				i.AcceptedDate = &accepted
				m.storage.EXPECT().GetInviteByUID(gomock.Any(), "uid-1").Return(i, nil)
			},
			expectedErr: ErrInviteAccepted,
		},
		{
			name:      "invite sent to someone else",
			principal: &authentication.Principal{UserID: 5, Username: "eve", Email: "eve@evil.test"},
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetInviteByUID(gomock.Any(), "uid-1").Return(pending(), nil)
			},
			expectedErr: ErrInviteEmailMismatch,
		},
		{
			name:      "caller already has a team",
			principal: &authentication.Principal{UserID: 4, Username: "dave", Email: "dave@acme.test", TeamID: 11},
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetInviteByUID(gomock.Any(), "uid-1").Return(pending(), nil)
			},
			expectedErr: ErrAlreadyMember,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestService(t, "team.Service.AcceptInvite")
			tt.setupMocks(m)

			invite, err := svc.AcceptInvite(context.Background(), "uid-1", tt.principal)

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Errorf("expected %v, got %v", tt.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if invite.AcceptedDate == nil || !invite.AcceptedDate.Equal(now) {
				t.Errorf("expected the invite to be accepted at %s, got %v", now, invite.AcceptedDate)
			}
		})
	}
}

func TestService_CreateUser(t *testing.T) {
	dave := &authentication.Principal{UserID: 4, Username: "dave", Email: "dave@acme.test"}

	tests := []struct {
		name        string
		principal   *authentication.Principal
		req         *CreateUserRequest
		setupMocks  func(*serviceMocks)
		expected    *types.UserProfile
		expectedErr error
	}{
		{
			name:      "team named after the user on the free tier",
			principal: dave,
			req:       &CreateUserRequest{Name: "dave"},
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().CreateTeam(gomock.Any(), &types.Team{Name: "dave", OwnerID: 4, TierID: 1}).Return(&types.Team{ID: 11, Name: "dave", OwnerID: 4, TierID: 1}, nil)
				m.storage.EXPECT().CreateUserProfile(gomock.Any(), &types.UserProfile{UserID: 4, TeamID: 11, Name: "dave"}).Return(nil)
				m.logger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
			},
			expected: &types.UserProfile{UserID: 4, TeamID: 11, Name: "dave"},
		},
		{
			name:      "explicit team name",
			principal: dave,
			req:       &CreateUserRequest{Name: "dave", TeamName: "lab"},
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().CreateTeam(gomock.Any(), &types.Team{Name: "lab", OwnerID: 4, TierID: 1}).Return(&types.Team{ID: 11, Name: "lab", OwnerID: 4, TierID: 1}, nil)
				m.storage.EXPECT().CreateUserProfile(gomock.Any(), gomock.Any()).Return(nil)
				m.logger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
			},
			expected: &types.UserProfile{UserID: 4, TeamID: 11, Name: "dave"},
		},
		{
			name:        "profile already exists",
			principal:   &authentication.Principal{UserID: 2, Username: "bob", TeamID: 10},
			req:         &CreateUserRequest{Name: "bob"},
			setupMocks:  func(*serviceMocks) {},
			expectedErr: ErrUserExists,
		},
		{
			name:      "concurrent signup already opened the team",
			principal: dave,
			req:       &CreateUserRequest{Name: "dave"},
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().CreateTeam(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("user already owns a team: %w", storage.ErrDuplicateKey))
			},
			expectedErr: ErrUserExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestService(t, "team.Service.CreateUser")
			tt.setupMocks(m)

			profile, err := svc.CreateUser(context.Background(), tt.principal, tt.req)

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Errorf("expected %v, got %v", tt.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if *profile != *tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, profile)
			}
		})
	}
}

func TestService_UpdateProfile(t *testing.T) {
	svc, m := newTestService(t, "team.Service.UpdateProfile")

	m.storage.EXPECT().UpdateUserProfileName(gomock.Any(), int64(2), "Bob").Return(nil)
	m.storage.EXPECT().GetUserProfile(gomock.Any(), int64(2)).Return(&types.UserProfile{UserID: 2, TeamID: 10, Name: "Bob"}, nil)

	profile, err := svc.UpdateProfile(context.Background(), 2, "Bob")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if profile.Name != "Bob" {
		t.Errorf("expected the new name, got %q", profile.Name)
	}
}

func TestService_ListTrustedServices(t *testing.T) {
	team := &types.Team{ID: 10, Name: "acme", OwnerID: 1}

	t.Run("owner", func(t *testing.T) {
		svc, m := newTestService(t, "team.Service.ListTrustedServices")

		m.storage.EXPECT().GetTeam(gomock.Any(), int64(10)).Return(team, nil)
		m.storage.EXPECT().ListTrustedServices(gomock.Any(), int64(10)).Return([]*types.TrustedService{{ID: 1, TeamID: 10, Name: "backup"}}, nil)

		services, err := svc.ListTrustedServices(context.Background(), 10, 1)
		if err != nil {
			t.Fatalf("unexpected error %v", err)
		}
		if len(services) != 1 || services[0].Name != "backup" {
			t.Errorf("unexpected services %+v", services)
		}
	})

	t.Run("member", func(t *testing.T) {
		svc, m := newTestService(t, "team.Service.ListTrustedServices")

		m.storage.EXPECT().GetTeam(gomock.Any(), int64(10)).Return(team, nil)

		if _, err := svc.ListTrustedServices(context.Background(), 10, 2); !errors.Is(err, ErrNotServiceViewer) {
			t.Errorf("expected ErrNotServiceViewer, got %v", err)
		}
	})
}

func TestService_CreateTrustedService(t *testing.T) {
	team := &types.Team{ID: 10, Name: "acme", OwnerID: 1}
	req := &TrustedServiceRequest{ID: " Backup@Acme.test ", Name: "backup", BaseURL: "https://backup.acme.test"}
	account := &types.User{ID: 12, Email: "backup@acme.test", IsActive: true}

	tests := []struct {
		name        string
		userID      int64
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name:   "service account joins the team as a trusted service",
			userID: 1,
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetTeam(gomock.Any(), int64(10)).Return(team, nil)
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "backup@acme.test").Return(account, nil)
				m.storage.EXPECT().CreateUserProfile(gomock.Any(), &types.UserProfile{UserID: 12, TeamID: 10, Name: "backup", IsTrustedService: true}).Return(nil)
				m.storage.EXPECT().CreateTrustedService(gomock.Any(), &types.TrustedService{UserID: 12, TeamID: 10, Name: "backup", BaseURL: "https://backup.acme.test"}).
					Return(&types.TrustedService{ID: 3, UserID: 12, TeamID: 10, Name: "backup"}, nil)
				m.logger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
			},
		},
		{
			name:   "only the owner registers services",
			userID: 2,
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetTeam(gomock.Any(), int64(10)).Return(team, nil)
			},
			expectedErr: ErrNotServiceCreator,
		},
		{
			name:   "unknown service account",
			userID: 1,
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetTeam(gomock.Any(), int64(10)).Return(team, nil)
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "backup@acme.test").Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrServiceUnknown,
		},
		{
			name:   "account already on a team",
			userID: 1,
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetTeam(gomock.Any(), int64(10)).Return(team, nil)
				m.storage.EXPECT().GetUserByEmail(gomock.Any(), "backup@acme.test").Return(account, nil)
				m.storage.EXPECT().CreateUserProfile(gomock.Any(), gomock.Any()).Return(fmt.Errorf("user already has a profile: %w", storage.ErrDuplicateKey))
			},
			expectedErr: ErrAlreadyMember,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestService(t, "team.Service.CreateTrustedService")
			tt.setupMocks(m)

			ts, err := svc.CreateTrustedService(context.Background(), 10, tt.userID, req)

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Errorf("expected %v, got %v", tt.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if ts.ID != 3 {
				t.Errorf("expected trusted service 3, got %+v", ts)
			}
		})
	}
}
