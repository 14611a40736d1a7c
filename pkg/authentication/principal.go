// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/canonical/billing-service/internal/logging"
	"github.com/canonical/billing-service/internal/monitoring"
	"github.com/canonical/billing-service/internal/storage"
	"github.com/canonical/billing-service/internal/syncbackend"
	"github.com/canonical/billing-service/internal/tracing"
)

var ErrUnauthenticated = errors.New("unauthenticated")

// Principal is the product user acting on a request, TeamID is zero for users without a team
type Principal struct {
	UserID           int64
	Username         string
	Email            string
	TeamID           int64
	IsCollaborator   bool
	IsTrustedService bool
}

func (p *Principal) HasTeam() bool {
	return p != nil && p.TeamID != 0
}

// PrincipalResolver trusts the sync backend for the credential and the local store for roles
type PrincipalResolver struct {
	validator CredentialValidatorInterface
	users     UserStoreInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (r *PrincipalResolver) Resolve(ctx context.Context, credential string) (*Principal, error) {
	ctx, span := r.tracer.Start(ctx, "authentication.PrincipalResolver.Resolve")
	defer span.End()

	identity, err := r.validator.Validate(ctx, credential)
	if errors.Is(err, syncbackend.ErrInvalidCredential) {
		return nil, ErrUnauthenticated
	}
	if err != nil {
		return nil, err
	}

	user, err := r.users.GetUserByUsername(ctx, identity.Username)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%w: unknown user %q", ErrUnauthenticated, identity.Username)
	}
	if err != nil {
		return nil, err
	}

	if !user.IsActive {
		return nil, fmt.Errorf("%w: user %q is inactive", ErrUnauthenticated, identity.Username)
	}

	p := &Principal{UserID: user.ID, Username: identity.Username, Email: user.Email}

	profile, err := r.users.GetUserProfile(ctx, user.ID)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return p, nil
	case err != nil:
		return nil, err
	}

	p.TeamID = profile.TeamID
	p.IsCollaborator = profile.IsCollaborator
	p.IsTrustedService = profile.IsTrustedService

	return p, nil
}

// RequirePrincipal rejects requests without a valid sync backend credential
func (r *PrincipalResolver) RequirePrincipal() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := req.Context()

			if GetPrincipal(ctx) != nil {
				next.ServeHTTP(w, req)
				return
			}

			credential := req.Header.Get("Authorization")
			if credential == "" {
				writeStatus(w, http.StatusUnauthorized, "missing authorization header", r.logger)
				return
			}

			p, err := r.Resolve(ctx, credential)
			if errors.Is(err, ErrUnauthenticated) {
				r.logger.Security().AuthnFailure("", err.Error())
				writeStatus(w, http.StatusUnauthorized, "invalid credential", r.logger)
				return
			}
			if err != nil {
				r.logger.Errorf("failed to resolve principal: %v", err)
				writeStatus(w, http.StatusBadGateway, "failed to validate credential", r.logger)
				return
			}

			next.ServeHTTP(w, req.WithContext(WithPrincipal(ctx, p)))
		})
	}
}

func NewPrincipalResolver(validator CredentialValidatorInterface, users UserStoreInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *PrincipalResolver {
	return &PrincipalResolver{
		validator: validator,
		users:     users,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}
