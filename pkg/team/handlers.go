// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package team

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/billing-service/internal/http/types"
	"github.com/canonical/billing-service/internal/logging"
	"github.com/canonical/billing-service/internal/storage"
	"github.com/canonical/billing-service/pkg/authentication"
)

type API struct {
	service   ServiceInterface
	validator *validator.Validate

	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/team", a.handleGetTeam)
	mux.Post("/api/v0/user/invite", a.handleInvite(false))
	mux.Post("/api/v0/user/invite/collaborator", a.handleInvite(true))
	mux.Post("/api/v0/user/invite/{uid}/accept", a.handleAcceptInvite)
	mux.Post("/api/v0/user", a.handleCreateUser)
	mux.Get("/api/v0/user", a.handleGetUser)
	mux.Put("/api/v0/user", a.handleUpdateUser)
	mux.Get("/api/v0/trusted-service", a.handleListTrustedServices)
	mux.Post("/api/v0/trusted-service", a.handleCreateTrustedService)
}

func (a *API) handleGetTeam(w http.ResponseWriter, r *http.Request) {
	p, ok := a.teamPrincipal(w, r)
	if !ok {
		return
	}

	view, err := a.service.GetTeamView(r.Context(), p.TeamID, p.UserID)
	if errors.Is(err, ErrNotOwner) {
		a.logger.Security().AuthzFailure(p.Username, r.URL.Path)
	}
	if err != nil {
		a.fail(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, view)
}

func (a *API) handleInvite(collaborator bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := a.teamPrincipal(w, r)
		if !ok {
			return
		}

		req := new(InviteRequest)
		if !a.decode(w, r, req) {
			return
		}

		invite, err := a.service.Invite(r.Context(), p.TeamID, req.Email, collaborator)
		if err != nil {
			a.fail(w, err)
			return
		}

		a.writeJSON(w, http.StatusCreated, invite)
	}
}

func (a *API) handleAcceptInvite(w http.ResponseWriter, r *http.Request) {
	p := authentication.GetPrincipal(r.Context())
	if p == nil {
		a.writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	invite, err := a.service.AcceptInvite(r.Context(), chi.URLParam(r, "uid"), p)
	if err != nil {
		a.fail(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, invite)
}

func (a *API) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	p := authentication.GetPrincipal(r.Context())
	if p == nil {
		a.writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	req := new(CreateUserRequest)
	if !a.decode(w, r, req) {
		return
	}

	profile, err := a.service.CreateUser(r.Context(), p, req)
	if err != nil {
		a.fail(w, err)
		return
	}

	a.writeJSON(w, http.StatusCreated, profile)
}

func (a *API) handleGetUser(w http.ResponseWriter, r *http.Request) {
	p, ok := a.teamPrincipal(w, r)
	if !ok {
		return
	}

	profile, err := a.service.GetProfile(r.Context(), p.UserID)
	if err != nil {
		a.fail(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, profile)
}

func (a *API) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	p, ok := a.teamPrincipal(w, r)
	if !ok {
		return
	}

	req := new(UpdateUserRequest)
	if !a.decode(w, r, req) {
		return
	}

	profile, err := a.service.UpdateProfile(r.Context(), p.UserID, req.Name)
	if err != nil {
		a.fail(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, profile)
}

func (a *API) handleListTrustedServices(w http.ResponseWriter, r *http.Request) {
	p, ok := a.teamPrincipal(w, r)
	if !ok {
		return
	}

	services, err := a.service.ListTrustedServices(r.Context(), p.TeamID, p.UserID)
	if errors.Is(err, ErrNotServiceViewer) {
		a.logger.Security().AuthzFailure(p.Username, r.URL.Path)
	}
	if err != nil {
		a.fail(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, services)
}

func (a *API) handleCreateTrustedService(w http.ResponseWriter, r *http.Request) {
	p, ok := a.teamPrincipal(w, r)
	if !ok {
		return
	}

	req := new(TrustedServiceRequest)
	if !a.decode(w, r, req) {
		return
	}

	ts, err := a.service.CreateTrustedService(r.Context(), p.TeamID, p.UserID, req)
	if errors.Is(err, ErrNotServiceCreator) {
		a.logger.Security().AuthzFailure(p.Username, r.URL.Path)
	}
	if err != nil {
		a.fail(w, err)
		return
	}

	a.writeJSON(w, http.StatusCreated, TrustedServiceCreated{ID: ts.ID})
}

func (a *API) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		a.writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}

	if err := a.validator.Struct(v); err != nil {
		a.writeError(w, http.StatusUnprocessableEntity, err.Error())
		return false
	}

	return true
}

func (a *API) teamPrincipal(w http.ResponseWriter, r *http.Request) (*authentication.Principal, bool) {
	p := authentication.GetPrincipal(r.Context())
	if p == nil {
		a.writeError(w, http.StatusUnauthorized, "Authentication required")
		return nil, false
	}

	if !p.HasTeam() {
		a.writeError(w, http.StatusNotFound, "Team not found")
		return nil, false
	}

	return p, true
}

func (a *API) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotOwner):
		a.writeError(w, http.StatusForbidden, "Only owners can view the team")
	case errors.Is(err, ErrInviteEmailMismatch):
		a.writeError(w, http.StatusForbidden, "Invite was sent to another email")
	case errors.Is(err, ErrNotServiceViewer):
		a.writeError(w, http.StatusForbidden, "Only owners can view trusted services.")
	case errors.Is(err, ErrNotServiceCreator):
		a.writeError(w, http.StatusForbidden, "Only owners can create trusted services.")
	case errors.Is(err, ErrInviteNotFound):
		a.writeError(w, http.StatusNotFound, "Invite not found")
	case errors.Is(err, ErrServiceUnknown):
		a.writeError(w, http.StatusNotFound, "Service account not found")
	case errors.Is(err, ErrUserExists):
		a.writeError(w, http.StatusConflict, "User Exists")
	case errors.Is(err, storage.ErrNotFound):
		a.writeError(w, http.StatusNotFound, "Team not found")
	case errors.Is(err, ErrAlreadyMember):
		a.writeError(w, http.StatusConflict, "User is already a member of a team")
	case errors.Is(err, ErrAlreadyInvited):
		a.writeError(w, http.StatusConflict, "Email already invited")
	case errors.Is(err, ErrInviteAccepted):
		a.writeError(w, http.StatusConflict, "Invite already accepted")
	default:
		a.logger.Errorf("team request failed: %v", err)
		a.writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func (a *API) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	if err := types.WriteJSON(w, status, v); err != nil {
		a.logger.Errorf("failed to write response: %v", err)
	}
}

func (a *API) writeError(w http.ResponseWriter, status int, message string) {
	if err := types.WriteError(w, status, message); err != nil {
		a.logger.Errorf("failed to write response: %v", err)
	}
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
		logger:    logger,
	}
}
