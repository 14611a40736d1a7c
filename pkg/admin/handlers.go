// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/billing-service/internal/http/types"
	"github.com/canonical/billing-service/internal/logging"
	"github.com/canonical/billing-service/internal/storage"
	"github.com/canonical/billing-service/pkg/authentication"
)

type API struct {
	service   ServiceInterface
	auth      func(http.Handler) http.Handler
	validator *validator.Validate

	logger logging.LoggerInterface
}

// RegisterEndpoints mounts the public catalogue and the admin routes, the latter behind auth
func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/tiers", a.handleListTiers(false))
	mux.Get("/api/v0/tiers/{id}", a.handleGetTier)

	mux.Group(func(r chi.Router) {
		r.Use(a.auth)

		r.Get("/api/v0/admin/tiers", a.handleListTiers(true))
		r.Post("/api/v0/admin/tiers", a.handleCreateTier)
		r.Post("/api/v0/admin/teams/{id}/custom-billing", a.handleCreateCustomBilling)
		r.Post("/api/v0/admin/users/enable", a.handleSetUserActive(true))
		r.Post("/api/v0/admin/users/disable", a.handleSetUserActive(false))
	})
}

func (a *API) handleListTiers(includeCustom bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tiers, err := a.service.ListTiers(r.Context(), includeCustom)
		if err != nil {
			a.fail(w, err)
			return
		}

		a.writeJSON(w, http.StatusOK, tiers)
	}
}

func (a *API) handleGetTier(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}

	tier, err := a.service.GetTier(r.Context(), id)
	if err != nil {
		a.fail(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, tier)
}

func (a *API) handleCreateTier(w http.ResponseWriter, r *http.Request) {
	req := new(TierRequest)
	if !a.decode(w, r, req) {
		return
	}

	tier, err := a.service.CreateTier(r.Context(), subject(r), req)
	if err != nil {
		a.fail(w, err)
		return
	}

	a.writeJSON(w, http.StatusCreated, tier)
}

func (a *API) handleCreateCustomBilling(w http.ResponseWriter, r *http.Request) {
	teamID, ok := a.pathID(w, r)
	if !ok {
		return
	}

	req := new(CustomBillingRequest)
	if !a.decode(w, r, req) {
		return
	}

	billing, err := a.service.CreateCustomBilling(r.Context(), subject(r), teamID, req)
	if err != nil {
		a.fail(w, err)
		return
	}

	a.writeJSON(w, http.StatusCreated, billing)
}

func (a *API) handleSetUserActive(active bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := new(UserRequest)
		if !a.decode(w, r, req) {
			return
		}

		user, err := a.service.SetUserActive(r.Context(), subject(r), req.email(), active)
		if err != nil {
			a.fail(w, err)
			return
		}

		a.writeJSON(w, http.StatusOK, user)
	}
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

func (a *API) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		a.writeError(w, http.StatusBadRequest, "Invalid id")
		return 0, false
	}

	return id, true
}

func (a *API) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		a.writeError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, ErrTierNotCustom):
		a.writeError(w, http.StatusUnprocessableEntity, "Tier is not custom")
	case errors.Is(err, ErrTierBound):
		a.writeError(w, http.StatusConflict, "Tier is already bound to another team")
	case errors.Is(err, ErrTierExists):
		a.writeError(w, http.StatusConflict, "Tier prices are already in use")
	case errors.Is(err, ErrCustomBilled):
		a.writeError(w, http.StatusConflict, "Team already has custom billing")
	default:
		a.logger.Errorf("admin request failed: %v", err)
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

func subject(r *http.Request) string {
	sub, _ := authentication.GetSubject(r.Context())
	return sub
}

func NewAPI(service ServiceInterface, auth func(http.Handler) http.Handler, logger logging.LoggerInterface) *API {
	return &API{
		service:   service,
		auth:      auth,
		validator: validator.New(validator.WithRequiredStructEnabled()),
		logger:    logger,
	}
}
