// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"encoding/json"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/billing-service/internal/http/types"
	"github.com/canonical/billing-service/internal/logging"
	"github.com/canonical/billing-service/pkg/authentication"
)

const basePath = "/api/v0/billing"

type API struct {
	service   ServiceInterface
	validator *validator.Validate

	logger logging.LoggerInterface
}

// RegisterEndpoints mounts the billing routes, the caller is expected to have resolved the principal
func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get(basePath+"/limits", a.handleGetLimits)
	mux.Get(basePath+"/plan", a.handleGetPlan)
	mux.Post(basePath+"/plan", a.owner(a.handleUpdatePlan))
	mux.Get(basePath+"/plans", a.handleListPlans)
	mux.Post(basePath+"/addon", a.owner(a.handleAddAddon))
	mux.Get(basePath+"/addon-prices", a.handleGetAddonPrices)
	mux.Post(basePath+"/cancel", a.owner(a.handleCancel))
	mux.Post(basePath+"/create-checkout-session", a.owner(a.handleCreateCheckoutSession))
	mux.Post(basePath+"/create-authd-checkout-session", a.owner(a.handleCreateSetupSession))
	mux.Get(basePath+"/invoices", a.handleListInvoices)
	mux.Get(basePath+"/payment-method", a.handleGetPaymentMethod)
}

// teamPrincipal writes the error response itself when the caller has no team
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

// owner restricts billing mutations to the owner of the caller's team
func (a *API) owner(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := a.teamPrincipal(w, r)
		if !ok {
			return
		}

		team, err := a.service.GetTeam(r.Context(), p.TeamID)
		if err != nil {
			a.fail(w, err)
			return
		}

		if team.OwnerID != p.UserID {
			a.logger.Security().AuthzFailure(p.Username, r.URL.Path)
			a.writeError(w, http.StatusForbidden, "Only the team owner can manage billing")
			return
		}

		next(w, r)
	}
}

func (a *API) handleGetLimits(w http.ResponseWriter, r *http.Request) {
	p, ok := a.teamPrincipal(w, r)
	if !ok {
		return
	}

	limits, err := a.service.GetLimits(r.Context(), p.TeamID)
	if err != nil {
		a.fail(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, limits)
}

func (a *API) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	p, ok := a.teamPrincipal(w, r)
	if !ok {
		return
	}

	plan, err := a.service.GetPlan(r.Context(), p.TeamID, clientIP(r))
	if err != nil {
		a.fail(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, plan)
}

func (a *API) handleUpdatePlan(w http.ResponseWriter, r *http.Request) {
	p := authentication.GetPrincipal(r.Context())

	req := new(PlanRequest)
	if !a.decode(w, r, req) {
		return
	}

	if err := a.service.UpdatePlan(r.Context(), p.TeamID, req.TierID, clientIP(r)); err != nil {
		a.fail(w, err)
		return
	}

	plan, err := a.service.GetPlan(r.Context(), p.TeamID, clientIP(r))
	if err != nil {
		a.fail(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, plan)
}

func (a *API) handleListPlans(w http.ResponseWriter, r *http.Request) {
	p, ok := a.teamPrincipal(w, r)
	if !ok {
		return
	}

	plans, err := a.service.ListPlans(r.Context(), p.TeamID)
	if err != nil {
		a.fail(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, plans)
}

func (a *API) handleAddAddon(w http.ResponseWriter, r *http.Request) {
	p := authentication.GetPrincipal(r.Context())

	req := new(AddonRequest)
	if !a.decode(w, r, req) {
		return
	}

	if err := a.service.AddAddon(r.Context(), p.TeamID, req); err != nil {
		a.fail(w, err)
		return
	}

	limits, err := a.service.GetLimits(r.Context(), p.TeamID)
	if err != nil {
		a.fail(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, limits)
}

func (a *API) handleGetAddonPrices(w http.ResponseWriter, r *http.Request) {
	p, ok := a.teamPrincipal(w, r)
	if !ok {
		return
	}

	prices, err := a.service.GetAddonPrices(r.Context(), p.TeamID)
	if err != nil {
		a.fail(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, prices)
}

func (a *API) handleCancel(w http.ResponseWriter, r *http.Request) {
	p := authentication.GetPrincipal(r.Context())

	if err := a.service.Cancel(r.Context(), p.TeamID); err != nil {
		a.fail(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, map[string]string{"message": "Subscription canceled"})
}

func (a *API) handleCreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	p := authentication.GetPrincipal(r.Context())

	req := new(CheckoutRequest)
	if !a.decode(w, r, req) {
		return
	}

	session, err := a.service.CreateCheckoutSession(r.Context(), &CheckoutInput{
		TeamID: p.TeamID,
		TierID: req.TierID,
		UserID: p.UserID,
		Email:  p.Email,
	})
	if err != nil {
		a.fail(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, session)
}

func (a *API) handleCreateSetupSession(w http.ResponseWriter, r *http.Request) {
	p := authentication.GetPrincipal(r.Context())

	session, err := a.service.CreateSetupSession(r.Context(), p.TeamID)
	if err != nil {
		a.fail(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, session)
}

func (a *API) handleListInvoices(w http.ResponseWriter, r *http.Request) {
	p, ok := a.teamPrincipal(w, r)
	if !ok {
		return
	}

	invoices, err := a.service.ListInvoices(r.Context(), p.TeamID)
	if err != nil {
		a.fail(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, invoices)
}

func (a *API) handleGetPaymentMethod(w http.ResponseWriter, r *http.Request) {
	p, ok := a.teamPrincipal(w, r)
	if !ok {
		return
	}

	status, err := a.service.GetPaymentMethod(r.Context(), p.TeamID)
	if err != nil {
		a.fail(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, status)
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

func (a *API) fail(w http.ResponseWriter, err error) {
	status := StatusCode(err)
	if status >= http.StatusInternalServerError {
		a.logger.Errorf("billing request failed: %v", err)
	}

	a.writeError(w, status, Message(err))
}

func (a *API) writeError(w http.ResponseWriter, status int, message string) {
	if err := types.WriteError(w, status, message); err != nil {
		a.logger.Errorf("failed to write response: %v", err)
	}
}

func (a *API) writeJSON(w http.ResponseWriter, status int, v any) {
	if err := types.WriteJSON(w, status, v); err != nil {
		a.logger.Errorf("failed to write response: %v", err)
	}
}

// clientIP relies on the RealIP middleware having rewritten RemoteAddr
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.validator = validator.New(validator.WithRequiredStructEnabled())
	a.logger = logger

	return a
}
