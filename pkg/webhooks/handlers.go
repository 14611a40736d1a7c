// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/billing-service/internal/http/types"
	"github.com/canonical/billing-service/internal/logging"
)

const signatureHeader = "Stripe-Signature"

type API struct {
	service ServiceInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/api/v0/billing/webhook", a.processorEvent)
}

func (a *API) processorEvent(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxPayloadBytes))
	if err != nil {
		a.logger.Errorf("failed to read processor event: %v", err)
		a.write(w, http.StatusBadRequest, "Invalid Payload")
		return
	}

	err = a.service.HandleEvent(r.Context(), payload, r.Header.Get(signatureHeader))
	switch {
	case errors.Is(err, ErrMissingSignature):
		a.write(w, http.StatusBadRequest, "No Signature")
	case errors.Is(err, ErrInvalidSignature):
		a.write(w, http.StatusBadRequest, "Invalid Signature")
	case err != nil:
		// a 5xx makes the processor deliver the event again
		a.logger.Errorf("failed to handle processor event: %v", err)
		a.write(w, http.StatusInternalServerError, "Failed to process event")
	default:
		w.WriteHeader(http.StatusOK)
	}
}

func (a *API) write(w http.ResponseWriter, status int, message string) {
	if err := types.WriteError(w, status, message); err != nil {
		a.logger.Errorf("failed to write response: %v", err)
	}
}
