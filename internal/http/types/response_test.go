// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()

	if err := WriteError(rr, http.StatusUnprocessableEntity, "No valid payment method"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rr.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected status %d, got %d", http.StatusUnprocessableEntity, rr.Code)
	}

	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected json content type, got %q", ct)
	}

	var body ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}

	if body.Status != http.StatusUnprocessableEntity || body.Message != "No valid payment method" {
		t.Errorf("unexpected body %+v", body)
	}
}

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		wantBody string
	}{
		{name: "object", value: map[string]int{"users": 2}, wantBody: "{\"users\":2}\n"},
		{name: "empty body", value: nil, wantBody: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()

			if err := WriteJSON(rr, http.StatusOK, tt.value); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if rr.Body.String() != tt.wantBody {
				t.Errorf("expected body %q, got %q", tt.wantBody, rr.Body.String())
			}
		})
	}
}
