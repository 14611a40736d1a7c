// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"
)

func TestDebugLogger(t *testing.T) {
	l := NewLogger("DEBUG")
	if !l.Desugar().Core().Enabled(-1) {
		t.Error("expected debug level to be enabled")
	}
}

func TestInvalidLevel(t *testing.T) {
	l := NewLogger("invalid")
	if l.Desugar().Core().Enabled(1) {
		t.Error("expected warn level to be disabled when falling back to error")
	}
}

func TestNoopLogger(t *testing.T) {
	l := NewNoopLogger()
	l.Security().SystemStartup()
	l.Security().AdmissionDenied("1", "/api/v1/collection", "projects")
	l.Infof("noop %s", "works")
}
