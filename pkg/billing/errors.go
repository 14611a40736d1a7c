// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/canonical/billing-service/internal/payments"
)

type RejectionKind int

const (
	// KindUnprocessable covers requests the caller can fix, e.g. registering a card first
	KindUnprocessable RejectionKind = iota
	KindConflict
	KindNotFound
	KindForbidden
)

// RejectionError is a user caused refusal, nothing was changed when it is returned
type RejectionError struct {
	Kind    RejectionKind
	Message string
}

func (e *RejectionError) Error() string {
	return e.Message
}

func reject(kind RejectionKind, format string, args ...interface{}) error {
	return &RejectionError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// limit dimensions in the order they are checked
const (
	DimensionUsers         = "users"
	DimensionProjects      = "projects"
	DimensionCollaborators = "collaborators"
	DimensionStorage       = "storage"
)

var limitMessages = map[string]string{
	DimensionUsers:         "Too many users to switch to this plan",
	DimensionProjects:      "Too many projects to switch to this plan",
	DimensionCollaborators: "Too many collaborators to switch to this plan",
	DimensionStorage:       "Too much storage used to switch to this plan",
}

// LimitExceededError lists every dimension the destination tier can't accommodate
type LimitExceededError struct {
	Dimensions []string
}

// Error reports the first exceeded dimension
func (e *LimitExceededError) Error() string {
	if len(e.Dimensions) == 0 {
		return "plan limits exceeded"
	}
	return limitMessages[e.Dimensions[0]]
}

func (e *LimitExceededError) Has(dimension string) bool {
	for _, d := range e.Dimensions {
		if d == dimension {
			return true
		}
	}
	return false
}

// ProcessorError wraps a failed payment processor call
type ProcessorError struct {
	Op  string
	Err error
}

func (e *ProcessorError) Error() string {
	return fmt.Sprintf("payment processor failed to %s: %v", e.Op, e.Err)
}

func (e *ProcessorError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the processor did not answer in time, the caller may retry
func (e *ProcessorError) Timeout() bool {
	return payments.IsTimeout(e.Err)
}

func processorError(op string, err error) error {
	return &ProcessorError{Op: op, Err: err}
}

// StatusCode maps a service error onto the HTTP status returned to the caller
func StatusCode(err error) int {
	var (
		rejection *RejectionError
		limits    *LimitExceededError
		processor *ProcessorError
	)

	switch {
	case errors.As(err, &rejection):
		switch rejection.Kind {
		case KindConflict:
			return http.StatusConflict
		case KindNotFound:
			return http.StatusNotFound
		case KindForbidden:
			return http.StatusForbidden
		default:
			return http.StatusUnprocessableEntity
		}
	case errors.As(err, &limits):
		return http.StatusUnprocessableEntity
	case errors.As(err, &processor):
		if processor.Timeout() {
			return http.StatusGatewayTimeout
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the text safe to show to the caller
func Message(err error) string {
	var (
		rejection *RejectionError
		limits    *LimitExceededError
		processor *ProcessorError
	)

	switch {
	case errors.As(err, &rejection):
		return rejection.Message
	case errors.As(err, &limits):
		return limits.Error()
	case errors.As(err, &processor):
		if processor.Timeout() {
			return "Payment provider timed out, please try again"
		}
		return "Payment provider error"
	default:
		return "Internal server error"
	}
}
