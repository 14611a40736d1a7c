// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
)

var ErrAdminDisabled = errors.New("admin api is not configured")

type NoopVerifier struct{}

// NewNoopVerifier returns a no-op token verifier that allows all requests.
func NewNoopVerifier() *NoopVerifier {
	return &NoopVerifier{}
}

// VerifyToken treats the token as the admin subject, only meant for local development
func (n *NoopVerifier) VerifyToken(ctx context.Context, rawIDToken string) (string, error) {
	return rawIDToken, nil
}

// DisabledVerifier rejects every token, used when no issuer is configured
type DisabledVerifier struct{}

func NewDisabledVerifier() *DisabledVerifier {
	return &DisabledVerifier{}
}

func (d *DisabledVerifier) VerifyToken(context.Context, string) (string, error) {
	return "", ErrAdminDisabled
}
