// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/canonical/billing-service/internal/types"
)

type TokenVerifierInterface interface {
	// VerifyToken verifies a raw JWT string and validates authorization claims
	// Returns the subject if the token is valid and authorized, otherwise an error
	VerifyToken(ctx context.Context, rawToken string) (string, error)
}

// CredentialValidatorInterface resolves a sync backend credential into the identity it belongs to
type CredentialValidatorInterface interface {
	Validate(ctx context.Context, credential string) (*types.UserIdentity, error)
}

type UserStoreInterface interface {
	GetUserByUsername(ctx context.Context, username string) (*types.User, error)
	GetUserProfile(ctx context.Context, userID int64) (*types.UserProfile, error)
}

type PrincipalResolverInterface interface {
	Resolve(ctx context.Context, credential string) (*Principal, error)
}
