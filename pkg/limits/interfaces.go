// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package limits

import (
	"context"

	"github.com/canonical/billing-service/pkg/authentication"
	"github.com/canonical/billing-service/pkg/billing"
)

// LimitsReaderInterface is the part of the billing service the gate consults
type LimitsReaderInterface interface {
	GetLimits(ctx context.Context, teamID int64) (*billing.Limits, error)
}

// PrincipalResolverInterface resolves the caller when no earlier middleware did
type PrincipalResolverInterface interface {
	Resolve(ctx context.Context, credential string) (*authentication.Principal, error)
}
