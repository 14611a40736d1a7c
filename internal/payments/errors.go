// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package payments

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/stripe/stripe-go/v81"
)

// IsTimeout reports whether a processor call failed without a timely answer
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		return stripeErr.HTTPStatusCode == http.StatusGatewayTimeout || stripeErr.Code == stripe.ErrorCodeLockTimeout
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
