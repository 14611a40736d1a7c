// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"errors"
)

// maxPayloadBytes matches the largest event body the processor documents
const maxPayloadBytes = 65536

var (
	ErrMissingSignature = errors.New("no signature")
	ErrInvalidSignature = errors.New("invalid signature")
)
