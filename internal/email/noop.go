// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package email

import (
	"context"

	"github.com/canonical/billing-service/internal/logging"
)

// NoopSender only logs, used when no postmark token is configured
type NoopSender struct {
	logger logging.LoggerInterface
}

func (s *NoopSender) Send(_ context.Context, msg *Message) error {
	s.logger.Infof("email delivery disabled, dropping %s email to %s", msg.Tag, msg.To)
	return nil
}

func NewNoopSender(logger logging.LoggerInterface) *NoopSender {
	return &NoopSender{logger: logger}
}
