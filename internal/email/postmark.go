// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrz1836/postmark"

	"github.com/canonical/billing-service/internal/logging"
	"github.com/canonical/billing-service/internal/monitoring"
	"github.com/canonical/billing-service/internal/tracing"
)

var ErrInvalidConfig = errors.New("invalid email configuration")

type Config struct {
	ServerToken  string
	AccountToken string
	SenderEmail  string
	SupportEmail string
	// BaseURL overrides the postmark API endpoint, empty keeps the default
	BaseURL string
}

type PostmarkSender struct {
	client *postmark.Client
	from   string
	reply  string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *PostmarkSender) Send(ctx context.Context, msg *Message) error {
	ctx, span := s.tracer.Start(ctx, "email.PostmarkSender.Send")
	defer span.End()

	tags := map[string]string{"component": "postmark"}

	resp, err := s.client.SendEmail(ctx, postmark.Email{
		From:       s.from,
		ReplyTo:    s.reply,
		To:         msg.To,
		Subject:    msg.Subject,
		Tag:        msg.Tag,
		HTMLBody:   msg.HTMLBody,
		TextBody:   msg.TextBody,
		TrackOpens: false,
	})
	if err != nil {
		s.monitor.SetDependencyAvailability(tags, 0)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.monitor.SetDependencyAvailability(tags, 1)

	if resp.ErrorCode > 0 {
		return fmt.Errorf("postmark error %d: %s", resp.ErrorCode, resp.Message)
	}

	s.logger.Debugf("sent %s email to %s", msg.Tag, msg.To)

	return nil
}

func NewPostmarkSender(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*PostmarkSender, error) {
	if cfg.ServerToken == "" {
		return nil, fmt.Errorf("%w: server token is required", ErrInvalidConfig)
	}

	if cfg.SenderEmail == "" {
		return nil, fmt.Errorf("%w: sender email is required", ErrInvalidConfig)
	}

	s := new(PostmarkSender)
	s.client = postmark.NewClient(cfg.ServerToken, cfg.AccountToken)
	if cfg.BaseURL != "" {
		s.client.BaseURL = cfg.BaseURL
	}
	s.from = cfg.SenderEmail
	s.reply = cfg.SupportEmail

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s, nil
}
