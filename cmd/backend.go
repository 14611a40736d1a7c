// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/canonical/billing-service/internal/config"
	"github.com/canonical/billing-service/internal/db"
	"github.com/canonical/billing-service/internal/email"
	"github.com/canonical/billing-service/internal/logging"
	"github.com/canonical/billing-service/internal/monitoring/prometheus"
	"github.com/canonical/billing-service/internal/payments"
	"github.com/canonical/billing-service/internal/storage"
	"github.com/canonical/billing-service/internal/tracing"
)

const serviceName = "billing-service"

// backend holds the dependencies shared by the api server and the scheduler
type backend struct {
	specs *config.EnvSpec

	logger  *logging.Logger
	monitor *prometheus.Monitor
	tracer  *tracing.Tracer

	db        *db.DBClient
	storage   *storage.Storage
	processor *payments.Client
	sender    email.SenderInterface
}

func newBackend() (*backend, error) {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		return nil, fmt.Errorf("issues with environment sourcing: %s", err)
	}

	b := &backend{specs: specs}

	b.logger = logging.NewLogger(specs.LogLevel)
	b.logger.Debugf("env vars: %v", redacted(specs))

	b.monitor = prometheus.NewMonitor(serviceName, b.logger)
	b.tracer = tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, b.logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}

	dbClient, err := db.NewDBClient(dbConfig, b.tracer, b.monitor, b.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create database client: %v", err)
	}

	b.db = dbClient
	b.storage = storage.NewStorage(dbClient, b.tracer, b.monitor, b.logger)

	b.processor = payments.NewClient(
		payments.Config{
			SecretKey:     specs.StripeSecretKey,
			WebhookSecret: specs.StripeWebhookSecret,
			Timeout:       specs.StripeTimeout,
			SuccessURL:    specs.SuccessURL,
			CancelURL:     specs.CancelURL,
			MaxRetries:    2,
		},
		b.tracer,
		b.monitor,
		b.logger,
	)

	if specs.PostmarkServerToken == "" {
		b.logger.Info("Postmark is not configured, emails are only logged")
		b.sender = email.NewNoopSender(b.logger)
		return b, nil
	}

	sender, err := email.NewPostmarkSender(
		email.Config{
			ServerToken:  specs.PostmarkServerToken,
			AccountToken: specs.PostmarkAccountToken,
			SenderEmail:  specs.SenderEmail,
			SupportEmail: specs.SupportEmail,
		},
		b.tracer,
		b.monitor,
		b.logger,
	)
	if err != nil {
		dbClient.Close()
		return nil, fmt.Errorf("failed to create email sender: %v", err)
	}

	b.sender = sender

	return b, nil
}

func (b *backend) Close() {
	b.db.Close()
	b.logger.Sync()
}

// redacted hides credentials from the debug dump of the environment
func redacted(specs *config.EnvSpec) config.EnvSpec {
	c := *specs

	for _, secret := range []*string{
		&c.DSN,
		&c.StripeSecretKey,
		&c.StripeWebhookSecret,
		&c.S3SecretAccessKey,
		&c.PostmarkServerToken,
		&c.PostmarkAccountToken,
		&c.RedisURL,
	} {
		if *secret != "" {
			*secret = "********"
		}
	}

	return c
}
