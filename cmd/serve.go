// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/billing-service/internal/syncbackend"
	"github.com/canonical/billing-service/pkg/admin"
	"github.com/canonical/billing-service/pkg/authentication"
	"github.com/canonical/billing-service/pkg/billing"
	"github.com/canonical/billing-service/pkg/team"
	"github.com/canonical/billing-service/pkg/web"
	"github.com/canonical/billing-service/pkg/webhooks"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		main()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	b, err := newBackend()
	if err != nil {
		return err
	}
	defer b.Close()

	specs, logger, tracer, monitor := b.specs, b.logger, b.tracer, b.monitor

	if specs.SyncBackendURL == "" {
		return errors.New("SYNC_BACKEND_URL is required to serve the api")
	}

	syncBackendURL, err := url.Parse(specs.SyncBackendURL)
	if err != nil {
		return fmt.Errorf("invalid sync backend url: %v", err)
	}

	syncClient, err := syncbackend.NewClient(specs.SyncBackendURL, specs.SyncBackendIdentityPath, specs.SyncBackendTimeout, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create sync backend client: %v", err)
	}

	verifier, err := authentication.NewAdminVerifier(
		context.Background(),
		authentication.AdminConfig{
			Issuer:          specs.AdminJWTIssuer,
			JWKSURL:         specs.AdminJWKSURL,
			AllowedSubjects: specs.AdminAllowedSubject,
			RequiredScope:   specs.AdminRequiredScope,
		},
		tracer,
		monitor,
		logger,
	)
	if err != nil {
		return fmt.Errorf("failed to create admin token verifier: %v", err)
	}

	billingService := billing.NewService(
		b.storage,
		b.processor,
		billing.NewConfig(specs.FreeTierID, specs.TrialDays, specs.DefaultTaxCountry, specs.StorageTierUnitMB),
		tracer,
		monitor,
		logger,
	)

	router := web.NewRouter(
		web.Config{
			SyncBackendURL: syncBackendURL,
			AllowedOrigins: specs.CORSAllowedOrigins,
			RequestTimeout: specs.RequestTimeout,
		},
		web.Services{
			Billing:  billingService,
			Webhooks: webhooks.NewService(b.storage, b.processor, tracer, monitor, logger),
			Team:     team.NewService(b.storage, b.sender, &team.Config{AcceptURLFormat: specs.InviteAcceptURLFormat, FreeTierID: specs.FreeTierID}, tracer, monitor, logger),
			Admin:    admin.NewService(b.storage, tracer, monitor, logger),
		},
		authentication.NewPrincipalResolver(syncClient, b.storage, tracer, monitor, logger),
		authentication.NewMiddleware(verifier, tracer, monitor, logger),
		b.db,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}

func main() {
	if err := serve(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}
