// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/canonical/billing-service/internal/types"
	"github.com/canonical/billing-service/pkg/admin"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage user accounts",
}

var enableUserCmd = &cobra.Command{
	Use:   "enable [email]",
	Short: "Enable an account and mark its email verified, lifts a storage suspension",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setUserActive(cmd.Context(), getClient(), cmd.OutOrStdout(), args[0], true)
	},
}

var disableUserCmd = &cobra.Command{
	Use:   "disable [email]",
	Short: "Disable an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setUserActive(cmd.Context(), getClient(), cmd.OutOrStdout(), args[0], false)
	},
}

func setUserActive(ctx context.Context, c *adminClient, out io.Writer, email string, active bool) error {
	action := "disable"
	if active {
		action = "enable"
	}

	user := new(types.User)
	if err := c.do(ctx, http.MethodPost, "/api/v0/admin/users/"+action, &admin.UserRequest{Email: email}, user); err != nil {
		return fmt.Errorf("failed to %s user %s: %w", action, email, err)
	}

	fmt.Fprintf(out, "User %d (%s) active: %v\n", user.ID, user.Email, user.IsActive)
	return nil
}

func init() {
	rootCmd.AddCommand(userCmd)
	userCmd.AddCommand(enableUserCmd)
	userCmd.AddCommand(disableUserCmd)
}
