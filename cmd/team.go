// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/billing-service/internal/types"
	"github.com/canonical/billing-service/pkg/admin"
)

const dateLayout = "2006-01-02"

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Manage teams",
}

var customBillingCmd = &cobra.Command{
	Use:   "custom-billing [team id]",
	Short: "Move a team onto a custom tier billed outside the payment processor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		teamID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid team id %q", args[0])
		}

		req, err := customBillingRequest(cmd)
		if err != nil {
			return err
		}

		billing := new(types.CustomBilling)
		path := fmt.Sprintf("/api/v0/admin/teams/%d/custom-billing", teamID)
		if err := getClient().do(cmd.Context(), http.MethodPost, path, req, billing); err != nil {
			return fmt.Errorf("failed to create custom billing: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Team %d on tier %d until %s\n", teamID, req.TierID, req.RenewalDate.Format(dateLayout))
		return nil
	},
}

func customBillingRequest(cmd *cobra.Command) (*admin.CustomBillingRequest, error) {
	tierID, _ := cmd.Flags().GetInt64("tier")
	start, _ := cmd.Flags().GetString("start")
	renewal, _ := cmd.Flags().GetString("renewal")

	req := &admin.CustomBillingRequest{TierID: tierID, StartDate: time.Now().UTC().Truncate(24 * time.Hour)}

	if start != "" {
		t, err := time.Parse(dateLayout, start)
		if err != nil {
			return nil, fmt.Errorf("invalid start date %q", start)
		}
		req.StartDate = t
	}

	t, err := time.Parse(dateLayout, renewal)
	if err != nil {
		return nil, fmt.Errorf("invalid renewal date %q", renewal)
	}
	req.RenewalDate = t

	return req, nil
}

func init() {
	rootCmd.AddCommand(teamCmd)
	teamCmd.AddCommand(customBillingCmd)

	customBillingCmd.Flags().Int64("tier", 0, "Custom tier ID")
	customBillingCmd.Flags().String("start", "", "Start date (YYYY-MM-DD), defaults to today")
	customBillingCmd.Flags().String("renewal", "", "Renewal date (YYYY-MM-DD)")
	_ = customBillingCmd.MarkFlagRequired("tier")
	_ = customBillingCmd.MarkFlagRequired("renewal")
}
