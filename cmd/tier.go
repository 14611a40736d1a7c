// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"io"
	"net/http"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/canonical/billing-service/internal/types"
	"github.com/canonical/billing-service/pkg/admin"
)

var tierCmd = &cobra.Command{
	Use:   "tier",
	Short: "Manage the tier catalogue",
}

var listTiersCmd = &cobra.Command{
	Use:   "list",
	Short: "List every tier, custom tiers included",
	RunE: func(cmd *cobra.Command, args []string) error {
		var tiers []*types.Tier
		if err := getClient().do(cmd.Context(), http.MethodGet, "/api/v0/admin/tiers", nil, &tiers); err != nil {
			return fmt.Errorf("failed to list tiers: %w", err)
		}

		printTiers(cmd.OutOrStdout(), tiers)
		return nil
	},
}

var createTierCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a tier, omitted limits are unlimited",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := &admin.TierRequest{Name: args[0]}

		flags := cmd.Flags()
		for flag, dst := range map[string]**int64{
			"users":         &req.BaseUserLimit,
			"projects":      &req.BaseProjectLimit,
			"collaborators": &req.BaseCollaboratorLimit,
			"storage":       &req.BaseStorageLimit,
		} {
			if flags.Changed(flag) {
				v, _ := flags.GetInt64(flag)
				*dst = &v
			}
		}

		for flag, dst := range map[string]**string{
			"flat-price":          &req.FlatPriceID,
			"storage-price":       &req.StoragePriceID,
			"user-price":          &req.UserPriceID,
			"collaborator-price":  &req.CollaboratorPriceID,
			"project-price":       &req.ProjectPriceID,
			"custom-subscription": &req.CustomSubscriptionID,
		} {
			if flags.Changed(flag) {
				v, _ := flags.GetString(flag)
				*dst = &v
			}
		}

		req.IsCustom, _ = flags.GetBool("custom")

		tier := new(types.Tier)
		if err := getClient().do(cmd.Context(), http.MethodPost, "/api/v0/admin/tiers", req, tier); err != nil {
			return fmt.Errorf("failed to create tier: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Tier created: %s (ID: %d)\n", tier.Name, tier.ID)
		return nil
	},
}

func printTiers(out io.Writer, tiers []*types.Tier) {
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tUSERS\tPROJECTS\tCOLLABORATORS\tSTORAGE_MB\tCUSTOM")
	for _, t := range tiers {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%v\n",
			t.ID, t.Name,
			limitString(t.BaseUserLimit),
			limitString(t.BaseProjectLimit),
			limitString(t.BaseCollaboratorLimit),
			limitString(t.BaseStorageLimit),
			t.IsCustom,
		)
	}
	w.Flush()
}

func limitString(v *int64) string {
	if v == nil {
		return "unlimited"
	}
	return fmt.Sprint(*v)
}

func init() {
	rootCmd.AddCommand(tierCmd)
	tierCmd.AddCommand(listTiersCmd)
	tierCmd.AddCommand(createTierCmd)

	createTierCmd.Flags().Int64("users", 0, "Base user limit")
	createTierCmd.Flags().Int64("projects", 0, "Base project limit")
	createTierCmd.Flags().Int64("collaborators", 0, "Base collaborator limit")
	createTierCmd.Flags().Int64("storage", 0, "Base storage limit in MB")
	createTierCmd.Flags().String("flat-price", "", "Processor price of the flat fee")
	createTierCmd.Flags().String("storage-price", "", "Processor price of the metered storage")
	createTierCmd.Flags().String("user-price", "", "Processor price of an additional user")
	createTierCmd.Flags().String("collaborator-price", "", "Processor price of an additional collaborator")
	createTierCmd.Flags().String("project-price", "", "Processor price of an additional project")
	createTierCmd.Flags().Bool("custom", false, "Negotiated tier bound to a single team")
	createTierCmd.Flags().String("custom-subscription", "", "Subscription billing the custom tier")
}
