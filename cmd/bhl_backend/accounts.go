package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "Manage the chart of accounts",
}

var accountsSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the well-known accounts that are missing",
	RunE: func(cmd *cobra.Command, args []string) error {
		actor, err := cliActor()
		if err != nil {
			return err
		}
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		created, err := a.services.Account.SeedDefaultChart(cmd.Context(), actor)
		if err != nil {
			return err
		}
		for _, acc := range created {
			fmt.Fprintf(cmd.OutOrStdout(), "created %-8s %s (%s)\n", acc.Code, acc.Name, acc.AccountType)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d accounts created\n", len(created))
		return nil
	},
}

func init() {
	accountsCmd.AddCommand(accountsSeedCmd)
	rootCmd.AddCommand(accountsCmd)
}
