package main

import (
	"fmt"
	"strings"

	"github.com/SscSPs/boarding_house_ledger/internal/core/domain"
	"github.com/spf13/cobra"
)

var balancesCmd = &cobra.Command{
	Use:   "balances",
	Short: "Inspect and repair the account balance projection",
}

var balancesRebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Replace the projection with a replay of all live journal entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		n, err := a.services.Balance.RebuildBalances(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "rebuilt %d account balances\n", n)
		return nil
	},
}

var balancesVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Compare the projection with a replay of the journal; exits non-zero on drift",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		drifts, err := a.services.Balance.VerifyBalances(cmd.Context())
		if err != nil {
			return err
		}
		if len(drifts) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "balances are consistent with the journal")
			return nil
		}
		printDrifts(cmd, drifts)
		return fmt.Errorf("balance drift detected in %d accounts", len(drifts))
	},
}

var balancesTrialCmd = &cobra.Command{
	Use:   "trial",
	Short: "Print the trial balance",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		tb, err := a.services.Balance.TrialBalance(cmd.Context())
		if err != nil {
			return err
		}
		printTrialBalance(cmd, tb)
		return nil
	},
}

func printDrifts(cmd *cobra.Command, drifts []domain.BalanceDrift) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %-8s %15s %15s %8s %8s\n", "CODE", "STORED", "REPLAYED", "STORED#", "REPLAY#")
	for _, d := range drifts {
		fmt.Fprintf(out, "  %-8s %15s %15s %8d %8d\n",
			d.AccountCode, d.StoredBalance.StringFixed(2), d.ReplayedBalance.StringFixed(2), d.StoredCount, d.ReplayedCount)
	}
}

func printTrialBalance(cmd *cobra.Command, tb *domain.TrialBalance) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %-8s %-30s %15s\n", "CODE", "NAME", "BALANCE")
	for _, row := range tb.Rows {
		name := row.AccountName
		if len(name) > 28 {
			name = name[:28] + ".."
		}
		fmt.Fprintf(out, "  %-8s %-30s %15s\n", row.AccountCode, name, row.CurrentBalance.StringFixed(2))
	}
	fmt.Fprintf(out, "  %s\n", strings.Repeat("-", 55))
	fmt.Fprintf(out, "  %-39s %15s\n", "TOTAL DEBITS", tb.TotalDebits.StringFixed(2))
	fmt.Fprintf(out, "  %-39s %15s\n", "TOTAL CREDITS", tb.TotalCredits.StringFixed(2))
	if tb.Balanced {
		fmt.Fprintln(out, "\n  [BALANCED]")
	} else {
		fmt.Fprintln(out, "\n  [UNBALANCED!]")
	}
}

func init() {
	balancesCmd.AddCommand(balancesRebuildCmd, balancesVerifyCmd, balancesTrialCmd)
	rootCmd.AddCommand(balancesCmd)
}
