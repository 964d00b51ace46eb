package main

import (
	"fmt"
	"time"

	"github.com/SscSPs/boarding_house_ledger/internal/dto"
	"github.com/spf13/cobra"
)

var (
	flagBoardingHouse string
	flagMonth         string
	flagAsOf          string
	flagGraceDays     int
)

var invoicesCmd = &cobra.Command{
	Use:   "invoices",
	Short: "Run invoicing jobs",
}

var invoicesMonthlyCmd = &cobra.Command{
	Use:   "monthly",
	Short: "Bill every billable enrollment of a boarding house for a month",
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

		month := flagMonth
		if month == "" {
			month = time.Now().UTC().Format(dto.MonthLayout)
		}
		resp, err := a.services.Invoice.GenerateMonthlyInvoices(cmd.Context(), dto.GenerateMonthlyInvoicesRequest{
			BoardingHouseID: flagBoardingHouse,
			Month:           month,
		}, actor)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "generated %d invoices totalling %s\n", resp.TotalInvoices, resp.TotalAmount.StringFixed(2))
		for _, s := range resp.Skipped {
			fmt.Fprintf(out, "  skipped %s: already billed as %s\n", s.EnrollmentID, s.ReferenceNumber)
		}
		for _, e := range resp.Errors {
			fmt.Fprintf(out, "  failed  %s: %s\n", e.EnrollmentID, e.Error)
		}
		if len(resp.Errors) > 0 {
			return fmt.Errorf("%d enrollments could not be billed", len(resp.Errors))
		}
		return nil
	},
}

var invoicesOverdueCmd = &cobra.Command{
	Use:   "overdue",
	Short: "Flag pending invoices older than the grace period as overdue",
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

		asOf := time.Now().UTC()
		if flagAsOf != "" {
			if asOf, err = dto.ParseDate(flagAsOf); err != nil {
				return err
			}
		}
		graceDays := a.cfg.InvoiceGraceDays
		if cmd.Flags().Changed("grace-days") {
			graceDays = flagGraceDays
		}

		n, err := a.services.Invoice.MarkOverdueInvoices(cmd.Context(), asOf, graceDays, actor)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "marked %d invoices overdue\n", n)
		return nil
	},
}

func init() {
	invoicesMonthlyCmd.Flags().StringVar(&flagBoardingHouse, "boarding-house", "", "Boarding house id")
	invoicesMonthlyCmd.Flags().StringVar(&flagMonth, "month", "", "Billing month as YYYY-MM (default: current month)")
	_ = invoicesMonthlyCmd.MarkFlagRequired("boarding-house")

	invoicesOverdueCmd.Flags().StringVar(&flagAsOf, "as-of", "", "Reference date as YYYY-MM-DD (default: today)")
	invoicesOverdueCmd.Flags().IntVar(&flagGraceDays, "grace-days", 0, "Days after the invoice date before it is overdue (default: INVOICE_GRACE_DAYS)")

	invoicesCmd.AddCommand(invoicesMonthlyCmd, invoicesOverdueCmd)
	rootCmd.AddCommand(invoicesCmd)
}
