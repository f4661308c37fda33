package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/radio-billing/backend/internal/application/usecase/reconciliation"
)

func reconcileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Match recorded payments against expenses or orders",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "expenses",
		Short: "Match payments against unmatched expenses",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.close()

			output, err := s.injector.UseCases.MatchExpenses.Execute(cmd.Context())
			if err != nil {
				return fmt.Errorf("expense matching failed: %w", err)
			}
			printMatch(cmd.OutOrStdout(), output)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "orders",
		Short: "Match payments against order contracts per expected payment month",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.close()

			output, err := s.injector.UseCases.MatchOrders.Execute(cmd.Context())
			if err != nil {
				return fmt.Errorf("order matching failed: %w", err)
			}
			printMatch(cmd.OutOrStdout(), output)
			return nil
		},
	})

	return cmd
}

func printMatch(w io.Writer, output *reconciliation.MatchOutput) {
	fmt.Fprintf(w, "Run %s: %d matched, %d unmatched\n", output.BatchRunID, output.MatchedCount, output.UnmatchedCount)

	if len(output.Matched) > 0 {
		tw := newTable(w, "RECORD", "MONTH", "PAYMENT", "CODE", "AMOUNT")
		for _, pair := range output.Matched {
			fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\n", pair.RecordID, pair.ExpectedMonth, pair.PaymentID, pair.PayeeCode, pair.Amount.String())
		}
		_ = tw.Flush()
	}

	if len(output.Unmatched) > 0 {
		fmt.Fprintln(w, warningStyle.Render("Unmatched:"))
		tw := newTable(w, "RECORD", "MONTH", "PAYEE", "CODE", "AMOUNT", "REASON")
		for _, item := range output.Unmatched {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
				item.RecordID, item.ExpectedMonth, item.PayeeName, item.PayeeCode, item.Amount.String(), item.Reason)
		}
		_ = tw.Flush()
	}

	printItemErrors(w, output.Errors)
}
