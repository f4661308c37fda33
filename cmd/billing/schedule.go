package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/radio-billing/backend/internal/application/usecase/schedule"
	"github.com/radio-billing/backend/internal/domain/valueobject"
)

func scheduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Project order contracts into monthly payment obligations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, _ := cmd.Flags().GetString("month")

			var input schedule.ProjectScheduleInput
			if raw != "" {
				month, err := valueobject.ParseYearMonth(raw)
				if err != nil {
					return err
				}
				input.Month = &month
			}

			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.close()

			output, err := s.injector.UseCases.ProjectSchedule.Execute(cmd.Context(), input)
			if err != nil {
				return fmt.Errorf("schedule projection failed: %w", err)
			}

			w := cmd.OutOrStdout()
			tw := newTable(w, "ORDER", "OCCURS", "DUE", "PAYEE", "CODE", "TYPE", "AMOUNT", "PLACED", "DISTRIBUTED")
			for _, o := range output.Obligations {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%t\t%t\n",
					o.OrderID, o.OccurrenceMonth, o.ExpectedPaymentMonth, o.PayeeName, o.PayeeCode,
					o.OrderType, o.Amount.String(), o.OrderPlaced, o.DocumentsDistributed)
			}
			_ = tw.Flush()

			printItemErrors(w, output.Errors)
			return nil
		},
	}

	cmd.Flags().String("month", "", "occurrence month filter (YYYY-MM)")

	return cmd
}
