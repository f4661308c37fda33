package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/radio-billing/backend/internal/application/usecase/generation"
)

func generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate expenses for one month",
		Long: `Generate the month's expenses from every active template.

Templates without an expense for the month get a new one. Expenses already
generated for the month are updated in place from the current template
values; their status is kept.`,
		RunE: runGenerate,
	}

	cmd.Flags().Int("year", 0, "target year (required)")
	cmd.Flags().Int("month", 0, "target month, 1-12 (required)")
	_ = cmd.MarkFlagRequired("year")
	_ = cmd.MarkFlagRequired("month")

	return cmd
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	year, _ := cmd.Flags().GetInt("year")
	month, _ := cmd.Flags().GetInt("month")

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	slog.Info("Generating expenses", "year", year, "month", month)

	output, err := s.injector.UseCases.GenerateForMonth.Execute(cmd.Context(), generation.GenerateForMonthInput{
		Year:  year,
		Month: month,
	})
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	printGeneration(cmd.OutOrStdout(), output)
	return nil
}

func catchUpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catch-up",
		Short: "Generate current-month expenses for templates that have none yet",
		Long: `Generate expenses for the current month only.

Templates that already have an expense for the month are skipped and left
unchanged. Earlier months are not revisited; use generate for those.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.close()

			output, err := s.injector.UseCases.GenerateMissing.Execute(cmd.Context())
			if err != nil {
				return fmt.Errorf("catch-up failed: %w", err)
			}

			printGeneration(cmd.OutOrStdout(), output)
			return nil
		},
	}
}

func printGeneration(w io.Writer, output *generation.GenerationOutput) {
	fmt.Fprintf(w, "Run %s for %s: %d generated, %d updated, %d skipped\n",
		output.BatchRunID, output.TargetMonth, output.GeneratedCount, output.UpdatedCount, output.SkippedCount)

	if len(output.Generated)+len(output.Updated) > 0 {
		tw := newTable(w, "EXPENSE", "TEMPLATE", "PAYEE", "CODE", "AMOUNT", "PAYMENT DATE")
		for _, item := range append(output.Generated, output.Updated...) {
			fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\t%s\n",
				item.ExpenseID, item.TemplateID, item.PayeeName, item.PayeeCode,
				item.Amount.String(), item.PaymentDate.Format("2006-01-02"))
		}
		_ = tw.Flush()
	}

	for _, item := range output.Skipped {
		fmt.Fprintf(w, "  skipped template #%d: %s\n", item.TemplateID, item.Reason)
	}
	printItemErrors(w, output.Errors)
}
