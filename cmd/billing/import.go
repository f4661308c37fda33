package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/radio-billing/backend/internal/application/usecase/payment"
	"github.com/radio-billing/backend/internal/integration/paymentcsv"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import external data",
	}

	payments := &cobra.Command{
		Use:   "payments <file.csv>",
		Short: "Import a payment CSV export",
		Long: `Import payment records from a CSV export.

The header row may use English or Japanese column names. Rows that fail
validation are reported and skipped; the rest are stored.`,
		Args: cobra.ExactArgs(1),
		RunE: runImportPayments,
	}
	payments.Flags().String("mode", string(payment.ImportModeAppend), "import mode (overwrite, append)")
	payments.Flags().String("encoding", paymentcsv.EncodingUTF8, "file encoding (utf-8, shift_jis)")

	cmd.AddCommand(payments)
	return cmd
}

func runImportPayments(cmd *cobra.Command, args []string) error {
	mode, _ := cmd.Flags().GetString("mode")
	encoding, _ := cmd.Flags().GetString("encoding")

	file, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer func() { _ = file.Close() }()

	rows, err := paymentcsv.Read(file, encoding)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	slog.Info("Importing payments", "file", args[0], "rows", len(rows), "mode", mode)

	output, err := s.injector.UseCases.ImportPayments.Execute(cmd.Context(), payment.ImportPaymentsInput{
		Mode: payment.ImportMode(mode),
		Rows: rows,
	})
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Run %s (%s): %d imported, %d rejected\n", output.BatchRunID, output.Mode, output.ImportedCount, output.RejectedCount)
	for _, rowErr := range output.Errors {
		fmt.Fprintln(w, warningStyle.Render(fmt.Sprintf("  line %d: %s", rowErr.Line, rowErr.Message)))
	}
	return nil
}
