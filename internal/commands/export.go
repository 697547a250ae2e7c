package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/expense-tracker/internal/export"
	"github.com/cleared-dev/expense-tracker/internal/model"
)

func newExportCommand(opts *rootOptions) *cobra.Command {
	var format string
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export expenses to CSV or XLSX",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var write func(io.Writer, []model.Expense) error
			switch format {
			case "csv":
				write = export.WriteCSV
			case "xlsx":
				write = export.WriteXLSX
			default:
				return fmt.Errorf("unknown format %q: want csv or xlsx", format)
			}

			sess, err := openSession(cmd, opts)
			if err != nil {
				return err
			}
			return runExport(output, sess.store.All(), write)
		},
	}

	cmd.Flags().StringVar(&format, "format", "csv", "output format (csv or xlsx)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (required)")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func runExport(path string, expenses []model.Expense, write func(io.Writer, []model.Expense) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	if err := write(f, expenses); err != nil {
		f.Close()
		return fmt.Errorf("exporting to %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing export file: %w", err)
	}
	return nil
}
