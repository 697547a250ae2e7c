package commands

import (
	"github.com/spf13/cobra"

	"github.com/cleared-dev/expense-tracker/internal/report"
)

func newListCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print all expenses as a table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd, opts)
			if err != nil {
				return err
			}
			report.PrintExpensesTable(cmd.OutOrStdout(), sess.store.All(), report.Options{Currency: sess.cfg.Currency})
			return nil
		},
	}
}
