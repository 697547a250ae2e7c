package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/expense-tracker/internal/model"
	"github.com/cleared-dev/expense-tracker/internal/report"
	"github.com/cleared-dev/expense-tracker/internal/summary"
)

func newSummaryCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "summary <month|category>",
		Short:     "Print expense totals grouped by month or category",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"month", "category"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				title string
				group func([]model.Expense) []summary.Total
			)
			switch args[0] {
			case "month":
				title, group = "Month", summary.ByMonth
			case "category":
				title, group = "Category", summary.ByCategory
			default:
				return fmt.Errorf("unknown grouping %q: want month or category", args[0])
			}

			sess, err := openSession(cmd, opts)
			if err != nil {
				return err
			}
			totals := group(sess.store.All())
			report.PrintTotalsTable(cmd.OutOrStdout(), title, totals, report.Options{Currency: sess.cfg.Currency})
			return nil
		},
	}
}
