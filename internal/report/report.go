package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/expense-tracker/internal/model"
	"github.com/cleared-dev/expense-tracker/internal/summary"
)

// Options controls table rendering.
type Options struct {
	Currency string // appended to totals when set
}

func (o Options) money(d decimal.Decimal) string {
	s := summary.FormatAmount(d)
	if o.Currency != "" {
		s += " " + o.Currency
	}
	return s
}

// PrintExpensesTable renders all expenses in insertion order.
func PrintExpensesTable(w io.Writer, expenses []model.Expense, opts Options) {
	if len(expenses) == 0 {
		fmt.Fprintln(w, "No expenses recorded.")
		return
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"#", "Date", "Amount", "Description", "Category"})

	total := decimal.Zero
	for i, e := range expenses {
		t.AppendRow(table.Row{strconv.Itoa(i + 1), e.Date, e.Amount.String(), e.Description, e.Category})
		total = total.Add(e.Amount)
	}

	t.AppendSeparator()
	t.AppendFooter(table.Row{"", text.Bold.Sprint("Total"), text.Bold.Sprint(opts.money(total)), "", ""})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})
	t.Render()
}

// PrintTotalsTable renders grouped totals with a grand total footer.
// keyTitle names the grouping column, e.g. "Month".
func PrintTotalsTable(w io.Writer, keyTitle string, totals []summary.Total, opts Options) {
	if len(totals) == 0 {
		fmt.Fprintln(w, "No expenses recorded.")
		return
	}

	t := newTable(w)
	t.AppendHeader(table.Row{keyTitle, "Total"})
	for _, tt := range totals {
		t.AppendRow(table.Row{tt.Key, opts.money(tt.Amount)})
	}
	t.AppendSeparator()
	t.AppendFooter(table.Row{text.Bold.Sprint("All"), text.Bold.Sprint(opts.money(summary.Sum(totals)))})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})
	t.Render()
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault
	return t
}
