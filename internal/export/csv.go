package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/cleared-dev/expense-tracker/internal/model"
)

// Header holds the column names shared by the CSV and XLSX exports.
var Header = []string{"date", "amount", "description", "category"}

// WriteCSV writes expenses as CSV with a header row.
func WriteCSV(w io.Writer, expenses []model.Expense) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, e := range expenses {
		if err := cw.Write(marshalRow(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func marshalRow(e model.Expense) []string {
	return []string{e.Date, e.Amount.String(), e.Description, e.Category}
}
