package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/cleared-dev/expense-tracker/internal/model"
)

// ErrCorrupt is returned when the data file exists but cannot be decoded.
var ErrCorrupt = errors.New("corrupt expense data")

const indent = "    "

// record is the on-disk shape of an expense.
type record struct {
	Date        string      `json:"date"`
	Amount      json.Number `json:"amount"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
}

// DecodeExpenses reads a JSON array of expenses.
func DecodeExpenses(r io.Reader) ([]model.Expense, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading expenses: %w", err)
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	expenses := make([]model.Expense, 0, len(records))
	for i, rec := range records {
		amount, err := model.ParseAmount(rec.Amount.String())
		if err != nil {
			return nil, fmt.Errorf("%w: expense %d: amount %q: %v", ErrCorrupt, i+1, rec.Amount, err)
		}
		expenses = append(expenses, model.Expense{
			Date:        rec.Date,
			Amount:      amount,
			Description: rec.Description,
			Category:    rec.Category,
		})
	}
	return expenses, nil
}

// EncodeExpenses writes expenses as an indented JSON array.
func EncodeExpenses(w io.Writer, expenses []model.Expense) error {
	records := make([]record, len(expenses))
	for i, e := range expenses {
		records[i] = record{
			Date:        e.Date,
			Amount:      json.Number(e.Amount.String()),
			Description: e.Description,
			Category:    e.Category,
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encoding expenses: %w", err)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing expenses: %w", err)
	}
	return nil
}
