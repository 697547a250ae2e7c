package report

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/cleared-dev/expense-tracker/internal/model"
	"github.com/cleared-dev/expense-tracker/internal/summary"
)

func testExpenses() []model.Expense {
	return []model.Expense{
		{Date: "2024-01-10", Amount: decimal.RequireFromString("10.0"), Description: "groceries", Category: "food"},
		{Date: "2024-02-05", Amount: decimal.RequireFromString("20.0"), Description: "train", Category: "transport"},
	}
}

func TestPrintExpensesTable(t *testing.T) {
	var buf bytes.Buffer
	PrintExpensesTable(&buf, testExpenses(), Options{Currency: "EUR"})

	out := buf.String()
	assert.Contains(t, out, "Date")
	assert.Contains(t, out, "Category")
	assert.Contains(t, out, "2024-01-10")
	assert.Contains(t, out, "groceries")
	assert.Contains(t, out, "transport")
	assert.Contains(t, out, "30.00 EUR")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("groceries")), bytes.Index(buf.Bytes(), []byte("train")))
}

func TestPrintExpensesTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	PrintExpensesTable(&buf, nil, Options{})
	assert.Equal(t, "No expenses recorded.\n", buf.String())
}

func TestPrintTotalsTable(t *testing.T) {
	var buf bytes.Buffer
	PrintTotalsTable(&buf, "Month", summary.ByMonth(testExpenses()), Options{})

	out := buf.String()
	assert.Contains(t, out, "Month")
	assert.Contains(t, out, "2024-01")
	assert.Contains(t, out, "10.00")
	assert.Contains(t, out, "2024-02")
	assert.Contains(t, out, "20.00")
	assert.Contains(t, out, "30.00")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("2024-01")), bytes.Index(buf.Bytes(), []byte("2024-02")))
}

func TestPrintTotalsTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	PrintTotalsTable(&buf, "Category", nil, Options{})
	assert.Equal(t, "No expenses recorded.\n", buf.String())
}
