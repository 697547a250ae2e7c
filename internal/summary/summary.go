package summary

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/expense-tracker/internal/model"
)

// Total is the summed amount for one group key.
type Total struct {
	Key    string
	Amount decimal.Decimal
}

// KeyFunc extracts the grouping key from an expense.
type KeyFunc func(model.Expense) string

// ByMonth totals expenses per "YYYY-MM" month key.
func ByMonth(expenses []model.Expense) []Total {
	return GroupBy(expenses, model.Expense.MonthKey)
}

// ByCategory totals expenses per category label, compared verbatim.
func ByCategory(expenses []model.Expense) []Total {
	return GroupBy(expenses, func(e model.Expense) string { return e.Category })
}

// GroupBy sums amounts per key and returns the totals sorted by key ascending.
func GroupBy(expenses []model.Expense, key KeyFunc) []Total {
	sums := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		k := key(e)
		sums[k] = sums[k].Add(e.Amount)
	}

	totals := make([]Total, 0, len(sums))
	for k, amount := range sums {
		totals = append(totals, Total{Key: k, Amount: amount})
	}
	slices.SortFunc(totals, func(a, b Total) int {
		switch {
		case a.Key < b.Key:
			return -1
		case a.Key > b.Key:
			return 1
		}
		return 0
	})
	return totals
}

// Sum returns the grand total across totals.
func Sum(totals []Total) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range totals {
		sum = sum.Add(t.Amount)
	}
	return sum
}

// FormatAmount renders an amount with exactly two decimal places.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
