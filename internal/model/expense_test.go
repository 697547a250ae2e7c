package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpenseMonthKey(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2024-01-15", "2024-01"},
		{"2024-12-31", "2024-12"},
		{"2024-1", "2024-1"},
		{"", ""},
	}
	for _, tt := range tests {
		e := Expense{Date: tt.date}
		assert.Equal(t, tt.want, e.MonthKey(), "MonthKey(%q)", tt.date)
	}
}

func TestValidateDate(t *testing.T) {
	for _, ok := range []string{"2024-01-15", "2024-02-29", "1999-12-31"} {
		assert.NoError(t, ValidateDate(ok), ok)
	}
	for _, bad := range []string{"not-a-date", "2023-02-29", "2024-13-01", "2024/01/15", "15-01-2024", ""} {
		err := ValidateDate(bad)
		require.Error(t, err, bad)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestParseAmount(t *testing.T) {
	d, err := ParseAmount("42.50")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("42.5")))

	d, err = ParseAmount(" -3 ")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.NewFromInt(-3)))

	for _, bad := range []string{"", "abc", "12,50", "nan", "inf", "-inf", "1e400", "1e50000000", "1e-50000000"} {
		_, err := ParseAmount(bad)
		require.Error(t, err, bad)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestNewExpense(t *testing.T) {
	e, err := NewExpense("2024-01-15", "42.50", "lunch", "food")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", e.Date)
	assert.Equal(t, "42.5", e.Amount.String())
	assert.Equal(t, "lunch", e.Description)
	assert.Equal(t, "food", e.Category)

	_, err = NewExpense("not-a-date", "1", "x", "y")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewExpense("2024-01-15", "ten", "x", "y")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNewExpense_KeepsTextVerbatim(t *testing.T) {
	e, err := NewExpense("2024-03-01", "1", "  Coffee & cake ", "Food")
	require.NoError(t, err)
	assert.Equal(t, "  Coffee & cake ", e.Description)
	assert.Equal(t, "Food", e.Category)
}

func TestParseAmount_LargeButFinite(t *testing.T) {
	d, err := ParseAmount("1e300")
	require.NoError(t, err)
	assert.Equal(t, int32(300), d.Exponent())
}

func TestFormatAmount(t *testing.T) {
	tests := map[string]string{
		"10":    "10.0",
		"10.0":  "10.0",
		"10.00": "10.0",
		"42.50": "42.5",
		"-3":    "-3.0",
		"0.125": "0.125",
		"1e2":   "100.0",
		"0":     "0.0",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatAmount(decimal.RequireFromString(in)), in)
	}
}
