package model

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the layout of Expense.Date.
const DateFormat = "2006-01-02"

// ErrInvalidInput is returned when user-supplied fields do not form a valid expense.
var ErrInvalidInput = errors.New("invalid input")

// Expense is one recorded expense.
type Expense struct {
	Date        string // "YYYY-MM-DD", kept verbatim
	Amount      decimal.Decimal
	Description string
	Category    string
}

// MonthKey returns the "YYYY-MM" prefix of the date.
// Dates shorter than seven characters are returned whole.
func (e Expense) MonthKey() string {
	if len(e.Date) < 7 {
		return e.Date
	}
	return e.Date[:7]
}

// ValidateDate checks that s is a real calendar date in YYYY-MM-DD form.
func ValidateDate(s string) error {
	if _, err := time.Parse(DateFormat, s); err != nil {
		return fmt.Errorf("%w: date %q: %v", ErrInvalidInput, s, err)
	}
	return nil
}

// minExponent bounds how small a fractional amount may get; float64 has
// nothing below 1e-324 either.
const minExponent = -324

// ParseAmount parses a monetary amount. Surrounding whitespace is ignored.
// Amounts outside the float64 range are rejected.
func ParseAmount(s string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(s)
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return decimal.Decimal{}, fmt.Errorf("%w: amount %q out of range or not a number", ErrInvalidInput, s)
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: amount %q: %v", ErrInvalidInput, s, err)
	}
	if d.Exponent() < minExponent {
		return decimal.Decimal{}, fmt.Errorf("%w: amount %q has too many decimal places", ErrInvalidInput, s)
	}
	return d, nil
}

// FormatAmount renders an amount for listings, keeping at least one decimal
// place so whole amounts read as 10.0 rather than 10.
func FormatAmount(d decimal.Decimal) string {
	if d.Exponent() >= 0 || d.Equal(d.Truncate(0)) {
		return d.StringFixed(1)
	}
	return d.String()
}

// NewExpense validates raw fields and builds an Expense.
func NewExpense(date, amount, description, category string) (Expense, error) {
	if err := ValidateDate(date); err != nil {
		return Expense{}, err
	}
	amt, err := ParseAmount(amount)
	if err != nil {
		return Expense{}, err
	}
	return Expense{
		Date:        date,
		Amount:      amt,
		Description: description,
		Category:    category,
	}, nil
}
