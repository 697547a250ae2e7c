package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cleared-dev/expense-tracker/internal/model"
	"github.com/cleared-dev/expense-tracker/internal/summary"
)

// State is the menu loop state.
type State int

const (
	Running State = iota
	Exited
)

// Choices accepted at the main prompt.
const (
	ChoiceAdd      = "1"
	ChoiceView     = "2"
	ChoiceMonthly  = "3"
	ChoiceCategory = "4"
	ChoiceExit     = "5"
)

// Store is the expense storage the menu operates on.
type Store interface {
	All() []model.Expense
	Add(e model.Expense) error
}

// Menu is the interactive expense tracker loop.
type Menu struct {
	store Store
	in    *bufio.Reader
	out   io.Writer
	state State
}

// New creates a Menu reading user input from in and printing to out.
func New(store Store, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		store: store,
		in:    bufio.NewReader(in),
		out:   out,
		state: Running,
	}
}

// State returns the current loop state.
func (m *Menu) State() State {
	return m.state
}

// Run shows the menu and dispatches choices until the user exits or input
// ends. The only error returned is a failure to persist an added expense.
func (m *Menu) Run() error {
	for m.state == Running {
		m.printMenu()
		choice, ok := m.prompt("Enter your choice: ")
		if !ok {
			m.state = Exited
			break
		}
		if err := m.Dispatch(choice); err != nil {
			return err
		}
	}
	return nil
}

// Dispatch runs the operation for a single menu choice.
func (m *Menu) Dispatch(choice string) error {
	switch choice {
	case ChoiceAdd:
		return m.AddExpense()
	case ChoiceView:
		m.ViewExpenses()
	case ChoiceMonthly:
		m.MonthlySummary()
	case ChoiceCategory:
		m.CategorySummary()
	case ChoiceExit:
		fmt.Fprintln(m.out, "Exiting Expense Tracker. Goodbye!")
		m.state = Exited
	default:
		fmt.Fprintln(m.out, "Invalid choice. Please try again.")
	}
	return nil
}

// AddExpense prompts for the four fields, validating as it goes, and stores
// the result. Invalid input stores nothing and is not an error.
func (m *Menu) AddExpense() error {
	e, err := m.readExpense()
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		fmt.Fprintln(m.out, "Invalid input. Please try again.")
		return nil
	case errors.Is(err, errInputClosed):
		// Run stops at the next prompt.
		return nil
	}

	if err := m.store.Add(e); err != nil {
		return fmt.Errorf("adding expense: %w", err)
	}
	fmt.Fprintln(m.out, "Expense added successfully!")
	return nil
}

var errInputClosed = errors.New("input closed")

func (m *Menu) readExpense() (model.Expense, error) {
	date, ok := m.prompt("Enter the date (YYYY-MM-DD): ")
	if !ok {
		return model.Expense{}, errInputClosed
	}
	if err := model.ValidateDate(date); err != nil {
		return model.Expense{}, err
	}

	amount, ok := m.prompt("Enter the amount spent: ")
	if !ok {
		return model.Expense{}, errInputClosed
	}
	if _, err := model.ParseAmount(amount); err != nil {
		return model.Expense{}, err
	}

	description, ok := m.prompt("Enter a brief description: ")
	if !ok {
		return model.Expense{}, errInputClosed
	}
	category, ok := m.prompt("Enter the category (e.g., food, transport, etc.): ")
	if !ok {
		return model.Expense{}, errInputClosed
	}

	return model.NewExpense(date, amount, description, category)
}

// ViewExpenses lists every expense, numbered from 1 in insertion order.
func (m *Menu) ViewExpenses() {
	expenses := m.store.All()
	if len(expenses) == 0 {
		fmt.Fprintln(m.out, "No expenses recorded.")
		return
	}

	fmt.Fprintln(m.out, "\nExpenses:")
	for i, e := range expenses {
		fmt.Fprintf(m.out, "%d. Date: %s, Amount: %s, Description: %s, Category: %s\n",
			i+1, e.Date, model.FormatAmount(e.Amount), e.Description, e.Category)
	}
}

// MonthlySummary prints totals per month, oldest first.
func (m *Menu) MonthlySummary() {
	m.printTotals("Monthly Summary:", summary.ByMonth(m.store.All()))
}

// CategorySummary prints totals per category, sorted by label.
func (m *Menu) CategorySummary() {
	m.printTotals("Category Summary:", summary.ByCategory(m.store.All()))
}

func (m *Menu) printTotals(title string, totals []summary.Total) {
	fmt.Fprintln(m.out, "\n"+title)
	for _, t := range totals {
		fmt.Fprintf(m.out, "%s: %s\n", t.Key, summary.FormatAmount(t.Amount))
	}
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out, "\nExpense Tracker")
	fmt.Fprintln(m.out, "1. Add Expense")
	fmt.Fprintln(m.out, "2. View Expenses")
	fmt.Fprintln(m.out, "3. Monthly Summary")
	fmt.Fprintln(m.out, "4. Category Summary")
	fmt.Fprintln(m.out, "5. Exit")
}

// prompt prints label and reads one line without its line ending.
// ok is false once input is exhausted.
func (m *Menu) prompt(label string) (line string, ok bool) {
	fmt.Fprint(m.out, label)
	line, err := m.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, true
}
