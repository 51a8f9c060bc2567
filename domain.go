package finance

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/etnz/finance/date"
	"github.com/etnz/finance/fp"
)

// Kind tells whether a Category collects income or expenses.
type Kind string

const (
	Income  Kind = "income"
	Expense Kind = "expense"
)

// UnmarshalJSON accepts only the known kinds.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch Kind(s) {
	case Income, Expense:
		*k = Kind(s)
		return nil
	default:
		return fmt.Errorf("unknown category kind %q, want %q or %q", s, Income, Expense)
	}
}

// BudgetPeriod is the period a Budget limit applies to.
type BudgetPeriod string

const (
	Week  BudgetPeriod = "week"
	Month BudgetPeriod = "month"
)

// Period returns the calendar period matching p. Unknown values fall back to a month.
func (p BudgetPeriod) Period() date.Period {
	if p == Week {
		return date.Weekly
	}
	return date.Monthly
}

// UnmarshalJSON accepts only the known budget periods.
func (p *BudgetPeriod) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch BudgetPeriod(s) {
	case Week, Month:
		*p = BudgetPeriod(s)
		return nil
	default:
		return fmt.Errorf("unknown budget period %q, want %q or %q", s, Week, Month)
	}
}

// User is carried through the ledger document untouched.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Account holds money in the ledger unit.
//
// Balance is a reference figure set by the user, not derived from transactions.
type Account struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Balance  int64  `json:"balance"`
	Currency string `json:"currency"`
}

// Category groups transactions. Categories with a parent form a forest.
type Category struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	ParentID fp.Option[string] `json:"parent_id"`
	Kind     Kind              `json:"kind"`
}

// IsRoot reports whether c has no parent.
func (c Category) IsRoot() bool { return c.ParentID.IsNone() }

// Transaction moves Amount in or out of an account.
//
// A positive amount is an income, a negative amount an expense.
type Transaction struct {
	ID         string            `json:"id"`
	AccountID  string            `json:"account_id"`
	CategoryID string            `json:"category_id"`
	Amount     int64             `json:"amount"`
	Date       date.Date         `json:"timestamp"`
	Note       fp.Option[string] `json:"note"`
}

// IsExpense reports whether t takes money out.
func (t Transaction) IsExpense() bool { return t.Amount < 0 }

// Spent returns the expense-positive amount of t, 0 for an income.
func (t Transaction) Spent() int64 {
	if t.Amount < 0 {
		return -t.Amount
	}
	return 0
}

// Budget caps the cumulative amount of a category over a period.
type Budget struct {
	ID         string       `json:"id"`
	CategoryID string       `json:"category_id"`
	Limit      int64        `json:"limit"`
	Period     BudgetPeriod `json:"period"`
}

// Event is published on the Bus and consumed synchronously by reducers.
type Event struct {
	Name      string
	Timestamp time.Time
	Payload   map[string]any
}

// abs returns |n|.
func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
