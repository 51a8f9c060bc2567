package finance

import (
	"slices"

	"github.com/etnz/finance/fp"
)

// Ledger is the combined collection of users, accounts, categories,
// transactions and budgets of one session.
//
// A Ledger is a value: methods never modify the receiver, they return a new
// Ledger sharing nothing mutable with the original. Insertion order of every
// collection is preserved.
type Ledger struct {
	Users        []User        `json:"users,omitempty"`
	Accounts     []Account     `json:"accounts"`
	Categories   []Category    `json:"categories"`
	Transactions []Transaction `json:"transactions"`
	Budgets      []Budget      `json:"budgets"`
}

// clone returns a deep enough copy of l: every slice is reallocated.
func (l Ledger) clone() Ledger {
	return Ledger{
		Users:        slices.Clone(l.Users),
		Accounts:     slices.Clone(l.Accounts),
		Categories:   slices.Clone(l.Categories),
		Transactions: slices.Clone(l.Transactions),
		Budgets:      slices.Clone(l.Budgets),
	}
}

// WithTransaction returns a new Ledger with t appended.
//
// No validation happens here, see ValidatePipeline.
func (l Ledger) WithTransaction(t Transaction) Ledger {
	n := l.clone()
	n.Transactions = append(n.Transactions, t)
	return n
}

// ReplaceTransaction returns a new Ledger where the transaction with the same id as t is replaced by t.
// The second value is false when no transaction has that id.
func (l Ledger) ReplaceTransaction(t Transaction) (Ledger, bool) {
	i := slices.IndexFunc(l.Transactions, func(x Transaction) bool { return x.ID == t.ID })
	if i < 0 {
		return l, false
	}
	n := l.clone()
	n.Transactions[i] = t
	return n, true
}

// WithoutTransaction returns a new Ledger without the transaction id.
// The second value is false when no transaction has that id.
func (l Ledger) WithoutTransaction(id string) (Ledger, bool) {
	i := slices.IndexFunc(l.Transactions, func(x Transaction) bool { return x.ID == id })
	if i < 0 {
		return l, false
	}
	n := l.clone()
	n.Transactions = slices.Delete(n.Transactions, i, i+1)
	return n, true
}

// WithBudget returns a new Ledger with b appended.
func (l Ledger) WithBudget(b Budget) Ledger {
	n := l.clone()
	n.Budgets = append(n.Budgets, b)
	return n
}

// WithBudgetLimit returns a new Ledger where budget id has the new limit.
// Other budgets are unchanged. The second value is false if id is unknown.
func (l Ledger) WithBudgetLimit(id string, limit int64) (Ledger, bool) {
	i := slices.IndexFunc(l.Budgets, func(b Budget) bool { return b.ID == id })
	if i < 0 {
		return l, false
	}
	n := l.clone()
	n.Budgets[i].Limit = limit
	return n, true
}

// LastTransaction returns the most recently added transaction.
func (l Ledger) LastTransaction() fp.Option[Transaction] {
	if len(l.Transactions) == 0 {
		return fp.None[Transaction]()
	}
	return fp.Some(l.Transactions[len(l.Transactions)-1])
}

// FindAccount looks up an account by id.
func FindAccount(accounts []Account, id string) fp.Option[Account] {
	return fp.Find(accounts, func(a Account) bool { return a.ID == id })
}

// FindCategory looks up a category by id.
func FindCategory(categories []Category, id string) fp.Option[Category] {
	return fp.Find(categories, func(c Category) bool { return c.ID == id })
}

// FindBudget looks up the budget of a category.
func FindBudget(budgets []Budget, categoryID string) fp.Option[Budget] {
	return fp.Find(budgets, func(b Budget) bool { return b.CategoryID == categoryID })
}

// FindTransaction looks up a transaction by id.
func FindTransaction(transactions []Transaction, id string) fp.Option[Transaction] {
	return fp.Find(transactions, func(t Transaction) bool { return t.ID == id })
}

// CategoryName returns the name of category id, or the id itself when unknown.
func CategoryName(categories []Category, id string) string {
	return fp.MapOption(FindCategory(categories, id), func(c Category) (string, error) { return c.Name, nil }).GetOr(id)
}
