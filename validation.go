package finance

import (
	"fmt"
	"math"
	"slices"

	"github.com/etnz/finance/fp"
)

// ReferenceFault reports a transaction naming an account or category that does not exist.
type ReferenceFault struct {
	TransactionID string
	Kind          string // "account" or "category"
	ID            string
}

func (f *ReferenceFault) Error() string {
	if f.TransactionID == "" {
		return fmt.Sprintf("%s %q not found", f.Kind, f.ID)
	}
	return fmt.Sprintf("transaction %q: %s %q not found", f.TransactionID, f.Kind, f.ID)
}

// BudgetExceededFault reports a category whose cumulative amount went over its budget.
type BudgetExceededFault struct {
	CategoryID string
	Limit      int64
	Total      int64
}

func (f *BudgetExceededFault) Error() string {
	return fmt.Sprintf("budget exceeded for category %q: limit=%d, total=%d", f.CategoryID, f.Limit, f.Total)
}

// DuplicateFault reports an id used more than once within a collection.
type DuplicateFault struct {
	Kind string // "account", "category", "transaction" or "budget"
	ID   string
}

func (f *DuplicateFault) Error() string {
	return fmt.Sprintf("duplicate %s id %q", f.Kind, f.ID)
}

// UnlimitedBudget is the budget assumed for a category without one.
func UnlimitedBudget(categoryID string) Budget {
	return Budget{ID: "unlimited", CategoryID: categoryID, Limit: math.MaxInt64, Period: Month}
}

// ValidateTransaction checks that t references an existing account and an
// existing category, the account first.
func ValidateTransaction(t Transaction, accounts []Account, categories []Category) fp.Result[Transaction] {
	if FindAccount(accounts, t.AccountID).IsNone() {
		return fp.Err[Transaction](&ReferenceFault{TransactionID: t.ID, Kind: "account", ID: t.AccountID})
	}
	if FindCategory(categories, t.CategoryID).IsNone() {
		return fp.Err[Transaction](&ReferenceFault{TransactionID: t.ID, Kind: "category", ID: t.CategoryID})
	}
	return fp.Ok(t)
}

// CheckBudget sums the amounts of every transaction of the budget category and
// fails when the sum is strictly greater than the limit.
//
// The caller is responsible for including the candidate transaction in transactions.
func CheckBudget(b Budget, transactions []Transaction) fp.Result[Budget] {
	var total int64
	for _, t := range transactions {
		if t.CategoryID == b.CategoryID {
			total += t.Amount
		}
	}
	if total > b.Limit {
		return fp.Err[Budget](&BudgetExceededFault{CategoryID: b.CategoryID, Limit: b.Limit, Total: total})
	}
	return fp.Ok(b)
}

// ValidatePipeline screens a candidate transaction before it is appended:
// references first, then the budget of its category over prior plus t.
//
// It returns Ok(t) when both stages pass, otherwise the fault of the first failing stage.
func ValidatePipeline(t Transaction, accounts []Account, categories []Category, budgets []Budget, prior []Transaction) fp.Result[Transaction] {
	checked := fp.BindResult(ValidateTransaction(t, accounts, categories), func(t Transaction) fp.Result[Budget] {
		b := FindBudget(budgets, t.CategoryID).GetOr(UnlimitedBudget(t.CategoryID))
		return CheckBudget(b, append(slices.Clip(prior), t))
	})
	return fp.MapResult(checked, func(Budget) (Transaction, error) { return t, nil })
}

// Validate screens t against the ledger l, see ValidatePipeline.
func (l Ledger) Validate(t Transaction) fp.Result[Transaction] {
	return ValidatePipeline(t, l.Accounts, l.Categories, l.Budgets, l.Transactions)
}

// ValidateLedger checks the references of every stored transaction and
// returns one fault per broken reference, in insertion order.
//
// Budgets of unknown categories, the first category cycle found and ids
// repeated within a collection are reported after them.
func ValidateLedger(l Ledger) []error {
	var faults []error
	for _, t := range l.Transactions {
		if err := ValidateTransaction(t, l.Accounts, l.Categories).Error(); err != nil {
			faults = append(faults, err)
		}
	}
	for _, b := range l.Budgets {
		if FindCategory(l.Categories, b.CategoryID).IsNone() {
			faults = append(faults, fmt.Errorf("budget %q: category %q not found", b.ID, b.CategoryID))
		}
	}
	for _, c := range l.Categories {
		if _, err := FlattenForest(l.Categories, c.ID).Unwrap(); err != nil {
			faults = append(faults, err)
			break
		}
	}
	faults = append(faults, duplicates("account", l.Accounts, func(a Account) string { return a.ID })...)
	faults = append(faults, duplicates("category", l.Categories, func(c Category) string { return c.ID })...)
	faults = append(faults, duplicates("transaction", l.Transactions, func(t Transaction) string { return t.ID })...)
	faults = append(faults, duplicates("budget", l.Budgets, func(b Budget) string { return b.ID })...)
	return faults
}

// duplicates returns a DuplicateFault for every id seen more than once in items,
// once per id, in the order of their second occurrence.
func duplicates[T any](kind string, items []T, id func(T) string) []error {
	seen := make(map[string]int, len(items))
	var faults []error
	for _, item := range items {
		key := id(item)
		seen[key]++
		if seen[key] == 2 {
			faults = append(faults, &DuplicateFault{Kind: kind, ID: key})
		}
	}
	return faults
}
