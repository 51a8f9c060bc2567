package finance

import "github.com/etnz/finance/date"

// Predicate selects transactions.
type Predicate func(Transaction) bool

// ByCategory matches transactions of exactly that category.
func ByCategory(categoryID string) Predicate {
	return func(t Transaction) bool { return t.CategoryID == categoryID }
}

// ByAccount matches transactions of that account.
func ByAccount(accountID string) Predicate {
	return func(t Transaction) bool { return t.AccountID == accountID }
}

// ByDateRange matches transactions dated between start and end, both included.
//
// Malformed bounds are reported here, never while the predicate runs.
func ByDateRange(start, end string) (Predicate, error) {
	r, err := date.ParseRange(start, end)
	if err != nil {
		return nil, err
	}
	return InRange(r), nil
}

// InRange matches transactions dated within r.
func InRange(r date.Range) Predicate {
	return func(t Transaction) bool { return r.Contains(t.Date) }
}

// ByAmountRange matches transactions whose absolute amount is within [lo, hi].
func ByAmountRange(lo, hi int64) Predicate {
	return func(t Transaction) bool {
		a := abs(t.Amount)
		return lo <= a && a <= hi
	}
}

// IsIncome matches positive amounts.
func IsIncome(t Transaction) bool { return t.Amount > 0 }

// IsExpense matches negative amounts.
func IsExpense(t Transaction) bool { return t.Amount < 0 }

// LargerThan matches transactions whose absolute amount is at least n.
func LargerThan(n int64) Predicate {
	return func(t Transaction) bool { return abs(t.Amount) >= n }
}

// All matches when every predicate matches. All() matches everything.
func All(ps ...Predicate) Predicate {
	return func(t Transaction) bool {
		for _, p := range ps {
			if !p(t) {
				return false
			}
		}
		return true
	}
}

// Any matches when at least one predicate matches. Any() matches nothing.
func Any(ps ...Predicate) Predicate {
	return func(t Transaction) bool {
		for _, p := range ps {
			if p(t) {
				return true
			}
		}
		return false
	}
}

// Not inverts p.
func Not(p Predicate) Predicate {
	return func(t Transaction) bool { return !p(t) }
}
