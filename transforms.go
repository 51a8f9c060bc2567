package finance

import (
	"github.com/etnz/finance/date"
	"github.com/etnz/finance/fp"
)

// Screen transforms a collection of transactions before it is reported on,
// typically by dropping some of them.
type Screen func([]Transaction) []Transaction

// Where returns the Screen keeping the transactions matching p.
func Where(p Predicate) Screen {
	return func(transactions []Transaction) []Transaction {
		var kept []Transaction
		for t := range IterMatching(transactions, p) {
			kept = append(kept, t)
		}
		return kept
	}
}

// FilterMonth keeps the transactions dated in month.
func FilterMonth(transactions []Transaction, month date.Range) []Transaction {
	return Where(InRange(month))(transactions)
}

// SumAmounts sums the signed amounts of transactions.
func SumAmounts(transactions []Transaction) int64 {
	var total int64
	for _, t := range transactions {
		total += t.Amount
	}
	return total
}

// SumByCategory sums the signed amounts of the transactions of categoryID.
func SumByCategory(transactions []Transaction, categoryID string) int64 {
	var total int64
	for t := range IterMatching(transactions, ByCategory(categoryID)) {
		total += t.Amount
	}
	return total
}

// AccountBalance is the sum of the amounts of the transactions of accountID.
func AccountBalance(transactions []Transaction, accountID string) int64 {
	var total int64
	for t := range IterMatching(transactions, ByAccount(accountID)) {
		total += t.Amount
	}
	return total
}

// TotalBalance sums AccountBalance over accounts.
func TotalBalance(transactions []Transaction, accounts []Account) int64 {
	var total int64
	for _, a := range accounts {
		total += AccountBalance(transactions, a.ID)
	}
	return total
}

// MonthlyReport applies the screens in order, keeps the transactions of month
// and returns the signed total per category id.
func MonthlyReport(transactions []Transaction, month string, screens ...Screen) (map[string]int64, error) {
	r, err := date.ParseMonth(month)
	if err != nil {
		return nil, err
	}
	stages := make([]func([]Transaction) []Transaction, 0, len(screens)+1)
	for _, s := range screens {
		stages = append(stages, s)
	}
	stages = append(stages, func(ts []Transaction) []Transaction { return FilterMonth(ts, r) })

	report := make(map[string]int64)
	for _, t := range fp.Pipe(transactions, stages...) {
		report[t.CategoryID] += t.Amount
	}
	return report, nil
}

// Aggregator is one step of a category report: it folds transactions into the
// prior figure of a category.
type Aggregator interface {
	Aggregate(transactions []Transaction, categoryID string, prior int64) int64
}

// AggregatorFunc adapts a function to the Aggregator interface.
type AggregatorFunc func(transactions []Transaction, categoryID string, prior int64) int64

func (f AggregatorFunc) Aggregate(transactions []Transaction, categoryID string, prior int64) int64 {
	return f(transactions, categoryID, prior)
}

// SumCategory replaces the prior figure by the signed sum of the category.
type SumCategory struct{}

func (SumCategory) Aggregate(transactions []Transaction, categoryID string, _ int64) int64 {
	return SumByCategory(transactions, categoryID)
}

// Scale multiplies the prior figure by Factor.
type Scale struct{ Factor int64 }

func (s Scale) Aggregate(_ []Transaction, _ string, prior int64) int64 { return prior * s.Factor }

// CategoryReport runs the aggregators in order for categoryID, each one
// receiving the figure produced by the previous one, starting from 0.
func CategoryReport(transactions []Transaction, categoryID string, aggregators ...Aggregator) map[string]int64 {
	var figure int64
	for _, a := range aggregators {
		figure = a.Aggregate(transactions, categoryID, figure)
	}
	return map[string]int64{categoryID: figure}
}
