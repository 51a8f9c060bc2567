package finance

import (
	"iter"
	"slices"
)

// IterMatching returns a lazy sequence of the transactions matching p.
//
// Nothing is evaluated until the sequence is ranged over, and elements are
// produced one at a time in insertion order.
func IterMatching(transactions []Transaction, p Predicate) iter.Seq[Transaction] {
	return Filter(slices.Values(transactions), p)
}

// Filter lazily restricts seq to the transactions matching p.
func Filter(seq iter.Seq[Transaction], p Predicate) iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for t := range seq {
			if p(t) && !yield(t) {
				return
			}
		}
	}
}

// Take stops seq after n elements.
func Take(seq iter.Seq[Transaction], n int) iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for t := range seq {
			if !yield(t) {
				return
			}
			i++
			if i >= n {
				return
			}
		}
	}
}

// CategoryTotal is the accumulated absolute amount of a category.
type CategoryTotal struct {
	CategoryID string
	Total      int64
}

// RankStream consumes seq once and, for every transaction of a known
// category, yields the category id with its running absolute total so far.
//
// Transactions of categories absent from categories are skipped. The output is
// a running tally, not a ranking: use TopKFinal for the final top categories.
func RankStream(seq iter.Seq[Transaction], categories []Category) iter.Seq2[string, int64] {
	return func(yield func(string, int64) bool) {
		known := categorySet(categories)
		totals := make(map[string]int64)
		for t := range seq {
			if _, ok := known[t.CategoryID]; !ok {
				continue
			}
			totals[t.CategoryID] += abs(t.Amount)
			if !yield(t.CategoryID, totals[t.CategoryID]) {
				return
			}
		}
	}
}

// TopKFinal drains seq and returns at most k categories with the highest
// absolute totals, highest first. Equal totals keep the order in which the
// categories were first seen.
//
// Only categories present in categories are considered.
func TopKFinal(seq iter.Seq[Transaction], categories []Category, k int) []CategoryTotal {
	if k <= 0 {
		return nil
	}
	var ranking []CategoryTotal
	index := make(map[string]int)
	for id, total := range RankStream(seq, categories) {
		i, ok := index[id]
		if !ok {
			i = len(ranking)
			index[id] = i
			ranking = append(ranking, CategoryTotal{CategoryID: id})
		}
		ranking[i].Total = total
	}
	slices.SortStableFunc(ranking, func(a, b CategoryTotal) int {
		switch {
		case a.Total > b.Total:
			return -1
		case a.Total < b.Total:
			return 1
		default:
			return 0
		}
	})
	if len(ranking) > k {
		ranking = ranking[:k]
	}
	return ranking
}

func categorySet(categories []Category) map[string]struct{} {
	set := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		set[c.ID] = struct{}{}
	}
	return set
}
