package cmd

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/etnz/finance"
)

// suggest returns up to three candidates close to word, closest first.
func suggest(word string, candidates []string) []string {
	type scored struct {
		candidate string
		distance  int
	}
	limit := max(2, len(word)/3)
	var close []scored
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(strings.ToLower(word), strings.ToLower(c))
		if d <= limit {
			close = append(close, scored{c, d})
		}
	}
	slices.SortStableFunc(close, func(a, b scored) int { return cmp.Compare(a.distance, b.distance) })
	var out []string
	for _, s := range close[:min(3, len(close))] {
		out = append(out, s.candidate)
	}
	return out
}

// explain adds "did you mean" hints to a reference fault.
func explain(err error, l finance.Ledger) error {
	var ref *finance.ReferenceFault
	if !errors.As(err, &ref) {
		return err
	}
	var candidates []string
	switch ref.Kind {
	case "account":
		for _, a := range l.Accounts {
			candidates = append(candidates, a.ID)
		}
	case "category":
		for _, c := range l.Categories {
			candidates = append(candidates, c.ID)
		}
	}
	hints := suggest(ref.ID, candidates)
	if len(hints) == 0 {
		return err
	}
	return fmt.Errorf("%w (did you mean %s?)", err, strings.Join(hints, ", "))
}
