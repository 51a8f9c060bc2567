package finance

import (
	"fmt"

	"github.com/etnz/finance/fp"
)

// CycleFault reports a category reachable from itself through its parents.
type CycleFault struct {
	CategoryID string
}

func (f *CycleFault) Error() string {
	return fmt.Sprintf("category %q is its own ancestor", f.CategoryID)
}

// Forest is the parent/child structure of a set of categories.
//
// Children keep the order in which they appear in the input.
type Forest struct {
	byID     map[string]Category
	children map[string][]string
	roots    []string
}

// NewForest indexes categories by parent.
//
// A category whose parent is unknown is treated as a root.
func NewForest(categories []Category) *Forest {
	f := &Forest{
		byID:     make(map[string]Category, len(categories)),
		children: make(map[string][]string),
	}
	for _, c := range categories {
		f.byID[c.ID] = c
	}
	for _, c := range categories {
		parent, ok := c.ParentID.Get()
		if _, known := f.byID[parent]; ok && known {
			f.children[parent] = append(f.children[parent], c.ID)
			continue
		}
		f.roots = append(f.roots, c.ID)
	}
	return f
}

// Roots returns the categories without a parent, in input order.
func (f *Forest) Roots() []Category {
	roots := make([]Category, 0, len(f.roots))
	for _, id := range f.roots {
		roots = append(roots, f.byID[id])
	}
	return roots
}

// Children returns the direct children ids of id.
func (f *Forest) Children(id string) []string { return f.children[id] }

// walk visits every descendant of id in depth-first pre-order, calling visit
// with the descendant and its depth (1 for direct children).
//
// A descendant already on the current path is a cycle and stops the walk.
func (f *Forest) walk(id string, visit func(c Category, depth int)) error {
	onPath := map[string]bool{id: true}
	var rec func(id string, depth int) error
	rec = func(id string, depth int) error {
		for _, child := range f.children[id] {
			if onPath[child] {
				return &CycleFault{CategoryID: child}
			}
			visit(f.byID[child], depth)
			onPath[child] = true
			if err := rec(child, depth+1); err != nil {
				return err
			}
			delete(onPath, child)
		}
		return nil
	}
	return rec(id, 1)
}

// FlattenForest returns every category below rootID in depth-first
// pre-order, rootID excluded: a child's whole subtree comes before its next sibling.
//
// It fails with a CycleFault instead of looping when parents form a cycle.
func FlattenForest(categories []Category, rootID string) fp.Result[[]Category] {
	var flat []Category
	err := NewForest(categories).walk(rootID, func(c Category, _ int) { flat = append(flat, c) })
	if err != nil {
		return fp.Err[[]Category](err)
	}
	return fp.Ok(flat)
}

// directExpenses sums the expense-positive amounts of each category.
func directExpenses(transactions []Transaction) map[string]int64 {
	direct := make(map[string]int64)
	for _, t := range transactions {
		direct[t.CategoryID] += t.Spent()
	}
	return direct
}

// SumExpensesRecursive returns the expenses of rootID plus, recursively, the
// expenses of every child category. Incomes are ignored.
//
// It fails with a CycleFault when parents form a cycle below rootID.
func SumExpensesRecursive(categories []Category, transactions []Transaction, rootID string) fp.Result[int64] {
	return NewForest(categories).rollup(directExpenses(transactions), rootID)
}

// rollup computes the subtree sum of id with memoization of every visited subtree.
func (f *Forest) rollup(direct map[string]int64, id string) fp.Result[int64] {
	memo := make(map[string]int64)
	onPath := make(map[string]bool)
	var rec func(id string) (int64, error)
	rec = func(id string) (int64, error) {
		if total, ok := memo[id]; ok {
			return total, nil
		}
		if onPath[id] {
			return 0, &CycleFault{CategoryID: id}
		}
		onPath[id] = true
		defer delete(onPath, id)

		total := direct[id]
		for _, child := range f.children[id] {
			sub, err := rec(child)
			if err != nil {
				return 0, err
			}
			total += sub
		}
		memo[id] = total
		return total, nil
	}
	total, err := rec(id)
	return fp.Try(total, err)
}

// CategoryLine is a row of a category breakdown.
type CategoryLine struct {
	Category Category
	Depth    int   // 0 for roots
	Direct   int64 // expenses booked on the category itself
	Rollup   int64 // Direct plus the expenses of every descendant
}

// Breakdown lists every category reachable from a root, each root followed by
// its descendants in depth-first pre-order, with direct and rolled up expenses.
//
// Categories caught in a cycle are not reachable from any root and are
// reported by the returned error.
func Breakdown(categories []Category, transactions []Transaction) ([]CategoryLine, error) {
	f := NewForest(categories)
	direct := directExpenses(transactions)
	var lines []CategoryLine
	line := func(c Category, depth int) error {
		total, err := f.rollup(direct, c.ID).Unwrap()
		if err != nil {
			return err
		}
		lines = append(lines, CategoryLine{Category: c, Depth: depth, Direct: direct[c.ID], Rollup: total})
		return nil
	}
	for _, root := range f.Roots() {
		if err := line(root, 0); err != nil {
			return nil, err
		}
		var err error
		werr := f.walk(root.ID, func(c Category, depth int) {
			if err == nil {
				err = line(c, depth)
			}
		})
		if werr != nil {
			return nil, werr
		}
		if err != nil {
			return nil, err
		}
	}
	if len(lines) < len(categories) {
		for _, c := range categories {
			if !reachable(lines, c.ID) {
				return lines, &CycleFault{CategoryID: c.ID}
			}
		}
	}
	return lines, nil
}

func reachable(lines []CategoryLine, id string) bool {
	for _, l := range lines {
		if l.Category.ID == id {
			return true
		}
	}
	return false
}
