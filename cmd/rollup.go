package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/finance"
	"github.com/etnz/finance/renderer"
)

type rollupCmd struct {
	list bool
}

func (*rollupCmd) Name() string     { return "rollup" }
func (*rollupCmd) Synopsis() string { return "total the expenses of a category and its subcategories" }
func (*rollupCmd) Usage() string {
	return `fin rollup [-list] <category>...

  Prints the expenses of each category including every subcategory,
  recursively. Incomes are ignored.
`
}

func (c *rollupCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "list", false, "Also list the subcategories included")
}

func (c *rollupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one category id is required")
		return subcommands.ExitUsageError
	}
	l, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	for _, id := range f.Args() {
		if finance.FindCategory(l.Categories, id).IsNone() {
			fmt.Fprintf(os.Stderr, "Error: %v\n", explain(&finance.ReferenceFault{Kind: "category", ID: id}, l))
			return subcommands.ExitFailure
		}
		total, err := finance.SumExpensesRecursive(l.Categories, l.Transactions, id).Unwrap()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("%s: %s\n", finance.CategoryName(l.Categories, id), renderer.M(total, currency))
		if !c.list {
			continue
		}
		// a cycle would have failed the sum above
		subs := finance.FlattenForest(l.Categories, id).GetOr(nil)
		for _, sub := range subs {
			fmt.Printf("  %s\n", sub.Name)
		}
	}
	return subcommands.ExitSuccess
}
