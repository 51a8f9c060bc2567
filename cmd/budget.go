package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/google/uuid"

	"github.com/etnz/finance"
	"github.com/etnz/finance/renderer"
)

type budgetCmd struct {
	date     string
	set      string
	category string
	limit    int64
	period   string
}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "display or change budgets" }
func (*budgetCmd) Usage() string {
	return `fin budget [-d <date>]
fin budget -set <budget id> -limit <limit>
fin budget -c <category> -limit <limit> [-p week|month]

  Without -set or -c, displays the spend of every budget during its period
  containing the date. -set changes the limit of a budget, -c creates a
  budget for a category.
`
}

func (c *budgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the status (defaults to today)")
	f.StringVar(&c.set, "set", "", "Id of the budget to change")
	f.StringVar(&c.category, "c", "", "Category of the budget to create")
	f.Int64Var(&c.limit, "limit", 0, "New limit")
	f.StringVar(&c.period, "p", string(finance.Month), "Period of the budget to create (week, month)")
}

func (c *budgetCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	switch {
	case c.set != "":
		next, ok := l.WithBudgetLimit(c.set, c.limit)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: budget %q not found\n", c.set)
			return subcommands.ExitFailure
		}
		return c.save(next, fmt.Sprintf("Budget %s limit set to %s\n", c.set, renderer.M(c.limit, currency)))

	case c.category != "":
		if finance.FindCategory(l.Categories, c.category).IsNone() {
			fmt.Fprintf(os.Stderr, "Error: %v\n", explain(&finance.ReferenceFault{Kind: "category", ID: c.category}, l))
			return subcommands.ExitFailure
		}
		if b, ok := finance.FindBudget(l.Budgets, c.category).Get(); ok {
			fmt.Fprintf(os.Stderr, "Error: category %q already has budget %q, use -set\n", c.category, b.ID)
			return subcommands.ExitFailure
		}
		period := finance.BudgetPeriod(c.period)
		if period != finance.Week && period != finance.Month {
			fmt.Fprintf(os.Stderr, "Error: unknown period %q\n", c.period)
			return subcommands.ExitUsageError
		}
		b := finance.Budget{ID: uuid.NewString(), CategoryID: c.category, Limit: c.limit, Period: period}
		return c.save(l.WithBudget(b), fmt.Sprintf("Budget %s created for %s\n", b.ID, finance.CategoryName(l.Categories, c.category)))
	}

	on, err := parseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	printMarkdown(renderer.RenderBudgets(renderer.NewBudgets(l, on, currency)))
	return subcommands.ExitSuccess
}

func (c *budgetCmd) save(l finance.Ledger, msg string) subcommands.ExitStatus {
	if err := EncodeLedger(l); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not save ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Print(msg)
	return subcommands.ExitSuccess
}
