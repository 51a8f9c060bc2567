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

type listCmd struct {
	account  string
	category string
	from     string
	to       string
	min      int64
	max      int64
	income   bool
	expense  bool
	limit    int
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list transactions matching filters" }
func (*listCmd) Usage() string {
	return `fin list [-a <account>] [-c <category>] [-from <date> -to <date>] [-min <n>] [-max <n>] [-income|-expense] [-n <count>]

  Lists the transactions matching every given filter, in insertion order.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Only transactions of this account")
	f.StringVar(&c.category, "c", "", "Only transactions of this category")
	f.StringVar(&c.from, "from", "", "Only transactions on or after this date (requires -to)")
	f.StringVar(&c.to, "to", "", "Only transactions on or before this date (requires -from)")
	f.Int64Var(&c.min, "min", 0, "Only transactions whose absolute amount is at least this")
	f.Int64Var(&c.max, "max", 0, "Only transactions whose absolute amount is at most this (0 for no maximum)")
	f.BoolVar(&c.income, "income", false, "Only incomes")
	f.BoolVar(&c.expense, "expense", false, "Only expenses")
	f.IntVar(&c.limit, "n", 0, "Show at most this many transactions (0 for all)")
}

// predicate combines the filters given on the command line.
func (c *listCmd) predicate() (finance.Predicate, error) {
	var ps []finance.Predicate
	if c.account != "" {
		ps = append(ps, finance.ByAccount(c.account))
	}
	if c.category != "" {
		ps = append(ps, finance.ByCategory(c.category))
	}
	if c.from != "" || c.to != "" {
		p, err := finance.ByDateRange(c.from, c.to)
		if err != nil {
			return nil, err
		}
		ps = append(ps, p)
	}
	if c.max > 0 {
		ps = append(ps, finance.ByAmountRange(c.min, c.max))
	} else if c.min > 0 {
		ps = append(ps, finance.LargerThan(c.min))
	}
	switch {
	case c.income && c.expense:
		ps = append(ps, finance.Any(finance.IsIncome, finance.IsExpense))
	case c.income:
		ps = append(ps, finance.IsIncome)
	case c.expense:
		ps = append(ps, finance.IsExpense)
	}
	return finance.All(ps...), nil
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := c.predicate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	l, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	seq := finance.IterMatching(l.Transactions, p)
	if c.limit > 0 {
		seq = finance.Take(seq, c.limit)
	}
	var matching []finance.Transaction
	for t := range seq {
		matching = append(matching, t)
	}
	printMarkdown(renderer.RenderJournal(renderer.NewJournal("Transactions", l, matching, currency)))
	return subcommands.ExitSuccess
}
