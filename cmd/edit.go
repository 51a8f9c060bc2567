package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/finance"
	"github.com/etnz/finance/fp"
	"github.com/etnz/finance/renderer"
)

type editCmd struct {
	account  string
	category string
	amount   int64
	date     string
	note     string
	force    bool
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "change a recorded transaction" }
func (*editCmd) Usage() string {
	return `fin edit <id> [-a <account>] [-c <category>] [-amount <amount>] [-d <date>] [-note <text>] [-force]

  Changes the fields given on the command line of the transaction <id>, keeping
  its position in the ledger. The edited transaction is checked like a new one,
  against the ledger without its previous version. An empty -note removes the note.

Usage Examples:
$ fin edit t3 -amount -1500 -c groceries
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "New account id")
	f.StringVar(&c.category, "c", "", "New category id")
	f.Int64Var(&c.amount, "amount", 0, "New signed amount")
	f.StringVar(&c.date, "d", "", "New date")
	f.StringVar(&c.note, "note", "", "New note, empty to remove it")
	f.BoolVar(&c.force, "force", false, "Record the change even if its budget is exceeded")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one transaction id is required")
		return subcommands.ExitUsageError
	}
	set := map[string]bool{}
	f.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	l, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	id := f.Arg(0)
	t, ok := finance.FindTransaction(l.Transactions, id).Get()
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: transaction %q not found\n", id)
		return subcommands.ExitFailure
	}

	if set["a"] {
		t.AccountID = c.account
	}
	if set["c"] {
		t.CategoryID = c.category
	}
	if set["amount"] {
		if c.amount == 0 {
			fmt.Fprintln(os.Stderr, "Error: -amount must not be zero")
			return subcommands.ExitUsageError
		}
		t.Amount = c.amount
	}
	if set["d"] {
		on, err := parseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		t.Date = on
	}
	if set["note"] {
		t.Note = fp.None[string]()
		if c.note != "" {
			t.Note = fp.Some(c.note)
		}
	}

	others, _ := l.WithoutTransaction(id)
	if err := others.Validate(t).Error(); err != nil {
		var exceeded *finance.BudgetExceededFault
		if !c.force || !errors.As(err, &exceeded) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", explain(err, l))
			return subcommands.ExitFailure
		}
		logger().WithError(err).Warn("recording anyway")
	}

	next, _ := l.ReplaceTransaction(t)
	if err := EncodeLedger(next); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not save ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Edited transaction %s on %s: %s %s\n", t.ID, t.Date, finance.CategoryName(l.Categories, t.CategoryID), renderer.M(t.Amount, currency).SignedString())
	return subcommands.ExitSuccess
}
