package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/google/uuid"
	"github.com/spf13/cast"

	"github.com/etnz/finance"
	"github.com/etnz/finance/fp"
	"github.com/etnz/finance/renderer"
)

type addCmd struct {
	id       string
	account  string
	category string
	amount   int64
	date     string
	note     string
	force    bool
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "validate and record a transaction" }
func (*addCmd) Usage() string {
	return `fin add -a <account> -c <category> -amount <amount> [-d <date>] [-note <text>] [-id <id>] [-force]

  Records a transaction after checking that its account and category exist
  and that the budget of its category is not exceeded.
  A positive amount is an income, a negative amount an expense.

Usage Examples:
$ fin add -a cash -c food -amount -1200 -note "lunch"
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Transaction id. Defaults to a new random id.")
	f.StringVar(&c.account, "a", "", "Account id")
	f.StringVar(&c.category, "c", "", "Category id")
	f.Int64Var(&c.amount, "amount", 0, "Signed amount: positive for an income, negative for an expense")
	f.StringVar(&c.date, "d", "", "Transaction date (defaults to today)")
	f.StringVar(&c.note, "note", "", "Optional note")
	f.BoolVar(&c.force, "force", false, "Record the transaction even if its budget is exceeded")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" || c.category == "" || c.amount == 0 {
		fmt.Fprintln(os.Stderr, "Error: -a, -c and a non zero -amount are required")
		return subcommands.ExitUsageError
	}
	on, err := parseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	l, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	t := finance.Transaction{
		ID:         c.id,
		AccountID:  c.account,
		CategoryID: c.category,
		Amount:     c.amount,
		Date:       on,
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if c.note != "" {
		t.Note = fp.Some(c.note)
	}
	if finance.FindTransaction(l.Transactions, t.ID).IsSome() {
		fmt.Fprintf(os.Stderr, "Error: transaction %q already exists\n", t.ID)
		return subcommands.ExitFailure
	}

	if err := l.Validate(t).Error(); err != nil {
		var exceeded *finance.BudgetExceededFault
		if !c.force || !errors.As(err, &exceeded) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", explain(err, l))
			return subcommands.ExitFailure
		}
		logger().WithError(err).Warn("recording anyway")
	}

	state, alerts := publishAdded(l, t)
	if err := EncodeLedger(l.WithTransaction(t)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not save ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	account := finance.FindAccount(l.Accounts, t.AccountID).GetOr(finance.Account{Name: t.AccountID})
	fmt.Printf("Added transaction %s on %s: %s %s\n", t.ID, t.Date, finance.CategoryName(l.Categories, t.CategoryID), renderer.M(t.Amount, currency).SignedString())
	fmt.Printf("%s balance: %s\n", account.Name, renderer.M(cast.ToInt64(state[t.AccountID]), currency))
	for _, alert := range alerts {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", alert)
	}
	return subcommands.ExitSuccess
}
