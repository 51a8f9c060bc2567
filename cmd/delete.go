package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteCmd struct{}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "remove transactions by id" }
func (*deleteCmd) Usage() string {
	return `fin delete <id>...

  Removes the transactions with the given ids from the ledger.
`
}

func (*deleteCmd) SetFlags(*flag.FlagSet) {}

func (*deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one transaction id is required")
		return subcommands.ExitUsageError
	}
	l, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, id := range f.Args() {
		next, ok := l.WithoutTransaction(id)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: transaction %q not found\n", id)
			return subcommands.ExitFailure
		}
		l = next
	}
	if err := EncodeLedger(l); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not save ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted %d transaction(s)\n", f.NArg())
	return subcommands.ExitSuccess
}
