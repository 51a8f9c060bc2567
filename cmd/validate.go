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

type validateCmd struct{}

func (*validateCmd) Name() string     { return "validate" }
func (*validateCmd) Synopsis() string { return "check the references of the ledger" }
func (*validateCmd) Usage() string {
	return `fin validate

  Reports transactions referencing unknown accounts or categories, budgets
  of unknown categories, and categories that are their own ancestor.
  Exits with a failure status when a problem is found.
`
}

func (*validateCmd) SetFlags(*flag.FlagSet) {}

func (*validateCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	faults := finance.ValidateLedger(l)
	printMarkdown(renderer.RenderFaults(renderer.NewFaults(faults)))
	if len(faults) > 0 {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
