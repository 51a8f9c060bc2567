package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/finance/renderer"
)

type treeCmd struct{}

func (*treeCmd) Name() string     { return "tree" }
func (*treeCmd) Synopsis() string { return "display the category tree with rolled up expenses" }
func (*treeCmd) Usage() string {
	return `fin tree

  Displays every category under its parent with the expenses of its whole
  subtree, and its own expenses when they differ.
`
}

func (*treeCmd) SetFlags(*flag.FlagSet) {}

func (*treeCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	tree := renderer.NewTree(l, currency)
	printMarkdown(renderer.RenderTree(tree))
	if tree.Fault != "" {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
