// Command fin manages a personal finance ledger stored as a JSON document.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/google/subcommands"

	"github.com/etnz/finance/cmd"
	"github.com/etnz/finance/config"
)

func main() {
	c, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(int(subcommands.ExitUsageError))
	}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Setup(flag.CommandLine, c)
	cmd.Register(commander)

	// exits when invoked by the shell to complete the command line
	cmd.Completion(commander).Complete("fin")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
