package cmd

import (
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/etnz/finance"
	"github.com/etnz/finance/docs"
)

// Completion describes the commands of c for shell completion.
//
// Flags naming accounts or categories are completed with the ids found in the
// default ledger document, when it can be read.
func Completion(c *subcommands.Commander) *complete.Command {
	l := completionLedger()
	accounts, categories := predict.Set{}, predict.Set{}
	for _, a := range l.Accounts {
		accounts = append(accounts, a.ID)
	}
	for _, cat := range l.Categories {
		categories = append(categories, cat.ID)
	}
	topics, _ := docs.GetAllTopics()

	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors(flag.CommandLine, nil),
	}
	root.Flags["ledger"] = predict.Files("*.json")

	c.VisitCommands(func(_ *subcommands.CommandGroup, sc subcommands.Command) {
		fs := flag.NewFlagSet(sc.Name(), flag.ContinueOnError)
		sc.SetFlags(fs)
		cmd := &complete.Command{Flags: flagPredictors(fs, map[string]complete.Predictor{
			"a":    accounts,
			"c":    categories,
			"html": predict.Files("*.html"),
		})}
		switch sc.Name() {
		case "topic":
			cmd.Args = predict.Set(topics)
		case "rollup", "forecast":
			cmd.Args = categories
		case "help":
			cmd.Args = predict.Set(commandNames(c))
		}
		root.Sub[sc.Name()] = cmd
	})
	return root
}

// flagPredictors predicts the flags of fs. Boolean flags take no value.
func flagPredictors(fs *flag.FlagSet, known map[string]complete.Predictor) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	fs.VisitAll(func(f *flag.Flag) {
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[f.Name] = predict.Nothing
			return
		}
		if p, ok := known[f.Name]; ok {
			flags[f.Name] = p
			return
		}
		flags[f.Name] = predict.Something
	})
	return flags
}

func commandNames(c *subcommands.Commander) []string {
	var names []string
	c.VisitCommands(func(_ *subcommands.CommandGroup, sc subcommands.Command) {
		names = append(names, sc.Name())
	})
	return names
}

// completionLedger reads the ledger quietly, completion must never print.
func completionLedger() finance.Ledger {
	f, err := os.Open(ledgerFile)
	if err != nil {
		return finance.Ledger{}
	}
	defer f.Close()
	l, err := finance.DecodeLedger(f)
	if err != nil {
		return finance.Ledger{}
	}
	return l
}
