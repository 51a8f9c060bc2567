package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/finance"
	"github.com/etnz/finance/date"
	"github.com/etnz/finance/renderer"
)

type topCmd struct {
	k      int
	month  string
	stream bool
}

func (*topCmd) Name() string     { return "top" }
func (*topCmd) Synopsis() string { return "rank categories by spending" }
func (*topCmd) Usage() string {
	return `fin top [-k <count>] [-m <month>] [-stream]

  Ranks the categories by the absolute total of their expenses.
  With -stream, prints the running total of each category as transactions
  are read instead of the final ranking.
`
}

func (c *topCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.k, "k", 3, "Number of categories to rank")
	f.StringVar(&c.month, "m", "", "Only expenses of this month (2006-01)")
	f.BoolVar(&c.stream, "stream", false, "Print running totals in reading order")
}

func (c *topCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	p := finance.Predicate(finance.IsExpense)
	title := fmt.Sprintf("Top %d Spending", c.k)
	if c.month != "" {
		r, err := date.ParseMonth(c.month)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		p = finance.All(p, finance.InRange(r))
		title += " " + r.Identifier()
	}
	seq := finance.IterMatching(l.Transactions, p)

	if c.stream {
		for id, total := range finance.RankStream(seq, l.Categories) {
			fmt.Printf("%s\t%s\n", finance.CategoryName(l.Categories, id), renderer.M(total, currency))
		}
		return subcommands.ExitSuccess
	}
	top := finance.TopKFinal(seq, l.Categories, c.k)
	printMarkdown(renderer.RenderRanking(renderer.NewRanking(title, l, top, currency)))
	return subcommands.ExitSuccess
}
