package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"github.com/etnz/finance"
	"github.com/etnz/finance/renderer"
)

type forecastCmd struct {
	period int
}

func (*forecastCmd) Name() string     { return "forecast" }
func (*forecastCmd) Synopsis() string { return "estimate the next expense of categories" }
func (*forecastCmd) Usage() string {
	return `fin forecast [-p <count>] [<category>...]

  Estimates the next expense of each category as the mean of its last
  expenses. Without arguments, every expense category with expenses is
  forecast.
`
}

func (c *forecastCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.period, "p", 0, "Number of past expenses to average (defaults to the forecast.period setting)")
}

func (c *forecastCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.period == 0 {
		c.period = cfg.Forecast.Period
	}
	l, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	forecaster := finance.NewForecaster(cfg.Forecast.CacheSize, logger())
	defer func() {
		stats := forecaster.Stats()
		logger().WithFields(logrus.Fields{"hits": stats.Hits, "misses": stats.Misses}).Debug("forecast cache")
	}()

	if f.NArg() == 0 {
		printMarkdown(renderer.RenderForecasts(renderer.NewForecasts(l, forecaster, c.period, currency)))
		return subcommands.ExitSuccess
	}

	snap := finance.NewSnapshot(l.Transactions)
	for _, id := range f.Args() {
		if finance.FindCategory(l.Categories, id).IsNone() {
			fmt.Fprintf(os.Stderr, "Error: %v\n", explain(&finance.ReferenceFault{Kind: "category", ID: id}, l))
			return subcommands.ExitFailure
		}
		value := forecaster.Forecast(id, snap, c.period)
		fmt.Printf("%s: %s\n", finance.CategoryName(l.Categories, id), renderer.M(value, currency))
	}
	return subcommands.ExitSuccess
}
