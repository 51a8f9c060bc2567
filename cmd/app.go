// Package cmd implements the fin command line over a JSON ledger document.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"github.com/etnz/finance"
	"github.com/etnz/finance/config"
	"github.com/etnz/finance/date"
	"github.com/etnz/finance/logging"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	cfg        config.Config
	ledgerFile string
	currency   string
	verbose    bool
	log        *logrus.Entry
)

// Setup declares the global flags on f, with defaults read from c.
func Setup(f *flag.FlagSet, c config.Config) {
	cfg = c
	f.StringVar(&ledgerFile, "ledger", c.Ledger.File, "Path to the ledger document (JSON)")
	f.StringVar(&currency, "currency", c.Ledger.Currency, "Currency code used to display amounts")
	f.BoolVar(&verbose, "v", false, "Log debug traces to stderr")
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")
	c.Register(&topicCmd{}, "")

	c.Register(&addCmd{}, "transactions")
	c.Register(&editCmd{}, "transactions")
	c.Register(&deleteCmd{}, "transactions")
	c.Register(&listCmd{}, "transactions")

	c.Register(&balanceCmd{}, "reports")
	c.Register(&budgetCmd{}, "reports")
	c.Register(&treeCmd{}, "reports")
	c.Register(&rollupCmd{}, "reports")
	c.Register(&topCmd{}, "reports")
	c.Register(&forecastCmd{}, "reports")
	c.Register(&reportCmd{}, "reports")

	c.Register(&validateCmd{}, "ledger")
	c.Register(&fmtCmd{}, "ledger")
	c.Register(&queryCmd{}, "ledger")
}

// logger returns the logger configured by the config file and the -v flag.
func logger() *logrus.Entry {
	if log != nil {
		return log
	}
	level := cfg.Log.Level
	if level == "" {
		level = "warn"
	}
	if verbose {
		level = "debug"
	}
	l, err := logging.Setup(level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using default logger\n", err)
		l = logrus.StandardLogger()
	}
	log = logrus.NewEntry(l).WithField("ledger", ledgerFile)
	return log
}

// DecodeLedger reads the ledger document. A missing document is an empty ledger.
func DecodeLedger() (finance.Ledger, error) {
	f, err := os.Open(ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		logger().Warn("ledger does not exist, starting from an empty ledger")
		return finance.Ledger{}, nil
	}
	if err != nil {
		return finance.Ledger{}, err
	}
	defer f.Close()
	l, err := finance.DecodeLedger(f)
	if err != nil {
		return finance.Ledger{}, fmt.Errorf("%s: %w", ledgerFile, err)
	}
	logger().WithFields(logrus.Fields{
		"accounts":     len(l.Accounts),
		"categories":   len(l.Categories),
		"transactions": len(l.Transactions),
		"budgets":      len(l.Budgets),
	}).Debug("DecodeLedger")
	return l, nil
}

// EncodeLedger replaces the ledger document with l.
//
// The document is written to a temporary file first and renamed over the
// previous one, so that a failed write never truncates the ledger.
func EncodeLedger(l finance.Ledger) error {
	tmp, err := os.CreateTemp(filepath.Dir(ledgerFile), ".ledger-*.json")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := finance.EncodeLedger(tmp, l); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), ledgerFile)
}

// today is the reference date of commands. FIN_TESTING_TODAY overrides it
// so that documentation examples are reproducible.
func today() date.Date {
	if s := os.Getenv("FIN_TESTING_TODAY"); s != "" {
		return date.MustParse(s)
	}
	return date.Today()
}

// parseDate parses a date flag, empty meaning today.
func parseDate(s string) (date.Date, error) {
	if s == "" {
		return today(), nil
	}
	return date.Parse(s)
}
