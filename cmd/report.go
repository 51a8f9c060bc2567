package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/etnz/finance/renderer"
)

type reportCmd struct {
	month     string
	html      string
	noBudgets bool
	noLarge   bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display a monthly report" }
func (*reportCmd) Usage() string {
	return `fin report [-m <month>] [-html <file>] [-no-budgets] [-no-large]

  Displays the incomes and expenses of a month per category, the top
  spending categories, the budgets and the large transactions.
  With -html, the report is written as an HTML page instead.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", "Month of the report, 2006-01 (defaults to the current month)")
	f.StringVar(&c.html, "html", "", "Write the report as HTML to this file")
	f.BoolVar(&c.noBudgets, "no-budgets", false, "Skip the budgets section")
	f.BoolVar(&c.noLarge, "no-large", false, "Skip the large transactions section")
}

func (c *reportCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.month == "" {
		c.month = today().Layout("2006-01")
	}
	l, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	monthly, err := renderer.NewMonthly(l, c.month, cfg.Report.Large, currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	md := renderer.RenderMonthly(monthly, renderer.MonthlyRenderOptions{SkipBudgets: c.noBudgets, SkipLarge: c.noLarge})

	if c.html == "" {
		printMarkdown(md)
		return subcommands.ExitSuccess
	}
	page, err := toHTML(monthly.Title(), md)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(c.html, page, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Report written to %s\n", c.html)
	return subcommands.ExitSuccess
}

// toHTML converts markdown into a standalone HTML page.
func toHTML(title, md string) ([]byte, error) {
	var body bytes.Buffer
	gm := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := gm.Convert([]byte(md), &body); err != nil {
		return nil, fmt.Errorf("converting report to html: %w", err)
	}
	var page bytes.Buffer
	fmt.Fprintf(&page, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n", title)
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.Bytes(), nil
}
