package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
)

// printMarkdown prints md on stdout, rendered for the terminal.
//
// With the "auto" style, output that is not a terminal gets the raw markdown,
// and so does the "raw" style.
func printMarkdown(md string) {
	style := cfg.Report.Style
	if style == "" || style == "auto" {
		if !isatty.IsTerminal(os.Stdout.Fd()) {
			style = "raw"
		}
	}
	if style == "raw" {
		fmt.Print(md)
		return
	}

	opts := []glamour.TermRendererOption{glamour.WithWordWrap(100)}
	if style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		logger().WithError(err).Warn("cannot render markdown")
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		logger().WithError(err).Warn("cannot render markdown")
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
