// Package renderer turns ledger reports into markdown using text/template partials.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var embedded embed.FS

// templates holds the report templates, one file per template.
var templates = mustSub(embedded, "templates")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

// RenderBalances renders the balance of every account.
func RenderBalances(b *Balances) string { return renderTemplate("balances", "balances.md", nil, b) }

// RenderJournal renders a list of transactions.
func RenderJournal(j *Journal) string { return renderTemplate("journal", "journal.md", nil, j) }

// RenderBudgets renders the status of every budget.
func RenderBudgets(b *Budgets) string { return renderTemplate("budgets", "budgets.md", nil, b) }

// RenderTree renders the category forest.
func RenderTree(t *Tree) string { return renderTemplate("tree", "tree.md", nil, t) }

// RenderRanking renders a category ranking.
func RenderRanking(r *Ranking) string { return renderTemplate("ranking", "ranking.md", nil, r) }

// RenderForecasts renders the forecast of every category.
func RenderForecasts(f *Forecasts) string {
	return renderTemplate("forecasts", "forecasts.md", nil, f)
}

// RenderFaults renders validation problems.
func RenderFaults(f *Faults) string { return renderTemplate("faults", "faults.md", nil, f) }

// MonthlyRenderOptions holds configuration for rendering a monthly report.
type MonthlyRenderOptions struct {
	SkipBudgets bool // Do not render the budgets section.
	SkipLarge   bool // Do not render the large transactions section.
}

// RenderMonthly renders the Monthly struct to a markdown string.
func RenderMonthly(m *Monthly, opts MonthlyRenderOptions) string {
	partials := map[string]string{
		"monthly_summary":    "monthly_summary.md",
		"monthly_categories": "monthly_categories.md",
		"monthly_top":        "monthly_top.md",
		"monthly_budgets":    "monthly_budgets.md",
		"monthly_large":      "monthly_large.md",
	}
	// An empty file name results in an empty template.
	if opts.SkipBudgets {
		partials["monthly_budgets"] = ""
	}
	if opts.SkipLarge {
		partials["monthly_large"] = ""
	}
	return renderTemplate("monthly", "monthly.md", partials, m)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		if file != "" {
			content, err = fs.ReadFile(templates, file)
			if err != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, err)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
