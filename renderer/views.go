package renderer

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/finance"
	"github.com/etnz/finance/date"
)

// Balances lists the balance of every account.
type Balances struct {
	Accounts []AccountRow `json:"accounts"`
	Total    Money        `json:"total"`
}

// AccountRow is one account of Balances.
type AccountRow struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Balance   Money  `json:"balance"`   // sum of the account transactions
	Reference Money  `json:"reference"` // balance recorded on the account
}

// NewBalances computes the balance of every account of l.
func NewBalances(l finance.Ledger, currency string) *Balances {
	b := &Balances{Total: M(0, currency)}
	for _, line := range finance.Balances(l) {
		b.Accounts = append(b.Accounts, AccountRow{
			ID:        line.Account.ID,
			Name:      line.Account.Name,
			Balance:   M(line.Balance, currency),
			Reference: M(line.Account.Balance, currency),
		})
		b.Total.Amount += line.Balance
	}
	return b
}

// Journal lists transactions.
type Journal struct {
	Title string           `json:"title"`
	Rows  []TransactionRow `json:"rows"`
	Total Money            `json:"total"`
}

// TransactionRow is one transaction with its references resolved to names.
type TransactionRow struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Account  string `json:"account"`
	Category string `json:"category"`
	Amount   Money  `json:"amount"`
	Note     string `json:"note"`
}

func newTransactionRow(l finance.Ledger, t finance.Transaction, currency string) TransactionRow {
	account := t.AccountID
	if a, ok := finance.FindAccount(l.Accounts, t.AccountID).Get(); ok {
		account = a.Name
	}
	return TransactionRow{
		ID:       t.ID,
		Date:     t.Date.String(),
		Account:  account,
		Category: finance.CategoryName(l.Categories, t.CategoryID),
		Amount:   M(t.Amount, currency),
		Note:     t.Note.GetOr(""),
	}
}

// NewJournal lists transactions in their given order.
func NewJournal(title string, l finance.Ledger, transactions []finance.Transaction, currency string) *Journal {
	j := &Journal{Title: title, Total: M(0, currency)}
	for _, t := range transactions {
		j.Rows = append(j.Rows, newTransactionRow(l, t, currency))
		j.Total.Amount += t.Amount
	}
	return j
}

// Budgets is the status of every budget on a date.
type Budgets struct {
	On   string      `json:"on"`
	Rows []BudgetRow `json:"rows"`
}

// BudgetRow is the status of one budget.
type BudgetRow struct {
	ID        string  `json:"id"`
	Category  string  `json:"category"`
	Period    string  `json:"period"`
	Limit     Money   `json:"limit"`
	Spent     Money   `json:"spent"`
	Remaining Money   `json:"remaining"`
	Used      Percent `json:"used"`
	Exceeded  bool    `json:"exceeded"`
}

func newBudgetRow(l finance.Ledger, line finance.BudgetLine, currency string) BudgetRow {
	return BudgetRow{
		ID:        line.Budget.ID,
		Category:  finance.CategoryName(l.Categories, line.Budget.CategoryID),
		Period:    line.Range.Identifier(),
		Limit:     M(line.Budget.Limit, currency),
		Spent:     M(line.Spent, currency),
		Remaining: M(line.Remaining, currency),
		Used:      Percent{line.Used},
		Exceeded:  line.Exceeded(),
	}
}

// NewBudgets reports every budget of l for its period containing on.
func NewBudgets(l finance.Ledger, on date.Date, currency string) *Budgets {
	b := &Budgets{On: on.String()}
	for _, line := range finance.BudgetStatuses(l, on) {
		b.Rows = append(b.Rows, newBudgetRow(l, line, currency))
	}
	return b
}

// Tree is the category forest with direct and rolled up expenses.
type Tree struct {
	Rows  []TreeRow `json:"rows"`
	Fault string    `json:"fault,omitempty"` // set when some categories form a cycle
}

// TreeRow is one category of the Tree.
type TreeRow struct {
	Indent string `json:"indent"`
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Direct Money  `json:"direct"`
	Rollup Money  `json:"rollup"`
}

// NewTree computes the category breakdown of l. Categories caught in a
// cycle are left out and reported in Fault.
func NewTree(l finance.Ledger, currency string) *Tree {
	lines, err := finance.Breakdown(l.Categories, l.Transactions)
	t := &Tree{}
	if err != nil {
		t.Fault = err.Error()
	}
	for _, line := range lines {
		t.Rows = append(t.Rows, TreeRow{
			Indent: strings.Repeat("  ", line.Depth),
			Name:   line.Category.Name,
			Kind:   string(line.Category.Kind),
			Direct: M(line.Direct, currency),
			Rollup: M(line.Rollup, currency),
		})
	}
	return t
}

// Ranking lists categories by the magnitude of their total.
type Ranking struct {
	Title string    `json:"title"`
	Rows  []RankRow `json:"rows"`
}

// RankRow is one category of a Ranking.
type RankRow struct {
	Rank     int    `json:"rank"`
	Category string `json:"category"`
	Total    Money  `json:"total"`
}

// NewRanking names the categories of totals.
func NewRanking(title string, l finance.Ledger, totals []finance.CategoryTotal, currency string) *Ranking {
	r := &Ranking{Title: title}
	for i, ct := range totals {
		r.Rows = append(r.Rows, RankRow{
			Rank:     i + 1,
			Category: finance.CategoryName(l.Categories, ct.CategoryID),
			Total:    M(ct.Total, currency),
		})
	}
	return r
}

// Forecasts is the next expense estimate of categories.
type Forecasts struct {
	Period int           `json:"period"`
	Rows   []ForecastRow `json:"rows"`
}

// ForecastRow is the estimate of one category.
type ForecastRow struct {
	Category string `json:"category"`
	Forecast Money  `json:"forecast"`
}

// NewForecasts estimates the next expense of every expense category of l
// that has expenses, in category order.
func NewForecasts(l finance.Ledger, f *finance.Forecaster, period int, currency string) *Forecasts {
	snap := finance.NewSnapshot(l.Transactions)
	fc := &Forecasts{Period: period}
	for _, c := range l.Categories {
		if c.Kind == finance.Income {
			continue
		}
		value := f.Forecast(c.ID, snap, period)
		if value == 0 {
			continue
		}
		fc.Rows = append(fc.Rows, ForecastRow{Category: c.Name, Forecast: M(value, currency)})
	}
	return fc
}

// Faults lists the problems found in a ledger.
type Faults struct {
	Messages []string `json:"messages"`
}

// NewFaults renders errs as messages.
func NewFaults(errs []error) *Faults {
	f := &Faults{}
	for _, err := range errs {
		f.Messages = append(f.Messages, err.Error())
	}
	return f
}

// Monthly is the report of one calendar month.
type Monthly struct {
	Month      string           `json:"month"`
	Income     Money            `json:"income"`
	Expenses   Money            `json:"expenses"`
	Net        Money            `json:"net"`
	Categories []CategoryRow    `json:"categories"`
	Top        []RankRow        `json:"top"`
	Budgets    []BudgetRow      `json:"budgets"`
	Large      []TransactionRow `json:"large"`
}

// CategoryRow is the signed total of one category over the month.
type CategoryRow struct {
	Category string `json:"category"`
	Total    Money  `json:"total"`
}

// NewMonthly reports the month ("2025-01") of l. Transactions whose
// magnitude is at least large are listed individually.
func NewMonthly(l finance.Ledger, month string, large int64, currency string) (*Monthly, error) {
	totals, err := finance.MonthlyReport(l.Transactions, month)
	if err != nil {
		return nil, err
	}
	r, err := date.ParseMonth(month)
	if err != nil {
		return nil, err
	}
	inMonth := finance.FilterMonth(l.Transactions, r)

	m := &Monthly{
		Month:    r.Identifier(),
		Income:   M(finance.SumAmounts(finance.Where(finance.IsIncome)(inMonth)), currency),
		Expenses: M(finance.SumAmounts(finance.Where(finance.IsExpense)(inMonth)), currency),
		Net:      M(finance.SumAmounts(inMonth), currency),
	}

	for id, total := range totals {
		m.Categories = append(m.Categories, CategoryRow{Category: finance.CategoryName(l.Categories, id), Total: M(total, currency)})
	}
	slices.SortFunc(m.Categories, func(a, b CategoryRow) int { return cmp.Compare(a.Category, b.Category) })

	expenses := finance.Where(finance.IsExpense)(inMonth)
	m.Top = NewRanking("", l, finance.TopKFinal(slices.Values(expenses), l.Categories, 3), currency).Rows

	for _, line := range finance.BudgetStatuses(l, r.To) {
		m.Budgets = append(m.Budgets, newBudgetRow(l, line, currency))
	}

	if large > 0 {
		for _, t := range finance.Where(finance.LargerThan(large))(inMonth) {
			m.Large = append(m.Large, newTransactionRow(l, t, currency))
		}
	}
	return m, nil
}

// Title returns the report heading.
func (m *Monthly) Title() string { return fmt.Sprintf("Monthly Report %s", m.Month) }
