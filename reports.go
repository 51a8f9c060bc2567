package finance

import (
	"github.com/shopspring/decimal"

	"github.com/etnz/finance/date"
)

// AccountLine is the balance of one account.
type AccountLine struct {
	Account Account
	Balance int64 // sum of the account transactions
}

// Balances reports the balance of every account of l, in insertion order.
func Balances(l Ledger) []AccountLine {
	lines := make([]AccountLine, 0, len(l.Accounts))
	for _, a := range l.Accounts {
		lines = append(lines, AccountLine{Account: a, Balance: AccountBalance(l.Transactions, a.ID)})
	}
	return lines
}

// BudgetLine is the status of a budget over one period.
type BudgetLine struct {
	Budget    Budget
	Range     date.Range
	Spent     int64           // expense-positive spend of the category in Range
	Remaining int64           // Limit - Spent, negative when over budget
	Used      decimal.Decimal // Spent as a percentage of Limit
}

// Exceeded reports whether the spend is over the limit.
func (b BudgetLine) Exceeded() bool { return b.Remaining < 0 }

// BudgetStatus reports the spend of b's category during the budget period containing on.
func BudgetStatus(b Budget, transactions []Transaction, on date.Date) BudgetLine {
	r := b.Period.Period().Range(on)
	var spent int64
	for t := range IterMatching(transactions, All(ByCategory(b.CategoryID), InRange(r))) {
		spent += t.Spent()
	}
	used := decimal.Zero
	if b.Limit > 0 {
		used = decimal.NewFromInt(spent).Mul(decimal.NewFromInt(100)).Div(decimal.NewFromInt(b.Limit)).Round(1)
	}
	return BudgetLine{
		Budget:    b,
		Range:     r,
		Spent:     spent,
		Remaining: b.Limit - spent,
		Used:      used,
	}
}

// BudgetStatuses reports every budget of l for the period containing on.
func BudgetStatuses(l Ledger, on date.Date) []BudgetLine {
	lines := make([]BudgetLine, 0, len(l.Budgets))
	for _, b := range l.Budgets {
		lines = append(lines, BudgetStatus(b, l.Transactions, on))
	}
	return lines
}
