package finance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/etnz/finance/date"
)

func TestBudgetStatus(t *testing.T) {
	transactions := []Transaction{
		txOn("t1", "a1", "food", -150, "2025-01-03"),
		txOn("t2", "a1", "food", 40, "2025-01-10"), // refunds do not lower the spend
		txOn("t3", "a1", "food", -100, "2025-02-01"),
		txOn("t4", "a1", "rent", -900, "2025-01-05"),
		txOn("t5", "a1", "food", -30, "2025-01-14"),
	}
	on := date.New(2025, 1, 15)

	testCases := []struct {
		name          string
		budget        Budget
		wantRange     string
		wantSpent     int64
		wantRemaining int64
		wantUsed      string
		wantExceeded  bool
	}{
		{
			name:          "monthly under",
			budget:        Budget{ID: "b1", CategoryID: "food", Limit: 200, Period: Month},
			wantRange:     "2025-01",
			wantSpent:     180,
			wantRemaining: 20,
			wantUsed:      "90",
		},
		{
			name:          "monthly over",
			budget:        Budget{ID: "b1", CategoryID: "food", Limit: 120, Period: Month},
			wantRange:     "2025-01",
			wantSpent:     180,
			wantRemaining: -60,
			wantUsed:      "150",
			wantExceeded:  true,
		},
		{
			name:          "weekly",
			budget:        Budget{ID: "b1", CategoryID: "food", Limit: 90, Period: Week},
			wantRange:     "2025-W03",
			wantSpent:     30,
			wantRemaining: 60,
			wantUsed:      "33.3",
		},
		{
			name:          "zero limit",
			budget:        Budget{ID: "b1", CategoryID: "food", Limit: 0, Period: Month},
			wantRange:     "2025-01",
			wantSpent:     180,
			wantRemaining: -180,
			wantUsed:      "0",
			wantExceeded:  true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			line := BudgetStatus(tc.budget, transactions, on)
			assert.Equal(t, tc.wantRange, line.Range.Identifier())
			assert.Equal(t, tc.wantSpent, line.Spent)
			assert.Equal(t, tc.wantRemaining, line.Remaining)
			assert.True(t, decimal.RequireFromString(tc.wantUsed).Equal(line.Used), "used %s", line.Used)
			assert.Equal(t, tc.wantExceeded, line.Exceeded())
		})
	}
}

func TestBalances(t *testing.T) {
	l := Ledger{
		Accounts: []Account{{ID: "a1", Name: "Cash"}, {ID: "a2", Name: "Card"}},
		Transactions: []Transaction{
			tx("t1", "a1", "food", -100),
			tx("t2", "a1", "salary", 200),
		},
	}
	lines := Balances(l)
	assert.Equal(t, []AccountLine{
		{Account: l.Accounts[0], Balance: 100},
		{Account: l.Accounts[1], Balance: 0},
	}, lines)
}

func TestBudgetStatuses(t *testing.T) {
	l := Ledger{
		Budgets: []Budget{
			{ID: "b1", CategoryID: "food", Limit: 100, Period: Month},
			{ID: "b2", CategoryID: "rent", Limit: 1000, Period: Month},
		},
		Transactions: []Transaction{tx("t1", "a1", "food", -100)},
	}
	lines := BudgetStatuses(l, date.New(2025, 1, 20))
	if assert.Len(t, lines, 2) {
		assert.Equal(t, "b1", lines[0].Budget.ID)
		assert.Equal(t, int64(100), lines[0].Spent)
		assert.False(t, lines[0].Exceeded())
		assert.Equal(t, int64(0), lines[1].Spent)
	}
}
