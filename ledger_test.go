package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedger_WithTransactionKeepsOriginal(t *testing.T) {
	l := Ledger{Transactions: []Transaction{tx("t1", "a1", "food", -100)}}

	n := l.WithTransaction(tx("t2", "a1", "food", -50))

	assert.Len(t, l.Transactions, 1, "original ledger unchanged")
	require.Len(t, n.Transactions, 2)
	assert.Equal(t, "t2", n.LastTransaction().GetOr(Transaction{}).ID)

	n.Transactions[0].Amount = 0
	assert.Equal(t, int64(-100), l.Transactions[0].Amount, "no shared backing array")
}

func TestLedger_ReplaceAndDelete(t *testing.T) {
	l := Ledger{Transactions: []Transaction{
		tx("t1", "a1", "food", -100),
		tx("t2", "a1", "rent", -900),
	}}

	edited := tx("t1", "a1", "food", -120)
	n, ok := l.ReplaceTransaction(edited)
	require.True(t, ok)
	assert.Equal(t, int64(-120), n.Transactions[0].Amount)
	assert.Equal(t, int64(-100), l.Transactions[0].Amount)

	_, ok = l.ReplaceTransaction(tx("t9", "a1", "food", 1))
	assert.False(t, ok)

	n, ok = l.WithoutTransaction("t1")
	require.True(t, ok)
	assert.Equal(t, []Transaction{tx("t2", "a1", "rent", -900)}, n.Transactions)
	assert.Len(t, l.Transactions, 2)

	_, ok = l.WithoutTransaction("t9")
	assert.False(t, ok)
}

func TestLedger_WithBudgetLimit(t *testing.T) {
	l := Ledger{Budgets: []Budget{
		{ID: "b1", CategoryID: "food", Limit: 100, Period: Month},
		{ID: "b2", CategoryID: "rent", Limit: 900, Period: Month},
	}}

	n, ok := l.WithBudgetLimit("b1", 250)
	require.True(t, ok)
	assert.Equal(t, int64(250), n.Budgets[0].Limit)
	assert.Equal(t, int64(900), n.Budgets[1].Limit)
	assert.Equal(t, int64(100), l.Budgets[0].Limit)

	_, ok = l.WithBudgetLimit("nope", 1)
	assert.False(t, ok)
}

func TestLookups(t *testing.T) {
	accounts := []Account{{ID: "a1", Name: "Cash"}}
	categories := []Category{root("food")}

	assert.Equal(t, "Cash", FindAccount(accounts, "a1").GetOr(Account{}).Name)
	assert.True(t, FindAccount(accounts, "a2").IsNone(), "a miss is None, not an error")
	assert.True(t, FindCategory(categories, "rent").IsNone())
	assert.Equal(t, "food", CategoryName(categories, "food"))
	assert.Equal(t, "rent", CategoryName(categories, "rent"), "unknown id falls back to the id")
	assert.True(t, Ledger{}.LastTransaction().IsNone())
}
