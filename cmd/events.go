package cmd

import (
	"github.com/etnz/finance"
)

// newLedgerBus wires the reducers run when a transaction is added.
func newLedgerBus() *finance.Bus {
	bus := finance.NewBus(finance.WithBusLogger(logger()))
	bus.Subscribe(finance.TransactionAdded, finance.UpdateBalance)
	bus.Subscribe(finance.TransactionAdded, finance.TrackCategorySpend)
	bus.Subscribe(finance.BudgetAlert, finance.CreateAlert)
	return bus
}

// publishAdded publishes the addition of t to the ledger l, where t is not
// yet recorded. It returns the new account balance and category total keyed
// by their ids, and the alerts of the budgets t pushes over their limit.
func publishAdded(l finance.Ledger, t finance.Transaction) (finance.State, []string) {
	payload := map[string]any{
		"id":          t.ID,
		"account_id":  t.AccountID,
		"category_id": t.CategoryID,
		"amount":      t.Amount,
	}

	bus := newLedgerBus()
	prior := finance.State{
		t.AccountID:  finance.AccountBalance(l.Transactions, t.AccountID),
		t.CategoryID: finance.SumByCategory(l.Transactions, t.CategoryID),
	}
	state := finance.Merge(prior, bus.PublishWith(finance.TransactionAdded, payload, prior)...)

	// budgets only see the spend of their current period
	spent := l.Transactions
	if b, ok := finance.FindBudget(l.Budgets, t.CategoryID).Get(); ok {
		spent = finance.Where(finance.InRange(b.Period.Period().Range(t.Date)))(l.Transactions)
	}
	watch := finance.NewBus(finance.WithBusLogger(logger()))
	watch.Subscribe(finance.TransactionAdded, finance.BudgetWatch(l.Budgets))
	watched := finance.Merge(nil, watch.PublishWith(finance.TransactionAdded, payload, finance.SpendState(spent))...)

	alerts, _ := watched["alerts"].([]string)
	for _, msg := range alerts {
		deltas := bus.PublishWith(finance.BudgetAlert, map[string]any{"category_id": t.CategoryID, "message": msg}, state)
		state = finance.Merge(state, deltas...)
	}
	if len(alerts) > 0 {
		logger().WithField("alerts", state["alerts"]).Info("budget alert published")
	}
	return state, alerts
}
