package finance

import (
	"fmt"

	"github.com/spf13/cast"
)

// payloadAmount reads an integer amount from a payload or a state value,
// whatever numeric type a decoder produced. Missing or malformed values count as 0.
func payloadAmount(m map[string]any, key string) int64 {
	n, err := cast.ToInt64E(m[key])
	if err != nil {
		return 0
	}
	return n
}

// accumulate adds the payload amount to the prior value of key.
func accumulate(e Event, prior State, key string) Delta {
	id := cast.ToString(e.Payload[key])
	return Delta{id: payloadAmount(prior, id) + payloadAmount(e.Payload, "amount")}
}

// UpdateBalance accumulates the event amount onto the prior balance of the
// event account_id.
func UpdateBalance(e Event, prior State) Delta { return accumulate(e, prior, "account_id") }

// TrackCategorySpend accumulates the event amount onto the prior total of the
// event category_id.
func TrackCategorySpend(e Event, prior State) Delta { return accumulate(e, prior, "category_id") }

// CreateAlert appends a message describing the event to the prior alerts.
func CreateAlert(e Event, prior State) Delta {
	alerts, _ := prior["alerts"].([]string)
	next := make([]string, len(alerts), len(alerts)+1)
	copy(next, alerts)
	next = append(next, fmt.Sprintf("%s triggered for %v", e.Name, e.Payload))
	return Delta{"alerts": next}
}

// BudgetWatch returns a reducer that emits an alert when an expense pushes
// the spend of a budgeted category over its limit. Incomes never alert.
//
// The prior state holds the expense-positive spend per category id, see
// SpendState. Nothing is emitted for categories without a budget.
func BudgetWatch(budgets []Budget) Reducer {
	return func(e Event, prior State) Delta {
		id := cast.ToString(e.Payload["category_id"])
		b, ok := FindBudget(budgets, id).Get()
		if !ok {
			return Delta{}
		}
		amount := payloadAmount(e.Payload, "amount")
		if amount >= 0 {
			return Delta{}
		}
		spent := payloadAmount(prior, id) - amount
		if spent <= b.Limit {
			return Delta{}
		}
		return Delta{"alerts": []string{fmt.Sprintf("budget %q of category %q exceeded: %d > %d", b.ID, id, spent, b.Limit)}}
	}
}

// SpendState returns the expense-positive spend of every category over
// transactions, in the shape BudgetWatch expects as prior state.
func SpendState(transactions []Transaction) State {
	s := State{}
	for id, spent := range directExpenses(transactions) {
		s[id] = spent
	}
	return s
}
