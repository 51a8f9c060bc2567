package finance

import (
	"github.com/etnz/finance/date"
	"github.com/etnz/finance/fp"
)

// tx builds a transaction on 2025-01-15 for tests.
func tx(id, account, category string, amount int64) Transaction {
	return Transaction{
		ID:         id,
		AccountID:  account,
		CategoryID: category,
		Amount:     amount,
		Date:       date.New(2025, 1, 15),
	}
}

// txOn is tx with an explicit date.
func txOn(id, account, category string, amount int64, on string) Transaction {
	t := tx(id, account, category, amount)
	t.Date = date.MustParse(on)
	return t
}

func root(id string) Category {
	return Category{ID: id, Name: id, Kind: Expense}
}

func child(id, parent string) Category {
	return Category{ID: id, Name: id, ParentID: fp.Some(parent), Kind: Expense}
}

func ids(categories []Category) []string {
	out := make([]string, 0, len(categories))
	for _, c := range categories {
		out = append(out, c.ID)
	}
	return out
}
