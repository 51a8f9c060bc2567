package finance

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/gval"
	"github.com/PaesslerAG/jsonpath"
)

// queryLanguage is JSONPath with gval's full expression language in filters,
// so that comparisons and arithmetic like `@.amount < -5000` are available.
var queryLanguage = gval.NewLanguage(gval.Full(), jsonpath.Language())

// DecodeLedger reads a ledger document: a json object with the top-level
// arrays "accounts", "categories", "transactions", "budgets" and, optionally, "users".
//
// Missing arrays decode as empty collections and unknown fields are ignored.
func DecodeLedger(r io.Reader) (Ledger, error) {
	var l Ledger
	if err := json.NewDecoder(r).Decode(&l); err != nil {
		if err == io.EOF {
			return Ledger{}, nil
		}
		return Ledger{}, fmt.Errorf("decoding ledger: %w", err)
	}
	return l, nil
}

// EncodeLedger writes l as an indented ledger document.
func EncodeLedger(w io.Writer, l Ledger) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	// collections are written as [] rather than null
	doc := l.clone()
	if doc.Accounts == nil {
		doc.Accounts = []Account{}
	}
	if doc.Categories == nil {
		doc.Categories = []Category{}
	}
	if doc.Transactions == nil {
		doc.Transactions = []Transaction{}
	}
	if doc.Budgets == nil {
		doc.Budgets = []Budget{}
	}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding ledger: %w", err)
	}
	return nil
}

// Query evaluates a JSONPath expression, like "$.transactions[?(@.amount < 0)].id",
// against a raw ledger document.
func Query(r io.Reader, path string) (any, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	v, err := queryLanguage.Evaluate(path, doc)
	if err != nil {
		return nil, fmt.Errorf("evaluating %q: %w", path, err)
	}
	return v, nil
}
