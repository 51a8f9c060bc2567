package renderer

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is an amount in the minor unit of a currency: 1250 USD is $12.50.
type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// M returns amount in currency.
func M(amount int64, currency string) Money { return Money{Amount: amount, Currency: currency} }

// String formats m with the symbol, separators and minor digits of its currency.
// An unknown currency falls back to "<amount> <code>".
func (m Money) String() string {
	cur := money.GetCurrency(m.Currency)
	if cur == nil {
		return fmt.Sprintf("%d %s", m.Amount, m.Currency)
	}
	return cur.Formatter().Format(m.Amount)
}

// SignedString is String with an explicit sign, "-" for zero.
func (m Money) SignedString() string {
	switch {
	case m.Amount == 0:
		return "-"
	case m.Amount > 0:
		return "+" + m.String()
	default:
		return m.String()
	}
}

func (m Money) IsZero() bool     { return m.Amount == 0 }
func (m Money) IsNegative() bool { return m.Amount < 0 }
func (m Money) Neg() Money       { return Money{Amount: -m.Amount, Currency: m.Currency} }

// Percent is a ratio already expressed in percent.
type Percent struct {
	decimal.Decimal
}

// String formats p with one decimal.
func (p Percent) String() string { return p.StringFixed(1) + "%" }
