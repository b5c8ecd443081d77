package domain

import "github.com/shopspring/decimal"

// Wallet is a named balance-holding account. Currency and Icon are
// opaque display hints; the ledger never converts between currencies.
type Wallet struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Balance  decimal.Decimal `json:"balance"`
	Icon     string          `json:"icon"`
	Currency string          `json:"currency"`
}

// CanDebit reports whether the wallet holds at least amount.
func (w Wallet) CanDebit(amount decimal.Decimal) bool {
	return w.Balance.GreaterThanOrEqual(amount)
}
