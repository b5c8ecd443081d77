package domain

import "github.com/shopspring/decimal"

// TransactionType classifies the direction of a transaction.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "Income"
	TransactionTypeExpense TransactionType = "Expense"
)

// SubCategory splits transactions into personal and business spending.
type SubCategory string

const (
	SubCategoryPersonal SubCategory = "Personal"
	SubCategoryBusiness SubCategory = "Business"
)

// TransferProjectTag marks the synthetic transaction recorded for an
// inter-wallet transfer.
const TransferProjectTag = "Internal Transfer"

// Transaction is an immutable record of money moving into or out of
// exactly one wallet. Amount is always a non-negative magnitude; the
// sign is carried by Type. Transactions are only ever appended to a
// document, never edited in place.
type Transaction struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"type"`
	ProjectTag  string          `json:"project_tag"`
	SubCategory SubCategory     `json:"sub_category"`
	WalletID    string          `json:"wallet_id"`
	Notes       string          `json:"notes,omitempty"`
}

// Signed returns the transaction's effect on its wallet's balance:
// +Amount for income, -Amount for expense.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == TransactionTypeIncome {
		return t.Amount
	}
	return t.Amount.Neg()
}

// IsTransfer reports whether the transaction is the synthetic record of
// an inter-wallet transfer.
func (t Transaction) IsTransfer() bool {
	return t.ProjectTag == TransferProjectTag
}
