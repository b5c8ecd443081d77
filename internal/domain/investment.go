package domain

import "github.com/shopspring/decimal"

// InvestmentType classifies an investment holding.
type InvestmentType string

const (
	InvestmentTypeCrypto InvestmentType = "Crypto"
	InvestmentTypeGold   InvestmentType = "Gold"
	InvestmentTypeStock  InvestmentType = "Stock"
	InvestmentTypeOther  InvestmentType = "Other"
)

// Investment is a held asset with a quantity and a valuation. It does
// not participate in wallet balance accounting.
type Investment struct {
	ID        string          `json:"id"`
	Type      InvestmentType  `json:"type"`
	Platform  string          `json:"platform"`
	AssetName string          `json:"assetName"`
	Quantity  decimal.Decimal `json:"quantity"`
	ValuePKR  decimal.Decimal `json:"valuePKR"`
	Date      string          `json:"date"`
}
