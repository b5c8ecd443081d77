package domain

import "github.com/shopspring/decimal"

// Seed returns the default document used when no persisted state exists
// or the persisted snapshot fails to decode. The content is a fixed
// example dataset, not a structural contract.
func Seed() Document {
	return Document{
		Wallets: []Wallet{
			{ID: "w1", Name: "HBL Current", Balance: decimal.NewFromInt(250000), Icon: "landmark", Currency: "PKR"},
			{ID: "w2", Name: "Payoneer (USD)", Balance: decimal.NewFromInt(1500), Icon: "briefcase", Currency: "USD"},
			{ID: "w3", Name: "Binance (USDT)", Balance: decimal.NewFromInt(500), Icon: "credit-card", Currency: "USD"},
			{ID: "w4", Name: "Physical Cash", Balance: decimal.NewFromInt(45000), Icon: "banknote", Currency: "PKR"},
			{ID: "w5", Name: "Meezan Savings", Balance: decimal.NewFromInt(500000), Icon: "shield-check", Currency: "PKR"},
		},
		Transactions: []Transaction{
			{ID: "t1", Date: "2024-05-20", Description: "Upwork Payout", Amount: decimal.NewFromInt(800), Type: TransactionTypeIncome, ProjectTag: "App Dev", SubCategory: SubCategoryBusiness, WalletID: "w2"},
			{ID: "t2", Date: "2024-05-19", Description: "Office Rent", Amount: decimal.NewFromInt(35000), Type: TransactionTypeExpense, ProjectTag: "Infrastructure", SubCategory: SubCategoryBusiness, WalletID: "w1"},
			{ID: "t3", Date: "2024-05-18", Description: "Groceries", Amount: decimal.NewFromInt(12500), Type: TransactionTypeExpense, ProjectTag: "Personal", SubCategory: SubCategoryPersonal, WalletID: "w4"},
			{ID: "t4", Date: "2024-05-17", Description: "Client Retainer", Amount: decimal.NewFromInt(250), Type: TransactionTypeIncome, ProjectTag: "Branding", SubCategory: SubCategoryBusiness, WalletID: "w2"},
			{ID: "t5", Date: "2024-05-16", Description: "Electricity", Amount: decimal.NewFromInt(18000), Type: TransactionTypeExpense, ProjectTag: "Utilities", SubCategory: SubCategoryPersonal, WalletID: "w1"},
		},
		Projects: []Project{
			{ID: "p1", StoreName: "Digital Vertex Solutions", Notes: "Full stack development for SaaS product.", Comments: "Milestone 1 completed.", Date: "2024-04-12", ServicesRequired: "Next.js, Tailwind, Node"},
			{ID: "p2", StoreName: "Luxe E-com Portal", Notes: "Shopify theme customization and app integration.", Comments: "Ongoing support.", Date: "2024-05-01", ServicesRequired: "Liquid, Shopify API"},
		},
		Investments: []Investment{
			{ID: "i1", Type: InvestmentTypeCrypto, Platform: "Binance", AssetName: "BTC", Quantity: decimal.RequireFromString("0.045"), ValuePKR: decimal.NewFromInt(850000), Date: "2024-01-10"},
			{ID: "i2", Type: InvestmentTypeCrypto, Platform: "MetaMask", AssetName: "ETH", Quantity: decimal.RequireFromString("1.2"), ValuePKR: decimal.NewFromInt(920000), Date: "2024-02-15"},
			{ID: "i3", Type: InvestmentTypeGold, Platform: "Bank Locker", AssetName: "24k Gold", Quantity: decimal.NewFromInt(20), ValuePKR: decimal.NewFromInt(580000), Date: "2023-11-20"},
		},
		Goals: []Goal{
			{ID: "g1", Name: "Emergency Fund", TargetAmount: decimal.NewFromInt(1500000), CurrentAmount: decimal.NewFromInt(500000), Deadline: "2024-12-31"},
			{ID: "g2", Name: "MacBook M3 Pro", TargetAmount: decimal.NewFromInt(650000), CurrentAmount: decimal.NewFromInt(210000), Deadline: "2024-08-31"},
		},
		Budget: decimal.NewFromInt(150000),
	}
}
