package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/dualstream/internal/domain"
	"github.com/iho/dualstream/internal/ledger"
)

// RecordTransactionRequest represents a request to record a transaction.
type RecordTransactionRequest struct {
	Date        string          `json:"date,omitempty"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	ProjectTag  string          `json:"project_tag"`
	SubCategory string          `json:"sub_category"`
	WalletID    string          `json:"wallet_id"`
	Notes       string          `json:"notes,omitempty"`
}

// ToLedgerInput converts to ledger input.
func (r *RecordTransactionRequest) ToLedgerInput() ledger.RecordTransactionInput {
	return ledger.RecordTransactionInput{
		Date:        r.Date,
		Description: r.Description,
		Amount:      r.Amount,
		Type:        domain.TransactionType(r.Type),
		ProjectTag:  r.ProjectTag,
		SubCategory: domain.SubCategory(r.SubCategory),
		WalletID:    r.WalletID,
		Notes:       r.Notes,
	}
}

// TransferRequest represents a request to move funds between wallets.
type TransferRequest struct {
	FromWalletID string          `json:"from_wallet_id"`
	ToWalletID   string          `json:"to_wallet_id"`
	Amount       decimal.Decimal `json:"amount"`
}

// AddWalletRequest represents a request to create a wallet.
type AddWalletRequest struct {
	Name     string          `json:"name"`
	Balance  decimal.Decimal `json:"balance"`
	Icon     string          `json:"icon"`
	Currency string          `json:"currency"`
}

// ToLedgerInput converts to ledger input.
func (r *AddWalletRequest) ToLedgerInput() ledger.AddWalletInput {
	return ledger.AddWalletInput{
		Name:     r.Name,
		Balance:  r.Balance,
		Icon:     r.Icon,
		Currency: r.Currency,
	}
}

// UpdateWalletRequest represents a partial wallet update. Absent fields
// are left unchanged; a present balance is a manual override.
type UpdateWalletRequest struct {
	Name     *string          `json:"name,omitempty"`
	Balance  *decimal.Decimal `json:"balance,omitempty"`
	Icon     *string          `json:"icon,omitempty"`
	Currency *string          `json:"currency,omitempty"`
}

// ToLedgerInput converts to ledger input.
func (r *UpdateWalletRequest) ToLedgerInput() ledger.UpdateWalletInput {
	return ledger.UpdateWalletInput{
		Name:     r.Name,
		Balance:  r.Balance,
		Icon:     r.Icon,
		Currency: r.Currency,
	}
}

// AddProjectRequest represents a request to create a project.
type AddProjectRequest struct {
	StoreName        string `json:"storeName"`
	Notes            string `json:"notes"`
	Comments         string `json:"comments"`
	Date             string `json:"date"`
	ServicesRequired string `json:"servicesRequired"`
}

// ToLedgerInput converts to ledger input.
func (r *AddProjectRequest) ToLedgerInput() ledger.AddProjectInput {
	return ledger.AddProjectInput{
		StoreName:        r.StoreName,
		Notes:            r.Notes,
		Comments:         r.Comments,
		Date:             r.Date,
		ServicesRequired: r.ServicesRequired,
	}
}

// AddInvestmentRequest represents a request to create an investment.
type AddInvestmentRequest struct {
	Type      string          `json:"type"`
	Platform  string          `json:"platform"`
	AssetName string          `json:"assetName"`
	Quantity  decimal.Decimal `json:"quantity"`
	ValuePKR  decimal.Decimal `json:"valuePKR"`
	Date      string          `json:"date"`
}

// ToLedgerInput converts to ledger input.
func (r *AddInvestmentRequest) ToLedgerInput() ledger.AddInvestmentInput {
	return ledger.AddInvestmentInput{
		Type:      domain.InvestmentType(r.Type),
		Platform:  r.Platform,
		AssetName: r.AssetName,
		Quantity:  r.Quantity,
		ValuePKR:  r.ValuePKR,
		Date:      r.Date,
	}
}

// AddGoalRequest represents a request to create a savings goal.
type AddGoalRequest struct {
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	Deadline      string          `json:"deadline"`
}

// ToLedgerInput converts to ledger input.
func (r *AddGoalRequest) ToLedgerInput() ledger.AddGoalInput {
	return ledger.AddGoalInput{
		Name:          r.Name,
		TargetAmount:  r.TargetAmount,
		CurrentAmount: r.CurrentAmount,
		Deadline:      r.Deadline,
	}
}

// UpdateGoalRequest represents a partial goal update.
type UpdateGoalRequest struct {
	Name          *string          `json:"name,omitempty"`
	TargetAmount  *decimal.Decimal `json:"target_amount,omitempty"`
	CurrentAmount *decimal.Decimal `json:"current_amount,omitempty"`
	Deadline      *string          `json:"deadline,omitempty"`
}

// ToLedgerInput converts to ledger input.
func (r *UpdateGoalRequest) ToLedgerInput() ledger.UpdateGoalInput {
	return ledger.UpdateGoalInput{
		Name:          r.Name,
		TargetAmount:  r.TargetAmount,
		CurrentAmount: r.CurrentAmount,
		Deadline:      r.Deadline,
	}
}

// SetBudgetRequest represents a request to replace the budget scalar.
type SetBudgetRequest struct {
	Budget decimal.Decimal `json:"budget"`
}
