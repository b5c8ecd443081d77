package domain

import "github.com/shopspring/decimal"

// Goal is a savings target with a deadline. Goal progress is tracked
// manually; it is not derived from transactions.
type Goal struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	Deadline      string          `json:"deadline"`
}
