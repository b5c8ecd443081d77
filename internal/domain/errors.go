package domain

import "errors"

var (
	// Wallet errors
	ErrUnknownWallet = errors.New("wallet not found")
	ErrGoalNotFound  = errors.New("goal not found")

	// Transaction and transfer errors
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrSameWallet        = errors.New("cannot transfer to same wallet")
	ErrInsufficientFunds = errors.New("insufficient funds in source wallet")

	// Snapshot errors
	ErrDecode = errors.New("malformed document snapshot")
)
