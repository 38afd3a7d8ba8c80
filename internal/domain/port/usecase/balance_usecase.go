package usecase

import (
	"context"

	"github.com/dlevina/prediction-billing/internal/domain/entity"
)

// BalanceResponse represents the standardized balance response
type BalanceResponse struct {
	UserID  uint64 `json:"userId"`
	Balance string `json:"balance"` // Formatted with 2 decimal places
}

// BalanceUseCase defines methods for the credit ledger
type BalanceUseCase interface {
	// EnsureBalance returns the user's balance, creating a zero row if
	// none exists yet
	EnsureBalance(ctx context.Context, userID uint64) (*entity.Balance, error)

	// GetBalance retrieves the user's balance with properly formatted response
	GetBalance(ctx context.Context, userID uint64) (*BalanceResponse, error)

	// Deposit credits a strictly positive amount to the user's balance
	// and records a deposit ledger entry
	Deposit(ctx context.Context, userID uint64, amount string) (*entity.Transaction, error)

	// Withdraw debits the user's balance if and only if it covers the
	// amount, recording a cost_prediction ledger entry. Returns
	// ErrInsufficientFunds otherwise.
	Withdraw(ctx context.Context, userID uint64, amount string) (*entity.Transaction, error)

	// AdminAdjust applies a signed correction to the user's balance,
	// recording an admin_adjustment ledger entry. Negative amounts are
	// allowed and may drive the balance below what Withdraw would permit,
	// but never below zero.
	AdminAdjust(ctx context.Context, userID uint64, amount string) (*entity.Transaction, error)

	// GetTransactionHistory returns the user's ledger entries, newest first
	GetTransactionHistory(ctx context.Context, userID uint64) ([]*entity.Transaction, error)
}
