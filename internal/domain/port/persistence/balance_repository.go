package persistence

import (
	"context"

	"github.com/dlevina/prediction-billing/internal/domain/entity"
)

// BalanceRepository defines the persistence operations for user balances
type BalanceRepository interface {
	// Get retrieves the balance for the given user
	Get(ctx context.Context, userID uint64) (*entity.Balance, error)

	// Create persists a new balance row for the given user
	Create(ctx context.Context, balance *entity.Balance) error

	// AddAmount unconditionally adds amountInCents (which may be negative)
	// to the user's balance in a single atomic update
	AddAmount(ctx context.Context, userID uint64, amountInCents int64) error

	// SubtractIfSufficient atomically subtracts amountInCents from the
	// user's balance only if the resulting balance would stay non-negative.
	// Returns ErrInsufficientFunds when the condition does not hold.
	SubtractIfSufficient(ctx context.Context, userID uint64, amountInCents int64) error
}
