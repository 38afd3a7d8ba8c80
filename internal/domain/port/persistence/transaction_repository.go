package persistence

import (
	"context"

	"github.com/dlevina/prediction-billing/internal/domain/entity"
)

// TransactionRepository defines the persistence operations for ledger entries
type TransactionRepository interface {
	// Create persists a new ledger entry, failing on duplicate transaction ID
	Create(ctx context.Context, transaction *entity.Transaction) error

	// GetByTransactionID retrieves a ledger entry by its unique string ID
	GetByTransactionID(ctx context.Context, transactionID string) (*entity.Transaction, error)

	// ListByUser returns the user's ledger entries, newest first
	ListByUser(ctx context.Context, userID uint64) ([]*entity.Transaction, error)
}
