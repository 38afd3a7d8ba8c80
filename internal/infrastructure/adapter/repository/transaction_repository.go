package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/dlevina/prediction-billing/internal/domain/entity"
	errs "github.com/dlevina/prediction-billing/internal/domain/error"
	coreport "github.com/dlevina/prediction-billing/internal/domain/port/core"
	"github.com/dlevina/prediction-billing/internal/infrastructure/adapter/model"
)

// TransactionRepository implements the ledger persistence port using GORM
type TransactionRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

// modelToEntity converts a transaction model to an entity
func (r *TransactionRepository) modelToEntity(txnModel *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:            txnModel.ID,
		UserID:        txnModel.UserID,
		TransactionID: txnModel.TransactionID,
		Type:          entity.TransactionType(txnModel.Type),
		AmountInCents: txnModel.AmountInCents,
		ResultBalance: txnModel.ResultBalance,
		CreatedAt:     txnModel.CreatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *TransactionRepository) handleDatabaseError(operation string, err error, transactionID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrTransactionNotFound
	}

	if isDuplicateKeyError(err) {
		return errs.ErrDuplicateTransaction
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"transaction_id": transactionID,
		"error":          err.Error(),
	})

	if isConnectionError(err) {
		return errs.ErrDatabaseConnection
	}

	return err
}

// Create persists a new ledger entry, failing on duplicate transaction ID
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	txnModel := &model.Transaction{
		UserID:        transaction.UserID,
		TransactionID: transaction.TransactionID,
		Type:          string(transaction.Type),
		AmountInCents: transaction.AmountInCents,
		ResultBalance: transaction.ResultBalance,
		CreatedAt:     transaction.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(txnModel).Error; err != nil {
		return r.handleDatabaseError("creating transaction", err, transaction.TransactionID)
	}

	transaction.ID = txnModel.ID
	return nil
}

// GetByTransactionID retrieves a ledger entry by its unique string ID
func (r *TransactionRepository) GetByTransactionID(ctx context.Context, transactionID string) (*entity.Transaction, error) {
	var txnModel model.Transaction
	if err := r.db.WithContext(ctx).Where("transaction_id = ?", transactionID).First(&txnModel).Error; err != nil {
		return nil, r.handleDatabaseError("getting transaction", err, transactionID)
	}

	return r.modelToEntity(&txnModel), nil
}

// ListByUser returns the user's ledger entries, newest first
func (r *TransactionRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.Transaction, error) {
	var txnModels []model.Transaction
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&txnModels).Error; err != nil {
		return nil, r.handleDatabaseError("listing transactions", err, "")
	}

	transactions := make([]*entity.Transaction, 0, len(txnModels))
	for i := range txnModels {
		transactions = append(transactions, r.modelToEntity(&txnModels[i]))
	}
	return transactions, nil
}
