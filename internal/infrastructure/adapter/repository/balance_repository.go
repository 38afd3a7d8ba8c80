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

// BalanceRepository implements the balance persistence port using GORM
type BalanceRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewBalanceRepository creates a new BalanceRepository instance
func NewBalanceRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *BalanceRepository {
	return &BalanceRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// modelToEntity converts a balance model to an entity
func (r *BalanceRepository) modelToEntity(balanceModel *model.Balance) *entity.Balance {
	return &entity.Balance{
		UserID:        balanceModel.UserID,
		AmountInCents: balanceModel.AmountInCents,
		CreatedAt:     balanceModel.CreatedAt,
		UpdatedAt:     balanceModel.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *BalanceRepository) handleDatabaseError(operation string, err error, userID uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrBalanceNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})

	if isDuplicateKeyError(err) {
		// The balance row already exists for this user
		return err
	}
	if isConnectionError(err) {
		return errs.ErrDatabaseConnection
	}

	return err
}

// Get retrieves the balance for the given user
func (r *BalanceRepository) Get(ctx context.Context, userID uint64) (*entity.Balance, error) {
	var balanceModel model.Balance
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&balanceModel).Error; err != nil {
		return nil, r.handleDatabaseError("getting balance", err, userID)
	}

	return r.modelToEntity(&balanceModel), nil
}

// Create persists a new balance row for the given user
func (r *BalanceRepository) Create(ctx context.Context, balance *entity.Balance) error {
	balanceModel := &model.Balance{
		UserID:        balance.UserID,
		AmountInCents: balance.AmountInCents,
		CreatedAt:     balance.CreatedAt,
		UpdatedAt:     balance.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(balanceModel).Error; err != nil {
		return r.handleDatabaseError("creating balance", err, balance.UserID)
	}
	return nil
}

// AddAmount unconditionally adds amountInCents to the user's balance in a
// single atomic update
func (r *BalanceRepository) AddAmount(ctx context.Context, userID uint64, amountInCents int64) error {
	result := r.db.WithContext(ctx).Model(&model.Balance{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"amount_in_cents": gorm.Expr("amount_in_cents + ?", amountInCents),
			"updated_at":      r.timeProvider.Now(),
		})

	if result.Error != nil {
		return r.handleDatabaseError("adding to balance", result.Error, userID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrBalanceNotFound
	}
	return nil
}

// SubtractIfSufficient atomically subtracts amountInCents only when the
// balance covers it. The WHERE clause carries the funds check, so two
// concurrent debits can never both succeed on the same credit.
func (r *BalanceRepository) SubtractIfSufficient(ctx context.Context, userID uint64, amountInCents int64) error {
	result := r.db.WithContext(ctx).Model(&model.Balance{}).
		Where("user_id = ? AND amount_in_cents >= ?", userID, amountInCents).
		Updates(map[string]any{
			"amount_in_cents": gorm.Expr("amount_in_cents - ?", amountInCents),
			"updated_at":      r.timeProvider.Now(),
		})

	if result.Error != nil {
		return r.handleDatabaseError("subtracting from balance", result.Error, userID)
	}

	if result.RowsAffected == 0 {
		// Either the row is missing or the funds don't cover the debit
		var count int64
		if err := r.db.WithContext(ctx).Model(&model.Balance{}).
			Where("user_id = ?", userID).Count(&count).Error; err != nil {
			return r.handleDatabaseError("checking balance existence", err, userID)
		}
		if count == 0 {
			return errs.ErrBalanceNotFound
		}
		return errs.ErrInsufficientFunds
	}

	return nil
}
