package balance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dlevina/prediction-billing/internal/domain/entity"
	errs "github.com/dlevina/prediction-billing/internal/domain/error"
	cacheport "github.com/dlevina/prediction-billing/internal/domain/port/cache"
	coreport "github.com/dlevina/prediction-billing/internal/domain/port/core"
	"github.com/dlevina/prediction-billing/internal/domain/port/persistence"
	"github.com/dlevina/prediction-billing/internal/domain/port/usecase"
)

// DefaultBalanceCacheTTL is how long a cached balance stays valid
const DefaultBalanceCacheTTL = 60 * time.Second

// BalanceUseCase implements the credit ledger business logic
type BalanceUseCase struct {
	balanceRepo  persistence.BalanceRepository
	txnRepo      persistence.TransactionRepository
	uow          persistence.UnitOfWork
	cache        cacheport.Cache
	idGen        coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	cacheTTL     time.Duration
}

// NewBalanceUseCase creates a new balance use case instance
func NewBalanceUseCase(
	balanceRepo persistence.BalanceRepository,
	txnRepo persistence.TransactionRepository,
	uow persistence.UnitOfWork,
	cache cacheport.Cache,
	idGen coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.BalanceUseCase {
	return &BalanceUseCase{
		balanceRepo:  balanceRepo,
		txnRepo:      txnRepo,
		uow:          uow,
		cache:        cache,
		idGen:        idGen,
		timeProvider: timeProvider,
		logger:       logger,
		cacheTTL:     DefaultBalanceCacheTTL,
	}
}

func balanceCacheKey(userID uint64) string {
	return fmt.Sprintf("balance:%d", userID)
}

// EnsureBalance returns the user's balance, creating a zero row if none
// exists yet
func (b *BalanceUseCase) EnsureBalance(ctx context.Context, userID uint64) (*entity.Balance, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	bal, err := b.balanceRepo.Get(ctx, userID)
	if err == nil {
		return bal, nil
	}
	if !errors.Is(err, errs.ErrBalanceNotFound) {
		return nil, err
	}

	bal, err = entity.NewBalance(userID, b.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := b.balanceRepo.Create(ctx, bal); err != nil {
		// Another request may have created the row in the meantime
		if existing, getErr := b.balanceRepo.Get(ctx, userID); getErr == nil {
			return existing, nil
		}
		b.logger.Error("Failed to create balance", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		return nil, err
	}

	b.logger.Info("Balance created", map[string]any{
		"userId": userID,
	})

	return bal, nil
}

// GetBalance retrieves the user's balance, serving from cache when fresh
func (b *BalanceUseCase) GetBalance(ctx context.Context, userID uint64) (*usecase.BalanceResponse, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	key := balanceCacheKey(userID)
	if raw, err := b.cache.Get(ctx, key); err == nil {
		var cached usecase.BalanceResponse
		if err := json.Unmarshal(raw, &cached); err == nil {
			b.logger.Debug("Balance served from cache", map[string]any{
				"userId": userID,
			})
			return &cached, nil
		}
		// Corrupted entries are dropped and re-read from the database
		_ = b.cache.Delete(ctx, key)
	}

	bal, err := b.EnsureBalance(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := &usecase.BalanceResponse{
		UserID:  bal.UserID,
		Balance: bal.Amount(),
	}

	if raw, err := json.Marshal(response); err == nil {
		if err := b.cache.Set(ctx, key, raw, b.cacheTTL); err != nil {
			b.logger.Warn("Failed to cache balance", map[string]any{
				"userId": userID,
				"error":  err.Error(),
			})
		}
	}

	return response, nil
}

// Deposit credits a strictly positive amount and records a ledger entry
func (b *BalanceUseCase) Deposit(ctx context.Context, userID uint64, amount string) (*entity.Transaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	amountInCents, err := entity.ValidateAndConvertAmount(amount)
	if err != nil {
		return nil, err
	}
	if amountInCents == 0 {
		return nil, fmt.Errorf("%w: deposit must be positive", errs.ErrInvalidAmount)
	}

	if _, err := b.EnsureBalance(ctx, userID); err != nil {
		return nil, err
	}

	txn, err := b.applyLedgerEntry(ctx, userID, entity.TypeDeposit, amountInCents, false)
	if err != nil {
		return nil, err
	}

	b.logger.Info("Deposit completed", map[string]any{
		"userId":        userID,
		"transactionId": txn.TransactionID,
		"amount":        txn.Amount(),
		"resultBalance": txn.ResultBalance,
	})

	return txn, nil
}

// Withdraw debits the balance only when it covers the amount
func (b *BalanceUseCase) Withdraw(ctx context.Context, userID uint64, amount string) (*entity.Transaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	amountInCents, err := entity.ValidateAndConvertAmount(amount)
	if err != nil {
		return nil, err
	}
	if amountInCents == 0 {
		return nil, fmt.Errorf("%w: withdrawal must be positive", errs.ErrInvalidAmount)
	}

	if _, err := b.EnsureBalance(ctx, userID); err != nil {
		return nil, err
	}

	txn, err := b.applyLedgerEntry(ctx, userID, entity.TypeCostPrediction, -amountInCents, true)
	if err != nil {
		if errors.Is(err, errs.ErrInsufficientFunds) {
			// Report the balance as of the failed attempt. The earlier
			// read can be stale under concurrent debits.
			current := ""
			if fresh, getErr := b.balanceRepo.Get(ctx, userID); getErr == nil {
				current = fresh.Amount()
			}
			return nil, errs.NewInsufficientFundsError(userID, entity.AmountInCentsToString(amountInCents), current)
		}
		return nil, err
	}

	b.logger.Info("Withdrawal completed", map[string]any{
		"userId":        userID,
		"transactionId": txn.TransactionID,
		"amount":        txn.Amount(),
		"resultBalance": txn.ResultBalance,
	})

	return txn, nil
}

// AdminAdjust applies a signed correction to the balance. Negative
// adjustments still may not take the balance below zero.
func (b *BalanceUseCase) AdminAdjust(ctx context.Context, userID uint64, amount string) (*entity.Transaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	negative := strings.HasPrefix(strings.TrimSpace(amount), "-")
	amountInCents, err := entity.ValidateAndConvertAmount(strings.TrimPrefix(strings.TrimSpace(amount), "-"))
	if err != nil {
		return nil, err
	}
	if amountInCents == 0 {
		return nil, fmt.Errorf("%w: adjustment must be non-zero", errs.ErrInvalidAmount)
	}
	if negative {
		amountInCents = -amountInCents
	}

	if _, err := b.EnsureBalance(ctx, userID); err != nil {
		return nil, err
	}

	txn, err := b.applyLedgerEntry(ctx, userID, entity.TypeAdminAdjustment, amountInCents, negative)
	if err != nil {
		return nil, err
	}

	b.logger.Info("Admin adjustment completed", map[string]any{
		"userId":        userID,
		"transactionId": txn.TransactionID,
		"amount":        txn.Amount(),
		"resultBalance": txn.ResultBalance,
	})

	return txn, nil
}

// GetTransactionHistory returns the user's ledger entries, newest first
func (b *BalanceUseCase) GetTransactionHistory(ctx context.Context, userID uint64) ([]*entity.Transaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	return b.txnRepo.ListByUser(ctx, userID)
}

// applyLedgerEntry updates the balance and records the matching ledger
// entry in one transaction. Debits are applied conditionally so the
// balance can never go negative, even under concurrent requests.
func (b *BalanceUseCase) applyLedgerEntry(
	ctx context.Context,
	userID uint64,
	txnType entity.TransactionType,
	amountInCents int64,
	conditional bool,
) (*entity.Transaction, error) {
	txCtx, err := b.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := b.uow.Rollback(txCtx); rbErr != nil {
				b.logger.Error("Failed to roll back ledger transaction", map[string]any{
					"userId": userID,
					"error":  rbErr.Error(),
				})
			}
		}
	}()

	balanceRepo := b.uow.GetBalanceRepository(txCtx)
	txnRepo := b.uow.GetTransactionRepository(txCtx)

	if conditional {
		if err := balanceRepo.SubtractIfSufficient(txCtx, userID, -amountInCents); err != nil {
			return nil, err
		}
	} else {
		if err := balanceRepo.AddAmount(txCtx, userID, amountInCents); err != nil {
			return nil, err
		}
	}

	updated, err := balanceRepo.Get(txCtx, userID)
	if err != nil {
		return nil, err
	}

	txn, err := entity.NewTransaction(userID, b.idGen.NewID(), string(txnType), amountInCents, b.timeProvider)
	if err != nil {
		return nil, err
	}
	txn.ResultBalance = updated.Amount()

	if err := txnRepo.Create(txCtx, txn); err != nil {
		return nil, err
	}

	if err := b.uow.Commit(txCtx); err != nil {
		return nil, err
	}
	committed = true

	// The cached balance is stale now
	if err := b.cache.Delete(ctx, balanceCacheKey(userID)); err != nil {
		b.logger.Warn("Failed to invalidate cached balance", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
	}

	return txn, nil
}
