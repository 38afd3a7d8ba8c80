package balance

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dlevina/prediction-billing/internal/domain/entity"
	errs "github.com/dlevina/prediction-billing/internal/domain/error"
	cacheport "github.com/dlevina/prediction-billing/internal/domain/port/cache"
	"github.com/dlevina/prediction-billing/internal/domain/port/usecase"
	cachemocks "github.com/dlevina/prediction-billing/mocks/port/cache"
	coremocks "github.com/dlevina/prediction-billing/mocks/port/core"
	persistencemocks "github.com/dlevina/prediction-billing/mocks/port/persistence"
)

// balanceMocks bundles every dependency of the use case so each subtest
// only configures the ones it cares about.
type balanceMocks struct {
	t            *testing.T
	balanceRepo  *persistencemocks.MockBalanceRepository
	txnRepo      *persistencemocks.MockTransactionRepository
	uow          *persistencemocks.MockUnitOfWork
	cache        *cachemocks.MockCache
	idGen        *coremocks.MockIDGenerator
	timeProvider *coremocks.MockTimeProvider
	logger       *coremocks.MockLogger
}

func newBalanceMocks(t *testing.T) *balanceMocks {
	m := &balanceMocks{
		t:            t,
		balanceRepo:  persistencemocks.NewMockBalanceRepository(t),
		txnRepo:      persistencemocks.NewMockTransactionRepository(t),
		uow:          persistencemocks.NewMockUnitOfWork(t),
		cache:        cachemocks.NewMockCache(t),
		idGen:        coremocks.NewMockIDGenerator(t),
		timeProvider: coremocks.NewMockTimeProvider(t),
		logger:       coremocks.NewMockLogger(t),
	}
	m.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return m
}

func (m *balanceMocks) useCase() usecase.BalanceUseCase {
	return NewBalanceUseCase(m.balanceRepo, m.txnRepo, m.uow, m.cache, m.idGen, m.timeProvider, m.logger)
}

// expectLedgerEntry wires the unit of work for one applyLedgerEntry call
// and returns the repositories bound to the transactional context.
func (m *balanceMocks) expectLedgerEntry(
	ctx context.Context,
) (*persistencemocks.MockBalanceRepository, *persistencemocks.MockTransactionRepository) {
	txBalanceRepo := persistencemocks.NewMockBalanceRepository(m.t)
	txTxnRepo := persistencemocks.NewMockTransactionRepository(m.t)

	m.uow.EXPECT().Begin(ctx).Return(ctx, nil).Once()
	m.uow.EXPECT().GetBalanceRepository(ctx).Return(txBalanceRepo).Once()
	m.uow.EXPECT().GetTransactionRepository(ctx).Return(txTxnRepo).Once()

	return txBalanceRepo, txTxnRepo
}

func TestBalanceUseCase_EnsureBalance(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()
	userID := uint64(123)

	t.Run("should return existing balance", func(t *testing.T) {
		m := newBalanceMocks(t)
		existing := &entity.Balance{UserID: userID, AmountInCents: 5000}
		m.balanceRepo.EXPECT().Get(ctx, userID).Return(existing, nil).Once()

		bal, err := m.useCase().EnsureBalance(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, existing, bal)
	})

	t.Run("should create zero balance when none exists", func(t *testing.T) {
		m := newBalanceMocks(t)
		m.balanceRepo.EXPECT().Get(ctx, userID).Return(nil, errs.ErrBalanceNotFound).Once()
		m.timeProvider.EXPECT().Now().Return(fixedTime).Once()
		m.balanceRepo.EXPECT().Create(ctx, mock.MatchedBy(func(b *entity.Balance) bool {
			return b.UserID == userID && b.AmountInCents == 0
		})).Return(nil).Once()

		bal, err := m.useCase().EnsureBalance(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, userID, bal.UserID)
		assert.Equal(t, int64(0), bal.AmountInCents)
	})

	t.Run("should return concurrently created balance on create conflict", func(t *testing.T) {
		m := newBalanceMocks(t)
		existing := &entity.Balance{UserID: userID, AmountInCents: 0}
		m.balanceRepo.EXPECT().Get(ctx, userID).Return(nil, errs.ErrBalanceNotFound).Once()
		m.timeProvider.EXPECT().Now().Return(fixedTime).Once()
		m.balanceRepo.EXPECT().Create(ctx, mock.Anything).Return(errs.ErrDuplicateTransaction).Once()
		m.balanceRepo.EXPECT().Get(ctx, userID).Return(existing, nil).Once()

		bal, err := m.useCase().EnsureBalance(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, existing, bal)
	})

	t.Run("should reject zero user ID", func(t *testing.T) {
		m := newBalanceMocks(t)

		bal, err := m.useCase().EnsureBalance(ctx, 0)

		assert.Nil(t, bal)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("should propagate repository errors", func(t *testing.T) {
		m := newBalanceMocks(t)
		dbErr := errors.New("connection lost")
		m.balanceRepo.EXPECT().Get(ctx, userID).Return(nil, dbErr).Once()

		bal, err := m.useCase().EnsureBalance(ctx, userID)

		assert.Nil(t, bal)
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestBalanceUseCase_GetBalance(t *testing.T) {
	ctx := context.Background()
	userID := uint64(123)
	cacheKey := "balance:123"

	t.Run("should serve from cache when fresh", func(t *testing.T) {
		m := newBalanceMocks(t)
		cached, err := json.Marshal(&usecase.BalanceResponse{UserID: userID, Balance: "50.00"})
		require.NoError(t, err)
		m.cache.EXPECT().Get(ctx, cacheKey).Return(cached, nil).Once()

		response, err := m.useCase().GetBalance(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, userID, response.UserID)
		assert.Equal(t, "50.00", response.Balance)
	})

	t.Run("should read from database and cache on miss", func(t *testing.T) {
		m := newBalanceMocks(t)
		m.cache.EXPECT().Get(ctx, cacheKey).Return(nil, cacheport.ErrCacheMiss).Once()
		m.balanceRepo.EXPECT().Get(ctx, userID).
			Return(&entity.Balance{UserID: userID, AmountInCents: 5000}, nil).Once()
		m.cache.EXPECT().Set(ctx, cacheKey, mock.Anything, DefaultBalanceCacheTTL).Return(nil).Once()

		response, err := m.useCase().GetBalance(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, "50.00", response.Balance)
	})

	t.Run("should drop corrupted cache entry and re-read", func(t *testing.T) {
		m := newBalanceMocks(t)
		m.cache.EXPECT().Get(ctx, cacheKey).Return([]byte("{not json"), nil).Once()
		m.cache.EXPECT().Delete(ctx, cacheKey).Return(nil).Once()
		m.balanceRepo.EXPECT().Get(ctx, userID).
			Return(&entity.Balance{UserID: userID, AmountInCents: 100}, nil).Once()
		m.cache.EXPECT().Set(ctx, cacheKey, mock.Anything, DefaultBalanceCacheTTL).Return(nil).Once()

		response, err := m.useCase().GetBalance(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, "1.00", response.Balance)
	})

	t.Run("should not fail when caching fails", func(t *testing.T) {
		m := newBalanceMocks(t)
		m.cache.EXPECT().Get(ctx, cacheKey).Return(nil, cacheport.ErrCacheMiss).Once()
		m.balanceRepo.EXPECT().Get(ctx, userID).
			Return(&entity.Balance{UserID: userID, AmountInCents: 5000}, nil).Once()
		m.cache.EXPECT().Set(ctx, cacheKey, mock.Anything, DefaultBalanceCacheTTL).
			Return(errors.New("redis down")).Once()

		response, err := m.useCase().GetBalance(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, "50.00", response.Balance)
	})
}

func TestBalanceUseCase_Deposit(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()
	userID := uint64(123)

	t.Run("should credit the balance and record a ledger entry", func(t *testing.T) {
		m := newBalanceMocks(t)
		m.balanceRepo.EXPECT().Get(ctx, userID).
			Return(&entity.Balance{UserID: userID, AmountInCents: 5000}, nil).Once()

		txBalanceRepo, txTxnRepo := m.expectLedgerEntry(ctx)
		txBalanceRepo.EXPECT().AddAmount(ctx, userID, int64(2500)).Return(nil).Once()
		txBalanceRepo.EXPECT().Get(ctx, userID).
			Return(&entity.Balance{UserID: userID, AmountInCents: 7500}, nil).Once()
		m.idGen.EXPECT().NewID().Return("txn-1").Once()
		m.timeProvider.EXPECT().Now().Return(fixedTime).Once()
		txTxnRepo.EXPECT().Create(ctx, mock.MatchedBy(func(txn *entity.Transaction) bool {
			return txn.UserID == userID &&
				txn.Type == entity.TypeDeposit &&
				txn.AmountInCents == 2500 &&
				txn.ResultBalance == "75.00"
		})).Return(nil).Once()
		m.uow.EXPECT().Commit(ctx).Return(nil).Once()
		m.cache.EXPECT().Delete(ctx, "balance:123").Return(nil).Once()

		txn, err := m.useCase().Deposit(ctx, userID, "25.00")

		require.NoError(t, err)
		assert.Equal(t, "txn-1", txn.TransactionID)
		assert.Equal(t, "25.00", txn.Amount())
		assert.Equal(t, "75.00", txn.ResultBalance)
	})

	t.Run("should reject zero amount", func(t *testing.T) {
		m := newBalanceMocks(t)

		txn, err := m.useCase().Deposit(ctx, userID, "0.00")

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("should reject negative amount", func(t *testing.T) {
		m := newBalanceMocks(t)

		txn, err := m.useCase().Deposit(ctx, userID, "-10.00")

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})

	t.Run("should roll back when ledger entry cannot be stored", func(t *testing.T) {
		m := newBalanceMocks(t)
		m.balanceRepo.EXPECT().Get(ctx, userID).
			Return(&entity.Balance{UserID: userID, AmountInCents: 5000}, nil).Once()

		txBalanceRepo, txTxnRepo := m.expectLedgerEntry(ctx)
		txBalanceRepo.EXPECT().AddAmount(ctx, userID, int64(2500)).Return(nil).Once()
		txBalanceRepo.EXPECT().Get(ctx, userID).
			Return(&entity.Balance{UserID: userID, AmountInCents: 7500}, nil).Once()
		m.idGen.EXPECT().NewID().Return("txn-1").Once()
		m.timeProvider.EXPECT().Now().Return(fixedTime).Once()
		dbErr := errors.New("insert failed")
		txTxnRepo.EXPECT().Create(ctx, mock.Anything).Return(dbErr).Once()
		m.uow.EXPECT().Rollback(ctx).Return(nil).Once()

		txn, err := m.useCase().Deposit(ctx, userID, "25.00")

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestBalanceUseCase_Withdraw(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()
	userID := uint64(123)

	t.Run("should debit when funds are sufficient", func(t *testing.T) {
		m := newBalanceMocks(t)
		m.balanceRepo.EXPECT().Get(ctx, userID).
			Return(&entity.Balance{UserID: userID, AmountInCents: 5000}, nil).Once()

		txBalanceRepo, txTxnRepo := m.expectLedgerEntry(ctx)
		txBalanceRepo.EXPECT().SubtractIfSufficient(ctx, userID, int64(1000)).Return(nil).Once()
		txBalanceRepo.EXPECT().Get(ctx, userID).
			Return(&entity.Balance{UserID: userID, AmountInCents: 4000}, nil).Once()
		m.idGen.EXPECT().NewID().Return("txn-2").Once()
		m.timeProvider.EXPECT().Now().Return(fixedTime).Once()
		txTxnRepo.EXPECT().Create(ctx, mock.MatchedBy(func(txn *entity.Transaction) bool {
			return txn.AmountInCents == -1000 && txn.ResultBalance == "40.00"
		})).Return(nil).Once()
		m.uow.EXPECT().Commit(ctx).Return(nil).Once()
		m.cache.EXPECT().Delete(ctx, "balance:123").Return(nil).Once()

		txn, err := m.useCase().Withdraw(ctx, userID, "10.00")

		require.NoError(t, err)
		assert.Equal(t, "-10.00", txn.Amount())
		assert.Equal(t, "40.00", txn.ResultBalance)
	})

	t.Run("should report the balance at the failed attempt on insufficient funds", func(t *testing.T) {
		m := newBalanceMocks(t)
		m.balanceRepo.EXPECT().Get(ctx, userID).
			Return(&entity.Balance{UserID: userID, AmountInCents: 500}, nil).Once()

		txBalanceRepo, _ := m.expectLedgerEntry(ctx)
		txBalanceRepo.EXPECT().SubtractIfSufficient(ctx, userID, int64(1000)).
			Return(errs.ErrInsufficientFunds).Once()
		m.uow.EXPECT().Rollback(ctx).Return(nil).Once()

		// A concurrent debit dropped the balance after the first read;
		// the error must carry the fresh value
		m.balanceRepo.EXPECT().Get(ctx, userID).
			Return(&entity.Balance{UserID: userID, AmountInCents: 300}, nil).Once()

		txn, err := m.useCase().Withdraw(ctx, userID, "10.00")

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)

		var detailed *errs.InsufficientFundsError
		require.ErrorAs(t, err, &detailed)
		assert.Equal(t, userID, detailed.UserID)
		assert.Equal(t, "10.00", detailed.Amount)
		assert.Equal(t, "3.00", detailed.CurrBalance)
	})

	t.Run("should leave the reported balance empty when the re-read fails", func(t *testing.T) {
		m := newBalanceMocks(t)
		m.balanceRepo.EXPECT().Get(ctx, userID).
			Return(&entity.Balance{UserID: userID, AmountInCents: 500}, nil).Once()

		txBalanceRepo, _ := m.expectLedgerEntry(ctx)
		txBalanceRepo.EXPECT().SubtractIfSufficient(ctx, userID, int64(1000)).
			Return(errs.ErrInsufficientFunds).Once()
		m.uow.EXPECT().Rollback(ctx).Return(nil).Once()
		m.balanceRepo.EXPECT().Get(ctx, userID).
			Return(nil, errs.ErrDatabaseConnection).Once()

		txn, err := m.useCase().Withdraw(ctx, userID, "10.00")

		assert.Nil(t, txn)

		var detailed *errs.InsufficientFundsError
		require.ErrorAs(t, err, &detailed)
		assert.Empty(t, detailed.CurrBalance)
	})

	t.Run("should reject zero amount", func(t *testing.T) {
		m := newBalanceMocks(t)

		txn, err := m.useCase().Withdraw(ctx, userID, "0.00")

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestBalanceUseCase_AdminAdjust(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()
	userID := uint64(123)

	t.Run("should apply positive adjustment unconditionally", func(t *testing.T) {
		m := newBalanceMocks(t)
		m.balanceRepo.EXPECT().Get(ctx, userID).
			Return(&entity.Balance{UserID: userID, AmountInCents: 1000}, nil).Once()

		txBalanceRepo, txTxnRepo := m.expectLedgerEntry(ctx)
		txBalanceRepo.EXPECT().AddAmount(ctx, userID, int64(500)).Return(nil).Once()
		txBalanceRepo.EXPECT().Get(ctx, userID).
			Return(&entity.Balance{UserID: userID, AmountInCents: 1500}, nil).Once()
		m.idGen.EXPECT().NewID().Return("txn-3").Once()
		m.timeProvider.EXPECT().Now().Return(fixedTime).Once()
		txTxnRepo.EXPECT().Create(ctx, mock.MatchedBy(func(txn *entity.Transaction) bool {
			return txn.Type == entity.TypeAdminAdjustment && txn.AmountInCents == 500
		})).Return(nil).Once()
		m.uow.EXPECT().Commit(ctx).Return(nil).Once()
		m.cache.EXPECT().Delete(ctx, "balance:123").Return(nil).Once()

		txn, err := m.useCase().AdminAdjust(ctx, userID, "5.00")

		require.NoError(t, err)
		assert.Equal(t, "5.00", txn.Amount())
	})

	t.Run("should apply negative adjustment conditionally", func(t *testing.T) {
		m := newBalanceMocks(t)
		m.balanceRepo.EXPECT().Get(ctx, userID).
			Return(&entity.Balance{UserID: userID, AmountInCents: 1000}, nil).Once()

		txBalanceRepo, txTxnRepo := m.expectLedgerEntry(ctx)
		txBalanceRepo.EXPECT().SubtractIfSufficient(ctx, userID, int64(500)).Return(nil).Once()
		txBalanceRepo.EXPECT().Get(ctx, userID).
			Return(&entity.Balance{UserID: userID, AmountInCents: 500}, nil).Once()
		m.idGen.EXPECT().NewID().Return("txn-4").Once()
		m.timeProvider.EXPECT().Now().Return(fixedTime).Once()
		txTxnRepo.EXPECT().Create(ctx, mock.MatchedBy(func(txn *entity.Transaction) bool {
			return txn.Type == entity.TypeAdminAdjustment && txn.AmountInCents == -500
		})).Return(nil).Once()
		m.uow.EXPECT().Commit(ctx).Return(nil).Once()
		m.cache.EXPECT().Delete(ctx, "balance:123").Return(nil).Once()

		txn, err := m.useCase().AdminAdjust(ctx, userID, "-5.00")

		require.NoError(t, err)
		assert.Equal(t, "-5.00", txn.Amount())
	})

	t.Run("should not let a negative adjustment overdraw", func(t *testing.T) {
		m := newBalanceMocks(t)
		m.balanceRepo.EXPECT().Get(ctx, userID).
			Return(&entity.Balance{UserID: userID, AmountInCents: 100}, nil).Once()

		txBalanceRepo, _ := m.expectLedgerEntry(ctx)
		txBalanceRepo.EXPECT().SubtractIfSufficient(ctx, userID, int64(500)).
			Return(errs.ErrInsufficientFunds).Once()
		m.uow.EXPECT().Rollback(ctx).Return(nil).Once()

		txn, err := m.useCase().AdminAdjust(ctx, userID, "-5.00")

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
	})

	t.Run("should reject zero adjustment", func(t *testing.T) {
		m := newBalanceMocks(t)

		txn, err := m.useCase().AdminAdjust(ctx, userID, "0.00")

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestBalanceUseCase_GetTransactionHistory(t *testing.T) {
	ctx := context.Background()
	userID := uint64(123)

	t.Run("should return the user's ledger entries", func(t *testing.T) {
		m := newBalanceMocks(t)
		history := []*entity.Transaction{
			{UserID: userID, TransactionID: "txn-2", AmountInCents: -1000},
			{UserID: userID, TransactionID: "txn-1", AmountInCents: 5000},
		}
		m.txnRepo.EXPECT().ListByUser(ctx, userID).Return(history, nil).Once()

		result, err := m.useCase().GetTransactionHistory(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, history, result)
	})

	t.Run("should reject zero user ID", func(t *testing.T) {
		m := newBalanceMocks(t)

		result, err := m.useCase().GetTransactionHistory(ctx, 0)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}
