package billing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dlevina/prediction-billing/internal/domain/entity"
	errs "github.com/dlevina/prediction-billing/internal/domain/error"
	classifierport "github.com/dlevina/prediction-billing/internal/domain/port/classifier"
	"github.com/dlevina/prediction-billing/internal/domain/port/usecase"
	cachemocks "github.com/dlevina/prediction-billing/mocks/port/cache"
	classifiermocks "github.com/dlevina/prediction-billing/mocks/port/classifier"
	coremocks "github.com/dlevina/prediction-billing/mocks/port/core"
	persistencemocks "github.com/dlevina/prediction-billing/mocks/port/persistence"
	usecasemocks "github.com/dlevina/prediction-billing/mocks/port/usecase"
)

type billingMocks struct {
	t              *testing.T
	model          *classifiermocks.MockClassifier
	predictionRepo *persistencemocks.MockPredictionRepository
	balanceUC      *usecasemocks.MockBalanceUseCase
	uow            *persistencemocks.MockUnitOfWork
	cache          *cachemocks.MockCache
	idGen          *coremocks.MockIDGenerator
	timeProvider   *coremocks.MockTimeProvider
	logger         *coremocks.MockLogger
}

func newBillingMocks(t *testing.T) *billingMocks {
	m := &billingMocks{
		t:              t,
		model:          classifiermocks.NewMockClassifier(t),
		predictionRepo: persistencemocks.NewMockPredictionRepository(t),
		balanceUC:      usecasemocks.NewMockBalanceUseCase(t),
		uow:            persistencemocks.NewMockUnitOfWork(t),
		cache:          cachemocks.NewMockCache(t),
		idGen:          coremocks.NewMockIDGenerator(t),
		timeProvider:   coremocks.NewMockTimeProvider(t),
		logger:         coremocks.NewMockLogger(t),
	}
	m.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return m
}

func (m *billingMocks) useCase() usecase.BillingUseCase {
	return NewBillingUseCase(
		m.model, m.predictionRepo, m.balanceUC, m.uow,
		m.cache, m.idGen, m.timeProvider, m.logger,
	)
}

func TestBillingUseCase_Predict(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()
	userID := uint64(123)
	jobID := "job-1"
	samples := []classifierport.Sample{{PetalLength: 1.4, PetalWidth: 0.2}}
	costInCents := int64(1000)

	t.Run("should charge and store the result", func(t *testing.T) {
		m := newBillingMocks(t)
		m.predictionRepo.EXPECT().GetByJobID(ctx, jobID).Return(nil, errs.ErrPredictionNotFound).Once()
		m.model.EXPECT().CostInCents().Return(costInCents).Once()
		m.balanceUC.EXPECT().EnsureBalance(ctx, userID).
			Return(&entity.Balance{UserID: userID, AmountInCents: 5000}, nil).Once()
		m.model.EXPECT().Predict(ctx, samples).Return([]string{"setosa"}, nil).Once()

		txBalanceRepo := persistencemocks.NewMockBalanceRepository(m.t)
		txTxnRepo := persistencemocks.NewMockTransactionRepository(m.t)
		txPredictionRepo := persistencemocks.NewMockPredictionRepository(m.t)
		m.uow.EXPECT().Begin(ctx).Return(ctx, nil).Once()
		m.uow.EXPECT().GetBalanceRepository(ctx).Return(txBalanceRepo).Once()
		m.uow.EXPECT().GetTransactionRepository(ctx).Return(txTxnRepo).Once()
		m.uow.EXPECT().GetPredictionRepository(ctx).Return(txPredictionRepo).Once()

		txBalanceRepo.EXPECT().SubtractIfSufficient(ctx, userID, costInCents).Return(nil).Once()
		txBalanceRepo.EXPECT().Get(ctx, userID).
			Return(&entity.Balance{UserID: userID, AmountInCents: 4000}, nil).Once()
		m.idGen.EXPECT().NewID().Return("txn-1").Once()
		m.timeProvider.EXPECT().Now().Return(fixedTime).Twice()
		txTxnRepo.EXPECT().Create(ctx, mock.MatchedBy(func(txn *entity.Transaction) bool {
			return txn.Type == entity.TypeCostPrediction &&
				txn.AmountInCents == -costInCents &&
				txn.ResultBalance == "40.00"
		})).Return(nil).Once()
		txPredictionRepo.EXPECT().Create(ctx, mock.MatchedBy(func(p *entity.PredictionResult) bool {
			return p.JobID == jobID && p.UserID == userID && p.CostInCents == costInCents
		})).Return(nil).Once()
		m.uow.EXPECT().Commit(ctx).Return(nil).Once()
		m.cache.EXPECT().Delete(ctx, "balance:123").Return(nil).Once()

		result, err := m.useCase().Predict(ctx, usecase.PredictRequest{
			JobID: jobID, UserID: userID, Samples: samples,
		})

		require.NoError(t, err)
		assert.Equal(t, jobID, result.JobID)
		assert.Equal(t, userID, result.UserID)
		assert.Equal(t, []string{"setosa"}, result.Predictions)
		assert.Equal(t, "10.00", result.Cost)
		assert.Equal(t, "40.00", result.ResultBalance)
		assert.False(t, result.Replayed)
	})

	t.Run("should generate a job ID when none is given", func(t *testing.T) {
		m := newBillingMocks(t)
		m.idGen.EXPECT().NewID().Return("job-generated").Once()
		m.predictionRepo.EXPECT().GetByJobID(ctx, "job-generated").
			Return(nil, errs.ErrPredictionNotFound).Once()
		m.model.EXPECT().CostInCents().Return(costInCents).Once()
		m.balanceUC.EXPECT().EnsureBalance(ctx, userID).
			Return(&entity.Balance{UserID: userID, AmountInCents: 500}, nil).Once()

		result, err := m.useCase().Predict(ctx, usecase.PredictRequest{
			UserID: userID, Samples: samples,
		})

		// Balance of 5.00 cannot cover the 10.00 cost, so the call stops
		// after the generated job ID was used for the replay lookup
		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
	})

	t.Run("should replay a stored job without charging", func(t *testing.T) {
		m := newBillingMocks(t)
		stored := &entity.PredictionResult{
			JobID:       jobID,
			UserID:      userID,
			Labels:      []string{"virginica"},
			CostInCents: costInCents,
			CreatedAt:   fixedTime,
		}
		m.predictionRepo.EXPECT().GetByJobID(ctx, jobID).Return(stored, nil).Once()
		m.balanceUC.EXPECT().GetBalance(ctx, userID).
			Return(&usecase.BalanceResponse{UserID: userID, Balance: "40.00"}, nil).Once()

		result, err := m.useCase().Predict(ctx, usecase.PredictRequest{
			JobID: jobID, UserID: userID, Samples: samples,
		})

		require.NoError(t, err)
		assert.True(t, result.Replayed)
		assert.Equal(t, []string{"virginica"}, result.Predictions)
		assert.Equal(t, "10.00", result.Cost)
		assert.Equal(t, "40.00", result.ResultBalance)
	})

	t.Run("should reject insufficient funds before running the model", func(t *testing.T) {
		m := newBillingMocks(t)
		m.predictionRepo.EXPECT().GetByJobID(ctx, jobID).Return(nil, errs.ErrPredictionNotFound).Once()
		m.model.EXPECT().CostInCents().Return(costInCents).Once()
		m.balanceUC.EXPECT().EnsureBalance(ctx, userID).
			Return(&entity.Balance{UserID: userID, AmountInCents: 500}, nil).Once()

		result, err := m.useCase().Predict(ctx, usecase.PredictRequest{
			JobID: jobID, UserID: userID, Samples: samples,
		})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)

		var detailed *errs.InsufficientFundsError
		require.ErrorAs(t, err, &detailed)
		assert.Equal(t, "10.00", detailed.Amount)
		assert.Equal(t, "5.00", detailed.CurrBalance)
	})

	t.Run("should propagate classifier errors without charging", func(t *testing.T) {
		m := newBillingMocks(t)
		m.predictionRepo.EXPECT().GetByJobID(ctx, jobID).Return(nil, errs.ErrPredictionNotFound).Once()
		m.model.EXPECT().CostInCents().Return(costInCents).Once()
		m.balanceUC.EXPECT().EnsureBalance(ctx, userID).
			Return(&entity.Balance{UserID: userID, AmountInCents: 5000}, nil).Once()
		modelErr := errs.NewClassifierError("model failure", nil)
		m.model.EXPECT().Predict(ctx, samples).Return(nil, modelErr).Once()

		result, err := m.useCase().Predict(ctx, usecase.PredictRequest{
			JobID: jobID, UserID: userID, Samples: samples,
		})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrClassifier)
	})

	t.Run("should fall back to the stored result when losing a duplicate race", func(t *testing.T) {
		m := newBillingMocks(t)
		m.predictionRepo.EXPECT().GetByJobID(ctx, jobID).Return(nil, errs.ErrPredictionNotFound).Once()
		m.model.EXPECT().CostInCents().Return(costInCents).Once()
		m.balanceUC.EXPECT().EnsureBalance(ctx, userID).
			Return(&entity.Balance{UserID: userID, AmountInCents: 5000}, nil).Once()
		m.model.EXPECT().Predict(ctx, samples).Return([]string{"setosa"}, nil).Once()

		txBalanceRepo := persistencemocks.NewMockBalanceRepository(m.t)
		txTxnRepo := persistencemocks.NewMockTransactionRepository(m.t)
		txPredictionRepo := persistencemocks.NewMockPredictionRepository(m.t)
		m.uow.EXPECT().Begin(ctx).Return(ctx, nil).Once()
		m.uow.EXPECT().GetBalanceRepository(ctx).Return(txBalanceRepo).Once()
		m.uow.EXPECT().GetTransactionRepository(ctx).Return(txTxnRepo).Once()
		m.uow.EXPECT().GetPredictionRepository(ctx).Return(txPredictionRepo).Once()

		txBalanceRepo.EXPECT().SubtractIfSufficient(ctx, userID, costInCents).Return(nil).Once()
		txBalanceRepo.EXPECT().Get(ctx, userID).
			Return(&entity.Balance{UserID: userID, AmountInCents: 4000}, nil).Once()
		m.idGen.EXPECT().NewID().Return("txn-1").Once()
		m.timeProvider.EXPECT().Now().Return(fixedTime).Twice()
		txTxnRepo.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()
		txPredictionRepo.EXPECT().Create(ctx, mock.Anything).Return(errs.ErrDuplicateJob).Once()
		m.uow.EXPECT().Rollback(ctx).Return(nil).Once()

		stored := &entity.PredictionResult{
			JobID:       jobID,
			UserID:      userID,
			Labels:      []string{"setosa"},
			CostInCents: costInCents,
			CreatedAt:   fixedTime,
		}
		m.predictionRepo.EXPECT().GetByJobID(ctx, jobID).Return(stored, nil).Once()
		m.balanceUC.EXPECT().GetBalance(ctx, userID).
			Return(&usecase.BalanceResponse{UserID: userID, Balance: "40.00"}, nil).Once()

		result, err := m.useCase().Predict(ctx, usecase.PredictRequest{
			JobID: jobID, UserID: userID, Samples: samples,
		})

		require.NoError(t, err)
		assert.True(t, result.Replayed)
		assert.Equal(t, []string{"setosa"}, result.Predictions)
	})

	t.Run("should wrap storage failures in a billing error", func(t *testing.T) {
		m := newBillingMocks(t)
		m.predictionRepo.EXPECT().GetByJobID(ctx, jobID).Return(nil, errs.ErrPredictionNotFound).Once()
		m.model.EXPECT().CostInCents().Return(costInCents).Once()
		m.balanceUC.EXPECT().EnsureBalance(ctx, userID).
			Return(&entity.Balance{UserID: userID, AmountInCents: 5000}, nil).Once()
		m.model.EXPECT().Predict(ctx, samples).Return([]string{"setosa"}, nil).Once()

		txBalanceRepo := persistencemocks.NewMockBalanceRepository(m.t)
		txTxnRepo := persistencemocks.NewMockTransactionRepository(m.t)
		txPredictionRepo := persistencemocks.NewMockPredictionRepository(m.t)
		m.uow.EXPECT().Begin(ctx).Return(ctx, nil).Once()
		m.uow.EXPECT().GetBalanceRepository(ctx).Return(txBalanceRepo).Once()
		m.uow.EXPECT().GetTransactionRepository(ctx).Return(txTxnRepo).Once()
		m.uow.EXPECT().GetPredictionRepository(ctx).Return(txPredictionRepo).Once()

		txBalanceRepo.EXPECT().SubtractIfSufficient(ctx, userID, costInCents).Return(nil).Once()
		txBalanceRepo.EXPECT().Get(ctx, userID).
			Return(&entity.Balance{UserID: userID, AmountInCents: 4000}, nil).Once()
		m.idGen.EXPECT().NewID().Return("txn-1").Once()
		m.timeProvider.EXPECT().Now().Return(fixedTime).Once()
		dbErr := errors.New("insert failed")
		txTxnRepo.EXPECT().Create(ctx, mock.Anything).Return(dbErr).Once()
		m.uow.EXPECT().Rollback(ctx).Return(nil).Once()

		result, err := m.useCase().Predict(ctx, usecase.PredictRequest{
			JobID: jobID, UserID: userID, Samples: samples,
		})

		assert.Nil(t, result)

		var billingErr *errs.BillingError
		require.ErrorAs(t, err, &billingErr)
		assert.Equal(t, jobID, billingErr.JobID)
		assert.Equal(t, userID, billingErr.UserID)
		assert.Equal(t, "10.00", billingErr.Cost)
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("should reject zero user ID", func(t *testing.T) {
		m := newBillingMocks(t)

		result, err := m.useCase().Predict(ctx, usecase.PredictRequest{
			JobID: jobID, Samples: samples,
		})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("should reject empty samples", func(t *testing.T) {
		m := newBillingMocks(t)

		result, err := m.useCase().Predict(ctx, usecase.PredictRequest{
			JobID: jobID, UserID: userID,
		})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("should propagate replay lookup errors", func(t *testing.T) {
		m := newBillingMocks(t)
		dbErr := errors.New("connection lost")
		m.predictionRepo.EXPECT().GetByJobID(ctx, jobID).Return(nil, dbErr).Once()

		result, err := m.useCase().Predict(ctx, usecase.PredictRequest{
			JobID: jobID, UserID: userID, Samples: samples,
		})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestBillingUseCase_GetResult(t *testing.T) {
	ctx := context.Background()
	jobID := "job-1"

	t.Run("should return the stored result", func(t *testing.T) {
		m := newBillingMocks(t)
		stored := &entity.PredictionResult{
			JobID:       jobID,
			UserID:      123,
			Labels:      []string{"versicolor"},
			CostInCents: 1000,
		}
		m.predictionRepo.EXPECT().GetByJobID(ctx, jobID).Return(stored, nil).Once()

		result, err := m.useCase().GetResult(ctx, jobID)

		require.NoError(t, err)
		assert.Equal(t, jobID, result.JobID)
		assert.Equal(t, uint64(123), result.UserID)
		assert.Equal(t, []string{"versicolor"}, result.Predictions)
		assert.Equal(t, "10.00", result.Cost)
		assert.True(t, result.Replayed)
	})

	t.Run("should return not found for unknown job", func(t *testing.T) {
		m := newBillingMocks(t)
		m.predictionRepo.EXPECT().GetByJobID(ctx, jobID).
			Return(nil, errs.ErrPredictionNotFound).Once()

		result, err := m.useCase().GetResult(ctx, jobID)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrPredictionNotFound)
	})

	t.Run("should reject empty job ID", func(t *testing.T) {
		m := newBillingMocks(t)

		result, err := m.useCase().GetResult(ctx, "")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestBillingUseCase_ListResults(t *testing.T) {
	ctx := context.Background()
	userID := uint64(123)

	t.Run("should list stored results", func(t *testing.T) {
		m := newBillingMocks(t)
		newer := time.Date(2023, 1, 2, 12, 0, 0, 0, time.UTC)
		older := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
		m.predictionRepo.EXPECT().ListByUser(ctx, userID).Return([]*entity.PredictionResult{
			{JobID: "job-2", UserID: userID, Labels: []string{"virginica"}, CostInCents: 1000, CreatedAt: newer},
			{JobID: "job-1", UserID: userID, Labels: []string{"setosa"}, CostInCents: 1000, CreatedAt: older},
		}, nil).Once()

		results, err := m.useCase().ListResults(ctx, userID)

		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "job-2", results[0].JobID)
		assert.Equal(t, userID, results[0].UserID)
		assert.Equal(t, []string{"virginica"}, results[0].Predictions)
		assert.Equal(t, "10.00", results[0].Cost)
		assert.Equal(t, newer, results[0].CreatedAt)
		assert.Equal(t, "job-1", results[1].JobID)
	})

	t.Run("should return an empty list for a user without predictions", func(t *testing.T) {
		m := newBillingMocks(t)
		m.predictionRepo.EXPECT().ListByUser(ctx, userID).Return(nil, nil).Once()

		results, err := m.useCase().ListResults(ctx, userID)

		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("should reject zero user ID", func(t *testing.T) {
		m := newBillingMocks(t)

		results, err := m.useCase().ListResults(ctx, 0)

		assert.Nil(t, results)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("should propagate repository errors", func(t *testing.T) {
		m := newBillingMocks(t)
		dbErr := errors.New("connection lost")
		m.predictionRepo.EXPECT().ListByUser(ctx, userID).Return(nil, dbErr).Once()

		results, err := m.useCase().ListResults(ctx, userID)

		assert.Nil(t, results)
		assert.ErrorIs(t, err, dbErr)
	})
}
