package billing

import (
	"context"
	"errors"
	"fmt"

	"github.com/dlevina/prediction-billing/internal/domain/entity"
	errs "github.com/dlevina/prediction-billing/internal/domain/error"
	cacheport "github.com/dlevina/prediction-billing/internal/domain/port/cache"
	classifierport "github.com/dlevina/prediction-billing/internal/domain/port/classifier"
	coreport "github.com/dlevina/prediction-billing/internal/domain/port/core"
	"github.com/dlevina/prediction-billing/internal/domain/port/persistence"
	"github.com/dlevina/prediction-billing/internal/domain/port/usecase"
)

// BillingUseCase charges users for classification calls. The charge and
// the stored result commit in one database transaction, so a job is
// either fully billed with its result recorded or not billed at all.
type BillingUseCase struct {
	model          classifierport.Classifier
	predictionRepo persistence.PredictionRepository
	balanceUC      usecase.BalanceUseCase
	uow            persistence.UnitOfWork
	cache          cacheport.Cache
	idGen          coreport.IDGenerator
	timeProvider   coreport.TimeProvider
	logger         coreport.Logger
}

// NewBillingUseCase creates a new billing use case instance
func NewBillingUseCase(
	model classifierport.Classifier,
	predictionRepo persistence.PredictionRepository,
	balanceUC usecase.BalanceUseCase,
	uow persistence.UnitOfWork,
	cache cacheport.Cache,
	idGen coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.BillingUseCase {
	return &BillingUseCase{
		model:          model,
		predictionRepo: predictionRepo,
		balanceUC:      balanceUC,
		uow:            uow,
		cache:          cache,
		idGen:          idGen,
		timeProvider:   timeProvider,
		logger:         logger,
	}
}

// Predict runs the classifier and charges the flat per-call cost
func (b *BillingUseCase) Predict(ctx context.Context, req usecase.PredictRequest) (*usecase.PredictResult, error) {
	if req.UserID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if len(req.Samples) == 0 {
		return nil, fmt.Errorf("%w: no samples to classify", errs.ErrValidation)
	}

	jobID := req.JobID
	if jobID == "" {
		jobID = b.idGen.NewID()
	}

	// Redelivered jobs return the stored result without a new charge
	if stored, err := b.predictionRepo.GetByJobID(ctx, jobID); err == nil {
		b.logger.Info("Prediction job replayed from stored result", map[string]any{
			"jobId":  jobID,
			"userId": stored.UserID,
		})
		return b.toReplayedResult(ctx, stored)
	} else if !errors.Is(err, errs.ErrPredictionNotFound) {
		return nil, err
	}

	cost := b.model.CostInCents()
	costStr := entity.AmountInCentsToString(cost)

	// Fail fast before running the model when the user clearly can't pay.
	// The authoritative check happens again inside the transaction.
	bal, err := b.balanceUC.EnsureBalance(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if !bal.CanDeduct(cost) {
		b.logger.Warn("Prediction rejected for insufficient funds", map[string]any{
			"jobId":   jobID,
			"userId":  req.UserID,
			"cost":    costStr,
			"balance": bal.Amount(),
		})
		return nil, errs.NewInsufficientFundsError(req.UserID, costStr, bal.Amount())
	}

	labels, err := b.model.Predict(ctx, req.Samples)
	if err != nil {
		b.logger.Error("Classifier failed", map[string]any{
			"jobId":  jobID,
			"userId": req.UserID,
			"error":  err.Error(),
		})
		return nil, err
	}

	result, err := b.chargeAndStore(ctx, jobID, req.UserID, labels, cost)
	if err != nil {
		// Lost the race against a concurrent delivery of the same job
		if errors.Is(err, errs.ErrDuplicateJob) {
			if stored, getErr := b.predictionRepo.GetByJobID(ctx, jobID); getErr == nil {
				return b.toReplayedResult(ctx, stored)
			}
		}
		if errs.IsInsufficientFundsError(err) {
			return nil, err
		}
		return nil, errs.NewBillingError(jobID, req.UserID, costStr, "charge failed", err)
	}

	b.logger.Info("Prediction billed", map[string]any{
		"jobId":         jobID,
		"userId":        req.UserID,
		"cost":          costStr,
		"samples":       len(req.Samples),
		"resultBalance": result.ResultBalance,
	})

	return result, nil
}

// GetResult returns the stored result for a previously processed job
func (b *BillingUseCase) GetResult(ctx context.Context, jobID string) (*usecase.PredictResult, error) {
	if jobID == "" {
		return nil, fmt.Errorf("%w: empty job ID", errs.ErrValidation)
	}

	stored, err := b.predictionRepo.GetByJobID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	return &usecase.PredictResult{
		JobID:       stored.JobID,
		UserID:      stored.UserID,
		Predictions: stored.Labels,
		Cost:        stored.Cost(),
		Replayed:    true,
		CreatedAt:   stored.CreatedAt,
	}, nil
}

// ListResults returns the user's stored prediction results, newest first
func (b *BillingUseCase) ListResults(ctx context.Context, userID uint64) ([]*usecase.PredictResult, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	stored, err := b.predictionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	results := make([]*usecase.PredictResult, 0, len(stored))
	for _, s := range stored {
		results = append(results, &usecase.PredictResult{
			JobID:       s.JobID,
			UserID:      s.UserID,
			Predictions: s.Labels,
			Cost:        s.Cost(),
			CreatedAt:   s.CreatedAt,
		})
	}
	return results, nil
}

// chargeAndStore debits the cost, records the ledger entry and stores
// the prediction result in a single transaction
func (b *BillingUseCase) chargeAndStore(
	ctx context.Context,
	jobID string,
	userID uint64,
	labels []string,
	cost int64,
) (*usecase.PredictResult, error) {
	txCtx, err := b.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := b.uow.Rollback(txCtx); rbErr != nil {
				b.logger.Error("Failed to roll back billing transaction", map[string]any{
					"jobId": jobID,
					"error": rbErr.Error(),
				})
			}
		}
	}()

	balanceRepo := b.uow.GetBalanceRepository(txCtx)
	txnRepo := b.uow.GetTransactionRepository(txCtx)
	predictionRepo := b.uow.GetPredictionRepository(txCtx)

	if err := balanceRepo.SubtractIfSufficient(txCtx, userID, cost); err != nil {
		if errors.Is(err, errs.ErrInsufficientFunds) {
			return nil, errs.NewInsufficientFundsError(userID, entity.AmountInCentsToString(cost), "")
		}
		return nil, err
	}

	updated, err := balanceRepo.Get(txCtx, userID)
	if err != nil {
		return nil, err
	}

	txn, err := entity.NewTransaction(userID, b.idGen.NewID(), string(entity.TypeCostPrediction), -cost, b.timeProvider)
	if err != nil {
		return nil, err
	}
	txn.ResultBalance = updated.Amount()
	if err := txnRepo.Create(txCtx, txn); err != nil {
		return nil, err
	}

	stored, err := entity.NewPredictionResult(jobID, userID, labels, cost, b.timeProvider)
	if err != nil {
		return nil, err
	}
	if err := predictionRepo.Create(txCtx, stored); err != nil {
		return nil, err
	}

	if err := b.uow.Commit(txCtx); err != nil {
		return nil, err
	}
	committed = true

	if err := b.cache.Delete(ctx, fmt.Sprintf("balance:%d", userID)); err != nil {
		b.logger.Warn("Failed to invalidate cached balance", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
	}

	return &usecase.PredictResult{
		JobID:         jobID,
		UserID:        userID,
		Predictions:   labels,
		Cost:          entity.AmountInCentsToString(cost),
		ResultBalance: updated.Amount(),
	}, nil
}

// toReplayedResult builds the response for an already-processed job
func (b *BillingUseCase) toReplayedResult(ctx context.Context, stored *entity.PredictionResult) (*usecase.PredictResult, error) {
	result := &usecase.PredictResult{
		JobID:       stored.JobID,
		UserID:      stored.UserID,
		Predictions: stored.Labels,
		Cost:        stored.Cost(),
		Replayed:    true,
		CreatedAt:   stored.CreatedAt,
	}

	if resp, err := b.balanceUC.GetBalance(ctx, stored.UserID); err == nil {
		result.ResultBalance = resp.Balance
	}

	return result, nil
}
