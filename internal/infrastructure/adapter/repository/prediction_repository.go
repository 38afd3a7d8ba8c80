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

// PredictionRepository implements the prediction result persistence port using GORM
type PredictionRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewPredictionRepository creates a new PredictionRepository instance
func NewPredictionRepository(db *gorm.DB, logger coreport.Logger) *PredictionRepository {
	return &PredictionRepository{
		db:     db,
		logger: logger,
	}
}

// modelToEntity converts a prediction result model to an entity
func (r *PredictionRepository) modelToEntity(resultModel *model.PredictionResult) (*entity.PredictionResult, error) {
	result := &entity.PredictionResult{
		ID:          resultModel.ID,
		JobID:       resultModel.JobID,
		UserID:      resultModel.UserID,
		CostInCents: resultModel.CostInCents,
		CreatedAt:   resultModel.CreatedAt,
	}

	if err := result.UnmarshalLabels(resultModel.Labels); err != nil {
		r.logger.Error("Failed to decode stored prediction labels", map[string]any{
			"job_id": resultModel.JobID,
			"error":  err.Error(),
		})
		return nil, fmt.Errorf("%w: corrupted prediction labels", errs.ErrInternalServer)
	}

	return result, nil
}

// handleDatabaseError standardizes database error handling
func (r *PredictionRepository) handleDatabaseError(operation string, err error, jobID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrPredictionNotFound
	}

	if isDuplicateKeyError(err) {
		return errs.ErrDuplicateJob
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"job_id": jobID,
		"error":  err.Error(),
	})

	if isConnectionError(err) {
		return errs.ErrDatabaseConnection
	}

	return err
}

// Create persists a new prediction result, failing on duplicate job ID
func (r *PredictionRepository) Create(ctx context.Context, result *entity.PredictionResult) error {
	labels, err := result.MarshalLabels()
	if err != nil {
		return err
	}

	resultModel := &model.PredictionResult{
		JobID:       result.JobID,
		UserID:      result.UserID,
		Labels:      labels,
		CostInCents: result.CostInCents,
		CreatedAt:   result.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(resultModel).Error; err != nil {
		return r.handleDatabaseError("creating prediction result", err, result.JobID)
	}

	result.ID = resultModel.ID
	return nil
}

// GetByJobID retrieves a stored prediction result by its job ID
func (r *PredictionRepository) GetByJobID(ctx context.Context, jobID string) (*entity.PredictionResult, error) {
	var resultModel model.PredictionResult
	if err := r.db.WithContext(ctx).Where("job_id = ?", jobID).First(&resultModel).Error; err != nil {
		return nil, r.handleDatabaseError("getting prediction result", err, jobID)
	}

	return r.modelToEntity(&resultModel)
}

// ListByUser returns the user's prediction results, newest first
func (r *PredictionRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.PredictionResult, error) {
	var resultModels []model.PredictionResult
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&resultModels).Error; err != nil {
		return nil, r.handleDatabaseError("listing prediction results", err, "")
	}

	results := make([]*entity.PredictionResult, 0, len(resultModels))
	for i := range resultModels {
		result, err := r.modelToEntity(&resultModels[i])
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}
