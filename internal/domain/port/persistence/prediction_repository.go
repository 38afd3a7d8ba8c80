package persistence

import (
	"context"

	"github.com/dlevina/prediction-billing/internal/domain/entity"
)

// PredictionRepository defines the persistence operations for prediction results
type PredictionRepository interface {
	// Create persists a new prediction result, failing on duplicate job ID
	Create(ctx context.Context, result *entity.PredictionResult) error

	// GetByJobID retrieves a stored prediction result by its job ID
	GetByJobID(ctx context.Context, jobID string) (*entity.PredictionResult, error)

	// ListByUser returns the user's prediction results, newest first
	ListByUser(ctx context.Context, userID uint64) ([]*entity.PredictionResult, error)
}
