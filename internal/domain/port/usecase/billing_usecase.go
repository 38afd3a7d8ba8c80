package usecase

import (
	"context"
	"time"

	"github.com/dlevina/prediction-billing/internal/domain/port/classifier"
)

// PredictRequest represents a billed classification request
type PredictRequest struct {
	// JobID is the idempotency key. Empty means the caller doesn't care
	// about replay protection and a fresh ID is generated.
	JobID   string              `json:"jobId"`
	UserID  uint64              `json:"userId"`
	Samples []classifier.Sample `json:"samples"`
}

// PredictResult contains the outcome of a billed classification call
type PredictResult struct {
	JobID         string   `json:"jobId"`
	UserID        uint64   `json:"userId"`
	Predictions   []string `json:"predictions"`
	Cost          string   `json:"cost"`
	ResultBalance string   `json:"resultBalance"`
	// Replayed is true when the job had already been processed and the
	// stored result was returned without a new charge
	Replayed bool `json:"replayed"`
	// CreatedAt is when the result was stored. Only set on results read
	// back from storage.
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// BillingUseCase charges users for classification calls
type BillingUseCase interface {
	// Predict runs the classifier for the given samples and charges the
	// flat per-call cost atomically with storing the result. A job that
	// was already processed returns its stored result without charging.
	Predict(ctx context.Context, req PredictRequest) (*PredictResult, error)

	// GetResult returns the stored result for a previously processed job
	GetResult(ctx context.Context, jobID string) (*PredictResult, error)

	// ListResults returns the user's stored prediction results,
	// newest first
	ListResults(ctx context.Context, userID uint64) ([]*PredictResult, error)
}
