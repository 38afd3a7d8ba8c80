package entity

import (
	"encoding/json"
	"fmt"
	"time"

	errs "github.com/dlevina/prediction-billing/internal/domain/error"
	coreport "github.com/dlevina/prediction-billing/internal/domain/port/core"
)

// PredictionResult stores the outcome of one billed classification call.
// The JobID is the idempotency key: processing the same job twice must
// return the stored result instead of charging again.
type PredictionResult struct {
	ID          uint64    // Database identifier
	JobID       string    // Unique job identifier, used for idempotency
	UserID      uint64    // User who was charged for this prediction
	Labels      []string  // Predicted species labels, one per input sample
	CostInCents int64     // What the call cost, in cents
	CreatedAt   time.Time // When the result was stored
}

// NewPredictionResult creates a stored prediction result
func NewPredictionResult(
	jobID string,
	userID uint64,
	labels []string,
	costInCents int64,
	timeProvider coreport.TimeProvider,
) (*PredictionResult, error) {
	if jobID == "" {
		return nil, fmt.Errorf("%w: empty job ID", errs.ErrValidation)
	}
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	return &PredictionResult{
		JobID:       jobID,
		UserID:      userID,
		Labels:      labels,
		CostInCents: costInCents,
		CreatedAt:   timeProvider.Now(),
	}, nil
}

// Cost returns the charge as a string with 2 decimal places
func (p *PredictionResult) Cost() string {
	return AmountInCentsToString(p.CostInCents)
}

// MarshalLabels serializes the labels for storage in a single column
func (p *PredictionResult) MarshalLabels() (string, error) {
	raw, err := json.Marshal(p.Labels)
	if err != nil {
		return "", fmt.Errorf("marshal labels: %w", err)
	}
	return string(raw), nil
}

// UnmarshalLabels restores labels from their stored representation
func (p *PredictionResult) UnmarshalLabels(raw string) error {
	if raw == "" {
		p.Labels = nil
		return nil
	}
	if err := json.Unmarshal([]byte(raw), &p.Labels); err != nil {
		return fmt.Errorf("unmarshal labels: %w", err)
	}
	return nil
}
