package queue

import (
	"encoding/json"
	"fmt"

	errs "github.com/dlevina/prediction-billing/internal/domain/error"
	"github.com/dlevina/prediction-billing/internal/domain/port/classifier"
)

// JobPayload is the wire format of one queued prediction job
type JobPayload struct {
	JobID   string              `json:"job_id"`
	UserID  uint64              `json:"user_id"`
	Samples []classifier.Sample `json:"samples"`
}

// DecodeJobPayload parses and validates a raw message body
func DecodeJobPayload(body []byte) (*JobPayload, error) {
	var payload JobPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: malformed job payload: %s", errs.ErrValidation, err.Error())
	}

	if payload.JobID == "" {
		return nil, fmt.Errorf("%w: job payload missing job_id", errs.ErrValidation)
	}
	if payload.UserID == 0 {
		return nil, fmt.Errorf("%w: job payload missing user_id", errs.ErrValidation)
	}
	if len(payload.Samples) == 0 {
		return nil, fmt.Errorf("%w: job payload has no samples", errs.ErrValidation)
	}

	return &payload, nil
}

// Encode serializes the payload for publishing
func (p *JobPayload) Encode() ([]byte, error) {
	return json.Marshal(p)
}
