package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/dlevina/prediction-billing/internal/domain/error"
	"github.com/dlevina/prediction-billing/internal/domain/port/classifier"
)

func TestDecodeJobPayload(t *testing.T) {
	t.Run("should decode a valid payload", func(t *testing.T) {
		body := []byte(`{"job_id":"job-1","user_id":42,"samples":[{"petal_length":1.4,"petal_width":0.2}]}`)

		payload, err := DecodeJobPayload(body)

		require.NoError(t, err)
		assert.Equal(t, "job-1", payload.JobID)
		assert.Equal(t, uint64(42), payload.UserID)
		require.Len(t, payload.Samples, 1)
		assert.Equal(t, 1.4, payload.Samples[0].PetalLength)
		assert.Equal(t, 0.2, payload.Samples[0].PetalWidth)
	})

	t.Run("should reject malformed JSON", func(t *testing.T) {
		payload, err := DecodeJobPayload([]byte(`{not json`))

		assert.Nil(t, payload)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("should reject missing job ID", func(t *testing.T) {
		body := []byte(`{"user_id":42,"samples":[{"petal_length":1.4,"petal_width":0.2}]}`)

		payload, err := DecodeJobPayload(body)

		assert.Nil(t, payload)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("should reject missing user ID", func(t *testing.T) {
		body := []byte(`{"job_id":"job-1","samples":[{"petal_length":1.4,"petal_width":0.2}]}`)

		payload, err := DecodeJobPayload(body)

		assert.Nil(t, payload)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("should reject empty samples", func(t *testing.T) {
		body := []byte(`{"job_id":"job-1","user_id":42,"samples":[]}`)

		payload, err := DecodeJobPayload(body)

		assert.Nil(t, payload)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestJobPayloadEncode(t *testing.T) {
	payload := &JobPayload{
		JobID:  "job-1",
		UserID: 42,
		Samples: []classifier.Sample{
			{PetalLength: 1.4, PetalWidth: 0.2},
		},
	}

	body, err := payload.Encode()
	require.NoError(t, err)

	decoded, err := DecodeJobPayload(body)
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)
}
