package classifier

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/dlevina/prediction-billing/internal/domain/error"
	classifierport "github.com/dlevina/prediction-billing/internal/domain/port/classifier"
	"github.com/dlevina/prediction-billing/internal/infrastructure/adapter/logger"
)

func newTestClassifier(t *testing.T) *SoftmaxClassifier {
	model, err := NewSoftmaxClassifier(Options{Cost: "10.00", Seed: 42}, logger.NewNoopLogger())
	require.NoError(t, err)
	return model
}

func TestNewSoftmaxClassifier(t *testing.T) {
	t.Run("should reject an invalid cost", func(t *testing.T) {
		model, err := NewSoftmaxClassifier(Options{Cost: "not-a-number"}, logger.NewNoopLogger())

		assert.Nil(t, model)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("should reach usable held-out accuracy", func(t *testing.T) {
		model := newTestClassifier(t)

		assert.GreaterOrEqual(t, model.Accuracy(), 0.85)
	})
}

func TestSoftmaxClassifier_Predict(t *testing.T) {
	ctx := context.Background()

	t.Run("should classify well-separated samples", func(t *testing.T) {
		model := newTestClassifier(t)

		// Dataset centroids, far from any decision boundary
		labels, err := model.Predict(ctx, []classifierport.Sample{
			{PetalLength: 1.4, PetalWidth: 0.2},
			{PetalLength: 4.3, PetalWidth: 1.3},
			{PetalLength: 5.9, PetalWidth: 2.2},
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"setosa", "versicolor", "virginica"}, labels)
	})

	t.Run("should be deterministic for the same seed", func(t *testing.T) {
		first := newTestClassifier(t)
		second := newTestClassifier(t)

		samples := []classifierport.Sample{
			{PetalLength: 1.4, PetalWidth: 0.2},
			{PetalLength: 4.7, PetalWidth: 1.5},
			{PetalLength: 5.1, PetalWidth: 1.8},
			{PetalLength: 2.5, PetalWidth: 0.9},
		}

		firstLabels, err := first.Predict(ctx, samples)
		require.NoError(t, err)
		secondLabels, err := second.Predict(ctx, samples)
		require.NoError(t, err)

		assert.Equal(t, firstLabels, secondLabels)
	})

	t.Run("should produce the same model after a retrain", func(t *testing.T) {
		model := newTestClassifier(t)

		samples := []classifierport.Sample{
			{PetalLength: 1.4, PetalWidth: 0.2},
			{PetalLength: 4.7, PetalWidth: 1.5},
			{PetalLength: 5.1, PetalWidth: 1.8},
		}

		before, err := model.Predict(ctx, samples)
		require.NoError(t, err)

		model.Retrain()
		after, err := model.Predict(ctx, samples)
		require.NoError(t, err)

		assert.Equal(t, before, after)
	})

	t.Run("should label unclassifiable input as unknown", func(t *testing.T) {
		model := newTestClassifier(t)

		labels, err := model.Predict(ctx, []classifierport.Sample{
			{PetalLength: math.NaN(), PetalWidth: 0.2},
			{PetalLength: 1.4, PetalWidth: math.Inf(1)},
			{PetalLength: 1.4, PetalWidth: 0.2},
		})

		require.NoError(t, err)
		assert.Equal(t, UnknownLabel, labels[0])
		assert.Equal(t, UnknownLabel, labels[1])
		assert.Equal(t, "setosa", labels[2])
	})

	t.Run("should reject empty input", func(t *testing.T) {
		model := newTestClassifier(t)

		labels, err := model.Predict(ctx, nil)

		assert.Nil(t, labels)
		assert.ErrorIs(t, err, errs.ErrClassifier)
	})

	t.Run("should stop on a cancelled context", func(t *testing.T) {
		model := newTestClassifier(t)
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		labels, err := model.Predict(cancelled, []classifierport.Sample{
			{PetalLength: 1.4, PetalWidth: 0.2},
		})

		assert.Nil(t, labels)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestSoftmaxClassifier_Metadata(t *testing.T) {
	model := newTestClassifier(t)

	assert.Equal(t, int64(1000), model.CostInCents())
	assert.Equal(t, "iris-softmax", model.Name())
	assert.Equal(t, []string{"setosa", "versicolor", "virginica"}, model.Labels())
}
