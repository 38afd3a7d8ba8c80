package classifier

import "context"

// Sample is a single observation to classify: petal length and petal
// width in centimeters
type Sample struct {
	PetalLength float64 `json:"petal_length"`
	PetalWidth  float64 `json:"petal_width"`
}

// Classifier produces species labels for iris samples at a fixed cost per call
type Classifier interface {
	// Predict returns one label per input sample, in order. Labels are
	// one of setosa, versicolor, virginica or unknown.
	Predict(ctx context.Context, samples []Sample) ([]string, error)

	// CostInCents returns the flat charge for one Predict call,
	// independent of the number of samples
	CostInCents() int64

	// Name returns a short identifier of the underlying model
	Name() string

	// Labels returns the set of labels the model can produce, excluding
	// the fallback label for unclassifiable input
	Labels() []string
}
