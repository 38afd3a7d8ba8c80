package classifier

import (
	"context"
	"math"
	"math/rand"

	"github.com/dlevina/prediction-billing/internal/domain/entity"
	errs "github.com/dlevina/prediction-billing/internal/domain/error"
	classifierport "github.com/dlevina/prediction-billing/internal/domain/port/classifier"
	coreport "github.com/dlevina/prediction-billing/internal/domain/port/core"
)

const (
	numFeatures = 2
	numClasses  = 3
)

// Options controls training and billing of the iris model
type Options struct {
	// Cost is the flat per-call charge, e.g. "10.00"
	Cost string
	// Seed drives the train/test split so results are reproducible
	Seed int64
	// TrainFraction is the share of the dataset used for training
	TrainFraction float64
	// Epochs is the number of full gradient descent passes
	Epochs int
	// LearningRate is the gradient descent step size
	LearningRate float64
}

// SoftmaxClassifier is a multinomial logistic regression over the two
// petal measurements, trained once at construction on the embedded
// iris dataset
type SoftmaxClassifier struct {
	weights     [numClasses][numFeatures]float64
	biases      [numClasses]float64
	featureMean [numFeatures]float64
	featureStd  [numFeatures]float64
	costInCents int64
	accuracy    float64
	opts        Options
	logger      coreport.Logger
}

// NewSoftmaxClassifier trains the model and reports its held-out accuracy
func NewSoftmaxClassifier(opts Options, logger coreport.Logger) (*SoftmaxClassifier, error) {
	costInCents, err := entity.ValidateAndConvertAmount(opts.Cost)
	if err != nil {
		return nil, err
	}
	if opts.TrainFraction <= 0 || opts.TrainFraction > 1 {
		opts.TrainFraction = 0.5
	}
	if opts.Epochs <= 0 {
		opts.Epochs = 400
	}
	if opts.LearningRate <= 0 {
		opts.LearningRate = 0.1
	}

	c := &SoftmaxClassifier{
		costInCents: costInCents,
		opts:        opts,
		logger:      logger,
	}
	c.Retrain()

	return c, nil
}

// Retrain discards the fitted parameters and trains from scratch on a
// fresh split. The same options give the same model, so this is only
// observable after the embedded dataset or options change.
func (c *SoftmaxClassifier) Retrain() {
	c.weights = [numClasses][numFeatures]float64{}
	c.biases = [numClasses]float64{}
	c.featureMean = [numFeatures]float64{}
	c.featureStd = [numFeatures]float64{}

	train, test := splitDataset(c.opts.Seed, c.opts.TrainFraction)
	c.fitScaler(train)
	c.fit(train, c.opts.Epochs, c.opts.LearningRate)
	c.accuracy = c.evaluate(test)

	c.logger.Info("Iris classifier trained", map[string]any{
		"train_samples": len(train),
		"test_samples":  len(test),
		"accuracy":      c.accuracy,
		"cost":          entity.AmountInCentsToString(c.costInCents),
	})
}

// splitDataset shuffles the embedded dataset with the given seed and
// splits it into train and test partitions
func splitDataset(seed int64, trainFraction float64) (train, test []irisSample) {
	shuffled := make([]irisSample, len(irisDataset))
	copy(shuffled, irisDataset)

	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	cut := int(float64(len(shuffled)) * trainFraction)
	if cut == 0 {
		cut = 1
	}
	return shuffled[:cut], shuffled[cut:]
}

// fitScaler computes per-feature mean and standard deviation from the
// training partition
func (c *SoftmaxClassifier) fitScaler(train []irisSample) {
	n := float64(len(train))
	for _, s := range train {
		c.featureMean[0] += s.petalLength
		c.featureMean[1] += s.petalWidth
	}
	c.featureMean[0] /= n
	c.featureMean[1] /= n

	for _, s := range train {
		d0 := s.petalLength - c.featureMean[0]
		d1 := s.petalWidth - c.featureMean[1]
		c.featureStd[0] += d0 * d0
		c.featureStd[1] += d1 * d1
	}
	c.featureStd[0] = math.Sqrt(c.featureStd[0] / n)
	c.featureStd[1] = math.Sqrt(c.featureStd[1] / n)

	// Degenerate training sets would otherwise divide by zero
	for i := range c.featureStd {
		if c.featureStd[i] == 0 {
			c.featureStd[i] = 1
		}
	}
}

// scale standardizes one observation
func (c *SoftmaxClassifier) scale(petalLength, petalWidth float64) [numFeatures]float64 {
	return [numFeatures]float64{
		(petalLength - c.featureMean[0]) / c.featureStd[0],
		(petalWidth - c.featureMean[1]) / c.featureStd[1],
	}
}

// fit trains the model with full-batch gradient descent
func (c *SoftmaxClassifier) fit(train []irisSample, epochs int, learningRate float64) {
	n := float64(len(train))

	for epoch := 0; epoch < epochs; epoch++ {
		var gradW [numClasses][numFeatures]float64
		var gradB [numClasses]float64

		for _, s := range train {
			x := c.scale(s.petalLength, s.petalWidth)
			probs := c.probabilities(x)

			for class := 0; class < numClasses; class++ {
				diff := probs[class]
				if class == s.class {
					diff -= 1
				}
				gradW[class][0] += diff * x[0]
				gradW[class][1] += diff * x[1]
				gradB[class] += diff
			}
		}

		for class := 0; class < numClasses; class++ {
			c.weights[class][0] -= learningRate * gradW[class][0] / n
			c.weights[class][1] -= learningRate * gradW[class][1] / n
			c.biases[class] -= learningRate * gradB[class] / n
		}
	}
}

// probabilities computes the softmax class distribution for scaled features
func (c *SoftmaxClassifier) probabilities(x [numFeatures]float64) [numClasses]float64 {
	var logits [numClasses]float64
	maxLogit := math.Inf(-1)
	for class := 0; class < numClasses; class++ {
		logits[class] = c.weights[class][0]*x[0] + c.weights[class][1]*x[1] + c.biases[class]
		if logits[class] > maxLogit {
			maxLogit = logits[class]
		}
	}

	// Subtract the max logit so the exponentials can't overflow
	var probs [numClasses]float64
	var sum float64
	for class := 0; class < numClasses; class++ {
		probs[class] = math.Exp(logits[class] - maxLogit)
		sum += probs[class]
	}
	for class := 0; class < numClasses; class++ {
		probs[class] /= sum
	}
	return probs
}

// evaluate returns accuracy on the given partition
func (c *SoftmaxClassifier) evaluate(test []irisSample) float64 {
	if len(test) == 0 {
		return 0
	}
	correct := 0
	for _, s := range test {
		if c.classify(s.petalLength, s.petalWidth) == speciesLabels[s.class] {
			correct++
		}
	}
	return float64(correct) / float64(len(test))
}

// classify returns the label for one observation
func (c *SoftmaxClassifier) classify(petalLength, petalWidth float64) string {
	if math.IsNaN(petalLength) || math.IsInf(petalLength, 0) ||
		math.IsNaN(petalWidth) || math.IsInf(petalWidth, 0) {
		return UnknownLabel
	}

	probs := c.probabilities(c.scale(petalLength, petalWidth))
	best := -1
	bestProb := math.NaN()
	for class := 0; class < numClasses; class++ {
		if math.IsNaN(probs[class]) {
			return UnknownLabel
		}
		if best == -1 || probs[class] > bestProb {
			best = class
			bestProb = probs[class]
		}
	}

	if best < 0 || best >= len(speciesLabels) {
		return UnknownLabel
	}
	return speciesLabels[best]
}

// Predict returns one label per input sample, in order
func (c *SoftmaxClassifier) Predict(ctx context.Context, samples []classifierport.Sample) ([]string, error) {
	if len(samples) == 0 {
		return nil, errs.NewClassifierError("no samples to classify", nil)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	labels := make([]string, len(samples))
	for i, s := range samples {
		labels[i] = c.classify(s.PetalLength, s.PetalWidth)
	}
	return labels, nil
}

// CostInCents returns the flat charge for one Predict call
func (c *SoftmaxClassifier) CostInCents() int64 {
	return c.costInCents
}

// Name returns a short identifier of the underlying model
func (c *SoftmaxClassifier) Name() string {
	return "iris-softmax"
}

// Labels returns the species labels the model can produce
func (c *SoftmaxClassifier) Labels() []string {
	labels := make([]string, len(speciesLabels))
	copy(labels, speciesLabels)
	return labels
}

// Accuracy returns the held-out accuracy measured after training
func (c *SoftmaxClassifier) Accuracy() float64 {
	return c.accuracy
}
