package classifier

// irisSample is one labeled observation from Fisher's iris dataset,
// reduced to the two petal measurements the model trains on
type irisSample struct {
	petalLength float64
	petalWidth  float64
	class       int
}

// Class indices into speciesLabels
const (
	classSetosa = iota
	classVersicolor
	classVirginica
)

// speciesLabels maps class indices to API labels
var speciesLabels = []string{"setosa", "versicolor", "virginica"}

// UnknownLabel is returned when the model cannot produce a known species
const UnknownLabel = "unknown"

// irisDataset is the full 150-sample iris dataset, embedded so training
// is deterministic and needs no files at runtime
var irisDataset = []irisSample{
	{1.4, 0.2, classSetosa}, {1.4, 0.2, classSetosa}, {1.3, 0.2, classSetosa},
	{1.5, 0.2, classSetosa}, {1.4, 0.2, classSetosa}, {1.7, 0.4, classSetosa},
	{1.4, 0.3, classSetosa}, {1.5, 0.2, classSetosa}, {1.4, 0.2, classSetosa},
	{1.5, 0.1, classSetosa}, {1.5, 0.2, classSetosa}, {1.6, 0.2, classSetosa},
	{1.4, 0.1, classSetosa}, {1.1, 0.1, classSetosa}, {1.2, 0.2, classSetosa},
	{1.5, 0.4, classSetosa}, {1.3, 0.4, classSetosa}, {1.4, 0.3, classSetosa},
	{1.7, 0.3, classSetosa}, {1.5, 0.3, classSetosa}, {1.7, 0.2, classSetosa},
	{1.5, 0.4, classSetosa}, {1.0, 0.2, classSetosa}, {1.7, 0.5, classSetosa},
	{1.9, 0.2, classSetosa}, {1.6, 0.2, classSetosa}, {1.6, 0.4, classSetosa},
	{1.5, 0.2, classSetosa}, {1.4, 0.2, classSetosa}, {1.6, 0.2, classSetosa},
	{1.6, 0.2, classSetosa}, {1.5, 0.4, classSetosa}, {1.5, 0.1, classSetosa},
	{1.4, 0.2, classSetosa}, {1.5, 0.2, classSetosa}, {1.2, 0.2, classSetosa},
	{1.3, 0.2, classSetosa}, {1.4, 0.1, classSetosa}, {1.3, 0.2, classSetosa},
	{1.5, 0.2, classSetosa}, {1.3, 0.3, classSetosa}, {1.3, 0.3, classSetosa},
	{1.3, 0.2, classSetosa}, {1.6, 0.6, classSetosa}, {1.9, 0.4, classSetosa},
	{1.4, 0.3, classSetosa}, {1.6, 0.2, classSetosa}, {1.4, 0.2, classSetosa},
	{1.5, 0.2, classSetosa}, {1.4, 0.2, classSetosa},

	{4.7, 1.4, classVersicolor}, {4.5, 1.5, classVersicolor}, {4.9, 1.5, classVersicolor},
	{4.0, 1.3, classVersicolor}, {4.6, 1.5, classVersicolor}, {4.5, 1.3, classVersicolor},
	{4.7, 1.6, classVersicolor}, {3.3, 1.0, classVersicolor}, {4.6, 1.3, classVersicolor},
	{3.9, 1.4, classVersicolor}, {3.5, 1.0, classVersicolor}, {4.2, 1.5, classVersicolor},
	{4.0, 1.0, classVersicolor}, {4.7, 1.4, classVersicolor}, {3.6, 1.3, classVersicolor},
	{4.4, 1.4, classVersicolor}, {4.5, 1.5, classVersicolor}, {4.1, 1.0, classVersicolor},
	{4.5, 1.5, classVersicolor}, {3.9, 1.1, classVersicolor}, {4.8, 1.8, classVersicolor},
	{4.0, 1.3, classVersicolor}, {4.9, 1.5, classVersicolor}, {4.7, 1.2, classVersicolor},
	{4.3, 1.3, classVersicolor}, {4.4, 1.4, classVersicolor}, {4.8, 1.4, classVersicolor},
	{5.0, 1.7, classVersicolor}, {4.5, 1.5, classVersicolor}, {3.5, 1.0, classVersicolor},
	{3.8, 1.1, classVersicolor}, {3.7, 1.0, classVersicolor}, {3.9, 1.2, classVersicolor},
	{5.1, 1.6, classVersicolor}, {4.5, 1.5, classVersicolor}, {4.5, 1.6, classVersicolor},
	{4.7, 1.5, classVersicolor}, {4.4, 1.3, classVersicolor}, {4.1, 1.3, classVersicolor},
	{4.0, 1.3, classVersicolor}, {4.4, 1.2, classVersicolor}, {4.6, 1.4, classVersicolor},
	{4.0, 1.2, classVersicolor}, {3.3, 1.0, classVersicolor}, {4.2, 1.3, classVersicolor},
	{4.2, 1.2, classVersicolor}, {4.2, 1.3, classVersicolor}, {4.3, 1.3, classVersicolor},
	{3.0, 1.1, classVersicolor}, {4.1, 1.3, classVersicolor},

	{6.0, 2.5, classVirginica}, {5.1, 1.9, classVirginica}, {5.9, 2.1, classVirginica},
	{5.6, 1.8, classVirginica}, {5.8, 2.2, classVirginica}, {6.6, 2.1, classVirginica},
	{4.5, 1.7, classVirginica}, {6.3, 1.8, classVirginica}, {5.8, 1.8, classVirginica},
	{6.1, 2.5, classVirginica}, {5.1, 2.0, classVirginica}, {5.3, 1.9, classVirginica},
	{5.5, 2.1, classVirginica}, {5.0, 2.0, classVirginica}, {5.1, 2.4, classVirginica},
	{5.3, 2.3, classVirginica}, {5.5, 1.8, classVirginica}, {6.7, 2.2, classVirginica},
	{6.9, 2.3, classVirginica}, {5.0, 1.5, classVirginica}, {5.7, 2.3, classVirginica},
	{4.9, 2.0, classVirginica}, {6.7, 2.0, classVirginica}, {4.9, 1.8, classVirginica},
	{5.7, 2.1, classVirginica}, {6.0, 1.8, classVirginica}, {4.8, 1.8, classVirginica},
	{4.9, 1.8, classVirginica}, {5.6, 2.1, classVirginica}, {5.8, 1.6, classVirginica},
	{6.1, 1.9, classVirginica}, {6.4, 2.0, classVirginica}, {5.6, 2.2, classVirginica},
	{5.1, 1.5, classVirginica}, {5.6, 1.4, classVirginica}, {6.1, 2.3, classVirginica},
	{5.6, 2.4, classVirginica}, {5.5, 1.8, classVirginica}, {4.8, 1.8, classVirginica},
	{5.4, 2.1, classVirginica}, {5.6, 2.4, classVirginica}, {5.1, 2.3, classVirginica},
	{5.1, 1.9, classVirginica}, {5.9, 2.3, classVirginica}, {5.7, 2.5, classVirginica},
	{5.2, 2.3, classVirginica}, {5.0, 1.9, classVirginica}, {5.2, 2.0, classVirginica},
	{5.4, 2.3, classVirginica}, {5.1, 1.8, classVirginica},
}
