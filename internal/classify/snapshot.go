package classify

// Snapshot is the lossless serialized form of a classifier: weight
// tables, hyperparameters and the foreign-mode flag.
type Snapshot struct {
	Weights        map[string]ClassWeights `json:"weights"`
	Categories     []string                `json:"categories"`
	LearningRate   float64                 `json:"learningRate"`
	Regularization float64                 `json:"regularization"`
	IsForeignModel bool                    `json:"isForeignModel"`
}

// Snapshot captures the classifier state.
func (c *Classifier) Snapshot() Snapshot {
	return Snapshot{
		Weights:        cloneWeights(c.weights),
		Categories:     c.Categories(),
		LearningRate:   c.learningRate,
		Regularization: c.regularization,
		IsForeignModel: c.foreign,
	}
}

// FromSnapshot restores a classifier. Predict output is bit-identical
// to the classifier the snapshot was taken from.
func FromSnapshot(s Snapshot) *Classifier {
	c := New()
	c.weights = cloneWeights(s.Weights)
	c.categories = uniqueSorted(s.Categories)
	if s.LearningRate > 0 {
		c.learningRate = s.LearningRate
	}
	if s.Regularization > 0 {
		c.regularization = s.Regularization
	}
	c.foreign = s.IsForeignModel
	return c
}
