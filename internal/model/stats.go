package model

import "time"

// ForeignMetadata describes an imported pretrained model.
type ForeignMetadata struct {
	Version         string  `json:"version"`
	Accuracy        float64 `json:"accuracy"`
	TrainingSamples int     `json:"training_samples"`
}

// Stats is a read-only snapshot of the engine's state for introspection.
type Stats struct {
	LastTrained     time.Time        `json:"lastTrained"`
	ModelSource     ModelSource      `json:"modelSource"`
	Categories      []string         `json:"categories"`
	ForeignMetadata *ForeignMetadata `json:"foreignMetadata,omitempty"`
	VocabularySize  int              `json:"vocabularySize"`
	ExampleCount    int              `json:"exampleCount"`
	Version         int              `json:"version"`
	IsForeignModel  bool             `json:"isForeignModel"`
}

// CategoryMetrics holds per-category evaluation counts.
type CategoryMetrics struct {
	Total   int `json:"total"`
	Correct int `json:"correct"`
}

// Evaluation reports how the current model performs against its own
// training log. Diagnostics only - never used to gate model selection.
type Evaluation struct {
	PerCategory map[string]CategoryMetrics `json:"perCategory"`
	ModelSource ModelSource                `json:"modelSource"`
	Accuracy    float64                    `json:"accuracy"`
	Correct     int                        `json:"correct"`
	Total       int                        `json:"total"`
}

// FeatureWeight is one entry in a feature-importance listing.
type FeatureWeight struct {
	Feature string  `json:"feature"`
	Weight  float64 `json:"weight"`
}
