package model

import (
	"fmt"
	"sort"
)

// PredictionMethod records which path produced a prediction.
type PredictionMethod string

const (
	// MethodNative means the locally trained classifier was confident enough.
	MethodNative PredictionMethod = "native"
	// MethodForeign means an imported pretrained classifier was used.
	MethodForeign PredictionMethod = "foreign"
	// MethodFallback means the keyword table answered, either because no
	// model exists yet or because classifier confidence was too low.
	MethodFallback PredictionMethod = "fallback"
)

// ModelSource tracks the provenance of the active model.
type ModelSource string

const (
	// SourceEmpty means no model has been built or loaded yet.
	SourceEmpty ModelSource = "empty"
	// SourceNative means the model was trained locally from the example log.
	SourceNative ModelSource = "native"
	// SourceForeign means the model was imported pretrained.
	SourceForeign ModelSource = "foreign"
	// SourceHybrid means a foreign model was imported and local examples
	// exist (or a retrain has folded them in).
	SourceHybrid ModelSource = "hybrid"
)

// Prediction is the engine's answer for a single transaction.
type Prediction struct {
	Category     string           `json:"category"`
	Method       PredictionMethod `json:"method"`
	Explanation  string           `json:"explanation,omitempty"`
	Alternatives CategoryRankings `json:"alternatives,omitempty"`
	TopFeatures  []string         `json:"topFeatures,omitempty"`
	Confidence   float64          `json:"confidence"`
}

// Validate ensures the prediction is well-formed.
func (p *Prediction) Validate() error {
	if p.Category == "" {
		return fmt.Errorf("prediction category is required")
	}
	if p.Confidence < 0.0 || p.Confidence > 1.0 {
		return fmt.Errorf("confidence must be between 0.0 and 1.0, got %.4f", p.Confidence)
	}
	switch p.Method {
	case MethodNative, MethodForeign, MethodFallback:
	default:
		return fmt.Errorf("unknown prediction method %q", p.Method)
	}
	return nil
}

// CategoryRanking scores how likely a transaction belongs to one category.
type CategoryRanking struct {
	Category    string  `json:"category"`
	Probability float64 `json:"probability"`
}

// CategoryRankings is a slice of CategoryRanking with sorting helpers.
type CategoryRankings []CategoryRanking

// Len implements sort.Interface.
func (r CategoryRankings) Len() int { return len(r) }

// Less implements sort.Interface - higher probabilities come first.
func (r CategoryRankings) Less(i, j int) bool {
	if r[i].Probability != r[j].Probability {
		return r[i].Probability > r[j].Probability
	}
	// Tie-break on name so ordering is deterministic
	return r[i].Category < r[j].Category
}

// Swap implements sort.Interface.
func (r CategoryRankings) Swap(i, j int) { r[i], r[j] = r[j], r[i] }

// Sort sorts the rankings by probability in descending order.
func (r CategoryRankings) Sort() { sort.Sort(r) }

// Top returns the highest-probability ranking, or nil if empty.
func (r CategoryRankings) Top() *CategoryRanking {
	if len(r) == 0 {
		return nil
	}
	r.Sort()
	return &r[0]
}

// TopN returns the N highest-probability rankings.
func (r CategoryRankings) TopN(n int) CategoryRankings {
	if n <= 0 {
		return CategoryRankings{}
	}
	r.Sort()
	if n > len(r) {
		n = len(r)
	}
	out := make(CategoryRankings, n)
	copy(out, r[:n])
	return out
}
