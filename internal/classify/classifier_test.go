package classify

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/smartbudget/categorizer/internal/vectorize"
)

// trainingSet builds a small separable corpus and returns the fitted
// vectorizer plus vectors and labels.
func trainingSet(t *testing.T) (*vectorize.Vectorizer, []vectorize.Vector, []string) {
	t.Helper()
	docs := []string{
		"swiggy food delivery lunch",
		"zomato restaurant dinner pizza",
		"uber ride airport cab",
		"ola cab office commute",
		"amazon purchase electronics order",
		"flipkart mobile phone purchase",
	}
	labels := []string{"Food", "Food", "Transportation", "Transportation", "Shopping", "Shopping"}

	v := vectorize.New()
	if err := v.Fit(docs); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}
	vectors := make([]vectorize.Vector, len(docs))
	for i, doc := range docs {
		vectors[i] = v.Transform(doc)
	}
	return v, vectors, labels
}

func trained(t *testing.T) (*vectorize.Vectorizer, *Classifier, []vectorize.Vector, []string) {
	t.Helper()
	v, vectors, labels := trainingSet(t)
	c := NewSeeded(42)
	if err := c.Train(context.Background(), vectors, labels); err != nil {
		t.Fatalf("Train failed: %v", err)
	}
	return v, c, vectors, labels
}

func TestTrainEmptySet(t *testing.T) {
	c := New()
	err := c.Train(context.Background(), nil, nil)
	if !errors.Is(err, ErrNoExamples) {
		t.Errorf("Train(empty) = %v, want ErrNoExamples", err)
	}
}

func TestTrainMismatchedLabels(t *testing.T) {
	c := New()
	err := c.Train(context.Background(), []vectorize.Vector{{"a": 1}}, []string{"x", "y"})
	if err == nil {
		t.Error("expected error for mismatched vectors/labels")
	}
}

func TestPredictProbabilitiesWellFormed(t *testing.T) {
	_, c, vectors, _ := trained(t)

	for i, vec := range vectors {
		category, confidence, probs := c.Predict(vec)

		var sum float64
		best, bestP := "", -1.0
		for cat, p := range probs {
			if p < 0 || p > 1 {
				t.Errorf("vector %d: p[%s] = %v outside [0,1]", i, cat, p)
			}
			sum += p
			if p > bestP {
				best, bestP = cat, p
			}
		}
		if math.Abs(sum-1.0) > 1e-6 {
			t.Errorf("vector %d: probabilities sum to %v, want 1.0 ± 1e-6", i, sum)
		}
		if category != best {
			t.Errorf("vector %d: reported category %q is not the argmax %q", i, category, best)
		}
		if math.Abs(confidence-bestP) > 1e-12 {
			t.Errorf("vector %d: confidence %v != argmax probability %v", i, confidence, bestP)
		}
	}
}

func TestTrainLearnsSeparableData(t *testing.T) {
	_, c, vectors, labels := trained(t)
	correct := 0
	for i, vec := range vectors {
		if cat, _, _ := c.Predict(vec); cat == labels[i] {
			correct++
		}
	}
	if correct != len(vectors) {
		t.Errorf("trained classifier got %d/%d on its own separable training set", correct, len(vectors))
	}
}

func TestTrainDeterministicWithSeed(t *testing.T) {
	_, vectors, labels := trainingSet(t)

	a := NewSeeded(7)
	b := NewSeeded(7)
	if err := a.Train(context.Background(), vectors, labels); err != nil {
		t.Fatalf("Train failed: %v", err)
	}
	if err := b.Train(context.Background(), vectors, labels); err != nil {
		t.Fatalf("Train failed: %v", err)
	}

	for _, vec := range vectors {
		_, confA, _ := a.Predict(vec)
		_, confB, _ := b.Predict(vec)
		if confA != confB {
			t.Fatalf("same seed produced different confidences: %v vs %v", confA, confB)
		}
	}
}

func TestTrainCancellation(t *testing.T) {
	_, vectors, labels := trainingSet(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewSeeded(1)
	err := c.Train(ctx, vectors, labels)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Train with canceled context = %v, want context.Canceled", err)
	}
	// No partial-weight commit
	if c.Trained() {
		t.Error("canceled training must leave the classifier untouched")
	}
}

func TestClosedWorldScoring(t *testing.T) {
	_, c, _, _ := trained(t)

	base := c.Score("Food", vectorize.Vector{"swiggy": 1.0})
	// A feature unseen at training time contributes exactly zero.
	withUnknown := c.Score("Food", vectorize.Vector{"swiggy": 1.0, "neverseen": 5.0})
	if base != withUnknown {
		t.Errorf("unseen feature changed score: %v vs %v", base, withUnknown)
	}
}

func TestSoftmaxStability(t *testing.T) {
	// Degenerate weights that would overflow exp without clipping.
	weights := map[string]ClassWeights{
		"A": {Weights: map[string]float64{"x": 1e6}, Bias: 1e6},
		"B": {Weights: map[string]float64{"x": -1e6}, Bias: -1e6},
	}
	c := New()
	if err := c.LoadForeign(weights, []string{"A", "B"}); err != nil {
		t.Fatalf("LoadForeign failed: %v", err)
	}

	_, confidence, probs := c.Predict(vectorize.Vector{"x": 1.0})
	var sum float64
	for cat, p := range probs {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			t.Fatalf("p[%s] = %v, numeric instability leaked", cat, p)
		}
		sum += p
	}
	if math.Abs(sum-1.0) > 1e-6 {
		t.Errorf("probabilities sum to %v under extreme scores", sum)
	}
	if math.IsNaN(confidence) {
		t.Error("confidence is NaN")
	}
}

func TestPredictEmptyVector(t *testing.T) {
	_, c, _, _ := trained(t)
	category, confidence, probs := c.Predict(vectorize.Vector{})
	if category == "" {
		t.Error("empty vector must still yield the bias argmax")
	}
	var sum float64
	for _, p := range probs {
		sum += p
	}
	if math.Abs(sum-1.0) > 1e-6 {
		t.Errorf("probabilities sum to %v for empty vector", sum)
	}
	if confidence < 0 || confidence > 1 {
		t.Errorf("confidence %v outside [0,1]", confidence)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	_, c, vectors, _ := trained(t)

	blob, err := json.Marshal(c.Snapshot())
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(blob, &snap); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	restored := FromSnapshot(snap)

	for i, vec := range vectors {
		catA, confA, _ := c.Predict(vec)
		catB, confB, _ := restored.Predict(vec)
		if catA != catB {
			t.Errorf("vector %d: category %q != %q after round-trip", i, catA, catB)
		}
		if confA != confB {
			t.Errorf("vector %d: confidence %v != %v after round-trip", i, confA, confB)
		}
	}
	if restored.IsForeign() != c.IsForeign() {
		t.Error("foreign flag lost in round-trip")
	}
}

func TestLoadForeign(t *testing.T) {
	weights := map[string]ClassWeights{
		"Food":     {Weights: map[string]float64{"swiggy": 2.0}, Bias: 0.1},
		"Shopping": {Weights: map[string]float64{"amazon": 2.0}, Bias: 0.1},
	}
	c := New()
	if err := c.LoadForeign(weights, []string{"Food", "Shopping"}); err != nil {
		t.Fatalf("LoadForeign failed: %v", err)
	}
	if !c.IsForeign() {
		t.Error("classifier must flag foreign mode")
	}
	if cat, _, _ := c.Predict(vectorize.Vector{"swiggy": 1.0}); cat != "Food" {
		t.Errorf("Predict = %q, want Food", cat)
	}

	if err := New().LoadForeign(nil, nil); err == nil {
		t.Error("expected error for empty foreign weights")
	}
	missing := map[string]ClassWeights{"Food": {Weights: map[string]float64{}}}
	if err := New().LoadForeign(missing, []string{"Food", "Ghost"}); err == nil {
		t.Error("expected error for category without weights")
	}
}

func TestFeatureImportance(t *testing.T) {
	weights := map[string]ClassWeights{
		"Food": {Weights: map[string]float64{"swiggy": 2.0, "zomato": -3.0, "lunch": 0.5}},
	}
	c := New()
	if err := c.LoadForeign(weights, []string{"Food"}); err != nil {
		t.Fatalf("LoadForeign failed: %v", err)
	}

	top := c.FeatureImportance("Food", 2)
	if len(top) != 2 {
		t.Fatalf("len = %d, want 2", len(top))
	}
	// Ranked by absolute magnitude
	if top[0].Feature != "zomato" || top[1].Feature != "swiggy" {
		t.Errorf("FeatureImportance = %v", top)
	}
	if c.FeatureImportance("Unknown", 5) != nil {
		t.Error("unknown category should yield nil")
	}
}
