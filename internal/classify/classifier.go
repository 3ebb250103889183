// Package classify implements a multi-class softmax logistic-regression
// classifier over sparse tf-idf vectors, trained by mini-batch gradient
// descent.
package classify

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/smartbudget/categorizer/internal/model"
	"github.com/smartbudget/categorizer/internal/vectorize"
)

// Training schedule. The fixed (non-adaptive) schedule is part of the
// model's contract: changing it changes the loss curve and convergence,
// so snapshots from different schedules are not comparable.
const (
	maxPasses    = 100
	maxBatchSize = 32
	lrDecay      = 0.995
	lossTarget   = 0.01

	defaultLearningRate   = 0.1
	defaultRegularization = 0.01

	// weightInitRange bounds the uniform random weight initialization.
	weightInitRange = 0.005

	// expClip bounds softmax exponent arguments. Together with the
	// epsilon denominator this prevents overflow and division by zero
	// structurally - a NaN that slipped into the weight table would
	// silently corrupt every later update.
	expClip = 20.0
	epsilon = 1e-10
)

// ErrNoExamples is returned when Train is called with an empty set.
var ErrNoExamples = errors.New("no training examples")

// ClassWeights holds one category's weight vector and bias. The key set
// is fixed at training time: features unseen during training are
// structurally ignored at inference.
type ClassWeights struct {
	Weights map[string]float64 `json:"weights"`
	Bias    float64            `json:"bias"`
}

// Classifier scores documents against per-category weight tables and
// produces calibrated probabilities via softmax.
type Classifier struct {
	// Progress, if set, is called after every completed training pass
	// with the 1-based pass number and the pass-average loss.
	Progress func(pass int, avgLoss float64)

	weights        map[string]ClassWeights
	rng            *rand.Rand
	categories     []string
	learningRate   float64
	regularization float64
	foreign        bool
}

// New creates an untrained classifier with the default hyperparameters.
func New() *Classifier {
	return NewSeeded(rand.Int63())
}

// NewSeeded creates an untrained classifier whose weight initialization
// and shuffle order are driven by the given seed. Used by tests that
// need reproducible training runs.
func NewSeeded(seed int64) *Classifier {
	return &Classifier{
		weights:        make(map[string]ClassWeights),
		rng:            rand.New(rand.NewSource(seed)), //nolint:gosec // not used for security
		learningRate:   defaultLearningRate,
		regularization: defaultRegularization,
	}
}

// Train fits the weight tables from scratch on the given vectors and
// labels. Any previous weights are discarded. The context is checked
// between passes; on cancellation the classifier is left untouched so a
// partially trained table can never be observed.
func (c *Classifier) Train(ctx context.Context, vectors []vectorize.Vector, labels []string) error {
	if len(vectors) == 0 {
		return ErrNoExamples
	}
	if len(vectors) != len(labels) {
		return fmt.Errorf("got %d vectors but %d labels", len(vectors), len(labels))
	}

	categories := uniqueSorted(labels)

	// One weight per (category, feature) pair over the union of all
	// features seen in training.
	features := make(map[string]struct{})
	for _, vec := range vectors {
		for tok := range vec {
			features[tok] = struct{}{}
		}
	}

	weights := make(map[string]ClassWeights, len(categories))
	for _, cat := range categories {
		w := make(map[string]float64, len(features))
		for tok := range features {
			w[tok] = (c.rng.Float64() - 0.5) * 2 * weightInitRange
		}
		weights[cat] = ClassWeights{Weights: w}
	}

	n := len(vectors)
	batchSize := maxBatchSize
	if n/4 < batchSize {
		batchSize = n / 4
	}
	if batchSize < 1 {
		batchSize = 1
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	lr := c.learningRate
	for pass := 0; pass < maxPasses; pass++ {
		// Training either runs to completion or is discarded whole;
		// there is no partial-weight commit.
		if err := ctx.Err(); err != nil {
			return err
		}

		c.rng.Shuffle(n, func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})

		var totalLoss float64
		for start := 0; start < n; start += batchSize {
			end := start + batchSize
			if end > n {
				end = n
			}
			for _, idx := range order[start:end] {
				vec, label := vectors[idx], labels[idx]
				probs := softmaxScores(weights, categories, vec)
				totalLoss += -math.Log(probs[label] + epsilon)

				for _, cat := range categories {
					gradErr := probs[cat]
					if cat == label {
						gradErr -= 1
					}
					cw := weights[cat]
					for tok, val := range vec {
						w := cw.Weights[tok]
						cw.Weights[tok] = w - lr*(gradErr*val+c.regularization*w)
					}
					cw.Bias -= lr * gradErr
					weights[cat] = cw
				}
			}
		}

		avgLoss := totalLoss / float64(n)
		if c.Progress != nil {
			c.Progress(pass+1, avgLoss)
		}
		if avgLoss < lossTarget {
			break
		}
		lr *= lrDecay
	}

	c.weights = weights
	c.categories = categories
	c.foreign = false
	return nil
}

// Score computes the raw (pre-softmax) score of a vector for one
// category: bias plus the dot product over tokens present in both the
// category's weight map and the vector. Absent features contribute zero
// - a deliberate closed-world policy, not an oversight.
func (c *Classifier) Score(category string, vec vectorize.Vector) float64 {
	cw, ok := c.weights[category]
	if !ok {
		return 0
	}
	return rawScore(cw, sortedTokens(vec), vec)
}

// Predict returns the argmax category, its probability as confidence,
// and the full probability map over all categories.
func (c *Classifier) Predict(vec vectorize.Vector) (category string, confidence float64, probs map[string]float64) {
	probs = softmaxScores(c.weights, c.categories, vec)
	for _, cat := range c.categories {
		if category == "" || probs[cat] > confidence {
			category = cat
			confidence = probs[cat]
		}
	}
	return category, confidence, probs
}

// Categories returns the categories the classifier was trained on.
func (c *Classifier) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// Trained reports whether the classifier holds any weights.
func (c *Classifier) Trained() bool {
	return len(c.categories) > 0
}

// IsForeign reports whether the active weight table was imported rather
// than trained locally. Affects the reported prediction method and the
// retrain cadence.
func (c *Classifier) IsForeign() bool {
	return c.foreign
}

// LoadForeign replaces the weight tables with an externally supplied
// pretrained model, bypassing training, and flags the classifier as
// operating in foreign mode.
func (c *Classifier) LoadForeign(weights map[string]ClassWeights, categories []string) error {
	if len(weights) == 0 || len(categories) == 0 {
		return errors.New("foreign model has no weights")
	}
	for _, cat := range categories {
		if _, ok := weights[cat]; !ok {
			return fmt.Errorf("foreign model missing weights for category %q", cat)
		}
	}
	c.weights = cloneWeights(weights)
	c.categories = uniqueSorted(categories)
	c.foreign = true
	return nil
}

// FeatureImportance returns the n features with the largest absolute
// weight for a category, in descending magnitude.
func (c *Classifier) FeatureImportance(category string, n int) []model.FeatureWeight {
	cw, ok := c.weights[category]
	if !ok {
		return nil
	}
	out := make([]model.FeatureWeight, 0, len(cw.Weights))
	for tok, w := range cw.Weights {
		out = append(out, model.FeatureWeight{Feature: tok, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool {
		ai, aj := math.Abs(out[i].Weight), math.Abs(out[j].Weight)
		if ai != aj {
			return ai > aj
		}
		return out[i].Feature < out[j].Feature
	})
	if n < len(out) {
		out = out[:n]
	}
	return out
}

// softmaxScores converts raw per-category scores into a probability
// distribution. Exponent arguments are clipped to [-expClip, expClip]
// and the denominator carries an epsilon so the result is always a
// valid distribution, even for degenerate scores.
func softmaxScores(weights map[string]ClassWeights, categories []string, vec vectorize.Vector) map[string]float64 {
	tokens := sortedTokens(vec)
	probs := make(map[string]float64, len(categories))
	var sum float64
	for _, cat := range categories {
		score := rawScore(weights[cat], tokens, vec)
		if score > expClip {
			score = expClip
		} else if score < -expClip {
			score = -expClip
		}
		e := math.Exp(score)
		probs[cat] = e
		sum += e
	}
	sum += epsilon
	for cat := range probs {
		probs[cat] /= sum
	}
	return probs
}

// rawScore computes bias + Σ weight·value over the vector's tokens in
// sorted order, so repeated scoring of the same vector is bit-identical
// regardless of map iteration order.
func rawScore(cw ClassWeights, tokens []string, vec vectorize.Vector) float64 {
	score := cw.Bias
	for _, tok := range tokens {
		if w, present := cw.Weights[tok]; present {
			score += w * vec[tok]
		}
	}
	return score
}

func sortedTokens(vec vectorize.Vector) []string {
	tokens := make([]string, 0, len(vec))
	for tok := range vec {
		tokens = append(tokens, tok)
	}
	sort.Strings(tokens)
	return tokens
}

func uniqueSorted(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

func cloneWeights(weights map[string]ClassWeights) map[string]ClassWeights {
	out := make(map[string]ClassWeights, len(weights))
	for cat, cw := range weights {
		w := make(map[string]float64, len(cw.Weights))
		for tok, val := range cw.Weights {
			w[tok] = val
		}
		out[cat] = ClassWeights{Weights: w, Bias: cw.Bias}
	}
	return out
}
