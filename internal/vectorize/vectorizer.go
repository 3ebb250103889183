// Package vectorize implements a TF-IDF vectorizer over normalized
// transaction text. Vectors are sparse token→weight maps, L2-normalized.
package vectorize

import (
	"errors"
	"math"
	"sort"

	"github.com/smartbudget/categorizer/internal/text"
)

// ErrNotRefittable is returned when Fit is called on a vectorizer built
// from a foreign import. A foreign snapshot carries only vocabulary and
// IDF scores - without the raw document frequencies the corpus statistics
// cannot be rebuilt, so the vectorizer is transform-only.
var ErrNotRefittable = errors.New("foreign vectorizer cannot be re-fit")

// Vector is a sparse tf-idf weighted document representation. A vector
// with no entries means the document carried no in-vocabulary signal;
// downstream consumers treat that as low confidence rather than an error.
type Vector map[string]float64

// Feature pairs a token with its weight, for explainability output.
type Feature struct {
	Token  string
	Weight float64
}

// Vectorizer holds the corpus statistics needed to weight documents.
type Vectorizer struct {
	vocabulary map[string]struct{}
	idf        map[string]float64
	docFreq    map[string]int
	docCount   int
	refittable bool
}

// New creates an empty, fittable vectorizer.
func New() *Vectorizer {
	return &Vectorizer{
		vocabulary: make(map[string]struct{}),
		idf:        make(map[string]float64),
		docFreq:    make(map[string]int),
		refittable: true,
	}
}

// Fit rebuilds the vocabulary, document frequencies and IDF scores from a
// corpus of raw documents. Previous state is discarded wholesale.
func (v *Vectorizer) Fit(corpus []string) error {
	if !v.refittable {
		return ErrNotRefittable
	}

	docFreq := make(map[string]int)
	for _, doc := range corpus {
		seen := make(map[string]struct{})
		for _, tok := range text.Tokenize(doc) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			docFreq[tok]++
		}
	}

	n := float64(len(corpus))
	vocabulary := make(map[string]struct{}, len(docFreq))
	idf := make(map[string]float64, len(docFreq))
	for tok, df := range docFreq {
		vocabulary[tok] = struct{}{}
		// Laplace-smoothed: strictly positive and safe for N=0.
		idf[tok] = math.Log((n+1)/float64(df+1)) + 1
	}

	v.vocabulary = vocabulary
	v.idf = idf
	v.docFreq = docFreq
	v.docCount = len(corpus)
	return nil
}

// Transform converts a raw document into its sparse tf-idf vector.
// Out-of-vocabulary tokens are dropped, not bucketed. The result is
// L2-normalized; a document with zero in-vocabulary weight yields an
// empty vector.
func (v *Vectorizer) Transform(doc string) Vector {
	tokens := text.Tokenize(doc)
	if len(tokens) == 0 {
		return Vector{}
	}

	counts := make(map[string]int)
	for _, tok := range tokens {
		if _, ok := v.vocabulary[tok]; ok {
			counts[tok]++
		}
	}

	// Accumulate in sorted token order so repeated calls are
	// bit-identical: float addition is not associative, and map
	// iteration order varies between calls.
	present := make([]string, 0, len(counts))
	for tok := range counts {
		present = append(present, tok)
	}
	sort.Strings(present)

	total := float64(len(tokens))
	vec := make(Vector, len(counts))
	var norm float64
	for _, tok := range present {
		// Sublinear term frequency
		tf := (1 + math.Log(float64(counts[tok]))) / total
		w := tf * v.idf[tok]
		vec[tok] = w
		norm += w * w
	}

	if norm == 0 {
		return Vector{}
	}
	norm = math.Sqrt(norm)
	for _, tok := range present {
		vec[tok] /= norm
	}
	return vec
}

// VocabularySize returns the number of known tokens.
func (v *Vectorizer) VocabularySize() int {
	return len(v.vocabulary)
}

// DocumentCount returns the number of documents seen during Fit.
func (v *Vectorizer) DocumentCount() int {
	return v.docCount
}

// Refittable reports whether Fit may be called. False for vectorizers
// restored from a foreign import.
func (v *Vectorizer) Refittable() bool {
	return v.refittable
}

// TopFeatures returns the n highest-weight tokens of a vector, used only
// for explainability.
func TopFeatures(vec Vector, n int) []Feature {
	features := make([]Feature, 0, len(vec))
	for tok, w := range vec {
		features = append(features, Feature{Token: tok, Weight: w})
	}
	sort.Slice(features, func(i, j int) bool {
		if features[i].Weight != features[j].Weight {
			return features[i].Weight > features[j].Weight
		}
		return features[i].Token < features[j].Token
	})
	if n < len(features) {
		features = features[:n]
	}
	return features
}
