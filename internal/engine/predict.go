package engine

import (
	"fmt"

	"github.com/smartbudget/categorizer/internal/model"
	"github.com/smartbudget/categorizer/internal/vectorize"
)

// Predict categorizes a transaction. It never fails: before any model
// exists, and whenever classifier confidence falls below the threshold,
// the keyword fallback answers instead.
func (e *Engine) Predict(description, merchant string, amount float64) model.Prediction {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.classifier == nil || !e.classifier.Trained() {
		return e.fallbackPrediction(description, merchant)
	}

	doc := compositeDocument(description, merchant, amount)
	vec := e.vectorizer.Transform(doc)
	category, confidence, probs := e.classifier.Predict(vec)

	switch {
	case e.classifier.IsForeign():
		return e.modelPrediction(model.MethodForeign, category, confidence, probs, vec)
	case confidence >= e.cfg.ConfidenceThreshold:
		return e.modelPrediction(model.MethodNative, category, confidence, probs, vec)
	default:
		return e.fallbackPrediction(description, merchant)
	}
}

// modelPrediction assembles a classifier-backed prediction with ranked
// alternatives and explainability features. Caller holds at least mu.RLock.
func (e *Engine) modelPrediction(method model.PredictionMethod, category string, confidence float64, probs map[string]float64, vec vectorize.Vector) model.Prediction {
	alternatives := make(model.CategoryRankings, 0, len(probs))
	for cat, p := range probs {
		if cat == category {
			continue
		}
		alternatives = append(alternatives, model.CategoryRanking{Category: cat, Probability: p})
	}
	alternatives = alternatives.TopN(e.cfg.AlternativeCount)

	features := vectorize.TopFeatures(vec, e.cfg.TopFeatureCount)
	tokens := make([]string, len(features))
	for i, f := range features {
		tokens[i] = f.Token
	}

	return model.Prediction{
		Category:     category,
		Confidence:   confidence,
		Method:       method,
		Alternatives: alternatives,
		TopFeatures:  tokens,
		Explanation:  fmt.Sprintf("%s classifier probability %.2f", method, confidence),
	}
}

// fallbackPrediction answers from the keyword table.
func (e *Engine) fallbackPrediction(description, merchant string) model.Prediction {
	result := e.keywords.Categorize(description + " " + merchant)
	explanation := "no keyword match"
	if result.Keyword != "" {
		explanation = fmt.Sprintf("matched keyword %q", result.Keyword)
	}
	return model.Prediction{
		Category:    result.Category,
		Confidence:  result.Confidence,
		Method:      model.MethodFallback,
		Explanation: explanation,
	}
}
