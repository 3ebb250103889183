package engine

import (
	"context"
	"time"

	"github.com/smartbudget/categorizer/internal/common"
	"github.com/smartbudget/categorizer/internal/model"
	"github.com/smartbudget/categorizer/internal/store"
)

// ImportForeignModel installs an externally trained model from its JSON
// export. Unlike every other entry point this one surfaces errors: the
// caller handed over the blob explicitly and needs to know if it was
// rejected. With local examples already accumulated the engine moves
// straight to hybrid provenance.
func (e *Engine) ImportForeignModel(ctx context.Context, blob []byte) error {
	foreign, err := store.DecodeForeign(blob)
	if err != nil {
		return err
	}

	e.mu.Lock()
	err = e.applyForeignLocked(foreign)
	userID := e.userID
	e.mu.Unlock()
	if err != nil {
		return err
	}

	if userID != "" {
		if saveErr := e.store.SaveForeign(ctx, userID, blob); saveErr != nil {
			common.LogError(saveErr, "Failed to persist foreign model", common.Fields{"user_id": userID})
		}
	}
	return nil
}

// EvaluateModel re-predicts every stored training example and reports
// aggregate and per-category accuracy. Diagnostics only: the result is
// never used to gate model selection.
func (e *Engine) EvaluateModel() model.Evaluation {
	e.mu.RLock()
	examples := make([]model.TrainingExample, len(e.examples))
	copy(examples, e.examples)
	source := e.source
	e.mu.RUnlock()

	eval := model.Evaluation{
		PerCategory: make(map[string]model.CategoryMetrics),
		ModelSource: source,
		Total:       len(examples),
	}
	for _, ex := range examples {
		pred := e.Predict(ex.Description, ex.Merchant, ex.Amount)
		metrics := eval.PerCategory[ex.Category]
		metrics.Total++
		if pred.Category == ex.Category {
			metrics.Correct++
			eval.Correct++
		}
		eval.PerCategory[ex.Category] = metrics
	}
	if eval.Total > 0 {
		eval.Accuracy = float64(eval.Correct) / float64(eval.Total)
	}
	return eval
}

// GetStats returns a read-only snapshot of the engine state.
func (e *Engine) GetStats() model.Stats {
	e.mu.RLock()
	defer e.mu.RUnlock()

	stats := model.Stats{
		ModelSource:  e.source,
		ExampleCount: len(e.examples),
		Version:      e.version,
		LastTrained:  e.lastTrained,
	}
	if e.vectorizer != nil {
		stats.VocabularySize = e.vectorizer.VocabularySize()
	}
	if e.classifier != nil {
		stats.Categories = e.classifier.Categories()
		stats.IsForeignModel = e.classifier.IsForeign()
	}
	if e.foreignMeta != nil {
		meta := *e.foreignMeta
		stats.ForeignMetadata = &meta
	}
	return stats
}

// GetFeatureImportance returns the top-weighted features for a category
// by absolute magnitude, or nil before any model exists.
func (e *Engine) GetFeatureImportance(category string, n int) []model.FeatureWeight {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.classifier == nil {
		return nil
	}
	return e.classifier.FeatureImportance(category, n)
}

// ResetModel destroys the model and the training log together: the
// in-memory state returns to empty and both persisted snapshot slots
// are cleared. Predictions keep working through the keyword fallback.
func (e *Engine) ResetModel(ctx context.Context) error {
	e.mu.Lock()
	e.vectorizer = nil
	e.classifier = nil
	e.examples = nil
	e.source = model.SourceEmpty
	e.foreignLoaded = false
	e.foreignMeta = nil
	e.version = 0
	e.lastTrained = time.Time{}
	userID := e.userID
	e.mu.Unlock()

	if userID == "" {
		return nil
	}
	return e.store.Reset(ctx, userID)
}
