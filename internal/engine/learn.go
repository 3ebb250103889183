package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/smartbudget/categorizer/internal/classify"
	"github.com/smartbudget/categorizer/internal/common"
	"github.com/smartbudget/categorizer/internal/model"
	"github.com/smartbudget/categorizer/internal/store"
	"github.com/smartbudget/categorizer/internal/vectorize"
)

// LearnFromCorrection records a user's category correction. The example
// is appended to the training log; a full retrain fires when the log
// length hits the cadence interval, or immediately while the active
// model is foreign. The snapshot is persisted best-effort either way -
// a save failure is logged, never rolled back.
//
// A correction whose new category equals the previous one still counts
// toward the cadence.
func (e *Engine) LearnFromCorrection(ctx context.Context, description, merchant string, amount float64, previousCategory, newCategory, userID string) error {
	if newCategory == "" {
		return fmt.Errorf("%w: corrected category must not be empty", common.ErrInvalidCategory)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return fmt.Errorf("%w: %v", common.ErrInvalidAmount, amount)
	}

	example := model.TrainingExample{
		ID:          uuid.NewString(),
		Description: description,
		Merchant:    merchant,
		Amount:      amount,
		Category:    newCategory,
		UserID:      userID,
		Timestamp:   time.Now().UTC(),
	}
	if err := example.Validate(); err != nil {
		return err
	}

	e.mu.Lock()
	e.examples = append(e.examples, example)
	count := len(e.examples)
	needRetrain := count%e.cfg.RetrainInterval == 0 || e.source == model.SourceForeign
	e.mu.Unlock()

	slog.Debug("Correction recorded",
		"previous", previousCategory,
		"corrected", newCategory,
		"examples", count,
		"retrain", needRetrain)

	if needRetrain {
		if err := e.retrain(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			// Absorbed: the appended example is retained and the next
			// cadence hit will pick it up.
			common.LogError(err, "Retrain failed, keeping previous model", common.Fields{"examples": count})
		}
	}

	e.persist(ctx)
	return nil
}

// Retrain forces a full training pass over the accumulated log,
// regardless of cadence.
func (e *Engine) Retrain(ctx context.Context) error {
	if err := e.retrain(ctx); err != nil {
		return err
	}
	e.persist(ctx)
	return nil
}

// retrain rebuilds the model wholesale from the complete training log.
// The candidate vectorizer/classifier pair is trained outside the lock
// and swapped in atomically: a canceled or failed run is discarded
// entirely and the previous pair stays active.
func (e *Engine) retrain(ctx context.Context) error {
	e.mu.RLock()
	examples := make([]model.TrainingExample, len(e.examples))
	copy(examples, e.examples)
	progress := e.TrainProgress
	e.mu.RUnlock()

	if len(examples) == 0 {
		return classify.ErrNoExamples
	}

	corpus := make([]string, len(examples))
	labels := make([]string, len(examples))
	for i, ex := range examples {
		corpus[i] = compositeDocument(ex.Description, ex.Merchant, ex.Amount)
		labels[i] = ex.Category
	}

	vectorizer := vectorize.New()
	if err := vectorizer.Fit(corpus); err != nil {
		return err
	}
	vectors := make([]vectorize.Vector, len(corpus))
	for i, doc := range corpus {
		vectors[i] = vectorizer.Transform(doc)
	}

	classifier := classify.New()
	classifier.Progress = progress
	started := time.Now()
	if err := classifier.Train(ctx, vectors, labels); err != nil {
		return err
	}

	e.mu.Lock()
	e.vectorizer = vectorizer
	e.classifier = classifier
	e.version++
	e.lastTrained = time.Now().UTC()
	if e.foreignLoaded {
		e.source = model.SourceHybrid
	} else {
		e.source = model.SourceNative
	}
	version := e.version
	e.mu.Unlock()

	slog.Info("Model retrained",
		"examples", len(examples),
		"vocabulary", vectorizer.VocabularySize(),
		"version", version,
		"duration", time.Since(started))
	return nil
}

// persist writes the native snapshot best-effort. Failures are logged;
// the in-memory state is the source of truth until the next save.
func (e *Engine) persist(ctx context.Context) {
	e.mu.RLock()
	snap := &store.NativeSnapshot{
		TrainingExamples: append([]model.TrainingExample(nil), e.examples...),
		ModelSource:      e.source,
		Version:          e.version,
		Timestamp:        e.lastTrained,
	}
	if e.classifier != nil && !e.classifier.IsForeign() {
		snap.Vectorizer = e.vectorizer.Snapshot()
		snap.Classifier = e.classifier.Snapshot()
	}
	userID := e.userID
	e.mu.RUnlock()

	if userID == "" {
		return
	}

	err := common.WithRetry(ctx, func() error {
		return e.store.SaveNative(ctx, userID, snap)
	}, common.RetryOptions{MaxAttempts: 3})
	if err != nil {
		common.LogError(err, "Failed to persist model snapshot", common.Fields{"user_id": userID})
	}
}
