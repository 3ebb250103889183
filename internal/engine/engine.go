// Package engine implements the categorization service: it owns the
// live vectorizer/classifier pair, the training log, and the hybrid
// native/foreign model lifecycle.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/smartbudget/categorizer/internal/classify"
	"github.com/smartbudget/categorizer/internal/common"
	"github.com/smartbudget/categorizer/internal/fallback"
	"github.com/smartbudget/categorizer/internal/model"
	"github.com/smartbudget/categorizer/internal/seed"
	"github.com/smartbudget/categorizer/internal/store"
	"github.com/smartbudget/categorizer/internal/text"
	"github.com/smartbudget/categorizer/internal/vectorize"
)

// Config holds configuration options for the categorization engine.
type Config struct {
	// ConfidenceThreshold is the minimum classifier probability required
	// to trust the model over the keyword fallback.
	ConfidenceThreshold float64
	// RetrainInterval is the correction-count cadence for full retrains.
	RetrainInterval int
	// AlternativeCount caps the ranked alternatives on a prediction.
	AlternativeCount int
	// TopFeatureCount caps the explainability feature list.
	TopFeatureCount int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		ConfidenceThreshold: 0.6,
		RetrainInterval:     10,
		AlternativeCount:    3,
		TopFeatureCount:     5,
	}
}

// Engine is the categorization service for a single user session.
// Construct one per session and pass it by reference; there is no
// package-level instance.
type Engine struct {
	// TrainProgress, if set, receives per-pass training progress. Used
	// by the CLI to drive a progress bar; safe to leave nil.
	TrainProgress func(pass int, avgLoss float64)

	store    *store.ModelStore
	keywords *fallback.Categorizer

	// mu guards the model pair and everything below it. Retrains build
	// a candidate pair off to the side and swap it in under the write
	// lock, so Predict never observes partially updated weights.
	mu            sync.RWMutex
	vectorizer    *vectorize.Vectorizer
	classifier    *classify.Classifier
	examples      []model.TrainingExample
	source        model.ModelSource
	foreignMeta   *model.ForeignMetadata
	userID        string
	lastTrained   time.Time
	version       int
	foreignLoaded bool

	cfg Config
}

// New creates an engine with the default configuration.
func New(st *store.ModelStore) *Engine {
	return NewWithConfig(st, DefaultConfig())
}

// NewWithConfig creates an engine with a custom configuration.
func NewWithConfig(st *store.ModelStore, cfg Config) *Engine {
	if cfg.ConfidenceThreshold <= 0 {
		cfg.ConfidenceThreshold = DefaultConfig().ConfidenceThreshold
	}
	if cfg.RetrainInterval <= 0 {
		cfg.RetrainInterval = DefaultConfig().RetrainInterval
	}
	if cfg.AlternativeCount <= 0 {
		cfg.AlternativeCount = DefaultConfig().AlternativeCount
	}
	if cfg.TopFeatureCount <= 0 {
		cfg.TopFeatureCount = DefaultConfig().TopFeatureCount
	}
	return &Engine{
		store:    st,
		keywords: fallback.New(),
		source:   model.SourceEmpty,
		cfg:      cfg,
	}
}

// Initialize loads the user's persisted model, preferring a foreign
// snapshot first and layering a native snapshot on top. If neither
// exists it trains a fresh model from the seed catalogue. Persistence
// read failures never propagate: the engine degrades to cold start.
// The only returned error is context cancellation during seed training.
func (e *Engine) Initialize(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("%w: userID", common.ErrMissingConfig)
	}

	e.mu.Lock()
	e.userID = userID
	e.mu.Unlock()

	loadedForeign := e.loadForeign(ctx, userID)
	loadedNative := e.loadNative(ctx, userID, loadedForeign)

	if loadedForeign || loadedNative {
		slog.Info("Model initialized from snapshots",
			"user_id", userID,
			"foreign", loadedForeign,
			"native", loadedNative,
			"source", e.Source())
		return nil
	}

	slog.Info("No persisted model, training from seed catalogue", "user_id", userID)
	if err := e.seedTrain(ctx, userID); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		// Even a failed seed train leaves a usable engine: predictions
		// fall back to the keyword table.
		common.LogError(err, "Seed training failed, continuing with fallback only",
			common.Fields{"user_id": userID})
	}
	return nil
}

// loadForeign tries the foreign snapshot slot. Returns true on success.
func (e *Engine) loadForeign(ctx context.Context, userID string) bool {
	foreign, err := e.store.LoadForeign(ctx, userID)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			common.LogError(err, "Failed to load foreign snapshot", common.Fields{"user_id": userID})
		}
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.applyForeignLocked(foreign); err != nil {
		common.LogError(err, "Persisted foreign snapshot rejected", common.Fields{"user_id": userID})
		return false
	}
	return true
}

// loadNative tries the native snapshot slot. Returns true on success.
// A restored native model takes over as the active pair; the foreign
// flag only affects provenance.
func (e *Engine) loadNative(ctx context.Context, userID string, foreignLoaded bool) bool {
	native, err := e.store.LoadNative(ctx, userID)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			common.LogError(err, "Failed to load native snapshot", common.Fields{"user_id": userID})
		}
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.examples = native.TrainingExamples
	e.version = native.Version
	e.lastTrained = native.Timestamp
	if len(native.Classifier.Categories) > 0 {
		e.vectorizer = vectorize.FromSnapshot(native.Vectorizer)
		e.classifier = classify.FromSnapshot(native.Classifier)
	}
	if foreignLoaded {
		e.source = model.SourceHybrid
	} else {
		e.source = model.SourceNative
	}
	return true
}

// applyForeignLocked swaps in a validated foreign model. Caller holds mu.
func (e *Engine) applyForeignLocked(foreign *store.ForeignSnapshot) error {
	classifier := classify.New()
	if err := classifier.LoadForeign(foreign.Classifier.Weights, foreign.Classifier.Categories); err != nil {
		return err
	}
	e.vectorizer = vectorize.FromForeign(foreign.Vectorizer.Vocabulary, foreign.Vectorizer.IDFScores)
	e.classifier = classifier
	e.foreignLoaded = true
	meta := foreign.Metadata
	e.foreignMeta = &meta
	if len(e.examples) > 0 {
		e.source = model.SourceHybrid
	} else {
		e.source = model.SourceForeign
	}
	return nil
}

// seedTrain builds the first native model from the seed catalogue.
func (e *Engine) seedTrain(ctx context.Context, userID string) error {
	now := time.Now().UTC()
	catalogue := seed.Catalogue()
	examples := make([]model.TrainingExample, len(catalogue))
	for i, ex := range catalogue {
		ex.ID = uuid.NewString()
		ex.UserID = userID
		ex.Timestamp = now
		examples[i] = ex
	}

	e.mu.Lock()
	e.examples = examples
	e.mu.Unlock()

	if err := e.retrain(ctx); err != nil {
		return err
	}
	e.persist(ctx)
	return nil
}

// Source returns the provenance of the active model.
func (e *Engine) Source() model.ModelSource {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.source
}

// compositeDocument builds the text the model actually sees: the free
// description, the merchant string, and the categorical amount bucket.
func compositeDocument(description, merchant string, amount float64) string {
	parts := make([]string, 0, 3)
	if description != "" {
		parts = append(parts, description)
	}
	if merchant != "" {
		parts = append(parts, merchant)
	}
	parts = append(parts, text.AmountBucket(amount))
	return strings.Join(parts, " ")
}
