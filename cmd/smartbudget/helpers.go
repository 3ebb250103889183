package main

import (
	"context"
	"fmt"

	"github.com/schollz/progressbar/v3"

	"github.com/smartbudget/categorizer/internal/config"
	"github.com/smartbudget/categorizer/internal/engine"
	"github.com/smartbudget/categorizer/internal/store"
)

// openEngine wires the full stack for a command invocation: settings,
// SQLite store, model store, and an initialized engine. The returned
// cleanup closes the database.
func openEngine(ctx context.Context, showProgress bool) (*engine.Engine, func(), error) {
	settings, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	kv, err := store.NewSQLiteKV(settings.DatabasePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open model database: %w", err)
	}
	if err := kv.Migrate(ctx); err != nil {
		_ = kv.Close()
		return nil, nil, fmt.Errorf("failed to migrate model database: %w", err)
	}

	cfg := engine.DefaultConfig()
	cfg.ConfidenceThreshold = settings.ConfidenceThreshold
	cfg.RetrainInterval = settings.RetrainInterval

	eng := engine.NewWithConfig(store.NewModelStore(kv), cfg)
	if showProgress {
		eng.TrainProgress = trainingBar()
	}

	if err := eng.Initialize(ctx, settings.UserID); err != nil {
		_ = kv.Close()
		return nil, nil, err
	}

	return eng, func() { _ = kv.Close() }, nil
}

// trainingBar returns a progress callback rendering one tick per
// training pass. The bar overshoots gracefully when early stopping
// finishes a run short of the pass cap.
func trainingBar() func(pass int, avgLoss float64) {
	var bar *progressbar.ProgressBar
	return func(pass int, avgLoss float64) {
		if bar == nil {
			bar = progressbar.NewOptions(100,
				progressbar.OptionSetDescription("training"),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)
		}
		_ = bar.Set(pass)
	}
}
