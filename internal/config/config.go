package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/smartbudget/categorizer/internal/common"
)

// Settings holds the resolved application configuration.
type Settings struct {
	DatabasePath        string
	UserID              string
	LogLevel            string
	LogFormat           string
	ConfidenceThreshold float64
	RetrainInterval     int
}

// setDefaults registers the default configuration values with viper.
func setDefaults() {
	viper.SetDefault("database.path", "~/.local/share/smartbudget/models.db")
	viper.SetDefault("user.id", "local")
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "console")
	viper.SetDefault("engine.confidence_threshold", 0.6)
	viper.SetDefault("engine.retrain_interval", 10)
}

// Load resolves settings from viper (config file, environment, flags).
func Load() (*Settings, error) {
	setDefaults()

	s := &Settings{
		DatabasePath:        ExpandPath(viper.GetString("database.path")),
		UserID:              viper.GetString("user.id"),
		LogLevel:            viper.GetString("logging.level"),
		LogFormat:           viper.GetString("logging.format"),
		ConfidenceThreshold: viper.GetFloat64("engine.confidence_threshold"),
		RetrainInterval:     viper.GetInt("engine.retrain_interval"),
	}

	if s.ConfidenceThreshold <= 0 || s.ConfidenceThreshold > 1 {
		return nil, fmt.Errorf("%w: engine.confidence_threshold must be in (0, 1], got %v",
			common.ErrInvalidConfig, s.ConfidenceThreshold)
	}
	if s.RetrainInterval < 1 {
		return nil, fmt.Errorf("%w: engine.retrain_interval must be at least 1, got %d",
			common.ErrInvalidConfig, s.RetrainInterval)
	}
	return s, nil
}
