package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv("SMARTBUDGET_TEST_DIR", "/tmp/sbtest")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"plain path untouched", "/var/lib/models.db", "/var/lib/models.db"},
		{"tilde prefix", "~/models.db", filepath.Join(home, "models.db")},
		{"bare tilde", "~", home},
		{"env var", "$SMARTBUDGET_TEST_DIR/models.db", "/tmp/sbtest/models.db"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExpandPath(tt.input))
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "local", s.UserID)
	assert.Equal(t, "info", s.LogLevel)
	assert.InDelta(t, 0.6, s.ConfidenceThreshold, 1e-9)
	assert.Equal(t, 10, s.RetrainInterval)
	assert.NotContains(t, s.DatabasePath, "~", "tilde should be expanded")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	viper.Reset()
	viper.Set("engine.confidence_threshold", 1.5)
	_, err := Load()
	assert.Error(t, err)

	viper.Reset()
	viper.Set("engine.retrain_interval", 0)
	_, err = Load()
	assert.Error(t, err)
}
