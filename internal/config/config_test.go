package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Pages)
	assert.Equal(t, 4, cfg.BulletCap)
	assert.Equal(t, 3.0, cfg.Scoring.RequiredWeight)
	assert.Equal(t, 2.0, cfg.Scoring.PreferredWeight)
	assert.Equal(t, 1.0, cfg.Scoring.KeywordWeight)
	assert.Equal(t, 1.25, cfg.Scoring.Recency.Cap)
	assert.False(t, cfg.Optimizer.Enabled)
	assert.Equal(t, "gemini-2.0-flash", cfg.Optimizer.Model)
	assert.Equal(t, 30, cfg.Optimizer.TimeoutSeconds)
}

func TestLoad_FromFile(t *testing.T) {
	content := `
pages: 2
bullet-cap: 3
scoring:
  required-weight: 5.0
  recency:
    cap: 1.5
optimizer:
  enabled: true
  model: gemini-2.5-pro
database-url: postgres://localhost/curator
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Pages)
	assert.Equal(t, 3, cfg.BulletCap)
	assert.Equal(t, 5.0, cfg.Scoring.RequiredWeight)
	// Unset keys keep their defaults
	assert.Equal(t, 2.0, cfg.Scoring.PreferredWeight)
	assert.Equal(t, 1.5, cfg.Scoring.Recency.Cap)
	assert.True(t, cfg.Optimizer.Enabled)
	assert.Equal(t, "gemini-2.5-pro", cfg.Optimizer.Model)
	assert.Equal(t, "postgres://localhost/curator", cfg.DatabaseURL)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidPages(t *testing.T) {
	content := "pages: -1\n"
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := Load(viper.New(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pages must be positive")
}
