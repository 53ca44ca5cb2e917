// Package config loads curation settings from config files, environment
// variables, and flags via viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/jonathan/resume-curator/internal/scoring"
)

// Config holds every tunable of a curation run. All fields are optional;
// missing values use defaults.
type Config struct {
	// Pages is the page budget for the resume
	Pages int `mapstructure:"pages"`
	// BulletCap limits bullets kept per entry
	BulletCap int `mapstructure:"bullet-cap"`

	Scoring   ScoringConfig   `mapstructure:"scoring"`
	Optimizer OptimizerConfig `mapstructure:"optimizer"`

	// DatabaseURL enables artifact storage when set
	DatabaseURL string `mapstructure:"database-url"`

	Verbose bool `mapstructure:"verbose"`
	Debug   bool `mapstructure:"debug"`
	JSON    bool `mapstructure:"json"`
}

// ScoringConfig tunes the relevance scorer
type ScoringConfig struct {
	RequiredWeight  float64               `mapstructure:"required-weight"`
	PreferredWeight float64               `mapstructure:"preferred-weight"`
	KeywordWeight   float64               `mapstructure:"keyword-weight"`
	Recency         scoring.RecencyParams `mapstructure:"recency"`
}

// OptimizerConfig tunes the LLM bullet optimization
type OptimizerConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Model   string `mapstructure:"model"`
	// TimeoutSeconds bounds each model call
	TimeoutSeconds int `mapstructure:"timeout-seconds"`
	// APIKey is normally set via the GEMINI_API_KEY environment variable
	APIKey string `mapstructure:"api-key"`
}

// SetDefaults registers the default values on the given viper instance.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("pages", 1)
	v.SetDefault("bullet-cap", 4)
	v.SetDefault("scoring.required-weight", 3.0)
	v.SetDefault("scoring.preferred-weight", 2.0)
	v.SetDefault("scoring.keyword-weight", 1.0)
	v.SetDefault("scoring.recency.decay-rate", 0.15)
	v.SetDefault("scoring.recency.cap", 1.25)
	v.SetDefault("optimizer.enabled", false)
	v.SetDefault("optimizer.model", "gemini-2.0-flash")
	v.SetDefault("optimizer.timeout-seconds", 30)
}

// Load reads the config file (when given), layers environment variables over
// it, and unmarshals the result.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix("RESUME_CURATOR")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", cfgFile, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.Pages <= 0 {
		return nil, fmt.Errorf("pages must be positive, got %d", cfg.Pages)
	}

	return cfg, nil
}
