// Package config defines configuration parsing and the tunable scoring
// weight tables.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v10"
)

// Config holds process-level configuration parsed from environment
// variables.
type Config struct {
	AppEnv   string `env:"APP_ENV" envDefault:"dev"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	// WeightsFile optionally points at a YAML file overlaying the
	// default scoring weight tables.
	WeightsFile string `env:"WEIGHTS_FILE" envDefault:""`
	// Score drift monitoring knobs.
	DriftWindowSize int     `env:"DRIFT_WINDOW_SIZE" envDefault:"50"`
	DriftThreshold  float64 `env:"DRIFT_THRESHOLD" envDefault:"5.0"`
	ServiceName     string  `env:"SERVICE_NAME" envDefault:"match-engine"`
}

// Load parses environment variables into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("op=config.Load: %w", err)
	}
	return cfg, nil
}

// IsDev reports whether the app is running in development mode.
func (c Config) IsDev() bool { return strings.ToLower(c.AppEnv) == "dev" }

// IsProd reports whether the app is running in production mode.
func (c Config) IsProd() bool { return strings.ToLower(c.AppEnv) == "prod" }

// IsTest reports whether the app is running in test mode.
func (c Config) IsTest() bool { return strings.ToLower(c.AppEnv) == "test" }
