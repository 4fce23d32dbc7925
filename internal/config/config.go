// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - New(ctx) returns a Config populated with defaults.
// - Load(ctx) layers a YAML file and PODIUM_* env vars on top of New.
// - Validation failures wrap ErrInvalidConfig; read failures wrap ErrLoadConfig.
package config

import (
	"context"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects log output encoding: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// DataPath points at a JSON or YAML medal data file. Empty serves the
	// bundled data set.
	DataPath string `koanf:"data_path"`

	// DefaultSort is the sort key used when a request names none or an unknown one.
	DefaultSort string `koanf:"default_sort"`

	// SimulatedLatencyMS delays every data load, mimicking a remote source. 0 disables.
	SimulatedLatencyMS int `koanf:"simulated_latency_ms"`

	// RateLimitRPS and RateLimitBurst bound API requests per second. RPS 0 disables.
	RateLimitRPS   float64 `koanf:"rate_limit_rps"`
	RateLimitBurst int     `koanf:"rate_limit_burst"`

	// CORSAllowedOrigins lists origins allowed to call the JSON API.
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`

	// FlagSpriteURL is the image used for flags on the medal table page.
	FlagSpriteURL string `koanf:"flag_sprite_url"`
}

// New creates a Config populated with defaults. Context is accepted first to
// satisfy the project-wide convention and is currently unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:           "info",
		LogFormat:          "text",
		Addr:               ":9080",
		DataPath:           "",
		DefaultSort:        "gold",
		SimulatedLatencyMS: 100,
		RateLimitRPS:       50,
		RateLimitBurst:     100,
		CORSAllowedOrigins: []string{"http://localhost:*"},
		FlagSpriteURL:      "/static/flags.png",
	}
}
