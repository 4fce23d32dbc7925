package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/okian/podium/internal/domain/types"
)

// Environment variable names.
const (
	envPrefix     = "PODIUM_"
	envConfigFile = "PODIUM_CONFIG"
	envListKey    = "cors_allowed_origins"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New(ctx))
//  2. file (YAML) if PODIUM_CONFIG is set
//  3. env (prefix PODIUM_)
func Load(ctx context.Context) (*Config, error) {
	base := New(ctx)

	k := koanf.New(".")

	if path := os.Getenv(envConfigFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
		}
	}

	// Map env keys like PODIUM_DATA_PATH -> data_path (flat keys).
	// Underscores are preserved to match koanf tags on the struct.
	// List settings are comma-separated.
	envProvider := env.ProviderWithValue(envPrefix, ".", func(key, value string) (string, any) {
		key = strings.TrimPrefix(strings.ToLower(key), "podium_")
		if key == envListKey {
			return key, splitList(value)
		}
		return key, value
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Addr) == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.SimulatedLatencyMS < 0:
		return fmt.Errorf("%w: simulated_latency_ms must not be negative", ErrInvalidConfig)
	case c.RateLimitRPS < 0:
		return fmt.Errorf("%w: rate_limit_rps must not be negative", ErrInvalidConfig)
	case c.RateLimitRPS > 0 && c.RateLimitBurst < 1:
		return fmt.Errorf("%w: rate_limit_burst must be at least 1 when rate limiting", ErrInvalidConfig)
	}
	if _, ok := types.ParseSortKey(c.DefaultSort); !ok {
		return fmt.Errorf("%w: default_sort %q is not one of gold, silver, bronze, total", ErrInvalidConfig, c.DefaultSort)
	}
	return nil
}

// SortKey returns the parsed DefaultSort, falling back to gold.
func (c *Config) SortKey() types.SortKey {
	if k, ok := types.ParseSortKey(c.DefaultSort); ok {
		return k
	}
	return types.SortGold
}

// splitList splits a comma-separated env value, dropping blank items.
func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
