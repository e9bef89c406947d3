// Package config loads the CLI configuration: defaults, then a TOML file,
// then environment variables (env wins).
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Chunking ChunkingConfig `toml:"chunking"`
	Database DatabaseConfig `toml:"database"`
	Observer ObserverConfig `toml:"observer"`
}

// ChunkingConfig holds optional per-class overrides. A zero value means
// "use the engine's class default".
type ChunkingConfig struct {
	Policy  ClassConfig `toml:"policy"`
	Claim   ClassConfig `toml:"claim"`
	Filing  ClassConfig `toml:"filing"`
	Generic ClassConfig `toml:"generic"`
}

type ClassConfig struct {
	TargetSize   int     `toml:"target_size"`
	MaxSize      int     `toml:"max_size"`
	MinSize      int     `toml:"min_size"`
	OverlapRatio float64 `toml:"overlap_ratio"`
}

// ForClass returns the override block for a class name.
func (c ChunkingConfig) ForClass(class string) ClassConfig {
	switch class {
	case "policy":
		return c.Policy
	case "claim":
		return c.Claim
	case "filing":
		return c.Filing
	default:
		return c.Generic
	}
}

type DatabaseConfig struct {
	// Path to a SQLite file. Empty disables persistence; chunks go to
	// stdout only.
	Path string `toml:"path"`

	// PostgresURL, when set, takes precedence over Path.
	PostgresURL string `toml:"postgres_url"`
}

type ObserverConfig struct {
	Enabled bool `toml:"enabled"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{}
}

// Load reads config: defaults -> TOML file -> env vars (env wins).
func Load(path string) Config {
	cfg := Default()

	if path == "" {
		path = "kertas.toml"
	}

	if data, err := os.ReadFile(path); err == nil {
		_ = toml.Unmarshal(data, &cfg)
	}

	if v := os.Getenv("KERTAS_DB_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("KERTAS_POSTGRES_URL"); v != "" {
		cfg.Database.PostgresURL = v
	}
	if v := os.Getenv("KERTAS_OBSERVER_ENABLED"); v == "true" || v == "1" {
		cfg.Observer.Enabled = true
	}

	return cfg
}
