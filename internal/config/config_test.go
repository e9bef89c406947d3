package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if cfg.Database.Path != "" || cfg.Observer.Enabled {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kertas.toml")
	data := `
[database]
path = "chunks.db"

[observer]
enabled = true

[chunking.policy]
target_size = 1200
overlap_ratio = 0.15
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := Load(path)
	if cfg.Database.Path != "chunks.db" {
		t.Errorf("database.path = %q", cfg.Database.Path)
	}
	if !cfg.Observer.Enabled {
		t.Error("observer.enabled not set")
	}
	if cfg.Chunking.Policy.TargetSize != 1200 {
		t.Errorf("policy target = %d", cfg.Chunking.Policy.TargetSize)
	}
	if cfg.Chunking.Policy.OverlapRatio != 0.15 {
		t.Errorf("policy overlap = %f", cfg.Chunking.Policy.OverlapRatio)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("KERTAS_DB_PATH", "/tmp/env.db")
	t.Setenv("KERTAS_OBSERVER_ENABLED", "1")
	cfg := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if cfg.Database.Path != "/tmp/env.db" {
		t.Errorf("env override ignored: %q", cfg.Database.Path)
	}
	if !cfg.Observer.Enabled {
		t.Error("env observer toggle ignored")
	}
}

func TestForClass(t *testing.T) {
	c := ChunkingConfig{Claim: ClassConfig{TargetSize: 640}}
	if got := c.ForClass("claim").TargetSize; got != 640 {
		t.Errorf("claim target = %d", got)
	}
	if got := c.ForClass("unknown"); got != (ClassConfig{}) {
		t.Errorf("unknown class should fall back to generic: %+v", got)
	}
}
