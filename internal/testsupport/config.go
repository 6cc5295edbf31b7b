package testsupport

import (
	"path/filepath"
	"testing"

	"cueflac/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.HistoryDB = filepath.Join(base, "history.db")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithDestDir overrides the destination directory on the test config.
func WithDestDir(dir string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Paths.DestDir = dir
	}
}

// WithKeepTemp enables debug retention of per-disc workspaces.
func WithKeepTemp() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Debug.KeepTemp = true
	}
}
