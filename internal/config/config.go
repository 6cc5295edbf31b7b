package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	// DestDir receives converted output. Relative values resolve against the
	// directory containing each sheet or audio file; absolute values collect
	// everything in one place.
	DestDir   string `toml:"dest_dir"`
	LogDir    string `toml:"log_dir"`
	HistoryDB string `toml:"history_db"`
}

// Tools names the external binaries cueflac orchestrates.
type Tools struct {
	Splitter  string `toml:"splitter"`
	TagWriter string `toml:"tag_writer"`
	FFmpeg    string `toml:"ffmpeg"`
}

// Sheets contains disc-sheet interpretation settings.
type Sheets struct {
	// FallbackEncoding is tried once when a sheet is not valid UTF-8
	// (for example cp1251 or gbk). Empty means decode failures are fatal.
	FallbackEncoding string `toml:"fallback_encoding"`
	// Ignore skips sheet files entirely and converts raw audio sources.
	Ignore bool `toml:"ignore"`
}

// Scan contains source tree scanning settings.
type Scan struct {
	OnlyTopDir bool `toml:"only_top_dir"`
}

// Watch contains settings for watch mode.
type Watch struct {
	// SettleSeconds is how long a source tree must stay quiet after a
	// filesystem event before a conversion pass starts.
	SettleSeconds int `toml:"settle_seconds"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Debug contains troubleshooting switches.
type Debug struct {
	// KeepTemp preserves per-disc temporary output directories for
	// inspection instead of removing them.
	KeepTemp bool `toml:"keep_temp"`
}

// Config encapsulates all configuration values for cueflac.
type Config struct {
	Paths   Paths   `toml:"paths"`
	Tools   Tools   `toml:"tools"`
	Sheets  Sheets  `toml:"sheets"`
	Scan    Scan    `toml:"scan"`
	Watch   Watch   `toml:"watch"`
	Logging Logging `toml:"logging"`
	Debug   Debug   `toml:"debug"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/cueflac/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("cueflac.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories cueflac needs for operation.
func (c *Config) EnsureDirectories() error {
	dirs := []string{c.Paths.LogDir}
	if strings.TrimSpace(c.Paths.HistoryDB) != "" {
		dirs = append(dirs, filepath.Dir(c.Paths.HistoryDB))
	}
	for _, dir := range dirs {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	expanded, err := expandHome(pathValue)
	if err != nil {
		return "", err
	}
	cleaned := filepath.Clean(expanded)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

func expandHome(pathValue string) (string, error) {
	if !strings.HasPrefix(pathValue, "~") {
		return pathValue, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	if pathValue == "~" {
		return home, nil
	}
	if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
		return filepath.Join(home, pathValue[2:]), nil
	}
	return pathValue, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}
