package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeTools()
	c.normalizeLogging()
	if c.Watch.SettleSeconds == 0 {
		c.Watch.SettleSeconds = defaultWatchSettleSeconds
	}
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if c.Paths.HistoryDB, err = expandPath(c.Paths.HistoryDB); err != nil {
		return fmt.Errorf("paths.history_db: %w", err)
	}
	// dest_dir keeps relative values relative: they resolve against each
	// source directory at conversion time. Only tilde shortcuts expand here.
	dest := strings.TrimSpace(c.Paths.DestDir)
	if dest == "" {
		dest = defaultDestDir
	}
	if c.Paths.DestDir, err = expandHome(dest); err != nil {
		return fmt.Errorf("paths.dest_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeTools() {
	if c.Tools.Splitter = strings.TrimSpace(c.Tools.Splitter); c.Tools.Splitter == "" {
		c.Tools.Splitter = defaultSplitterBinary
	}
	if c.Tools.TagWriter = strings.TrimSpace(c.Tools.TagWriter); c.Tools.TagWriter == "" {
		c.Tools.TagWriter = defaultTagWriterBinary
	}
	if c.Tools.FFmpeg = strings.TrimSpace(c.Tools.FFmpeg); c.Tools.FFmpeg == "" {
		c.Tools.FFmpeg = defaultFFmpegBinary
	}
}

func (c *Config) normalizeLogging() {
	if c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format)); c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	if c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level)); c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
