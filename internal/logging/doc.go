// Package logging assembles the structured slog loggers used across cueflac.
//
// It owns the console and JSON handlers, level parsing, and output plumbing,
// and exposes small attribute helpers so callers never import log/slog
// directly for common cases. The console handler colorizes levels only when
// writing to a terminal.
package logging
