// Package config loads, normalizes, and validates cueflac configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The destination directory is the one path
// deliberately left unexpanded when relative: a relative dest_dir resolves
// against each source directory at conversion time, while an absolute one
// flattens all output into a single directory.
package config
