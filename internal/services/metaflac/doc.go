// Package metaflac wraps the metaflac tag writer.
//
// Tags whose source value is absent are skipped rather than written empty,
// and the file's modification timestamp is preserved because the tagging
// order itself is derived from modification times.
package metaflac
