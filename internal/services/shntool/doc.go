// Package shntool wraps the shnsplit command-line splitter.
//
// The splitter is a black box: given a sheet, a source audio file, and a
// starting track number it emits one FLAC file per track into the output
// directory. Combined output is captured so a non-zero exit can be logged
// with the tool's own diagnostics.
package shntool
