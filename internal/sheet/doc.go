// Package sheet parses disc-sheet (CUE) text into an in-memory album model.
//
// A single physical sheet may embed several FILE sections; each one opens a
// new logical disc with its own ordered track-title list and raw line buffer.
// Header lines preceding the first FILE declaration are shared verbatim by
// every disc. Parsing classifies each line exactly once into a closed set of
// kinds and runs a two-state machine over the classified stream, so downstream
// code never re-matches patterns. INDEX lines with a one-digit frame field are
// padded during parsing because the splitter rejects the short form for
// non-CD-quality sources.
package sheet
