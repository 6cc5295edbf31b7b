// Package convert orchestrates sheet-driven album conversion.
//
// For each disc of a parsed sheet it materializes a disc-scoped temporary
// sheet, acquires an exclusive temporary workspace, invokes the external
// splitter with the running first-track number, removes pregap artifacts,
// maps the splitter's anonymous output back to track metadata, and relocates
// the tagged files into the destination directory. Failures are scoped: a
// broken sheet never aborts its siblings, and a failed disc never aborts the
// rest of its sheet. Temporary resources are released on every exit path
// unless debug retention is requested.
package convert
