// Package services defines the shared error taxonomy for conversion stages
// and the wrapping helpers that tag failures with a sentinel marker.
//
// Stage code wraps failures with Wrap so callers can classify them with
// errors.Is without parsing message text, and DiscScoped centralizes the
// policy for which failures abort a single disc versus a whole sheet.
package services
