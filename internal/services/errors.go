package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedSheet marks sheets whose structure cannot be interpreted.
	// Fatal for that sheet; siblings keep processing.
	ErrMalformedSheet = errors.New("malformed sheet")
	// ErrEncoding marks sheet text that could not be decoded, including a
	// failed fallback attempt.
	ErrEncoding = errors.New("encoding error")
	// ErrSplitFailed marks a non-zero exit from the external splitter.
	// Non-fatal: the disc is skipped and processing continues.
	ErrSplitFailed = errors.New("split failed")
	// ErrDestinationConflict marks a destination path that already exists as
	// a regular file.
	ErrDestinationConflict = errors.New("destination conflict")
	// ErrEmptyTempSheet marks a zero-byte disc-scoped temporary sheet.
	ErrEmptyTempSheet = errors.New("empty temp sheet")
	// ErrTrackCountMismatch marks a splitter output whose file count differs
	// from the sheet's track list, making the order-based tag mapping unsafe.
	ErrTrackCountMismatch = errors.New("track count mismatch")

	ErrExternalTool  = errors.New("external tool error")
	ErrConfiguration = errors.New("configuration error")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrExternalTool
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// DiscScoped reports whether err aborts only the current disc rather than the
// whole sheet.
func DiscScoped(err error) bool {
	switch {
	case errors.Is(err, ErrSplitFailed),
		errors.Is(err, ErrDestinationConflict),
		errors.Is(err, ErrEmptyTempSheet),
		errors.Is(err, ErrTrackCountMismatch):
		return true
	default:
		return false
	}
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
