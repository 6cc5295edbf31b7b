// Package deps checks availability of the external binaries cueflac
// orchestrates.
package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"cueflac/internal/config"
)

// Requirement defines an external dependency cueflac relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// Requirements lists the external tools configured for cfg. The transcoder
// is optional: it only matters when converting sheetless audio sources.
func Requirements(cfg *config.Config) []Requirement {
	return []Requirement{
		{Name: "Splitter", Command: cfg.Tools.Splitter, Description: "splits album images into per-track files"},
		{Name: "Tag writer", Command: cfg.Tools.TagWriter, Description: "writes metadata into split tracks"},
		{Name: "Transcoder", Command: cfg.Tools.FFmpeg, Description: "converts sheetless audio sources", Optional: true},
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(cmd); err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}
