// Package preflight verifies the environment before a conversion run:
// external binaries resolvable, directories present and writable.
package preflight

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"cueflac/internal/config"
	"cueflac/internal/deps"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes all preflight checks for the given config and source
// directory. An empty sourceDir skips the source check.
func RunAll(ctx context.Context, cfg *config.Config, sourceDir string) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result
	for _, status := range deps.CheckBinaries(deps.Requirements(cfg)) {
		result := Result{Name: status.Name, Passed: status.Available}
		if status.Available {
			result.Detail = status.Command
		} else {
			result.Detail = status.Detail
			if status.Optional {
				result.Passed = true
				result.Detail = status.Detail + " (optional)"
			}
		}
		results = append(results, result)
	}

	if sourceDir != "" {
		results = append(results, CheckDirectoryAccess("Source directory", sourceDir))
	}
	results = append(results, CheckDirectoryAccess("Log directory", cfg.Paths.LogDir))
	return results
}

// CheckDirectoryAccess verifies that the directory exists and is
// readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// AllPassed reports whether every check in results passed.
func AllPassed(results []Result) bool {
	for _, result := range results {
		if !result.Passed {
			return false
		}
	}
	return true
}
