package convert

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
)

const (
	// WorkspacePrefix tags per-disc temporary directories so stale leftovers
	// from a crashed prior run can be recognized and swept.
	WorkspacePrefix = "cueconvert_"

	lockFileName = ".cueconvert.lock"
)

// workspace is a disc-exclusive temporary output directory. The held lock
// file marks it as belonging to a live run; a sweep only removes directories
// whose lock can be acquired.
type workspace struct {
	dir  string
	lock *flock.Flock
	keep bool
}

func newWorkspace(parentDir string, keep bool) (*workspace, error) {
	dir, err := os.MkdirTemp(parentDir, WorkspacePrefix)
	if err != nil {
		return nil, fmt.Errorf("create workspace in %s: %w", parentDir, err)
	}
	lock := flock.New(filepath.Join(dir, lockFileName))
	locked, err := lock.TryLock()
	if err == nil && !locked {
		err = errors.New("lock already held")
	}
	if err != nil {
		_ = os.RemoveAll(dir)
		return nil, fmt.Errorf("lock workspace %s: %w", dir, err)
	}
	return &workspace{dir: dir, lock: lock, keep: keep}, nil
}

// Release unlocks the workspace and removes it unless retention was
// requested.
func (w *workspace) Release() error {
	if w.lock != nil {
		_ = w.lock.Unlock()
	}
	if w.keep {
		return nil
	}
	if err := os.RemoveAll(w.dir); err != nil {
		return fmt.Errorf("remove workspace %s: %w", w.dir, err)
	}
	return nil
}

// SweepStale removes leftover workspaces beneath root. Directories whose
// lock is still held belong to a live run and are left alone.
func SweepStale(root string) ([]string, error) {
	var removed []string
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), WorkspacePrefix) {
			return nil
		}
		lock := flock.New(filepath.Join(path, lockFileName))
		locked, lockErr := lock.TryLock()
		if lockErr != nil || !locked {
			return filepath.SkipDir
		}
		_ = lock.Unlock()
		if err := os.RemoveAll(path); err != nil {
			return err
		}
		removed = append(removed, path)
		return filepath.SkipDir
	})
	if err != nil {
		return removed, fmt.Errorf("sweep stale workspaces under %s: %w", root, err)
	}
	return removed, nil
}
