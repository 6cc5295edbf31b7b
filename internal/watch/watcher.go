// Package watch reruns conversion when a source tree changes.
//
// Incoming albums arrive file by file, so a conversion pass only starts once
// the tree has stayed quiet for a settle period. Every filesystem event
// resets the timer; the callback fires after the last event settles.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"cueflac/internal/logging"
)

// Settler receives the settled root once the tree goes quiet.
type Settler func(ctx context.Context, root string)

// Watcher observes one source tree recursively and debounces events.
type Watcher struct {
	root            string
	settle          time.Duration
	skipDirPrefixes []string
	onSettle        Settler
	logger          *slog.Logger
}

// New constructs a watcher over root. Directories whose base name starts
// with one of skipDirPrefixes are neither watched nor counted as activity.
func New(root string, settle time.Duration, skipDirPrefixes []string, logger *slog.Logger, onSettle Settler) *Watcher {
	return &Watcher{
		root:            root,
		settle:          settle,
		skipDirPrefixes: skipDirPrefixes,
		onSettle:        onSettle,
		logger:          logging.NewComponentLogger(logger, "watch"),
	}
}

// Run blocks, dispatching the settle callback after each quiet period, until
// the context is canceled.
func (w *Watcher) Run(ctx context.Context) error {
	notifier, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer notifier.Close()

	if err := w.addTree(notifier, w.root); err != nil {
		return err
	}
	w.logger.Info("watching source tree",
		logging.String("root", w.root),
		logging.Duration("settle", w.settle),
	)

	// The timer starts stopped; the first event arms it.
	timer := time.NewTimer(w.settle)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-notifier.Events:
			if !ok {
				return nil
			}
			if w.skipped(event.Name) {
				continue
			}
			if event.Op.Has(fsnotify.Create) {
				if info, statErr := os.Stat(event.Name); statErr == nil && info.IsDir() {
					if err := w.addTree(notifier, event.Name); err != nil {
						w.logger.Warn("watch new directory failed",
							logging.String("path", event.Name),
							logging.Error(err),
						)
					}
				}
			}
			w.logger.Debug("filesystem event",
				logging.String("op", event.Op.String()),
				logging.String("path", event.Name),
			)
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.settle)
		case <-timer.C:
			w.logger.Info("source tree settled, starting conversion")
			w.onSettle(ctx, w.root)
		case watchErr, ok := <-notifier.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", logging.Error(watchErr))
		}
	}
}

func (w *Watcher) addTree(notifier *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !entry.IsDir() {
			return nil
		}
		if path != root && w.skipped(path) {
			return filepath.SkipDir
		}
		if err := notifier.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

func (w *Watcher) skipped(path string) bool {
	base := filepath.Base(path)
	for _, prefix := range w.skipDirPrefixes {
		if strings.HasPrefix(base, prefix) {
			return true
		}
	}
	return false
}
