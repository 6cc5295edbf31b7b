package convert

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"cueflac/internal/logging"
	"cueflac/internal/services"
	"cueflac/internal/services/metaflac"
	"cueflac/internal/sheet"
)

// Tagger maps splitter output files back to sheet track order and writes
// per-track metadata. The splitter reports no explicit mapping from output
// file to track position, so files are ordered by modification timestamp:
// the splitter writes tracks in order, which makes mtime a workable proxy.
// That makes count parity a hard precondition: when the file count differs
// from the title list the order cannot be trusted and tagging refuses to
// guess.
type Tagger struct {
	writer metaflac.Writer
	logger *slog.Logger
}

// NewTagger constructs a tagger around the given tag writer.
func NewTagger(writer metaflac.Writer, logger *slog.Logger) *Tagger {
	return &Tagger{writer: writer, logger: logging.NewComponentLogger(logger, "tagger")}
}

// TagDirectory tags every visible file in dir with the metadata of the
// corresponding track of album.Discs[discIndex]. Absent album-level values
// are skipped rather than written empty.
func (t *Tagger) TagDirectory(ctx context.Context, dir string, album *sheet.Album, discIndex int) error {
	disc := album.Discs[discIndex]
	files, err := filesByModTime(dir)
	if err != nil {
		return err
	}
	if len(files) != len(disc.Titles) {
		return services.Wrap(services.ErrTrackCountMismatch, "tagger", "reconcile output",
			fmt.Sprintf("splitter produced %d files but the sheet lists %d tracks", len(files), len(disc.Titles)), nil)
	}
	for i, file := range files {
		tags := metaflac.Tags{
			Artist: album.Artist,
			Album:  album.Title,
			Title:  disc.Titles[i],
			Date:   album.Year,
		}
		if err := t.writer.WriteTags(ctx, file, tags); err != nil {
			return err
		}
		t.logger.Debug("tagged track",
			logging.String("file", filepath.Base(file)),
			logging.String("title", disc.Titles[i]),
		)
	}
	return nil
}

// filesByModTime lists visible files ordered by modification time, with
// name order breaking ties so equal timestamps stay deterministic.
func filesByModTime(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read output directory %s: %w", dir, err)
	}
	type fileEntry struct {
		path string
		mod  time.Time
	}
	files := make([]fileEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", entry.Name(), err)
		}
		files = append(files, fileEntry{path: filepath.Join(dir, entry.Name()), mod: info.ModTime()})
	}
	sort.Slice(files, func(i, j int) bool {
		if files[i].mod.Equal(files[j].mod) {
			return files[i].path < files[j].path
		}
		return files[i].mod.Before(files[j].mod)
	})
	paths := make([]string, len(files))
	for i, file := range files {
		paths[i] = file.path
	}
	return paths, nil
}
