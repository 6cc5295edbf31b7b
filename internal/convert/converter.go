package convert

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"cueflac/internal/config"
	"cueflac/internal/history"
	"cueflac/internal/logging"
	"cueflac/internal/organizer"
	"cueflac/internal/scanner"
	"cueflac/internal/services"
	"cueflac/internal/services/ffmpeg"
	"cueflac/internal/services/metaflac"
	"cueflac/internal/services/shntool"
	"cueflac/internal/sheet"
)

const pregapSuffix = "pregap.flac"

// Result summarizes one converted unit of work: a whole sheet or a single
// sheetless audio file.
type Result struct {
	Source string
	Kind   string
	Discs  int
	Tracks int
	Err    error
}

// Converter drives the full conversion pipeline for one source tree.
type Converter struct {
	cfg        *config.Config
	splitter   shntool.Splitter
	transcoder ffmpeg.Transcoder
	tagger     *Tagger
	store      *history.Store
	logger     *slog.Logger
}

// New constructs a converter with the default CLI-backed tool clients.
// The history store may be nil, in which case nothing is recorded.
func New(cfg *config.Config, logger *slog.Logger, store *history.Store) *Converter {
	return NewWithDependencies(cfg, logger,
		shntool.New(shntool.WithBinary(cfg.Tools.Splitter)),
		metaflac.New(metaflac.WithBinary(cfg.Tools.TagWriter)),
		ffmpeg.New(ffmpeg.WithBinary(cfg.Tools.FFmpeg)),
		store,
	)
}

// NewWithDependencies allows injecting collaborators (used in tests).
func NewWithDependencies(cfg *config.Config, logger *slog.Logger, splitter shntool.Splitter, writer metaflac.Writer, transcoder ffmpeg.Transcoder, store *history.Store) *Converter {
	return &Converter{
		cfg:        cfg,
		splitter:   splitter,
		transcoder: transcoder,
		tagger:     NewTagger(writer, logger),
		store:      store,
		logger:     logging.NewComponentLogger(logger, "converter"),
	}
}

// Run sweeps stale workspaces, scans the source tree, and converts every
// sheet found, or every raw audio source when sheets are absent or ignored.
// Failures are per unit: one broken sheet or file never stops the rest.
func (c *Converter) Run(ctx context.Context, sourceDir string) ([]Result, error) {
	root, err := filepath.Abs(sourceDir)
	if err != nil {
		return nil, fmt.Errorf("resolve source directory: %w", err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("source directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source %s is not a directory", root)
	}

	if !c.cfg.Debug.KeepTemp {
		removed, sweepErr := SweepStale(root)
		if sweepErr != nil {
			c.logger.Warn("stale workspace sweep incomplete", logging.Error(sweepErr))
		}
		if len(removed) > 0 {
			c.logger.Info("swept stale workspaces", logging.Int("count", len(removed)))
		}
	}

	tree, err := scanner.Scan(root, scanner.Options{
		OnlyTopDir:      c.cfg.Scan.OnlyTopDir,
		SkipDirPrefixes: []string{WorkspacePrefix},
	})
	if err != nil {
		return nil, err
	}

	var results []Result
	if sheets := tree.Sheets(); len(sheets) > 0 && !c.cfg.Sheets.Ignore {
		for _, path := range sheets {
			result := c.ConvertSheet(ctx, path)
			if result.Err != nil {
				c.logger.Error("sheet conversion failed",
					logging.String("sheet", path),
					logging.Error(result.Err),
				)
			}
			results = append(results, result)
		}
		return results, nil
	}
	for _, path := range tree.RawSources() {
		result := c.ConvertFile(ctx, path)
		if result.Err != nil {
			c.logger.Error("file conversion failed",
				logging.String("file", path),
				logging.Error(result.Err),
			)
		}
		results = append(results, result)
	}
	return results, nil
}

// ConvertSheet converts every disc described by one sheet file, numbering
// tracks continuously across discs. A disc-scoped failure is recorded and
// skipped; its siblings keep processing and numbering continuity is
// preserved. Any other failure aborts the rest of the sheet.
func (c *Converter) ConvertSheet(ctx context.Context, sheetPath string) Result {
	result := Result{Source: sheetPath, Kind: "sheet"}
	logger := c.logger.With(logging.String("sheet", filepath.Base(sheetPath)))
	logger.Info("reading sheet")

	lines, err := sheet.ReadSheet(sheetPath, c.cfg.Sheets.FallbackEncoding)
	if err != nil {
		result.Err = err
		return result
	}
	album, err := sheet.Parse(lines)
	if err != nil {
		result.Err = err
		return result
	}
	if len(album.Discs) == 0 {
		result.Err = services.Wrap(services.ErrMalformedSheet, "converter", "convert sheet",
			"sheet declares no FILE sections", nil)
		return result
	}

	sourceDir := filepath.Dir(sheetPath)
	destDir := organizer.ResolveDestination(c.cfg.Paths.DestDir, sourceDir)
	runID := uuid.NewString()
	counter := newTrackCounter()
	result.Discs = len(album.Discs)

	var firstErr error
	for discIndex := range album.Discs {
		disc := &album.Discs[discIndex]
		firstTrack := counter.First()
		err := c.convertDisc(ctx, album, discIndex, sourceDir, destDir, firstTrack)
		c.record(ctx, &history.Record{
			RunID:       runID,
			Kind:        history.KindSheetDisc,
			SourcePath:  sheetPath,
			DiscNumber:  discIndex + 1,
			AudioFile:   disc.SourceFile,
			TrackCount:  len(disc.Titles),
			FirstTrack:  firstTrack,
			Destination: destDir,
		}, err)
		if err != nil {
			logger.Error("disc conversion failed",
				logging.Int("disc", discIndex+1),
				logging.Error(err),
			)
			if firstErr == nil {
				firstErr = err
			}
			if !services.DiscScoped(err) {
				break
			}
		} else {
			result.Tracks += len(disc.Titles)
			logger.Info("disc converted",
				logging.Int("disc", discIndex+1),
				logging.Int("tracks", len(disc.Titles)),
			)
		}
		counter.Advance(len(disc.Titles))
	}
	result.Err = firstErr
	return result
}

// convertDisc runs the split/reconcile/tag/relocate sequence for one disc.
// The temporary sheet and workspace are released on every exit path; the
// workspace survives only under debug retention.
func (c *Converter) convertDisc(ctx context.Context, album *sheet.Album, discIndex int, sourceDir, destDir string, firstTrack int) error {
	disc := &album.Discs[discIndex]
	logger := c.logger.With(
		logging.String("source_file", disc.SourceFile),
		logging.Int("disc", discIndex+1),
	)

	tempSheet, err := writeTempSheet(album.Header, disc.Lines)
	if err != nil {
		return err
	}
	defer func() {
		if removeErr := os.Remove(tempSheet); removeErr != nil && !os.IsNotExist(removeErr) {
			logger.Warn("temp sheet removal failed", logging.Error(removeErr))
		}
	}()

	ws, err := newWorkspace(sourceDir, c.cfg.Debug.KeepTemp)
	if err != nil {
		return err
	}
	defer func() {
		if releaseErr := ws.Release(); releaseErr != nil {
			logger.Warn("workspace release failed", logging.Error(releaseErr))
		}
	}()

	logger.Info("splitting disc", logging.Int("first_track", firstTrack))
	out, err := c.splitter.Split(ctx, shntool.SplitRequest{
		SheetPath:  tempSheet,
		SourcePath: filepath.Join(sourceDir, disc.SourceFile),
		OutputDir:  ws.dir,
		FirstTrack: firstTrack,
	})
	if err != nil {
		return err
	}
	if trimmed := strings.TrimSpace(out); trimmed != "" {
		logger.Debug("splitter output", logging.String("output", trimmed))
	}

	removed, err := removePregapArtifacts(ws.dir)
	if err != nil {
		return err
	}
	if removed > 0 {
		logger.Info("removed pregap artifacts", logging.Int("count", removed))
	}

	if err := c.tagger.TagDirectory(ctx, ws.dir, album, discIndex); err != nil {
		return err
	}

	return organizer.MoveContents(ws.dir, destDir)
}

// ConvertFile transcodes one sheetless audio source directly.
func (c *Converter) ConvertFile(ctx context.Context, sourcePath string) Result {
	result := Result{Source: sourcePath, Kind: "file"}
	destDir := organizer.ResolveDestination(c.cfg.Paths.DestDir, filepath.Dir(sourcePath))
	if err := organizer.EnsureDirectory(destDir); err != nil {
		result.Err = err
		return result
	}

	base := filepath.Base(sourcePath)
	target := filepath.Join(destDir, strings.TrimSuffix(base, filepath.Ext(base))+".flac")
	c.logger.Info("transcoding file",
		logging.String("source", sourcePath),
		logging.String("target", target),
	)
	err := c.transcoder.Transcode(ctx, sourcePath, target)
	c.record(ctx, &history.Record{
		RunID:       uuid.NewString(),
		Kind:        history.KindFile,
		SourcePath:  sourcePath,
		AudioFile:   base,
		TrackCount:  1,
		FirstTrack:  1,
		Destination: destDir,
	}, err)
	if err != nil {
		result.Err = err
		return result
	}
	result.Tracks = 1
	return result
}

func (c *Converter) record(ctx context.Context, rec *history.Record, convErr error) {
	if c.store == nil {
		return
	}
	rec.Status = history.StatusCompleted
	if convErr != nil {
		rec.Status = history.StatusFailed
		rec.ErrorMessage = convErr.Error()
	}
	if err := c.store.Add(ctx, rec); err != nil {
		c.logger.Warn("history record failed", logging.Error(err))
	}
}

// writeTempSheet materializes a disc-scoped sheet: the album header followed
// by the disc's corrected lines, written with a normalized line terminator.
// A zero-byte result would mean a parser or IO defect upstream, so it is
// rejected rather than handed to the splitter.
func writeTempSheet(header, lines []string) (string, error) {
	file, err := os.CreateTemp("", WorkspacePrefix+"*.cue")
	if err != nil {
		return "", fmt.Errorf("create temp sheet: %w", err)
	}
	var written int64
	for _, group := range [][]string{header, lines} {
		for _, line := range group {
			n, err := file.WriteString(line + "\n")
			if err != nil {
				file.Close()
				_ = os.Remove(file.Name())
				return "", fmt.Errorf("write temp sheet: %w", err)
			}
			written += int64(n)
		}
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(file.Name())
		return "", fmt.Errorf("close temp sheet: %w", err)
	}
	if written == 0 {
		_ = os.Remove(file.Name())
		return "", services.Wrap(services.ErrEmptyTempSheet, "converter", "write temp sheet",
			"disc produced a zero-byte sheet", nil)
	}
	return file.Name(), nil
}

// removePregapArtifacts deletes splitter output representing audio before
// the first index point. Such files have no title entry and would break the
// count parity the tagger depends on. They are identified by name suffix
// only; content is never inspected.
func removePregapArtifacts(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("read output directory %s: %w", dir, err)
	}
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), pregapSuffix) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			return removed, fmt.Errorf("remove pregap artifact %s: %w", entry.Name(), err)
		}
		removed++
	}
	return removed, nil
}
