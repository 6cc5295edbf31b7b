package convert

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cueflac/internal/logging"
	"cueflac/internal/services"
	"cueflac/internal/sheet"
)

func writeTimed(t *testing.T, dir, name string, mod time.Time) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("flac"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(path, mod, mod); err != nil {
		t.Fatal(err)
	}
}

func TestTagDirectoryIgnoresLockFile(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	writeTimed(t, dir, "b.flac", base)
	writeTimed(t, dir, "a.flac", base.Add(time.Second))
	if err := os.WriteFile(filepath.Join(dir, lockFileName), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	album := &sheet.Album{
		Title:  "Album",
		Artist: "Artist",
		Discs:  []sheet.Disc{{Titles: []string{"First", "Second"}}},
	}
	writer := &stubWriter{}
	tagger := NewTagger(writer, logging.NewNop())
	if err := tagger.TagDirectory(context.Background(), dir, album, 0); err != nil {
		t.Fatalf("TagDirectory() error = %v", err)
	}
	if len(writer.calls) != 2 {
		t.Fatalf("tag writer invoked %d times, want 2", len(writer.calls))
	}
	// b.flac is older so it carries the first title despite its name.
	if writer.calls[0].name != "b.flac" || writer.calls[0].tags.Title != "First" {
		t.Errorf("first call = %+v, want b.flac/First", writer.calls[0])
	}
}

func TestTagDirectoryCountMismatch(t *testing.T) {
	dir := t.TempDir()
	writeTimed(t, dir, "a.flac", time.Now())

	album := &sheet.Album{
		Discs: []sheet.Disc{{Titles: []string{"First", "Second"}}},
	}
	tagger := NewTagger(&stubWriter{}, logging.NewNop())
	err := tagger.TagDirectory(context.Background(), dir, album, 0)
	if !errors.Is(err, services.ErrTrackCountMismatch) {
		t.Fatalf("TagDirectory() error = %v, want ErrTrackCountMismatch", err)
	}
}
