package scanner_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"cueflac/internal/scanner"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestScanGroupsByExtension(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "album.cue"))
	touch(t, filepath.Join(root, "album.APE"))
	touch(t, filepath.Join(root, "sub", "other.cue"))
	touch(t, filepath.Join(root, "sub", "track.wav"))
	touch(t, filepath.Join(root, "noext"))

	tree, err := scanner.Scan(root, scanner.Options{})
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	wantSheets := []string{
		filepath.Join(root, "album.cue"),
		filepath.Join(root, "sub", "other.cue"),
	}
	if !reflect.DeepEqual(tree.Sheets(), wantSheets) {
		t.Fatalf("sheets: got %v want %v", tree.Sheets(), wantSheets)
	}
	if got := tree.WithExtension("ape"); len(got) != 1 {
		t.Fatalf("upper-cased extension not normalized: %v", got)
	}
	if got := tree.RawSources(); len(got) != 2 {
		t.Fatalf("raw sources: got %v", got)
	}
}

func TestScanOnlyTopDir(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "top.cue"))
	touch(t, filepath.Join(root, "sub", "nested.cue"))

	tree, err := scanner.Scan(root, scanner.Options{OnlyTopDir: true})
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if got := tree.Sheets(); len(got) != 1 || filepath.Base(got[0]) != "top.cue" {
		t.Fatalf("expected only top-level sheet, got %v", got)
	}
}

func TestScanSkipsWorkspaceDirs(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "album.cue"))
	touch(t, filepath.Join(root, "cueconvert_1234", "01. Track.flac"))

	tree, err := scanner.Scan(root, scanner.Options{SkipDirPrefixes: []string{"cueconvert_"}})
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if got := tree.WithExtension("flac"); len(got) != 0 {
		t.Fatalf("workspace contents must be skipped, got %v", got)
	}
}
