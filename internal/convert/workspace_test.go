package convert

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWorkspaceReleaseRemoves(t *testing.T) {
	parent := t.TempDir()
	ws, err := newWorkspace(parent, false)
	if err != nil {
		t.Fatalf("newWorkspace() error = %v", err)
	}
	if !strings.HasPrefix(filepath.Base(ws.dir), WorkspacePrefix) {
		t.Errorf("workspace %q lacks prefix %q", ws.dir, WorkspacePrefix)
	}
	if err := ws.Release(); err != nil {
		t.Fatalf("Release() error = %v", err)
	}
	if _, err := os.Stat(ws.dir); !os.IsNotExist(err) {
		t.Errorf("workspace %q still exists after release", ws.dir)
	}
}

func TestWorkspaceReleaseKeepsForDebug(t *testing.T) {
	parent := t.TempDir()
	ws, err := newWorkspace(parent, true)
	if err != nil {
		t.Fatalf("newWorkspace() error = %v", err)
	}
	if err := ws.Release(); err != nil {
		t.Fatalf("Release() error = %v", err)
	}
	if _, err := os.Stat(ws.dir); err != nil {
		t.Errorf("retained workspace missing: %v", err)
	}
}

func TestSweepStaleRemovesUnlocked(t *testing.T) {
	root := t.TempDir()
	stale := filepath.Join(root, WorkspacePrefix+"leftover")
	if err := os.MkdirAll(stale, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(stale, "01. track.flac"), []byte("flac"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(root, "keepme"), 0o755); err != nil {
		t.Fatal(err)
	}

	removed, err := SweepStale(root)
	if err != nil {
		t.Fatalf("SweepStale() error = %v", err)
	}
	if len(removed) != 1 || removed[0] != stale {
		t.Fatalf("SweepStale() removed %v, want [%s]", removed, stale)
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Error("stale workspace still exists")
	}
	if _, err := os.Stat(filepath.Join(root, "keepme")); err != nil {
		t.Errorf("unrelated directory removed: %v", err)
	}
}

func TestSweepStaleSparesLiveWorkspace(t *testing.T) {
	root := t.TempDir()
	ws, err := newWorkspace(root, false)
	if err != nil {
		t.Fatalf("newWorkspace() error = %v", err)
	}
	defer func() { _ = ws.Release() }()

	removed, err := SweepStale(root)
	if err != nil {
		t.Fatalf("SweepStale() error = %v", err)
	}
	if len(removed) != 0 {
		t.Fatalf("SweepStale() removed live workspace: %v", removed)
	}
	if _, err := os.Stat(ws.dir); err != nil {
		t.Errorf("live workspace missing after sweep: %v", err)
	}
}
