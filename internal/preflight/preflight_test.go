package preflight

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"cueflac/internal/testsupport"
)

func TestCheckDirectoryAccess(t *testing.T) {
	dir := t.TempDir()

	if result := CheckDirectoryAccess("Source directory", dir); !result.Passed {
		t.Errorf("writable directory failed: %s", result.Detail)
	}
	if result := CheckDirectoryAccess("Source directory", filepath.Join(dir, "missing")); result.Passed {
		t.Error("missing directory passed")
	}

	file := filepath.Join(dir, "plain")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if result := CheckDirectoryAccess("Source directory", file); result.Passed {
		t.Error("regular file passed as directory")
	}
}

func TestRunAllReportsMissingBinary(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.Tools.Splitter = "definitely-not-a-binary-xyz"
	if err := os.MkdirAll(cfg.Paths.LogDir, 0o755); err != nil {
		t.Fatal(err)
	}

	results := RunAll(context.Background(), cfg, t.TempDir())
	if len(results) == 0 {
		t.Fatal("RunAll() returned no results")
	}
	if AllPassed(results) {
		t.Error("AllPassed() = true with splitter binary missing")
	}

	var sawSplitter bool
	for _, result := range results {
		if result.Name == "Splitter" {
			sawSplitter = true
			if result.Passed {
				t.Error("missing splitter passed")
			}
		}
	}
	if !sawSplitter {
		t.Error("RunAll() reported no splitter check")
	}
}
