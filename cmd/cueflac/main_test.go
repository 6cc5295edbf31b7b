package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("output %q does not contain %q", haystack, needle)
	}
}

func TestConfigInitAndValidate(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, err := runCLI(t, "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")
	requireContains(t, out, "defaults were used")

	target := filepath.Join(t.TempDir(), "config.toml")
	out, err = runCLI(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	// A second init without --overwrite refuses to clobber the file.
	if _, err := runCLI(t, "config", "init", "--path", target); err == nil {
		t.Fatal("config init overwrote an existing file")
	}
}

func TestConfigShow(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, err := runCLI(t, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "dest_dir")
	requireContains(t, out, "flac")
	requireContains(t, out, "shnsplit")
}

func TestHistoryEmpty(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, err := runCLI(t, "history")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	requireContains(t, out, "No conversions recorded yet")
}

func TestConvertEmptyTree(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, err := runCLI(t, "convert", t.TempDir())
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	requireContains(t, out, "Nothing to convert")
}
