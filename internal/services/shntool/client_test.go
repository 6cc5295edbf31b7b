package shntool_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"cueflac/internal/services"
	"cueflac/internal/services/shntool"
)

type stubExecutor struct {
	out    string
	err    error
	binary string
	args   []string
}

func (s *stubExecutor) Run(ctx context.Context, binary string, args []string) (string, error) {
	s.binary = binary
	s.args = append([]string(nil), args...)
	return s.out, s.err
}

func TestSplitBuildsExpectedArgs(t *testing.T) {
	exec := &stubExecutor{}
	client := shntool.New(shntool.WithExecutor(exec), shntool.WithBinary("/usr/bin/shnsplit"))

	_, err := client.Split(context.Background(), shntool.SplitRequest{
		SheetPath:  "/tmp/disc.cue",
		SourcePath: "/music/album.ape",
		OutputDir:  "/tmp/out",
		FirstTrack: 6,
	})
	if err != nil {
		t.Fatalf("Split returned error: %v", err)
	}
	if exec.binary != "/usr/bin/shnsplit" {
		t.Fatalf("unexpected binary: %q", exec.binary)
	}
	want := []string{
		"-f", "/tmp/disc.cue",
		"-t", "%n. %t",
		"-c", "6",
		"-d", "/tmp/out",
		"-o", "flac",
		"-O", "always",
		"/music/album.ape",
	}
	if !reflect.DeepEqual(exec.args, want) {
		t.Fatalf("unexpected args:\n got %v\nwant %v", exec.args, want)
	}
}

func TestSplitWrapsNonZeroExit(t *testing.T) {
	exec := &stubExecutor{out: "shnsplit: error: invalid index", err: errors.New("exit status 1")}
	client := shntool.New(shntool.WithExecutor(exec))

	out, err := client.Split(context.Background(), shntool.SplitRequest{
		SheetPath:  "s.cue",
		SourcePath: "a.wav",
		OutputDir:  "out",
		FirstTrack: 1,
	})
	if !errors.Is(err, services.ErrSplitFailed) {
		t.Fatalf("expected ErrSplitFailed, got %v", err)
	}
	if out != "shnsplit: error: invalid index" {
		t.Fatalf("combined output not returned: %q", out)
	}
}

func TestSplitValidatesRequest(t *testing.T) {
	client := shntool.New(shntool.WithExecutor(&stubExecutor{}))
	if _, err := client.Split(context.Background(), shntool.SplitRequest{
		SheetPath:  "s.cue",
		SourcePath: "a.wav",
		OutputDir:  "out",
	}); err == nil {
		t.Fatal("expected error for zero first track number")
	}
}
