package metaflac_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"cueflac/internal/services"
	"cueflac/internal/services/metaflac"
)

type stubExecutor struct {
	err  error
	args []string
}

func (s *stubExecutor) Run(ctx context.Context, binary string, args []string) (string, error) {
	s.args = append([]string(nil), args...)
	return "", s.err
}

func TestWriteTagsSkipsAbsentValues(t *testing.T) {
	exec := &stubExecutor{}
	client := metaflac.New(metaflac.WithExecutor(exec))

	err := client.WriteTags(context.Background(), "/tmp/01. Two.flac", metaflac.Tags{
		Album: "B",
		Title: "Two",
		Date:  "2001",
	})
	if err != nil {
		t.Fatalf("WriteTags returned error: %v", err)
	}
	want := []string{
		"--preserve-modtime",
		"--set-tag=ALBUM=B",
		"--set-tag=TITLE=Two",
		"--set-tag=DATE=2001",
		"/tmp/01. Two.flac",
	}
	if !reflect.DeepEqual(exec.args, want) {
		t.Fatalf("unexpected args:\n got %v\nwant %v", exec.args, want)
	}
}

func TestWriteTagsAllFieldsPresent(t *testing.T) {
	exec := &stubExecutor{}
	client := metaflac.New(metaflac.WithExecutor(exec))

	if err := client.WriteTags(context.Background(), "x.flac", metaflac.Tags{
		Artist: "A", Album: "B", Title: "T", Date: "2001",
	}); err != nil {
		t.Fatalf("WriteTags returned error: %v", err)
	}
	want := []string{
		"--preserve-modtime",
		"--set-tag=ARTIST=A",
		"--set-tag=ALBUM=B",
		"--set-tag=TITLE=T",
		"--set-tag=DATE=2001",
		"x.flac",
	}
	if !reflect.DeepEqual(exec.args, want) {
		t.Fatalf("unexpected args:\n got %v\nwant %v", exec.args, want)
	}
}

func TestWriteTagsWrapsFailure(t *testing.T) {
	client := metaflac.New(metaflac.WithExecutor(&stubExecutor{err: errors.New("exit status 1")}))
	err := client.WriteTags(context.Background(), "x.flac", metaflac.Tags{Title: "T"})
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected ErrExternalTool, got %v", err)
	}
}
