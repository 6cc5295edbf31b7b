package shntool

import (
	"context"
	"errors"
	"os/exec"
	"strconv"
	"strings"

	"cueflac/internal/services"
)

// SplitRequest describes one disc-splitting invocation.
type SplitRequest struct {
	SheetPath  string
	SourcePath string
	OutputDir  string
	// FirstTrack is the number assigned to the first emitted track, so
	// multi-disc sheets keep numbering continuously across discs.
	FirstTrack int
}

// Splitter defines the behaviour the conversion pipeline needs.
type Splitter interface {
	Split(ctx context.Context, req SplitRequest) (string, error)
}

// Executor abstracts command execution for testability. Run returns the
// combined stdout/stderr output.
type Executor interface {
	Run(ctx context.Context, binary string, args []string) (string, error)
}

// Option configures the client.
type Option func(*Client)

// WithBinary overrides the default binary name.
func WithBinary(binary string) Option {
	return func(c *Client) {
		if strings.TrimSpace(binary) != "" {
			c.binary = binary
		}
	}
}

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// Client wraps shnsplit CLI interactions.
type Client struct {
	binary string
	exec   Executor
}

// New constructs a shnsplit client using defaults.
func New(opts ...Option) *Client {
	client := &Client{binary: "shnsplit", exec: execRunner{}}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Split runs the splitter and returns its combined output. Output files are
// named "<number>. <title>.flac"; existing files are overwritten.
func (c *Client) Split(ctx context.Context, req SplitRequest) (string, error) {
	if req.SheetPath == "" {
		return "", errors.New("sheet path required")
	}
	if req.SourcePath == "" {
		return "", errors.New("source path required")
	}
	if req.OutputDir == "" {
		return "", errors.New("output directory required")
	}
	if req.FirstTrack < 1 {
		return "", errors.New("first track number must be positive")
	}

	args := []string{
		"-f", req.SheetPath,
		"-t", "%n. %t",
		"-c", strconv.Itoa(req.FirstTrack),
		"-d", req.OutputDir,
		"-o", "flac",
		"-O", "always",
		req.SourcePath,
	}
	out, err := c.exec.Run(ctx, c.binary, args)
	if err != nil {
		return out, services.Wrap(services.ErrSplitFailed, "shnsplit", "split",
			strings.TrimSpace(out), err)
	}
	return out, nil
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, binary string, args []string) (string, error) {
	cmd := exec.CommandContext(ctx, binary, args...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

var _ Splitter = (*Client)(nil)
