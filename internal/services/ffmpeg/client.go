package ffmpeg

import (
	"context"
	"errors"
	"os/exec"
	"strings"

	"cueflac/internal/services"
)

// Transcoder defines the behaviour needed for sheetless source conversion.
type Transcoder interface {
	Transcode(ctx context.Context, sourcePath, targetPath string) error
}

// Executor abstracts command execution for testability.
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

// Client wraps ffmpeg CLI interactions.
type Client struct {
	binary string
	exec   Executor
}

// New constructs an ffmpeg client using defaults.
func New(opts ...Option) *Client {
	client := &Client{binary: "ffmpeg", exec: execRunner{}}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Transcode converts a single audio file; the target container is inferred
// from the target path's extension.
func (c *Client) Transcode(ctx context.Context, sourcePath, targetPath string) error {
	if sourcePath == "" {
		return errors.New("source path required")
	}
	if targetPath == "" {
		return errors.New("target path required")
	}

	args := []string{"-i", sourcePath, targetPath}
	out, err := c.exec.Run(ctx, c.binary, args)
	if err != nil {
		return services.Wrap(services.ErrExternalTool, "ffmpeg", "transcode",
			strings.TrimSpace(out), err)
	}
	return nil
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, binary string, args []string) (string, error) {
	cmd := exec.CommandContext(ctx, binary, args...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

var _ Transcoder = (*Client)(nil)
