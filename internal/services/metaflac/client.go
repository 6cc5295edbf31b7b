package metaflac

import (
	"context"
	"errors"
	"os/exec"
	"strings"

	"cueflac/internal/services"
)

// Tags holds the metadata fields written into one track. Empty fields are
// not written at all.
type Tags struct {
	Artist string
	Album  string
	Title  string
	Date   string
}

// Writer defines the tag-writing behaviour the conversion pipeline needs.
type Writer interface {
	WriteTags(ctx context.Context, path string, tags Tags) error
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

// Client wraps metaflac CLI interactions.
type Client struct {
	binary string
	exec   Executor
}

// New constructs a metaflac client using defaults.
func New(opts ...Option) *Client {
	client := &Client{binary: "metaflac", exec: execRunner{}}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// WriteTags writes the present tag fields into the file in place.
func (c *Client) WriteTags(ctx context.Context, path string, tags Tags) error {
	if path == "" {
		return errors.New("target path required")
	}

	args := []string{"--preserve-modtime"}
	args = appendTag(args, "ARTIST", tags.Artist)
	args = appendTag(args, "ALBUM", tags.Album)
	args = appendTag(args, "TITLE", tags.Title)
	args = appendTag(args, "DATE", tags.Date)
	args = append(args, path)

	out, err := c.exec.Run(ctx, c.binary, args)
	if err != nil {
		return services.Wrap(services.ErrExternalTool, "metaflac", "write tags",
			strings.TrimSpace(out), err)
	}
	return nil
}

func appendTag(args []string, name, value string) []string {
	if value == "" {
		return args
	}
	return append(args, "--set-tag="+name+"="+value)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, binary string, args []string) (string, error) {
	cmd := exec.CommandContext(ctx, binary, args...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

var _ Writer = (*Client)(nil)
