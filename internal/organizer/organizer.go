// Package organizer relocates converted tracks from per-disc workspaces into
// their destination directory.
//
// Destination resolution follows the dest_dir convention: an absolute value
// collects every disc's output under one directory, flattening the source
// tree; a relative value resolves against the source directory containing
// the sheet so each source subdirectory keeps its own sibling output
// directory. Moves fall back to copy-and-remove across filesystems.
package organizer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"cueflac/internal/services"
)

// ResolveDestination applies the absolute/relative dest_dir convention.
func ResolveDestination(destDir, sourceDir string) string {
	if filepath.IsAbs(destDir) {
		return destDir
	}
	return filepath.Join(sourceDir, destDir)
}

// EnsureDirectory creates destDir when absent. A path that exists as a
// regular file is a conflict.
func EnsureDirectory(destDir string) error {
	if info, err := os.Stat(destDir); err == nil && !info.IsDir() {
		return services.Wrap(services.ErrDestinationConflict, "organizer", "create destination",
			fmt.Sprintf("%s exists as a file", destDir), nil)
	} else if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("stat destination %s: %w", destDir, err)
	}
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("create destination %s: %w", destDir, err)
	}
	return nil
}

// MoveContents relocates every visible file from sourceDir into destDir,
// creating destDir when absent. A destination path that exists as a regular
// file is a conflict, reported before anything moves.
func MoveContents(sourceDir, destDir string) error {
	if err := EnsureDirectory(destDir); err != nil {
		return err
	}

	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return fmt.Errorf("read workspace %s: %w", sourceDir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		source := filepath.Join(sourceDir, entry.Name())
		target := filepath.Join(destDir, entry.Name())
		if err := moveFile(source, target); err != nil {
			return err
		}
	}
	return nil
}

// moveFile renames, falling back to copy-and-remove when source and target
// live on different filesystems.
func moveFile(sourcePath, targetPath string) error {
	if err := os.Rename(sourcePath, targetPath); err != nil {
		var linkErr *os.LinkError
		if errors.As(err, &linkErr) && errors.Is(linkErr.Err, syscall.EXDEV) {
			if err := copyFileContents(sourcePath, targetPath); err != nil {
				return fmt.Errorf("copy file across devices: %w", err)
			}
			if err := os.Remove(sourcePath); err != nil {
				return fmt.Errorf("remove source after copy: %w", err)
			}
			return nil
		}
		return fmt.Errorf("move file: %w", err)
	}
	return nil
}

func copyFileContents(sourcePath, targetPath string) error {
	source, err := os.Open(sourcePath)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer source.Close()

	info, err := source.Stat()
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}

	dest, err := os.OpenFile(targetPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}

	if _, err := io.Copy(dest, source); err != nil {
		dest.Close()
		return fmt.Errorf("copy data: %w", err)
	}
	if err := dest.Sync(); err != nil {
		dest.Close()
		return fmt.Errorf("sync destination: %w", err)
	}
	if err := dest.Close(); err != nil {
		return fmt.Errorf("close destination: %w", err)
	}
	return nil
}
