// Package scanner walks a source tree and groups regular files by their
// lower-cased extension, so conversion can decide between sheet-driven
// splitting and direct per-file transcoding.
package scanner

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// SheetExtension identifies disc-sheet files.
const SheetExtension = "cue"

// RawSourceExtensions is the fixed allow-list of container formats converted
// directly when no sheet drives the album.
var RawSourceExtensions = []string{"m4a", "wav", "ape", "wv"}

// Options controls tree traversal.
type Options struct {
	// OnlyTopDir restricts the scan to the root directory itself.
	OnlyTopDir bool
	// SkipDirPrefixes names directory prefixes excluded from traversal,
	// such as leftover temporary workspaces.
	SkipDirPrefixes []string
}

// Tree is the result of scanning one source directory.
type Tree struct {
	byExt map[string][]string
}

// Scan walks root and classifies every regular file by extension.
func Scan(root string, opts Options) (*Tree, error) {
	tree := &Tree{byExt: make(map[string][]string)}
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			if path == root {
				return nil
			}
			if opts.OnlyTopDir || hasPrefix(entry.Name(), opts.SkipDirPrefixes) {
				return filepath.SkipDir
			}
			return nil
		}
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(entry.Name()), "."))
		if ext == "" {
			return nil
		}
		tree.byExt[ext] = append(tree.byExt[ext], path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}
	for ext := range tree.byExt {
		sort.Strings(tree.byExt[ext])
	}
	return tree, nil
}

// Sheets returns every sheet file found, in path order.
func (t *Tree) Sheets() []string {
	return t.WithExtension(SheetExtension)
}

// WithExtension returns the files recorded for a lower-cased extension.
func (t *Tree) WithExtension(ext string) []string {
	return t.byExt[ext]
}

// RawSources returns the files matching the raw source allow-list, grouped
// in allow-list order.
func (t *Tree) RawSources() []string {
	var files []string
	for _, ext := range RawSourceExtensions {
		files = append(files, t.byExt[ext]...)
	}
	return files
}

func hasPrefix(name string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if prefix != "" && strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}
