// Package domain holds the scan coordinator's core logic: file discovery,
// linter command construction, result parsing, scan sessions and the scanner
// that ties them together.
package domain

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"phpcompat.dev/pkg/phpcompat/internal/adapter"
	m "phpcompat.dev/pkg/phpcompat/internal/model"
)

// FileDiscovery enumerates PHP source files under a scan root.
type FileDiscovery interface {
	// Discover returns the source files under root in walk order, minus those
	// whose root-relative path matches one of exclusions. I/O problems are
	// logged and skipped, never returned.
	Discover(ctx context.Context, root m.Path, exclusions []string) []m.Path
}

type fileDiscovery struct {
	fsAdapter adapter.SourceFSAdapter
}

// NewFileDiscovery constructs a FileDiscovery backed by fsAdapter.
func NewFileDiscovery(fsAdapter adapter.SourceFSAdapter) FileDiscovery {
	return &fileDiscovery{fsAdapter: fsAdapter}
}

func (d *fileDiscovery) Discover(ctx context.Context, root m.Path, exclusions []string) []m.Path {
	files := []m.Path{}

	info, err := d.fsAdapter.FileInfo(ctx, root)
	if err != nil {
		slog.Debug("Scan root not readable", "root", root, "error", err)
		return files
	}

	if !info.IsDir() {
		if m.IsSourceFile(root) {
			files = append(files, root)
		}

		return files
	}

	matcher := newExclusionMatcher(exclusions)

	err = d.fsAdapter.Walk(ctx, root, func(path m.Path, _ fs.FileInfo) error {
		if !m.IsSourceFile(path) {
			return nil
		}

		if matcher.excluded(ctx, d.fsAdapter, root, path) {
			return nil
		}

		files = append(files, path)

		return nil
	})
	if err != nil {
		slog.Warn("File discovery stopped early", "root", root, "error", err)
	}

	slog.Debug("Discovered source files", "root", root, "count", len(files), "exclusions", exclusions)

	return files
}

// exclusionMatcher holds compiled exclusion globs. Patterns are compiled
// without separators, so '*' also matches '/' the way fnmatch does without
// FNM_PATHNAME.
type exclusionMatcher struct {
	patterns []glob.Glob
}

func newExclusionMatcher(exclusions []string) exclusionMatcher {
	matcher := exclusionMatcher{}

	for _, pattern := range exclusions {
		pattern = strings.ReplaceAll(pattern, `\`, "/")
		if pattern == "" {
			continue
		}

		compiled, err := glob.Compile(pattern)
		if err != nil {
			slog.Warn("Ignoring invalid exclusion pattern", "pattern", pattern, "error", err)
			continue
		}

		matcher.patterns = append(matcher.patterns, compiled)
	}

	return matcher
}

func (e exclusionMatcher) excluded(ctx context.Context, fsAdapter adapter.SourceFSAdapter, root, path m.Path) bool {
	if len(e.patterns) == 0 {
		return false
	}

	rel, err := fsAdapter.RelPath(ctx, root, path)
	if err != nil {
		return false
	}

	return e.match(string(rel))
}

func (e exclusionMatcher) match(relPath string) bool {
	normalized := strings.ReplaceAll(filepath.ToSlash(relPath), `\`, "/")

	for _, pattern := range e.patterns {
		if pattern.Match(normalized) {
			return true
		}
	}

	return false
}
