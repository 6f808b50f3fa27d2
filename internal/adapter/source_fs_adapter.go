// Package adapter contains the infrastructure adapters used by the scan
// coordinator: filesystem, external processes, persistence and targets.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	m "phpcompat.dev/pkg/phpcompat/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning plugin and theme trees. It intentionally hides direct
// `os` access so the scan logic can be tested without touching the disk.
//
//nolint:interfacebloat // A richer interface keeps domain logic decoupled from os/fs.
type SourceFSAdapter interface {
	// Walk traverses root recursively, calling fn for every regular file.
	// Entries that cannot be read are skipped.
	Walk(ctx context.Context, root m.Path, fn FileWalkFunc) error

	// FileInfo returns metadata for a path so the domain can check existence or
	// distinguish between files and directories when necessary.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)

	// Exists reports whether path exists.
	Exists(ctx context.Context, path m.Path) bool

	// WriteTempFile creates a uniquely named file in dir and writes content to it.
	// The pattern follows os.CreateTemp.
	WriteTempFile(ctx context.Context, dir m.Path, pattern string, content []byte) (m.Path, error)

	// Remove deletes a single file. Missing files are not an error.
	Remove(ctx context.Context, path m.Path) error

	// RelPath returns the relative path from base to target.
	RelPath(ctx context.Context, base, target m.Path) (m.Path, error)
}

// FileWalkFunc receives every regular file found by Walk.
type FileWalkFunc func(path m.Path, info fs.FileInfo) error

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Walk iterates over regular files under root. A symlinked root is followed
// and symlinks to regular files are reported; symlinked directories below the
// root are not descended into. Paths are reported under root as given.
// Directories that fail to open are skipped rather than aborting the traversal.
func (a *LocalSourceFSAdapter) Walk(ctx context.Context, root m.Path, fn FileWalkFunc) error {
	walkRoot := string(root)

	resolved, err := filepath.EvalSymlinks(walkRoot)
	if err != nil {
		slog.Debug("Walking unresolved root", "root", root, "error", err)
	} else {
		walkRoot = resolved
	}

	return filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			slog.Debug("Skipping unreadable entry", "path", path, "error", err)

			if d != nil && d.IsDir() && path != walkRoot {
				return filepath.SkipDir
			}

			return nil
		}

		if d.IsDir() {
			return nil
		}

		info, err := entryInfo(path, d)
		if err != nil {
			slog.Debug("Skipping entry without info", "path", path, "error", err)
			return nil
		}

		if !info.Mode().IsRegular() {
			return nil
		}

		return fn(underRoot(root, walkRoot, path), info)
	})
}

// entryInfo returns the entry's own info, or its target's for a symlink.
func entryInfo(path string, d fs.DirEntry) (fs.FileInfo, error) {
	if d.Type()&fs.ModeSymlink != 0 {
		return os.Stat(path)
	}

	return d.Info()
}

// underRoot maps a path found below walkRoot back onto root.
func underRoot(root m.Path, walkRoot, path string) m.Path {
	if walkRoot == string(root) {
		return m.Path(path)
	}

	rel, err := filepath.Rel(walkRoot, path)
	if err != nil {
		return m.Path(path)
	}

	return m.Path(filepath.Join(string(root), rel))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(_ context.Context, path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// Exists reports whether path exists.
func (a *LocalSourceFSAdapter) Exists(_ context.Context, path m.Path) bool {
	if path == "" {
		return false
	}

	_, err := os.Stat(string(path))

	return err == nil
}

// WriteTempFile creates a uniquely named file in dir holding content.
func (a *LocalSourceFSAdapter) WriteTempFile(_ context.Context, dir m.Path, pattern string, content []byte) (m.Path, error) {
	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}

	file, err := os.CreateTemp(string(dir), pattern)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	name := file.Name()

	if _, err := file.Write(content); err != nil {
		_ = file.Close()
		_ = os.Remove(name)

		return "", fmt.Errorf("write temp file: %w", err)
	}

	if err := file.Close(); err != nil {
		_ = os.Remove(name)
		return "", fmt.Errorf("close temp file: %w", err)
	}

	return m.Path(name), nil
}

// Remove deletes a single file.
func (a *LocalSourceFSAdapter) Remove(_ context.Context, path m.Path) error {
	if path == "" {
		return nil
	}

	err := os.Remove(string(path))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return nil
}

// RelPath returns the relative path from base to target.
func (a *LocalSourceFSAdapter) RelPath(_ context.Context, base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}
