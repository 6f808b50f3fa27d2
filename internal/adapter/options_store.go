package adapter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"

	m "phpcompat.dev/pkg/phpcompat/internal/model"
)

// OptionsStore persists the process-wide scan options.
type OptionsStore interface {
	// Load returns the stored options. A missing store yields DefaultOptions.
	Load(ctx context.Context) (m.Options, error)
	// Save replaces the stored options.
	Save(ctx context.Context, options m.Options) error
}

// YAMLOptionsStore keeps options in a YAML file guarded by an advisory lock so
// concurrent processes never observe a partial write.
type YAMLOptionsStore struct {
	path string
	lock *flock.Flock
}

// NewYAMLOptionsStore creates a store backed by the file at path. The lock
// file lives next to it with a ".lock" suffix.
func NewYAMLOptionsStore(path string) *YAMLOptionsStore {
	return &YAMLOptionsStore{
		path: path,
		lock: flock.New(path + ".lock"),
	}
}

// Path returns the options file location.
func (s *YAMLOptionsStore) Path() string {
	return s.path
}

// Load implements OptionsStore.
func (s *YAMLOptionsStore) Load(ctx context.Context) (m.Options, error) {
	if err := ctx.Err(); err != nil {
		return m.Options{}, err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return m.Options{}, fmt.Errorf("create options directory: %w", err)
	}

	if err := s.lock.RLock(); err != nil {
		return m.Options{}, fmt.Errorf("failed to acquire lock on %s: %w", s.path, err)
	}

	defer func() { _ = s.lock.Unlock() }()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return m.DefaultOptions(), nil
	}

	if err != nil {
		return m.Options{}, fmt.Errorf("read options: %w", err)
	}

	options := m.DefaultOptions()
	if err := yaml.Unmarshal(data, &options); err != nil {
		return m.Options{}, fmt.Errorf("parse options: %w", err)
	}

	return options, nil
}

// Save implements OptionsStore.
func (s *YAMLOptionsStore) Save(ctx context.Context, options m.Options) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := yaml.Marshal(options)
	if err != nil {
		return fmt.Errorf("marshal options: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("create options directory: %w", err)
	}

	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", s.path, err)
	}

	defer func() { _ = s.lock.Unlock() }()

	return atomicWrite(s.path, data)
}

// atomicWrite writes data next to path and renames it into place so readers
// never see a partial file.
func atomicWrite(path string, data []byte) error {
	tempFile, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	tempPath := tempFile.Name()

	defer func() {
		if tempFile != nil {
			_ = tempFile.Close()
			_ = os.Remove(tempPath)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tempPath, 0o600); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", path, err)
	}

	tempFile = nil

	return nil
}
