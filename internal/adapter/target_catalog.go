package adapter

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	m "phpcompat.dev/pkg/phpcompat/internal/model"
)

// ErrTargetNotFound is returned when a type/slug pair does not resolve.
var ErrTargetNotFound = errors.New("scan target not found")

// headerScanLimit bounds how much of a file is read looking for a header.
const headerScanLimit = 8 * 1024

// TargetCatalog lists scannable plugins and themes and resolves them to paths.
type TargetCatalog interface {
	List(ctx context.Context) (m.TargetList, error)
	Resolve(ctx context.Context, targetType m.TargetType, slug string) (m.Path, error)
}

// WordPressCatalog reads plugins and themes from a WordPress content
// directory (the one holding plugins/ and themes/).
type WordPressCatalog struct {
	pluginsDir string
	themesDir  string
}

// NewWordPressCatalog creates a catalog rooted at contentDir.
func NewWordPressCatalog(contentDir string) *WordPressCatalog {
	return &WordPressCatalog{
		pluginsDir: filepath.Join(contentDir, "plugins"),
		themesDir:  filepath.Join(contentDir, "themes"),
	}
}

// List implements TargetCatalog.
func (c *WordPressCatalog) List(ctx context.Context) (m.TargetList, error) {
	plugins, err := c.listPlugins(ctx)
	if err != nil {
		return m.TargetList{}, fmt.Errorf("list plugins: %w", err)
	}

	themes, err := c.listThemes(ctx)
	if err != nil {
		return m.TargetList{}, fmt.Errorf("list themes: %w", err)
	}

	return m.TargetList{Plugins: plugins, Themes: themes}, nil
}

// Resolve implements TargetCatalog. A plugin slug names its main file
// ("dir/file.php"); the scan root is that file's directory. A theme slug names
// its directory.
func (c *WordPressCatalog) Resolve(_ context.Context, targetType m.TargetType, slug string) (m.Path, error) {
	if slug == "" || strings.Contains(slug, "..") {
		return "", ErrTargetNotFound
	}

	switch targetType {
	case m.TargetPlugin:
		pluginFile := filepath.Join(c.pluginsDir, filepath.FromSlash(slug))
		if _, err := os.Stat(pluginFile); err != nil {
			return "", ErrTargetNotFound
		}

		return m.Path(filepath.Dir(pluginFile)), nil
	case m.TargetTheme:
		themeDir := filepath.Join(c.themesDir, filepath.FromSlash(slug))

		info, err := os.Stat(themeDir)
		if err != nil || !info.IsDir() {
			return "", ErrTargetNotFound
		}

		return m.Path(themeDir), nil
	default:
		return "", ErrTargetNotFound
	}
}

func (c *WordPressCatalog) listPlugins(ctx context.Context) ([]m.Target, error) {
	entries, err := readDirIfExists(c.pluginsDir)
	if err != nil {
		return nil, err
	}

	targets := []m.Target{}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		if !entry.IsDir() {
			if strings.EqualFold(filepath.Ext(entry.Name()), ".php") {
				if target, ok := c.pluginFromFile(entry.Name()); ok {
					targets = append(targets, target)
				}
			}

			continue
		}

		files, err := os.ReadDir(filepath.Join(c.pluginsDir, entry.Name()))
		if err != nil {
			continue
		}

		for _, file := range files {
			if file.IsDir() || !strings.EqualFold(filepath.Ext(file.Name()), ".php") {
				continue
			}

			if target, ok := c.pluginFromFile(entry.Name() + "/" + file.Name()); ok {
				targets = append(targets, target)
			}
		}
	}

	sort.Slice(targets, func(i, j int) bool {
		return targets[i].Slug < targets[j].Slug
	})

	return targets, nil
}

func (c *WordPressCatalog) pluginFromFile(slug string) (m.Target, bool) {
	path := filepath.Join(c.pluginsDir, filepath.FromSlash(slug))

	name, ok := readHeader(path, "Plugin Name")
	if !ok {
		return m.Target{}, false
	}

	if name == "" {
		name = slug
	}

	return m.Target{
		Type: m.TargetPlugin,
		Slug: slug,
		Name: name,
		Path: m.Path(filepath.Dir(path)),
	}, true
}

func (c *WordPressCatalog) listThemes(ctx context.Context) ([]m.Target, error) {
	entries, err := readDirIfExists(c.themesDir)
	if err != nil {
		return nil, err
	}

	targets := []m.Target{}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		dir := filepath.Join(c.themesDir, entry.Name())

		name, ok := readHeader(filepath.Join(dir, "style.css"), "Theme Name")
		if !ok {
			continue
		}

		if name == "" {
			name = entry.Name()
		}

		targets = append(targets, m.Target{
			Type: m.TargetTheme,
			Slug: entry.Name(),
			Name: name,
			Path: m.Path(dir),
		})
	}

	sort.Slice(targets, func(i, j int) bool {
		return targets[i].Slug < targets[j].Slug
	})

	return targets, nil
}

func readDirIfExists(dir string) ([]os.DirEntry, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	return entries, err
}

// readHeader looks for "<field>: value" in the first bytes of a file. The bool
// is false when the file is unreadable or carries no such header.
func readHeader(path, field string) (string, bool) {
	// #nosec G304 - path is built from the configured content directory
	file, err := os.Open(path)
	if err != nil {
		return "", false
	}

	defer func() { _ = file.Close() }()

	scanner := bufio.NewScanner(io.LimitReader(file, headerScanLimit))
	needle := strings.ToLower(field) + ":"

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		line = strings.TrimLeft(line, "/*# \t")

		if strings.HasPrefix(strings.ToLower(line), needle) {
			value := strings.TrimSpace(line[len(needle):])
			value = strings.TrimSpace(strings.TrimSuffix(value, "*/"))

			return value, true
		}
	}

	return "", false
}
