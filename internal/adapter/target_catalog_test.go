package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "phpcompat.dev/pkg/phpcompat/internal/model"
)

func writeContentFile(t *testing.T, root, rel, content string) {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func newContentDir(t *testing.T) string {
	t.Helper()

	root := t.TempDir()

	writeContentFile(t, root, "plugins/akismet/akismet.php", "<?php\n/*\nPlugin Name: Akismet Anti-spam\nVersion: 5.3\n*/\n")
	writeContentFile(t, root, "plugins/akismet/class.akismet.php", "<?php\nclass Akismet {}\n")
	writeContentFile(t, root, "plugins/hello.php", "<?php\n/**\n * Plugin Name: Hello Dolly\n */\n")
	writeContentFile(t, root, "plugins/.hidden/hidden.php", "<?php\n/* Plugin Name: Hidden */\n")
	writeContentFile(t, root, "plugins/index.php", "<?php\n// Silence is golden.\n")
	writeContentFile(t, root, "themes/twentytwentyfour/style.css", "/*\nTheme Name: Twenty Twenty-Four\n*/\n")
	writeContentFile(t, root, "themes/nameless/style.css", "/*\nTheme Name:\n*/\n")
	writeContentFile(t, root, "themes/broken/index.php", "<?php\n")

	return root
}

func TestWordPressCatalog_List(t *testing.T) {
	root := newContentDir(t)
	catalog := NewWordPressCatalog(root)

	list, err := catalog.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []m.Target{
		{Type: m.TargetPlugin, Slug: "akismet/akismet.php", Name: "Akismet Anti-spam", Path: m.Path(filepath.Join(root, "plugins", "akismet"))},
		{Type: m.TargetPlugin, Slug: "hello.php", Name: "Hello Dolly", Path: m.Path(filepath.Join(root, "plugins"))},
	}, list.Plugins)

	assert.Equal(t, []m.Target{
		{Type: m.TargetTheme, Slug: "nameless", Name: "nameless", Path: m.Path(filepath.Join(root, "themes", "nameless"))},
		{Type: m.TargetTheme, Slug: "twentytwentyfour", Name: "Twenty Twenty-Four", Path: m.Path(filepath.Join(root, "themes", "twentytwentyfour"))},
	}, list.Themes)
}

func TestWordPressCatalog_ListMissingDirectories(t *testing.T) {
	list, err := NewWordPressCatalog(t.TempDir()).List(context.Background())
	require.NoError(t, err)

	assert.Empty(t, list.Plugins)
	assert.Empty(t, list.Themes)
}

func TestWordPressCatalog_Resolve(t *testing.T) {
	ctx := context.Background()
	root := newContentDir(t)
	catalog := NewWordPressCatalog(root)

	path, err := catalog.Resolve(ctx, m.TargetPlugin, "akismet/akismet.php")
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.Join(root, "plugins", "akismet")), path)

	path, err = catalog.Resolve(ctx, m.TargetTheme, "twentytwentyfour")
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.Join(root, "themes", "twentytwentyfour")), path)

	tests := []struct {
		name       string
		targetType m.TargetType
		slug       string
	}{
		{"empty slug", m.TargetPlugin, ""},
		{"traversal", m.TargetTheme, "../plugins"},
		{"missing plugin", m.TargetPlugin, "nope/nope.php"},
		{"theme file is not a directory", m.TargetTheme, "twentytwentyfour/style.css"},
		{"unknown type", m.TargetType("mu-plugin"), "akismet/akismet.php"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.Resolve(ctx, tt.targetType, tt.slug)
			assert.ErrorIs(t, err, ErrTargetNotFound)
		})
	}
}
