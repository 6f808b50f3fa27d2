package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	m "phpcompat.dev/pkg/phpcompat/internal/model"
)

func TestPreflightCmd(t *testing.T) {
	t.Run("ready", func(t *testing.T) {
		f := newCLIFixture(t, newPreflightCmd())
		f.scanner.EXPECT().CheckSystemRequirements(mock.Anything).Return(m.ReadinessReport{
			ExecEnabled: true, PHPBinary: "/usr/bin/php", PHPBinaryExists: true,
			PHPCSPath: "vendor/bin/phpcs", PHPCSExists: true, PHPCSVersionOK: true,
			Messages: []string{}, Ready: true,
		}).Once()

		out, err := f.run(t, "preflight")

		require.NoError(t, err)
		requireLines(t, out, "php binary: /usr/bin/php", "phpcs: vendor/bin/phpcs", "Ready")
	})

	t.Run("not ready fails", func(t *testing.T) {
		f := newCLIFixture(t, newPreflightCmd())
		f.scanner.EXPECT().CheckSystemRequirements(mock.Anything).Return(m.ReadinessReport{
			Messages: []string{"Command execution is disabled."},
		}).Once()

		out, err := f.run(t, "preflight")

		require.ErrorIs(t, err, errNotReady)
		requireLines(t, out, "Not ready", "Command execution is disabled.")
	})
}

func TestTargetsCmd(t *testing.T) {
	t.Run("lists targets", func(t *testing.T) {
		f := newCLIFixture(t, newTargetsCmd())
		f.catalog.EXPECT().List(mock.Anything).Return(m.TargetList{
			Plugins: []m.Target{{Type: m.TargetPlugin, Slug: "akismet/akismet.php", Name: "Akismet"}},
			Themes:  []m.Target{{Type: m.TargetTheme, Slug: "twentytwentyfour", Name: "Twenty Twenty-Four"}},
		}, nil).Once()

		out, err := f.run(t, "targets")

		require.NoError(t, err)
		requireLines(t, out, "plugin:akismet/akismet.php", "Akismet", "theme:twentytwentyfour")
	})

	t.Run("catalog error", func(t *testing.T) {
		f := newCLIFixture(t, newTargetsCmd())
		f.catalog.EXPECT().List(mock.Anything).Return(m.TargetList{}, errors.New("permission denied")).Once()

		_, err := f.run(t, "targets")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "list targets")
	})
}

func TestStopCmd(t *testing.T) {
	t.Run("every scan", func(t *testing.T) {
		f := newCLIFixture(t, newStopCmd())
		f.scanner.EXPECT().RequestStop(mock.Anything, "").Return(nil).Once()

		out, err := f.run(t, "stop")

		require.NoError(t, err)
		requireLines(t, out, "Scan stop requested.")
	})

	t.Run("one scan", func(t *testing.T) {
		f := newCLIFixture(t, newStopCmd())
		f.scanner.EXPECT().RequestStop(mock.Anything, "phpcompat_scan_1").Return(nil).Once()

		_, err := f.run(t, "stop", "--scan-id", "phpcompat_scan_1")

		require.NoError(t, err)
	})

	t.Run("store failure", func(t *testing.T) {
		f := newCLIFixture(t, newStopCmd())
		f.scanner.EXPECT().RequestStop(mock.Anything, "").Return(errors.New("database is locked")).Once()

		_, err := f.run(t, "stop")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "database is locked")
	})
}

func TestOptionsCmd(t *testing.T) {
	t.Run("show", func(t *testing.T) {
		f := newCLIFixture(t, newOptionsCmd())
		f.options.EXPECT().Load(mock.Anything).Return(m.DefaultOptions(), nil).Once()

		out, err := f.run(t, "options")

		require.NoError(t, err)
		requireLines(t, out, "batch_size", "50", "php_version", "8.3")
	})

	t.Run("set changes only given flags", func(t *testing.T) {
		f := newCLIFixture(t, newOptionsCmd())
		stored := m.Options{ReportMode: m.ReportSummary, BatchSize: 25, PHPVersion: "7.4", SkipVendor: true}
		want := m.Options{ReportMode: m.ReportSummary, BatchSize: 100, PHPVersion: "7.4", SkipVendor: false}

		f.options.EXPECT().Load(mock.Anything).Return(stored, nil).Once()
		f.options.EXPECT().Save(mock.Anything, want).Return(want, nil).Once()

		out, err := f.run(t, "options", "set", "--batch-size", "100", "--skip-vendor=false")

		require.NoError(t, err)
		requireLines(t, out, "Options saved successfully.", "100", "summary")
	})

	t.Run("set shows clamped values", func(t *testing.T) {
		f := newCLIFixture(t, newOptionsCmd())
		f.options.EXPECT().Load(mock.Anything).Return(m.DefaultOptions(), nil).Once()
		f.options.EXPECT().Save(mock.Anything, mock.MatchedBy(func(o m.Options) bool {
			return o.PHPVersion == "5.6"
		})).Return(m.DefaultOptions(), nil).Once()

		out, err := f.run(t, "options", "set", "--php-version", "5.6")

		require.NoError(t, err)
		requireLines(t, out, "8.3")
	})

	t.Run("save failure", func(t *testing.T) {
		f := newCLIFixture(t, newOptionsCmd())
		f.options.EXPECT().Load(mock.Anything).Return(m.DefaultOptions(), nil).Once()
		f.options.EXPECT().Save(mock.Anything, mock.Anything).Return(m.Options{}, errors.New("read-only file system")).Once()

		_, err := f.run(t, "options", "set", "--report-mode", "summary")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "save options")
	})
}

func TestSessionsCmd(t *testing.T) {
	t.Run("sweep", func(t *testing.T) {
		f := newCLIFixture(t, newSessionsCmd())
		f.sessions.EXPECT().Sweep(mock.Anything).Return([]string{"a", "b"}, nil).Once()

		out, err := f.run(t, "sessions", "sweep")

		require.NoError(t, err)
		requireLines(t, out, "Removed 2 expired session(s).")
	})

	t.Run("delete", func(t *testing.T) {
		f := newCLIFixture(t, newSessionsCmd())
		f.sessions.EXPECT().Delete(mock.Anything, "one").Return(nil).Once()
		f.sessions.EXPECT().Delete(mock.Anything, "two").Return(nil).Once()

		out, err := f.run(t, "sessions", "delete", "one", "two")

		require.NoError(t, err)
		requireLines(t, out, "Deleted 2 session(s).")
	})

	t.Run("delete needs an id", func(t *testing.T) {
		f := newCLIFixture(t, newSessionsCmd())

		_, err := f.run(t, "sessions", "delete")

		require.Error(t, err)
	})
}
