package domain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"phpcompat.dev/pkg/phpcompat/internal/adapter"
	adaptermocks "phpcompat.dev/pkg/phpcompat/internal/adapter/mocks"
	"phpcompat.dev/pkg/phpcompat/internal/domain"
	domainmocks "phpcompat.dev/pkg/phpcompat/internal/domain/mocks"
	m "phpcompat.dev/pkg/phpcompat/internal/model"
)

type scannerFixture struct {
	fs        *adaptermocks.MockSourceFSAdapter
	runner    *adaptermocks.MockProcessRunnerAdapter
	store     *adaptermocks.MockSessionStore
	discovery *domainmocks.MockFileDiscovery
	builder   *domainmocks.MockCommandBuilder
	sessions  *domainmocks.MockScanSessions
	options   *domainmocks.MockOptionsService
}

func newScannerFixture(t *testing.T) scannerFixture {
	return scannerFixture{
		fs:        adaptermocks.NewMockSourceFSAdapter(t),
		runner:    adaptermocks.NewMockProcessRunnerAdapter(t),
		store:     adaptermocks.NewMockSessionStore(t),
		discovery: domainmocks.NewMockFileDiscovery(t),
		builder:   domainmocks.NewMockCommandBuilder(t),
		sessions:  domainmocks.NewMockScanSessions(t),
		options:   domainmocks.NewMockOptionsService(t),
	}
}

func (f scannerFixture) scanner(execEnabled bool) domain.Scanner {
	return domain.NewScanner(domain.ScannerConfig{ExecEnabled: execEnabled}, domain.ScannerDeps{
		FS:        f.fs,
		Runner:    f.runner,
		Store:     f.store,
		Discovery: f.discovery,
		Builder:   f.builder,
		Parser:    domain.NewResultParser(),
		Sessions:  f.sessions,
		Options:   f.options,
	})
}

func TestScanner_CheckSystemRequirements(t *testing.T) {
	versionCmd := m.Command{Binary: "/usr/bin/php", Args: []string{"/app/vendor/bin/phpcs", "--version"}, Line: "'/usr/bin/php' '/app/vendor/bin/phpcs' --version 2>&1"}

	t.Run("ready when every check passes", func(t *testing.T) {
		f := newScannerFixture(t)
		f.builder.EXPECT().InterpreterPath(mock.Anything).Return("/usr/bin/php")
		f.builder.EXPECT().LinterPath(mock.Anything).Return("/app/vendor/bin/phpcs")
		f.builder.EXPECT().VersionCommand(mock.Anything).Return(versionCmd).Once()
		f.fs.EXPECT().Exists(mock.Anything, mock.Anything).Return(true)
		f.runner.EXPECT().Run(mock.Anything, "/usr/bin/php", versionCmd.Args).
			Return(m.ProcessResult{ExitCode: 0, Lines: []string{
				"X-Powered-By: PHP/8.3.0",
				"Content-type: text/html; charset=UTF-8",
				"",
				"PHP_CodeSniffer version 3.10.1 (stable) by Squiz and PHPCSStandards",
			}}, nil).Once()

		report := f.scanner(true).CheckSystemRequirements(context.Background())

		assert.True(t, report.Ready)
		assert.True(t, report.PHPCSVersionOK)
		assert.Equal(t, versionCmd.Line, report.PHPCSVersionCmd)
		assert.Equal(t, "PHP_CodeSniffer version 3.10.1 (stable) by Squiz and PHPCSStandards", report.PHPCSVersionOutput)
		assert.Empty(t, report.Messages)
	})

	t.Run("probe is skipped when exec is disabled", func(t *testing.T) {
		f := newScannerFixture(t)
		f.builder.EXPECT().InterpreterPath(mock.Anything).Return("/usr/bin/php")
		f.builder.EXPECT().LinterPath(mock.Anything).Return("/app/vendor/bin/phpcs")
		f.fs.EXPECT().Exists(mock.Anything, mock.Anything).Return(true)

		report := f.scanner(false).CheckSystemRequirements(context.Background())

		assert.False(t, report.Ready)
		assert.False(t, report.ExecEnabled)
		assert.Contains(t, report.Messages, domain.MsgExecDisabled)
		assert.Empty(t, report.PHPCSVersionCmd)
	})

	t.Run("missing linter is reported with its path", func(t *testing.T) {
		f := newScannerFixture(t)
		f.builder.EXPECT().InterpreterPath(mock.Anything).Return("/usr/bin/php")
		f.builder.EXPECT().LinterPath(mock.Anything).Return("/app/vendor/bin/phpcs")
		f.fs.EXPECT().Exists(mock.Anything, m.Path("/usr/bin/php")).Return(true)
		f.fs.EXPECT().Exists(mock.Anything, m.Path("/app/vendor/bin/phpcs")).Return(false)

		report := f.scanner(true).CheckSystemRequirements(context.Background())

		assert.False(t, report.Ready)
		assert.True(t, report.PHPBinaryExists)
		assert.False(t, report.PHPCSExists)
		assert.Equal(t, "/app/vendor/bin/phpcs", report.PHPCSPath)
		assert.Len(t, report.Messages, 1)
	})

	t.Run("failing probe", func(t *testing.T) {
		f := newScannerFixture(t)
		f.builder.EXPECT().InterpreterPath(mock.Anything).Return("/usr/bin/php")
		f.builder.EXPECT().LinterPath(mock.Anything).Return("/app/vendor/bin/phpcs")
		f.builder.EXPECT().VersionCommand(mock.Anything).Return(versionCmd).Once()
		f.fs.EXPECT().Exists(mock.Anything, mock.Anything).Return(true)
		f.runner.EXPECT().Run(mock.Anything, mock.Anything, mock.Anything).
			Return(m.ProcessResult{ExitCode: 255, Lines: []string{"Fatal error"}}, nil).Once()

		report := f.scanner(true).CheckSystemRequirements(context.Background())

		assert.False(t, report.Ready)
		assert.False(t, report.PHPCSVersionOK)
		assert.Equal(t, "Fatal error", report.PHPCSVersionOutput)
		assert.Contains(t, report.Messages, domain.MsgVersionProbeBad)
	})
}

func TestScanner_ScanBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("empty batch never starts a process", func(t *testing.T) {
		f := newScannerFixture(t)

		out, err := f.scanner(true).ScanBatch(ctx, nil, "8.3")

		require.NoError(t, err)
		assert.Equal(t, m.ScanOutput{Output: domain.MsgEmptyBatch}, out)
	})

	t.Run("parses counts and removes the file list", func(t *testing.T) {
		f := newScannerFixture(t)
		files := []m.Path{"/srv/a.php", "/srv/b.php"}
		cmd := m.Command{Binary: "php", Args: []string{"phpcs", "--file-list=/tmp/filelist_1.tmp"}, FileList: "/tmp/filelist_1.tmp"}

		f.builder.EXPECT().Build(mock.Anything, files, "8.0").Return(cmd).Once()
		f.runner.EXPECT().Run(mock.Anything, "php", cmd.Args).Return(m.ProcessResult{
			ExitCode: 2,
			Lines: []string{
				"FILE: /srv/a.php",
				"FOUND 2 ERRORS AND 1 WARNING AFFECTING 2 LINES",
				"FILE: /srv/b.php",
				"FOUND 1 WARNING AFFECTING 1 LINE",
			},
		}, nil).Once()
		f.fs.EXPECT().Remove(mock.Anything, m.Path("/tmp/filelist_1.tmp")).Return(nil).Once()

		out, err := f.scanner(true).ScanBatch(ctx, files, "8.0")

		require.NoError(t, err)
		assert.Equal(t, 2, out.Errors)
		assert.Equal(t, 2, out.Warnings)
		assert.Equal(t, 2, out.ExitCode)
		assert.Contains(t, out.Output, "FILE: /srv/b.php")
	})

	t.Run("empty output becomes the no issues message", func(t *testing.T) {
		f := newScannerFixture(t)
		files := []m.Path{"/srv/a.php"}

		f.builder.EXPECT().Build(mock.Anything, files, "8.3").Return(m.Command{Binary: "php"}).Once()
		f.runner.EXPECT().Run(mock.Anything, "php", mock.Anything).Return(m.ProcessResult{Lines: []string{}}, nil).Once()

		out, err := f.scanner(true).ScanBatch(ctx, files, "")

		require.NoError(t, err)
		assert.Equal(t, domain.MsgNoIssues, out.Output)
		assert.Zero(t, out.Errors)
	})

	t.Run("file list is removed when the process cannot start", func(t *testing.T) {
		f := newScannerFixture(t)
		files := []m.Path{"/srv/a.php", "/srv/b.php"}
		cmd := m.Command{Binary: "php", FileList: "/tmp/filelist_2.tmp"}

		f.builder.EXPECT().Build(mock.Anything, files, "8.3").Return(cmd).Once()
		f.runner.EXPECT().Run(mock.Anything, "php", mock.Anything).
			Return(m.ProcessResult{ExitCode: -1}, errors.New("exec: \"php\": executable file not found")).Once()
		f.fs.EXPECT().Remove(mock.Anything, m.Path("/tmp/filelist_2.tmp")).Return(nil).Once()

		out, err := f.scanner(true).ScanBatch(ctx, files, "8.3")

		require.Error(t, err)
		assert.Contains(t, out.Output, "executable file not found")
		assert.Zero(t, out.Errors)
		assert.Zero(t, out.Warnings)
	})

	t.Run("version falls back to stored options", func(t *testing.T) {
		f := newScannerFixture(t)
		files := []m.Path{"/srv/a.php"}
		options := m.DefaultOptions()
		options.PHPVersion = "7.4"

		f.options.EXPECT().Load(mock.Anything).Return(options, nil).Once()
		f.builder.EXPECT().Build(mock.Anything, files, "7.4").Return(m.Command{Binary: "php"}).Once()
		f.runner.EXPECT().Run(mock.Anything, "php", mock.Anything).Return(m.ProcessResult{}, nil).Once()

		_, err := f.scanner(true).ScanBatch(ctx, files, "")

		require.NoError(t, err)
	})
}

func TestScanner_GetScanProgress(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a session", func(t *testing.T) {
		f := newScannerFixture(t)
		files := []m.Path{"/srv/a.php", "/srv/b.php", "/srv/c.php"}

		f.fs.EXPECT().Exists(mock.Anything, m.Path("/srv")).Return(true).Once()
		f.discovery.EXPECT().Discover(mock.Anything, m.Path("/srv"), []string{"vendor/*"}).Return(files).Once()
		f.sessions.EXPECT().Create(mock.Anything, files, 2, []string{"vendor/*"}).Return("phpcompat_scan_1", nil).Once()

		progress, err := f.scanner(true).GetScanProgress(ctx, "/srv", 2, []string{"vendor/*"})

		require.NoError(t, err)
		assert.Equal(t, m.ProgressInfo{TotalFiles: 3, EstimatedBatches: 2, ScanID: "phpcompat_scan_1"}, progress)
		assert.True(t, progress.HasFiles())
	})

	t.Run("no files creates no session", func(t *testing.T) {
		f := newScannerFixture(t)

		f.fs.EXPECT().Exists(mock.Anything, m.Path("/srv")).Return(true).Once()
		f.discovery.EXPECT().Discover(mock.Anything, m.Path("/srv"), mock.Anything).Return([]m.Path{}).Once()

		progress, err := f.scanner(true).GetScanProgress(ctx, "/srv", 50, nil)

		require.NoError(t, err)
		assert.False(t, progress.HasFiles())
		assert.Equal(t, domain.MsgNoFiles, progress.Message)
	})

	t.Run("missing target", func(t *testing.T) {
		f := newScannerFixture(t)
		f.fs.EXPECT().Exists(mock.Anything, m.Path("/nope")).Return(false).Once()

		_, err := f.scanner(true).GetScanProgress(ctx, "/nope", 50, nil)

		require.ErrorIs(t, err, domain.ErrInvalidTarget)
	})
}

func TestScanner_ProcessBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("scans the slice", func(t *testing.T) {
		f := newScannerFixture(t)
		slice := m.BatchSlice{Files: []m.Path{"/srv/a.php"}, BatchNumber: 2, TotalBatches: 2, IsLastBatch: true}

		f.sessions.EXPECT().GetBatch(mock.Anything, "scan", 2).Return(slice, nil).Once()
		f.builder.EXPECT().Build(mock.Anything, slice.Files, "8.1").Return(m.Command{Binary: "php"}).Once()
		f.runner.EXPECT().Run(mock.Anything, "php", mock.Anything).
			Return(m.ProcessResult{ExitCode: 1, Lines: []string{"FOUND 1 ERROR AFFECTING 1 LINE"}}, nil).Once()

		result, err := f.scanner(true).ProcessBatch(ctx, "scan", 2, "8.1")

		require.NoError(t, err)
		assert.Equal(t, 2, result.BatchNumber)
		assert.True(t, result.IsLastBatch)
		assert.Equal(t, 1, result.Errors)
		assert.Empty(t, result.Message)
	})

	t.Run("lookup failures are passed through without scanning", func(t *testing.T) {
		f := newScannerFixture(t)
		slice := m.BatchSlice{Files: []m.Path{}, BatchNumber: 9, TotalBatches: 2, Message: domain.MsgInvalidBatchNumber}

		f.sessions.EXPECT().GetBatch(mock.Anything, "scan", 9).Return(slice, nil).Once()

		result, err := f.scanner(true).ProcessBatch(ctx, "scan", 9, "8.1")

		require.NoError(t, err)
		assert.Equal(t, domain.MsgInvalidBatchNumber, result.Message)
		assert.Equal(t, domain.MsgInvalidBatchNumber, result.Output)
		assert.Equal(t, 2, result.TotalBatches)
	})
}

func TestScanner_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("missing target", func(t *testing.T) {
		f := newScannerFixture(t)
		f.fs.EXPECT().Exists(mock.Anything, m.Path("/nope")).Return(false).Once()

		assert.Equal(t, domain.MsgNoTarget, f.scanner(true).Run(ctx, "/nope", "8.3"))
	})

	t.Run("missing linter", func(t *testing.T) {
		f := newScannerFixture(t)
		f.fs.EXPECT().Exists(mock.Anything, m.Path("/srv")).Return(true).Once()
		f.builder.EXPECT().LinterPath(mock.Anything).Return("/app/vendor/bin/phpcs").Once()
		f.fs.EXPECT().Exists(mock.Anything, m.Path("/app/vendor/bin/phpcs")).Return(false).Once()

		assert.Equal(t, domain.MsgLinterMissing, f.scanner(true).Run(ctx, "/srv", "8.3"))
	})

	t.Run("returns raw output", func(t *testing.T) {
		f := newScannerFixture(t)
		f.fs.EXPECT().Exists(mock.Anything, mock.Anything).Return(true)
		f.builder.EXPECT().LinterPath(mock.Anything).Return("/app/vendor/bin/phpcs").Once()
		f.builder.EXPECT().Build(mock.Anything, []m.Path{"/srv"}, "8.3").Return(m.Command{Binary: "php"}).Once()
		f.runner.EXPECT().Run(mock.Anything, "php", mock.Anything).
			Return(m.ProcessResult{ExitCode: 0, Lines: []string{"line one", "line two"}}, nil).Once()

		assert.Equal(t, "line one\nline two", f.scanner(true).Run(ctx, "/srv", "8.3"))
	})
}

func TestScanner_ScanInBatches(t *testing.T) {
	ctx := context.Background()
	f := newScannerFixture(t)
	files := []m.Path{"/srv/a.php", "/srv/b.php", "/srv/c.php"}
	options := m.Options{ReportMode: m.ReportDetailed, BatchSize: 2, PHPVersion: "8.2"}

	f.fs.EXPECT().Exists(mock.Anything, m.Path("/srv")).Return(true).Once()
	f.discovery.EXPECT().Discover(mock.Anything, m.Path("/srv"), mock.Anything).Return(files).Once()
	f.options.EXPECT().Load(mock.Anything).Return(options, nil).Once()
	f.builder.EXPECT().Build(mock.Anything, files[:2], "8.2").Return(m.Command{Binary: "php"}).Once()
	f.builder.EXPECT().Build(mock.Anything, files[2:], "8.2").Return(m.Command{Binary: "php"}).Once()
	f.runner.EXPECT().Run(mock.Anything, "php", mock.Anything).
		Return(m.ProcessResult{Lines: []string{"FOUND 1 ERROR AND 2 WARNINGS"}}, nil).Twice()

	report, err := f.scanner(true).ScanInBatches(ctx, "/srv")

	require.NoError(t, err)
	require.Len(t, report.Batches, 2)
	assert.Equal(t, 1, report.Batches[0].Batch)
	assert.Equal(t, 2, report.Batches[0].FilesCount)
	assert.Equal(t, 1, report.Batches[1].FilesCount)
	assert.Equal(t, m.Counts{Errors: 2, Warnings: 4}, report.Totals())
}

func TestScanner_StopTokens(t *testing.T) {
	ctx := context.Background()

	t.Run("scoped request", func(t *testing.T) {
		f := newScannerFixture(t)
		f.store.EXPECT().SetStop(mock.Anything, "scan-a").Return(nil).Once()

		require.NoError(t, f.scanner(true).RequestStop(ctx, "scan-a"))
	})

	t.Run("global request", func(t *testing.T) {
		f := newScannerFixture(t)
		f.store.EXPECT().SetStop(mock.Anything, adapter.GlobalStopKey).Return(nil).Once()

		require.NoError(t, f.scanner(true).RequestStop(ctx, ""))
	})

	t.Run("reset lowers the global token", func(t *testing.T) {
		f := newScannerFixture(t)
		f.store.EXPECT().ClearStop(mock.Anything, adapter.GlobalStopKey).Return(nil).Once()

		require.NoError(t, f.scanner(true).ResetStop(ctx))
	})

	t.Run("reset failure is returned", func(t *testing.T) {
		f := newScannerFixture(t)
		f.store.EXPECT().ClearStop(mock.Anything, adapter.GlobalStopKey).Return(errors.New("database is locked")).Once()

		require.ErrorContains(t, f.scanner(true).ResetStop(ctx), "database is locked")
	})

	t.Run("starting a scan leaves a raised token alone", func(t *testing.T) {
		f := newScannerFixture(t)
		store := adapter.NewMemorySessionStore()
		scanner := domain.NewScanner(domain.ScannerConfig{ExecEnabled: true}, domain.ScannerDeps{
			FS:        f.fs,
			Store:     store,
			Discovery: f.discovery,
			Sessions:  domain.NewScanSessions(store),
		})
		f.fs.EXPECT().Exists(mock.Anything, m.Path("/srv")).Return(true).Once()
		f.discovery.EXPECT().Discover(mock.Anything, m.Path("/srv"), mock.Anything).Return([]m.Path{"/srv/a.php"}).Once()

		require.NoError(t, scanner.RequestStop(ctx, ""))
		_, err := scanner.GetScanProgress(ctx, "/srv", 50, nil)
		require.NoError(t, err)

		stop, err := scanner.StopRequested(ctx, "")
		require.NoError(t, err)
		assert.True(t, stop)
	})

	t.Run("global token stops every scan", func(t *testing.T) {
		f := newScannerFixture(t)
		f.store.EXPECT().StopRequested(mock.Anything, adapter.GlobalStopKey).Return(true, nil).Once()

		stop, err := f.scanner(true).StopRequested(ctx, "scan-b")
		require.NoError(t, err)
		assert.True(t, stop)
	})

	t.Run("scoped token only stops its scan", func(t *testing.T) {
		f := newScannerFixture(t)
		f.store.EXPECT().StopRequested(mock.Anything, adapter.GlobalStopKey).Return(false, nil)
		f.store.EXPECT().StopRequested(mock.Anything, "scan-a").Return(true, nil).Once()
		f.store.EXPECT().StopRequested(mock.Anything, "scan-b").Return(false, nil).Once()

		scanner := f.scanner(true)

		stopA, err := scanner.StopRequested(ctx, "scan-a")
		require.NoError(t, err)
		stopB, err := scanner.StopRequested(ctx, "scan-b")
		require.NoError(t, err)

		assert.True(t, stopA)
		assert.False(t, stopB)
	})
}
