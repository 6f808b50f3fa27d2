package cmd

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"phpcompat.dev/pkg/phpcompat/internal/adapter"
	"phpcompat.dev/pkg/phpcompat/internal/domain"
	m "phpcompat.dev/pkg/phpcompat/internal/model"
)

func TestParseTargetRef(t *testing.T) {
	tests := []struct {
		ref      string
		wantType m.TargetType
		wantSlug string
		wantErr  bool
	}{
		{"plugin:akismet/akismet.php", m.TargetPlugin, "akismet/akismet.php", false},
		{"Theme: twentytwentyfour ", m.TargetTheme, "twentytwentyfour", false},
		{"plugin:", "", "", true},
		{"widget:foo", "", "", true},
		{"hello.php", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			gotType, gotSlug, err := parseTargetRef(tt.ref)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantType, gotType)
			assert.Equal(t, tt.wantSlug, gotSlug)
		})
	}
}

func TestResolveScanTargets(t *testing.T) {
	f := newCLIFixture(t)
	f.catalog.EXPECT().Resolve(mock.Anything, m.TargetPlugin, "hello.php").Return("/wp/plugins", nil).Once()
	f.catalog.EXPECT().List(mock.Anything).Return(m.TargetList{
		Plugins: []m.Target{{Type: m.TargetPlugin, Slug: "akismet/akismet.php", Path: "/wp/plugins/akismet"}},
		Themes:  []m.Target{{Type: m.TargetTheme, Slug: "t", Path: "/wp/themes/t"}},
	}, nil).Once()

	targets, err := resolveScanTargets(t.Context(), []m.Path{"./src"}, scanFlags{
		targets: []string{"plugin:hello.php"},
		all:     true,
	})

	require.NoError(t, err)
	assert.Equal(t, []domain.ScanTarget{
		{Label: "./src", Path: "./src"},
		{Label: "plugin:hello.php", Path: "/wp/plugins"},
		{Label: "plugin:akismet/akismet.php", Path: "/wp/plugins/akismet"},
		{Label: "theme:t", Path: "/wp/themes/t"},
	}, targets)
}

func TestResolveScanTargets_UnknownSlug(t *testing.T) {
	f := newCLIFixture(t)
	f.catalog.EXPECT().Resolve(mock.Anything, m.TargetTheme, "gone").Return("", adapter.ErrTargetNotFound).Once()

	_, err := resolveScanTargets(t.Context(), nil, scanFlags{targets: []string{"theme:gone"}})

	require.ErrorIs(t, err, adapter.ErrTargetNotFound)
}

func TestScanCmd_NoTargets(t *testing.T) {
	f := newCLIFixture(t, newScanCmd())

	_, err := f.run(t, "scan")

	require.ErrorIs(t, err, errNoTargets)
}

func TestScanCmd_UnknownMode(t *testing.T) {
	f := newCLIFixture(t, newScanCmd())
	f.options.EXPECT().Load(mock.Anything).Return(m.DefaultOptions(), nil).Once()

	_, err := f.run(t, "scan", "./src", "--mode", "turbo")

	require.ErrorIs(t, err, errUnknownMode)
}

func TestScanCmd_SessionMode(t *testing.T) {
	f := newCLIFixture(t, newScanCmd())
	f.options.EXPECT().Load(mock.Anything).Return(m.Options{
		ReportMode: m.ReportDetailed, BatchSize: 10, PHPVersion: "8.1", SkipVendor: true,
	}, nil).Once()
	f.scanner.EXPECT().ResetStop(mock.Anything).Return(nil).Once()
	f.scanner.EXPECT().StopRequested(mock.Anything, "").Return(false, nil).Once()
	f.scanner.EXPECT().GetScanProgress(mock.Anything, m.Path("./src"), 10, []string{m.VendorExclusion}).
		Return(m.ProgressInfo{TotalFiles: 4, EstimatedBatches: 1, ScanID: "phpcompat_scan_a"}, nil).Once()
	f.scanner.EXPECT().StopRequested(mock.Anything, "phpcompat_scan_a").Return(false, nil).Twice()
	f.scanner.EXPECT().ProcessBatch(mock.Anything, "phpcompat_scan_a", 1, "8.1").Return(m.BatchResult{
		BatchNumber: 1, TotalBatches: 1, IsLastBatch: true, Output: "FOUND 2 ERRORS AFFECTING 1 LINE", Errors: 2,
	}, nil).Once()
	f.scanner.EXPECT().DeleteSession(mock.Anything, "phpcompat_scan_a").Return(nil).Once()

	out, err := f.run(t, "scan", "./src")

	require.NoError(t, err)
	requireLines(t, out,
		"Scanning ./src: 4 file(s) in 1 batch(es)",
		"./src batch 1/1: 2 error(s), 0 warning(s)",
		"FOUND 2 ERRORS AFFECTING 1 LINE",
		"1 target(s)",
		domain.StatusDone,
	)
}

func TestScanCmd_SessionModeFailure(t *testing.T) {
	f := newCLIFixture(t, newScanCmd())
	f.options.EXPECT().Load(mock.Anything).Return(m.DefaultOptions(), nil).Once()
	f.scanner.EXPECT().ResetStop(mock.Anything).Return(nil).Once()
	f.scanner.EXPECT().StopRequested(mock.Anything, "").Return(false, nil).Once()
	f.scanner.EXPECT().GetScanProgress(mock.Anything, m.Path("./broken"), 50, []string{m.VendorExclusion}).
		Return(m.ProgressInfo{}, errors.New("walk failed")).Once()

	out, err := f.run(t, "scan", "./broken")

	require.ErrorIs(t, err, errScanFailed)
	requireLines(t, out, "./broken failed", domain.StatusFailed)
}

func TestScanCmd_OptionsLoadFailureUsesDefaults(t *testing.T) {
	f := newCLIFixture(t, newScanCmd())
	f.options.EXPECT().Load(mock.Anything).Return(m.Options{}, errors.New("corrupt")).Once()
	f.scanner.EXPECT().Run(mock.Anything, m.Path("./src"), m.DefaultPHPVersion).Return("FOUND 0 ERRORS").Once()

	out, err := f.run(t, "scan", "./src", "--mode", "single")

	require.NoError(t, err)
	requireLines(t, out, "Scanning ./src", "FOUND 0 ERRORS")
}

func TestScanCmd_LegacyMode(t *testing.T) {
	f := newCLIFixture(t, newScanCmd())
	f.options.EXPECT().Load(mock.Anything).Return(m.DefaultOptions(), nil).Once()
	f.catalog.EXPECT().Resolve(mock.Anything, m.TargetTheme, "t").Return("/wp/themes/t", nil).Once()
	f.scanner.EXPECT().ScanInBatches(mock.Anything, m.Path("/wp/themes/t")).Return(m.LegacyScanReport{
		Batches: []m.LegacyBatchReport{{Batch: 1, FilesCount: 3, Output: domain.MsgNoIssues}},
	}, nil).Once()
	f.scanner.EXPECT().ScanInBatches(mock.Anything, m.Path("./gone")).Return(m.LegacyScanReport{}, domain.ErrInvalidTarget).Once()

	out, err := f.run(t, "scan", "./gone", "--target", "theme:t", "--mode", "legacy")

	require.ErrorIs(t, err, errScanFailed)
	requireLines(t, out, "Scanning theme:t", domain.MsgNoIssues, "./gone: ")
}

func TestRelayInterrupts(t *testing.T) {
	start := func(t *testing.T, requestStop func() error) (context.Context, chan<- os.Signal, <-chan struct{}) {
		t.Helper()

		ctx, cancel := context.WithCancel(t.Context())
		t.Cleanup(cancel)

		signals := make(chan os.Signal, 1)
		done := make(chan struct{})

		go func() {
			relayInterrupts(ctx, signals, requestStop, cancel)
			close(done)
		}()

		return ctx, signals, done
	}

	waitFor := func(t *testing.T, ch <-chan struct{}) {
		t.Helper()

		select {
		case <-ch:
		case <-time.After(5 * time.Second):
			t.Fatal("timed out")
		}
	}

	t.Run("first signal stops cooperatively, second cancels", func(t *testing.T) {
		requested := make(chan struct{}, 1)
		ctx, signals, done := start(t, func() error {
			requested <- struct{}{}
			return nil
		})

		signals <- os.Interrupt
		waitFor(t, requested)
		assert.NoError(t, ctx.Err())

		signals <- os.Interrupt
		waitFor(t, done)
		assert.ErrorIs(t, ctx.Err(), context.Canceled)
	})

	t.Run("failed stop request cancels at once", func(t *testing.T) {
		ctx, signals, done := start(t, func() error {
			return errNoStopToken
		})

		signals <- os.Interrupt
		waitFor(t, done)
		assert.ErrorIs(t, ctx.Err(), context.Canceled)
	})
}

func TestRequestCooperativeStop(t *testing.T) {
	t.Run("session scans raise the global token", func(t *testing.T) {
		f := newCLIFixture(t)
		f.scanner.EXPECT().RequestStop(mock.Anything, "").Return(nil).Once()

		require.NoError(t, requestCooperativeStop(t.Context(), modeSession))
	})

	t.Run("other modes have no token", func(t *testing.T) {
		newCLIFixture(t)

		require.ErrorIs(t, requestCooperativeStop(t.Context(), modeLegacy), errNoStopToken)
	})
}
