package controller

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phpcompat.dev/pkg/phpcompat/internal/domain"
	m "phpcompat.dev/pkg/phpcompat/internal/model"
)

func newBufferedSimpleUI() (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return NewSimpleUI(cmd), &buf
}

func TestSimpleUI_ScanReporting(t *testing.T) {
	ctx := context.Background()
	target := domain.ScanTarget{Label: "plugin:akismet/akismet.php", Path: "/wp/plugins/akismet"}

	tests := []struct {
		name        string
		mode        string
		wantOutput  bool
		batchOutput string
	}{
		{name: "detailed prints linter output", mode: m.ReportDetailed, wantOutput: true, batchOutput: "FILE: /wp/plugins/akismet/a.php"},
		{name: "summary hides linter output", mode: m.ReportSummary, wantOutput: false, batchOutput: "FILE: /wp/plugins/akismet/a.php"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, buf := newBufferedSimpleUI()
			require.NoError(t, ui.Start(ctx, WithReportMode(tt.mode)))

			ui.TargetStarted(ctx, target, m.ProgressInfo{TotalFiles: 12, EstimatedBatches: 2, ScanID: "s"})
			ui.BatchCompleted(ctx, target, m.BatchResult{BatchNumber: 1, TotalBatches: 2, Errors: 1, Warnings: 2, Output: tt.batchOutput})
			ui.TargetFinished(ctx, domain.TargetSummary{Label: target.Label, TotalFiles: 12, Counts: m.Counts{Errors: 1, Warnings: 2}})

			got := buf.String()
			assert.Contains(t, got, "Scanning plugin:akismet/akismet.php: 12 file(s) in 2 batch(es)")
			assert.Contains(t, got, "batch 1/2: 1 error(s), 2 warning(s)")
			assert.Contains(t, got, "✓ plugin:akismet/akismet.php")

			if tt.wantOutput {
				assert.Contains(t, got, tt.batchOutput)
			} else {
				assert.NotContains(t, got, tt.batchOutput)
			}
		})
	}
}

func TestSimpleUI_TargetWithoutFiles(t *testing.T) {
	ui, buf := newBufferedSimpleUI()

	ui.TargetStarted(context.Background(), domain.ScanTarget{Label: "theme:empty"}, m.ProgressInfo{Message: domain.MsgNoFiles})

	assert.Contains(t, buf.String(), "theme:empty: "+domain.MsgNoFiles)
}

func TestSimpleUI_BatchLookupFailure(t *testing.T) {
	ui, buf := newBufferedSimpleUI()

	ui.BatchCompleted(context.Background(), domain.ScanTarget{Label: "plugin:x"},
		m.BatchResult{BatchNumber: 4, Message: domain.MsgInvalidBatchNumber, Output: domain.MsgInvalidBatchNumber})

	assert.Contains(t, buf.String(), "plugin:x batch 4: "+domain.MsgInvalidBatchNumber)
}

func TestSimpleUI_DisplayReadiness(t *testing.T) {
	ctx := context.Background()

	t.Run("ready", func(t *testing.T) {
		ui, buf := newBufferedSimpleUI()

		require.NoError(t, ui.DisplayReadiness(ctx, m.ReadinessReport{
			ExecEnabled:        true,
			PHPBinary:          "/usr/bin/php",
			PHPBinaryExists:    true,
			PHPCSPath:          "/app/vendor/bin/phpcs",
			PHPCSExists:        true,
			PHPCSVersionCmd:    "'/usr/bin/php' '/app/vendor/bin/phpcs' --version 2>&1",
			PHPCSVersionOK:     true,
			PHPCSVersionOutput: "PHP_CodeSniffer version 3.10.1",
			Messages:           []string{},
			Ready:              true,
		}))

		got := buf.String()
		assert.Contains(t, got, "php binary: /usr/bin/php")
		assert.Contains(t, got, "phpcs: /app/vendor/bin/phpcs")
		assert.Contains(t, got, "PHP_CodeSniffer version 3.10.1")
		assert.Contains(t, got, "Ready")
		assert.NotContains(t, got, "Not ready")
	})

	t.Run("not ready lists messages", func(t *testing.T) {
		ui, buf := newBufferedSimpleUI()

		require.NoError(t, ui.DisplayReadiness(ctx, m.ReadinessReport{
			PHPBinary: "php",
			Messages:  []string{domain.MsgExecDisabled},
		}))

		got := buf.String()
		assert.Contains(t, got, domain.MsgExecDisabled)
		assert.Contains(t, got, "Not ready")
		assert.NotContains(t, got, "version probe")
	})
}

func TestSimpleUI_DisplayTargets(t *testing.T) {
	ctx := context.Background()

	t.Run("table", func(t *testing.T) {
		ui, buf := newBufferedSimpleUI()

		require.NoError(t, ui.DisplayTargets(ctx, m.TargetList{
			Plugins: []m.Target{{Type: m.TargetPlugin, Slug: "akismet/akismet.php", Name: "Akismet Anti-spam"}},
			Themes:  []m.Target{{Type: m.TargetTheme, Slug: "twentytwentyfour", Name: "Twenty Twenty-Four"}},
		}))

		got := buf.String()
		assert.Contains(t, got, "plugin:akismet/akismet.php")
		assert.Contains(t, got, "Akismet Anti-spam")
		assert.Contains(t, got, "theme:twentytwentyfour")
	})

	t.Run("empty", func(t *testing.T) {
		ui, buf := newBufferedSimpleUI()

		require.NoError(t, ui.DisplayTargets(ctx, m.TargetList{}))
		assert.Contains(t, buf.String(), "No plugins or themes found")
	})
}

func TestSimpleUI_DisplayOptions(t *testing.T) {
	ui, buf := newBufferedSimpleUI()

	require.NoError(t, ui.DisplayOptions(context.Background(), m.DefaultOptions()))

	got := buf.String()
	assert.Contains(t, got, "batch_size")
	assert.Contains(t, got, "50")
	assert.Contains(t, got, "8.3")
	assert.Contains(t, got, "detailed")
}

func TestSimpleUI_DisplayLegacyReport(t *testing.T) {
	ctx := context.Background()

	t.Run("batches and totals", func(t *testing.T) {
		ui, buf := newBufferedSimpleUI()

		require.NoError(t, ui.DisplayLegacyReport(ctx, m.LegacyScanReport{Batches: []m.LegacyBatchReport{
			{Batch: 1, FilesCount: 50, Output: "FOUND 1 ERROR", Errors: 1},
			{Batch: 2, FilesCount: 3, Output: domain.MsgNoIssues},
		}}))

		got := buf.String()
		assert.Contains(t, got, "Batch 1 (50 files)")
		assert.Contains(t, got, "Batch 2 (3 files)")
		assert.Contains(t, got, domain.MsgNoIssues)
		assert.Contains(t, got, "Total: 1 error(s), 0 warning(s)")
	})

	t.Run("message only", func(t *testing.T) {
		ui, buf := newBufferedSimpleUI()

		require.NoError(t, ui.DisplayLegacyReport(ctx, m.LegacyScanReport{Message: domain.MsgNoFiles}))
		assert.Contains(t, buf.String(), domain.MsgNoFiles)
	})
}

func TestSimpleUI_DisplayRunSummary(t *testing.T) {
	tests := []struct {
		name    string
		summary domain.RunSummary
		want    []string
	}{
		{
			name: "done",
			summary: domain.RunSummary{
				Targets: []domain.TargetSummary{{Label: "plugin:a", TotalFiles: 10, TotalBatches: 1, Completed: 1, Counts: m.Counts{Errors: 2}}},
				Totals:  m.Counts{Errors: 2},
			},
			want: []string{"plugin:a", "1/1", "done", domain.StatusDone},
		},
		{
			name: "failed",
			summary: domain.RunSummary{
				Targets: []domain.TargetSummary{
					{Label: "plugin:a", Err: errors.New("boom")},
					{Label: "theme:b", TotalFiles: 3, TotalBatches: 1, Completed: 1},
				},
			},
			want: []string{"failed", "theme:b", "2 target(s)", domain.StatusFailed},
		},
		{
			name: "stopped",
			summary: domain.RunSummary{
				Targets: []domain.TargetSummary{{Label: "plugin:a", TotalFiles: 100, TotalBatches: 2, Completed: 1, Stopped: true}},
				Stopped: true,
			},
			want: []string{"stopped", "1/2", domain.StatusStopped},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, buf := newBufferedSimpleUI()

			require.NoError(t, ui.DisplayRunSummary(context.Background(), tt.summary))

			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestSimpleUI_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ui, buf := newBufferedSimpleUI()

	assert.ErrorIs(t, ui.Start(ctx), context.Canceled)
	assert.ErrorIs(t, ui.DisplayOutput(ctx, "x"), context.Canceled)
	assert.Empty(t, buf.String())
}

func TestNewUI(t *testing.T) {
	cmd := &cobra.Command{}

	assert.IsType(t, &SimpleUI{}, NewUI(cmd, false))
	assert.IsType(t, &TUI{}, NewUI(cmd, true))
	assert.False(t, IsTTY(nil))
}
