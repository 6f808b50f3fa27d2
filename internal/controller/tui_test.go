package controller

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phpcompat.dev/pkg/phpcompat/internal/domain"
	m "phpcompat.dev/pkg/phpcompat/internal/model"
)

func update(t *testing.T, model scanModel, msg tea.Msg) scanModel {
	t.Helper()

	next, _ := model.Update(msg)

	updated, ok := next.(scanModel)
	require.True(t, ok)

	return updated
}

func TestScanModel_Progress(t *testing.T) {
	target := domain.ScanTarget{Label: "plugin:akismet/akismet.php"}
	model := newScanModel(newStartConfig([]StartOption{WithTargetCount(2)}))

	model = update(t, model, targetStartedMsg{target: target, progress: m.ProgressInfo{TotalFiles: 120, EstimatedBatches: 3, ScanID: "s"}})
	model = update(t, model, batchCompletedMsg{target: target, result: m.BatchResult{
		BatchNumber: 1, TotalBatches: 3, Errors: 2, Warnings: 1,
		Output: "FILE: /wp/plugins/akismet/a.php\nFOUND 2 ERRORS AND 1 WARNING",
	}})

	assert.Equal(t, 1, model.completed)
	assert.InDelta(t, 1.0/3.0, model.percent(), 0.0001)
	assert.Equal(t, m.Counts{Errors: 2, Warnings: 1}, model.counts)

	view := model.View()
	assert.Contains(t, view, "(0/2 targets)")
	assert.Contains(t, view, "plugin:akismet/akismet.php")
	assert.Contains(t, view, "1/3")
	assert.Contains(t, view, "FILE: /wp/plugins/akismet/a.php")
	assert.Contains(t, view, "q: stop scan")

	model = update(t, model, targetFinishedMsg{summary: domain.TargetSummary{Label: target.Label, TotalFiles: 120, Counts: model.counts}})

	assert.Empty(t, model.current)
	assert.Contains(t, model.View(), "(1/2 targets)")
}

func TestScanModel_SummaryModeHidesFiles(t *testing.T) {
	model := newScanModel(newStartConfig([]StartOption{WithReportMode(m.ReportSummary)}))

	model = update(t, model, batchCompletedMsg{result: m.BatchResult{
		BatchNumber: 1, TotalBatches: 1, Errors: 1, Output: "FILE: /srv/a.php",
	}})

	assert.NotContains(t, model.View(), "FILE: /srv/a.php")
}

func TestScanModel_LogIsBounded(t *testing.T) {
	model := newScanModel(newStartConfig(nil))

	for i := 1; i <= maxLogLines+5; i++ {
		model = update(t, model, batchCompletedMsg{result: m.BatchResult{BatchNumber: i, TotalBatches: 20}})
	}

	assert.Len(t, model.log, maxLogLines)
	assert.True(t, strings.HasPrefix(model.log[len(model.log)-1], "batch 13/20"))
}

func TestScanModel_StopKeyCallsInterruptOnce(t *testing.T) {
	calls := 0
	model := newScanModel(newStartConfig([]StartOption{WithInterrupt(func() { calls++ })}))

	model = update(t, model, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	model = update(t, model, tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.Equal(t, 1, calls)
	assert.True(t, model.stopping)
	assert.Contains(t, model.View(), "stopping after the current batch")
}

func TestScanModel_FinishQuits(t *testing.T) {
	model := newScanModel(newStartConfig(nil))

	next, cmd := model.Update(finishMsg{})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.NotContains(t, next.View(), "q: stop scan")
}

func TestScanModel_WindowResize(t *testing.T) {
	model := newScanModel(newStartConfig(nil))

	model = update(t, model, tea.WindowSizeMsg{Width: 200, Height: 40})
	assert.Equal(t, maxBarWidth, model.bar.Width)

	model = update(t, model, tea.WindowSizeMsg{Width: 30, Height: 40})
	assert.Equal(t, 26, model.bar.Width)
}

func TestTUI_FallsBackToTextWhenNotStarted(t *testing.T) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewTUI(cmd)
	ui.TargetStarted(context.Background(), domain.ScanTarget{Label: "theme:x"}, m.ProgressInfo{TotalFiles: 1, EstimatedBatches: 1, ScanID: "s"})

	assert.Contains(t, buf.String(), "Scanning theme:x")
}

func TestTUI_StartClose(t *testing.T) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := newTUI(cmd, tea.WithInput(nil), tea.WithoutRenderer())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, ui.Start(ctx, WithTargetCount(1)))

	target := domain.ScanTarget{Label: "plugin:a"}
	ui.TargetStarted(ctx, target, m.ProgressInfo{TotalFiles: 1, EstimatedBatches: 1, ScanID: "s"})
	ui.BatchCompleted(ctx, target, m.BatchResult{BatchNumber: 1, TotalBatches: 1, IsLastBatch: true})
	ui.TargetFinished(ctx, domain.TargetSummary{Label: "plugin:a", TotalFiles: 1, Completed: 1})

	ui.Close(ctx)
	ui.Wait(ctx)

	require.NoError(t, ctx.Err())
	assert.NotContains(t, buf.String(), "Scanning plugin:a")
}
