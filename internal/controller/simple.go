package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"phpcompat.dev/pkg/phpcompat/internal/domain"
	m "phpcompat.dev/pkg/phpcompat/internal/model"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	dimStyle  = lipgloss.NewStyle().Faint(true)
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
	cfg StartConfig
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd, cfg: newStartConfig(nil)}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.cfg = newStartConfig(options)

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(_ context.Context) {}

// TargetStarted implements domain.ScanReporter.
func (s *SimpleUI) TargetStarted(_ context.Context, target domain.ScanTarget, progress m.ProgressInfo) {
	if !progress.HasFiles() {
		s.printf("%s: %s\n", target.Label, progress.Message)
		return
	}

	s.printf("Scanning %s: %d file(s) in %d batch(es)\n", target.Label, progress.TotalFiles, progress.EstimatedBatches)
}

// BatchCompleted implements domain.ScanReporter.
func (s *SimpleUI) BatchCompleted(_ context.Context, target domain.ScanTarget, result m.BatchResult) {
	if result.Message != "" {
		s.printf("%s batch %d: %s\n", target.Label, result.BatchNumber, failStyle.Render(result.Message))
		return
	}

	s.printf("%s batch %d/%d: %s\n", target.Label, result.BatchNumber, result.TotalBatches,
		formatCounts(m.Counts{Errors: result.Errors, Warnings: result.Warnings}))

	if s.cfg.detailed() && strings.TrimSpace(result.Output) != "" {
		s.printf("%s\n", result.Output)
	}
}

// TargetFinished implements domain.ScanReporter.
func (s *SimpleUI) TargetFinished(_ context.Context, summary domain.TargetSummary) {
	s.printf("%s\n", targetStatusLine(summary))
}

// DisplayReadiness prints each readiness check.
func (s *SimpleUI) DisplayReadiness(ctx context.Context, report m.ReadinessReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderReadiness(report))

	return nil
}

// DisplayTargets prints plugins and themes as a table.
func (s *SimpleUI) DisplayTargets(ctx context.Context, targets m.TargetList) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderTargetsTable(targets))

	return nil
}

// DisplayOptions prints the stored options.
func (s *SimpleUI) DisplayOptions(ctx context.Context, options m.Options) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderOptionsTable(options))

	return nil
}

// DisplayOutput prints raw linter output.
func (s *SimpleUI) DisplayOutput(ctx context.Context, output string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s\n", strings.TrimRight(output, "\n"))

	return nil
}

// DisplayLegacyReport prints every batch of a non-session scan and the totals.
func (s *SimpleUI) DisplayLegacyReport(ctx context.Context, report m.LegacyScanReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(report.Batches) == 0 {
		s.printf("%s\n", report.Message)
		return nil
	}

	for _, batch := range report.Batches {
		s.printf("Batch %d (%d files): %s\n", batch.Batch, batch.FilesCount,
			formatCounts(m.Counts{Errors: batch.Errors, Warnings: batch.Warnings}))

		if s.cfg.detailed() {
			s.printf("%s\n", batch.Output)
		}
	}

	s.printf("Total: %s\n", formatCounts(report.Totals()))

	return nil
}

// DisplayRunSummary prints the per-target totals table and the final status.
func (s *SimpleUI) DisplayRunSummary(ctx context.Context, summary domain.RunSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderSummaryTable(summary))
	s.printf("%s\n", statusStyle(summary).Render(summary.Status()))

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func formatCounts(c m.Counts) string {
	text := fmt.Sprintf("%d error(s), %d warning(s)", c.Errors, c.Warnings)

	switch {
	case c.Errors > 0:
		return failStyle.Render(text)
	case c.Warnings > 0:
		return warnStyle.Render(text)
	default:
		return okStyle.Render(text)
	}
}

func targetStatusLine(summary domain.TargetSummary) string {
	switch {
	case summary.Err != nil:
		return failStyle.Render("✗ "+summary.Label+" failed: ") + summary.Err.Error()
	case summary.Stopped:
		return warnStyle.Render(fmt.Sprintf("■ %s stopped after %d/%d batch(es)", summary.Label, summary.Completed, summary.TotalBatches))
	case summary.TotalFiles == 0:
		return dimStyle.Render("- " + summary.Label + " skipped")
	default:
		return okStyle.Render("✓ "+summary.Label+": ") + formatCounts(summary.Counts)
	}
}

func statusStyle(summary domain.RunSummary) lipgloss.Style {
	switch summary.Status() {
	case domain.StatusStopped:
		return warnStyle
	case domain.StatusFailed:
		return failStyle
	default:
		return okStyle
	}
}

func checkMark(ok bool) string {
	if ok {
		return okStyle.Render("✓")
	}

	return failStyle.Render("✗")
}

func renderReadiness(report m.ReadinessReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s exec enabled\n", checkMark(report.ExecEnabled))
	fmt.Fprintf(&b, "%s php binary: %s\n", checkMark(report.PHPBinaryExists), report.PHPBinary)
	fmt.Fprintf(&b, "%s phpcs: %s\n", checkMark(report.PHPCSExists), report.PHPCSPath)

	if report.PHPCSVersionCmd != "" {
		fmt.Fprintf(&b, "%s version probe: %s\n", checkMark(report.PHPCSVersionOK), dimStyle.Render(report.PHPCSVersionCmd))

		if report.PHPCSVersionOutput != "" {
			fmt.Fprintf(&b, "  %s\n", report.PHPCSVersionOutput)
		}
	}

	for _, msg := range report.Messages {
		fmt.Fprintf(&b, "  %s\n", warnStyle.Render(msg))
	}

	if report.Ready {
		b.WriteString(okStyle.Render("Ready") + "\n")
	} else {
		b.WriteString(failStyle.Render("Not ready") + "\n")
	}

	return b.String()
}

func newTable(buf *bytes.Buffer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetCenterSeparator("")

	return table
}

func renderTargetsTable(targets m.TargetList) string {
	if len(targets.Plugins)+len(targets.Themes) == 0 {
		return "No plugins or themes found\n"
	}

	var buf bytes.Buffer

	table := newTable(&buf, []string{"Target", "Name"})

	for _, group := range [][]m.Target{targets.Plugins, targets.Themes} {
		for _, target := range group {
			table.Append([]string{string(target.Type) + ":" + target.Slug, target.Name})
		}
	}

	table.Render()

	return buf.String()
}

func renderOptionsTable(options m.Options) string {
	var buf bytes.Buffer

	table := newTable(&buf, []string{"Option", "Value"})
	table.Append([]string{"report_mode", options.ReportMode})
	table.Append([]string{"batch_size", strconv.Itoa(options.BatchSize)})
	table.Append([]string{"php_version", options.PHPVersion})
	table.Append([]string{"skip_vendor", strconv.FormatBool(options.SkipVendor)})
	table.Render()

	return buf.String()
}

func renderSummaryTable(summary domain.RunSummary) string {
	var buf bytes.Buffer

	table := newTable(&buf, []string{"Target", "Files", "Batches", "Errors", "Warnings", "Status"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT,
	})

	for _, target := range summary.Targets {
		table.Append([]string{
			target.Label,
			strconv.Itoa(target.TotalFiles),
			fmt.Sprintf("%d/%d", target.Completed, target.TotalBatches),
			strconv.Itoa(target.Counts.Errors),
			strconv.Itoa(target.Counts.Warnings),
			targetStatus(target),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("%d target(s)", len(summary.Targets)), "", "",
		strconv.Itoa(summary.Totals.Errors),
		strconv.Itoa(summary.Totals.Warnings),
		"",
	})

	table.Render()

	return buf.String()
}

func targetStatus(target domain.TargetSummary) string {
	switch {
	case target.Err != nil:
		return "failed"
	case target.Stopped:
		return "stopped"
	case target.TotalFiles == 0:
		return "no files"
	default:
		return "done"
	}
}
