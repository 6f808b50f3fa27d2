// Package controller provides output adapters for displaying scan progress and results.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"phpcompat.dev/pkg/phpcompat/internal/domain"
	m "phpcompat.dev/pkg/phpcompat/internal/model"
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	reportMode string
	targets    int
	interrupt  func()
}

// WithReportMode selects detailed (per-batch output) or summary reporting.
func WithReportMode(mode string) StartOption {
	return func(c *StartConfig) {
		c.reportMode = mode
	}
}

// WithTargetCount announces how many targets the run will scan.
func WithTargetCount(n int) StartOption {
	return func(c *StartConfig) {
		c.targets = n
	}
}

func newStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{reportMode: m.DefaultReportMode}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

func (c StartConfig) detailed() bool {
	return c.reportMode != m.ReportSummary
}

// UI defines the interface for displaying scan information.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	domain.ScanReporter

	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (program exits)

	DisplayReadiness(ctx context.Context, report m.ReadinessReport) error
	DisplayTargets(ctx context.Context, targets m.TargetList) error
	DisplayOptions(ctx context.Context, options m.Options) error
	DisplayOutput(ctx context.Context, output string) error
	DisplayLegacyReport(ctx context.Context, report m.LegacyScanReport) error
	DisplayRunSummary(ctx context.Context, summary domain.RunSummary) error
}

// NewUI returns the interactive TUI for terminals and SimpleUI otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
