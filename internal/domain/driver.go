package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	m "phpcompat.dev/pkg/phpcompat/internal/model"
)

// DefaultBatchDelay is the pause between two batch requests of one scan.
const DefaultBatchDelay = 100 * time.Millisecond

// Final run statuses.
const (
	StatusDone    = "Done"
	StatusFailed  = "Some scans failed"
	StatusStopped = "Stopped"
)

// ScanTarget is one root the driver scans.
type ScanTarget struct {
	Label string
	Path  m.Path
}

// TargetSummary is the outcome of scanning one target.
type TargetSummary struct {
	Label        string
	ScanID       string
	TotalFiles   int
	TotalBatches int
	Completed    int
	Counts       m.Counts
	Message      string
	Stopped      bool
	Err          error
}

// RunSummary aggregates every target of a driver run.
type RunSummary struct {
	Targets []TargetSummary
	Totals  m.Counts
	Stopped bool
}

// Failed reports whether any target failed.
func (r RunSummary) Failed() bool {
	for _, t := range r.Targets {
		if t.Err != nil {
			return true
		}
	}

	return false
}

// Status returns the final status line of the run.
func (r RunSummary) Status() string {
	switch {
	case r.Stopped:
		return StatusStopped
	case r.Failed():
		return StatusFailed
	default:
		return StatusDone
	}
}

// ScanReporter receives driver progress.
type ScanReporter interface {
	TargetStarted(ctx context.Context, target ScanTarget, progress m.ProgressInfo)
	BatchCompleted(ctx context.Context, target ScanTarget, result m.BatchResult)
	TargetFinished(ctx context.Context, summary TargetSummary)
}

// DriverConfig are the per-run settings of a Driver.
type DriverConfig struct {
	BatchSize  int
	PHPVersion string
	Exclusions []string
	Delay      time.Duration
	// KeepSessions leaves finished sessions for the TTL sweep instead of
	// deleting them.
	KeepSessions bool
}

// Driver is the client loop: it starts a session per target and requests its
// batches in order, pausing between them and honouring stop requests.
type Driver struct {
	scanner  Scanner
	reporter ScanReporter
	sleep    func(ctx context.Context, d time.Duration) error
}

// NewDriver constructs a Driver reporting to reporter.
func NewDriver(scanner Scanner, reporter ScanReporter) *Driver {
	return &Driver{
		scanner:  scanner,
		reporter: reporter,
		sleep:    sleepContext,
	}
}

// Run scans targets one after another. A failing target is recorded and the
// next one starts; a stop request ends the whole run. The process-wide stop
// token is lowered once, before the first target.
func (d *Driver) Run(ctx context.Context, targets []ScanTarget, cfg DriverConfig) RunSummary {
	summary := RunSummary{Targets: make([]TargetSummary, 0, len(targets))}

	if err := d.scanner.ResetStop(ctx); err != nil {
		slog.Warn("Failed to reset stop token", "error", err)
	}

	for _, target := range targets {
		if ctx.Err() != nil || d.stopRequested(ctx, "") {
			summary.Stopped = true
			break
		}

		result := d.scanTarget(ctx, target, cfg)
		d.reporter.TargetFinished(ctx, result)

		summary.Targets = append(summary.Targets, result)
		summary.Totals = summary.Totals.Add(result.Counts)

		if result.Stopped {
			summary.Stopped = true
			break
		}
	}

	slog.Info("Scan run finished", "targets", len(summary.Targets), "status", summary.Status(),
		"errors", summary.Totals.Errors, "warnings", summary.Totals.Warnings)

	return summary
}

func (d *Driver) scanTarget(ctx context.Context, target ScanTarget, cfg DriverConfig) TargetSummary {
	result := TargetSummary{Label: target.Label}

	progress, err := d.scanner.GetScanProgress(ctx, target.Path, cfg.BatchSize, cfg.Exclusions)
	if err != nil {
		result.Err = fmt.Errorf("start scan of %s: %w", target.Label, err)
		return result
	}

	d.reporter.TargetStarted(ctx, target, progress)

	if !progress.HasFiles() {
		result.Message = progress.Message
		return result
	}

	result.ScanID = progress.ScanID
	result.TotalFiles = progress.TotalFiles
	result.TotalBatches = progress.EstimatedBatches

	if !cfg.KeepSessions {
		defer func() {
			if err := d.scanner.DeleteSession(context.WithoutCancel(ctx), progress.ScanID); err != nil {
				slog.Warn("Failed to delete scan session", "scan", progress.ScanID, "error", err)
			}
		}()
	}

	for batch := 1; batch <= progress.EstimatedBatches; batch++ {
		if d.stopRequested(ctx, progress.ScanID) {
			result.Stopped = true
			return result
		}

		batchResult, err := d.scanner.ProcessBatch(ctx, progress.ScanID, batch, cfg.PHPVersion)
		d.reporter.BatchCompleted(ctx, target, batchResult)

		if err != nil && ctx.Err() != nil {
			result.Stopped = true
			return result
		}

		if err == nil && batchResult.Message != "" {
			err = errors.New(batchResult.Message)
		}

		if err != nil {
			result.Err = fmt.Errorf("batch %d of %s: %w", batch, target.Label, err)
			return result
		}

		result.Completed++
		result.Counts = result.Counts.Add(m.Counts{Errors: batchResult.Errors, Warnings: batchResult.Warnings})

		if batchResult.IsLastBatch {
			break
		}

		if err := d.sleep(ctx, cfg.delay()); err != nil {
			result.Stopped = true
			return result
		}
	}

	// A stop raised during the last batch still ends the run.
	result.Stopped = d.stopRequested(ctx, progress.ScanID)

	return result
}

func (d *Driver) stopRequested(ctx context.Context, scanID string) bool {
	stop, err := d.scanner.StopRequested(ctx, scanID)
	if err != nil {
		slog.Warn("Failed to read stop token", "scan", scanID, "error", err)
	}

	return stop
}

func (c DriverConfig) delay() time.Duration {
	if c.Delay < 0 {
		return 0
	}

	if c.Delay == 0 {
		return DefaultBatchDelay
	}

	return c.Delay
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
