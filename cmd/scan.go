package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"phpcompat.dev/pkg/phpcompat/internal/controller"
	"phpcompat.dev/pkg/phpcompat/internal/domain"
	m "phpcompat.dev/pkg/phpcompat/internal/model"
)

// Scan modes.
const (
	modeSession = "session"
	modeLegacy  = "legacy"
	modeSingle  = "single"
)

var (
	errNoTargets   = errors.New("nothing to scan: pass paths, --target or --all")
	errScanFailed  = errors.New(domain.StatusFailed)
	errUnknownMode = errors.New("unknown scan mode")
	errNoStopToken = errors.New("scan mode has no stop token")
)

const scanLongDescription = `Scan plugins, themes or plain directories for PHP compatibility issues.

Targets are given as paths, as --target TYPE:SLUG (for example
--target plugin:akismet/akismet.php or --target theme:twentytwentyfour) or
with --all for every installed plugin and theme.

Modes:
  session  start a scan session per target and request its batches in order
           (default). Press q or send SIGINT to stop after the current batch;
           a second SIGINT aborts the running linter.
  legacy   scan each target in batches without a session
  single   scan each target with one linter invocation`

type scanFlags struct {
	targets []string
	all     bool
	mode    string
}

// scanCmd represents the scan command.
var scanCmd = newScanCmd()

func newScanCmd() *cobra.Command {
	flags := &scanFlags{}

	cmd := &cobra.Command{
		Use:   "scan [paths...]",
		Short: "Scan targets for PHP compatibility issues",
		Long:  scanLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			signals := make(chan os.Signal, 1)
			signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(signals)

			go relayInterrupts(ctx, signals, func() error {
				return requestCooperativeStop(ctx, flags.mode)
			}, cancel)

			return runScan(ctx, args, *flags)
		},
	}

	cmd.Flags().StringArrayVarP(&flags.targets, "target", "t", nil, "target as TYPE:SLUG (can be repeated)")
	cmd.Flags().BoolVar(&flags.all, "all", false, "scan every installed plugin and theme")
	cmd.Flags().StringVarP(&flags.mode, "mode", "m", modeSession, "scan mode (session, legacy or single)")

	return cmd
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func runScan(ctx context.Context, args []string, flags scanFlags) error {
	if err := requireScanner(); err != nil {
		return err
	}

	targets, err := resolveScanTargets(ctx, parsePaths(args), flags)
	if err != nil {
		return err
	}

	if len(targets) == 0 {
		return errNoTargets
	}

	options, err := optionsService.Load(ctx)
	if err != nil {
		slog.Warn("Failed to load options, using defaults", "error", err)

		options = m.DefaultOptions()
	}

	switch strings.ToLower(flags.mode) {
	case modeSession, "":
		return runSessionScan(ctx, targets, options)
	case modeLegacy:
		return runLegacyScan(ctx, targets)
	case modeSingle:
		return runSingleScan(ctx, targets, options)
	default:
		return fmt.Errorf("%w %q", errUnknownMode, flags.mode)
	}
}

// relayInterrupts turns the first signal into a stop request and any further
// signal, or a failed stop request, into cancellation.
func relayInterrupts(ctx context.Context, signals <-chan os.Signal, requestStop func() error, cancel context.CancelFunc) {
	stopping := false

	for {
		select {
		case <-ctx.Done():
			return
		case sig := <-signals:
			if stopping {
				slog.Warn("Interrupted again, cancelling scan", "signal", sig)
				cancel()

				return
			}

			stopping = true

			if err := requestStop(); err != nil {
				slog.Warn("Cannot stop between batches, cancelling scan", "signal", sig, "error", err)
				cancel()

				return
			}

			slog.Info("Interrupted, stopping after the current batch", "signal", sig)
		}
	}
}

// requestCooperativeStop raises the process-wide stop token. Only session
// scans check it.
func requestCooperativeStop(ctx context.Context, mode string) error {
	switch strings.ToLower(mode) {
	case modeSession, "":
	default:
		return fmt.Errorf("%w: %s", errNoStopToken, mode)
	}

	if scanner == nil {
		return errNoStopToken
	}

	return scanner.RequestStop(context.WithoutCancel(ctx), "")
}

// resolveScanTargets turns paths and catalog references into driver targets.
func resolveScanTargets(ctx context.Context, paths []m.Path, flags scanFlags) ([]domain.ScanTarget, error) {
	targets := make([]domain.ScanTarget, 0, len(paths)+len(flags.targets))

	for _, path := range paths {
		targets = append(targets, domain.ScanTarget{Label: path.String(), Path: path})
	}

	for _, ref := range flags.targets {
		targetType, slug, err := parseTargetRef(ref)
		if err != nil {
			return nil, err
		}

		path, err := catalog.Resolve(ctx, targetType, slug)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", ref, err)
		}

		targets = append(targets, domain.ScanTarget{Label: ref, Path: path})
	}

	if !flags.all {
		return targets, nil
	}

	list, err := catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list targets: %w", err)
	}

	for _, group := range [][]m.Target{list.Plugins, list.Themes} {
		for _, t := range group {
			targets = append(targets, domain.ScanTarget{
				Label: string(t.Type) + ":" + t.Slug,
				Path:  t.Path,
			})
		}
	}

	return targets, nil
}

// parseTargetRef splits TYPE:SLUG.
func parseTargetRef(ref string) (m.TargetType, string, error) {
	kind, slug, ok := strings.Cut(ref, ":")
	targetType := m.TargetType(strings.ToLower(strings.TrimSpace(kind)))
	slug = strings.TrimSpace(slug)

	if !ok || !targetType.Valid() || slug == "" {
		return "", "", fmt.Errorf("invalid target %q: want plugin:SLUG or theme:SLUG", ref)
	}

	return targetType, slug, nil
}

func runSessionScan(ctx context.Context, targets []domain.ScanTarget, options m.Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	interrupt := func() {
		slog.Info("Stop requested from the terminal")

		if err := scanner.RequestStop(context.WithoutCancel(ctx), ""); err != nil {
			slog.Warn("Failed to raise stop token, cancelling", "error", err)
			cancel()
		}
	}

	if err := ui.Start(ctx,
		controller.WithReportMode(options.ReportMode),
		controller.WithTargetCount(len(targets)),
		controller.WithInterrupt(interrupt),
	); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}

	cfg := loadAppConfig()
	driver := domain.NewDriver(scanner, ui)
	summary := driver.Run(ctx, targets, domain.DriverConfig{
		BatchSize:    options.BatchSize,
		PHPVersion:   options.PHPVersion,
		Exclusions:   options.Exclusions(),
		Delay:        cfg.BatchDelay,
		KeepSessions: cfg.KeepSessions,
	})

	ui.Close(ctx)

	if err := ui.DisplayRunSummary(context.WithoutCancel(ctx), summary); err != nil {
		return err
	}

	if summary.Failed() {
		return errScanFailed
	}

	return nil
}

func runLegacyScan(ctx context.Context, targets []domain.ScanTarget) error {
	failed := false

	for _, target := range targets {
		if err := ui.DisplayOutput(ctx, "Scanning "+target.Label); err != nil {
			return err
		}

		report, err := scanner.ScanInBatches(ctx, target.Path)
		if err != nil {
			slog.Error("Legacy scan failed", "target", target.Label, "error", err)

			failed = true

			if displayErr := ui.DisplayOutput(ctx, fmt.Sprintf("%s: %v", target.Label, err)); displayErr != nil {
				return displayErr
			}

			continue
		}

		if err := ui.DisplayLegacyReport(ctx, report); err != nil {
			return err
		}
	}

	if failed {
		return errScanFailed
	}

	return nil
}

func runSingleScan(ctx context.Context, targets []domain.ScanTarget, options m.Options) error {
	for _, target := range targets {
		if err := ui.DisplayOutput(ctx, "Scanning "+target.Label); err != nil {
			return err
		}

		if err := ui.DisplayOutput(ctx, scanner.Run(ctx, target.Path, options.PHPVersion)); err != nil {
			return err
		}
	}

	return nil
}
