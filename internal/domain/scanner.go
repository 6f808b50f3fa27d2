package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	regexp "github.com/wasilibs/go-re2"

	"phpcompat.dev/pkg/phpcompat/internal/adapter"
	"phpcompat.dev/pkg/phpcompat/internal/metrics"
	m "phpcompat.dev/pkg/phpcompat/internal/model"
)

// ErrInvalidTarget is returned when a scan target does not exist.
var ErrInvalidTarget = errors.New("no valid scan target selected")

// User-facing texts.
const (
	MsgNoFiles         = "No PHP files found to scan."
	MsgEmptyBatch      = "✓ No files to scan in this batch."
	MsgNoIssues        = "✓ No PHP compatibility issues found in this batch."
	MsgNoTarget        = "❌ No valid scan target selected.\n"
	MsgLinterMissing   = "❌ Error: phpcs command not found. Please install PHP CodeSniffer first.\n"
	MsgExecDisabled    = "Process execution is disabled (scanner.exec_enabled is false)."
	MsgVersionProbeBad = "Unable to run phpcs --version with detected PHP binary."
)

var cgiNoiseRe = regexp.MustCompile(`(?i)^(X-Powered-By:|Content-type:)`)

// Scanner orchestrates discovery, sessions and linter runs.
type Scanner interface {
	// CheckSystemRequirements reports whether the linter can run. It never
	// fails; problems are listed in the report.
	CheckSystemRequirements(ctx context.Context) m.ReadinessReport
	// Run scans target in one linter invocation and returns the raw output, or
	// a user-facing error text when the target or linter is missing.
	Run(ctx context.Context, target m.Path, version string) string
	// GetScanProgress discovers files under target and, when there are any,
	// creates a session for them.
	GetScanProgress(ctx context.Context, target m.Path, batchSize int, exclusions []string) (m.ProgressInfo, error)
	// GetBatchFilesFromScan returns one batch of a session.
	GetBatchFilesFromScan(ctx context.Context, scanID string, batchNumber int) (m.BatchSlice, error)
	// ScanBatch lints files. The error is set only when the linter could not
	// run; Output then carries the reason.
	ScanBatch(ctx context.Context, files []m.Path, version string) (m.ScanOutput, error)
	// ProcessBatch fetches and scans one batch of a session.
	ProcessBatch(ctx context.Context, scanID string, batchNumber int, version string) (m.BatchResult, error)
	// ScanInBatches scans target without a session, chunked by the stored
	// batch size.
	ScanInBatches(ctx context.Context, target m.Path) (m.LegacyScanReport, error)
	// RequestStop raises the stop token for scanID, or the process-wide token
	// when scanID is empty.
	RequestStop(ctx context.Context, scanID string) error
	// ResetStop lowers the process-wide stop token. Callers invoke it once when
	// a scan run starts.
	ResetStop(ctx context.Context) error
	// StopRequested reports whether scanID, or every scan, should stop.
	StopRequested(ctx context.Context, scanID string) (bool, error)
	// DeleteSession drops a finished session.
	DeleteSession(ctx context.Context, scanID string) error
}

// ScannerConfig holds scanner switches.
type ScannerConfig struct {
	// ExecEnabled allows external processes to be started.
	ExecEnabled bool
}

// ScannerDeps are the collaborators of a Scanner.
type ScannerDeps struct {
	FS        adapter.SourceFSAdapter
	Runner    adapter.ProcessRunnerAdapter
	Store     adapter.SessionStore
	Discovery FileDiscovery
	Builder   CommandBuilder
	Parser    ResultParser
	Sessions  ScanSessions
	Options   OptionsService
	Metrics   metrics.ScanMetrics
}

type scanner struct {
	cfg  ScannerConfig
	deps ScannerDeps
}

// NewScanner constructs a Scanner.
func NewScanner(cfg ScannerConfig, deps ScannerDeps) Scanner {
	if deps.Metrics == nil {
		deps.Metrics = metrics.Noop{}
	}

	if deps.Parser == nil {
		deps.Parser = NewResultParser()
	}

	return &scanner{cfg: cfg, deps: deps}
}

func (s *scanner) CheckSystemRequirements(ctx context.Context) m.ReadinessReport {
	report := m.ReadinessReport{
		ExecEnabled: s.cfg.ExecEnabled,
		Messages:    []string{},
	}

	if !report.ExecEnabled {
		report.Messages = append(report.Messages, MsgExecDisabled)
	}

	report.PHPBinary = s.deps.Builder.InterpreterPath(ctx)
	report.PHPBinaryExists = s.deps.FS.Exists(ctx, m.Path(report.PHPBinary))
	report.PHPCSPath = s.deps.Builder.LinterPath(ctx)
	report.PHPCSExists = s.deps.FS.Exists(ctx, m.Path(report.PHPCSPath))

	if !report.PHPBinaryExists {
		report.Messages = append(report.Messages, "PHP binary not found: "+report.PHPBinary)
	}

	if !report.PHPCSExists {
		report.Messages = append(report.Messages, "phpcs not found: "+report.PHPCSPath)
	}

	if report.ExecEnabled && report.PHPBinaryExists && report.PHPCSExists {
		cmd := s.deps.Builder.VersionCommand(ctx)
		report.PHPCSVersionCmd = cmd.Line

		result, err := s.deps.Runner.Run(ctx, cmd.Binary, cmd.Args)
		report.PHPCSVersionOK = err == nil && result.ExitCode == 0
		report.PHPCSVersionOutput = strings.Join(filterNoise(result.Lines), "\n")

		if !report.PHPCSVersionOK {
			slog.Debug("Version probe failed", "cmd", cmd.Line, "exit", result.ExitCode, "error", err)
			report.Messages = append(report.Messages, MsgVersionProbeBad)
		}
	}

	report.Ready = report.ExecEnabled && report.PHPBinaryExists && report.PHPCSExists && report.PHPCSVersionOK

	return report
}

func (s *scanner) Run(ctx context.Context, target m.Path, version string) string {
	if target == "" || !s.deps.FS.Exists(ctx, target) {
		return MsgNoTarget
	}

	if !s.linterAvailable(ctx) {
		return MsgLinterMissing
	}

	version = s.resolveVersion(ctx, version)
	cmd := s.deps.Builder.Build(ctx, []m.Path{target}, version)
	defer s.removeArtifact(ctx, cmd)

	result, err := s.exec(ctx, cmd)
	if err != nil {
		return fmt.Sprintf("❌ Error: %v\n", err)
	}

	return strings.Join(result.Lines, "\n")
}

func (s *scanner) GetScanProgress(ctx context.Context, target m.Path, batchSize int, exclusions []string) (m.ProgressInfo, error) {
	if target == "" || !s.deps.FS.Exists(ctx, target) {
		return m.ProgressInfo{}, ErrInvalidTarget
	}

	files := s.deps.Discovery.Discover(ctx, target, exclusions)
	if len(files) == 0 {
		return m.ProgressInfo{Message: MsgNoFiles}, nil
	}

	id, err := s.deps.Sessions.Create(ctx, files, batchSize, exclusions)
	if err != nil {
		return m.ProgressInfo{}, err
	}

	return m.ProgressInfo{
		TotalFiles:       len(files),
		EstimatedBatches: m.TotalBatchesFor(len(files), batchSize),
		ScanID:           id,
	}, nil
}

func (s *scanner) GetBatchFilesFromScan(ctx context.Context, scanID string, batchNumber int) (m.BatchSlice, error) {
	return s.deps.Sessions.GetBatch(ctx, scanID, batchNumber)
}

func (s *scanner) ScanBatch(ctx context.Context, files []m.Path, version string) (m.ScanOutput, error) {
	if len(files) == 0 {
		s.deps.Metrics.IncBatches(metrics.OutcomeEmpty)
		return m.ScanOutput{Output: MsgEmptyBatch}, nil
	}

	version = s.resolveVersion(ctx, version)
	cmd := s.deps.Builder.Build(ctx, files, version)
	defer s.removeArtifact(ctx, cmd)

	result, err := s.exec(ctx, cmd)
	if err != nil {
		s.deps.Metrics.IncBatches(metrics.OutcomeFailed)

		return m.ScanOutput{
			Output:   fmt.Sprintf("❌ Error: %v", err),
			ExitCode: result.ExitCode,
		}, err
	}

	text := strings.Join(result.Lines, "\n")
	counts := s.deps.Parser.Parse(text)

	if text == "" {
		text = MsgNoIssues
	}

	if counts.Errors+counts.Warnings > 0 {
		s.deps.Metrics.IncBatches(metrics.OutcomeIssues)
	} else {
		s.deps.Metrics.IncBatches(metrics.OutcomeClean)
	}

	return m.ScanOutput{
		Output:   text,
		Errors:   counts.Errors,
		Warnings: counts.Warnings,
		ExitCode: result.ExitCode,
	}, nil
}

func (s *scanner) ProcessBatch(ctx context.Context, scanID string, batchNumber int, version string) (m.BatchResult, error) {
	slice, err := s.GetBatchFilesFromScan(ctx, scanID, batchNumber)
	if err != nil {
		return m.BatchResult{}, err
	}

	if len(slice.Files) == 0 {
		output := slice.Message
		if output == "" {
			output = MsgEmptyBatch
		}

		return m.NewBatchResult(slice, m.ScanOutput{Output: output}), nil
	}

	out, err := s.ScanBatch(ctx, slice.Files, version)

	return m.NewBatchResult(slice, out), err
}

func (s *scanner) ScanInBatches(ctx context.Context, target m.Path) (m.LegacyScanReport, error) {
	if target == "" || !s.deps.FS.Exists(ctx, target) {
		return m.LegacyScanReport{}, ErrInvalidTarget
	}

	files := s.deps.Discovery.Discover(ctx, target, nil)
	if len(files) == 0 {
		return m.LegacyScanReport{Message: MsgNoFiles}, nil
	}

	options := s.options(ctx)
	report := m.LegacyScanReport{Batches: []m.LegacyBatchReport{}}

	for index, chunk := range chunkPaths(files, options.BatchSize) {
		out, err := s.ScanBatch(ctx, chunk, options.PHPVersion)
		if err != nil {
			slog.Warn("Legacy batch failed", "batch", index+1, "error", err)
		}

		report.Batches = append(report.Batches, m.LegacyBatchReport{
			Batch:      index + 1,
			FilesCount: len(chunk),
			Output:     out.Output,
			Errors:     out.Errors,
			Warnings:   out.Warnings,
		})
	}

	return report, nil
}

func (s *scanner) RequestStop(ctx context.Context, scanID string) error {
	key := scanID
	if key == "" {
		key = adapter.GlobalStopKey
	}

	if err := s.deps.Store.SetStop(ctx, key); err != nil {
		return fmt.Errorf("request stop: %w", err)
	}

	s.deps.Metrics.IncStopRequests()
	slog.Info("Stop requested", "scan", key)

	return nil
}

func (s *scanner) ResetStop(ctx context.Context) error {
	if err := s.deps.Store.ClearStop(ctx, adapter.GlobalStopKey); err != nil {
		return fmt.Errorf("reset stop: %w", err)
	}

	return nil
}

func (s *scanner) StopRequested(ctx context.Context, scanID string) (bool, error) {
	global, err := s.deps.Store.StopRequested(ctx, adapter.GlobalStopKey)
	if err != nil || global || scanID == "" {
		return global, err
	}

	return s.deps.Store.StopRequested(ctx, scanID)
}

func (s *scanner) DeleteSession(ctx context.Context, scanID string) error {
	return s.deps.Sessions.Delete(ctx, scanID)
}

func (s *scanner) exec(ctx context.Context, cmd m.Command) (m.ProcessResult, error) {
	if !s.cfg.ExecEnabled {
		return m.ProcessResult{ExitCode: -1}, errors.New("process execution is disabled")
	}

	slog.Debug("Running linter", "cmd", cmd.Line)

	started := time.Now()
	result, err := s.deps.Runner.Run(ctx, cmd.Binary, cmd.Args)
	s.deps.Metrics.ObserveLinterDuration(time.Since(started))

	return result, err
}

func (s *scanner) removeArtifact(ctx context.Context, cmd m.Command) {
	if !cmd.HasArtifact() {
		return
	}

	if err := s.deps.FS.Remove(ctx, cmd.FileList); err != nil {
		slog.Warn("Failed to remove file list", "path", cmd.FileList, "error", err)
	}
}

func (s *scanner) linterAvailable(ctx context.Context) bool {
	return s.deps.FS.Exists(ctx, m.Path(s.deps.Builder.LinterPath(ctx)))
}

func (s *scanner) resolveVersion(ctx context.Context, version string) string {
	if version != "" {
		return version
	}

	return s.options(ctx).PHPVersion
}

func (s *scanner) options(ctx context.Context) m.Options {
	if s.deps.Options == nil {
		return m.DefaultOptions()
	}

	options, err := s.deps.Options.Load(ctx)
	if err != nil {
		slog.Warn("Falling back to default options", "error", err)
		return m.DefaultOptions()
	}

	return options
}

func filterNoise(lines []string) []string {
	kept := []string{}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || cgiNoiseRe.MatchString(line) {
			continue
		}

		kept = append(kept, line)
	}

	return kept
}

func chunkPaths(files []m.Path, size int) [][]m.Path {
	if size < 1 {
		size = m.DefaultBatchSize
	}

	chunks := make([][]m.Path, 0, m.TotalBatchesFor(len(files), size))
	for start := 0; start < len(files); start += size {
		chunks = append(chunks, files[start:min(start+size, len(files))])
	}

	return chunks
}
