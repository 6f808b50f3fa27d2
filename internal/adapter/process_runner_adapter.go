package adapter

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	m "phpcompat.dev/pkg/phpcompat/internal/model"
)

// DefaultExecTimeout is the extended execution allowance for one linter run.
const DefaultExecTimeout = 300 * time.Second

// waitDelay bounds how long output is drained after the process is killed.
const waitDelay = 2 * time.Second

// ProcessRunnerAdapter abstracts external process execution.
type ProcessRunnerAdapter interface {
	// Run executes binary with args, blocking until it exits, and returns the
	// exit code with the combined stdout/stderr split into lines. A non-zero
	// exit is not an error; err is set only when the process could not be
	// started, was cut off by the execution limit or was cancelled through ctx.
	Run(ctx context.Context, binary string, args []string) (m.ProcessResult, error)
}

// LocalProcessRunnerAdapter provides a concrete implementation using os/exec.
type LocalProcessRunnerAdapter struct {
	timeout time.Duration
}

// ProcessRunnerOption configures a LocalProcessRunnerAdapter.
type ProcessRunnerOption func(*LocalProcessRunnerAdapter)

// WithExecTimeout overrides the execution limit. Zero or negative disables it.
func WithExecTimeout(timeout time.Duration) ProcessRunnerOption {
	return func(a *LocalProcessRunnerAdapter) {
		a.timeout = timeout
	}
}

// NewLocalProcessRunnerAdapter constructs a LocalProcessRunnerAdapter with the
// default 300s execution limit.
func NewLocalProcessRunnerAdapter(opts ...ProcessRunnerOption) *LocalProcessRunnerAdapter {
	a := &LocalProcessRunnerAdapter{
		timeout: DefaultExecTimeout,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Run executes the command and collects its whole output before returning.
func (a *LocalProcessRunnerAdapter) Run(ctx context.Context, binary string, args []string) (m.ProcessResult, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	// #nosec G204 - binary and args come from the command builder, not raw user input
	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.WaitDelay = waitDelay

	var combined bytes.Buffer

	cmd.Stdout = &combined
	cmd.Stderr = &combined

	started := time.Now()
	err := cmd.Run()
	lines := splitLines(combined.String())

	slog.Debug("Process finished", "binary", binary, "args", len(args), "duration", time.Since(started), "error", err)

	if err == nil {
		return m.ProcessResult{ExitCode: 0, Lines: lines}, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && ctx.Err() == nil {
		return m.ProcessResult{ExitCode: exitErr.ExitCode(), Lines: lines}, nil
	}

	if errors.Is(ctx.Err(), context.Canceled) {
		return m.ProcessResult{ExitCode: -1, Lines: lines}, fmt.Errorf("process cancelled: %w", ctx.Err())
	}

	if ctx.Err() != nil {
		return m.ProcessResult{ExitCode: -1, Lines: lines}, fmt.Errorf("process exceeded execution limit: %w", ctx.Err())
	}

	return m.ProcessResult{ExitCode: -1, Lines: lines}, fmt.Errorf("start process: %w", err)
}

func splitLines(output string) []string {
	lines := []string{}

	scanner := bufio.NewScanner(strings.NewReader(output))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}

	return lines
}
