package controller

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"phpcompat.dev/pkg/phpcompat/internal/domain"
	m "phpcompat.dev/pkg/phpcompat/internal/model"
)

const (
	maxLogLines     = 8
	maxBarWidth     = 60
	defaultBarWidth = 40
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	helpStyle  = lipgloss.NewStyle().Faint(true)
)

// WithInterrupt registers the callback run when the user asks to stop the scan.
func WithInterrupt(interrupt func()) StartOption {
	return func(c *StartConfig) {
		c.interrupt = interrupt
	}
}

// TUI implements UI using Bubble Tea for live scan progress. Static views are
// printed the same way SimpleUI prints them.
type TUI struct {
	*SimpleUI

	programOptions []tea.ProgramOption

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return newTUI(cmd)
}

func newTUI(cmd *cobra.Command, programOptions ...tea.ProgramOption) *TUI {
	return &TUI{
		SimpleUI:       NewSimpleUI(cmd),
		programOptions: programOptions,
	}
}

// Start launches the progress program in the background.
func (p *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := p.SimpleUI.Start(ctx, options...); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.program != nil {
		return nil
	}

	opts := append([]tea.ProgramOption{tea.WithOutput(p.cmd.OutOrStdout()), tea.WithContext(ctx)}, p.programOptions...)
	p.program = tea.NewProgram(newScanModel(p.cfg), opts...)
	p.done = make(chan struct{})

	go func(program *tea.Program, done chan struct{}) {
		defer close(done)

		if _, err := program.Run(); err != nil {
			slog.Debug("Progress display ended", "error", err)
		}
	}(p.program, p.done)

	return nil
}

// Close stops the progress program and waits for its final frame.
func (p *TUI) Close(ctx context.Context) {
	p.mu.Lock()
	program, done := p.program, p.done
	p.program = nil
	p.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(finishMsg{})

	select {
	case <-done:
	case <-ctx.Done():
		program.Kill()
	}
}

// Wait blocks until the progress program exits.
func (p *TUI) Wait(ctx context.Context) {
	p.mu.Lock()
	done := p.done
	p.mu.Unlock()

	if done == nil {
		return
	}

	select {
	case <-done:
	case <-ctx.Done():
	}
}

// TargetStarted implements domain.ScanReporter.
func (p *TUI) TargetStarted(ctx context.Context, target domain.ScanTarget, info m.ProgressInfo) {
	if !p.send(targetStartedMsg{target: target, progress: info}) {
		p.SimpleUI.TargetStarted(ctx, target, info)
	}
}

// BatchCompleted implements domain.ScanReporter.
func (p *TUI) BatchCompleted(ctx context.Context, target domain.ScanTarget, result m.BatchResult) {
	if !p.send(batchCompletedMsg{target: target, result: result}) {
		p.SimpleUI.BatchCompleted(ctx, target, result)
	}
}

// TargetFinished implements domain.ScanReporter.
func (p *TUI) TargetFinished(ctx context.Context, summary domain.TargetSummary) {
	if !p.send(targetFinishedMsg{summary: summary}) {
		p.SimpleUI.TargetFinished(ctx, summary)
	}
}

func (p *TUI) send(msg tea.Msg) bool {
	p.mu.Lock()
	program := p.program
	p.mu.Unlock()

	if program == nil {
		return false
	}

	program.Send(msg)

	return true
}

type targetStartedMsg struct {
	target   domain.ScanTarget
	progress m.ProgressInfo
}

type batchCompletedMsg struct {
	target domain.ScanTarget
	result m.BatchResult
}

type targetFinishedMsg struct {
	summary domain.TargetSummary
}

type finishMsg struct{}

// scanModel renders the live progress of a driver run.
type scanModel struct {
	bar       progress.Model
	detailed  bool
	interrupt func()

	targets  int
	finished []string
	log      []string

	current   string
	total     int
	completed int
	counts    m.Counts

	stopping bool
	quitting bool
}

func newScanModel(cfg StartConfig) scanModel {
	return scanModel{
		bar:       progress.New(progress.WithDefaultGradient(), progress.WithWidth(defaultBarWidth)),
		detailed:  cfg.detailed(),
		interrupt: cfg.interrupt,
		targets:   cfg.targets,
	}
}

func (sm scanModel) Init() tea.Cmd {
	return nil
}

func (sm scanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		sm.bar.Width = min(max(msg.Width-4, 10), maxBarWidth)
		return sm, nil

	case tea.KeyMsg:
		return sm.handleKeyPress(msg)

	case targetStartedMsg:
		sm.current = msg.target.Label
		sm.total = msg.progress.EstimatedBatches
		sm.completed = 0
		sm.counts = m.Counts{}
		sm.log = nil

		if !msg.progress.HasFiles() {
			sm.appendLog(msg.target.Label + ": " + msg.progress.Message)
		}

		return sm, nil

	case batchCompletedMsg:
		sm.applyBatch(msg.result)
		return sm, nil

	case targetFinishedMsg:
		sm.finished = append(sm.finished, targetStatusLine(msg.summary))
		sm.current = ""
		sm.log = nil

		return sm, nil

	case finishMsg:
		sm.quitting = true
		return sm, tea.Quit
	}

	return sm, nil
}

func (sm scanModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		if !sm.stopping && sm.interrupt != nil {
			sm.interrupt()
		}

		sm.stopping = true
	}

	return sm, nil
}

func (sm *scanModel) applyBatch(result m.BatchResult) {
	if result.Message != "" {
		sm.appendLog(failStyle.Render(result.Message))
		return
	}

	sm.completed++
	sm.counts = sm.counts.Add(m.Counts{Errors: result.Errors, Warnings: result.Warnings})

	line := fmt.Sprintf("batch %d/%d: %s", result.BatchNumber, result.TotalBatches,
		formatCounts(m.Counts{Errors: result.Errors, Warnings: result.Warnings}))
	sm.appendLog(line)

	if sm.detailed && result.Errors+result.Warnings > 0 {
		for _, out := range strings.Split(strings.TrimSpace(result.Output), "\n") {
			if strings.HasPrefix(strings.TrimSpace(out), "FILE:") {
				sm.appendLog("  " + dimStyle.Render(strings.TrimSpace(out)))
			}
		}
	}
}

func (sm *scanModel) appendLog(line string) {
	sm.log = append(sm.log, line)
	if len(sm.log) > maxLogLines {
		sm.log = sm.log[len(sm.log)-maxLogLines:]
	}
}

func (sm scanModel) percent() float64 {
	if sm.total == 0 {
		return 0
	}

	return float64(sm.completed) / float64(sm.total)
}

func (sm scanModel) View() string {
	var b strings.Builder

	title := "PHP compatibility scan"
	if sm.targets > 0 {
		title = fmt.Sprintf("%s (%d/%d targets)", title, len(sm.finished), sm.targets)
	}

	b.WriteString(titleStyle.Render(title) + "\n\n")

	for _, line := range sm.finished {
		b.WriteString("  " + line + "\n")
	}

	if sm.current != "" {
		fmt.Fprintf(&b, "\n  %s  %s\n", sm.current, formatCounts(sm.counts))
		fmt.Fprintf(&b, "  %s %d/%d\n", sm.bar.ViewAs(sm.percent()), sm.completed, sm.total)
	}

	if len(sm.log) > 0 {
		b.WriteString("\n")

		for _, line := range sm.log {
			b.WriteString("  " + line + "\n")
		}
	}

	if sm.quitting {
		return b.String()
	}

	b.WriteString("\n")

	if sm.stopping {
		b.WriteString(helpStyle.Render("  stopping after the current batch...") + "\n")
	} else {
		b.WriteString(helpStyle.Render("  q: stop scan") + "\n")
	}

	return b.String()
}
