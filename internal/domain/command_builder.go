package domain

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"phpcompat.dev/pkg/phpcompat/internal/adapter"
	m "phpcompat.dev/pkg/phpcompat/internal/model"
)

// Fixed linter flags.
const (
	linterExtensionsFlag = "--extensions=php"
	linterStandardFlag   = "--standard=PHPCompatibility"
	linterRuntimeSetFlag = "--runtime-set"
	linterTestVersionKey = "testVersion"
	linterNoCacheFlag    = "--no-cache"
	linterFileListFlag   = "--file-list"
	linterVersionFlag    = "--version"

	interpreterIniFlag = "-d"

	fileListPattern = "filelist_*.tmp"
	interpreterName = "php"
	cgiSuffix       = "php-cgi"
)

// CommandBuilderConfig tells the builder where to look for the interpreter and
// the linter.
type CommandBuilderConfig struct {
	// SelfBinary is the preferred interpreter path, used when it exists.
	SelfBinary string
	// BinDir is the conventional interpreter directory searched second.
	BinDir string
	// PathEnv is the PATH value searched third. Empty means os.Getenv("PATH").
	PathEnv string
	// GOOS selects binary naming and quoting rules. Empty means runtime.GOOS.
	GOOS string
	// LinterRoot is the project directory holding vendor/.
	LinterRoot string
	// TempDir receives file-list artifacts.
	TempDir m.Path
	// MemoryLimitMB is passed to the interpreter as its memory_limit. Zero
	// keeps the interpreter's own setting.
	MemoryLimitMB int
}

// CommandBuilder constructs linter command lines.
type CommandBuilder interface {
	// Build returns the command scanning files against version. With more than
	// one file the list is written to a temporary artifact referenced by the
	// command; the caller must remove Command.FileList when done.
	Build(ctx context.Context, files []m.Path, version string) m.Command
	// VersionCommand returns the "--version" probe command.
	VersionCommand(ctx context.Context) m.Command
	// InterpreterPath returns the resolved interpreter binary.
	InterpreterPath(ctx context.Context) string
	// LinterPath returns the resolved linter entry point.
	LinterPath(ctx context.Context) string
}

type commandBuilder struct {
	cfg       CommandBuilderConfig
	fsAdapter adapter.SourceFSAdapter
}

// NewCommandBuilder constructs a CommandBuilder.
func NewCommandBuilder(cfg CommandBuilderConfig, fsAdapter adapter.SourceFSAdapter) CommandBuilder {
	if cfg.GOOS == "" {
		cfg.GOOS = runtime.GOOS
	}

	if cfg.PathEnv == "" {
		cfg.PathEnv = os.Getenv("PATH")
	}

	if cfg.TempDir == "" {
		cfg.TempDir = m.Path(filepath.Join(os.TempDir(), "phpcompat-temp"))
	}

	return &commandBuilder{cfg: cfg, fsAdapter: fsAdapter}
}

func (b *commandBuilder) Build(ctx context.Context, files []m.Path, version string) m.Command {
	line := b.baseLine(ctx)
	line.flag(linterExtensionsFlag).
		flag(linterStandardFlag).
		flag(linterRuntimeSetFlag).
		flag(linterTestVersionKey).
		value(version).
		flag(linterNoCacheFlag)

	var artifact m.Path

	if len(files) > 1 {
		content := strings.Join(m.PathsToStrings(files), "\n")

		path, err := b.fsAdapter.WriteTempFile(ctx, b.cfg.TempDir, fileListPattern, []byte(content))
		if err != nil {
			slog.Warn("Falling back to positional file arguments", "files", len(files), "error", err)
		} else {
			artifact = path
		}
	}

	switch {
	case artifact != "":
		line.flagValue(linterFileListFlag, string(artifact))
	default:
		for _, file := range files {
			line.value(string(file))
		}
	}

	return m.Command{
		Binary:   b.InterpreterPath(ctx),
		Args:     line.args,
		Line:     line.String(),
		FileList: artifact,
	}
}

func (b *commandBuilder) VersionCommand(ctx context.Context) m.Command {
	line := b.baseLine(ctx).flag(linterVersionFlag)

	return m.Command{
		Binary: b.InterpreterPath(ctx),
		Args:   line.args,
		Line:   line.String(),
	}
}

func (b *commandBuilder) baseLine(ctx context.Context) *commandLine {
	line := newCommandLine(b.cfg.GOOS, b.InterpreterPath(ctx))
	if b.cfg.MemoryLimitMB > 0 {
		line.flag(interpreterIniFlag).flag(fmt.Sprintf("memory_limit=%dM", b.cfg.MemoryLimitMB))
	}

	return line.value(b.LinterPath(ctx))
}

func (b *commandBuilder) InterpreterPath(ctx context.Context) string {
	binary := ""

	switch {
	case b.cfg.SelfBinary != "" && b.exists(ctx, b.cfg.SelfBinary):
		binary = b.cfg.SelfBinary
	case b.cfg.BinDir != "":
		candidate := b.join(b.cfg.BinDir, b.interpreterFileName())
		if b.exists(ctx, candidate) {
			binary = candidate
		}
	}

	if binary != "" && b.isCGI(binary) {
		sibling := b.join(b.dir(binary), b.interpreterFileName())
		if b.exists(ctx, sibling) {
			binary = sibling
		}
	}

	if binary == "" {
		binary = b.searchPath(ctx)
	}

	if binary == "" {
		binary = interpreterName
	}

	return binary
}

func (b *commandBuilder) LinterPath(ctx context.Context) string {
	root := b.cfg.LinterRoot
	candidates := []string{
		b.join(root, "vendor", "bin", "phpcs"),
		b.join(root, "vendor", "squizlabs", "php_codesniffer", "bin", "phpcs"),
	}

	for _, candidate := range candidates {
		if b.exists(ctx, candidate) {
			return candidate
		}
	}

	return candidates[0]
}

func (b *commandBuilder) searchPath(ctx context.Context) string {
	separator := ":"
	if b.cfg.GOOS == goosWindows {
		separator = ";"
	}

	for _, dir := range strings.Split(b.cfg.PathEnv, separator) {
		dir = strings.TrimSpace(dir)
		if dir == "" {
			continue
		}

		candidate := b.join(dir, b.interpreterFileName())
		if b.exists(ctx, candidate) {
			return candidate
		}
	}

	return ""
}

func (b *commandBuilder) interpreterFileName() string {
	if b.cfg.GOOS == goosWindows {
		return interpreterName + ".exe"
	}

	return interpreterName
}

func (b *commandBuilder) isCGI(binary string) bool {
	base := strings.TrimSuffix(strings.ToLower(b.base(binary)), ".exe")

	return base == cgiSuffix
}

func (b *commandBuilder) exists(ctx context.Context, path string) bool {
	return b.fsAdapter.Exists(ctx, m.Path(path))
}

// join, dir and base honour the configured platform's separator rather than
// the host's, so Windows layouts resolve the same way everywhere.
func (b *commandBuilder) join(elem ...string) string {
	if b.cfg.GOOS != goosWindows {
		return filepath.Join(elem...)
	}

	parts := make([]string, 0, len(elem))
	for _, e := range elem {
		if e == "" {
			continue
		}

		parts = append(parts, strings.TrimRight(e, `\/`))
	}

	return strings.Join(parts, `\`)
}

func (b *commandBuilder) dir(path string) string {
	if b.cfg.GOOS != goosWindows {
		return filepath.Dir(path)
	}

	if i := strings.LastIndexAny(path, `\/`); i >= 0 {
		return path[:i]
	}

	return "."
}

func (b *commandBuilder) base(path string) string {
	if i := strings.LastIndexAny(path, `\/`); i >= 0 {
		return path[i+1:]
	}

	return path
}
