package model

// Command is an invocable linter command line.
type Command struct {
	// Binary and Args are passed to the process runner without a shell.
	Binary string
	Args   []string
	// Line is the equivalent shell command line, quoted for the platform.
	Line string
	// FileList is the temporary file-list artifact backing the command, if
	// any. The caller owns its removal.
	FileList Path
}

// HasArtifact reports whether the command created a file-list artifact.
func (c Command) HasArtifact() bool {
	return c.FileList != ""
}

// ProcessResult is the captured outcome of one external process.
type ProcessResult struct {
	ExitCode int
	Lines    []string
}
