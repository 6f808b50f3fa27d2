package domain

import "strings"

const goosWindows = "windows"

// quoteArg quotes s for the shell of the given platform. POSIX shells get
// single quotes with embedded quotes escaped as '\''; cmd.exe gets double
// quotes with embedded double quotes doubled.
func quoteArg(goos, s string) string {
	if goos == goosWindows {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}

	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// commandLine accumulates exec arguments and their shell rendering together.
type commandLine struct {
	goos  string
	args  []string
	parts []string
}

func newCommandLine(goos, binary string) *commandLine {
	return &commandLine{
		goos:  goos,
		parts: []string{quoteArg(goos, binary)},
	}
}

// flag appends an argument that needs no quoting.
func (c *commandLine) flag(arg string) *commandLine {
	c.args = append(c.args, arg)
	c.parts = append(c.parts, arg)

	return c
}

// value appends an argument that is quoted on the rendered line.
func (c *commandLine) value(arg string) *commandLine {
	c.args = append(c.args, arg)
	c.parts = append(c.parts, quoteArg(c.goos, arg))

	return c
}

// flagValue appends "name=value" with only the value quoted on the line.
func (c *commandLine) flagValue(name, value string) *commandLine {
	c.args = append(c.args, name+"="+value)
	c.parts = append(c.parts, name+"="+quoteArg(c.goos, value))

	return c
}

// String renders the shell line with stdout and stderr combined.
func (c *commandLine) String() string {
	return strings.Join(c.parts, " ") + " 2>&1"
}
