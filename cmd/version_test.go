package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Output(t *testing.T) {
	cmd := newVersionCmd()

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "phpcompat version")
	assert.Contains(t, output, "go version")
	assert.Contains(t, output, "7.4, 8.0, 8.1, 8.2, 8.3, 8.4")
}

func TestBuildVersion(t *testing.T) {
	version, goVersion := buildVersion()

	assert.NotEmpty(t, version)
	assert.NotEmpty(t, goVersion)
}
