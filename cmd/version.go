package cmd

import (
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	m "phpcompat.dev/pkg/phpcompat/internal/model"
)

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the phpcompat build version, the Go version used to build it and the PHP versions it can check against.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			version, goVersion := buildVersion()

			cmd.Println("phpcompat version\t", version)
			cmd.Println("go version\t\t", goVersion)
			cmd.Println("php targets\t\t", strings.Join(m.SupportedPHPVersions, ", "))
		},
	}
}

// buildVersion reads the module and toolchain versions from the build info.
func buildVersion() (string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown", "unknown"
	}

	version := info.Main.Version
	if version == "" || version == "(devel)" {
		version = "devel"
	}

	return version, info.GoVersion
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
