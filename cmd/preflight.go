package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

var errNotReady = errors.New("system is not ready to scan")

// preflightCmd represents the preflight command.
var preflightCmd = newPreflightCmd()

func newPreflightCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preflight",
		Short: "Check that the PHP interpreter and linter can run",
		Long: `Resolve the PHP interpreter and the PHP_CodeSniffer entry point, run the
version probe and print the readiness report. Exits non-zero when not ready.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireScanner(); err != nil {
				return err
			}

			report := scanner.CheckSystemRequirements(cmd.Context())
			if err := ui.DisplayReadiness(cmd.Context(), report); err != nil {
				return err
			}

			if !report.Ready {
				return errNotReady
			}

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(preflightCmd)
}
