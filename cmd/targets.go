package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// targetsCmd represents the targets command.
var targetsCmd = newTargetsCmd()

func newTargetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List the plugins and themes that can be scanned",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			requireCatalog()

			list, err := catalog.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("list targets: %w", err)
			}

			return ui.DisplayTargets(cmd.Context(), list)
		},
	}
}

func init() {
	rootCmd.AddCommand(targetsCmd)
}
