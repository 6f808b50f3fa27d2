package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var stopScanIDFlag string

// stopCmd represents the stop command.
var stopCmd = newStopCmd()

func newStopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stop",
		Short: "Ask running scans to stop after their current batch",
		Long: `Raise the stop token for one scan session, or for every scan when no
--scan-id is given. Requires a session store shared between processes
(sqlite or badger).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireScanner(); err != nil {
				return err
			}

			if err := scanner.RequestStop(cmd.Context(), stopScanIDFlag); err != nil {
				return fmt.Errorf("request stop: %w", err)
			}

			return ui.DisplayOutput(cmd.Context(), "Scan stop requested.")
		},
	}

	cmd.Flags().StringVar(&stopScanIDFlag, "scan-id", "", "stop only this scan session")

	return cmd
}

func init() {
	rootCmd.AddCommand(stopCmd)
}
