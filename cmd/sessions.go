package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// sessionsCmd represents the sessions command group.
var sessionsCmd = newSessionsCmd()

func newSessionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Maintain stored scan sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newSessionsSweepCmd(), newSessionsDeleteCmd())

	return cmd
}

func newSessionsSweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Remove sessions older than one hour",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireScanner(); err != nil {
				return err
			}

			removed, err := sessions.Sweep(cmd.Context())
			if err != nil {
				return fmt.Errorf("sweep sessions: %w", err)
			}

			return ui.DisplayOutput(cmd.Context(), fmt.Sprintf("Removed %d expired session(s).", len(removed)))
		},
	}
}

func newSessionsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete SCAN_ID...",
		Short: "Delete scan sessions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireScanner(); err != nil {
				return err
			}

			for _, id := range args {
				if err := sessions.Delete(cmd.Context(), id); err != nil {
					return fmt.Errorf("delete session %s: %w", id, err)
				}
			}

			return ui.DisplayOutput(cmd.Context(), fmt.Sprintf("Deleted %d session(s).", len(args)))
		},
	}
}

func init() {
	rootCmd.AddCommand(sessionsCmd)
}
