package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	m "phpcompat.dev/pkg/phpcompat/internal/model"
)

const (
	reportModeFlagName = "report-mode"
	batchSizeFlagName  = "batch-size"
	phpVersionFlagName = "php-version"
	skipVendorFlagName = "skip-vendor"
)

// optionsCmd represents the options command.
var optionsCmd = newOptionsCmd()

func newOptionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "options",
		Short: "Show the stored scan options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			requireOptions()

			options, err := optionsService.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("load options: %w", err)
			}

			return ui.DisplayOptions(cmd.Context(), options)
		},
	}

	cmd.AddCommand(newOptionsSetCmd())

	return cmd
}

func newOptionsSetCmd() *cobra.Command {
	var (
		reportMode string
		batchSize  int
		phpVersion string
		skipVendor bool
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change stored scan options",
		Long: `Update the stored scan options. Only the flags given are changed; values
outside the supported sets fall back to their defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			requireOptions()

			options, err := optionsService.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("load options: %w", err)
			}

			flags := cmd.Flags()
			if flags.Changed(reportModeFlagName) {
				options.ReportMode = reportMode
			}

			if flags.Changed(batchSizeFlagName) {
				options.BatchSize = batchSize
			}

			if flags.Changed(phpVersionFlagName) {
				options.PHPVersion = phpVersion
			}

			if flags.Changed(skipVendorFlagName) {
				options.SkipVendor = skipVendor
			}

			saved, err := optionsService.Save(cmd.Context(), options)
			if err != nil {
				return fmt.Errorf("save options: %w", err)
			}

			if err := ui.DisplayOutput(cmd.Context(), "Options saved successfully."); err != nil {
				return err
			}

			return ui.DisplayOptions(cmd.Context(), saved)
		},
	}

	cmd.Flags().StringVar(&reportMode, reportModeFlagName, m.DefaultReportMode, "report mode (detailed or summary)")
	cmd.Flags().IntVar(&batchSize, batchSizeFlagName, m.DefaultBatchSize, "files per batch (10, 25, 50, 75 or 100)")
	cmd.Flags().StringVar(&phpVersion, phpVersionFlagName, m.DefaultPHPVersion, "target PHP version (7.4 to 8.4)")
	cmd.Flags().BoolVar(&skipVendor, skipVendorFlagName, m.DefaultSkipVendor, "exclude vendor/ directories")

	return cmd
}

func init() {
	rootCmd.AddCommand(optionsCmd)
}
