// Package cmd provides the root command and CLI setup for phpcompat.
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"phpcompat.dev/pkg/phpcompat/internal/adapter"
	"phpcompat.dev/pkg/phpcompat/internal/controller"
	"phpcompat.dev/pkg/phpcompat/internal/domain"
	"phpcompat.dev/pkg/phpcompat/internal/metrics"
	m "phpcompat.dev/pkg/phpcompat/internal/model"
)

// Shared dependencies. They are wired on first use so that flags and config
// are applied; tests replace them with mocks beforehand.
var (
	sessionStore    adapter.SessionStore
	catalog         adapter.TargetCatalog
	optionsService  domain.OptionsService
	sessions        domain.ScanSessions
	scanner         domain.Scanner
	metricsRegistry *prometheus.Registry
	ui              controller.UI
)

var contentDirFlag string
var storeDriverFlag string
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
}

const rootLongDescription = `phpcompat checks WordPress plugins and themes for PHP version
compatibility by running PHP_CodeSniffer with the PHPCompatibility standard.

Large targets are scanned in batches tracked by a scan session, so progress
can be reported and a scan can be stopped between batches.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "phpcompat",
		Short:         "PHP compatibility scanner for WordPress plugins and themes",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if configErr != nil {
				return configErr
			}

			if globalLogger == nil {
				configureLogger("", verboseFlag || viper.GetBool(logVerboseKey))
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&contentDirFlag, contentDirFlagName, viper.GetString(contentDirKey), "WordPress content directory holding plugins/ and themes/")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(contentDirFlagName), contentDirKey)

	cmd.PersistentFlags().StringVar(&storeDriverFlag, storeFlagName, viper.GetString(storeDriverKey), "session store driver (memory, sqlite or badger)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(storeFlagName), storeDriverKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()

	closeDependencies()

	if err != nil {
		os.Exit(1)
	}
}

// requireOptions wires the options service only.
func requireOptions() {
	if optionsService != nil {
		return
	}

	optionsService = domain.NewOptionsService(adapter.NewYAMLOptionsStore(loadAppConfig().OptionsFile))
}

// requireCatalog wires the targets catalog only.
func requireCatalog() {
	if catalog != nil {
		return
	}

	catalog = adapter.NewWordPressCatalog(loadAppConfig().ContentDir)
}

// requireScanner wires the scanner and everything it depends on.
func requireScanner() error {
	requireOptions()
	requireCatalog()

	if scanner != nil {
		return nil
	}

	cfg := loadAppConfig()

	store, err := adapter.OpenSessionStore(cfg.StoreDriver, cfg.StorePath, slog.Default())
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}

	sessionStore = store
	metricsRegistry = prometheus.NewRegistry()
	scanMetrics := metrics.New(metricsRegistry)

	fsAdapter := adapter.NewLocalSourceFSAdapter()
	runner := adapter.NewLocalProcessRunnerAdapter(adapter.WithExecTimeout(cfg.ExecTimeout))

	sessions = domain.NewScanSessions(store, domain.WithSessionMetrics(scanMetrics))
	scanner = domain.NewScanner(domain.ScannerConfig{ExecEnabled: cfg.ExecEnabled}, domain.ScannerDeps{
		FS:        fsAdapter,
		Runner:    runner,
		Store:     store,
		Discovery: domain.NewFileDiscovery(fsAdapter),
		Builder: domain.NewCommandBuilder(domain.CommandBuilderConfig{
			SelfBinary:    cfg.PHPBinary,
			BinDir:        cfg.PHPBinDir,
			LinterRoot:    cfg.LinterRoot,
			TempDir:       m.Path(cfg.TempDir),
			MemoryLimitMB: cfg.MemoryLimitMB,
		}, fsAdapter),
		Parser:   domain.NewResultParser(),
		Sessions: sessions,
		Options:  optionsService,
		Metrics:  scanMetrics,
	})

	slog.Debug("Dependencies wired", "store", cfg.StoreDriver, "store_path", cfg.StorePath, "content_dir", cfg.ContentDir)

	return nil
}

// closeDependencies releases the session store opened by requireScanner.
func closeDependencies() {
	if sessionStore == nil {
		return
	}

	if err := sessionStore.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
		slog.Warn("Failed to close session store", "error", err)
	}

	sessionStore = nil
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
