package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"phpcompat.dev/pkg/phpcompat/internal/server"
)

const (
	addrFlagName  = "addr"
	tokenFlagName = "token"
)

var serveAddrFlag string
var serveTokenFlag string

// serveCmd represents the serve command.
var serveCmd = newServeCmd()

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scan API over HTTP",
		Long: `Serve preflight, targets, progress, batches, stop and options requests
over HTTP with a {success, data} JSON envelope. Metrics are exposed on
/metrics. SIGINT or SIGTERM shuts the server down gracefully.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireScanner(); err != nil {
				return err
			}

			cfg := loadAppConfig()
			srv := server.New(server.Config{Addr: cfg.ServerAddr, Token: cfg.ServerToken}, server.Deps{
				Scanner:  scanner,
				Catalog:  catalog,
				Options:  optionsService,
				Gatherer: metricsRegistry,
			})

			return serve(cmd.Context(), srv)
		},
	}

	cmd.Flags().StringVar(&serveAddrFlag, addrFlagName, viper.GetString(serverAddrKey), "listen address")
	bindFlagToConfig(cmd.Flags().Lookup(addrFlagName), serverAddrKey)

	cmd.Flags().StringVar(&serveTokenFlag, tokenFlagName, viper.GetString(serverTokenKey), "bearer token required on /api routes (empty disables)")
	bindFlagToConfig(cmd.Flags().Lookup(tokenFlagName), serverTokenKey)

	return cmd
}

// runner is the part of server.Server that serve drives.
type runner interface {
	Run(ctx context.Context) error
}

// serve runs srv until a signal arrives or the server fails.
func serve(ctx context.Context, srv runner) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return srv.Run(ctx)
	})

	g.Go(func() error {
		<-ctx.Done()
		slog.Info("Shutdown requested")

		return nil
	})

	return g.Wait()
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
