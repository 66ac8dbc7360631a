package cmd

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"showtime-finder-cli/config"
	"showtime-finder-cli/dataset"
	"showtime-finder-cli/server"
)

const shutdownTimeout = 5 * time.Second

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the route and catalog API over HTTP",
	Long:  `Resolve deep links and query movies, showtimes and cinemas as JSON.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("addr") {
			cfg.ListenAddr = serveAddr
		}
		logger := stderrLogger(cmd.ErrOrStderr(), cfg)

		srv := server.New(dataset.Default(), server.WithLogger(logger))
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errs := make(chan error, 1)
		go func() {
			logger.Info("listening", "addr", cfg.ListenAddr)
			errs <- srv.Start(cfg.ListenAddr)
		}()

		select {
		case err := <-errs:
			return err
		case <-ctx.Done():
		}

		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default "+config.DefaultAddr+")")
}
