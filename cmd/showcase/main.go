package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dconn.dev/showcase/internal/config"
	"dconn.dev/showcase/internal/handlers"
	"dconn.dev/showcase/internal/i18n"
	"dconn.dev/showcase/internal/server"
)

// app carries what every subcommand needs
type app struct {
	cfg     *config.Config
	catalog *i18n.Catalog
	logger  *zap.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "showcase",
		Short:         "Portfolio site rendering animated project cards",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger, err := cfg.NewLogger()
			if err != nil {
				return err
			}
			catalog, err := i18n.LoadEmbedded()
			if err != nil {
				return fmt.Errorf("load locale catalog: %w", err)
			}
			a.cfg, a.logger, a.catalog = cfg, logger, catalog
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.AddCommand(newServeCmd(a), newRenderCmd(a))
	return root
}

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.cfg.ServerAddr
			}
			a.logger.Info("starting showcase",
				zap.String("addr", addr),
				zap.Int("projects", len(a.cfg.Projects.Projects)),
				zap.String("default_locale", a.cfg.DefaultLocale),
			)
			router := handlers.SetupRoutes(a.cfg, a.catalog, a.logger)
			return server.New(router, a.logger, a.cfg.ShutdownTimeout).ListenAndServe(cmd.Context(), addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default SERVER_ADDR)")
	return cmd
}
