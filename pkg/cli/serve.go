package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/tuser/pkg/cli/config"
	controller "github.com/secmon-lab/tuser/pkg/controller/http"
	"github.com/secmon-lab/tuser/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg  config.Server
		secretsCfg config.Secrets
		twitchCfg  config.Twitch
	)

	flags := joinFlags(
		serverCfg.Flags(),
		secretsCfg.Flags(),
		twitchCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting tuser server",
				slog.Any("server", serverCfg),
				slog.Any("secrets", secretsCfg),
				slog.Any("twitch", twitchCfg),
			)

			secretsProvider, err := secretsCfg.Configure(ctx)
			if err != nil {
				return err
			}

			directory := twitchCfg.Configure()

			lookupUC := usecase.NewUserLookup(secretsProvider, directory)

			server := controller.NewServer(ctx, serverCfg.Addr, lookupUC)

			// Start server in goroutine
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
