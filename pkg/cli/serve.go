package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/oneirolab/dreamvault/pkg/cli/config"
	httpctrl "github.com/oneirolab/dreamvault/pkg/controller/http"
	"github.com/oneirolab/dreamvault/pkg/service/worker"
	"github.com/oneirolab/dreamvault/pkg/usecase"
	"github.com/oneirolab/dreamvault/pkg/utils/async"
	"github.com/oneirolab/dreamvault/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var addr string
	var backupInterval time.Duration
	var repoCfg config.Repository
	var analysisCfg config.Analysis
	var lockCfg config.Lock

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       "127.0.0.1:8080",
			Sources:     cli.EnvVars("DREAMVAULT_ADDR"),
			Destination: &addr,
		},
		&cli.DurationFlag{
			Name:        "backup-interval",
			Usage:       "Journal backup interval for the file backend (0 disables backups)",
			Value:       15 * time.Minute,
			Sources:     cli.EnvVars("DREAMVAULT_BACKUP_INTERVAL"),
			Destination: &backupInterval,
		},
	}

	// Add shared config flags
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, analysisCfg.Flags()...)
	flags = append(flags, lockCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			var ucOpts []usecase.Option

			if analysisCfg.Configured() {
				client, err := analysisCfg.Configure()
				if err != nil {
					return goerr.Wrap(err, "failed to configure analysis client")
				}
				ucOpts = append(ucOpts, usecase.WithAnalysisService(client))
				logging.Default().Info("Dream analysis enabled")
			} else {
				logging.Default().Info("Analysis API key not configured, analysis features are disabled")
			}

			if auth := lockCfg.Configure(); auth != nil {
				ucOpts = append(ucOpts, usecase.WithAuthenticator(auth))
				logging.Default().Info("Journal lock enabled", "kind", auth.Kind())
			}

			uc := usecase.New(repo, ucOpts...)

			// Periodic journal snapshots only make sense for the file backend
			var backupWorker *worker.JournalBackupWorker
			if repoCfg.Backend() == "file" && backupInterval > 0 {
				backupWorker = worker.NewJournalBackupWorker(repoCfg.Path(), backupInterval)
				if err := backupWorker.Start(ctx); err != nil {
					return goerr.Wrap(err, "failed to start journal backup worker")
				}
				// Take one snapshot right away instead of waiting a full interval
				async.Dispatch(ctx, backupWorker.Snapshot)
			}

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc),
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				if backupWorker != nil {
					backupWorker.Stop()
				}

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
