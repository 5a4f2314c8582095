package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mserjo/bossy/internal/api"
	"github.com/mserjo/bossy/internal/api/handler/v1handler"
	"github.com/mserjo/bossy/internal/auth"
	"github.com/mserjo/bossy/internal/bonus"
	"github.com/mserjo/bossy/internal/config"
	"github.com/mserjo/bossy/internal/gamification"
	"github.com/mserjo/bossy/internal/group"
	"github.com/mserjo/bossy/internal/notification"
	"github.com/mserjo/bossy/internal/reward"
	"github.com/mserjo/bossy/internal/task"
	"github.com/mserjo/bossy/internal/worker"
	"github.com/mserjo/bossy/pkg/logger"
	"github.com/mserjo/bossy/pkg/storage/postgres"
)

// buildDeps constructs the service graph on top of the storage layer. The
// returned Deps is what the HTTP handlers and workers are wired with.
func buildDeps(cfg *config.Config, strg *postgres.PgSQL) api.Deps {
	notifier := notification.New(strg)
	bonusSvc := bonus.New(strg)
	gamificationSvc := gamification.New(strg)
	groupsSvc := group.New(strg, bonusSvc, notifier, group.NewOptions(cfg))

	return api.Deps{
		Deps: v1handler.Deps{
			Auth:         auth.New(strg, auth.NewOptions(cfg)),
			Groups:       groupsSvc,
			Tasks:        task.New(strg, groupsSvc, bonusSvc, gamificationSvc, notifier),
			Bonus:        bonusSvc,
			Rewards:      reward.New(strg, groupsSvc, bonusSvc, notifier),
			Gamification: gamificationSvc,
			Notifier:     notifier,
		},
	}
}

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			deps := buildDeps(cfg, strg)

			riverClient, err := worker.Start(ctx, strg.Pool, strg,
				deps.Tasks, deps.Gamification, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start background workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, deps)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(shutdownCtx, "stopping background workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop background workers", zap.Error(err))
			}
		},
	}

	return cmd
}
