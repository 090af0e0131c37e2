// @title Health log API
// @description API for personal health-activity log "Healthlog"
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/limbo/healthlog/internal/api"
	"github.com/limbo/healthlog/internal/catalog"
	"github.com/limbo/healthlog/internal/repository"
	"github.com/limbo/healthlog/internal/service"
	"github.com/limbo/healthlog/pkg/cleanup"
	"github.com/limbo/healthlog/pkg/config"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(cfg.GetStringOr("LOG_LEVEL", "info")),
	})))

	types := catalog.New()
	activityRepo := repository.NewActivityRepo(types)
	serv := api.New(&api.ServicesList{
		ActivityService: service.NewActivityService(activityRepo, types),
		StatisticsService: service.NewStatisticsService(activityRepo, types, service.StatisticsOpts{
			Workers: cfg.GetInt("STATS_WORKERS", 4),
		}),
	})
	cleanup.Register(&cleanup.Job{
		Name: "api server shutdown",
		F: func() error {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
			defer cancel()
			return serv.Shutdown(ctx)
		},
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- serv.Run(cfg.GetStringOr("API_ADDRESS", ":8080"))
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-stop:
		slog.Info("shutting down", slog.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			slog.Error("server error", slog.String("error", err.Error()))
		}
	}
	if failed := cleanup.CleanUp(); failed > 0 {
		os.Exit(1)
	}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
