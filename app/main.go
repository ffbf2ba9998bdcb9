package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/zakiyahfaroo/HuskySync/internal/assistant"
	"github.com/zakiyahfaroo/HuskySync/internal/config"
	"github.com/zakiyahfaroo/HuskySync/internal/graceful"
	"github.com/zakiyahfaroo/HuskySync/internal/planner"
	"github.com/zakiyahfaroo/HuskySync/internal/repositories"
	telegramBot "github.com/zakiyahfaroo/HuskySync/internal/telegram"
	"github.com/zakiyahfaroo/HuskySync/internal/transport/httpServer"
	"github.com/zakiyahfaroo/HuskySync/internal/transport/httpServer/handlers"
	"github.com/zakiyahfaroo/HuskySync/internal/transport/httpServer/routers"
	"github.com/zakiyahfaroo/HuskySync/internal/utils/logger/handlers/slogpretty"
	"github.com/zakiyahfaroo/HuskySync/internal/utils/logger/sl"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

var Version = "0.1"

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info(
		"starting husky sync",
		slog.String("env", cfg.Env),
		slog.String("version", Version),
	)

	repositoryService := repositories.New(log, cfg)
	aiService := assistant.New(log, cfg)
	announcer, err := telegramBot.New(log, cfg)
	if err != nil {
		log.Error("failed to start telegram announcer", sl.Err(err))
		os.Exit(1)
	}
	plannerService := planner.New(log, cfg, aiService, repositoryService, announcer)

	// HTTP Server
	eventHandler := handlers.NewEventHandler(log, repositoryService, announcer)
	plannerHandler := handlers.NewPlannerHandler(log, plannerService)
	router := routers.NewRouter(log, eventHandler, plannerHandler)
	httpSrv := httpServer.NewHttpServer(log, router, cfg)

	maxSecond := 15 * time.Second
	waitShutdown := graceful.GracefulShutdown(
		context.Background(),
		maxSecond,
		map[string]graceful.Operation{
			"Planner service": func(ctx context.Context) error {
				return plannerService.Shutdown(ctx)
			},
			"AI service": func(ctx context.Context) error {
				return aiService.Shutdown(ctx)
			},
			"Repository service": func(ctx context.Context) error {
				return repositoryService.Shutdown(ctx)
			},
			"Telegram announcer": func(ctx context.Context) error {
				return announcer.Shutdown(ctx)
			},
			"HTTP server": func(ctx context.Context) error {
				return httpSrv.Shutdown(ctx)
			},
		},
		log,
	)

	go plannerService.Start()
	go httpSrv.Listen()

	<-waitShutdown
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog(slog.LevelDebug)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = setupPrettySlog(slog.LevelInfo)
	default: // If env config is invalid, set prod settings by default due to security
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}

	return log
}

func setupPrettySlog(level slog.Level) *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: level,
		},
	}

	handler := opts.NewPrettyHandler(os.Stdout)

	return slog.New(handler)
}
