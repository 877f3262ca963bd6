// Package main contains the entrypoint for the imagebot panel server.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/edgard/imagebot/internal/app"
	"github.com/edgard/imagebot/internal/app/tasks"
	"github.com/edgard/imagebot/internal/bot/handlers"
	"github.com/edgard/imagebot/internal/config"
	"github.com/edgard/imagebot/internal/errtrack"
	"github.com/edgard/imagebot/internal/logger"
	"github.com/edgard/imagebot/internal/panel"
	"github.com/edgard/imagebot/internal/server"
	"github.com/edgard/imagebot/internal/webhook"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	exitCode := run(ctx)
	stop()
	os.Exit(exitCode)
}

// run wires config, logging, error tracking, the panel, the webhook and the
// scheduler, then blocks until shutdown. It returns the process exit code.
func run(ctx context.Context) int {
	configPath := flag.String("config", "./config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "path", *configPath, "error", err)
		return 1
	}

	log, logCloser := logger.NewLogger(cfg.Log)
	defer logCloser.Close()
	slog.SetDefault(log)
	log.Info("Logger initialized", "level", cfg.Log.Level, "format", cfg.Log.Format, "file", cfg.Log.File)

	if err := errtrack.Init(cfg.Sentry, log); err != nil {
		log.Error("Failed to initialize error tracking", "error", err)
		return 1
	}
	defer errtrack.Flush()

	renderer, err := panel.NewRenderer(panel.DefaultIcons())
	if err != nil {
		log.Error("Failed to prepare panel templates", "error", err)
		return 1
	}
	registry := panel.NewRegistry(cfg.Panel.MaxViews)

	hDeps := handlers.HandlerDeps{Logger: log, Messages: cfg.Bot.Messages}
	dispatcher := handlers.NewDispatcher(hDeps, handlers.LogUpdates(log))
	hook := webhook.New(cfg.Webhook, dispatcher, log)

	srv := server.New(registry, renderer, cfg.Webhook.Path, hook, log)

	tDeps := tasks.TaskDeps{Logger: log, Registry: registry, Config: cfg}
	sched, err := app.NewScheduler(log, cfg.Scheduler, tasks.RegisterAllTasks(tDeps))
	if err != nil {
		log.Error("Failed to create scheduler", "error", err)
		return 1
	}

	if err := app.New(log, cfg.HTTP, srv, sched).Run(ctx); err != nil {
		errtrack.CaptureError(err, map[string]string{"component": "app"})
		log.Error("Application stopped due to error", "error", err)
		return 1
	}

	log.Info("Shutdown complete")
	return 0
}
