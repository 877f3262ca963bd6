// Package app runs the imagebot components and manages their lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/edgard/imagebot/internal/config"
)

// App owns the HTTP server and the scheduler.
type App struct {
	logger    *slog.Logger
	cfg       config.HTTPConfig
	server    *http.Server
	scheduler *Scheduler
}

// New creates an App serving handler on cfg.Addr.
func New(logger *slog.Logger, cfg config.HTTPConfig, handler http.Handler, scheduler *Scheduler) *App {
	return &App{
		logger: logger.With("component", "app"),
		cfg:    cfg,
		server: &http.Server{
			Addr:         cfg.Addr,
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		scheduler: scheduler,
	}
}

// Run starts all components and blocks until ctx is cancelled or one of
// them fails. Cancellation is a clean stop and returns nil.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info("Starting application...")

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info("Starting HTTP server", "addr", a.cfg.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %w", err)
		}
		a.logger.Info("HTTP server stopped")
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		a.logger.Info("Shutdown signal received, stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
		defer cancel()
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	})

	if a.scheduler != nil {
		g.Go(func() error {
			if err := a.scheduler.Start(); err != nil {
				return fmt.Errorf("failed to start scheduler: %w", err)
			}

			<-gCtx.Done()
			a.logger.Info("Shutdown signal received, stopping scheduler...")
			if err := a.scheduler.Stop(); err != nil {
				a.logger.Error("Error stopping scheduler", "error", err)
			}
			return nil
		})
	}

	err := g.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		a.logger.Error("Application stopped due to error", "error", err)
		return err
	}

	a.logger.Info("Application stopped gracefully")
	return nil
}
