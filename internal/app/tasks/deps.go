// Package tasks implements the scheduled maintenance tasks.
package tasks

import (
	"log/slog"

	"github.com/edgard/imagebot/internal/config"
	"github.com/edgard/imagebot/internal/panel"
)

// TaskDeps contains the dependencies shared by scheduled tasks.
type TaskDeps struct {
	Logger   *slog.Logger
	Registry *panel.Registry
	Config   *config.Config
}
