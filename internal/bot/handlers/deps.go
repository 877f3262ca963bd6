package handlers

import (
	"log/slog"

	"github.com/edgard/imagebot/internal/config"
)

// HandlerDeps provides dependencies for bot command handlers.
type HandlerDeps struct {
	Logger   *slog.Logger
	Messages config.BotMessages
}
