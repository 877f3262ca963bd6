// Package handlers contains the bot command handlers used by the webhook
// responder, along with their registration and matching logic.
package handlers

import (
	"context"
	"log/slog"
	"time"
	"unicode/utf8"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// ReplyFunc answers a single update. A nil result means there is nothing to send.
type ReplyFunc func(ctx context.Context, update *models.Update) *tgbot.SendMessageParams

// Middleware wraps a ReplyFunc.
type Middleware func(next ReplyFunc) ReplyFunc

// applyMiddleware wraps a handler with mw so that the first element is the outermost.
func applyMiddleware(handler ReplyFunc, mw []Middleware) ReplyFunc {
	for i := len(mw) - 1; i >= 0; i-- {
		handler = mw[i](handler)
	}
	return handler
}

// LogUpdates logs every handled update with its chat, sender and a short text preview.
func LogUpdates(log *slog.Logger) Middleware {
	return func(next ReplyFunc) ReplyFunc {
		return func(ctx context.Context, update *models.Update) *tgbot.SendMessageParams {
			start := time.Now()
			entry := log.With("update_id", update.ID)

			if msg := update.Message; msg != nil {
				entry = entry.With(
					"message_id", msg.ID,
					"chat_id", msg.Chat.ID,
					"text_preview", preview(msg.Text, 50),
				)
				if msg.From != nil {
					entry = entry.With("user_id", msg.From.ID)
				}
			}

			reply := next(ctx, update)
			entry.DebugContext(ctx, "Handled update", "replied", reply != nil, "duration", time.Since(start))
			return reply
		}
	}
}

// preview shortens s to at most n runes.
func preview(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n]) + "..."
}
