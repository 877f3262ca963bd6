package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewUnknownHandler returns the fallback handler that points users to /help.
func NewUnknownHandler(deps HandlerDeps) ReplyFunc {
	return func(ctx context.Context, update *models.Update) *bot.SendMessageParams {
		deps.Logger.DebugContext(ctx, "No command matched", "handler", "unknown", "chat_id", update.Message.Chat.ID)
		return textReply(update, deps.Messages.Unknown)
	}
}
