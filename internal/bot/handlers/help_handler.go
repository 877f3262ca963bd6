package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewHelpHandler returns a handler for the /help command.
func NewHelpHandler(deps HandlerDeps) ReplyFunc {
	return helpHandler{deps}.Handle
}

type helpHandler struct {
	deps HandlerDeps
}

func (h helpHandler) Handle(ctx context.Context, update *models.Update) *bot.SendMessageParams {
	h.deps.Logger.InfoContext(ctx, "Handling /help command", "handler", "help", "chat_id", update.Message.Chat.ID)
	return textReply(update, h.deps.Messages.Help)
}
