package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewStartHandler returns a handler for the /start command.
func NewStartHandler(deps HandlerDeps) ReplyFunc {
	return startHandler{deps}.Handle
}

// startHandler answers /start with the welcome text.
type startHandler struct {
	deps HandlerDeps
}

func (h startHandler) Handle(ctx context.Context, update *models.Update) *bot.SendMessageParams {
	h.deps.Logger.InfoContext(ctx, "Handling /start command", "handler", "start", "chat_id", update.Message.Chat.ID)
	return textReply(update, h.deps.Messages.Start)
}
