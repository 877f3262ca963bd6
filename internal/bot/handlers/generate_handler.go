package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

const generateCommand = "/generate"

// NewGenerateHandler returns a handler for the /generate command. It only
// acknowledges the prompt; no image is produced.
func NewGenerateHandler(deps HandlerDeps) ReplyFunc {
	return generateHandler{deps}.Handle
}

type generateHandler struct {
	deps HandlerDeps
}

func (h generateHandler) Handle(ctx context.Context, update *models.Update) *bot.SendMessageParams {
	log := h.deps.Logger.With("handler", "generate", "chat_id", update.Message.Chat.ID)

	prompt := extractPrompt(update.Message.Text)
	if prompt == "" {
		log.InfoContext(ctx, "Rejected /generate without a prompt")
		return textReply(update, h.deps.Messages.GenerateMissingPrompt)
	}

	log.InfoContext(ctx, "Handling /generate command", "prompt_preview", preview(prompt, 50))
	return textReply(update, fmt.Sprintf(h.deps.Messages.GeneratePending, prompt))
}

// extractPrompt removes every occurrence of the command from text and trims the rest.
func extractPrompt(text string) string {
	return strings.TrimSpace(strings.ReplaceAll(text, generateCommand, ""))
}
