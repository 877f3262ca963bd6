package handlers

import (
	"context"
	"strings"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// RegisteredHandler binds a reply handler to the text pattern that selects it.
type RegisteredHandler struct {
	HandlerType tgbot.HandlerType
	Pattern     string
	MatchType   tgbot.MatchType
	Handler     ReplyFunc
}

// RegisterAllCommands returns the command handlers in matching order.
func RegisterAllCommands(deps HandlerDeps) []RegisteredHandler {
	return []RegisteredHandler{
		{
			HandlerType: tgbot.HandlerTypeMessageText,
			Pattern:     "/start",
			MatchType:   tgbot.MatchTypeExact,
			Handler:     NewStartHandler(deps),
		},
		{
			HandlerType: tgbot.HandlerTypeMessageText,
			Pattern:     "/generate",
			MatchType:   tgbot.MatchTypePrefix,
			Handler:     NewGenerateHandler(deps),
		},
		{
			HandlerType: tgbot.HandlerTypeMessageText,
			Pattern:     "/help",
			MatchType:   tgbot.MatchTypeExact,
			Handler:     NewHelpHandler(deps),
		},
	}
}

// Dispatcher routes message updates to the first matching handler and falls
// back to a default handler when nothing matches.
type Dispatcher struct {
	handlers []RegisteredHandler
	fallback ReplyFunc
}

// NewDispatcher creates a dispatcher over the registered commands. The given
// middleware wraps every handler, including the fallback.
func NewDispatcher(deps HandlerDeps, mw ...Middleware) *Dispatcher {
	registered := RegisterAllCommands(deps)
	for i := range registered {
		registered[i].Handler = applyMiddleware(registered[i].Handler, mw)
	}

	return &Dispatcher{
		handlers: registered,
		fallback: applyMiddleware(NewUnknownHandler(deps), mw),
	}
}

// Reply returns the message to send in answer to update, or nil for updates
// that carry no message.
func (d *Dispatcher) Reply(ctx context.Context, update *models.Update) *tgbot.SendMessageParams {
	if update == nil || update.Message == nil || update.Message.Chat.ID == 0 {
		return nil
	}

	text := update.Message.Text
	for _, h := range d.handlers {
		if h.HandlerType != tgbot.HandlerTypeMessageText || h.Handler == nil {
			continue
		}
		if matches(h.MatchType, h.Pattern, text) {
			return h.Handler(ctx, update)
		}
	}
	return d.fallback(ctx, update)
}

func matches(matchType tgbot.MatchType, pattern, text string) bool {
	switch matchType {
	case tgbot.MatchTypeExact:
		return text == pattern
	case tgbot.MatchTypePrefix:
		return strings.HasPrefix(text, pattern)
	case tgbot.MatchTypeContains:
		return strings.Contains(text, pattern)
	default:
		return false
	}
}

// textReply builds a plain text reply to the chat the update came from.
func textReply(update *models.Update, text string) *tgbot.SendMessageParams {
	return &tgbot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   text,
	}
}
