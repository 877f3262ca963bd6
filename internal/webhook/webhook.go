// Package webhook serves the Telegram update endpoint. It decodes updates,
// asks a Replier for the answer and reports the outcome as JSON. It never
// calls the Bot API itself.
package webhook

import (
	"context"
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/imagebot/internal/config"
)

const corsMaxAge = 86400

var errNotObject = errors.New("update must be a JSON object")

// Replier produces the message to send for an update, or nil.
type Replier interface {
	Reply(ctx context.Context, update *models.Update) *tgbot.SendMessageParams
}

// Handler is the webhook endpoint.
type Handler struct {
	replier      Replier
	inlineReply  bool
	maxBodyBytes int64
	logger       *slog.Logger
}

// inlineReply is the webhook-reply form of sendMessage: Telegram executes
// the method found in the response body.
type inlineReply struct {
	Method string `json:"method"`
	*tgbot.SendMessageParams
}

// New creates the webhook handler.
func New(cfg config.WebhookConfig, replier Replier, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		replier:      replier,
		inlineReply:  cfg.InlineReply,
		maxBodyBytes: cfg.MaxBodyBytes,
		logger:       logger.With("component", "webhook"),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodOptions:
		hdr := w.Header()
		hdr.Set("Access-Control-Allow-Origin", "*")
		hdr.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		hdr.Set("Access-Control-Allow-Headers", "Content-Type")
		hdr.Set("Access-Control-Max-Age", strconv.Itoa(corsMaxAge))
		w.WriteHeader(http.StatusOK)
		return
	case http.MethodPost:
	default:
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "Method not allowed"})
		return
	}

	update, err := h.decode(w, r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode update", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	reply := h.replier.Reply(r.Context(), update)
	if reply == nil || !h.inlineReply {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
		return
	}
	writeJSON(w, http.StatusOK, inlineReply{Method: "sendMessage", SendMessageParams: reply})
}

// decode reads one update from the body. The body must be a JSON object.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (*models.Update, error) {
	body := io.Reader(r.Body)
	if h.maxBodyBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil, errNotObject
	}

	var update models.Update
	if err := json.Unmarshal(data, &update); err != nil {
		return nil, err
	}
	return &update, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
