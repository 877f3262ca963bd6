// Package server wires the HTTP routes: the connection panel pages, the
// health probe and the Telegram webhook.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/edgard/imagebot/internal/errtrack"
	"github.com/edgard/imagebot/internal/logger"
	"github.com/edgard/imagebot/internal/panel"
)

// Server is the root HTTP handler.
type Server struct {
	router   chi.Router
	registry *panel.Registry
	renderer *panel.Renderer
	logger   *slog.Logger
}

// New builds the router. The webhook handler is mounted at webhookPath for every method.
func New(registry *panel.Registry, renderer *panel.Renderer, webhookPath string, webhook http.Handler, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}

	s := &Server{
		router:   chi.NewRouter(),
		registry: registry,
		renderer: renderer,
		logger:   log.With("component", "http"),
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(logger.Middleware(s.logger))
	s.router.Use(errtrack.Recoverer(s.logger))

	s.router.Get("/", s.handleIndex)
	s.router.Get("/healthz", s.handleHealth)
	s.router.Route("/views/{viewID}", func(r chi.Router) {
		r.Post("/token", s.handleToken)
		r.Post("/connect", s.handleConnect)
	})
	s.router.Handle(webhookPath, webhook)

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// handleIndex renders a fresh, disconnected view for every page load. The
// view is only stored once it receives an event.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, panel.Page{ViewID: s.registry.Mint(), State: panel.NewView().State()})
}

func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	err := s.registry.Do(chi.URLParam(r, "viewID"), func(v *panel.View) {
		v.SetToken(r.PostForm.Get("token"))
	})
	if errors.Is(err, panel.ErrViewNotFound) {
		http.Error(w, "view not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleConnect(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	id := chi.URLParam(r, "viewID")
	var (
		state        panel.State
		notification panel.Notification
		connectErr   error
	)
	err := s.registry.Do(id, func(v *panel.View) {
		if token, ok := r.PostForm["token"]; ok && len(token) > 0 {
			v.SetToken(token[0])
		}
		notification, connectErr = v.AttemptConnect()
		state = v.State()
	})
	if errors.Is(err, panel.ErrViewNotFound) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if connectErr != nil {
		s.logger.DebugContext(r.Context(), "Connect rejected", "view_id", id, "reason", connectErr)
	} else {
		s.logger.InfoContext(r.Context(), "Bot connected", "view_id", id)
	}

	s.render(w, r, panel.Page{ViewID: id, State: state, Notification: &notification})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status": "ok",
		"views":  s.registry.Len(),
	})
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, p panel.Page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := s.renderer.Render(w, p); err != nil {
		s.logger.ErrorContext(r.Context(), "Failed to render panel", "view_id", p.ViewID, "error", err)
		errtrack.CaptureError(err, map[string]string{"component": "panel"})
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
