package server_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/edgard/imagebot/internal/bot/handlers"
	"github.com/edgard/imagebot/internal/config"
	"github.com/edgard/imagebot/internal/panel"
	"github.com/edgard/imagebot/internal/server"
	"github.com/edgard/imagebot/internal/webhook"
)

var connectURLRe = regexp.MustCompile(`action="/views/([^/"]+)/connect"`)

func newServer(t *testing.T) (*server.Server, *panel.Registry) {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	renderer, err := panel.NewRenderer(panel.DefaultIcons())
	if err != nil {
		t.Fatalf("NewRenderer() error: %v", err)
	}
	registry := panel.NewRegistry(100)
	dispatcher := handlers.NewDispatcher(handlers.HandlerDeps{Logger: log, Messages: config.DefaultBotMessages})
	hook := webhook.New(config.WebhookConfig{Path: config.DefaultWebhookPath, MaxBodyBytes: 1 << 20}, dispatcher, log)

	return server.New(registry, renderer, config.DefaultWebhookPath, hook, log), registry
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func postForm(t *testing.T, h http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// mount loads the index page and returns the id of the mounted view.
func mount(t *testing.T, h http.Handler) string {
	t.Helper()
	rec := get(t, h, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET / status = %d", rec.Code)
	}
	m := connectURLRe.FindStringSubmatch(rec.Body.String())
	if m == nil {
		t.Fatal("index page has no connect form")
	}
	return m[1]
}

func TestIndex(t *testing.T) {
	t.Parallel()

	srv, _ := newServer(t)
	rec := get(t, srv, "/")

	if rec.Header().Get("Cache-Control") != "no-store" {
		t.Errorf("Cache-Control = %q", rec.Header().Get("Cache-Control"))
	}
	if !strings.HasPrefix(rec.Header().Get("Content-Type"), "text/html") {
		t.Errorf("Content-Type = %q", rec.Header().Get("Content-Type"))
	}
	if strings.Contains(rec.Body.String(), `data-role="dashboard"`) {
		t.Error("fresh view should be disconnected")
	}
}

func TestConnect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		token     string
		connected bool
		toast     string
	}{
		{name: "empty token", token: "", connected: false, toast: "Введите токен бота"},
		{name: "whitespace token", token: "   ", connected: false, toast: "Введите токен бота"},
		{name: "valid token", token: "123:ABC", connected: true, toast: "Бот подключен и готов к работе"},
	}

	srv, _ := newServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			id := mount(t, srv)
			rec := postForm(t, srv, "/views/"+id+"/connect", url.Values{"token": {tt.token}})
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}

			body := rec.Body.String()
			if got := strings.Contains(body, `data-role="dashboard"`); got != tt.connected {
				t.Errorf("dashboard rendered = %v, want %v", got, tt.connected)
			}
			if got := strings.Contains(body, `data-role="connect-card"`); got == tt.connected {
				t.Errorf("connect form rendered = %v, want %v", got, !tt.connected)
			}
			if !strings.Contains(body, tt.toast) {
				t.Errorf("toast %q missing", tt.toast)
			}
		})
	}
}

func TestConnect_TokenFromKeystrokeBinding(t *testing.T) {
	t.Parallel()

	srv, _ := newServer(t)
	id := mount(t, srv)

	rec := postForm(t, srv, "/views/"+id+"/token", url.Values{"token": {"123:ABC"}})
	if rec.Code != http.StatusNoContent {
		t.Fatalf("token status = %d, want 204", rec.Code)
	}

	rec = postForm(t, srv, "/views/"+id+"/connect", url.Values{})
	if !strings.Contains(rec.Body.String(), `data-role="dashboard"`) {
		t.Error("connect without a form token should use the bound token")
	}
}

func TestConnect_ReloadStartsOver(t *testing.T) {
	t.Parallel()

	srv, registry := newServer(t)
	first := mount(t, srv)
	postForm(t, srv, "/views/"+first+"/connect", url.Values{"token": {"123:ABC"}})

	second := mount(t, srv)
	if first == second {
		t.Fatal("reload should mint a new view id")
	}
	if registry.Len() != 1 {
		t.Errorf("registry has %d views, want 1", registry.Len())
	}

	rec := postForm(t, srv, "/views/"+second+"/connect", url.Values{"token": {""}})
	if strings.Contains(rec.Body.String(), `data-role="dashboard"`) {
		t.Error("reloaded view should start disconnected")
	}
}

func TestIndex_DoesNotStoreViews(t *testing.T) {
	t.Parallel()

	srv, registry := newServer(t)
	for i := 0; i < 50; i++ {
		mount(t, srv)
	}
	if registry.Len() != 0 {
		t.Errorf("page loads stored %d views, want 0", registry.Len())
	}
}

func TestConnect_RegistryStaysBounded(t *testing.T) {
	t.Parallel()

	srv, registry := newServer(t)
	for i := 0; i < 150; i++ {
		id := mount(t, srv)
		postForm(t, srv, "/views/"+id+"/token", url.Values{"token": {"x"}})
	}
	if registry.Len() > 100 {
		t.Errorf("registry grew to %d views, cap is 100", registry.Len())
	}
}

func TestUnknownView(t *testing.T) {
	t.Parallel()

	srv, _ := newServer(t)

	rec := postForm(t, srv, "/views/nope/connect", url.Values{"token": {"123:ABC"}})
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/" {
		t.Errorf("connect on malformed view id: status %d location %q", rec.Code, rec.Header().Get("Location"))
	}

	rec = postForm(t, srv, "/views/nope/token", url.Values{"token": {"x"}})
	if rec.Code != http.StatusNotFound {
		t.Errorf("token on malformed view id: status %d, want 404", rec.Code)
	}
}

func TestConnect_ExpiredViewStartsFresh(t *testing.T) {
	t.Parallel()

	srv, registry := newServer(t)
	id := mount(t, srv)
	postForm(t, srv, "/views/"+id+"/token", url.Values{"token": {"123:ABC"}})
	registry.EvictIdle(-time.Minute)

	rec := postForm(t, srv, "/views/"+id+"/connect", url.Values{})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Введите токен бота") {
		t.Error("an evicted view should come back empty and reject the connect")
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	srv, _ := newServer(t)
	id := mount(t, srv)
	postForm(t, srv, "/views/"+id+"/token", url.Values{"token": {"x"}})

	rec := get(t, srv, "/healthz")
	var body struct {
		Status string `json:"status"`
		Views  int    `json:"views"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body.Status != "ok" || body.Views != 1 {
		t.Errorf("unexpected health body: %+v", body)
	}
}

func TestWebhookRoute(t *testing.T) {
	t.Parallel()

	srv, _ := newServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, config.DefaultWebhookPath, nil))
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("webhook OPTIONS should be routed to the webhook handler")
	}

	rec = get(t, srv, config.DefaultWebhookPath)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET webhook status = %d, want 405", rec.Code)
	}

	req := httptest.NewRequest(http.MethodPost, config.DefaultWebhookPath,
		strings.NewReader(`{"update_id":1,"message":{"message_id":1,"chat":{"id":3},"text":"/help"}}`))
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"ok":true`) {
		t.Errorf("POST webhook: %d %s", rec.Code, rec.Body.String())
	}
}
