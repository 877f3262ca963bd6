package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/edgard/imagebot/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}

	if cfg.Log.Level != config.DefaultLogLevel {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, config.DefaultLogLevel)
	}
	if cfg.HTTP.Addr != config.DefaultHTTPAddr {
		t.Errorf("HTTP.Addr = %q, want %q", cfg.HTTP.Addr, config.DefaultHTTPAddr)
	}
	if cfg.Panel.ViewTTL != config.DefaultPanelViewTTL {
		t.Errorf("Panel.ViewTTL = %v, want %v", cfg.Panel.ViewTTL, config.DefaultPanelViewTTL)
	}
	if cfg.Panel.MaxViews != config.DefaultPanelMaxViews {
		t.Errorf("Panel.MaxViews = %d, want %d", cfg.Panel.MaxViews, config.DefaultPanelMaxViews)
	}
	if cfg.Webhook.InlineReply {
		t.Error("Webhook.InlineReply should default to false")
	}
	if cfg.Bot.Messages != config.DefaultBotMessages {
		t.Errorf("Bot.Messages = %+v, want defaults", cfg.Bot.Messages)
	}
	task, ok := cfg.Scheduler.Tasks[config.DefaultViewEvictionTask]
	if !ok || !task.Enabled || task.Schedule != config.DefaultViewEvictionSchedule {
		t.Errorf("view eviction task = %+v (present %v), want enabled default schedule", task, ok)
	}
}

func TestLoadConfig_FileOverrides(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
  format: text
http:
  addr: "127.0.0.1:9090"
  shutdown_timeout: 10s
panel:
  view_ttl: 2h
webhook:
  inline_reply: true
bot:
  messages:
    unknown: "try /help"
`)

	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}

	if cfg.Log.Level != "debug" || cfg.Log.Format != "text" {
		t.Errorf("Log = %+v, want debug/text", cfg.Log)
	}
	if cfg.HTTP.Addr != "127.0.0.1:9090" {
		t.Errorf("HTTP.Addr = %q", cfg.HTTP.Addr)
	}
	if cfg.HTTP.ShutdownTimeout != 10*time.Second {
		t.Errorf("HTTP.ShutdownTimeout = %v, want 10s", cfg.HTTP.ShutdownTimeout)
	}
	if cfg.Panel.ViewTTL != 2*time.Hour {
		t.Errorf("Panel.ViewTTL = %v, want 2h", cfg.Panel.ViewTTL)
	}
	if !cfg.Webhook.InlineReply {
		t.Error("Webhook.InlineReply should be true")
	}
	if cfg.Bot.Messages.Unknown != "try /help" {
		t.Errorf("Bot.Messages.Unknown = %q", cfg.Bot.Messages.Unknown)
	}
	if cfg.Bot.Messages.Start != config.DefaultBotMessages.Start {
		t.Error("unset messages should keep their defaults")
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("BOT_HTTP_ADDR", ":7070")
	t.Setenv("BOT_LOG_LEVEL", "warn")

	cfg, err := config.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if cfg.HTTP.Addr != ":7070" {
		t.Errorf("HTTP.Addr = %q, want :7070", cfg.HTTP.Addr)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "unknown log level", body: "log:\n  level: verbose\n"},
		{name: "relative webhook path", body: "webhook:\n  path: webhook\n"},
		{name: "pending message without prompt verb", body: "bot:\n  messages:\n    generate_pending: \"working\"\n"},
		{name: "pending message with integer verb", body: "bot:\n  messages:\n    generate_pending: \"working on %d\"\n"},
		{name: "pending message with two prompts", body: "bot:\n  messages:\n    generate_pending: \"%s and %s\"\n"},
		{name: "view ttl too short", body: "panel:\n  view_ttl: 5s\n"},
		{name: "no room for views", body: "panel:\n  max_views: 0\n"},
		{name: "malformed yaml", body: "log: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.LoadConfig(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("LoadConfig() expected error, got nil")
			}
			if !errors.Is(err, config.ErrConfiguration) {
				t.Errorf("error %v should wrap ErrConfiguration", err)
			}
		})
	}
}
