// Package config provides configuration loading, validation, and management
// for the imagebot service. It handles reading from .env and YAML files,
// BOT_* environment variables, default values, and validation.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// ErrConfiguration wraps every error returned while loading or validating configuration.
var ErrConfiguration = errors.New("configuration error")

// Config defines the application configuration for all components of the service.
type Config struct {
	Log       LogConfig       `mapstructure:"log"`
	HTTP      HTTPConfig      `mapstructure:"http"`
	Panel     PanelConfig     `mapstructure:"panel"`
	Webhook   WebhookConfig   `mapstructure:"webhook"`
	Bot       BotConfig       `mapstructure:"bot"`
	Sentry    SentryConfig    `mapstructure:"sentry"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
}

// LogConfig controls the slog handler and optional file rotation.
type LogConfig struct {
	Level      string `mapstructure:"level"        validate:"required,oneof=debug info warn error"`
	Format     string `mapstructure:"format"       validate:"required,oneof=json text"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"  validate:"min=1"`
	MaxBackups int    `mapstructure:"max_backups"  validate:"min=0"`
	MaxAgeDays int    `mapstructure:"max_age_days" validate:"min=0"`
}

// HTTPConfig holds the listener settings for the panel and webhook server.
type HTTPConfig struct {
	Addr            string        `mapstructure:"addr"             validate:"required"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"     validate:"min=1s"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"    validate:"min=1s"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"min=1s,max=1m"`
}

// PanelConfig controls the lifetime of mounted panel views.
type PanelConfig struct {
	ViewTTL  time.Duration `mapstructure:"view_ttl"  validate:"min=1m"`
	MaxViews int           `mapstructure:"max_views" validate:"min=1"`
}

// WebhookConfig controls the Telegram webhook responder.
type WebhookConfig struct {
	Path         string `mapstructure:"path"           validate:"required,startswith=/"`
	InlineReply  bool   `mapstructure:"inline_reply"`
	MaxBodyBytes int64  `mapstructure:"max_body_bytes" validate:"min=1024"`
}

// BotConfig groups the texts the webhook responder replies with.
type BotConfig struct {
	Messages BotMessages `mapstructure:"messages"`
}

// BotMessages holds reply texts. GeneratePending must contain one %s for the prompt.
type BotMessages struct {
	Start                 string `mapstructure:"start"                   validate:"required"`
	Help                  string `mapstructure:"help"                    validate:"required"`
	GeneratePending       string `mapstructure:"generate_pending"        validate:"required,prompt_format"`
	GenerateMissingPrompt string `mapstructure:"generate_missing_prompt" validate:"required"`
	Unknown               string `mapstructure:"unknown"                 validate:"required"`
}

// SentryConfig enables error tracking when DSN is set.
type SentryConfig struct {
	DSN         string `mapstructure:"dsn"         validate:"omitempty,url"`
	Environment string `mapstructure:"environment"`
	Release     string `mapstructure:"release"`
}

// SchedulerConfig maps task names to their schedules.
type SchedulerConfig struct {
	Tasks map[string]TaskConfig `mapstructure:"tasks" validate:"dive"`
}

// TaskConfig describes a single scheduled task. Schedule is a cron expression
// with an optional leading seconds field.
type TaskConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule" validate:"required_if=Enabled true"`
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.RegisterValidation("prompt_format", validatePromptFormat); err != nil {
		return fmt.Errorf("failed to register validators: %w", err)
	}
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
