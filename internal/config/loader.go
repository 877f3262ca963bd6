package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoadConfig loads and validates configuration from, in order of precedence:
//  1. BOT_* environment variables (a .env file in the working directory is loaded first if present)
//  2. the YAML file at configPath (optional)
//  3. default values
func LoadConfig(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: failed to load .env file: %v", ErrConfiguration, err)
	}

	v := viper.New()
	setDefaults(v)

	if err := readConfigFile(v, configPath); err != nil {
		return nil, fmt.Errorf("%w: failed to load config file: %v", ErrConfiguration, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %v", ErrConfiguration, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	return cfg, nil
}

// readConfigFile wires the env prefix and reads configPath. A missing file is not an error.
func readConfigFile(v *viper.Viper, configPath string) error {
	v.SetEnvPrefix("BOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath == "" {
		return nil
	}
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// setDefaults sets default values for every configuration key so that
// environment overrides are picked up by Unmarshal.
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", DefaultLogMaxSizeMB)
	v.SetDefault("log.max_backups", DefaultLogMaxBackups)
	v.SetDefault("log.max_age_days", DefaultLogMaxAgeDays)

	// HTTP defaults
	v.SetDefault("http.addr", DefaultHTTPAddr)
	v.SetDefault("http.read_timeout", DefaultHTTPReadTimeout)
	v.SetDefault("http.write_timeout", DefaultHTTPWriteTimeout)
	v.SetDefault("http.shutdown_timeout", DefaultHTTPShutdownTimeout)

	// Panel defaults
	v.SetDefault("panel.view_ttl", DefaultPanelViewTTL)
	v.SetDefault("panel.max_views", DefaultPanelMaxViews)

	// Webhook defaults
	v.SetDefault("webhook.path", DefaultWebhookPath)
	v.SetDefault("webhook.inline_reply", DefaultWebhookInlineReply)
	v.SetDefault("webhook.max_body_bytes", DefaultWebhookMaxBodyBytes)

	// Bot messages defaults
	v.SetDefault("bot.messages.start", DefaultBotMessages.Start)
	v.SetDefault("bot.messages.help", DefaultBotMessages.Help)
	v.SetDefault("bot.messages.generate_pending", DefaultBotMessages.GeneratePending)
	v.SetDefault("bot.messages.generate_missing_prompt", DefaultBotMessages.GenerateMissingPrompt)
	v.SetDefault("bot.messages.unknown", DefaultBotMessages.Unknown)

	// Sentry defaults
	v.SetDefault("sentry.dsn", "")
	v.SetDefault("sentry.environment", "production")
	v.SetDefault("sentry.release", "")

	// Scheduler defaults
	tasks := make(map[string]any, len(DefaultSchedulerTasks))
	for name, task := range DefaultSchedulerTasks {
		tasks[name] = map[string]any{"enabled": task.Enabled, "schedule": task.Schedule}
	}
	v.SetDefault("scheduler.tasks", tasks)
}
