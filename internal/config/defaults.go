package config

import "time"

// Default values for configuration
const (
	// Log defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "json"
	DefaultLogMaxSizeMB  = 50
	DefaultLogMaxBackups = 3
	DefaultLogMaxAgeDays = 30

	// HTTP defaults
	DefaultHTTPAddr            = ":8080"
	DefaultHTTPReadTimeout     = 15 * time.Second
	DefaultHTTPWriteTimeout    = 15 * time.Second
	DefaultHTTPShutdownTimeout = 5 * time.Second

	// Panel defaults
	DefaultPanelViewTTL  = 30 * time.Minute
	DefaultPanelMaxViews = 10000

	// Webhook defaults
	DefaultWebhookPath         = "/webhook/telegram"
	DefaultWebhookInlineReply  = false
	DefaultWebhookMaxBodyBytes = 1 << 20

	// Scheduler defaults
	DefaultViewEvictionTask     = "view_eviction"
	DefaultViewEvictionSchedule = "0 */5 * * * *" // every five minutes
)

// Default bot messages
var DefaultBotMessages = BotMessages{
	Start: "🎨 Привет! Я бот для генерации изображений.\n\n" +
		"Используйте команды:\n" +
		"/generate <описание> - создать изображение\n" +
		"/help - показать справку",
	Help: "📖 Справка по командам:\n\n" +
		"/start - начать работу\n" +
		"/generate <описание> - создать изображение из текста\n\n" +
		"Пример:\n" +
		"/generate sunset over mountains",
	GeneratePending:       "⏳ Генерирую изображение: \"%s\"...\nЭто займет несколько секунд.",
	GenerateMissingPrompt: "❌ Укажите описание изображения после команды /generate",
	Unknown:               "Используйте /help для списка команд",
}

// Default scheduler tasks
var DefaultSchedulerTasks = map[string]TaskConfig{
	DefaultViewEvictionTask: {Enabled: true, Schedule: DefaultViewEvictionSchedule},
}
