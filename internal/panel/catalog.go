package panel

import "github.com/go-telegram/bot/models"

// Command describes a bot command shown on the dashboard.
type Command struct {
	models.BotCommand
	Icon string `json:"icon"`
}

// Stat is a single dashboard counter. Values are placeholders.
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Icon  string `json:"icon"`
}

var commands = [...]Command{
	{
		BotCommand: models.BotCommand{Command: "/start", Description: "Приветственное сообщение и инструкции"},
		Icon:       "Sparkles",
	},
	{
		BotCommand: models.BotCommand{Command: "/generate", Description: "Создать изображение из текстового описания"},
		Icon:       "ImagePlus",
	},
	{
		BotCommand: models.BotCommand{Command: "/help", Description: "Показать справку по командам"},
		Icon:       "HelpCircle",
	},
}

var stats = [...]Stat{
	{Label: "Сгенерировано", Value: "0", Icon: "Image"},
	{Label: "Активных пользователей", Value: "0", Icon: "Users"},
	{Label: "Среднее время", Value: "~3с", Icon: "Clock"},
}

// Commands returns the dashboard command list in display order.
func Commands() []Command {
	out := make([]Command, len(commands))
	copy(out, commands[:])
	return out
}

// Stats returns the dashboard stat grid in display order.
func Stats() []Stat {
	out := make([]Stat, len(stats))
	copy(out, stats[:])
	return out
}
