package panel

// Severity selects how a notification is styled.
type Severity string

const (
	SeverityDefault     Severity = "default"
	SeverityDestructive Severity = "destructive"
)

// Notification is a transient, dismissible message shown after an action.
type Notification struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
}

// IsError reports whether the notification describes a failure.
func (n Notification) IsError() bool {
	return n.Severity == SeverityDestructive
}

var (
	emptyTokenNotification = Notification{
		Title:       "Ошибка",
		Description: "Введите токен бота",
		Severity:    SeverityDestructive,
	}
	connectedNotification = Notification{
		Title:       "Успешно!",
		Description: "Бот подключен и готов к работе",
		Severity:    SeverityDefault,
	}
)
