package notification

import (
	"log/slog"
	"time"
)

// Severity classifies a user-facing notification.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Notifier shows transient messages to the back-office user. Calls are
// fire-and-forget: implementations must not block on delivery.
type Notifier interface {
	ShowError(message, title string, duration time.Duration)
	ShowWarning(message, title string, duration time.Duration)
}

// LogNotifier writes notifications to the logger when no live channel is wired.
type LogNotifier struct {
	Logger *slog.Logger
}

func (n LogNotifier) ShowError(message, title string, duration time.Duration) {
	n.logger().Error("notification", slog.String("title", title), slog.String("message", message), slog.Duration("duration", duration))
}

func (n LogNotifier) ShowWarning(message, title string, duration time.Duration) {
	n.logger().Warn("notification", slog.String("title", title), slog.String("message", message), slog.Duration("duration", duration))
}

func (n LogNotifier) logger() *slog.Logger {
	if n.Logger == nil {
		return slog.Default()
	}
	return n.Logger
}

var _ Notifier = LogNotifier{}
