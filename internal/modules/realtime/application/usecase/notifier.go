package usecase

import (
	"context"
	"time"

	"trackerMobility/internal/modules/realtime/application/port"
	"trackerMobility/internal/modules/realtime/domain"
	"trackerMobility/internal/shared/notification"
)

// HubNotifier publishes error-handler toasts on the notifications stream.
type HubNotifier struct {
	broadcast *BroadcastUseCase
	counter   port.EventCounter
}

var _ notification.Notifier = (*HubNotifier)(nil)

func NewHubNotifier(broadcast *BroadcastUseCase, counter port.EventCounter) *HubNotifier {
	return &HubNotifier{broadcast: broadcast, counter: counter}
}

func (n *HubNotifier) ShowError(message, title string, duration time.Duration) {
	n.publish(notification.SeverityError, message, title, duration)
}

func (n *HubNotifier) ShowWarning(message, title string, duration time.Duration) {
	n.publish(notification.SeverityWarning, message, title, duration)
}

func (n *HubNotifier) publish(severity notification.Severity, message, title string, duration time.Duration) {
	kind := string(severity)
	n.broadcast.Execute(context.Background(), &domain.Message{
		Topic:  domain.NotificationTopic(kind),
		Entity: domain.NotificationEntity,
		Action: kind,
		Data: domain.Toast{
			Severity:   kind,
			Title:      title,
			Message:    message,
			DurationMs: duration.Milliseconds(),
		},
	})
	if n.counter != nil {
		n.counter.IncNotification(kind)
	}
}
