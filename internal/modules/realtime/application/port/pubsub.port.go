package port

import (
	"context"

	"trackerMobility/internal/modules/realtime/domain"
)

// Broadcaster delivers messages to websocket subscribers without blocking.
type Broadcaster interface {
	Broadcast(ctx context.Context, msg *domain.Message)
}

// TopicHandler reacts to events consumed from one broker topic.
type TopicHandler interface {
	Topic() string
	Handle(ctx context.Context, msg *domain.Message) error
}

// EventCounter observes delivered notifications and consumed events.
type EventCounter interface {
	IncNotification(kind string)
	IncBrokerEvent(entity string)
}
