package infrastructure

import (
	"context"
	"errors"

	"trackerMobility/internal/modules/realtime/application/port"
	"trackerMobility/internal/modules/realtime/domain"
)

// HandlerRegistry routes consumed broker messages by source topic. Several
// handlers may share one topic.
type HandlerRegistry struct {
	handlers map[string][]port.TopicHandler
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{handlers: make(map[string][]port.TopicHandler)}
}

func (r *HandlerRegistry) Register(h port.TopicHandler) {
	r.handlers[h.Topic()] = append(r.handlers[h.Topic()], h)
}

func (r *HandlerRegistry) Topics() []string {
	topics := make([]string, 0, len(r.handlers))
	for topic := range r.handlers {
		topics = append(topics, topic)
	}
	return topics
}

// Dispatch runs every handler registered for sourceTopic and joins their errors.
func (r *HandlerRegistry) Dispatch(ctx context.Context, sourceTopic string, msg *domain.Message) error {
	var errs []error
	for _, handler := range r.handlers[sourceTopic] {
		if err := handler.Handle(ctx, msg); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
