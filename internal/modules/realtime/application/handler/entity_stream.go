package handler

import (
	"context"
	"log/slog"
	"strings"

	"trackerMobility/internal/modules/realtime/application/port"
	"trackerMobility/internal/modules/realtime/application/usecase"
	"trackerMobility/internal/modules/realtime/domain"
	"trackerMobility/internal/shared/normalization"
)

// EntityStreamHandler turns upstream change events on one broker topic into
// "<entity>.updated" refresh signals. Actions outside allowedActions are
// dropped.
type EntityStreamHandler struct {
	entity         string
	kafkaTopic     string
	allowedActions map[string]struct{}
	broadcastUC    *usecase.BroadcastUseCase
	counter        port.EventCounter
}

func NewEntityStreamHandler(entity, kafkaTopic string, allowedActions []string, broadcastUC *usecase.BroadcastUseCase, counter port.EventCounter) *EntityStreamHandler {
	actionSet := make(map[string]struct{}, len(allowedActions))
	for _, a := range allowedActions {
		if v := strings.TrimSpace(strings.ToLower(a)); v != "" {
			actionSet[v] = struct{}{}
		}
	}
	return &EntityStreamHandler{
		entity:         normalization.NormalizeEntity(entity),
		kafkaTopic:     kafkaTopic,
		allowedActions: actionSet,
		broadcastUC:    broadcastUC,
		counter:        counter,
	}
}

func (h *EntityStreamHandler) Topic() string { return h.kafkaTopic }

func (h *EntityStreamHandler) Handle(ctx context.Context, msg *domain.Message) error {
	if msg == nil {
		return nil
	}
	action := strings.ToLower(strings.TrimSpace(msg.Action))
	if len(h.allowedActions) > 0 {
		if _, ok := h.allowedActions[action]; !ok {
			slog.Debug("entity-stream action ignored", slog.String("entity", h.entity), slog.String("action", action))
			return nil
		}
	}
	entity := h.entity
	if entity == "" {
		entity = normalization.NormalizeEntity(msg.Entity)
	}
	topic := domain.UpdatedTopic(entity)
	if topic == "" {
		return nil
	}

	if h.counter != nil {
		h.counter.IncBrokerEvent(entity)
	}
	slog.Info("entity-stream refresh", slog.String("entity", entity), slog.String("action", action), slog.String("resourceId", msg.ResourceID))
	h.broadcastUC.Execute(ctx, &domain.Message{
		Topic:      topic,
		Entity:     entity,
		Action:     domain.ActionUpdated,
		ResourceID: msg.ResourceID,
		Metadata:   msg.Metadata,
		Data: domain.RefreshSignal{
			Entity:      entity,
			Cause:       action,
			ResourceID:  msg.ResourceID,
			SourceTopic: h.kafkaTopic,
		},
	})
	return nil
}

var _ port.TopicHandler = (*EntityStreamHandler)(nil)
