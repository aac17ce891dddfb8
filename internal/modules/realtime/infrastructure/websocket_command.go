package infrastructure

import (
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"trackerMobility/internal/modules/realtime/domain"
)

// Command is a client-to-server frame, e.g. {"action":"subscribe","topic":"orders"}.
type Command struct {
	Action string `json:"action"`
	Topic  string `json:"topic,omitempty"`
}

// CommandProcessor applies client frames to the hub. Unknown actions are
// ignored.
type CommandProcessor struct {
	hub *Hub
}

func NewCommandProcessor(hub *Hub) *CommandProcessor {
	return &CommandProcessor{hub: hub}
}

func (p *CommandProcessor) Process(client *Client, cmd Command) {
	if client == nil {
		return
	}
	action := strings.ToLower(strings.TrimSpace(cmd.Action))
	switch action {
	case "subscribe", "unsubscribe":
		topic := domain.RefreshTopic(cmd.Topic)
		if topic == "" {
			return
		}
		if action == "subscribe" {
			p.hub.join(client, topic)
		} else {
			p.hub.leave(client, topic)
		}
		slog.Debug("ws "+action, slog.String("sessionId", client.sessionID), slog.String("topic", topic))
	case "ping":
		client.SendDomainMessage(&domain.Message{
			ID:        uuid.NewString(),
			Topic:     domain.TopicSystemPong,
			Entity:    domain.SystemEntity,
			Action:    domain.ActionPong,
			Timestamp: time.Now().UTC(),
		})
	default:
		slog.Debug("ws command ignored", slog.String("sessionId", client.sessionID), slog.String("action", action))
	}
}
