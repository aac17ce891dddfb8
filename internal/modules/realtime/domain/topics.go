package domain

import (
	"strings"

	"trackerMobility/internal/shared/normalization"
)

const (
	SystemEntity       = "system"
	NotificationEntity = "notifications"

	TopicSystemConnected = SystemEntity + ".connected"
	TopicSystemPong      = SystemEntity + ".pong"

	ActionConnected = "connected"
	ActionPong      = "pong"
	ActionUpdated   = "updated"
)

// UpdatedTopic is the refresh topic list views subscribe to, e.g. "orders.updated".
func UpdatedTopic(entity string) string {
	return joinTopic(entity, ActionUpdated)
}

// NotificationTopic returns "notifications.<severity>".
func NotificationTopic(severity string) string {
	return joinTopic(NotificationEntity, severity)
}

// RefreshTopic resolves what a client asked for: full topics ("reports.updated")
// pass through lower-cased, bare entity names or aliases ("customer") become
// that entity's refresh topic.
func RefreshTopic(raw string) string {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" || strings.Contains(raw, ".") {
		return raw
	}
	return UpdatedTopic(normalization.NormalizeEntity(raw))
}

func joinTopic(entity, suffix string) string {
	entity = strings.ToLower(strings.TrimSpace(entity))
	suffix = strings.ToLower(strings.TrimSpace(suffix))
	if entity == "" || suffix == "" {
		return ""
	}
	return entity + "." + suffix
}
