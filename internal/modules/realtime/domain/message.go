package domain

import "time"

// Message is the envelope pushed to websocket subscribers.
type Message struct {
	ID         string            `json:"id"`
	Topic      string            `json:"topic"`
	Entity     string            `json:"entity"`
	Action     string            `json:"action"`
	ResourceID string            `json:"resourceId,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	Data       any               `json:"data,omitempty"`
	Timestamp  time.Time         `json:"timestamp"`
}

// Toast is the payload of a notification message.
type Toast struct {
	Severity   string `json:"severity"`
	Title      string `json:"title"`
	Message    string `json:"message"`
	DurationMs int64  `json:"durationMs"`
}

// RefreshSignal tells list views of an entity to fetch again.
type RefreshSignal struct {
	Entity      string `json:"entity"`
	Cause       string `json:"cause"`
	ResourceID  string `json:"resourceId,omitempty"`
	SourceTopic string `json:"sourceTopic"`
}
