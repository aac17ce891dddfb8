package broker

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/segmentio/kafka-go"

	"trackerMobility/internal/modules/realtime/domain"
	"trackerMobility/internal/shared/normalization"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const readRetryDelay = time.Second

// MessageReader is the part of *kafka.Reader the consumer needs.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

type KafkaConsumer struct {
	topic  string
	reader MessageReader
}

func NewKafkaConsumer(brokers []string, groupID string, topic string) *KafkaConsumer {
	return &KafkaConsumer{
		topic: topic,
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: brokers,
			GroupID: groupID,
			Topic:   topic,
		}),
	}
}

// Consume reads until ctx is cancelled. Handler errors are logged and the
// message is skipped.
func (c *KafkaConsumer) Consume(ctx context.Context, handler func(context.Context, string, *domain.Message) error) error {
	defer c.reader.Close()
	for {
		m, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return nil
			}
			slog.Warn("kafka read error", slog.String("topic", c.topic), slog.Any("error", err))
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(readRetryDelay):
			}
			continue
		}
		msg := decodeMessage(m)
		slog.Debug("kafka message consumed",
			slog.String("topic", m.Topic),
			slog.Int("partition", m.Partition),
			slog.Int64("offset", m.Offset),
			slog.String("entity", msg.Entity),
			slog.String("action", msg.Action),
			slog.String("resourceId", msg.ResourceID),
		)
		if err := handler(ctx, m.Topic, msg); err != nil {
			slog.Warn("kafka handler error", slog.String("topic", m.Topic), slog.Any("error", err))
		}
	}
}

// decodeMessage accepts {"entity","action","resourceId"|"id","metadata","data"}
// events. Payloads that are not JSON objects keep their raw text as data and
// take entity and action from a "<prefix>.<entity>.<action>" topic name.
func decodeMessage(m kafka.Message) *domain.Message {
	msg := &domain.Message{Timestamp: m.Time.UTC()}
	if m.Time.IsZero() {
		msg.Timestamp = time.Now().UTC()
	}
	segments := topicSegments(m.Topic)

	var event map[string]any
	if err := json.Unmarshal(m.Value, &event); err != nil || event == nil {
		msg.Data = string(m.Value)
		if len(segments) >= 3 {
			msg.Entity = normalization.NormalizeEntity(segments[len(segments)-2])
			msg.Action = segments[len(segments)-1]
		} else {
			msg.Entity = normalization.NormalizeEntity(lastSegment(segments))
			msg.Action = unknownAction
		}
		return msg
	}

	msg.Entity = normalization.NormalizeEntity(normalization.AsString(event["entity"]))
	if msg.Entity == "" {
		msg.Entity = normalization.NormalizeEntity(lastSegment(segments))
	}
	msg.Action = strings.ToLower(normalization.AsString(event["action"]))
	if msg.Action == "" {
		msg.Action = unknownAction
	}
	msg.ResourceID = normalization.AsString(event["resourceId"])
	if msg.ResourceID == "" {
		msg.ResourceID = normalization.AsString(event["id"])
	}
	if meta, ok := event["metadata"].(map[string]any); ok && len(meta) > 0 {
		msg.Metadata = make(map[string]string, len(meta))
		for key, value := range meta {
			msg.Metadata[key] = normalization.AsString(value)
		}
	}
	msg.Data = event["data"]
	return msg
}

const unknownAction = "unknown"

func topicSegments(topic string) []string {
	out := make([]string, 0, 3)
	for _, part := range strings.Split(topic, ".") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func lastSegment(segments []string) string {
	if len(segments) == 0 {
		return ""
	}
	return segments[len(segments)-1]
}
