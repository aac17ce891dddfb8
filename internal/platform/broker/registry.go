package broker

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"trackerMobility/internal/modules/realtime/domain"
)

// Dispatcher routes a decoded event by the topic it was read from.
type Dispatcher interface {
	Dispatch(ctx context.Context, sourceTopic string, msg *domain.Message) error
}

// Run consumes every topic until ctx is cancelled. With no brokers
// configured it returns immediately.
func Run(ctx context.Context, dispatcher Dispatcher, brokers []string, groupID string, topics []string) error {
	if len(brokers) == 0 || len(topics) == 0 {
		slog.Info("kafka consumers disabled", slog.Int("brokers", len(brokers)), slog.Int("topics", len(topics)))
		return nil
	}
	group, groupCtx := errgroup.WithContext(ctx)
	for _, topic := range topics {
		topic := topic
		consumer := NewKafkaConsumer(brokers, groupID, topic)
		group.Go(func() error {
			slog.Info("kafka consumer started", slog.String("topic", topic), slog.String("group", groupID))
			return consumer.Consume(groupCtx, dispatcher.Dispatch)
		})
	}
	return group.Wait()
}
