package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/leaselab/screening-service/internal/domain/event"
	"github.com/leaselab/screening-service/pkg/kafka"
)

// KafkaEventPublisher publishes domain events to a Kafka topic.
// It implements port.EventPublisher. Messages are keyed by aggregate ID so
// one aggregate's events land in order on the same partition.
type KafkaEventPublisher struct {
	producer *kafka.Producer
	topic    string
	logger   *slog.Logger
}

// NewKafkaEventPublisher creates a publisher writing to the given topic.
func NewKafkaEventPublisher(producer *kafka.Producer, topic string, logger *slog.Logger) *KafkaEventPublisher {
	return &KafkaEventPublisher{producer: producer, topic: topic, logger: logger}
}

// Publish serialises and sends the events. Events are sent in one batch;
// a failure fails the whole batch.
func (p *KafkaEventPublisher) Publish(ctx context.Context, events ...event.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	messages := make([]kafka.Message, 0, len(events))
	for _, ev := range events {
		payload, err := json.Marshal(ev)
		if err != nil {
			return fmt.Errorf("marshal event %s: %w", ev.EventType(), err)
		}
		messages = append(messages, kafka.Message{
			Key:   []byte(ev.AggregateID()),
			Value: payload,
			Headers: map[string]string{
				"event_type":     ev.EventType(),
				"aggregate_type": ev.AggregateType(),
			},
		})
	}

	if err := p.producer.Publish(ctx, p.topic, messages...); err != nil {
		return err
	}

	for _, ev := range events {
		p.logger.Info("event published",
			"topic", p.topic,
			"event_type", ev.EventType(),
			"aggregate_id", ev.AggregateID(),
		)
	}
	return nil
}
