package messaging

import (
	"context"
	"log/slog"

	"github.com/leaselab/screening-service/internal/domain/event"
)

// LogEventPublisher records events to the structured log instead of a
// broker. Used in local development when no Kafka brokers are configured.
type LogEventPublisher struct {
	logger *slog.Logger
}

// NewLogEventPublisher creates a log-only publisher.
func NewLogEventPublisher(logger *slog.Logger) *LogEventPublisher {
	return &LogEventPublisher{logger: logger}
}

// Publish logs each event and always succeeds.
func (p *LogEventPublisher) Publish(_ context.Context, events ...event.DomainEvent) error {
	for _, ev := range events {
		p.logger.Info("event published (log only)",
			"event_type", ev.EventType(),
			"aggregate_id", ev.AggregateID(),
			"aggregate_type", ev.AggregateType(),
		)
	}
	return nil
}
