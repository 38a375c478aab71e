package producer

import (
	"context"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/grehub24-dot/campusflow/internal/messaging/kafka"
)

// publishEvent writes one outbox row to its topic. The aggregate id keys the
// message so events for the same student or payroll run stay ordered within a
// partition.
func publishEvent(ctx context.Context, writer *kafkago.Writer, event kafka.OutboxEvent) error {
	return writer.WriteMessages(ctx, kafkago.Message{
		Topic: event.Topic,
		Key:   []byte(event.AggregateID),
		Value: event.Payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
			{Key: "aggregate_type", Value: []byte(event.AggregateType)},
		},
	})
}
