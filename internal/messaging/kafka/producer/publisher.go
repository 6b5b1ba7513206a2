package producer

import (
	"context"
	"strings"

	"github.com/SankalpGoel/HRMS-Lite/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
)

// NewWriter builds a shared writer; the topic is set per message from the
// outbox row.
func NewWriter(brokers string) *kafkago.Writer {
	return &kafkago.Writer{
		Addr:     kafkago.TCP(strings.Split(brokers, ",")...),
		Balancer: &kafkago.LeastBytes{},
	}
}

func publishEvent(ctx context.Context, writer *kafkago.Writer, event kafka.OutboxEvent) error {
	msg := kafkago.Message{
		Topic: event.Topic,
		Key:   []byte(event.AggregateID),
		Value: event.Payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
			{Key: "aggregate_type", Value: []byte(event.AggregateType)},
			{Key: "request_id", Value: []byte(event.RequestID)},
		},
	}

	return writer.WriteMessages(ctx, msg)
}
