package events

import (
	"context"
	"fmt"
	"strings"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/catalog-service/internal/catalog/domain"
	"github.com/tair/catalog-service/pkg/logger"
)

// DefaultTopic receives every catalog event
const DefaultTopic = "catalog-events"

// Publisher sends catalog events to Kafka
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewProducerConfig returns the producer settings used by the publisher
func NewProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = 3
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.MaxMessageBytes = 1000000
	return config
}

// NewPublisher connects a sync producer to brokers
func NewPublisher(brokers []string, topic string) (*Publisher, error) {
	producer, err := sarama.NewSyncProducer(brokers, NewProducerConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.Logger.Info().
		Strs("brokers", brokers).
		Str("topic", topic).
		Msg("Kafka publisher initialized")

	return NewPublisherWithProducer(producer, topic), nil
}

// NewPublisherWithProducer wraps an existing producer
func NewPublisherWithProducer(producer sarama.SyncProducer, topic string) *Publisher {
	if topic == "" {
		topic = DefaultTopic
	}
	return &Publisher{producer: producer, topic: topic}
}

// Publish sends event keyed by its entity. Failures are recorded on the span
// and logged; the write that produced the event has already succeeded.
func (p *Publisher) Publish(ctx context.Context, event domain.Event) {
	tracer := otel.Tracer("kafka-publisher")
	ctx, span := tracer.Start(ctx, "kafka.publish "+event.Type,
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.destination", p.topic),
			attribute.String("messaging.destination_kind", "topic"),
			attribute.String("event.type", event.Type),
			attribute.Int64("entity.id", int64(event.EntityID)),
		),
	)
	defer span.End()

	eventID := uuid.NewString()
	span.SetAttributes(attribute.String("event.id", eventID))

	payload, err := json.Marshal(event)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to marshal event")
		logger.Error(ctx).Err(err).Str("event_type", event.Type).Msg("Failed to encode event")
		return
	}

	// Inject trace context into Kafka headers
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	headers := []sarama.RecordHeader{
		{Key: []byte("event_type"), Value: []byte(event.Type)},
		{Key: []byte("event_id"), Value: []byte(eventID)},
	}
	for key, value := range carrier {
		headers = append(headers, sarama.RecordHeader{Key: []byte(key), Value: []byte(value)})
	}

	msg := &sarama.ProducerMessage{
		Topic:   p.topic,
		Key:     sarama.StringEncoder(messageKey(event)),
		Value:   sarama.ByteEncoder(payload),
		Headers: headers,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to send message")
		logger.Error(ctx).
			Err(err).
			Str("topic", p.topic).
			Str("event_type", event.Type).
			Uint("entity_id", event.EntityID).
			Msg("Failed to publish event")
		return
	}

	span.SetAttributes(
		attribute.Int("messaging.kafka.partition", int(partition)),
		attribute.Int64("messaging.kafka.offset", offset),
	)
	span.SetStatus(codes.Ok, "Event published successfully")

	logger.Info(ctx).
		Str("event_id", eventID).
		Str("event_type", event.Type).
		Str("topic", p.topic).
		Int32("partition", partition).
		Int64("offset", offset).
		Uint("entity_id", event.EntityID).
		Msg("Catalog event published")
}

// Close closes the Kafka producer
func (p *Publisher) Close() error {
	if err := p.producer.Close(); err != nil {
		return fmt.Errorf("failed to close Kafka producer: %w", err)
	}
	logger.Logger.Info().Msg("Kafka publisher closed")
	return nil
}

// messageKey keeps events for one entity on one partition, e.g. product_42
func messageKey(event domain.Event) string {
	kind := event.Type
	if parts := strings.Split(event.Type, "."); len(parts) == 3 {
		kind = parts[1]
	}
	return fmt.Sprintf("%s_%d", kind, event.EntityID)
}

// NopPublisher drops every event. It is used when no brokers are configured.
type NopPublisher struct{}

// Publish implements domain.EventPublisher
func (NopPublisher) Publish(ctx context.Context, event domain.Event) {
	logger.Debug(ctx).Str("event_type", event.Type).Uint("entity_id", event.EntityID).Msg("Event publishing disabled")
}

// Close implements io.Closer
func (NopPublisher) Close() error { return nil }
