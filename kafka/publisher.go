package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/storefront/pkg/logger"
)

// Publisher wraps a Kafka sync producer for storefront activity events
type Publisher struct {
	producer sarama.SyncProducer
	brokers  []string
}

// NewPublisher creates a new Kafka publisher
func NewPublisher(brokers []string) (*Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = 3
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Compression = sarama.CompressionSnappy

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.Logger.Info().
		Strs("brokers", brokers).
		Msg("Kafka publisher initialized")

	return &Publisher{producer: producer, brokers: brokers}, nil
}

// PublishProductViewed publishes a product view event
func (p *Publisher) PublishProductViewed(ctx context.Context, event ProductViewedEvent) error {
	event.EventType = EventTypeProductViewed
	stampEvent(&event.EventID, &event.Timestamp)
	return p.publish(ctx, TopicProductViewed, event.EventType, event.SessionID, event,
		attribute.String("product.id", event.ProductID),
	)
}

// PublishCartItemAdded publishes an add-to-cart event
func (p *Publisher) PublishCartItemAdded(ctx context.Context, event CartItemAddedEvent) error {
	event.EventType = EventTypeCartItemAdded
	stampEvent(&event.EventID, &event.Timestamp)
	return p.publish(ctx, TopicCartItemAdded, event.EventType, event.SessionID, event,
		attribute.String("product.id", event.ProductID),
		attribute.Int("cart.quantity", event.Quantity),
	)
}

// PublishFavoriteToggled publishes a favorite toggle event
func (p *Publisher) PublishFavoriteToggled(ctx context.Context, event FavoriteToggledEvent) error {
	event.EventType = EventTypeFavoriteToggled
	stampEvent(&event.EventID, &event.Timestamp)
	return p.publish(ctx, TopicFavoriteToggled, event.EventType, event.SessionID, event,
		attribute.String("product.id", event.ProductID),
		attribute.Bool("favorite.on", event.Favorited),
	)
}

func stampEvent(id *string, ts *time.Time) {
	if *id == "" {
		*id = fmt.Sprintf("evt_%d", time.Now().UnixNano())
	}
	*ts = time.Now()
}

// publish marshals the event, injects trace context into record headers and
// sends synchronously. Partitioning key is the session id so one session's
// activity stays ordered.
func (p *Publisher) publish(ctx context.Context, topic, eventType, key string, event any, attrs ...attribute.KeyValue) error {
	tracer := otel.Tracer("kafka-publisher")
	ctx, span := tracer.Start(ctx, "kafka.publish."+eventType,
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(append([]attribute.KeyValue{
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.destination", topic),
			attribute.String("event.type", eventType),
		}, attrs...)...),
	)
	defer span.End()

	payload, err := json.Marshal(event)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to marshal event")
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	headers := []sarama.RecordHeader{
		{Key: []byte("event_type"), Value: []byte(eventType)},
	}
	for k, v := range carrier {
		headers = append(headers, sarama.RecordHeader{
			Key:   []byte(k),
			Value: []byte(v),
		})
	}

	msg := &sarama.ProducerMessage{
		Topic:   topic,
		Key:     sarama.StringEncoder(key),
		Value:   sarama.ByteEncoder(payload),
		Headers: headers,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to send message")
		return fmt.Errorf("failed to send message to %s: %w", topic, err)
	}

	span.SetAttributes(
		attribute.Int64("messaging.kafka.partition", int64(partition)),
		attribute.Int64("messaging.kafka.offset", offset),
	)

	logger.Debug(ctx).
		Str("topic", topic).
		Str("event_type", eventType).
		Int32("partition", partition).
		Int64("offset", offset).
		Msg("Event published")

	return nil
}

// Close shuts the underlying producer down
func (p *Publisher) Close() error {
	return p.producer.Close()
}
