package pubsub

import (
	"context"
	"time"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"github.com/bazaarlabs/marketplace/internal/domain"
	"github.com/bazaarlabs/marketplace/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// PubSubEventPublisher implements domain.EventPublisher using Google Cloud Pub/Sub.
type PubSubEventPublisher struct {
	Client         *pubsubV2.Client
	publishTimeout time.Duration
}

// NewPubSubEventPublisher creates a new instance of PubSubEventPublisher.
func NewPubSubEventPublisher(client *pubsubV2.Client, publishTimeout time.Duration) PubSubEventPublisher {
	return PubSubEventPublisher{
		Client:         client,
		publishTimeout: publishTimeout,
	}
}

// PublishEvent publishes the given event to the topic its event type maps to.
// The broker ack is awaited with a bounded timeout so a stalled broker turns
// into a recorded failure instead of blocking the dispatcher tick.
func (p PubSubEventPublisher) PublishEvent(ctx context.Context, event domain.OutboxEvent) error {
	topic, err := domain.TopicForEventType(event.EventType)
	if err != nil {
		return err
	}

	spanCtx, span := telemetry.Start(ctx,
		trace.WithAttributes(
			attribute.String("event_id", event.ID.String()),
			attribute.String("event_type", string(event.EventType)),
			attribute.String("topic", topic),
		),
	)
	defer span.End()

	result := p.Client.Publisher(topic).Publish(spanCtx, &pubsubV2.Message{
		Data: event.Payload,
		Attributes: map[string]string{
			"event_id":     event.ID.String(),
			"event_type":   string(event.EventType),
			"aggregate_id": event.AggregateID.String(),
		},
	})

	ackCtx, cancel := context.WithTimeout(spanCtx, p.publishTimeout)
	defer cancel()

	_, err = result.Get(ackCtx)
	telemetry.RecordErrorAndStatus(span, err)
	return err
}

// InitPublisher initializes the EventPublisher implementation.
type InitPublisher struct {
	Client         *pubsubV2.Client `resolve:""`
	PublishTimeout time.Duration    `config:"OUTBOX_PUBLISH_TIMEOUT" default:"5s"`
}

// Initialize registers the PubSubEventPublisher as the implementation of EventPublisher.
func (i *InitPublisher) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.EventPublisher](NewPubSubEventPublisher(i.Client, i.PublishTimeout))
	return ctx, nil
}
