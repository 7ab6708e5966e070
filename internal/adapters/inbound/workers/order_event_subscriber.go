package workers

import (
	"context"
	"log"

	"cloud.google.com/go/pubsub/v2"
	"github.com/bazaarlabs/marketplace/internal/domain"
	"github.com/bazaarlabs/marketplace/internal/usecases"
)

// OrderEventSubscriber consumes order events from Pub/Sub and records each one
// exactly once through the dedup guard.
type OrderEventSubscriber struct {
	Logger           *log.Logger               `resolve:""`
	Client           *pubsub.Client            `resolve:""`
	RecordOrderEvent usecases.RecordOrderEvent `resolve:""`
	SubscriptionID   string                    `config:"PUBSUB_SUBSCRIPTION_ID"`
}

// Run starts the subscriber worker. Receive blocks until the context ends.
func (s OrderEventSubscriber) Run(ctx context.Context) error {
	s.Logger.Println("OrderEventSubscriber: running...")

	err := s.Client.Subscriber(s.SubscriptionID).Receive(ctx, s.handle)
	if err != nil {
		return err
	}

	s.Logger.Println("OrderEventSubscriber: stopping...")
	return nil
}

// handle processes one delivery. Duplicates are acked without effect by the
// use case; only a failed recording nacks for redelivery.
func (s OrderEventSubscriber) handle(ctx context.Context, msg *pubsub.Message) {
	eventID := msg.Attributes["event_id"]
	if eventID == "" {
		// Messages produced outside the outbox carry no event_id attribute;
		// the broker message ID still gives a stable dedup key per publish.
		eventID = msg.ID
	}
	eventType := domain.EventType(msg.Attributes["event_type"])

	if err := s.RecordOrderEvent.Execute(ctx, eventID, eventType, msg.Data); err != nil {
		s.Logger.Printf("OrderEventSubscriber: recording event %s failed: %v", eventID, err)
		msg.Nack()
		return
	}

	msg.Ack()
}
