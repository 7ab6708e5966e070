package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EventType is the logical name of a domain event. It resolves the broker topic
// an outbox event is published to.
type EventType string

const (
	// EventType_ORDER_CREATED represents the event when an order is placed.
	EventType_ORDER_CREATED EventType = "OrderCreated"
	// EventType_ORDER_STATUS_CHANGED represents the event when an order changes status.
	EventType_ORDER_STATUS_CHANGED EventType = "OrderStatusChanged"
)

var eventTopics = map[EventType]string{
	EventType_ORDER_CREATED:        "order.created",
	EventType_ORDER_STATUS_CHANGED: "order.status-changed",
}

// TopicForEventType resolves the broker topic for an event type. An unknown type
// returns an error; the dispatcher treats it like any other publish failure.
func TopicForEventType(eventType EventType) (string, error) {
	topic, ok := eventTopics[eventType]
	if !ok {
		return "", fmt.Errorf("no topic mapping for event type %q", eventType)
	}
	return topic, nil
}

// OrderCreatedEvent is the payload published when an order is placed.
type OrderCreatedEvent struct {
	OrderID    uuid.UUID `json:"order_id"`
	BuyerID    uuid.UUID `json:"buyer_id"`
	SellerID   uuid.UUID `json:"seller_id"`
	TotalCents int64     `json:"total_cents"`
	CreatedAt  time.Time `json:"created_at"`
}

// OrderStatusChangedEvent is the payload published when an order changes status.
type OrderStatusChangedEvent struct {
	OrderID    uuid.UUID   `json:"order_id"`
	SellerID   uuid.UUID   `json:"seller_id"`
	FromStatus OrderStatus `json:"from_status"`
	ToStatus   OrderStatus `json:"to_status"`
	ChangedAt  time.Time   `json:"changed_at"`
}

// EventPublisher defines the interface for publishing outbox events to the broker.
type EventPublisher interface {
	PublishEvent(ctx context.Context, event OutboxEvent) error
}

// WebhookNotifier forwards an accepted event to the seller-facing webhook endpoint.
type WebhookNotifier interface {
	Notify(ctx context.Context, eventType EventType, payload []byte) error
}
