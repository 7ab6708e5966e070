package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the fulfillment status of an order.
type OrderStatus string

const (
	// OrderStatus_PLACED is the initial status of a new order.
	OrderStatus_PLACED OrderStatus = "PLACED"
	// OrderStatus_PAID indicates the order has been paid for.
	OrderStatus_PAID OrderStatus = "PAID"
	// OrderStatus_SHIPPED indicates the order has been handed to a carrier.
	OrderStatus_SHIPPED OrderStatus = "SHIPPED"
	// OrderStatus_CANCELLED indicates the order was cancelled before shipment.
	OrderStatus_CANCELLED OrderStatus = "CANCELLED"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatus_PLACED: {OrderStatus_PAID, OrderStatus_CANCELLED},
	OrderStatus_PAID:   {OrderStatus_SHIPPED, OrderStatus_CANCELLED},
}

// Order is the minimal producing aggregate of the event pipeline. Every state
// change appends an outbox event in the same transaction.
type Order struct {
	ID         uuid.UUID
	BuyerID    uuid.UUID
	SellerID   uuid.UUID
	TotalCents int64
	Status     OrderStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate checks the order invariants at creation time.
func (o Order) Validate() error {
	if o.BuyerID == uuid.Nil {
		return NewValidationErr("buyer_id is required")
	}
	if o.SellerID == uuid.Nil {
		return NewValidationErr("seller_id is required")
	}
	if o.TotalCents <= 0 {
		return NewValidationErr("total_cents must be positive")
	}
	return nil
}

// TransitionTo moves the order to the next status if the transition is allowed.
func (o *Order) TransitionTo(next OrderStatus, now time.Time) error {
	for _, allowed := range orderTransitions[o.Status] {
		if next == allowed {
			o.Status = next
			o.UpdatedAt = now
			return nil
		}
	}
	return NewValidationErr(fmt.Sprintf("cannot transition order from %s to %s", o.Status, next))
}

// OrderRepository defines the interface for managing orders.
type OrderRepository interface {
	// CreateOrder inserts a new order.
	CreateOrder(ctx context.Context, order Order) error
	// GetOrder loads an order by ID.
	GetOrder(ctx context.Context, orderID uuid.UUID) (Order, error)
	// UpdateOrder persists the mutable state of an order.
	UpdateOrder(ctx context.Context, order Order) error
}
