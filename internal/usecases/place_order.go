package usecases

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bazaarlabs/marketplace/internal/domain"
	"github.com/bazaarlabs/marketplace/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// PlaceOrder defines the interface for the PlaceOrder use case.
type PlaceOrder interface {
	Execute(ctx context.Context, buyerID, sellerID uuid.UUID, totalCents int64) (domain.Order, error)
}

// PlaceOrderImpl is the implementation of the PlaceOrder use case.
type PlaceOrderImpl struct {
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
	createUUID   func() uuid.UUID
}

// NewPlaceOrderImpl creates a new instance of PlaceOrderImpl.
func NewPlaceOrderImpl(uow domain.UnitOfWork, timeProvider domain.CurrentTimeProvider) PlaceOrderImpl {
	return PlaceOrderImpl{
		uow:          uow,
		timeProvider: timeProvider,
		createUUID:   uuid.New,
	}
}

// Execute places a new order. The order row and its OrderCreated outbox event are
// committed in the same transaction, so the event cannot be lost if the order
// write succeeds and cannot exist if it fails.
func (po PlaceOrderImpl) Execute(ctx context.Context, buyerID, sellerID uuid.UUID, totalCents int64) (domain.Order, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	now := po.timeProvider.Now()
	order := domain.Order{
		ID:         po.createUUID(),
		BuyerID:    buyerID,
		SellerID:   sellerID,
		TotalCents: totalCents,
		Status:     domain.OrderStatus_PLACED,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := order.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Order{}, err
	}

	payload, err := json.Marshal(domain.OrderCreatedEvent{
		OrderID:    order.ID,
		BuyerID:    order.BuyerID,
		SellerID:   order.SellerID,
		TotalCents: order.TotalCents,
		CreatedAt:  now,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Order{}, fmt.Errorf("failed to marshal order created event: %w", err)
	}

	if err := po.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		if err := uow.Order().CreateOrder(spanCtx, order); err != nil {
			return err
		}
		return uow.Outbox().AppendEvent(spanCtx, domain.NewOutboxEvent(
			domain.AggregateType_Order,
			order.ID,
			domain.EventType_ORDER_CREATED,
			payload,
			now,
		))
	}); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Order{}, err
	}

	return order, nil
}

// InitPlaceOrder initializes the PlaceOrder use case and registers it in the dependency container.
type InitPlaceOrder struct {
	Uow          domain.UnitOfWork          `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the PlaceOrderImpl use case in the dependency container.
func (ipo InitPlaceOrder) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[PlaceOrder](NewPlaceOrderImpl(ipo.Uow, ipo.TimeProvider))
	return ctx, nil
}
