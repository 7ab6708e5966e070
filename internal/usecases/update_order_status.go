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

// UpdateOrderStatus defines the interface for the UpdateOrderStatus use case.
type UpdateOrderStatus interface {
	Execute(ctx context.Context, orderID uuid.UUID, next domain.OrderStatus) (domain.Order, error)
}

// UpdateOrderStatusImpl is the implementation of the UpdateOrderStatus use case.
type UpdateOrderStatusImpl struct {
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
}

// NewUpdateOrderStatusImpl creates a new instance of UpdateOrderStatusImpl.
func NewUpdateOrderStatusImpl(uow domain.UnitOfWork, timeProvider domain.CurrentTimeProvider) UpdateOrderStatusImpl {
	return UpdateOrderStatusImpl{
		uow:          uow,
		timeProvider: timeProvider,
	}
}

// Execute transitions an order and stages the OrderStatusChanged event in the
// same transaction as the status update.
func (uo UpdateOrderStatusImpl) Execute(ctx context.Context, orderID uuid.UUID, next domain.OrderStatus) (domain.Order, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	now := uo.timeProvider.Now()

	var order domain.Order
	if err := uo.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		var err error
		order, err = uow.Order().GetOrder(spanCtx, orderID)
		if err != nil {
			return err
		}

		from := order.Status
		if err := order.TransitionTo(next, now); err != nil {
			return err
		}
		if err := uow.Order().UpdateOrder(spanCtx, order); err != nil {
			return err
		}

		payload, err := json.Marshal(domain.OrderStatusChangedEvent{
			OrderID:    order.ID,
			SellerID:   order.SellerID,
			FromStatus: from,
			ToStatus:   next,
			ChangedAt:  now,
		})
		if err != nil {
			return fmt.Errorf("failed to marshal order status changed event: %w", err)
		}

		return uow.Outbox().AppendEvent(spanCtx, domain.NewOutboxEvent(
			domain.AggregateType_Order,
			order.ID,
			domain.EventType_ORDER_STATUS_CHANGED,
			payload,
			now,
		))
	}); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Order{}, err
	}

	return order, nil
}

// InitUpdateOrderStatus initializes the UpdateOrderStatus use case and registers it in the dependency container.
type InitUpdateOrderStatus struct {
	Uow          domain.UnitOfWork          `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the UpdateOrderStatusImpl use case in the dependency container.
func (iuo InitUpdateOrderStatus) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[UpdateOrderStatus](NewUpdateOrderStatusImpl(iuo.Uow, iuo.TimeProvider))
	return ctx, nil
}
