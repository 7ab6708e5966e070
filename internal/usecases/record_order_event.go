package usecases

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/bazaarlabs/marketplace/internal/domain"
	"github.com/bazaarlabs/marketplace/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// RecordOrderEvent defines the interface for the consumer-side handler of
// inbound order events.
type RecordOrderEvent interface {
	// Execute applies the effect of an inbound event exactly once. Redelivered
	// events are acknowledged without reapplying their effect.
	Execute(ctx context.Context, eventID string, eventType domain.EventType, payload []byte) error
}

// RecordOrderEventImpl is the implementation of the RecordOrderEvent use case.
type RecordOrderEventImpl struct {
	uow          domain.UnitOfWork
	notifier     domain.WebhookNotifier
	timeProvider domain.CurrentTimeProvider
	logger       *log.Logger
}

// NewRecordOrderEventImpl creates a new instance of RecordOrderEventImpl.
func NewRecordOrderEventImpl(uow domain.UnitOfWork, notifier domain.WebhookNotifier, timeProvider domain.CurrentTimeProvider, logger *log.Logger) RecordOrderEventImpl {
	return RecordOrderEventImpl{
		uow:          uow,
		notifier:     notifier,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute checks the dedup marker, applies the event effect, and saves the
// marker in the same transaction. The marker write is what makes redelivery
// safe: if the transaction rolls back, the effect and the marker vanish
// together and the redelivery starts from a clean slate.
func (ro RecordOrderEventImpl) Execute(ctx context.Context, eventID string, eventType domain.EventType, payload []byte) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var duplicate bool
	err := ro.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		exists, err := uow.ProcessedEvents().Exists(spanCtx, eventID)
		if err != nil {
			return err
		}
		if exists {
			duplicate = true
			return nil
		}

		if err := ro.applyEffect(spanCtx, uow, eventType, payload); err != nil {
			return err
		}

		return uow.ProcessedEvents().Save(spanCtx, domain.ProcessedEvent{
			EventID:     eventID,
			EventType:   eventType,
			ProcessedAt: ro.timeProvider.Now(),
		})
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	if duplicate {
		ro.logger.Printf("RecordOrderEvent: skipping duplicate delivery of event %s", eventID)
		RecordDuplicateSkipped(spanCtx)
		return nil
	}

	// Webhook fan-out happens after commit. A webhook failure must not nack the
	// message: the marker is already saved, so a redelivery would be skipped and
	// the notification lost either way.
	if err := ro.notifier.Notify(spanCtx, eventType, payload); err != nil {
		ro.logger.Printf("RecordOrderEvent: webhook notification for event %s failed: %v", eventID, err)
	}
	return nil
}

func (ro RecordOrderEventImpl) applyEffect(ctx context.Context, uow domain.UnitOfWork, eventType domain.EventType, payload []byte) error {
	switch eventType {
	case domain.EventType_ORDER_CREATED:
		var event domain.OrderCreatedEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			return fmt.Errorf("failed to unmarshal order created event: %w", err)
		}
		return uow.SellerStats().ApplyOrder(ctx, event.SellerID, event.TotalCents)
	case domain.EventType_ORDER_STATUS_CHANGED:
		// No projection effect yet; the marker alone records the delivery.
		return nil
	default:
		ro.logger.Printf("RecordOrderEvent: no effect registered for event type %q", eventType)
		return nil
	}
}

// InitRecordOrderEvent initializes the RecordOrderEvent use case and registers it in the dependency container.
type InitRecordOrderEvent struct {
	Uow          domain.UnitOfWork          `resolve:""`
	Notifier     domain.WebhookNotifier     `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Logger       *log.Logger                `resolve:""`
}

// Initialize registers the RecordOrderEventImpl use case in the dependency container.
func (iro InitRecordOrderEvent) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[RecordOrderEvent](NewRecordOrderEventImpl(iro.Uow, iro.Notifier, iro.TimeProvider, iro.Logger))
	return ctx, nil
}
