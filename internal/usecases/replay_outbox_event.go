package usecases

import (
	"context"
	"log"

	"github.com/bazaarlabs/marketplace/internal/domain"
	"github.com/bazaarlabs/marketplace/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// ReplayOutboxEvent defines the interface for requeueing a FAILED outbox event.
type ReplayOutboxEvent interface {
	// Execute moves a FAILED event back to PENDING so the dispatcher picks it
	// up again. Events in any other status are rejected.
	Execute(ctx context.Context, eventID uuid.UUID) (domain.OutboxEvent, error)
}

// ReplayOutboxEventImpl is the implementation of the ReplayOutboxEvent use case.
type ReplayOutboxEventImpl struct {
	uow    domain.UnitOfWork
	logger *log.Logger
}

// NewReplayOutboxEventImpl creates a new instance of ReplayOutboxEventImpl.
func NewReplayOutboxEventImpl(uow domain.UnitOfWork, logger *log.Logger) ReplayOutboxEventImpl {
	return ReplayOutboxEventImpl{
		uow:    uow,
		logger: logger,
	}
}

// Execute requeues a single failed event.
func (re ReplayOutboxEventImpl) Execute(ctx context.Context, eventID uuid.UUID) (domain.OutboxEvent, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var event domain.OutboxEvent
	if err := re.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		var err error
		event, err = uow.Outbox().GetEvent(spanCtx, eventID)
		if err != nil {
			return err
		}
		if err := event.Requeue(); err != nil {
			return err
		}
		return uow.Outbox().UpdateEvent(spanCtx, event)
	}); telemetry.RecordErrorAndStatus(span, err) {
		return domain.OutboxEvent{}, err
	}

	re.logger.Printf("ReplayOutboxEvent: event %s requeued for dispatch", event.ID)
	return event, nil
}

// InitReplayOutboxEvent initializes the ReplayOutboxEvent use case and registers it in the dependency container.
type InitReplayOutboxEvent struct {
	Uow    domain.UnitOfWork `resolve:""`
	Logger *log.Logger       `resolve:""`
}

// Initialize registers the ReplayOutboxEventImpl use case in the dependency container.
func (ire InitReplayOutboxEvent) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ReplayOutboxEvent](NewReplayOutboxEventImpl(ire.Uow, ire.Logger))
	return ctx, nil
}
