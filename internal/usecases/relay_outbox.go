package usecases

import (
	"context"
	"log"

	"github.com/bazaarlabs/marketplace/internal/domain"
	"github.com/bazaarlabs/marketplace/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

const (
	relayOutcomeSent    = "sent"
	relayOutcomeRetried = "retried"
	relayOutcomeFailed  = "failed"
)

// RelayOutbox defines the interface for one dispatcher tick over the outbox.
type RelayOutbox interface {
	// Execute fetches a batch of pending events, publishes them, and persists
	// each outcome independently.
	Execute(ctx context.Context) error
}

// RelayOutboxImpl implements the outbox dispatcher tick.
type RelayOutboxImpl struct {
	uow          domain.UnitOfWork
	publisher    domain.EventPublisher
	timeProvider domain.CurrentTimeProvider
	logger       *log.Logger
	batchSize    int
	maxRetries   int
}

// NewRelayOutboxImpl creates a new instance.
func NewRelayOutboxImpl(uow domain.UnitOfWork, publisher domain.EventPublisher, timeProvider domain.CurrentTimeProvider, logger *log.Logger, batchSize, maxRetries int) RelayOutboxImpl {
	return RelayOutboxImpl{
		uow:          uow,
		publisher:    publisher,
		timeProvider: timeProvider,
		logger:       logger,
		batchSize:    batchSize,
		maxRetries:   maxRetries,
	}
}

// Execute processes one batch of pending outbox events.
func (r RelayOutboxImpl) Execute(ctx context.Context) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var events []domain.OutboxEvent
	err := r.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		var err error
		events, err = uow.Outbox().FetchPendingEvents(spanCtx, r.batchSize)
		return err
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	for _, event := range events {
		if err := r.relayEvent(spanCtx, event); err != nil {
			r.logger.Printf("RelayOutbox: persisting outcome for event %s failed: %v", event.ID, err)
		}
	}
	return nil
}

// relayEvent publishes a single event and commits its new state in an isolated
// transaction, so one broker hiccup cannot roll back a sibling's outcome.
func (r RelayOutboxImpl) relayEvent(ctx context.Context, event domain.OutboxEvent) error {
	now := r.timeProvider.Now()

	if pubErr := r.publisher.PublishEvent(ctx, event); pubErr != nil {
		event.RecordFailure(pubErr.Error(), r.maxRetries, now)
		if event.Status == domain.OutboxStatus_Failed {
			r.logger.Printf("RelayOutbox: event %s exhausted %d attempts: %v", event.ID, event.RetryCount, pubErr)
			RecordEventRelayed(ctx, relayOutcomeFailed)
		} else {
			RecordEventRelayed(ctx, relayOutcomeRetried)
		}
	} else {
		event.MarkSent(now)
		RecordEventRelayed(ctx, relayOutcomeSent)
	}

	return r.uow.Execute(ctx, func(uow domain.UnitOfWork) error {
		return uow.Outbox().UpdateEvent(ctx, event)
	})
}

// InitRelayOutbox is used to initialize the RelayOutbox in the dependency container.
type InitRelayOutbox struct {
	Uow          domain.UnitOfWork          `resolve:""`
	Publisher    domain.EventPublisher      `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Logger       *log.Logger                `resolve:""`
	BatchSize    int                        `config:"OUTBOX_BATCH_SIZE" default:"50"`
	MaxRetries   int                        `config:"OUTBOX_MAX_RETRIES" default:"5"`
}

// Initialize registers the RelayOutbox implementation in the dependency container.
func (iro InitRelayOutbox) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[RelayOutbox](NewRelayOutboxImpl(iro.Uow, iro.Publisher, iro.TimeProvider, iro.Logger, iro.BatchSize, iro.MaxRetries))
	return ctx, nil
}
