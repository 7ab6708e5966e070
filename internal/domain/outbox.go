package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// OutboxStatus represents the delivery lifecycle status of an outbox event.
type OutboxStatus string

const (
	// OutboxStatus_Pending indicates the event is waiting to be published.
	OutboxStatus_Pending OutboxStatus = "PENDING"
	// OutboxStatus_Sent indicates the event was acknowledged by the broker.
	OutboxStatus_Sent OutboxStatus = "SENT"
	// OutboxStatus_Failed indicates the event exhausted its retries and stopped processing.
	OutboxStatus_Failed OutboxStatus = "FAILED"
)

// AggregateType identifies the domain aggregate that produced an outbox event.
type AggregateType string

const (
	// AggregateType_Order represents order-related events.
	AggregateType_Order AggregateType = "Order"
)

// OutboxEvent represents an event staged in the outbox for at-least-once delivery.
// It is created in the same transaction as the business write that produced it,
// mutated only by the dispatcher, and deleted only by the retention cleaner.
type OutboxEvent struct {
	ID            uuid.UUID
	AggregateType AggregateType
	AggregateID   uuid.UUID
	EventType     EventType
	Payload       []byte
	Status        OutboxStatus
	RetryCount    int
	ErrorMessage  *string
	CreatedAt     time.Time
	ProcessedAt   *time.Time
}

// NewOutboxEvent stages a new PENDING event for the given aggregate.
func NewOutboxEvent(aggregateType AggregateType, aggregateID uuid.UUID, eventType EventType, payload []byte, now time.Time) OutboxEvent {
	return OutboxEvent{
		ID:            uuid.New(),
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		EventType:     eventType,
		Payload:       payload,
		Status:        OutboxStatus_Pending,
		CreatedAt:     now,
	}
}

// MarkSent transitions the event to its terminal SENT state.
func (e *OutboxEvent) MarkSent(now time.Time) {
	e.Status = OutboxStatus_Sent
	e.ProcessedAt = &now
}

// RecordFailure records a failed publish attempt. The event stays PENDING until
// maxRetries attempts have failed, at which point it becomes FAILED and requires
// an administrative replay to move again.
func (e *OutboxEvent) RecordFailure(message string, maxRetries int, now time.Time) {
	e.RetryCount++
	e.ErrorMessage = &message
	if e.RetryCount >= maxRetries {
		e.Status = OutboxStatus_Failed
		e.ProcessedAt = &now
	}
}

// Requeue resets a FAILED event back to PENDING with a fresh retry budget.
// Events in any other status are not replayable: PENDING ones are already in
// flight and SENT ones were delivered.
func (e *OutboxEvent) Requeue() error {
	if e.Status != OutboxStatus_Failed {
		return NewValidationErr("only FAILED events can be replayed, event is " + string(e.Status))
	}
	e.Status = OutboxStatus_Pending
	e.RetryCount = 0
	e.ProcessedAt = nil
	return nil
}

// IsTerminal reports whether no further automatic transition applies to the event.
func (e OutboxEvent) IsTerminal() bool {
	return e.Status == OutboxStatus_Sent || e.Status == OutboxStatus_Failed
}

// OutboxRepository defines the interface for managing outbox events.
type OutboxRepository interface {
	// AppendEvent stages an event inside the caller's transaction.
	AppendEvent(ctx context.Context, event OutboxEvent) error
	// FetchPendingEvents retrieves a batch of pending events, oldest first.
	FetchPendingEvents(ctx context.Context, limit int) ([]OutboxEvent, error)
	// GetEvent loads a single event by ID.
	GetEvent(ctx context.Context, eventID uuid.UUID) (OutboxEvent, error)
	// UpdateEvent persists the full mutable state of an event.
	UpdateEvent(ctx context.Context, event OutboxEvent) error
	// DeleteSentBefore removes SENT events whose processed_at is before the threshold.
	DeleteSentBefore(ctx context.Context, threshold time.Time) (int64, error)
	// CountByStatus returns the number of events per status.
	CountByStatus(ctx context.Context) (map[OutboxStatus]int64, error)
}
