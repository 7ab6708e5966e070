package domain

import (
	"context"
	"time"
)

// ProcessedEvent is the consumer-side deduplication marker. The existence of a
// row means the business effect for that event ID has already been applied and
// must not be reapplied.
type ProcessedEvent struct {
	EventID     string
	EventType   EventType
	ProcessedAt time.Time
}

// ProcessedEventRepository defines the interface for managing dedup markers.
type ProcessedEventRepository interface {
	// Exists reports whether a marker for the event ID is present.
	Exists(ctx context.Context, eventID string) (bool, error)
	// Save records a marker inside the caller's transaction.
	Save(ctx context.Context, event ProcessedEvent) error
	// DeleteProcessedBefore removes markers older than the threshold.
	DeleteProcessedBefore(ctx context.Context, threshold time.Time) (int64, error)
}
