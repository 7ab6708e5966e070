package postgres

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/bazaarlabs/marketplace/internal/domain"
	"github.com/bazaarlabs/marketplace/internal/telemetry"
)

// ProcessedEventRepository implements the domain.ProcessedEventRepository interface using PostgreSQL as the storage backend.
type ProcessedEventRepository struct {
	sb squirrel.StatementBuilderType
}

// NewProcessedEventRepository creates a new instance of ProcessedEventRepository.
func NewProcessedEventRepository(br squirrel.BaseRunner) ProcessedEventRepository {
	return ProcessedEventRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// Exists reports whether a delivery marker for the event is present.
func (pr ProcessedEventRepository) Exists(ctx context.Context, eventID string) (bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var count int64
	err := pr.sb.
		Select("COUNT(*)").
		From("processed_events").
		Where(squirrel.Eq{"event_id": eventID}).
		QueryRowContext(spanCtx).
		Scan(&count)

	if telemetry.RecordErrorAndStatus(span, err) {
		return false, err
	}
	return count > 0, nil
}

// Save inserts the delivery marker for an event.
func (pr ProcessedEventRepository) Save(ctx context.Context, event domain.ProcessedEvent) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := pr.sb.
		Insert("processed_events").
		Columns("event_id", "event_type", "processed_at").
		Values(event.EventID, event.EventType, event.ProcessedAt).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// DeleteProcessedBefore removes markers older than the threshold.
func (pr ProcessedEventRepository) DeleteProcessedBefore(ctx context.Context, threshold time.Time) (int64, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	result, err := pr.sb.
		Delete("processed_events").
		Where(squirrel.Lt{"processed_at": threshold}).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}

	deleted, err := result.RowsAffected()
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}
	return deleted, nil
}
