package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/bazaarlabs/marketplace/internal/domain"
	"github.com/bazaarlabs/marketplace/internal/telemetry"
	"github.com/google/uuid"
)

var (
	outboxEventFields = []string{
		"id",
		"aggregate_type",
		"aggregate_id",
		"event_type",
		"payload",
		"status",
		"retry_count",
		"error_message",
		"created_at",
		"processed_at",
	}
)

// OutboxRepository implements the domain.OutboxRepository interface using PostgreSQL as the storage backend.
type OutboxRepository struct {
	sb squirrel.StatementBuilderType
}

// NewOutboxRepository creates a new instance of OutboxRepository.
func NewOutboxRepository(br squirrel.BaseRunner) OutboxRepository {
	return OutboxRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// AppendEvent stages an outbox event. It runs inside the caller's transaction
// when the UnitOfWork carries one, which is what ties the event to the business
// write that produced it.
func (op OutboxRepository) AppendEvent(ctx context.Context, event domain.OutboxEvent) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := op.sb.
		Insert("outbox_events").
		Columns(
			outboxEventFields...,
		).
		Values(
			event.ID,
			event.AggregateType,
			event.AggregateID,
			event.EventType,
			event.Payload,
			event.Status,
			event.RetryCount,
			event.ErrorMessage,
			event.CreatedAt,
			event.ProcessedAt,
		).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// FetchPendingEvents retrieves a batch of pending outbox events, oldest first.
func (op OutboxRepository) FetchPendingEvents(ctx context.Context, limit int) ([]domain.OutboxEvent, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	rows, err := op.sb.
		Select(
			outboxEventFields...,
		).
		From("outbox_events").
		Where(squirrel.Eq{"status": domain.OutboxStatus_Pending}).
		OrderBy("created_at ASC").
		Limit(uint64(limit)).
		Suffix("FOR UPDATE SKIP LOCKED").
		QueryContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var events []domain.OutboxEvent
	for rows.Next() {
		var oe domain.OutboxEvent
		err := rows.Scan(
			&oe.ID,
			&oe.AggregateType,
			&oe.AggregateID,
			&oe.EventType,
			&oe.Payload,
			&oe.Status,
			&oe.RetryCount,
			&oe.ErrorMessage,
			&oe.CreatedAt,
			&oe.ProcessedAt,
		)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		events = append(events, oe)
	}

	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	return events, nil
}

// GetEvent retrieves a single outbox event by its ID.
func (op OutboxRepository) GetEvent(ctx context.Context, eventID uuid.UUID) (domain.OutboxEvent, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var oe domain.OutboxEvent
	err := op.sb.
		Select(
			outboxEventFields...,
		).
		From("outbox_events").
		Where(squirrel.Eq{"id": eventID}).
		QueryRowContext(spanCtx).
		Scan(
			&oe.ID,
			&oe.AggregateType,
			&oe.AggregateID,
			&oe.EventType,
			&oe.Payload,
			&oe.Status,
			&oe.RetryCount,
			&oe.ErrorMessage,
			&oe.CreatedAt,
			&oe.ProcessedAt,
		)

	if telemetry.RecordErrorAndStatus(span, err) {
		if err == sql.ErrNoRows {
			return domain.OutboxEvent{}, domain.NewNotFoundErr("outbox event not found")
		}
		return domain.OutboxEvent{}, err
	}

	return oe, nil
}

// UpdateEvent persists the mutable state of an outbox event.
func (op OutboxRepository) UpdateEvent(ctx context.Context, event domain.OutboxEvent) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := op.sb.
		Update("outbox_events").
		Set("status", event.Status).
		Set("retry_count", event.RetryCount).
		Set("error_message", event.ErrorMessage).
		Set("processed_at", event.ProcessedAt).
		Where(squirrel.Eq{"id": event.ID}).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// DeleteSentBefore removes SENT events processed before the threshold.
func (op OutboxRepository) DeleteSentBefore(ctx context.Context, threshold time.Time) (int64, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	result, err := op.sb.
		Delete("outbox_events").
		Where(squirrel.Eq{"status": domain.OutboxStatus_Sent}).
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

// CountByStatus returns the number of outbox events per status.
func (op OutboxRepository) CountByStatus(ctx context.Context) (map[domain.OutboxStatus]int64, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	rows, err := op.sb.
		Select("status", "COUNT(*)").
		From("outbox_events").
		GroupBy("status").
		QueryContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	counts := map[domain.OutboxStatus]int64{}
	for rows.Next() {
		var status domain.OutboxStatus
		var count int64
		if err := rows.Scan(&status, &count); telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		counts[status] = count
	}

	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	return counts, nil
}
