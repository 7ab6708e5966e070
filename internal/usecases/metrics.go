package usecases

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter = otel.Meter("usecases")
	// OutboxEventsRelayed counts dispatcher publish attempts by outcome.
	OutboxEventsRelayed metric.Int64Counter
	// OutboxRowsPurged counts rows removed by the retention cleaner.
	OutboxRowsPurged metric.Int64Counter
	// DuplicateEventsSkipped counts inbound deliveries skipped by the consumer guard.
	DuplicateEventsSkipped metric.Int64Counter
)

func init() {
	var err error
	OutboxEventsRelayed, err = meter.Int64Counter(
		"outbox_events_relayed_total",
		metric.WithDescription("Total outbox publish attempts by outcome"),
	)
	if err != nil {
		panic(err)
	}

	OutboxRowsPurged, err = meter.Int64Counter(
		"outbox_rows_purged_total",
		metric.WithDescription("Total rows removed by the retention cleaner"),
	)
	if err != nil {
		panic(err)
	}

	DuplicateEventsSkipped, err = meter.Int64Counter(
		"consumer_duplicate_events_total",
		metric.WithDescription("Total inbound deliveries skipped as duplicates"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordEventRelayed records one dispatcher publish attempt and its outcome.
func RecordEventRelayed(ctx context.Context, outcome string) {
	OutboxEventsRelayed.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}

// RecordRowsPurged records rows removed from a table by the cleaner.
func RecordRowsPurged(ctx context.Context, table string, n int64) {
	OutboxRowsPurged.Add(ctx, n, metric.WithAttributes(
		attribute.String("table", table),
	))
}

// RecordDuplicateSkipped records one inbound delivery skipped by the guard.
func RecordDuplicateSkipped(ctx context.Context) {
	DuplicateEventsSkipped.Add(ctx, 1)
}
