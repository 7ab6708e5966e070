package postgres

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/bazaarlabs/marketplace/internal/domain"
	"github.com/bazaarlabs/marketplace/internal/telemetry"
	"github.com/google/uuid"
)

// SellerStatsRepository implements the domain.SellerStatsRepository interface using PostgreSQL as the storage backend.
type SellerStatsRepository struct {
	sb squirrel.StatementBuilderType
}

// NewSellerStatsRepository creates a new instance of SellerStatsRepository.
func NewSellerStatsRepository(br squirrel.BaseRunner) SellerStatsRepository {
	return SellerStatsRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// ApplyOrder folds one order into the seller's running totals.
func (sr SellerStatsRepository) ApplyOrder(ctx context.Context, sellerID uuid.UUID, amountCents int64) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := sr.sb.
		Insert("seller_stats").
		Columns("seller_id", "order_count", "gross_cents").
		Values(sellerID, 1, amountCents).
		Suffix("ON CONFLICT (seller_id) DO UPDATE SET order_count = seller_stats.order_count + 1, gross_cents = seller_stats.gross_cents + EXCLUDED.gross_cents").
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// GetStats retrieves the aggregated totals for a seller. A seller without any
// processed orders gets zero totals rather than an error.
func (sr SellerStatsRepository) GetStats(ctx context.Context, sellerID uuid.UUID) (domain.SellerStats, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var stats domain.SellerStats
	err := sr.sb.
		Select("seller_id", "order_count", "gross_cents").
		From("seller_stats").
		Where(squirrel.Eq{"seller_id": sellerID}).
		QueryRowContext(spanCtx).
		Scan(&stats.SellerID, &stats.OrderCount, &stats.GrossCents)

	if err == sql.ErrNoRows {
		return domain.SellerStats{SellerID: sellerID}, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.SellerStats{}, err
	}

	return stats, nil
}
