package postgres

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/bazaarlabs/marketplace/internal/domain"
	"github.com/bazaarlabs/marketplace/internal/telemetry"
	"github.com/google/uuid"
)

var (
	orderFields = []string{
		"id",
		"buyer_id",
		"seller_id",
		"total_cents",
		"status",
		"created_at",
		"updated_at",
	}
)

// OrderRepository implements the domain.OrderRepository interface using PostgreSQL as the storage backend.
type OrderRepository struct {
	sb squirrel.StatementBuilderType
}

// NewOrderRepository creates a new instance of OrderRepository.
func NewOrderRepository(br squirrel.BaseRunner) OrderRepository {
	return OrderRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// CreateOrder inserts a new order.
func (or OrderRepository) CreateOrder(ctx context.Context, order domain.Order) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := or.sb.
		Insert("orders").
		Columns(
			orderFields...,
		).
		Values(
			order.ID,
			order.BuyerID,
			order.SellerID,
			order.TotalCents,
			order.Status,
			order.CreatedAt,
			order.UpdatedAt,
		).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// GetOrder retrieves an order by its ID.
func (or OrderRepository) GetOrder(ctx context.Context, orderID uuid.UUID) (domain.Order, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var order domain.Order
	err := or.sb.
		Select(
			orderFields...,
		).
		From("orders").
		Where(squirrel.Eq{"id": orderID}).
		QueryRowContext(spanCtx).
		Scan(
			&order.ID,
			&order.BuyerID,
			&order.SellerID,
			&order.TotalCents,
			&order.Status,
			&order.CreatedAt,
			&order.UpdatedAt,
		)

	if telemetry.RecordErrorAndStatus(span, err) {
		if err == sql.ErrNoRows {
			return domain.Order{}, domain.NewNotFoundErr("order not found")
		}
		return domain.Order{}, err
	}

	return order, nil
}

// UpdateOrder persists the mutable state of an order.
func (or OrderRepository) UpdateOrder(ctx context.Context, order domain.Order) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := or.sb.
		Update("orders").
		Set("status", order.Status).
		Set("updated_at", order.UpdatedAt).
		Where(squirrel.Eq{"id": order.ID}).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}
