package domain

import (
	"context"

	"github.com/google/uuid"
)

// SellerStats is the consumer-side projection updated when order events are
// accepted. It exists so duplicate deliveries have an observable effect to guard.
type SellerStats struct {
	SellerID   uuid.UUID
	OrderCount int64
	GrossCents int64
}

// SellerStatsRepository defines the interface for managing seller projections.
type SellerStatsRepository interface {
	// ApplyOrder adds one order worth amountCents to the seller's totals.
	ApplyOrder(ctx context.Context, sellerID uuid.UUID, amountCents int64) error
	// GetStats loads the projection for a seller.
	GetStats(ctx context.Context, sellerID uuid.UUID) (SellerStats, error)
}
