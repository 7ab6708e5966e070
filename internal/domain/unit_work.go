package domain

import "context"

// UnitOfWork represents a unit of work for managing repositories and transactions.
type UnitOfWork interface {
	// Order returns the repository for managing orders.
	Order() OrderRepository
	// Outbox returns the repository for managing outbox events.
	Outbox() OutboxRepository
	// ProcessedEvents returns the repository for managing dedup markers.
	ProcessedEvents() ProcessedEventRepository
	// SellerStats returns the repository for managing seller projections.
	SellerStats() SellerStatsRepository
	// Execute runs a function within the context of a unit of work.
	Execute(ctx context.Context, fn func(uow UnitOfWork) error) error
}
