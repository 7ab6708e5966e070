package usecases

import (
	"context"

	"github.com/bazaarlabs/marketplace/internal/domain"
	"github.com/bazaarlabs/marketplace/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// GetOutboxStats defines the interface for the outbox status breakdown.
type GetOutboxStats interface {
	Execute(ctx context.Context) (map[domain.OutboxStatus]int64, error)
}

// GetOutboxStatsImpl is the implementation of the GetOutboxStats use case.
type GetOutboxStatsImpl struct {
	uow domain.UnitOfWork
}

// NewGetOutboxStatsImpl creates a new instance of GetOutboxStatsImpl.
func NewGetOutboxStatsImpl(uow domain.UnitOfWork) GetOutboxStatsImpl {
	return GetOutboxStatsImpl{uow: uow}
}

// Execute returns the number of outbox events per status.
func (gs GetOutboxStatsImpl) Execute(ctx context.Context) (map[domain.OutboxStatus]int64, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	stats, err := gs.uow.Outbox().CountByStatus(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return stats, nil
}

// InitGetOutboxStats initializes the GetOutboxStats use case and registers it in the dependency container.
type InitGetOutboxStats struct {
	Uow domain.UnitOfWork `resolve:""`
}

// Initialize registers the GetOutboxStatsImpl use case in the dependency container.
func (igs InitGetOutboxStats) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GetOutboxStats](NewGetOutboxStatsImpl(igs.Uow))
	return ctx, nil
}
