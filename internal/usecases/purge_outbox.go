package usecases

import (
	"context"
	"log"
	"time"

	"github.com/bazaarlabs/marketplace/internal/domain"
	"github.com/bazaarlabs/marketplace/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// PurgeOutbox defines the interface for the retention cleanup of delivered events.
type PurgeOutbox interface {
	// Execute removes SENT outbox rows and processed-event markers older than
	// the retention window. PENDING and FAILED rows are never touched.
	Execute(ctx context.Context) error
}

// PurgeOutboxImpl implements the outbox retention cleaner.
type PurgeOutboxImpl struct {
	uow           domain.UnitOfWork
	timeProvider  domain.CurrentTimeProvider
	logger        *log.Logger
	retentionDays int
}

// NewPurgeOutboxImpl creates a new instance.
func NewPurgeOutboxImpl(uow domain.UnitOfWork, timeProvider domain.CurrentTimeProvider, logger *log.Logger, retentionDays int) PurgeOutboxImpl {
	return PurgeOutboxImpl{
		uow:           uow,
		timeProvider:  timeProvider,
		logger:        logger,
		retentionDays: retentionDays,
	}
}

// Execute performs one retention sweep. Deletion is the only operation, so a
// failed sweep loses nothing; the next scheduled run retries.
func (p PurgeOutboxImpl) Execute(ctx context.Context) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	threshold := p.timeProvider.Now().Add(-time.Duration(p.retentionDays) * 24 * time.Hour)

	var sentDeleted, markersDeleted int64
	err := p.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		var err error
		sentDeleted, err = uow.Outbox().DeleteSentBefore(spanCtx, threshold)
		if err != nil {
			return err
		}
		markersDeleted, err = uow.ProcessedEvents().DeleteProcessedBefore(spanCtx, threshold)
		return err
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	RecordRowsPurged(spanCtx, "outbox_events", sentDeleted)
	RecordRowsPurged(spanCtx, "processed_events", markersDeleted)
	p.logger.Printf("PurgeOutbox: removed %d sent events and %d processed markers older than %s", sentDeleted, markersDeleted, threshold.Format(time.RFC3339))
	return nil
}

// InitPurgeOutbox is used to initialize the PurgeOutbox in the dependency container.
type InitPurgeOutbox struct {
	Uow           domain.UnitOfWork          `resolve:""`
	TimeProvider  domain.CurrentTimeProvider `resolve:""`
	Logger        *log.Logger                `resolve:""`
	RetentionDays int                        `config:"OUTBOX_RETENTION_DAYS" default:"7"`
}

// Initialize registers the PurgeOutbox implementation in the dependency container.
func (ipo InitPurgeOutbox) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[PurgeOutbox](NewPurgeOutboxImpl(ipo.Uow, ipo.TimeProvider, ipo.Logger, ipo.RetentionDays))
	return ctx, nil
}
