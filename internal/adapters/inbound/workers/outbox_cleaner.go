package workers

import (
	"context"
	"log"
	"time"

	"github.com/bazaarlabs/marketplace/internal/usecases"
)

// OutboxCleaner is a runnable that periodically removes delivered events and
// stale dedup markers past the retention window.
type OutboxCleaner struct {
	Purge               usecases.PurgeOutbox `resolve:""`
	Logger              *log.Logger          `resolve:""`
	Interval            time.Duration        `config:"OUTBOX_CLEANUP_INTERVAL" default:"24h"`
	workerExecutionChan chan struct{}
}

// Run sweeps once at startup and then on every interval tick. The startup
// sweep covers deployments where the process restarts more often than the
// cleanup interval elapses.
func (oc OutboxCleaner) Run(ctx context.Context) error {
	oc.Logger.Println("OutboxCleaner: running...")
	ticker := time.NewTicker(oc.Interval)
	defer ticker.Stop()

	oc.sweep(ctx)

	for {
		select {
		case <-ticker.C:
			oc.sweep(ctx)
		case <-ctx.Done():
			oc.Logger.Println("OutboxCleaner: stopping...")
			return nil
		}
	}
}

func (oc OutboxCleaner) sweep(ctx context.Context) {
	if err := oc.Purge.Execute(ctx); err != nil {
		oc.Logger.Printf("error purging outbox: %v", err)
	}
	if oc.workerExecutionChan != nil {
		oc.workerExecutionChan <- struct{}{}
	}
}
