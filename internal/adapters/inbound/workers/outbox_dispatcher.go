package workers

import (
	"context"
	"log"
	"time"

	"github.com/bazaarlabs/marketplace/internal/usecases"
)

// OutboxDispatcher is a runnable that periodically relays pending outbox
// events to the broker.
type OutboxDispatcher struct {
	Relay               usecases.RelayOutbox `resolve:""`
	Logger              *log.Logger          `resolve:""`
	Interval            time.Duration        `config:"OUTBOX_DISPATCH_INTERVAL" default:"1s"`
	workerExecutionChan chan struct{}
}

// Run starts the periodic processing of outbox events.
func (od OutboxDispatcher) Run(ctx context.Context) error {
	od.Logger.Println("OutboxDispatcher: running...")
	ticker := time.NewTicker(od.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			err := od.Relay.Execute(ctx)
			if err != nil {
				od.Logger.Printf("error processing batch: %v", err)
			}
			if od.workerExecutionChan != nil {
				od.workerExecutionChan <- struct{}{}
			}
		case <-ctx.Done():
			od.Logger.Println("OutboxDispatcher: stopping...")
			return nil
		}
	}
}
