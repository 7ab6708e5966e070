package app

import (
	"github.com/bazaarlabs/marketplace/internal/adapters/inbound/http"
	"github.com/bazaarlabs/marketplace/internal/adapters/inbound/workers"
	"github.com/bazaarlabs/marketplace/internal/adapters/outbound/config"
	"github.com/bazaarlabs/marketplace/internal/adapters/outbound/log"
	"github.com/bazaarlabs/marketplace/internal/adapters/outbound/postgres"
	"github.com/bazaarlabs/marketplace/internal/adapters/outbound/pubsub"
	"github.com/bazaarlabs/marketplace/internal/adapters/outbound/time"
	"github.com/bazaarlabs/marketplace/internal/adapters/outbound/webhook"
	"github.com/bazaarlabs/marketplace/internal/telemetry"
	"github.com/bazaarlabs/marketplace/internal/usecases"
	"github.com/cleitonmarx/symbiont"
)

// NewMarketplaceApp creates and returns a new instance of the marketplace application.
func NewMarketplaceApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&config.InitVaultProvider{},
			&postgres.InitDB{},
			&postgres.InitUnitOfWork{},
			&time.InitCurrentTimeProvider{},
			&pubsub.InitClient{},
			&pubsub.InitPublisher{},
			&webhook.InitNotifier{},

			&usecases.InitPlaceOrder{},
			&usecases.InitUpdateOrderStatus{},
			&usecases.InitRelayOutbox{},
			&usecases.InitPurgeOutbox{},
			&usecases.InitRecordOrderEvent{},
			&usecases.InitGetOutboxStats{},
			&usecases.InitReplayOutboxEvent{},
		).
		Host(
			&http.OpsServer{},
			&workers.OutboxDispatcher{},
			&workers.OutboxCleaner{},
			&workers.OrderEventSubscriber{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
