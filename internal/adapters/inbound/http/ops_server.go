package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/bazaarlabs/marketplace/internal/telemetry"
	"github.com/bazaarlabs/marketplace/internal/usecases"
	"github.com/rs/cors"
)

// OpsServer is the operational HTTP surface of the marketplace service: the
// order write endpoints plus health, outbox inspection and replay.
type OpsServer struct {
	Port                     int                        `config:"HTTP_PORT" default:"8080"`
	Logger                   *log.Logger                `resolve:""`
	PlaceOrderUseCase        usecases.PlaceOrder        `resolve:""`
	UpdateOrderStatusUseCase usecases.UpdateOrderStatus `resolve:""`
	GetOutboxStatsUseCase    usecases.GetOutboxStats    `resolve:""`
	ReplayOutboxEventUseCase usecases.ReplayOutboxEvent `resolve:""`
}

func (api OpsServer) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", api.handleHealthz)
	mux.HandleFunc("POST /orders", api.handlePlaceOrder)
	mux.HandleFunc("POST /orders/{id}/status", api.handleUpdateOrderStatus)
	mux.HandleFunc("GET /outbox/stats", api.handleGetOutboxStats)
	mux.HandleFunc("POST /outbox/events/{id}/replay", api.handleReplayOutboxEvent)

	return mux
}

// Run starts the HTTP server for the OpsServer.
func (api OpsServer) Run(ctx context.Context) error {
	h := telemetry.Middleware("marketplace-api")(api.routes())

	// Apply CORS at the top-level so preflight requests hit it, too.
	h = cors.AllowAll().Handler(h)

	s := &http.Server{
		Handler: h,
		Addr:    fmt.Sprintf(":%d", api.Port),
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("OpsServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("OpsServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("OpsServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the OpsServer is ready by performing a health check.
func (api OpsServer) IsReady(ctx context.Context) error {
	resp, err := http.Get(fmt.Sprintf("http://:%d/healthz", api.Port))
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}

func (api OpsServer) handleHealthz(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
