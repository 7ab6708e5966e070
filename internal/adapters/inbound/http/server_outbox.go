package http

import (
	"net/http"
	"time"

	"github.com/bazaarlabs/marketplace/internal/domain"
	"github.com/google/uuid"
)

type outboxStatsResp struct {
	Pending int64 `json:"pending"`
	Sent    int64 `json:"sent"`
	Failed  int64 `json:"failed"`
}

type outboxEventResp struct {
	ID            uuid.UUID  `json:"id"`
	AggregateType string     `json:"aggregate_type"`
	AggregateID   uuid.UUID  `json:"aggregate_id"`
	EventType     string     `json:"event_type"`
	Status        string     `json:"status"`
	RetryCount    int        `json:"retry_count"`
	ErrorMessage  *string    `json:"error_message,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	ProcessedAt   *time.Time `json:"processed_at,omitempty"`
}

func toOutboxEventResp(event domain.OutboxEvent) outboxEventResp {
	return outboxEventResp{
		ID:            event.ID,
		AggregateType: string(event.AggregateType),
		AggregateID:   event.AggregateID,
		EventType:     string(event.EventType),
		Status:        string(event.Status),
		RetryCount:    event.RetryCount,
		ErrorMessage:  event.ErrorMessage,
		CreatedAt:     event.CreatedAt,
		ProcessedAt:   event.ProcessedAt,
	}
}

func (api OpsServer) handleGetOutboxStats(w http.ResponseWriter, r *http.Request) {
	counts, err := api.GetOutboxStatsUseCase.Execute(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, outboxStatsResp{
		Pending: counts[domain.OutboxStatus_Pending],
		Sent:    counts[domain.OutboxStatus_Sent],
		Failed:  counts[domain.OutboxStatus_Failed],
	})
}

func (api OpsServer) handleReplayOutboxEvent(w http.ResponseWriter, r *http.Request) {
	eventID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, domain.NewValidationErr("invalid event id"))
		return
	}

	event, err := api.ReplayOutboxEventUseCase.Execute(r.Context(), eventID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toOutboxEventResp(event))
}
