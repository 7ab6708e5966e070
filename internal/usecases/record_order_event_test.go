package usecases

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"github.com/bazaarlabs/marketplace/internal/domain"
	domain_mocks "github.com/bazaarlabs/marketplace/internal/domain/mocks"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRecordOrderEventImpl_Execute(t *testing.T) {
	fixedTime := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	eventID := "123e4567-e89b-12d3-a456-426614174000"
	sellerID := uuid.MustParse("323e4567-e89b-12d3-a456-426614174000")

	createdPayload := []byte(`{"order_id":"223e4567-e89b-12d3-a456-426614174000","buyer_id":"423e4567-e89b-12d3-a456-426614174000","seller_id":"323e4567-e89b-12d3-a456-426614174000","total_cents":2500,"created_at":"2026-03-10T12:00:00Z"}`)

	tests := map[string]struct {
		eventType       domain.EventType
		payload         []byte
		setExpectations func(uow *domain_mocks.MockUnitOfWork, notifier *domain_mocks.MockWebhookNotifier)
		expectedErr     error
	}{
		"first-delivery-applies-effect-and-saves-marker": {
			eventType: domain.EventType_ORDER_CREATED,
			payload:   createdPayload,
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, notifier *domain_mocks.MockWebhookNotifier) {
				processed := domain_mocks.NewMockProcessedEventRepository(t)
				stats := domain_mocks.NewMockSellerStatsRepository(t)

				uow.EXPECT().ProcessedEvents().Return(processed)
				uow.EXPECT().SellerStats().Return(stats)
				uow.EXPECT().
					Execute(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
						return fn(uow)
					})

				processed.EXPECT().Exists(mock.Anything, eventID).Return(false, nil)
				stats.EXPECT().ApplyOrder(mock.Anything, sellerID, int64(2500)).Return(nil)
				processed.EXPECT().Save(mock.Anything, domain.ProcessedEvent{
					EventID:     eventID,
					EventType:   domain.EventType_ORDER_CREATED,
					ProcessedAt: fixedTime,
				}).Return(nil)

				notifier.EXPECT().Notify(mock.Anything, domain.EventType_ORDER_CREATED, createdPayload).Return(nil)
			},
			expectedErr: nil,
		},
		"duplicate-delivery-is-skipped": {
			eventType: domain.EventType_ORDER_CREATED,
			payload:   createdPayload,
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, notifier *domain_mocks.MockWebhookNotifier) {
				processed := domain_mocks.NewMockProcessedEventRepository(t)

				uow.EXPECT().ProcessedEvents().Return(processed)
				uow.EXPECT().
					Execute(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
						return fn(uow)
					})

				processed.EXPECT().Exists(mock.Anything, eventID).Return(true, nil)
			},
			expectedErr: nil,
		},
		"status-changed-saves-marker-only": {
			eventType: domain.EventType_ORDER_STATUS_CHANGED,
			payload:   []byte(`{}`),
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, notifier *domain_mocks.MockWebhookNotifier) {
				processed := domain_mocks.NewMockProcessedEventRepository(t)

				uow.EXPECT().ProcessedEvents().Return(processed)
				uow.EXPECT().
					Execute(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
						return fn(uow)
					})

				processed.EXPECT().Exists(mock.Anything, eventID).Return(false, nil)
				processed.EXPECT().Save(mock.Anything, domain.ProcessedEvent{
					EventID:     eventID,
					EventType:   domain.EventType_ORDER_STATUS_CHANGED,
					ProcessedAt: fixedTime,
				}).Return(nil)

				notifier.EXPECT().Notify(mock.Anything, domain.EventType_ORDER_STATUS_CHANGED, []byte(`{}`)).Return(nil)
			},
			expectedErr: nil,
		},
		"effect-error-leaves-no-marker": {
			eventType: domain.EventType_ORDER_CREATED,
			payload:   createdPayload,
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, notifier *domain_mocks.MockWebhookNotifier) {
				processed := domain_mocks.NewMockProcessedEventRepository(t)
				stats := domain_mocks.NewMockSellerStatsRepository(t)

				uow.EXPECT().ProcessedEvents().Return(processed)
				uow.EXPECT().SellerStats().Return(stats)
				uow.EXPECT().
					Execute(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
						return fn(uow)
					})

				processed.EXPECT().Exists(mock.Anything, eventID).Return(false, nil)
				stats.EXPECT().ApplyOrder(mock.Anything, sellerID, int64(2500)).
					Return(errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
		"webhook-failure-does-not-fail-processing": {
			eventType: domain.EventType_ORDER_STATUS_CHANGED,
			payload:   []byte(`{}`),
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, notifier *domain_mocks.MockWebhookNotifier) {
				processed := domain_mocks.NewMockProcessedEventRepository(t)

				uow.EXPECT().ProcessedEvents().Return(processed)
				uow.EXPECT().
					Execute(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
						return fn(uow)
					})

				processed.EXPECT().Exists(mock.Anything, eventID).Return(false, nil)
				processed.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)

				notifier.EXPECT().Notify(mock.Anything, domain.EventType_ORDER_STATUS_CHANGED, []byte(`{}`)).
					Return(errors.New("endpoint unreachable"))
			},
			expectedErr: nil,
		},
		"malformed-payload": {
			eventType: domain.EventType_ORDER_CREATED,
			payload:   []byte(`not-json`),
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, notifier *domain_mocks.MockWebhookNotifier) {
				processed := domain_mocks.NewMockProcessedEventRepository(t)

				uow.EXPECT().ProcessedEvents().Return(processed)
				uow.EXPECT().
					Execute(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
						return fn(uow)
					})

				processed.EXPECT().Exists(mock.Anything, eventID).Return(false, nil)
			},
			expectedErr: errors.New("unmarshal"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			uow := domain_mocks.NewMockUnitOfWork(t)
			notifier := domain_mocks.NewMockWebhookNotifier(t)
			timeProvider := domain_mocks.NewMockCurrentTimeProvider(t)
			timeProvider.EXPECT().Now().Return(fixedTime).Maybe()

			if tt.setExpectations != nil {
				tt.setExpectations(uow, notifier)
			}

			record := NewRecordOrderEventImpl(uow, notifier, timeProvider, log.New(io.Discard, "", 0))
			gotErr := record.Execute(context.Background(), eventID, tt.eventType, tt.payload)

			if tt.expectedErr == nil {
				assert.NoError(t, gotErr)
			} else {
				assert.ErrorContains(t, gotErr, tt.expectedErr.Error())
			}
		})
	}
}

func TestInitRecordOrderEvent_Initialize(t *testing.T) {
	iro := InitRecordOrderEvent{Logger: log.New(io.Discard, "", 0)}

	ctx, err := iro.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registeredRecord, err := depend.Resolve[RecordOrderEvent]()
	assert.NoError(t, err)
	assert.NotNil(t, registeredRecord)
}
