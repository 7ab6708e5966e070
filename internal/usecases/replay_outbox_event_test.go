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

func TestReplayOutboxEventImpl_Execute(t *testing.T) {
	fixedTime := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	eventID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")

	failedEvent := domain.OutboxEvent{
		ID:           eventID,
		EventType:    domain.EventType_ORDER_CREATED,
		Status:       domain.OutboxStatus_Failed,
		RetryCount:   5,
		ErrorMessage: strPtr("broker timeout"),
		CreatedAt:    fixedTime,
		ProcessedAt:  &fixedTime,
	}

	tests := map[string]struct {
		setExpectations func(uow *domain_mocks.MockUnitOfWork)
		expectedStatus  domain.OutboxStatus
		expectedErr     error
	}{
		"failed-event-requeued": {
			setExpectations: func(uow *domain_mocks.MockUnitOfWork) {
				outbox := domain_mocks.NewMockOutboxRepository(t)

				uow.EXPECT().Outbox().Return(outbox)
				uow.EXPECT().
					Execute(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
						return fn(uow)
					})

				outbox.EXPECT().GetEvent(mock.Anything, eventID).Return(failedEvent, nil)

				requeued := failedEvent
				requeued.Status = domain.OutboxStatus_Pending
				requeued.RetryCount = 0
				requeued.ProcessedAt = nil
				outbox.EXPECT().UpdateEvent(mock.Anything, requeued).Return(nil)
			},
			expectedStatus: domain.OutboxStatus_Pending,
			expectedErr:    nil,
		},
		"pending-event-rejected": {
			setExpectations: func(uow *domain_mocks.MockUnitOfWork) {
				outbox := domain_mocks.NewMockOutboxRepository(t)

				uow.EXPECT().Outbox().Return(outbox)
				uow.EXPECT().
					Execute(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
						return fn(uow)
					})

				pending := failedEvent
				pending.Status = domain.OutboxStatus_Pending
				outbox.EXPECT().GetEvent(mock.Anything, eventID).Return(pending, nil)
			},
			expectedErr: domain.NewValidationErr("only FAILED events can be replayed, event is PENDING"),
		},
		"sent-event-rejected": {
			setExpectations: func(uow *domain_mocks.MockUnitOfWork) {
				outbox := domain_mocks.NewMockOutboxRepository(t)

				uow.EXPECT().Outbox().Return(outbox)
				uow.EXPECT().
					Execute(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
						return fn(uow)
					})

				sent := failedEvent
				sent.Status = domain.OutboxStatus_Sent
				outbox.EXPECT().GetEvent(mock.Anything, eventID).Return(sent, nil)
			},
			expectedErr: domain.NewValidationErr("only FAILED events can be replayed, event is SENT"),
		},
		"event-not-found": {
			setExpectations: func(uow *domain_mocks.MockUnitOfWork) {
				outbox := domain_mocks.NewMockOutboxRepository(t)

				uow.EXPECT().Outbox().Return(outbox)
				uow.EXPECT().
					Execute(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
						return fn(uow)
					})

				outbox.EXPECT().GetEvent(mock.Anything, eventID).
					Return(domain.OutboxEvent{}, domain.NewNotFoundErr("outbox event not found"))
			},
			expectedErr: domain.NewNotFoundErr("outbox event not found"),
		},
		"update-event-error": {
			setExpectations: func(uow *domain_mocks.MockUnitOfWork) {
				outbox := domain_mocks.NewMockOutboxRepository(t)

				uow.EXPECT().Outbox().Return(outbox)
				uow.EXPECT().
					Execute(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
						return fn(uow)
					})

				outbox.EXPECT().GetEvent(mock.Anything, eventID).Return(failedEvent, nil)
				outbox.EXPECT().UpdateEvent(mock.Anything, mock.Anything).
					Return(errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			uow := domain_mocks.NewMockUnitOfWork(t)

			if tt.setExpectations != nil {
				tt.setExpectations(uow)
			}

			replay := NewReplayOutboxEventImpl(uow, log.New(io.Discard, "", 0))
			gotEvent, gotErr := replay.Execute(context.Background(), eventID)

			assert.Equal(t, tt.expectedErr, gotErr)
			if tt.expectedErr == nil {
				assert.Equal(t, tt.expectedStatus, gotEvent.Status)
				assert.Equal(t, 0, gotEvent.RetryCount)
				assert.Nil(t, gotEvent.ProcessedAt)
			}
		})
	}
}

func TestInitReplayOutboxEvent_Initialize(t *testing.T) {
	ire := InitReplayOutboxEvent{Logger: log.New(io.Discard, "", 0)}

	ctx, err := ire.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registeredReplay, err := depend.Resolve[ReplayOutboxEvent]()
	assert.NoError(t, err)
	assert.NotNil(t, registeredReplay)
}
