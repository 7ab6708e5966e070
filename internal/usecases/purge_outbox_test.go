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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPurgeOutboxImpl_Execute(t *testing.T) {
	fixedTime := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	threshold := fixedTime.Add(-7 * 24 * time.Hour)

	tests := map[string]struct {
		setExpectations func(uow *domain_mocks.MockUnitOfWork)
		expectedErr     error
	}{
		"success-sweeps-both-tables": {
			setExpectations: func(uow *domain_mocks.MockUnitOfWork) {
				outbox := domain_mocks.NewMockOutboxRepository(t)
				processed := domain_mocks.NewMockProcessedEventRepository(t)

				uow.EXPECT().Outbox().Return(outbox)
				uow.EXPECT().ProcessedEvents().Return(processed)
				uow.EXPECT().
					Execute(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
						return fn(uow)
					})

				outbox.EXPECT().DeleteSentBefore(mock.Anything, threshold).Return(int64(12), nil)
				processed.EXPECT().DeleteProcessedBefore(mock.Anything, threshold).Return(int64(8), nil)
			},
			expectedErr: nil,
		},
		"delete-sent-error": {
			setExpectations: func(uow *domain_mocks.MockUnitOfWork) {
				outbox := domain_mocks.NewMockOutboxRepository(t)

				uow.EXPECT().Outbox().Return(outbox)
				uow.EXPECT().
					Execute(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
						return fn(uow)
					})

				outbox.EXPECT().DeleteSentBefore(mock.Anything, threshold).
					Return(int64(0), errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
		"delete-markers-error": {
			setExpectations: func(uow *domain_mocks.MockUnitOfWork) {
				outbox := domain_mocks.NewMockOutboxRepository(t)
				processed := domain_mocks.NewMockProcessedEventRepository(t)

				uow.EXPECT().Outbox().Return(outbox)
				uow.EXPECT().ProcessedEvents().Return(processed)
				uow.EXPECT().
					Execute(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
						return fn(uow)
					})

				outbox.EXPECT().DeleteSentBefore(mock.Anything, threshold).Return(int64(12), nil)
				processed.EXPECT().DeleteProcessedBefore(mock.Anything, threshold).
					Return(int64(0), errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			uow := domain_mocks.NewMockUnitOfWork(t)
			timeProvider := domain_mocks.NewMockCurrentTimeProvider(t)
			timeProvider.EXPECT().Now().Return(fixedTime)

			if tt.setExpectations != nil {
				tt.setExpectations(uow)
			}

			purge := NewPurgeOutboxImpl(uow, timeProvider, log.New(io.Discard, "", 0), 7)
			gotErr := purge.Execute(context.Background())

			assert.Equal(t, tt.expectedErr, gotErr)
		})
	}
}

func TestInitPurgeOutbox_Initialize(t *testing.T) {
	ipo := InitPurgeOutbox{Logger: log.New(io.Discard, "", 0), RetentionDays: 7}

	ctx, err := ipo.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registeredPurge, err := depend.Resolve[PurgeOutbox]()
	assert.NoError(t, err)
	assert.NotNil(t, registeredPurge)
}
