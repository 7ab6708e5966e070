package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bazaarlabs/marketplace/internal/domain"
	domain_mocks "github.com/bazaarlabs/marketplace/internal/domain/mocks"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPlaceOrderImpl_Execute(t *testing.T) {
	fixedTime := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	orderID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	buyerID := uuid.MustParse("223e4567-e89b-12d3-a456-426614174000")
	sellerID := uuid.MustParse("323e4567-e89b-12d3-a456-426614174000")

	expectedOrder := domain.Order{
		ID:         orderID,
		BuyerID:    buyerID,
		SellerID:   sellerID,
		TotalCents: 2500,
		Status:     domain.OrderStatus_PLACED,
		CreatedAt:  fixedTime,
		UpdatedAt:  fixedTime,
	}

	tests := map[string]struct {
		buyerID         uuid.UUID
		sellerID        uuid.UUID
		totalCents      int64
		setExpectations func(uow *domain_mocks.MockUnitOfWork)
		expectedOrder   domain.Order
		expectedErr     error
	}{
		"success-order-and-event-staged-together": {
			buyerID:    buyerID,
			sellerID:   sellerID,
			totalCents: 2500,
			setExpectations: func(uow *domain_mocks.MockUnitOfWork) {
				orderRepo := domain_mocks.NewMockOrderRepository(t)
				outbox := domain_mocks.NewMockOutboxRepository(t)

				uow.EXPECT().Order().Return(orderRepo)
				uow.EXPECT().Outbox().Return(outbox)
				uow.EXPECT().
					Execute(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
						return fn(uow)
					})

				orderRepo.EXPECT().CreateOrder(mock.Anything, expectedOrder).Return(nil)

				outbox.EXPECT().AppendEvent(
					mock.Anything,
					mock.MatchedBy(func(event domain.OutboxEvent) bool {
						return event.AggregateType == domain.AggregateType_Order &&
							event.AggregateID == orderID &&
							event.EventType == domain.EventType_ORDER_CREATED &&
							event.Status == domain.OutboxStatus_Pending &&
							event.RetryCount == 0 &&
							event.CreatedAt == fixedTime
					}),
				).Return(nil)
			},
			expectedOrder: expectedOrder,
			expectedErr:   nil,
		},
		"validation-error-nothing-written": {
			buyerID:     buyerID,
			sellerID:    sellerID,
			totalCents:  0,
			expectedErr: domain.NewValidationErr("total_cents must be positive"),
		},
		"create-order-error-rolls-back-event": {
			buyerID:    buyerID,
			sellerID:   sellerID,
			totalCents: 2500,
			setExpectations: func(uow *domain_mocks.MockUnitOfWork) {
				orderRepo := domain_mocks.NewMockOrderRepository(t)

				uow.EXPECT().Order().Return(orderRepo)
				uow.EXPECT().
					Execute(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
						return fn(uow)
					})

				orderRepo.EXPECT().CreateOrder(mock.Anything, expectedOrder).
					Return(errors.New("database error"))
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

			placeOrder := NewPlaceOrderImpl(uow, timeProvider)
			placeOrder.createUUID = func() uuid.UUID { return orderID }

			gotOrder, gotErr := placeOrder.Execute(context.Background(), tt.buyerID, tt.sellerID, tt.totalCents)

			assert.Equal(t, tt.expectedErr, gotErr)
			assert.Equal(t, tt.expectedOrder, gotOrder)
		})
	}
}

func TestInitPlaceOrder_Initialize(t *testing.T) {
	ipo := InitPlaceOrder{}

	ctx, err := ipo.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registeredPlaceOrder, err := depend.Resolve[PlaceOrder]()
	assert.NoError(t, err)
	assert.NotNil(t, registeredPlaceOrder)
}
