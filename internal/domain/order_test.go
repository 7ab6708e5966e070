package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestOrder_Validate(t *testing.T) {
	buyerID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	sellerID := uuid.MustParse("223e4567-e89b-12d3-a456-426614174000")

	tests := map[string]struct {
		order   Order
		wantErr string
	}{
		"valid": {
			order: Order{BuyerID: buyerID, SellerID: sellerID, TotalCents: 2500},
		},
		"missing-buyer": {
			order:   Order{SellerID: sellerID, TotalCents: 2500},
			wantErr: "buyer_id is required",
		},
		"missing-seller": {
			order:   Order{BuyerID: buyerID, TotalCents: 2500},
			wantErr: "seller_id is required",
		},
		"zero-total": {
			order:   Order{BuyerID: buyerID, SellerID: sellerID},
			wantErr: "total_cents must be positive",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.order.Validate()
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				assert.IsType(t, &ValidationErr{}, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOrder_TransitionTo(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := map[string]struct {
		from    OrderStatus
		to      OrderStatus
		wantErr bool
	}{
		"placed-to-paid":       {from: OrderStatus_PLACED, to: OrderStatus_PAID},
		"placed-to-cancelled":  {from: OrderStatus_PLACED, to: OrderStatus_CANCELLED},
		"paid-to-shipped":      {from: OrderStatus_PAID, to: OrderStatus_SHIPPED},
		"paid-to-cancelled":    {from: OrderStatus_PAID, to: OrderStatus_CANCELLED},
		"placed-to-shipped":    {from: OrderStatus_PLACED, to: OrderStatus_SHIPPED, wantErr: true},
		"shipped-to-cancelled": {from: OrderStatus_SHIPPED, to: OrderStatus_CANCELLED, wantErr: true},
		"cancelled-to-paid":    {from: OrderStatus_CANCELLED, to: OrderStatus_PAID, wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			order := Order{Status: tt.from}

			err := order.TransitionTo(tt.to, now)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.from, order.Status)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.to, order.Status)
			assert.Equal(t, now, order.UpdatedAt)
		})
	}
}
