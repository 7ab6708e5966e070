package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bazaarlabs/marketplace/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestOrderRepository_CreateOrder(t *testing.T) {
	order := domain.Order{
		ID:         uuid.MustParse("123e4567-e89b-12d3-a456-426614174000"),
		BuyerID:    uuid.MustParse("223e4567-e89b-12d3-a456-426614174000"),
		SellerID:   uuid.MustParse("323e4567-e89b-12d3-a456-426614174000"),
		TotalCents: 2500,
		Status:     domain.OrderStatus_PLACED,
		CreatedAt:  time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
		UpdatedAt:  time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
	}

	tests := map[string]struct {
		expect func(sqlmock.Sqlmock)
		err    bool
	}{
		"success": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec("INSERT INTO orders (id,buyer_id,seller_id,total_cents,status,created_at,updated_at) VALUES ($1,$2,$3,$4,$5,$6,$7)").
					WithArgs(
						order.ID,
						order.BuyerID,
						order.SellerID,
						order.TotalCents,
						"PLACED",
						order.CreatedAt,
						order.UpdatedAt,
					).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
			err: false,
		},
		"db-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec("INSERT INTO orders (id,buyer_id,seller_id,total_cents,status,created_at,updated_at) VALUES ($1,$2,$3,$4,$5,$6,$7)").
					WithArgs(
						order.ID,
						order.BuyerID,
						order.SellerID,
						order.TotalCents,
						"PLACED",
						order.CreatedAt,
						order.UpdatedAt,
					).
					WillReturnError(errors.New("db error"))
			},
			err: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() // nolint:errcheck

			tt.expect(mock)

			repo := NewOrderRepository(db)
			gotErr := repo.CreateOrder(context.Background(), order)
			if tt.err {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestOrderRepository_GetOrder(t *testing.T) {
	id := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	buyerID := uuid.MustParse("223e4567-e89b-12d3-a456-426614174000")
	sellerID := uuid.MustParse("323e4567-e89b-12d3-a456-426614174000")
	t1 := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := map[string]struct {
		expect       func(sqlmock.Sqlmock)
		wantErr      bool
		wantNotFound bool
	}{
		"success": {
			expect: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(orderFields).
					AddRow(id, buyerID, sellerID, 2500, "PLACED", t1, t1)
				m.ExpectQuery("SELECT id, buyer_id, seller_id, total_cents, status, created_at, updated_at FROM orders WHERE id = $1").
					WithArgs(id).
					WillReturnRows(rows)
			},
		},
		"not-found": {
			expect: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(orderFields)
				m.ExpectQuery("SELECT id, buyer_id, seller_id, total_cents, status, created_at, updated_at FROM orders WHERE id = $1").
					WithArgs(id).
					WillReturnRows(rows)
			},
			wantErr:      true,
			wantNotFound: true,
		},
		"db-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("SELECT id, buyer_id, seller_id, total_cents, status, created_at, updated_at FROM orders WHERE id = $1").
					WithArgs(id).
					WillReturnError(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() // nolint:errcheck

			tt.expect(mock)

			repo := NewOrderRepository(db)
			got, gotErr := repo.GetOrder(context.Background(), id)
			if tt.wantErr {
				assert.Error(t, gotErr)
				if tt.wantNotFound {
					assert.IsType(t, &domain.NotFoundErr{}, gotErr)
				}
			} else {
				assert.NoError(t, gotErr)
				assert.Equal(t, id, got.ID)
				assert.Equal(t, domain.OrderStatus_PLACED, got.Status)
				assert.Equal(t, int64(2500), got.TotalCents)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestOrderRepository_UpdateOrder(t *testing.T) {
	order := domain.Order{
		ID:        uuid.MustParse("123e4567-e89b-12d3-a456-426614174000"),
		Status:    domain.OrderStatus_PAID,
		UpdatedAt: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
	}

	tests := map[string]struct {
		expect func(sqlmock.Sqlmock)
		err    bool
	}{
		"success": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec("UPDATE orders SET status = $1, updated_at = $2 WHERE id = $3").
					WithArgs("PAID", order.UpdatedAt, order.ID).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
			err: false,
		},
		"db-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec("UPDATE orders SET status = $1, updated_at = $2 WHERE id = $3").
					WithArgs("PAID", order.UpdatedAt, order.ID).
					WillReturnError(errors.New("db error"))
			},
			err: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() // nolint:errcheck

			tt.expect(mock)

			repo := NewOrderRepository(db)
			gotErr := repo.UpdateOrder(context.Background(), order)
			if tt.err {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
