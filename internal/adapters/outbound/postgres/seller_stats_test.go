package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bazaarlabs/marketplace/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSellerStatsRepository_ApplyOrder(t *testing.T) {
	sellerID := uuid.MustParse("323e4567-e89b-12d3-a456-426614174000")

	tests := map[string]struct {
		expect func(sqlmock.Sqlmock)
		err    bool
	}{
		"success": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec("INSERT INTO seller_stats (seller_id,order_count,gross_cents) VALUES ($1,$2,$3) ON CONFLICT (seller_id) DO UPDATE SET order_count = seller_stats.order_count + 1, gross_cents = seller_stats.gross_cents + EXCLUDED.gross_cents").
					WithArgs(sellerID, 1, int64(2500)).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
			err: false,
		},
		"db-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec("INSERT INTO seller_stats (seller_id,order_count,gross_cents) VALUES ($1,$2,$3) ON CONFLICT (seller_id) DO UPDATE SET order_count = seller_stats.order_count + 1, gross_cents = seller_stats.gross_cents + EXCLUDED.gross_cents").
					WithArgs(sellerID, 1, int64(2500)).
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

			repo := NewSellerStatsRepository(db)
			gotErr := repo.ApplyOrder(context.Background(), sellerID, 2500)
			if tt.err {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSellerStatsRepository_GetStats(t *testing.T) {
	sellerID := uuid.MustParse("323e4567-e89b-12d3-a456-426614174000")

	tests := map[string]struct {
		expect    func(sqlmock.Sqlmock)
		wantStats domain.SellerStats
		wantErr   bool
	}{
		"success": {
			expect: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"seller_id", "order_count", "gross_cents"}).
					AddRow(sellerID, 4, 10000)
				m.ExpectQuery("SELECT seller_id, order_count, gross_cents FROM seller_stats WHERE seller_id = $1").
					WithArgs(sellerID).
					WillReturnRows(rows)
			},
			wantStats: domain.SellerStats{
				SellerID:   sellerID,
				OrderCount: 4,
				GrossCents: 10000,
			},
		},
		"no-orders-yet-returns-zero-totals": {
			expect: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"seller_id", "order_count", "gross_cents"})
				m.ExpectQuery("SELECT seller_id, order_count, gross_cents FROM seller_stats WHERE seller_id = $1").
					WithArgs(sellerID).
					WillReturnRows(rows)
			},
			wantStats: domain.SellerStats{
				SellerID: sellerID,
			},
		},
		"db-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("SELECT seller_id, order_count, gross_cents FROM seller_stats WHERE seller_id = $1").
					WithArgs(sellerID).
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

			repo := NewSellerStatsRepository(db)
			gotStats, gotErr := repo.GetStats(context.Background(), sellerID)
			if tt.wantErr {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
				assert.Equal(t, tt.wantStats, gotStats)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
