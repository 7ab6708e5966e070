package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bazaarlabs/marketplace/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestProcessedEventRepository_Exists(t *testing.T) {
	eventID := "123e4567-e89b-12d3-a456-426614174000"

	tests := map[string]struct {
		expect     func(sqlmock.Sqlmock)
		wantExists bool
		wantErr    bool
	}{
		"marker-present": {
			expect: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"count"}).AddRow(1)
				m.ExpectQuery("SELECT COUNT(*) FROM processed_events WHERE event_id = $1").
					WithArgs(eventID).
					WillReturnRows(rows)
			},
			wantExists: true,
		},
		"marker-absent": {
			expect: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"count"}).AddRow(0)
				m.ExpectQuery("SELECT COUNT(*) FROM processed_events WHERE event_id = $1").
					WithArgs(eventID).
					WillReturnRows(rows)
			},
			wantExists: false,
		},
		"db-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("SELECT COUNT(*) FROM processed_events WHERE event_id = $1").
					WithArgs(eventID).
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

			repo := NewProcessedEventRepository(db)
			gotExists, gotErr := repo.Exists(context.Background(), eventID)
			if tt.wantErr {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
				assert.Equal(t, tt.wantExists, gotExists)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProcessedEventRepository_Save(t *testing.T) {
	event := domain.ProcessedEvent{
		EventID:     "123e4567-e89b-12d3-a456-426614174000",
		EventType:   domain.EventType_ORDER_CREATED,
		ProcessedAt: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
	}

	tests := map[string]struct {
		expect func(sqlmock.Sqlmock)
		err    bool
	}{
		"success": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec("INSERT INTO processed_events (event_id,event_type,processed_at) VALUES ($1,$2,$3)").
					WithArgs(event.EventID, "OrderCreated", event.ProcessedAt).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
			err: false,
		},
		"db-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec("INSERT INTO processed_events (event_id,event_type,processed_at) VALUES ($1,$2,$3)").
					WithArgs(event.EventID, "OrderCreated", event.ProcessedAt).
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

			repo := NewProcessedEventRepository(db)
			gotErr := repo.Save(context.Background(), event)
			if tt.err {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProcessedEventRepository_DeleteProcessedBefore(t *testing.T) {
	threshold := time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC)

	tests := map[string]struct {
		expect      func(sqlmock.Sqlmock)
		wantDeleted int64
		wantErr     bool
	}{
		"success": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec("DELETE FROM processed_events WHERE processed_at < $1").
					WithArgs(threshold).
					WillReturnResult(sqlmock.NewResult(0, 8))
			},
			wantDeleted: 8,
		},
		"db-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec("DELETE FROM processed_events WHERE processed_at < $1").
					WithArgs(threshold).
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

			repo := NewProcessedEventRepository(db)
			gotDeleted, gotErr := repo.DeleteProcessedBefore(context.Background(), threshold)
			if tt.wantErr {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
				assert.Equal(t, tt.wantDeleted, gotDeleted)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
