package postgres

import (
	"context"
	"testing"
	"time"

	"leadgrid/internal/domain/entity"
	"leadgrid/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = sqlDB.Close()
	})

	return db, mock
}

func TestZoneRepository_ClaimForScrape(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(mock sqlmock.Sqlmock)
		wantAttempt int
		wantErr     error
	}{
		{
			name: "pending zone is claimed",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`UPDATE "zones" SET .* RETURNING "attempts"`).
					WillReturnRows(sqlmock.NewRows([]string{"attempts"}).AddRow(3))
			},
			wantAttempt: 3,
		},
		{
			name: "zone not pending",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`UPDATE "zones" SET`).WillReturnRows(sqlmock.NewRows([]string{"attempts"}))
			},
			wantErr: repository.ErrStatusConflict,
		},
		{
			name: "serialization failure is transient",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`UPDATE "zones" SET`).WillReturnError(&pgconn.PgError{Code: pgSerializationFailure})
			},
			wantErr: repository.ErrTransientStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.setup(mock)

			attempt, err := NewZoneRepository(db).ClaimForScrape(context.Background(), uuid.New(), time.Now().UTC())
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, tt.wantAttempt, attempt)

				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestZoneRepository_MarkCompleted_RequiresClaimAttempt(t *testing.T) {
	zoneID := uuid.New()

	t.Run("current claim completes", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`UPDATE "zones" SET .* AND attempts = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := NewZoneRepository(db).MarkCompleted(context.Background(), zoneID, 2, &entity.ZoneSummary{Total: 1}, time.Now().UTC())
		assert.NoError(t, err)
	})

	t.Run("released claim conflicts", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`UPDATE "zones" SET .* AND attempts = `).WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewZoneRepository(db).MarkCompleted(context.Background(), zoneID, 1, &entity.ZoneSummary{}, time.Now().UTC())
		assert.ErrorIs(t, err, repository.ErrStatusConflict)
	})
}

func TestZoneRepository_MarkFailed_ReleasedClaimConflicts(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(`UPDATE "zones" SET .* AND attempts = `).WillReturnResult(sqlmock.NewResult(0, 0))

	err := NewZoneRepository(db).MarkFailed(context.Background(), uuid.New(), 1, "provider down")
	assert.ErrorIs(t, err, repository.ErrStatusConflict)
}

func TestZoneRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "zones"`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := NewZoneRepository(db).FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrZoneNotFound)
}

func TestZoneRepository_FindByID_DecodesSummary(t *testing.T) {
	db, mock := newMockDB(t)
	zoneID := uuid.New()
	strategyID := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "strategy_id", "name", "category", "min_lat", "min_lng", "max_lat", "max_lng", "status", "attempts", "summary"}).
		AddRow(zoneID.String(), strategyID.String(), "z-1", "plumber", 25.0, 121.5, 25.1, 121.6, "completed", 1, []byte(`{"total":4,"qualified":2,"newly_qualified":1}`))
	mock.ExpectQuery(`SELECT \* FROM "zones"`).WillReturnRows(rows)

	zone, err := NewZoneRepository(db).FindByID(context.Background(), zoneID)
	require.NoError(t, err)
	assert.Equal(t, entity.ZoneStatusCompleted, zone.Status)
	assert.InDelta(t, 121.5, zone.Bounds.Min.Lon(), 1e-9)
	assert.InDelta(t, 25.1, zone.Bounds.Max.Lat(), 1e-9)
	require.NotNil(t, zone.Summary)
	assert.Equal(t, 4, zone.Summary.Total)
}

func TestZoneRepository_ResetFailed_Conflict(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(`UPDATE "zones" SET`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := NewZoneRepository(db).ResetFailed(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrStatusConflict)
}

func TestSiteRepository_TransferOwnership(t *testing.T) {
	t.Run("preview site is taken", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`UPDATE "sites" SET .*"ownership_tx_id"`).WillReturnResult(sqlmock.NewResult(0, 1))

		err := NewSiteRepository(db).TransferOwnership(context.Background(), uuid.New(), "tx_1", time.Now().UTC())
		assert.NoError(t, err)
	})

	t.Run("already owned", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`UPDATE "sites" SET`).WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewSiteRepository(db).TransferOwnership(context.Background(), uuid.New(), "tx_1", time.Now().UTC())
		assert.ErrorIs(t, err, repository.ErrStatusConflict)
	})
}

func TestSiteRepository_AssignOwner_OtherTransactionConflicts(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(`UPDATE "sites" SET "owner_customer_id"=.* ownership_tx_id = `).WillReturnResult(sqlmock.NewResult(0, 0))

	err := NewSiteRepository(db).AssignOwner(context.Background(), uuid.New(), "tx_1", uuid.New())
	assert.ErrorIs(t, err, repository.ErrStatusConflict)
}

func TestCustomerRepository_SetPasswordHash(t *testing.T) {
	t.Run("stored", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`UPDATE "customers" SET "password_hash"`).WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, NewCustomerRepository(db).SetPasswordHash(context.Background(), uuid.New(), "$2a$10$hash"))
	})

	t.Run("missing customer", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`UPDATE "customers" SET "password_hash"`).WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewCustomerRepository(db).SetPasswordHash(context.Background(), uuid.New(), "$2a$10$hash")
		assert.ErrorIs(t, err, repository.ErrCustomerNotFound)
	})
}

func TestActivationRepository_AcquireLease(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "expired lease is taken", affected: 1, want: true},
		{name: "lease still held", affected: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			mock.ExpectExec(`UPDATE "activations" SET`).WillReturnResult(sqlmock.NewResult(0, tt.affected))

			now := time.Now().UTC()
			got, err := NewActivationRepository(db).AcquireLease(context.Background(), uuid.New(), now, now.Add(time.Minute))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestActivationRepository_MarkNotifiedOnce(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(`UPDATE "activations" SET "notified_at"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "activations" SET "notified_at"`).WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewActivationRepository(db)
	id := uuid.New()

	first, err := repo.MarkNotified(context.Background(), id, time.Now().UTC())
	require.NoError(t, err)
	assert.True(t, first)

	second, err := repo.MarkNotified(context.Background(), id, time.Now().UTC())
	require.NoError(t, err)
	assert.False(t, second)
}

func TestShortLinkRepository_InsertIfAbsent(t *testing.T) {
	newLink := func() *entity.ShortLink {
		return &entity.ShortLink{
			ID:          uuid.New(),
			Token:       "abc1234",
			Destination: "https://example.com/site",
			LinkType:    "site",
		}
	}

	t.Run("inserted", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`INSERT INTO "short_links" .* ON CONFLICT .* DO NOTHING`).
			WillReturnRows(sqlmock.NewRows([]string{"clicks"}).AddRow(0))

		link := newLink()
		created, err := NewShortLinkRepository(db).InsertIfAbsent(context.Background(), link)
		require.NoError(t, err)
		assert.True(t, created)
		assert.True(t, link.Active)
	})

	t.Run("active link already exists", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`INSERT INTO "short_links"`).WillReturnRows(sqlmock.NewRows([]string{"clicks"}))

		created, err := NewShortLinkRepository(db).InsertIfAbsent(context.Background(), newLink())
		require.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("token collision", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`INSERT INTO "short_links"`).WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

		_, err := NewShortLinkRepository(db).InsertIfAbsent(context.Background(), newLink())
		assert.ErrorIs(t, err, repository.ErrTokenCollision)
	})
}

func TestShortLinkRepository_Deactivate_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(`UPDATE "short_links" SET`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := NewShortLinkRepository(db).Deactivate(context.Background(), uuid.New(), time.Now().UTC())
	assert.ErrorIs(t, err, repository.ErrShortLinkNotFound)
}

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError(nil, "noop"))
	assert.ErrorIs(t, translateError(&pgconn.PgError{Code: pgDeadlockDetected}, "x"), repository.ErrTransientStorage)
	assert.NotErrorIs(t, translateError(&pgconn.PgError{Code: pgNotNullViolation}, "x"), repository.ErrTransientStorage)
}
