package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/ridehail-admin/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var captainCols = []string{"id", "name", "license_number", "avg_rating_score", "created_at", "updated_at"}

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func TestCreateCaptain(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, captain *models.Captain, err error)
	}{
		{
			name: "success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO captains")).
					WithArgs("Ali", "LIC1", nil).
					WillReturnRows(sqlmock.NewRows(captainCols).AddRow(1, "Ali", "LIC1", nil, now, now))
			},
			assertFunc: func(t *testing.T, captain *models.Captain, err error) {
				require.NoError(t, err)
				assert.Equal(t, int64(1), captain.ID)
				assert.Equal(t, "LIC1", captain.LicenseNumber)
				assert.Nil(t, captain.AvgRatingScore)
			},
		},
		{
			name: "duplicate license",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO captains")).
					WithArgs("Ali", "LIC1", nil).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			assertFunc: func(t *testing.T, captain *models.Captain, err error) {
				assert.Nil(t, captain)
				assert.True(t, models.IsConflict(err))
			},
		},
		{
			name: "driver error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO captains")).
					WillReturnError(errors.New("connection reset"))
			},
			assertFunc: func(t *testing.T, captain *models.Captain, err error) {
				assert.Nil(t, captain)
				assert.ErrorContains(t, err, "failed to create captain")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			repo := NewCaptainRepository(&models.Config{}, db)
			tt.mockSetup(mock)

			captain, err := repo.CreateCaptain(context.Background(), &models.Captain{Name: "Ali", LicenseNumber: "LIC1"})

			tt.assertFunc(t, captain, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetCaptainByID(t *testing.T) {
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewCaptainRepository(&models.Config{}, db)

		mock.ExpectQuery(regexp.QuoteMeta("FROM captains WHERE id = $1")).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(captainCols).AddRow(1, "Ali", "LIC1", 4.5, now, now))

		captain, err := repo.GetCaptainByID(context.Background(), 1)
		require.NoError(t, err)
		require.NotNil(t, captain.AvgRatingScore)
		assert.Equal(t, 4.5, *captain.AvgRatingScore)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent is nil without error", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewCaptainRepository(&models.Config{}, db)

		mock.ExpectQuery(regexp.QuoteMeta("FROM captains WHERE id = $1")).
			WithArgs(int64(9)).
			WillReturnError(sql.ErrNoRows)

		captain, err := repo.GetCaptainByID(context.Background(), 9)
		assert.NoError(t, err)
		assert.Nil(t, captain)
	})
}

func TestGetCaptainByLicenseNumber(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCaptainRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE license_number = $1")).
		WithArgs("LIC1").
		WillReturnRows(sqlmock.NewRows(captainCols).AddRow(3, "Ali", "LIC1", nil, time.Now(), time.Now()))

	captain, err := repo.GetCaptainByLicenseNumber(context.Background(), "LIC1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), captain.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListCaptains(t *testing.T) {
	t.Run("empty table gives empty slice", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewCaptainRepository(&models.Config{}, db)

		mock.ExpectQuery(regexp.QuoteMeta("FROM captains ORDER BY id")).
			WillReturnRows(sqlmock.NewRows(captainCols))

		captains, err := repo.ListCaptains(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, captains)
		assert.Empty(t, captains)
	})

	t.Run("by min rating", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewCaptainRepository(&models.Config{}, db)

		mock.ExpectQuery(regexp.QuoteMeta("WHERE avg_rating_score > $1")).
			WithArgs(4.0).
			WillReturnRows(sqlmock.NewRows(captainCols).
				AddRow(1, "Ali", "LIC1", 4.8, time.Now(), time.Now()).
				AddRow(2, "Budi", "LIC2", 4.2, time.Now(), time.Now()))

		captains, err := repo.ListCaptainsByMinRating(context.Background(), 4.0)
		require.NoError(t, err)
		assert.Len(t, captains, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateCaptain(t *testing.T) {
	t.Run("missing row", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewCaptainRepository(&models.Config{}, db)

		mock.ExpectQuery(regexp.QuoteMeta("UPDATE captains")).
			WithArgs("Ali", "LIC9", int64(5)).
			WillReturnRows(sqlmock.NewRows(captainCols))

		captain, err := repo.UpdateCaptain(context.Background(), &models.Captain{ID: 5, Name: "Ali", LicenseNumber: "LIC9"})
		assert.NoError(t, err)
		assert.Nil(t, captain)
	})

	t.Run("license taken", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewCaptainRepository(&models.Config{}, db)

		mock.ExpectQuery(regexp.QuoteMeta("UPDATE captains")).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		_, err := repo.UpdateCaptain(context.Background(), &models.Captain{ID: 5, Name: "Ali", LicenseNumber: "LIC2"})
		assert.True(t, models.IsConflict(err))
	})
}

func TestUpdateAvgRatingScore(t *testing.T) {
	t.Run("writes only the average", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewCaptainRepository(&models.Config{}, db)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE captains SET avg_rating_score = $1")).
			WithArgs(4.0, int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateAvgRatingScore(context.Background(), 1, 4.0))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("captain gone", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewCaptainRepository(&models.Config{}, db)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE captains SET avg_rating_score = $1")).
			WithArgs(3.5, int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateAvgRatingScore(context.Background(), 2, 3.5)
		assert.True(t, models.IsNotFound(err))
	})
}

func TestDeleteAndExists(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCaptainRepository(&models.Config{}, db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM captains WHERE id = $1")).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM captains WHERE id = $1)")).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	assert.NoError(t, repo.DeleteCaptain(context.Background(), 4))

	exists, err := repo.ExistsByID(context.Background(), 4)
	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
