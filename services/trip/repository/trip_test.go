package repository

import (
	"context"
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

var tripCols = []string{"id", "trip_date", "origin", "destination", "trip_cost", "status", "captain_id", "customer_id", "created_at", "updated_at"}

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func tripRow(rows *sqlmock.Rows, id int64, date time.Time, status string) *sqlmock.Rows {
	return rows.AddRow(id, date, "A", "B", 10.5, status, int64(1), int64(2), date, date)
}

func TestCreateTrip(t *testing.T) {
	date := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)
	in := &models.Trip{TripDate: date, Origin: "A", Destination: "B", TripCost: 10.5, Status: models.TripStatusRequested, CaptainID: 1, CustomerID: 2}

	tests := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, trip *models.Trip, err error)
	}{
		{
			name: "success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO trips")).
					WithArgs(date, "A", "B", 10.5, models.TripStatusRequested, int64(1), int64(2)).
					WillReturnRows(tripRow(sqlmock.NewRows(tripCols), 7, date, "requested"))
			},
			assertFunc: func(t *testing.T, trip *models.Trip, err error) {
				require.NoError(t, err)
				assert.Equal(t, int64(7), trip.ID)
				assert.Equal(t, models.TripStatusRequested, trip.Status)
			},
		},
		{
			name: "parent row vanished",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO trips")).
					WillReturnError(&pgconn.PgError{Code: "23503"})
			},
			assertFunc: func(t *testing.T, trip *models.Trip, err error) {
				assert.Nil(t, trip)
				assert.True(t, models.IsNotFound(err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			tt.mockSetup(mock)
			repo := NewTripRepository(&models.Config{}, db)

			trip, err := repo.CreateTrip(context.Background(), in)

			tt.assertFunc(t, trip, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestFindTripsByDateRange(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTripRepository(&models.Config{}, db)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE trip_date BETWEEN $1 AND $2")).
		WithArgs(start, end).
		WillReturnRows(tripRow(tripRow(sqlmock.NewRows(tripCols), 1, start, "completed"), 2, end, "completed"))

	trips, err := repo.FindTripsByDateRange(context.Background(), start, end)
	require.NoError(t, err)
	require.Len(t, trips, 2)
	assert.Equal(t, start, trips[0].TripDate)
	assert.Equal(t, end, trips[1].TripDate)
}

func TestFindTripsByCaptainID_Empty(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTripRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE captain_id = $1")).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(tripCols))

	trips, err := repo.FindTripsByCaptainID(context.Background(), 5)
	require.NoError(t, err)
	assert.NotNil(t, trips)
	assert.Empty(t, trips)
}

func TestUpdateTripStatus(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTripRepository(&models.Config{}, db)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE trips SET status = $1")).
		WithArgs(models.TripStatusCompleted, int64(1)).
		WillReturnRows(tripRow(sqlmock.NewRows(tripCols), 1, now, "completed"))

	trip, err := repo.UpdateTripStatus(context.Background(), 1, models.TripStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.TripStatusCompleted, trip.Status)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE trips SET status = $1")).
		WithArgs(models.TripStatusCompleted, int64(2)).
		WillReturnRows(sqlmock.NewRows(tripCols))

	trip, err = repo.UpdateTripStatus(context.Background(), 2, models.TripStatusCompleted)
	assert.NoError(t, err)
	assert.Nil(t, trip)
}

func TestGetTripByID_Absent(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTripRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM trips WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(tripCols))

	trip, err := repo.GetTripByID(context.Background(), 3)
	assert.NoError(t, err)
	assert.Nil(t, trip)
}
