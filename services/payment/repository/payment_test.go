package repository

import (
	"context"
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

var paymentCols = []string{"id", "amount", "payment_method", "payment_status", "payment_time", "trip_id", "created_at", "updated_at"}

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func TestCreatePayment(t *testing.T) {
	paidAt := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)
	in := &models.Payment{Amount: 25, PaymentMethod: models.PaymentMethodCash, PaymentStatus: models.PaymentStatusPending, PaymentTime: paidAt, TripID: 4}

	tests := []struct {
		name     string
		setup    func(mock sqlmock.Sqlmock)
		checkErr func(error) bool
	}{
		{
			name: "success",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO payments")).
					WithArgs(25.0, models.PaymentMethodCash, models.PaymentStatusPending, paidAt, int64(4)).
					WillReturnRows(sqlmock.NewRows(paymentCols).AddRow(1, 25.0, "cash", "pending", paidAt, int64(4), paidAt, paidAt))
			},
		},
		{
			name: "second payment for trip",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO payments")).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			checkErr: models.IsConflict,
		},
		{
			name: "trip deleted meanwhile",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO payments")).
					WillReturnError(&pgconn.PgError{Code: "23503"})
			},
			checkErr: models.IsNotFound,
		},
		{
			name: "driver failure",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO payments")).
					WillReturnError(errors.New("conn reset"))
			},
			checkErr: func(err error) bool {
				return err != nil && !models.IsConflict(err) && !models.IsNotFound(err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			tt.setup(mock)
			repo := NewPaymentRepository(&models.Config{}, db)

			got, err := repo.CreatePayment(context.Background(), in)

			if tt.checkErr != nil {
				assert.True(t, tt.checkErr(err))
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(1), got.ID)
				assert.Equal(t, models.PaymentMethodCash, got.PaymentMethod)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestFindPaymentsByTripID_NoPayment(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPaymentRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE trip_id = $1")).
		WithArgs(int64(8)).
		WillReturnRows(sqlmock.NewRows(paymentCols))

	got, err := repo.FindPaymentsByTripID(context.Background(), 8)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFindPaymentsByAmountGreaterThan(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPaymentRepository(&models.Config{}, db)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE amount > $1")).
		WithArgs(20.0).
		WillReturnRows(sqlmock.NewRows(paymentCols).AddRow(2, 30.0, "wallet", "completed", now, int64(5), now, now))

	got, err := repo.FindPaymentsByAmountGreaterThan(context.Background(), 20)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.PaymentStatusCompleted, got[0].PaymentStatus)
}

func TestUpdatePaymentKeepsTrip(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPaymentRepository(&models.Config{}, db)
	now := time.Now()
	in := &models.Payment{ID: 1, Amount: 40, PaymentMethod: models.PaymentMethodWallet, PaymentStatus: models.PaymentStatusCompleted, PaymentTime: now, TripID: 99}

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE payments")).
		WithArgs(40.0, models.PaymentMethodWallet, models.PaymentStatusCompleted, now, int64(1)).
		WillReturnRows(sqlmock.NewRows(paymentCols).AddRow(1, 40.0, "wallet", "completed", now, int64(4), now, now))

	got, err := repo.UpdatePayment(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.TripID)
}

func TestExistsByTripID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPaymentRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM payments WHERE trip_id = $1)")).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.ExistsByTripID(context.Background(), 4)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUpdatePaymentStatus_Absent(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPaymentRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE payments SET payment_status = $1")).
		WithArgs(models.PaymentStatusRefunded, int64(9)).
		WillReturnRows(sqlmock.NewRows(paymentCols))

	got, err := repo.UpdatePaymentStatus(context.Background(), 9, models.PaymentStatusRefunded)
	assert.NoError(t, err)
	assert.Nil(t, got)
}
