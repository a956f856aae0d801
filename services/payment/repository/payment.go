package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/ridehail-admin/internal/pkg/database"
	"github.com/piresc/ridehail-admin/internal/pkg/models"
)

const paymentColumns = `id, amount, payment_method, payment_status, payment_time, trip_id, created_at, updated_at`

type PaymentRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

func NewPaymentRepository(cfg *models.Config, db *sqlx.DB) *PaymentRepo {
	return &PaymentRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreatePayment inserts a payment. The unique trip_id column closes the
// race between the guard and the insert.
func (r *PaymentRepo) CreatePayment(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	query := `
		INSERT INTO payments (amount, payment_method, payment_status, payment_time, trip_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING ` + paymentColumns

	var created models.Payment
	err := r.db.QueryRowxContext(ctx, query,
		payment.Amount, payment.PaymentMethod, payment.PaymentStatus, payment.PaymentTime, payment.TripID,
	).StructScan(&created)
	if err != nil {
		switch {
		case database.IsUniqueViolation(err):
			return nil, models.NewConflictError("trip %d already has a payment", payment.TripID)
		case database.IsForeignKeyViolation(err):
			return nil, models.NewNotFoundError("trip %d", payment.TripID)
		}
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}
	return &created, nil
}

func (r *PaymentRepo) GetPaymentByID(ctx context.Context, id int64) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.GetContext(ctx, &payment, `SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return &payment, nil
}

func (r *PaymentRepo) ListPayments(ctx context.Context) ([]*models.Payment, error) {
	return r.list(ctx, `SELECT `+paymentColumns+` FROM payments ORDER BY id`)
}

func (r *PaymentRepo) FindPaymentsByTripID(ctx context.Context, tripID int64) ([]*models.Payment, error) {
	return r.list(ctx, `SELECT `+paymentColumns+` FROM payments WHERE trip_id = $1 ORDER BY id`, tripID)
}

// FindPaymentsByAmountGreaterThan is strict: amount > threshold
func (r *PaymentRepo) FindPaymentsByAmountGreaterThan(ctx context.Context, threshold float64) ([]*models.Payment, error) {
	return r.list(ctx, `SELECT `+paymentColumns+` FROM payments WHERE amount > $1 ORDER BY amount DESC, id`, threshold)
}

func (r *PaymentRepo) FindPaymentsByStatus(ctx context.Context, status models.PaymentStatus) ([]*models.Payment, error) {
	return r.list(ctx, `SELECT `+paymentColumns+` FROM payments WHERE payment_status = $1 ORDER BY id`, status)
}

func (r *PaymentRepo) FindPaymentsByMethod(ctx context.Context, method models.PaymentMethod) ([]*models.Payment, error) {
	return r.list(ctx, `SELECT `+paymentColumns+` FROM payments WHERE payment_method = $1 ORDER BY id`, method)
}

func (r *PaymentRepo) list(ctx context.Context, query string, args ...interface{}) ([]*models.Payment, error) {
	payments := []*models.Payment{}
	if err := r.db.SelectContext(ctx, &payments, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

// UpdatePayment never touches trip_id
func (r *PaymentRepo) UpdatePayment(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	query := `
		UPDATE payments
		SET amount = $1, payment_method = $2, payment_status = $3, payment_time = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING ` + paymentColumns

	var updated models.Payment
	err := r.db.QueryRowxContext(ctx, query,
		payment.Amount, payment.PaymentMethod, payment.PaymentStatus, payment.PaymentTime, payment.ID,
	).StructScan(&updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}
	return &updated, nil
}

func (r *PaymentRepo) UpdatePaymentStatus(ctx context.Context, id int64, status models.PaymentStatus) (*models.Payment, error) {
	query := `UPDATE payments SET payment_status = $1, updated_at = NOW() WHERE id = $2 RETURNING ` + paymentColumns

	var updated models.Payment
	if err := r.db.QueryRowxContext(ctx, query, status, id).StructScan(&updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update payment status: %w", err)
	}
	return &updated, nil
}

func (r *PaymentRepo) DeletePayment(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	return nil
}

func (r *PaymentRepo) ExistsByTripID(ctx context.Context, tripID int64) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM payments WHERE trip_id = $1)`, tripID); err != nil {
		return false, fmt.Errorf("failed to check payment for trip: %w", err)
	}
	return exists, nil
}
