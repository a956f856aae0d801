package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/ridehail-admin/internal/pkg/database"
	"github.com/piresc/ridehail-admin/internal/pkg/models"
)

const tripColumns = `id, trip_date, origin, destination, trip_cost, status, captain_id, customer_id, created_at, updated_at`

type TripRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

func NewTripRepository(cfg *models.Config, db *sqlx.DB) *TripRepo {
	return &TripRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateTrip inserts a trip. A captain or customer deleted after the guard
// ran surfaces as not found.
func (r *TripRepo) CreateTrip(ctx context.Context, trip *models.Trip) (*models.Trip, error) {
	query := `
		INSERT INTO trips (trip_date, origin, destination, trip_cost, status, captain_id, customer_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING ` + tripColumns

	var created models.Trip
	err := r.db.QueryRowxContext(ctx, query,
		trip.TripDate, trip.Origin, trip.Destination, trip.TripCost, trip.Status, trip.CaptainID, trip.CustomerID,
	).StructScan(&created)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return nil, models.NewNotFoundError("captain %d or customer %d", trip.CaptainID, trip.CustomerID)
		}
		return nil, fmt.Errorf("failed to create trip: %w", err)
	}
	return &created, nil
}

func (r *TripRepo) GetTripByID(ctx context.Context, id int64) (*models.Trip, error) {
	var trip models.Trip
	err := r.db.GetContext(ctx, &trip, `SELECT `+tripColumns+` FROM trips WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	return &trip, nil
}

func (r *TripRepo) ListTrips(ctx context.Context) ([]*models.Trip, error) {
	return r.list(ctx, `SELECT `+tripColumns+` FROM trips ORDER BY id`)
}

func (r *TripRepo) FindTripsByCaptainID(ctx context.Context, captainID int64) ([]*models.Trip, error) {
	return r.list(ctx, `SELECT `+tripColumns+` FROM trips WHERE captain_id = $1 ORDER BY trip_date, id`, captainID)
}

func (r *TripRepo) FindTripsByCustomerID(ctx context.Context, customerID int64) ([]*models.Trip, error) {
	return r.list(ctx, `SELECT `+tripColumns+` FROM trips WHERE customer_id = $1 ORDER BY trip_date, id`, customerID)
}

// FindTripsByDateRange is inclusive on both ends
func (r *TripRepo) FindTripsByDateRange(ctx context.Context, start, end time.Time) ([]*models.Trip, error) {
	return r.list(ctx, `SELECT `+tripColumns+` FROM trips WHERE trip_date BETWEEN $1 AND $2 ORDER BY trip_date, id`, start, end)
}

func (r *TripRepo) FindTripsByStatus(ctx context.Context, status models.TripStatus) ([]*models.Trip, error) {
	return r.list(ctx, `SELECT `+tripColumns+` FROM trips WHERE status = $1 ORDER BY trip_date, id`, status)
}

func (r *TripRepo) list(ctx context.Context, query string, args ...interface{}) ([]*models.Trip, error) {
	trips := []*models.Trip{}
	if err := r.db.SelectContext(ctx, &trips, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	return trips, nil
}

func (r *TripRepo) UpdateTrip(ctx context.Context, trip *models.Trip) (*models.Trip, error) {
	query := `
		UPDATE trips
		SET trip_date = $1, origin = $2, destination = $3, trip_cost = $4, status = $5,
		    captain_id = $6, customer_id = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING ` + tripColumns

	var updated models.Trip
	err := r.db.QueryRowxContext(ctx, query,
		trip.TripDate, trip.Origin, trip.Destination, trip.TripCost, trip.Status, trip.CaptainID, trip.CustomerID, trip.ID,
	).StructScan(&updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		if database.IsForeignKeyViolation(err) {
			return nil, models.NewNotFoundError("captain %d or customer %d", trip.CaptainID, trip.CustomerID)
		}
		return nil, fmt.Errorf("failed to update trip: %w", err)
	}
	return &updated, nil
}

func (r *TripRepo) UpdateTripStatus(ctx context.Context, id int64, status models.TripStatus) (*models.Trip, error) {
	query := `UPDATE trips SET status = $1, updated_at = NOW() WHERE id = $2 RETURNING ` + tripColumns

	var updated models.Trip
	if err := r.db.QueryRowxContext(ctx, query, status, id).StructScan(&updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update trip status: %w", err)
	}
	return &updated, nil
}

// DeleteTrip removes the trip and its payment
func (r *TripRepo) DeleteTrip(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM trips WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}
	return nil
}

func (r *TripRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM trips WHERE id = $1)`, id); err != nil {
		return false, fmt.Errorf("failed to check trip: %w", err)
	}
	return exists, nil
}
