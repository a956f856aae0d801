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

const captainColumns = `id, name, license_number, avg_rating_score, created_at, updated_at`

type CaptainRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

func NewCaptainRepository(cfg *models.Config, db *sqlx.DB) *CaptainRepo {
	return &CaptainRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateCaptain inserts a captain and returns it with the generated id
func (r *CaptainRepo) CreateCaptain(ctx context.Context, captain *models.Captain) (*models.Captain, error) {
	query := `
		INSERT INTO captains (name, license_number, avg_rating_score, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING ` + captainColumns

	var created models.Captain
	err := r.db.QueryRowxContext(ctx, query, captain.Name, captain.LicenseNumber, captain.AvgRatingScore).StructScan(&created)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, models.NewConflictError("license number %q already registered", captain.LicenseNumber)
		}
		return nil, fmt.Errorf("failed to create captain: %w", err)
	}
	return &created, nil
}

func (r *CaptainRepo) GetCaptainByID(ctx context.Context, id int64) (*models.Captain, error) {
	return r.getOne(ctx, `SELECT `+captainColumns+` FROM captains WHERE id = $1`, id)
}

func (r *CaptainRepo) GetCaptainByLicenseNumber(ctx context.Context, licenseNumber string) (*models.Captain, error) {
	return r.getOne(ctx, `SELECT `+captainColumns+` FROM captains WHERE license_number = $1`, licenseNumber)
}

func (r *CaptainRepo) getOne(ctx context.Context, query string, arg interface{}) (*models.Captain, error) {
	var captain models.Captain
	if err := r.db.GetContext(ctx, &captain, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get captain: %w", err)
	}
	return &captain, nil
}

func (r *CaptainRepo) ListCaptains(ctx context.Context) ([]*models.Captain, error) {
	return r.list(ctx, `SELECT `+captainColumns+` FROM captains ORDER BY id`)
}

// ListCaptainsByMinRating returns captains whose average is strictly above threshold
func (r *CaptainRepo) ListCaptainsByMinRating(ctx context.Context, threshold float64) ([]*models.Captain, error) {
	return r.list(ctx, `SELECT `+captainColumns+` FROM captains WHERE avg_rating_score > $1 ORDER BY avg_rating_score DESC, id`, threshold)
}

func (r *CaptainRepo) list(ctx context.Context, query string, args ...interface{}) ([]*models.Captain, error) {
	captains := []*models.Captain{}
	if err := r.db.SelectContext(ctx, &captains, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list captains: %w", err)
	}
	return captains, nil
}

// UpdateCaptain writes name and license; the rating average is left alone.
// Returns (nil, nil) when the captain no longer exists.
func (r *CaptainRepo) UpdateCaptain(ctx context.Context, captain *models.Captain) (*models.Captain, error) {
	query := `
		UPDATE captains
		SET name = $1, license_number = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING ` + captainColumns

	var updated models.Captain
	err := r.db.QueryRowxContext(ctx, query, captain.Name, captain.LicenseNumber, captain.ID).StructScan(&updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		if database.IsUniqueViolation(err) {
			return nil, models.NewConflictError("license number %q already registered", captain.LicenseNumber)
		}
		return nil, fmt.Errorf("failed to update captain: %w", err)
	}
	return &updated, nil
}

// UpdateAvgRatingScore writes only the average column
func (r *CaptainRepo) UpdateAvgRatingScore(ctx context.Context, id int64, avg float64) error {
	result, err := r.db.ExecContext(ctx, `UPDATE captains SET avg_rating_score = $1, updated_at = NOW() WHERE id = $2`, avg, id)
	if err != nil {
		return fmt.Errorf("failed to update captain rating: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return models.NewNotFoundError("captain %d", id)
	}
	return nil
}

// DeleteCaptain removes the captain; trips and payments cascade
func (r *CaptainRepo) DeleteCaptain(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM captains WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete captain: %w", err)
	}
	return nil
}

func (r *CaptainRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM captains WHERE id = $1)`, id); err != nil {
		return false, fmt.Errorf("failed to check captain: %w", err)
	}
	return exists, nil
}
