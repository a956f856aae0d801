package rating

import (
	"context"

	"github.com/piresc/ridehail-admin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/ridehail-admin/services/rating RatingRepo,CaptainAverageStore

// RatingRepo is the document store for ratings. Ids are hex object ids;
// a malformed or unknown id reads as absent.
type RatingRepo interface {
	CreateRating(ctx context.Context, rating *models.Rating) (*models.Rating, error)
	GetRatingByID(ctx context.Context, id string) (*models.Rating, error)
	ListRatings(ctx context.Context) ([]*models.Rating, error)
	UpdateRating(ctx context.Context, rating *models.Rating) (*models.Rating, error)
	DeleteRating(ctx context.Context, id string) (*models.Rating, error)
	FindByEntity(ctx context.Context, entityID int64, entityType string) ([]*models.Rating, error)
	FindByEntityType(ctx context.Context, entityType string) ([]*models.Rating, error)
	FindByScoreAtLeast(ctx context.Context, min int) ([]*models.Rating, error)
	FindByScoreBetween(ctx context.Context, min, max int) ([]*models.Rating, error)
}

// CaptainAverageStore writes the projected average back to the captain
type CaptainAverageStore interface {
	UpdateAvgRatingScore(ctx context.Context, id int64, avg float64) error
}
