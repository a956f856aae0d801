package rating

import (
	"context"

	"github.com/piresc/ridehail-admin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/ridehail-admin/services/rating RatingUC,Aggregator

// RatingUC defines rating business operations
type RatingUC interface {
	CreateRating(ctx context.Context, req models.RatingRequest) (*models.Rating, error)
	GetRatingByID(ctx context.Context, id string) (*models.Rating, error)
	ListRatings(ctx context.Context) ([]*models.Rating, error)
	UpdateRating(ctx context.Context, id string, patch models.RatingPatch) (*models.Rating, error)
	DeleteRating(ctx context.Context, id string) error
	FindRatingsByEntity(ctx context.Context, entityID int64, entityType string) ([]*models.Rating, error)
	FindRatingsByEntityType(ctx context.Context, entityType string) ([]*models.Rating, error)
	FindRatingsAboveScore(ctx context.Context, min int) ([]*models.Rating, error)
	FindRatingsByScoreRange(ctx context.Context, min, max int) ([]*models.Rating, error)
	RecomputeCaptainRating(ctx context.Context, captainID int64) (*float64, error)
}

// Aggregator maintains the captain average as a projection of the rating set
type Aggregator interface {
	RecomputeCaptainAverage(ctx context.Context, captainID int64) (*float64, error)
}
