package captain

import (
	"context"

	"github.com/piresc/ridehail-admin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/ridehail-admin/services/captain CaptainRepo

// CaptainRepo is the entity store for captains. Lookups return (nil, nil)
// when the row does not exist.
type CaptainRepo interface {
	CreateCaptain(ctx context.Context, captain *models.Captain) (*models.Captain, error)
	GetCaptainByID(ctx context.Context, id int64) (*models.Captain, error)
	GetCaptainByLicenseNumber(ctx context.Context, licenseNumber string) (*models.Captain, error)
	ListCaptains(ctx context.Context) ([]*models.Captain, error)
	ListCaptainsByMinRating(ctx context.Context, threshold float64) ([]*models.Captain, error)
	UpdateCaptain(ctx context.Context, captain *models.Captain) (*models.Captain, error)
	UpdateAvgRatingScore(ctx context.Context, id int64, avg float64) error
	DeleteCaptain(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
}
