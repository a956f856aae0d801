package captain

import (
	"context"

	"github.com/piresc/ridehail-admin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/ridehail-admin/services/captain CaptainUC

// CaptainUC defines captain business operations
type CaptainUC interface {
	CreateCaptain(ctx context.Context, req models.CaptainRequest) (*models.Captain, error)
	GetCaptainByID(ctx context.Context, id int64) (*models.Captain, error)
	GetCaptainByLicenseNumber(ctx context.Context, licenseNumber string) (*models.Captain, error)
	ListCaptains(ctx context.Context) ([]*models.Captain, error)
	ListCaptainsByMinRating(ctx context.Context, threshold float64) ([]*models.Captain, error)
	UpdateCaptain(ctx context.Context, id int64, patch models.CaptainPatch) (*models.Captain, error)
	DeleteCaptain(ctx context.Context, id int64) error
}
