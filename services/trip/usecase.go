package trip

import (
	"context"
	"time"

	"github.com/piresc/ridehail-admin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/ridehail-admin/services/trip TripUC

// TripUC defines trip business operations
type TripUC interface {
	CreateTrip(ctx context.Context, req models.TripRequest) (*models.Trip, error)
	GetTripByID(ctx context.Context, id int64) (*models.Trip, error)
	ListTrips(ctx context.Context) ([]*models.Trip, error)
	UpdateTrip(ctx context.Context, id int64, patch models.TripPatch) (*models.Trip, error)
	UpdateTripStatus(ctx context.Context, id int64, status string) (*models.Trip, error)
	DeleteTrip(ctx context.Context, id int64) error
	FindTripsByDateRange(ctx context.Context, start, end time.Time) ([]*models.Trip, error)
	FindTripsByCaptainID(ctx context.Context, captainID int64) ([]*models.Trip, error)
	FindTripsByCustomerID(ctx context.Context, customerID int64) ([]*models.Trip, error)
	FindTripsByStatus(ctx context.Context, status string) ([]*models.Trip, error)
}
