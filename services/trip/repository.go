package trip

import (
	"context"
	"time"

	"github.com/piresc/ridehail-admin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/ridehail-admin/services/trip TripRepo

// TripRepo is the entity store for trips
type TripRepo interface {
	CreateTrip(ctx context.Context, trip *models.Trip) (*models.Trip, error)
	GetTripByID(ctx context.Context, id int64) (*models.Trip, error)
	ListTrips(ctx context.Context) ([]*models.Trip, error)
	UpdateTrip(ctx context.Context, trip *models.Trip) (*models.Trip, error)
	UpdateTripStatus(ctx context.Context, id int64, status models.TripStatus) (*models.Trip, error)
	DeleteTrip(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
	FindTripsByCaptainID(ctx context.Context, captainID int64) ([]*models.Trip, error)
	FindTripsByCustomerID(ctx context.Context, customerID int64) ([]*models.Trip, error)
	FindTripsByDateRange(ctx context.Context, start, end time.Time) ([]*models.Trip, error)
	FindTripsByStatus(ctx context.Context, status models.TripStatus) ([]*models.Trip, error)
}
