package usecase

import (
	"time"

	"github.com/piresc/ridehail-admin/internal/pkg/models"
	"github.com/piresc/ridehail-admin/services/consistency"
	"github.com/piresc/ridehail-admin/services/trip"
)

type TripUC struct {
	tripRepo trip.TripRepo
	guard    consistency.Guard
	cfg      *models.Config
	now      func() time.Time
}

// NewTripUC creates a new trip usecase instance
func NewTripUC(tripRepo trip.TripRepo, guard consistency.Guard, cfg *models.Config) *TripUC {
	return &TripUC{
		tripRepo: tripRepo,
		guard:    guard,
		cfg:      cfg,
		now:      time.Now,
	}
}
