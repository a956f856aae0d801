package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/piresc/ridehail-admin/internal/pkg/logger"
	"github.com/piresc/ridehail-admin/internal/pkg/models"
)

// CreateTrip requires both the captain and the customer to exist
func (uc *TripUC) CreateTrip(ctx context.Context, req models.TripRequest) (*models.Trip, error) {
	if req.CaptainID == nil {
		return nil, models.NewValidationError("captainId is required")
	}
	if req.CustomerID == nil {
		return nil, models.NewValidationError("customerId is required")
	}

	t := &models.Trip{
		Origin:      strings.TrimSpace(req.Origin),
		Destination: strings.TrimSpace(req.Destination),
		TripCost:    req.TripCost,
		Status:      models.TripStatusRequested,
		CaptainID:   *req.CaptainID,
		CustomerID:  *req.CustomerID,
		TripDate:    uc.now().UTC(),
	}
	if req.TripDate != nil {
		t.TripDate = *req.TripDate
	}
	if strings.TrimSpace(req.Status) != "" {
		status, ok := models.ParseTripStatus(req.Status)
		if !ok {
			return nil, models.NewValidationError("unknown trip status %q", req.Status)
		}
		t.Status = status
	}
	if err := validateTrip(t); err != nil {
		return nil, err
	}

	if err := uc.guard.RequireCaptain(ctx, t.CaptainID); err != nil {
		return nil, err
	}
	if err := uc.guard.RequireCustomer(ctx, t.CustomerID); err != nil {
		return nil, err
	}

	created, err := uc.tripRepo.CreateTrip(ctx, t)
	if err != nil {
		return nil, err
	}

	logger.Info("Trip created",
		logger.Int64("trip_id", created.ID),
		logger.Int64("captain_id", created.CaptainID),
		logger.Int64("customer_id", created.CustomerID))
	return created, nil
}

func (uc *TripUC) GetTripByID(ctx context.Context, id int64) (*models.Trip, error) {
	t, err := uc.tripRepo.GetTripByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, models.NewNotFoundError("trip %d", id)
	}
	return t, nil
}

func (uc *TripUC) ListTrips(ctx context.Context) ([]*models.Trip, error) {
	return uc.tripRepo.ListTrips(ctx)
}

// UpdateTrip re-validates the merged trip and re-guards any changed reference
func (uc *TripUC) UpdateTrip(ctx context.Context, id int64, patch models.TripPatch) (*models.Trip, error) {
	existing, err := uc.tripRepo.GetTripByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, models.NewNotFoundError("trip %d", id)
	}

	if patch.Status != nil {
		status, ok := models.ParseTripStatus(string(*patch.Status))
		if !ok {
			return nil, models.NewValidationError("unknown trip status %q", *patch.Status)
		}
		patch.Status = &status
	}

	merged := models.MergeTrip(*existing, patch)
	merged.Origin = strings.TrimSpace(merged.Origin)
	merged.Destination = strings.TrimSpace(merged.Destination)
	if err := validateTrip(&merged); err != nil {
		return nil, err
	}

	if merged.CaptainID != existing.CaptainID {
		if err := uc.guard.RequireCaptain(ctx, merged.CaptainID); err != nil {
			return nil, err
		}
	}
	if merged.CustomerID != existing.CustomerID {
		if err := uc.guard.RequireCustomer(ctx, merged.CustomerID); err != nil {
			return nil, err
		}
	}

	updated, err := uc.tripRepo.UpdateTrip(ctx, &merged)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, models.NewNotFoundError("trip %d", id)
	}
	return updated, nil
}

// UpdateTripStatus sets any known status; transitions are not enforced
func (uc *TripUC) UpdateTripStatus(ctx context.Context, id int64, status string) (*models.Trip, error) {
	parsed, ok := models.ParseTripStatus(status)
	if !ok {
		return nil, models.NewValidationError("unknown trip status %q", status)
	}

	updated, err := uc.tripRepo.UpdateTripStatus(ctx, id, parsed)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, models.NewNotFoundError("trip %d", id)
	}

	logger.Info("Trip status updated",
		logger.Int64("trip_id", id),
		logger.String("status", string(parsed)))
	return updated, nil
}

func (uc *TripUC) DeleteTrip(ctx context.Context, id int64) error {
	if err := uc.tripRepo.DeleteTrip(ctx, id); err != nil {
		return err
	}
	logger.Info("Trip deleted", logger.Int64("trip_id", id))
	return nil
}

// FindTripsByDateRange is inclusive on both ends
func (uc *TripUC) FindTripsByDateRange(ctx context.Context, start, end time.Time) ([]*models.Trip, error) {
	if start.IsZero() || end.IsZero() {
		return nil, models.NewValidationError("start and end are required")
	}
	if start.After(end) {
		return nil, models.NewValidationError("start %s is after end %s", start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return uc.tripRepo.FindTripsByDateRange(ctx, start, end)
}

func (uc *TripUC) FindTripsByCaptainID(ctx context.Context, captainID int64) ([]*models.Trip, error) {
	if captainID <= 0 {
		return nil, models.NewValidationError("captain id must be positive")
	}
	return uc.tripRepo.FindTripsByCaptainID(ctx, captainID)
}

func (uc *TripUC) FindTripsByCustomerID(ctx context.Context, customerID int64) ([]*models.Trip, error) {
	if customerID <= 0 {
		return nil, models.NewValidationError("customer id must be positive")
	}
	return uc.tripRepo.FindTripsByCustomerID(ctx, customerID)
}

func (uc *TripUC) FindTripsByStatus(ctx context.Context, status string) ([]*models.Trip, error) {
	parsed, ok := models.ParseTripStatus(status)
	if !ok {
		return nil, models.NewValidationError("unknown trip status %q", status)
	}
	return uc.tripRepo.FindTripsByStatus(ctx, parsed)
}

func validateTrip(t *models.Trip) error {
	switch {
	case t.Origin == "":
		return models.NewValidationError("origin is required")
	case t.Destination == "":
		return models.NewValidationError("destination is required")
	case t.TripCost < 0:
		return models.NewValidationError("trip cost must not be negative")
	case t.TripDate.IsZero():
		return models.NewValidationError("trip date is required")
	}
	return nil
}
