package usecase

import (
	"context"
	"strings"

	"github.com/piresc/ridehail-admin/internal/pkg/logger"
	"github.com/piresc/ridehail-admin/internal/pkg/models"
)

func (uc *CaptainUC) CreateCaptain(ctx context.Context, req models.CaptainRequest) (*models.Captain, error) {
	c := &models.Captain{
		Name:           strings.TrimSpace(req.Name),
		LicenseNumber:  strings.TrimSpace(req.LicenseNumber),
		AvgRatingScore: req.AvgRatingScore,
	}
	if c.AvgRatingScore == nil {
		zero := 0.0
		c.AvgRatingScore = &zero
	}
	if err := validateCaptain(c); err != nil {
		return nil, err
	}
	if avg := *c.AvgRatingScore; avg < 0 || avg > models.MaxRatingScore {
		return nil, models.NewValidationError("avgRatingScore must be between 0 and %d", models.MaxRatingScore)
	}

	existing, err := uc.captainRepo.GetCaptainByLicenseNumber(ctx, c.LicenseNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("license number %q already registered", c.LicenseNumber)
	}

	created, err := uc.captainRepo.CreateCaptain(ctx, c)
	if err != nil {
		return nil, err
	}

	logger.Info("Captain created",
		logger.Int64("captain_id", created.ID),
		logger.String("license_number", created.LicenseNumber))
	return created, nil
}

func (uc *CaptainUC) GetCaptainByID(ctx context.Context, id int64) (*models.Captain, error) {
	c, err := uc.captainRepo.GetCaptainByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, models.NewNotFoundError("captain %d", id)
	}
	return c, nil
}

func (uc *CaptainUC) GetCaptainByLicenseNumber(ctx context.Context, licenseNumber string) (*models.Captain, error) {
	licenseNumber = strings.TrimSpace(licenseNumber)
	if licenseNumber == "" {
		return nil, models.NewValidationError("license number is required")
	}
	c, err := uc.captainRepo.GetCaptainByLicenseNumber(ctx, licenseNumber)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, models.NewNotFoundError("captain with license %q", licenseNumber)
	}
	return c, nil
}

func (uc *CaptainUC) ListCaptains(ctx context.Context) ([]*models.Captain, error) {
	return uc.captainRepo.ListCaptains(ctx)
}

// ListCaptainsByMinRating lists captains rated strictly above threshold
func (uc *CaptainUC) ListCaptainsByMinRating(ctx context.Context, threshold float64) ([]*models.Captain, error) {
	if threshold < 0 || threshold > models.MaxRatingScore {
		return nil, models.NewValidationError("rating threshold must be between 0 and %d", models.MaxRatingScore)
	}
	return uc.captainRepo.ListCaptainsByMinRating(ctx, threshold)
}

func (uc *CaptainUC) UpdateCaptain(ctx context.Context, id int64, patch models.CaptainPatch) (*models.Captain, error) {
	existing, err := uc.captainRepo.GetCaptainByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, models.NewNotFoundError("captain %d", id)
	}

	merged := models.MergeCaptain(*existing, patch)
	merged.Name = strings.TrimSpace(merged.Name)
	merged.LicenseNumber = strings.TrimSpace(merged.LicenseNumber)
	if err := validateCaptain(&merged); err != nil {
		return nil, err
	}

	if merged.LicenseNumber != existing.LicenseNumber {
		other, err := uc.captainRepo.GetCaptainByLicenseNumber(ctx, merged.LicenseNumber)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != id {
			return nil, models.NewConflictError("license number %q already registered", merged.LicenseNumber)
		}
	}

	updated, err := uc.captainRepo.UpdateCaptain(ctx, &merged)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, models.NewNotFoundError("captain %d", id)
	}
	return updated, nil
}

// DeleteCaptain is idempotent
func (uc *CaptainUC) DeleteCaptain(ctx context.Context, id int64) error {
	if err := uc.captainRepo.DeleteCaptain(ctx, id); err != nil {
		return err
	}
	logger.Info("Captain deleted", logger.Int64("captain_id", id))
	return nil
}

func validateCaptain(c *models.Captain) error {
	if c.Name == "" {
		return models.NewValidationError("name is required")
	}
	if c.LicenseNumber == "" {
		return models.NewValidationError("license number is required")
	}
	return nil
}
