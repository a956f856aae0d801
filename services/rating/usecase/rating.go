package usecase

import (
	"context"
	"strings"

	"github.com/piresc/ridehail-admin/internal/pkg/logger"
	"github.com/piresc/ridehail-admin/internal/pkg/models"
	"github.com/piresc/ridehail-admin/internal/pkg/requestcontext"
)

// CreateRating stores a rating for an existing captain, customer or trip.
// Captain ratings refresh the captain's average.
func (uc *RatingUC) CreateRating(ctx context.Context, req models.RatingRequest) (*models.Rating, error) {
	if err := uc.guard.ValidateScore(req.Score); err != nil {
		return nil, err
	}
	entityType, err := uc.guard.RequireRatingTarget(ctx, req.EntityID, req.EntityType)
	if err != nil {
		return nil, err
	}

	r := &models.Rating{
		EntityID:   *req.EntityID,
		EntityType: entityType,
		Score:      *req.Score,
		Comment:    strings.TrimSpace(req.Comment),
		RatingDate: uc.now().UTC(),
	}
	if req.RatingDate != nil {
		r.RatingDate = req.RatingDate.UTC()
	}

	created, err := uc.ratingRepo.CreateRating(ctx, r)
	if err != nil {
		return nil, err
	}

	logger.Info("Rating created",
		logger.String("rating_id", created.ID.Hex()),
		logger.String("entity_type", created.EntityType),
		logger.Int64("entity_id", created.EntityID),
		logger.Int("score", created.Score))

	uc.refreshCaptain(ctx, created)
	return created, nil
}

func (uc *RatingUC) GetRatingByID(ctx context.Context, id string) (*models.Rating, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, models.NewValidationError("rating id is required")
	}
	r, err := uc.ratingRepo.GetRatingByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, models.NewNotFoundError("rating %s", id)
	}
	return r, nil
}

func (uc *RatingUC) ListRatings(ctx context.Context) ([]*models.Rating, error) {
	return uc.ratingRepo.ListRatings(ctx)
}

// UpdateRating changes score, comment or date. The target cannot change.
func (uc *RatingUC) UpdateRating(ctx context.Context, id string, patch models.RatingPatch) (*models.Rating, error) {
	existing, err := uc.GetRatingByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Score != nil {
		if err := uc.guard.ValidateScore(patch.Score); err != nil {
			return nil, err
		}
	}

	merged := models.MergeRating(*existing, patch)
	merged.Comment = strings.TrimSpace(merged.Comment)

	updated, err := uc.ratingRepo.UpdateRating(ctx, &merged)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, models.NewNotFoundError("rating %s", id)
	}

	uc.refreshCaptain(ctx, updated)
	return updated, nil
}

// DeleteRating is idempotent; deleting a captain rating refreshes the average
func (uc *RatingUC) DeleteRating(ctx context.Context, id string) error {
	deleted, err := uc.ratingRepo.DeleteRating(ctx, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if deleted == nil {
		return nil
	}

	logger.Info("Rating deleted",
		logger.String("rating_id", id),
		logger.String("entity_type", deleted.EntityType),
		logger.Int64("entity_id", deleted.EntityID))

	uc.refreshCaptain(ctx, deleted)
	return nil
}

func (uc *RatingUC) FindRatingsByEntity(ctx context.Context, entityID int64, entityType string) ([]*models.Rating, error) {
	kind, err := parseEntityType(entityType)
	if err != nil {
		return nil, err
	}
	return uc.ratingRepo.FindByEntity(ctx, entityID, kind)
}

func (uc *RatingUC) FindRatingsByEntityType(ctx context.Context, entityType string) ([]*models.Rating, error) {
	kind, err := parseEntityType(entityType)
	if err != nil {
		return nil, err
	}
	return uc.ratingRepo.FindByEntityType(ctx, kind)
}

// FindRatingsAboveScore returns ratings with score >= min
func (uc *RatingUC) FindRatingsAboveScore(ctx context.Context, min int) ([]*models.Rating, error) {
	if min < models.MinRatingScore || min > models.MaxRatingScore {
		return nil, models.NewValidationError("min score must be between %d and %d", models.MinRatingScore, models.MaxRatingScore)
	}
	return uc.ratingRepo.FindByScoreAtLeast(ctx, min)
}

func (uc *RatingUC) FindRatingsByScoreRange(ctx context.Context, min, max int) ([]*models.Rating, error) {
	if min < models.MinRatingScore || max > models.MaxRatingScore || min > max {
		return nil, models.NewValidationError("score range must satisfy %d <= min <= max <= %d", models.MinRatingScore, models.MaxRatingScore)
	}
	return uc.ratingRepo.FindByScoreBetween(ctx, min, max)
}

// RecomputeCaptainRating rebuilds one captain's average on demand
func (uc *RatingUC) RecomputeCaptainRating(ctx context.Context, captainID int64) (*float64, error) {
	if err := uc.guard.RequireCaptain(ctx, captainID); err != nil {
		return nil, err
	}
	return uc.aggregator.RecomputeCaptainAverage(ctx, captainID)
}

// refreshCaptain runs the aggregator after a captain rating changed.
// Failures are logged and queued for the recompute consumer; the rating
// write itself stands.
func (uc *RatingUC) refreshCaptain(ctx context.Context, r *models.Rating) {
	if !models.IsCaptainTarget(r.EntityType) {
		return
	}

	recomputeCtx, cancel := context.WithTimeout(ctx, uc.recomputeTimeout)
	defer cancel()

	err := uc.retrier.Execute(recomputeCtx, "captain rating recompute", func(ctx context.Context) error {
		_, err := uc.aggregator.RecomputeCaptainAverage(ctx, r.EntityID)
		return err
	})
	if models.IsNotFound(err) {
		logger.Warn("Captain no longer exists, rating average not updated",
			logger.Int64("captain_id", r.EntityID),
			logger.String("request_id", requestcontext.GetRequestID(ctx)))
		return
	}
	if err != nil {
		logger.Error("Captain rating recompute failed",
			logger.Int64("captain_id", r.EntityID),
			logger.String("request_id", requestcontext.GetRequestID(ctx)),
			logger.ErrorField(err))

		req := &models.RecomputeRequest{
			CaptainID:   r.EntityID,
			Reason:      err.Error(),
			RequestedAt: uc.now().UTC(),
		}
		if perr := uc.ratingGW.PublishRecomputeRequest(ctx, req); perr != nil {
			logger.Warn("Captain average left stale",
				logger.Int64("captain_id", r.EntityID),
				logger.ErrorField(perr))
		}
	}
}

func parseEntityType(entityType string) (string, error) {
	kind := models.NormalizeEntityType(entityType)
	switch kind {
	case models.EntityTypeCaptain, models.EntityTypeCustomer, models.EntityTypeTrip:
		return kind, nil
	case "":
		return "", models.NewValidationError("entityType is required")
	}
	return "", models.NewValidationError("unsupported entityType %q", entityType)
}
