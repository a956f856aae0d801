package usecase

import (
	"time"

	"github.com/piresc/ridehail-admin/internal/pkg/models"
	"github.com/piresc/ridehail-admin/internal/pkg/retry"
	"github.com/piresc/ridehail-admin/services/consistency"
	"github.com/piresc/ridehail-admin/services/rating"
)

type RatingUC struct {
	ratingRepo       rating.RatingRepo
	guard            consistency.Guard
	aggregator       rating.Aggregator
	ratingGW         rating.RatingGW
	recomputeTimeout time.Duration
	retrier          *retry.Retrier
	now              func() time.Time
}

// NewRatingUC creates a new rating usecase instance
func NewRatingUC(
	ratingRepo rating.RatingRepo,
	guard consistency.Guard,
	aggregator rating.Aggregator,
	ratingGW rating.RatingGW,
	cfg *models.Config,
) *RatingUC {
	timeout := 5 * time.Second
	if cfg != nil && cfg.Rating.RecomputeTimeoutMS > 0 {
		timeout = time.Duration(cfg.Rating.RecomputeTimeoutMS) * time.Millisecond
	}
	retryCfg := retry.DefaultConfig()
	retryCfg.MaxRetries = 0
	retryCfg.Retryable = isTransientRecomputeError
	if cfg != nil && cfg.Rating.RecomputeRetries > 0 {
		retryCfg.MaxRetries = cfg.Rating.RecomputeRetries
	}
	return &RatingUC{
		ratingRepo:       ratingRepo,
		guard:            guard,
		aggregator:       aggregator,
		ratingGW:         ratingGW,
		recomputeTimeout: timeout,
		retrier:          retry.New(retryCfg),
		now:              time.Now,
	}
}

// NotFound from the captain store is permanent
func isTransientRecomputeError(err error) bool {
	return !models.IsNotFound(err)
}
