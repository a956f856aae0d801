package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/ridehail-admin/internal/pkg/lock"
	"github.com/piresc/ridehail-admin/internal/pkg/logger"
	"github.com/piresc/ridehail-admin/internal/pkg/models"
	nrpkg "github.com/piresc/ridehail-admin/internal/pkg/newrelic"
	"github.com/piresc/ridehail-admin/internal/pkg/observability"
	"github.com/piresc/ridehail-admin/services/rating"
)

// CaptainAggregator recomputes a captain's average from the full rating set.
// Recomputations for the same captain are serialized through locker.
type CaptainAggregator struct {
	ratingRepo rating.RatingRepo
	captains   rating.CaptainAverageStore
	ratingGW   rating.RatingGW
	locker     lock.Locker
	lockWait   time.Duration
	now        func() time.Time
}

func NewCaptainAggregator(
	ratingRepo rating.RatingRepo,
	captains rating.CaptainAverageStore,
	ratingGW rating.RatingGW,
	locker lock.Locker,
	cfg *models.Config,
) *CaptainAggregator {
	wait := 5 * time.Second
	if cfg != nil && cfg.Rating.LockWaitSeconds > 0 {
		wait = time.Duration(cfg.Rating.LockWaitSeconds) * time.Second
	}
	return &CaptainAggregator{
		ratingRepo: ratingRepo,
		captains:   captains,
		ratingGW:   ratingGW,
		locker:     locker,
		lockWait:   wait,
		now:        time.Now,
	}
}

func lockKey(captainID int64) string {
	return fmt.Sprintf("captain-rating:%d", captainID)
}

// RecomputeCaptainAverage writes the mean score of every captain rating back
// to the captain. With no ratings the stored average is left as is and nil
// is returned.
func (a *CaptainAggregator) RecomputeCaptainAverage(ctx context.Context, captainID int64) (*float64, error) {
	start := time.Now()
	defer func() {
		observability.RatingRecomputeDuration.Observe(time.Since(start).Seconds())
	}()

	lockCtx, cancel := context.WithTimeout(ctx, a.lockWait)
	unlock, err := a.locker.Lock(lockCtx, lockKey(captainID))
	cancel()
	if err != nil {
		observability.RatingRecomputeTotal.WithLabelValues(observability.ResultFailed).Inc()
		return nil, fmt.Errorf("failed to lock captain %d rating: %w", captainID, err)
	}
	defer unlock()

	var ratings []*models.Rating
	err = nrpkg.WithSegment(ctx, "rating.FindByEntity", func() error {
		var ferr error
		ratings, ferr = a.ratingRepo.FindByEntity(ctx, captainID, models.EntityTypeCaptain)
		return ferr
	})
	if err != nil {
		observability.RatingRecomputeTotal.WithLabelValues(observability.ResultFailed).Inc()
		return nil, err
	}
	if len(ratings) == 0 {
		observability.RatingRecomputeTotal.WithLabelValues(observability.ResultEmpty).Inc()
		logger.Debug("No ratings for captain, average left unchanged", logger.Int64("captain_id", captainID))
		return nil, nil
	}

	avg := meanScore(ratings)
	err = nrpkg.WithSegment(ctx, "captain.UpdateAvgRatingScore", func() error {
		return a.captains.UpdateAvgRatingScore(ctx, captainID, avg)
	})
	if err != nil {
		observability.RatingRecomputeTotal.WithLabelValues(observability.ResultFailed).Inc()
		return nil, err
	}
	observability.RatingRecomputeTotal.WithLabelValues(observability.ResultUpdated).Inc()

	logger.Info("Captain rating recomputed",
		logger.Int64("captain_id", captainID),
		logger.Float64("avg_rating_score", avg),
		logger.Int("rating_count", len(ratings)))

	event := &models.CaptainRatingEvent{
		CaptainID:      captainID,
		AvgRatingScore: avg,
		RatingCount:    len(ratings),
		ComputedAt:     a.now().UTC(),
	}
	if err := a.ratingGW.PublishCaptainRatingUpdated(ctx, event); err != nil {
		logger.Warn("Failed to publish captain rating event",
			logger.Int64("captain_id", captainID),
			logger.ErrorField(err))
	}

	return &avg, nil
}

func meanScore(ratings []*models.Rating) float64 {
	var sum int
	for _, r := range ratings {
		sum += r.Score
	}
	return float64(sum) / float64(len(ratings))
}
