package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/ridehail-admin/internal/pkg/lock"
	"github.com/piresc/ridehail-admin/internal/pkg/models"
	"github.com/piresc/ridehail-admin/services/rating/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captainRatings(captainID int64, scores ...int) []*models.Rating {
	out := make([]*models.Rating, 0, len(scores))
	for _, s := range scores {
		out = append(out, &models.Rating{EntityID: captainID, EntityType: models.EntityTypeCaptain, Score: s})
	}
	return out
}

func newTestAggregator(ctrl *gomock.Controller, cfg *models.Config) (*CaptainAggregator, *mocks.MockRatingRepo, *mocks.MockCaptainAverageStore, *mocks.MockRatingGW) {
	repo := mocks.NewMockRatingRepo(ctrl)
	store := mocks.NewMockCaptainAverageStore(ctrl)
	gw := mocks.NewMockRatingGW(ctrl)
	agg := NewCaptainAggregator(repo, store, gw, lock.NewKeyedMutex(), cfg)
	agg.now = func() time.Time { return time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC) }
	return agg, repo, store, gw
}

func TestRecomputeCaptainAverage_Mean(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	agg, repo, store, gw := newTestAggregator(ctrl, &models.Config{})

	repo.EXPECT().FindByEntity(gomock.Any(), int64(1), models.EntityTypeCaptain).
		Return(captainRatings(1, 4, 5, 3), nil)
	store.EXPECT().UpdateAvgRatingScore(gomock.Any(), int64(1), 4.0).Return(nil)
	gw.EXPECT().PublishCaptainRatingUpdated(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev *models.CaptainRatingEvent) error {
			assert.Equal(t, int64(1), ev.CaptainID)
			assert.Equal(t, 4.0, ev.AvgRatingScore)
			assert.Equal(t, 3, ev.RatingCount)
			return nil
		})

	// Act
	avg, err := agg.RecomputeCaptainAverage(context.Background(), 1)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, avg)
	assert.Equal(t, 4.0, *avg)
}

func TestRecomputeCaptainAverage_FractionalMean(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	agg, repo, store, gw := newTestAggregator(ctrl, &models.Config{})

	repo.EXPECT().FindByEntity(gomock.Any(), int64(2), models.EntityTypeCaptain).
		Return(captainRatings(2, 5, 4), nil)
	store.EXPECT().UpdateAvgRatingScore(gomock.Any(), int64(2), 4.5).Return(nil)
	gw.EXPECT().PublishCaptainRatingUpdated(gomock.Any(), gomock.Any()).Return(nil)

	avg, err := agg.RecomputeCaptainAverage(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, 4.5, *avg)
}

func TestRecomputeCaptainAverage_NoRatingsLeavesAverage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	agg, repo, _, _ := newTestAggregator(ctrl, &models.Config{})

	// No UpdateAvgRatingScore or publish expected.
	repo.EXPECT().FindByEntity(gomock.Any(), int64(3), models.EntityTypeCaptain).Return([]*models.Rating{}, nil)

	avg, err := agg.RecomputeCaptainAverage(context.Background(), 3)

	assert.NoError(t, err)
	assert.Nil(t, avg)
}

func TestRecomputeCaptainAverage_PublishFailureIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	agg, repo, store, gw := newTestAggregator(ctrl, &models.Config{})

	repo.EXPECT().FindByEntity(gomock.Any(), int64(1), models.EntityTypeCaptain).Return(captainRatings(1, 2), nil)
	store.EXPECT().UpdateAvgRatingScore(gomock.Any(), int64(1), 2.0).Return(nil)
	gw.EXPECT().PublishCaptainRatingUpdated(gomock.Any(), gomock.Any()).Return(errors.New("nsqd unreachable"))

	avg, err := agg.RecomputeCaptainAverage(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, 2.0, *avg)
}

func TestRecomputeCaptainAverage_StoreErrors(t *testing.T) {
	t.Run("find fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		agg, repo, _, _ := newTestAggregator(ctrl, &models.Config{})

		repo.EXPECT().FindByEntity(gomock.Any(), int64(1), models.EntityTypeCaptain).Return(nil, errors.New("mongo down"))

		_, err := agg.RecomputeCaptainAverage(context.Background(), 1)
		assert.EqualError(t, err, "mongo down")
	})

	t.Run("update fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		agg, repo, store, _ := newTestAggregator(ctrl, &models.Config{})

		repo.EXPECT().FindByEntity(gomock.Any(), int64(1), models.EntityTypeCaptain).Return(captainRatings(1, 5), nil)
		store.EXPECT().UpdateAvgRatingScore(gomock.Any(), int64(1), 5.0).Return(errors.New("postgres down"))

		_, err := agg.RecomputeCaptainAverage(context.Background(), 1)
		assert.Error(t, err)
	})
}

func TestRecomputeCaptainAverage_LockTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	agg, _, _, _ := newTestAggregator(ctrl, &models.Config{})
	agg.lockWait = 20 * time.Millisecond

	locker := lock.NewKeyedMutex()
	agg.locker = locker
	unlock, err := locker.Lock(context.Background(), lockKey(9))
	require.NoError(t, err)
	defer unlock()

	_, err = agg.RecomputeCaptainAverage(context.Background(), 9)

	require.Error(t, err)
	assert.ErrorIs(t, err, lock.ErrNotAcquired)
}
