package rating

import (
	"context"

	"github.com/piresc/ridehail-admin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/ridehail-admin/services/rating RatingGW

// RatingGW publishes rating events
type RatingGW interface {
	PublishCaptainRatingUpdated(ctx context.Context, event *models.CaptainRatingEvent) error
	PublishRecomputeRequest(ctx context.Context, req *models.RecomputeRequest) error
}
