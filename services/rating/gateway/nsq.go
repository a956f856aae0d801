package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/ridehail-admin/internal/pkg/circuitbreaker"
	"github.com/piresc/ridehail-admin/internal/pkg/logger"
	"github.com/piresc/ridehail-admin/internal/pkg/models"
)

// Publisher is the slice of the NSQ producer the gateway uses
type Publisher interface {
	Publish(topic string, message interface{}) error
}

// NSQGateway publishes rating events to NSQ. A nil publisher turns every
// publish into a no-op, which is how the service runs without nsqd.
// Rating events pass through a circuit breaker; recompute requests do not.
type NSQGateway struct {
	publisher      Publisher
	breaker        *circuitbreaker.CircuitBreaker
	eventsTopic    string
	recomputeTopic string
}

func NewNSQGateway(publisher Publisher, cfg models.NSQConfig) *NSQGateway {
	return &NSQGateway{
		publisher:      publisher,
		breaker:        circuitbreaker.New(circuitbreaker.DefaultConfig("nsq-rating-events")),
		eventsTopic:    cfg.RatingEventsTopic,
		recomputeTopic: cfg.RecomputeTopic,
	}
}

func (g *NSQGateway) PublishCaptainRatingUpdated(ctx context.Context, event *models.CaptainRatingEvent) error {
	if g.publisher == nil {
		return nil
	}
	err := g.breaker.Execute(ctx, func(context.Context) error {
		return g.publisher.Publish(g.eventsTopic, event)
	})
	if err != nil {
		return fmt.Errorf("failed to publish captain rating event: %w", err)
	}
	logger.Debug("Published captain rating event",
		logger.String("topic", g.eventsTopic),
		logger.Int64("captain_id", event.CaptainID))
	return nil
}

// PublishRecomputeRequest fails with ErrPublisherDisabled when no producer is configured
func (g *NSQGateway) PublishRecomputeRequest(ctx context.Context, req *models.RecomputeRequest) error {
	if g.publisher == nil {
		return ErrPublisherDisabled
	}
	if err := g.publisher.Publish(g.recomputeTopic, req); err != nil {
		return fmt.Errorf("failed to publish recompute request: %w", err)
	}
	return nil
}
