package nsq

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/ridehail-admin/internal/pkg/logger"
	"github.com/piresc/ridehail-admin/internal/pkg/models"
	nsqpkg "github.com/piresc/ridehail-admin/internal/pkg/nsq"
	"github.com/piresc/ridehail-admin/services/rating"
)

const handleTimeout = 10 * time.Second

// RecomputeHandler drains queued captain recompute requests
type RecomputeHandler struct {
	aggregator rating.Aggregator
	consumer   *nsqpkg.Consumer
}

func NewRecomputeHandler(aggregator rating.Aggregator) *RecomputeHandler {
	return &RecomputeHandler{aggregator: aggregator}
}

// InitNSQConsumer subscribes to the recompute topic
func (h *RecomputeHandler) InitNSQConsumer(cfg models.NSQConfig) error {
	consumer, err := nsqpkg.NewConsumer(cfg.RecomputeTopic, cfg.Channel, cfg.Address, h.HandleRecomputeRequest)
	if err != nil {
		return fmt.Errorf("failed to subscribe to recompute requests: %w", err)
	}
	h.consumer = consumer
	logger.Info("Subscribed to captain recompute requests",
		logger.String("topic", cfg.RecomputeTopic),
		logger.String("channel", cfg.Channel))
	return nil
}

// HandleRecomputeRequest recomputes one captain. A returned error makes NSQ
// requeue the message.
func (h *RecomputeHandler) HandleRecomputeRequest(body []byte) error {
	var req models.RecomputeRequest
	if err := nsqpkg.UnmarshalMessage(body, &req); err != nil {
		// not retryable
		logger.Error("Discarding malformed recompute request", logger.ErrorField(err))
		return nil
	}
	if req.CaptainID <= 0 {
		logger.Warn("Discarding recompute request without captain", logger.Int64("captain_id", req.CaptainID))
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()

	avg, err := h.aggregator.RecomputeCaptainAverage(ctx, req.CaptainID)
	if models.IsNotFound(err) {
		logger.Warn("Discarding recompute request for missing captain", logger.Int64("captain_id", req.CaptainID))
		return nil
	}
	if err != nil {
		return err
	}
	if avg != nil {
		logger.Info("Queued captain recompute applied",
			logger.Int64("captain_id", req.CaptainID),
			logger.Float64("avg_rating_score", *avg),
			logger.String("reason", req.Reason))
	}
	return nil
}

func (h *RecomputeHandler) Stop() {
	if h.consumer != nil {
		h.consumer.Stop()
	}
}
