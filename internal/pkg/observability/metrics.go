package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ridehail_admin"

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "Total HTTP requests handled"},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RatingRecomputeTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "rating_recompute_total", Help: "Captain average recomputations by result"},
		[]string{"result"},
	)
	RatingRecomputeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "rating_recompute_duration_seconds",
		Help:      "Captain average recomputation latency",
		Buckets:   prometheus.DefBuckets,
	})

	GuardRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "guard_rejections_total", Help: "Writes rejected by consistency guards"},
		[]string{"guard"},
	)
)

// Recompute results
const (
	ResultUpdated = "updated"
	ResultEmpty   = "empty"
	ResultFailed  = "failed"
)
