package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pulse_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pulse_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// FollowTransitions counts follow-ledger state transitions by outcome.
	FollowTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pulse_follow_transitions_total",
		Help: "Total follow/unfollow transitions by outcome",
	}, []string{"operation", "outcome"})

	// FeedPagesServed counts denormalized list pages by scope.
	FeedPagesServed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pulse_feed_pages_served_total",
		Help: "Total paginated content pages served by scope",
	}, []string{"scope"})
)

// ObserveQuery records the latency of a database query.
func ObserveQuery(operation, table string, start time.Time) {
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
}
