// Package observability provides metrics and tracing.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gorm.io/gorm"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "moodwave_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "moodwave_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// MoodLogsCreated counts mood logs created by logging method.
	MoodLogsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "moodwave_mood_logs_created_total",
		Help: "Total number of mood logs created by method",
	}, []string{"method"})

	// SuggestionComputations counts suggestion engine runs by outcome.
	SuggestionComputations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "moodwave_suggestion_computations_total",
		Help: "Total number of mood-similarity suggestion computations",
	}, []string{"outcome"})

	// SuggestionLatency records the latency of suggestion computations.
	SuggestionLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "moodwave_suggestion_latency_seconds",
		Help:    "Mood-similarity suggestion computation latency in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// MusicLookups counts music search requests by source and result.
	MusicLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "moodwave_music_lookups_total",
		Help: "Total number of music lookups by source",
	}, []string{"source", "result"})

	// NotificationsPublished counts real-time notifications published by type.
	NotificationsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "moodwave_notifications_published_total",
		Help: "Total number of notifications published to the real-time channel",
	}, []string{"type"})

	// CacheRequests counts cache lookups by key class and hit/miss.
	CacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "moodwave_cache_requests_total",
		Help: "Total cache lookups by key class and outcome",
	}, []string{"key", "outcome"})
)

// DatabaseMetrics wraps DB access for recording query latency.
type DatabaseMetrics struct {
	db *gorm.DB
}

// NewDatabaseMetrics returns a new DatabaseMetrics instance.
func NewDatabaseMetrics(db *gorm.DB) *DatabaseMetrics {
	return &DatabaseMetrics{db: db}
}

// ObserveQuery records the latency of a database query.
func (m *DatabaseMetrics) ObserveQuery(operation, table string, start time.Time) {
	latency := time.Since(start).Seconds()
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(latency)
}

// TrackQuery returns a function that records query latency when called (e.g. defer).
func (m *DatabaseMetrics) TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		m.ObserveQuery(operation, table, start)
	}
}
