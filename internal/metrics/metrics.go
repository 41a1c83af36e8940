// Package metrics defines the Prometheus instruments for the recommendation
// pipeline and the HTTP service. All instruments register with the default
// registry and are served by promhttp at /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Pipeline outcomes.
const (
	OutcomeSuccess  = "success"
	OutcomeFallback = "fallback"
)

var (
	// Pipeline Metrics
	PipelineRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pipeline_runs_total",
			Help: "Total number of recommendation pipeline runs",
		},
		[]string{"market", "outcome"},
	)

	PipelineFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pipeline_fallbacks_total",
			Help: "Total number of pipeline runs replaced by the fallback result, by failing stage",
		},
		[]string{"stage"},
	)

	PipelineDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pipeline_duration_seconds",
			Help:    "Duration of a full recommendation pipeline run",
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05},
		},
	)

	RecommendationsEmitted = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommendations_emitted",
			Help:    "Number of recommendations per output bucket",
			Buckets: []float64{0, 1, 2, 3, 4, 5, 6},
		},
		[]string{"bucket"},
	)

	// Cache Metrics
	ResultCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "result_cache_hits_total",
			Help: "Total number of recommendation result cache hits",
		},
	)

	ResultCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "result_cache_misses_total",
			Help: "Total number of recommendation result cache misses",
		},
	)

	// API Metrics
	APIRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// RecordPipelineRun records one pipeline run. stage is the failing stage for
// fallback runs and ignored otherwise.
func RecordPipelineRun(market, stage string, fallback bool, duration time.Duration) {
	outcome := OutcomeSuccess
	if fallback {
		outcome = OutcomeFallback
		PipelineFallbacks.WithLabelValues(stage).Inc()
	}
	PipelineRuns.WithLabelValues(market, outcome).Inc()
	PipelineDuration.Observe(duration.Seconds())
}

// RecordBucketSizes records how many recommendations landed in each bucket.
func RecordBucketSizes(sizes map[string]int) {
	for bucket, n := range sizes {
		RecommendationsEmitted.WithLabelValues(bucket).Observe(float64(n))
	}
}

// RecordCacheLookup counts a result cache hit or miss.
func RecordCacheLookup(hit bool) {
	if hit {
		ResultCacheHits.Inc()
		return
	}
	ResultCacheMisses.Inc()
}

// RecordAPIRequest records one HTTP request.
func RecordAPIRequest(method, route string, status int, duration time.Duration) {
	APIRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
