package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stylemate_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "stylemate_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// GenerationOutcomes counts how each outfit or capsule generation ended:
	// normalized, unavailable, external_error, extraction_failed or
	// validation_failed.
	GenerationOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stylemate_generation_outcomes_total",
			Help: "Generation attempts by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	CompletionTokens = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stylemate_completion_tokens_total",
			Help: "Tokens consumed by text completions",
		},
		[]string{"model", "type"},
	)

	ResultCacheRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stylemate_result_cache_requests_total",
			Help: "Generation result cache lookups",
		},
	)

	ResultCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stylemate_result_cache_misses_total",
			Help: "Generation result cache lookups that found nothing",
		},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "stylemate_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stylemate_circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // success, failure, rejected
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stylemate_circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

func RecordAPIRequest(method, endpoint string, status int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

func RecordGeneration(kind, outcome string) {
	GenerationOutcomes.WithLabelValues(kind, outcome).Inc()
}
