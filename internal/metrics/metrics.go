// Package metrics defines the Prometheus collectors for the chat service.
// All Record* methods are safe to call on a nil *Metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Chat endpoint metrics
	ChatRequestsTotal   *prometheus.CounterVec
	ChatDurationSeconds *prometheus.HistogramVec

	// Resolver metrics
	HandlerHitsTotal     *prometheus.CounterVec
	HandlerFailuresTotal *prometheus.CounterVec
	IntentFallbackTotal  *prometheus.CounterVec

	// Translation metrics
	TranslationRequestsTotal   *prometheus.CounterVec
	TranslationDurationSeconds *prometheus.HistogramVec

	// Cache metrics
	CacheHitsTotal   *prometheus.CounterVec
	CacheMissesTotal *prometheus.CounterVec

	// Singleflight metrics
	SingleflightDedupTotal *prometheus.CounterVec

	// Rate limiter metrics
	RateLimiterDropped *prometheus.CounterVec
	RateLimiterClients prometheus.Gauge

	// HTTP metrics
	HTTPErrorsTotal *prometheus.CounterVec
}

// New creates a new Metrics instance with all metrics registered
func New(registry *prometheus.Registry) *Metrics {
	factory := promauto.With(registry)
	m := &Metrics{
		ChatRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campus_chat_requests_total",
				Help: "Total number of chat requests by outcome and input language",
			},
			[]string{"status", "lang"}, // status: ok, empty, rate_limited, error
		),

		ChatDurationSeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "campus_chat_duration_seconds",
				Help:    "Chat resolution duration in seconds, translation included",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10},
			},
			[]string{"lang"},
		),

		HandlerHitsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campus_chat_handler_hits_total",
				Help: "Total number of replies produced by each resolver handler",
			},
			[]string{"handler"},
		),

		HandlerFailuresTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campus_chat_handler_failures_total",
				Help: "Total number of handler errors and recovered panics",
			},
			[]string{"handler", "kind"}, // kind: error, panic
		),

		IntentFallbackTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campus_chat_intent_fallback_total",
				Help: "Total number of messages resolved by the intent classifier",
			},
			[]string{"intent", "phase"}, // intent "none" when nothing matched
		),

		TranslationRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campus_chat_translation_requests_total",
				Help: "Total number of translation calls by provider and status",
			},
			[]string{"provider", "status"}, // status: success, error, timeout
		),

		TranslationDurationSeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "campus_chat_translation_duration_seconds",
				Help:    "Translation call duration in seconds by provider",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 4, 8, 16},
			},
			[]string{"provider"},
		),

		CacheHitsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campus_chat_cache_hits_total",
				Help: "Total number of cache hits by cache name",
			},
			[]string{"cache"},
		),

		CacheMissesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campus_chat_cache_misses_total",
				Help: "Total number of cache misses by cache name",
			},
			[]string{"cache"},
		),

		SingleflightDedupTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campus_chat_singleflight_dedup_total",
				Help: "Total number of calls that shared an in-flight result instead of executing",
			},
			[]string{"module"},
		),

		RateLimiterDropped: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campus_chat_rate_limiter_dropped_total",
				Help: "Total number of requests dropped by rate limiter",
			},
			[]string{"limiter_type"}, // limiter_type: client, provider
		),

		RateLimiterClients: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "campus_chat_rate_limiter_clients",
				Help: "Number of clients currently tracked by the chat rate limiter",
			},
		),

		HTTPErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campus_chat_http_errors_total",
				Help: "Total HTTP errors by type and module",
			},
			[]string{"error_type", "module"},
		),
	}

	return m
}

// RecordChat records one chat request.
func (m *Metrics) RecordChat(status, lang string, duration float64) {
	if m == nil {
		return
	}
	m.ChatRequestsTotal.WithLabelValues(status, lang).Inc()
	m.ChatDurationSeconds.WithLabelValues(lang).Observe(duration)
}

// RecordHandlerHit records which handler supplied the reply.
func (m *Metrics) RecordHandlerHit(handler string) {
	if m == nil {
		return
	}
	m.HandlerHitsTotal.WithLabelValues(handler).Inc()
}

// RecordHandlerFailure records a handler error or recovered panic.
func (m *Metrics) RecordHandlerFailure(handler, kind string) {
	if m == nil {
		return
	}
	m.HandlerFailuresTotal.WithLabelValues(handler, kind).Inc()
}

// RecordIntentFallback records a classifier outcome.
func (m *Metrics) RecordIntentFallback(intent, phase string) {
	if m == nil {
		return
	}
	m.IntentFallbackTotal.WithLabelValues(intent, phase).Inc()
}

// RecordTranslation records a translation provider call.
func (m *Metrics) RecordTranslation(provider, status string, duration float64) {
	if m == nil {
		return
	}
	m.TranslationRequestsTotal.WithLabelValues(provider, status).Inc()
	m.TranslationDurationSeconds.WithLabelValues(provider).Observe(duration)
}

// RecordCacheHit records a cache hit
func (m *Metrics) RecordCacheHit(cache string) {
	if m == nil {
		return
	}
	m.CacheHitsTotal.WithLabelValues(cache).Inc()
}

// RecordCacheMiss records a cache miss
func (m *Metrics) RecordCacheMiss(cache string) {
	if m == nil {
		return
	}
	m.CacheMissesTotal.WithLabelValues(cache).Inc()
}

// RecordSingleflightDedup records a deduplicated request
func (m *Metrics) RecordSingleflightDedup(module string) {
	if m == nil {
		return
	}
	m.SingleflightDedupTotal.WithLabelValues(module).Inc()
}

// RecordRateLimiterDrop records a request dropped by rate limiter
func (m *Metrics) RecordRateLimiterDrop(limiterType string) {
	if m == nil {
		return
	}
	m.RateLimiterDropped.WithLabelValues(limiterType).Inc()
}

// SetRateLimiterClients sets the number of tracked rate limiter keys
func (m *Metrics) SetRateLimiterClients(count int) {
	if m == nil {
		return
	}
	m.RateLimiterClients.Set(float64(count))
}

// RecordHTTPError records HTTP error metrics
func (m *Metrics) RecordHTTPError(errorType, module string) {
	if m == nil {
		return
	}
	m.HTTPErrorsTotal.WithLabelValues(errorType, module).Inc()
}
