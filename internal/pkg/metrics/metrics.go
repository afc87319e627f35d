// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "wardrobe"

// Outcome label values
const (
	ResultSuccess = "success"
	ResultError   = "error"
	ResultHit     = "hit"
	ResultMiss    = "miss"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	upstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "request_duration_seconds",
			Help:      "Duration of calls to the weather and stylist APIs",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"service", "status"},
	)

	weatherCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "weather",
			Name:      "cache_lookups_total",
			Help:      "Weather cache lookups by result",
		},
		[]string{"result"},
	)

	outfitGenerations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "outfits",
			Name:      "generations_total",
			Help:      "Outfit generation attempts by result",
		},
		[]string{"result"},
	)

	clothingUploadBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "clothing",
			Name:      "upload_bytes",
			Help:      "Size of stored clothing photos",
			Buckets:   prometheus.ExponentialBuckets(16*1024, 2, 10),
		},
	)
)

// ObserveHTTPRequest records a finished HTTP request
func ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	code := strconv.Itoa(status)
	httpRequestsTotal.WithLabelValues(method, route, code).Inc()
	httpRequestDuration.WithLabelValues(method, route, code).Observe(elapsed.Seconds())
}

// ObserveUpstream records a call to an external API. Status 0 means the call failed before a response.
func ObserveUpstream(service string, status int, elapsed time.Duration) {
	upstreamRequestDuration.WithLabelValues(service, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// CountWeatherCache records a cache hit, miss or error
func CountWeatherCache(result string) {
	weatherCacheLookups.WithLabelValues(result).Inc()
}

// CountOutfitGeneration records the result of an outfit generation
func CountOutfitGeneration(result string) {
	outfitGenerations.WithLabelValues(result).Inc()
}

// ObserveUpload records the size of a stored photo
func ObserveUpload(size int) {
	clothingUploadBytes.Observe(float64(size))
}
