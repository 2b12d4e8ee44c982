// Package metrics exposes Prometheus collectors for TruePedia.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts API requests by method, route and status class.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "truepedia",
		Name:      "http_requests_total",
		Help:      "API requests by method, route and status.",
	}, []string{"method", "route", "status"})

	// HTTPDuration observes API request latency by route.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "truepedia",
		Name:      "http_request_duration_seconds",
		Help:      "API request latency by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})

	// OutboundDuration observes outbound call latency to external services.
	OutboundDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "truepedia",
		Name:      "outbound_request_duration_seconds",
		Help:      "Latency of calls to Wikipedia and the translation provider.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
	}, []string{"target", "outcome"})

	// CacheEvents counts snapshot and translation cache hits/misses.
	CacheEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "truepedia",
		Name:      "cache_events_total",
		Help:      "Snapshot and translation cache hits and misses.",
	}, []string{"cache", "event"})
)

// ObserveOutbound records one outbound call.
func ObserveOutbound(target string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	OutboundDuration.WithLabelValues(target, outcome).Observe(time.Since(start).Seconds())
}
