// Package metrics holds the Prometheus collectors shared across the service.
// They are registered with the default registerer and exposed by the API
// server on its metrics path.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	// WhoisLookups counts WHOIS lookups by outcome ("ok" or a failure kind).
	WhoisLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "domainchecker",
		Subsystem: "whois",
		Name:      "lookups_total",
		Help:      "Number of WHOIS lookups by outcome.",
	}, []string{"outcome"})

	// WhoisLookupDuration observes WHOIS lookup latency by outcome.
	WhoisLookupDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "domainchecker",
		Subsystem: "whois",
		Name:      "lookup_duration_seconds",
		Help:      "Latency of WHOIS lookups.",
		Buckets:   DefaultBuckets,
	}, []string{"outcome"})

	// ThrottleLimit reports the current adaptive WHOIS request rate (requests per second).
	ThrottleLimit = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "domainchecker",
		Subsystem: "whois",
		Name:      "throttle_limit",
		Help:      "Current adaptive WHOIS request rate in requests per second.",
	})

	// HTTPRequestDuration observes API request latency by method and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "domainchecker",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Latency of HTTP requests.",
		Buckets:   DefaultBuckets,
	}, []string{"method", "status"})
)
