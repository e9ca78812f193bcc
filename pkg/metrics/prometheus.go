package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	RecommendationsServed prometheus.Counter
	LayoverPlansBuilt     prometheus.Counter
	InfeasibleSegments    prometheus.Counter
	UpstreamLatency       *prometheus.HistogramVec
	CacheLookups          *prometheus.CounterVec
	ErrorsCount           *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		RecommendationsServed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recommendations_served_total",
			Help:      "The total number of lounge recommendation responses",
		}),
		LayoverPlansBuilt: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "layover_plans_built_total",
			Help:      "The total number of layover plans produced",
		}),
		InfeasibleSegments: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "infeasible_segments_total",
			Help:      "Connection segments flagged as too tight for a lounge visit",
		}),
		UpstreamLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_seconds",
			Help:      "Latency of upstream flight-data calls",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
		CacheLookups: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "credential_cache_lookups_total",
			Help:      "Credential and token cache lookups by outcome",
		}, []string{"cache", "outcome"}),
		ErrorsCount: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
