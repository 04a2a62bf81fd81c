package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals
var (
	// Classifications tracks classified numbers by parity and sign
	Classifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "numclass_classifications_total",
			Help: "Total number of classified numbers",
		},
		[]string{"parity", "sign"},
	)

	// InvalidInputs tracks rejected number parameters
	InvalidInputs = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "numclass_invalid_inputs_total",
			Help: "Total number of rejected number parameters",
		},
	)

	// FactLookups tracks outbound fact lookups by outcome
	FactLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "numclass_fact_lookups_total",
			Help: "Total number of fact lookups against the numbers API",
		},
		[]string{"outcome"},
	)

	// FactLookupErrors tracks failed fact lookups by error code
	FactLookupErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "numclass_fact_lookup_errors_total",
			Help: "Total number of failed fact lookups by error code",
		},
		[]string{"code"},
	)

	// FactLookupLatency tracks outbound fact lookup latency
	FactLookupLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "numclass_fact_lookup_latency_seconds",
			Help:    "Fact lookup latency in seconds, retries included",
			Buckets: prometheus.DefBuckets,
		},
	)

	// FactCache tracks fact cache hits and misses
	FactCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "numclass_fact_cache_requests_total",
			Help: "Total number of fact cache requests",
		},
		[]string{"result"},
	)

	// FactRefreshes tracks background refresh tasks
	FactRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "numclass_fact_refreshes_total",
			Help: "Total number of background fact refresh events",
		},
		[]string{"event"},
	)
)
