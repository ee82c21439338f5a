// Package metrics declares the Prometheus instruments served by the HTTP
// service's /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MidlineNamespace is the namespace for all midline related metrics
const MidlineNamespace = "midline"

// Ingest and store metrics
var (
	SamplesIngested = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MidlineNamespace,
		Name:      "samples_ingested",
		Help:      "Count of samples accepted from the line protocol, per series",
	}, []string{"series"})
	IngestErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: MidlineNamespace,
		Name:      "ingest_errors",
		Help:      "Count of malformed lines rejected by the ingest listener",
	})
	OpenConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: MidlineNamespace,
		Name:      "open_connections",
		Help:      "Number of ingest connections currently open",
	})
	KnownSeries = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: MidlineNamespace,
		Name:      "known_series",
		Help:      "Number of series the store knows about",
	})
	SeriesMedian = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: MidlineNamespace,
		Name:      "series_median",
		Help:      "Median of each series' retained window, refreshed on every heartbeat",
	}, []string{"series"})
	SummaryRequests = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: MidlineNamespace,
		Name:      "summary_requests",
		Help:      "Count of summaries computed for the HTTP service",
	})
)
