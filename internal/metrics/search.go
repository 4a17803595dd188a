package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search pipeline Prometheus metrics.
var (
	SearchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "matchmaker",
			Name:      "search_duration_seconds",
			Help:      "End-to-end search duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
	)

	SearchResultsReturned = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "matchmaker",
			Name:      "search_results_returned",
			Help:      "Number of results returned per search",
			Buckets:   []float64{0, 1, 2, 5, 10, 20},
		},
	)

	SearchChannelDegradations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "matchmaker",
			Name:      "search_channel_degradations_total",
			Help:      "Retrieval channels degraded to empty results",
		},
		[]string{"channel"}, // "vector" / "structured"
	)

	ParserFallbacksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "matchmaker",
			Name:      "parser_fallbacks_total",
			Help:      "Queries where the LLM parser failed and the rule-based parser took over",
		},
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers the search metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchDuration)
	prometheus.MustRegister(SearchResultsReturned)
	prometheus.MustRegister(SearchChannelDegradations)
	prometheus.MustRegister(ParserFallbacksTotal)
	searchMetricsRegistered = true
}
