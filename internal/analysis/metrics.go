package analysis

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// analysisRunsTotal counts analysis runs by result (ok, invalid, not_found, error).
	analysisRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "basket_analysis_runs_total",
		Help: "Total analysis runs by result",
	}, []string{"result"})

	// analysisDuration tracks load + mine + derive latency.
	analysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "basket_analysis_duration_seconds",
		Help:    "Analysis duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 14), // 1ms to ~8s
	})

	analysisItemsets = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "basket_analysis_frequent_itemsets",
		Help:    "Number of frequent itemsets per analysis",
		Buckets: []float64{0, 1, 10, 100, 1000, 10000},
	})

	analysisRules = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "basket_analysis_rules",
		Help:    "Number of association rules per analysis",
		Buckets: []float64{0, 1, 10, 100, 1000, 10000},
	})

	// analysisShared counts callers that received another caller's in-flight result.
	analysisShared = promauto.NewCounter(prometheus.CounterOpts{
		Name: "basket_analysis_shared_total",
		Help: "Analysis requests served by an identical in-flight run",
	})
)
