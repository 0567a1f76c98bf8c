package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Kenkin2/kin2-web-sub004/internal/domain"
)

var (
	MatchesComputedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matches_computed_total",
			Help: "Total number of match computations by recommendation tier",
		},
		[]string{"recommendation"},
	)
	OverallScoreHistogram = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "match_overall_score",
			Help:    "Distribution of overall match scores (0-100)",
			Buckets: []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		},
	)
	DimensionScoreHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "match_dimension_score",
			Help:    "Distribution of per-dimension match scores",
			Buckets: []float64{1, 2.5, 5, 7.5, 10, 15, 20, 25, 30},
		},
		[]string{"dimension"},
	)
	ConfidenceHistogram = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "match_confidence",
			Help:    "Distribution of match confidence ([0,1])",
			Buckets: []float64{0.5, 0.6, 0.7, 0.8, 0.9, 1.0},
		},
	)
)

var registerOnce sync.Once

// InitMetrics registers the match metrics with the default registry.
// Call once from the host process.
func InitMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(MatchesComputedTotal)
		prometheus.MustRegister(OverallScoreHistogram)
		prometheus.MustRegister(DimensionScoreHistogram)
		prometheus.MustRegister(ConfidenceHistogram)
	})
}

// ObserveMatch records the outcome distributions for one result.
func ObserveMatch(res domain.MatchResult) {
	MatchesComputedTotal.WithLabelValues(string(res.Recommendation)).Inc()
	OverallScoreHistogram.Observe(res.Overall)
	ConfidenceHistogram.Observe(res.Confidence)
	for _, sub := range res.SubScores() {
		DimensionScoreHistogram.WithLabelValues(sub.Dimension).Observe(sub.Score)
	}
}
