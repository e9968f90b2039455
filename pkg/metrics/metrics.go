package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles the engine's observability counters. Register the
// collectors on whatever registry the embedding process exposes.
type Metrics struct {
	EvaluationsTotal    *prometheus.CounterVec
	ConflictsTotal      *prometheus.CounterVec
	ScoringDuration     prometheus.Histogram
	FacultiesPerRanking prometheus.Histogram
}

// New creates the collector set under the courseload namespace.
func New() *Metrics {
	return &Metrics{
		EvaluationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "courseload",
			Name:      "evaluations_total",
			Help:      "Engine invocations by operation.",
		}, []string{"operation"}),
		ConflictsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "courseload",
			Name:      "conflicts_total",
			Help:      "Detected conflicts by reason.",
		}, []string{"reason"}),
		ScoringDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "courseload",
			Name:      "scoring_duration_seconds",
			Help:      "Wall time of one ranking call.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}),
		FacultiesPerRanking: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "courseload",
			Name:      "faculties_per_ranking",
			Help:      "Catalog size per ranking call.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
	}
}

// Register attaches every collector to the given registerer.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		m.EvaluationsTotal,
		m.ConflictsTotal,
		m.ScoringDuration,
		m.FacultiesPerRanking,
	} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
