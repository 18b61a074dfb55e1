package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for entity deletions.
// Tracks outcomes per entity kind and how long each deletion took.
type Metrics struct {
	Deletions        *prometheus.CounterVec
	DeletionDuration *prometheus.HistogramVec
}

// New creates a new Metrics instance registered on reg.
// Pass prometheus.DefaultRegisterer to expose them on the default /metrics handler.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Deletions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "schooladmin_deletions_total",
			Help: "Total number of deletion requests by entity and outcome",
		}, []string{"entity", "outcome"}),
		DeletionDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "schooladmin_deletion_duration_seconds",
			Help:    "Duration of deletion requests including relationship handling",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"entity"}),
	}
}

// ObserveDeletion records one finished deletion.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveDeletion(entity, outcome string, start time.Time) {
	m.Deletions.WithLabelValues(entity, outcome).Inc()
	m.DeletionDuration.WithLabelValues(entity).Observe(time.Since(start).Seconds())
}
