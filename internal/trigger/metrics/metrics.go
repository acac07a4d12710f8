package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics covers trigger evaluation and releases.
type Metrics struct {
	Evaluations   *prometheus.CounterVec
	Releases      *prometheus.CounterVec
	BatchDuration prometheus.Histogram
}

func New() *Metrics {
	return &Metrics{
		Evaluations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "afternote_trigger_evaluations_total",
			Help: "Trigger evaluations by trigger and outcome",
		}, []string{"trigger", "outcome"}),
		Releases: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "afternote_trigger_releases_total",
			Help: "Newly recorded releases by reason",
		}, []string{"reason"}),
		BatchDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "afternote_trigger_batch_duration_seconds",
			Help:    "Time to evaluate one scheduler batch",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) IncrementEvaluation(trigger string, released bool) {
	if m == nil {
		return
	}
	outcome := "pending"
	if released {
		outcome = "released"
	}
	m.Evaluations.WithLabelValues(trigger, outcome).Inc()
}

func (m *Metrics) IncrementRelease(reason string) {
	if m != nil {
		m.Releases.WithLabelValues(reason).Inc()
	}
}

func (m *Metrics) ObserveBatch(d time.Duration) {
	if m != nil {
		m.BatchDuration.Observe(d.Seconds())
	}
}
