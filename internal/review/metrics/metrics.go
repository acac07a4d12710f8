package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics covers document submissions and admin decisions.
type Metrics struct {
	Submissions   prometheus.Counter
	Decisions     *prometheus.CounterVec
	DecisionLag   prometheus.Histogram
	StatusLookups *prometheus.CounterVec
}

func New() *Metrics {
	return &Metrics{
		Submissions: promauto.NewCounter(prometheus.CounterOpts{
			Name: "afternote_review_submissions_total",
			Help: "Delivery verification submissions accepted",
		}),
		Decisions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "afternote_review_decisions_total",
			Help: "Admin decisions by outcome",
		}, []string{"decision"}),
		DecisionLag: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "afternote_review_decision_lag_seconds",
			Help:    "Time from submission to decision",
			Buckets: []float64{60, 600, 3600, 6 * 3600, 24 * 3600, 3 * 24 * 3600, 7 * 24 * 3600},
		}),
		StatusLookups: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "afternote_review_status_lookups_total",
			Help: "Latest status lookups by source",
		}, []string{"source"}),
	}
}

func (m *Metrics) IncrementSubmitted() {
	if m != nil {
		m.Submissions.Inc()
	}
}

func (m *Metrics) IncrementDecision(decision string, lag time.Duration) {
	if m == nil {
		return
	}
	m.Decisions.WithLabelValues(decision).Inc()
	m.DecisionLag.Observe(lag.Seconds())
}

func (m *Metrics) IncrementStatusLookup(source string) {
	if m != nil {
		m.StatusLookups.WithLabelValues(source).Inc()
	}
}
