package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics covers receiver reads of legacy content.
type Metrics struct {
	Reads      *prometheus.CounterVec
	FirstReads prometheus.Counter
	Misses     *prometheus.CounterVec
}

func New() *Metrics {
	return &Metrics{
		Reads: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "afternote_legacy_reads_total",
			Help: "Legacy reads by content kind and operation",
		}, []string{"kind", "operation"}),
		FirstReads: promauto.NewCounter(prometheus.CounterOpts{
			Name: "afternote_legacy_time_letters_first_read_total",
			Help: "Time letter deliveries opened for the first time",
		}),
		Misses: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "afternote_legacy_not_found_total",
			Help: "Detail reads outside the receiver's share set",
		}, []string{"kind"}),
	}
}

func (m *Metrics) IncrementRead(kind, operation string) {
	if m != nil {
		m.Reads.WithLabelValues(kind, operation).Inc()
	}
}

func (m *Metrics) IncrementFirstRead() {
	if m != nil {
		m.FirstReads.Inc()
	}
}

func (m *Metrics) IncrementMiss(kind string) {
	if m != nil {
		m.Misses.WithLabelValues(kind).Inc()
	}
}
