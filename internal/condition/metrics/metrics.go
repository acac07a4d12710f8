package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for delivery condition writes.
type Metrics struct {
	ConditionsSaved    *prometheus.CounterVec
	InvalidConditions  prometheus.Counter
	LeaveMessageWrites prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		ConditionsSaved: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "afternote_condition_saved_total",
			Help: "Delivery conditions saved by trigger and delivery method",
		}, []string{"trigger", "method"}),
		InvalidConditions: promauto.NewCounter(prometheus.CounterOpts{
			Name: "afternote_condition_invalid_total",
			Help: "Delivery condition saves rejected as invalid",
		}),
		LeaveMessageWrites: promauto.NewCounter(prometheus.CounterOpts{
			Name: "afternote_condition_leave_message_updates_total",
			Help: "Farewell message updates",
		}),
	}
}

func (m *Metrics) IncrementSaved(trigger, method string) {
	if m != nil {
		m.ConditionsSaved.WithLabelValues(trigger, method).Inc()
	}
}

func (m *Metrics) IncrementInvalid() {
	if m != nil {
		m.InvalidConditions.Inc()
	}
}

func (m *Metrics) IncrementLeaveMessage() {
	if m != nil {
		m.LeaveMessageWrites.Inc()
	}
}
