package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics covers receiver verification and capability checks.
type Metrics struct {
	MasterKeyVerifications *prometheus.CounterVec
	EmailCodes             *prometheus.CounterVec
	CapabilityLookups      *prometheus.CounterVec
	AccessDecisions        *prometheus.CounterVec
	ReceiversRegistered    prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		MasterKeyVerifications: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "afternote_receiverauth_master_key_verifications_total",
			Help: "Master key verifications by outcome",
		}, []string{"outcome"}),
		EmailCodes: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "afternote_receiverauth_email_codes_total",
			Help: "Email code events by stage and outcome",
		}, []string{"stage", "outcome"}),
		CapabilityLookups: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "afternote_receiverauth_capability_lookups_total",
			Help: "authCode resolutions by source",
		}, []string{"source"}),
		AccessDecisions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "afternote_receiverauth_access_decisions_total",
			Help: "Legacy access decisions by result",
		}, []string{"granted"}),
		ReceiversRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "afternote_receiverauth_receivers_registered_total",
			Help: "Receivers registered by owners",
		}),
	}
}

func (m *Metrics) IncrementMasterKey(outcome string) {
	if m != nil {
		m.MasterKeyVerifications.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) IncrementEmailCode(stage, outcome string) {
	if m != nil {
		m.EmailCodes.WithLabelValues(stage, outcome).Inc()
	}
}

func (m *Metrics) IncrementCapabilityLookup(source string) {
	if m != nil {
		m.CapabilityLookups.WithLabelValues(source).Inc()
	}
}

func (m *Metrics) IncrementAccessDecision(granted bool) {
	if m == nil {
		return
	}
	label := "false"
	if granted {
		label = "true"
	}
	m.AccessDecisions.WithLabelValues(label).Inc()
}

func (m *Metrics) IncrementRegistered() {
	if m != nil {
		m.ReceiversRegistered.Inc()
	}
}
