package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks the sensitive field approval workflow.
type Metrics struct {
	OtpIssued        prometheus.Counter
	OtpVerifications *prometheus.CounterVec
	Decisions        *prometheus.CounterVec
}

func New() *Metrics {
	return &Metrics{
		OtpIssued: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hrm_sensitive_otp_issued_total",
			Help: "OTP challenges issued for sensitive field changes",
		}),
		OtpVerifications: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "hrm_sensitive_otp_verifications_total",
			Help: "OTP verification attempts by result",
		}, []string{"result"}),
		Decisions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "hrm_sensitive_decisions_total",
			Help: "Approve/reject attempts by action and result",
		}, []string{"action", "result"}),
	}
}

func (m *Metrics) IncrementOtpIssued() {
	if m != nil {
		m.OtpIssued.Inc()
	}
}

func (m *Metrics) IncrementVerification(result string) {
	if m != nil {
		m.OtpVerifications.WithLabelValues(result).Inc()
	}
}

func (m *Metrics) IncrementDecision(action, result string) {
	if m != nil {
		m.Decisions.WithLabelValues(action, result).Inc()
	}
}
