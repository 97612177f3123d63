package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the employee event store.
type Metrics struct {
	Appends         *prometheus.CounterVec
	AppendConflicts prometheus.Counter
	ReplayLatency   prometheus.Histogram
}

// New registers the event store metrics on the default registry.
func New() *Metrics {
	return &Metrics{
		Appends: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "hrm_eventstore_appends_total",
			Help: "Total employee events appended by event type",
		}, []string{"event_type"}),

		AppendConflicts: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hrm_eventstore_append_conflicts_total",
			Help: "Appends retried because the sequence number was already taken",
		}),

		ReplayLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "hrm_eventstore_replay_duration_seconds",
			Help:    "Duration of loading and folding an employee aggregate",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

func (m *Metrics) IncrementAppend(eventType string) {
	if m != nil {
		m.Appends.WithLabelValues(eventType).Inc()
	}
}

func (m *Metrics) IncrementConflict() {
	if m != nil {
		m.AppendConflicts.Inc()
	}
}

func (m *Metrics) ObserveReplay(d time.Duration) {
	if m != nil {
		m.ReplayLatency.Observe(d.Seconds())
	}
}
