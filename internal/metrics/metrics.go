package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes Prometheus collectors for the reply chain.
type Metrics struct {
	replies  *prometheus.CounterVec
	failures prometheus.Counter
	duration prometheus.Histogram
}

// MustNewMetrics registers the collectors on reg and panics on a
// registration conflict. A nil reg means the default registerer.
func MustNewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		replies: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "bodai",
				Subsystem: "reply",
				Name:      "stage_total",
				Help:      "Replies produced, by the stage that answered.",
			},
			[]string{"stage"},
		),
		failures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "bodai",
				Subsystem: "reply",
				Name:      "failures_total",
				Help:      "Messages that could not be answered because of a store error.",
			},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "bodai",
				Subsystem: "reply",
				Name:      "duration_seconds",
				Help:      "Time spent selecting a reply.",
				Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
			},
		),
	}

	reg.MustRegister(m.replies, m.failures, m.duration)
	return m
}

// ObserveReply records one answered message.
func (m *Metrics) ObserveReply(stage string, took time.Duration) {
	if m == nil {
		return
	}
	m.replies.WithLabelValues(stage).Inc()
	m.duration.Observe(took.Seconds())
}

func (m *Metrics) IncFailure() {
	if m == nil {
		return
	}
	m.failures.Inc()
}
