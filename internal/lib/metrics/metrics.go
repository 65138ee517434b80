package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "corpsite"

// Metrics owns its registry so tests can create as many as they need.
type Metrics struct {
	registry *prometheus.Registry

	sessionsStarted *prometheus.CounterVec
	submissions     *prometheus.CounterVec
	submitDuration  *prometheus.HistogramVec
	received        *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		sessionsStarted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "wizard",
				Name:      "sessions_started_total",
				Help:      "Wizard sessions started by form",
			},
			[]string{"form"},
		),
		submissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "wizard",
				Name:      "submissions_total",
				Help:      "Wizard submit attempts by form and result",
			},
			[]string{"form", "result"},
		),
		submitDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "wizard",
				Name:      "submit_duration_seconds",
				Help:      "Duration of submission calls in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms to ~10s
			},
			[]string{"form"},
		),
		received: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "inbox",
				Name:      "received_total",
				Help:      "Payloads accepted by the inbox by form",
			},
			[]string{"form"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.sessionsStarted,
		m.submissions,
		m.submitDuration,
		m.received,
	)
	return m
}

// SessionStarted records a new wizard session.
func (m *Metrics) SessionStarted(form string) {
	m.sessionsStarted.WithLabelValues(form).Inc()
}

// SubmissionFinished records one submit attempt. Only attempts that reached
// the submitter carry a duration.
func (m *Metrics) SubmissionFinished(form, result string, elapsed time.Duration) {
	m.submissions.WithLabelValues(form, result).Inc()
	if elapsed > 0 {
		m.submitDuration.WithLabelValues(form).Observe(elapsed.Seconds())
	}
}

func (m *Metrics) SubmissionReceived(form string) {
	m.received.WithLabelValues(form).Inc()
}

// WatchGauge exposes a value read at scrape time, e.g. live clients.
func (m *Metrics) WatchGauge(subsystem, name, help string, fn func() int) {
	m.registry.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      name,
			Help:      help,
		},
		func() float64 { return float64(fn()) },
	))
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
