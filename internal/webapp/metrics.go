package webapp

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/goliatone/go-confform/pkg/submission"
)

// Metrics holds the collectors exported on /metrics.
type Metrics struct {
	Submissions *prometheus.CounterVec
	Duration    prometheus.Histogram
	Rejected    *prometheus.CounterVec
	Sessions    prometheus.GaugeFunc
}

// NewMetrics registers the form collectors on registry. sessions reports the
// number of live form instances.
func NewMetrics(registry *prometheus.Registry, sessions func() float64) (*Metrics, error) {
	m := &Metrics{
		Submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "confform_submissions_total",
			Help: "Submit actions that reached the creation endpoint, by outcome",
		}, []string{"outcome"}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "confform_submission_duration_seconds",
			Help:    "Round-trip time of the creation request",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
		}),
		Rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "confform_submissions_rejected_total",
			Help: "Submit actions refused before any request was sent, by reason",
		}, []string{"reason"}),
		Sessions: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "confform_sessions",
			Help: "Live form instances",
		}, sessions),
	}
	if err := registry.Register(m); err != nil {
		return nil, fmt.Errorf("webapp: register metrics: %w", err)
	}
	return m, nil
}

func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	m.Submissions.Describe(ch)
	m.Duration.Describe(ch)
	m.Rejected.Describe(ch)
	m.Sessions.Describe(ch)
}

func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	m.Submissions.Collect(ch)
	m.Duration.Collect(ch)
	m.Rejected.Collect(ch)
	m.Sessions.Collect(ch)
}

// Observe is installed as the controller observer.
func (m *Metrics) Observe(outcome submission.Outcome) {
	m.Submissions.WithLabelValues(outcome.Status.String()).Inc()
	m.Duration.Observe(outcome.Elapsed.Seconds())
}

func (m *Metrics) Reject(reason string) {
	m.Rejected.WithLabelValues(reason).Inc()
}
