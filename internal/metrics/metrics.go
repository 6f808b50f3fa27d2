// Package metrics exposes prometheus collectors for scan activity.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Batch outcomes.
const (
	OutcomeEmpty  = "empty"
	OutcomeClean  = "clean"
	OutcomeIssues = "issues"
	OutcomeFailed = "failed"
)

// ScanMetrics defines the metrics operations needed by the scanner.
type ScanMetrics interface {
	IncSessionsCreated()
	AddSessionsSwept(count int)
	IncBatches(outcome string)
	ObserveLinterDuration(duration time.Duration)
	IncStopRequests()
}

// Scan implements ScanMetrics.
type Scan struct {
	SessionsCreated prometheus.Counter
	SessionsSwept   prometheus.Counter
	Batches         *prometheus.CounterVec
	LinterDuration  prometheus.Histogram
	StopRequests    prometheus.Counter
}

const namespace = "phpcompat"

// New creates the scan collectors and registers them with reg. A nil reg
// means the default registerer.
func New(reg prometheus.Registerer) *Scan {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	factory := promauto.With(reg)

	return &Scan{
		SessionsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_created_total",
			Help:      "Total number of scan sessions created",
		}),
		SessionsSwept: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_swept_total",
			Help:      "Total number of expired scan sessions removed",
		}),
		Batches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batches_scanned_total",
			Help:      "Total number of batches scanned, by outcome",
		}, []string{"outcome"}),
		LinterDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "linter_duration_seconds",
			Help:      "Time taken by one linter invocation",
			Buckets:   prometheus.ExponentialBuckets(0.25, 2, 12),
		}),
		StopRequests: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stop_requests_total",
			Help:      "Total number of cooperative stop requests",
		}),
	}
}

func (s *Scan) IncSessionsCreated() { s.SessionsCreated.Inc() }

func (s *Scan) AddSessionsSwept(count int) {
	if count > 0 {
		s.SessionsSwept.Add(float64(count))
	}
}

func (s *Scan) IncBatches(outcome string) { s.Batches.WithLabelValues(outcome).Inc() }

func (s *Scan) ObserveLinterDuration(duration time.Duration) {
	s.LinterDuration.Observe(duration.Seconds())
}

func (s *Scan) IncStopRequests() { s.StopRequests.Inc() }

// Noop discards every observation.
type Noop struct{}

func (Noop) IncSessionsCreated()                  {}
func (Noop) AddSessionsSwept(int)                 {}
func (Noop) IncBatches(string)                    {}
func (Noop) ObserveLinterDuration(time.Duration) {}
func (Noop) IncStopRequests()                     {}
