package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	apperrors "github.com/agbru/intcalc/internal/errors"
)

// Submission outcomes.
const (
	OutcomeSuccess   = "success"
	OutcomeService   = "service_error"
	OutcomeTransport = "transport_error"
	OutcomeMalformed = "malformed"
	OutcomeCanceled  = "canceled"
	OutcomeRejected  = "rejected"
)

const namespace = "intcalc"

// Recorder owns the registry and the client instruments. A nil *Recorder
// records nothing.
type Recorder struct {
	registry    *prometheus.Registry
	submissions *prometheus.CounterVec
	duration    prometheus.Histogram
	transitions *prometheus.CounterVec
}

// NewRecorder creates a recorder with its own registry, including the Go
// runtime collector.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Calculation submissions by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "submission_duration_seconds",
			Help:      "Round-trip time of calculation submissions.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "state_transitions_total",
			Help:      "UI state transitions by target state.",
		}, []string{"to"}),
	}
	r.registry.MustRegister(r.submissions, r.duration, r.transitions, collectors.NewGoCollector())
	return r
}

// ObserveSubmission counts a settled submission and its latency.
// Rejected submissions never reached the network, so no latency is recorded.
func (r *Recorder) ObserveSubmission(outcome string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.submissions.WithLabelValues(outcome).Inc()
	if outcome != OutcomeRejected {
		r.duration.Observe(elapsed.Seconds())
	}
}

// ObserveTransition counts a UI state change.
func (r *Recorder) ObserveTransition(to string) {
	if r == nil {
		return
	}
	r.transitions.WithLabelValues(to).Inc()
}

// Gatherer exposes the registry.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteFile dumps the registry in the text exposition format.
func (r *Recorder) WriteFile(path string) error {
	return apperrors.WrapError(prometheus.WriteToTextfile(path, r.Gatherer()), "writing metrics to %s", path)
}
