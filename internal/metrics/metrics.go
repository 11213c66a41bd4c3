// Package metrics instruments the orchestrator with Prometheus counters and
// a histogram, kept behind a small interface so the core validator never
// has to import Prometheus directly and stays usable as a bare library.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Recorder is what the orchestrator reports through after every check call.
type Recorder interface {
	ObserveCheck(feasible bool, firstFailureEventID string, itemCount int)
}

// Prometheus is a Recorder backed by a CounterVec of outcomes and a
// Histogram of mission sizes seen.
type Prometheus struct {
	outcomes  *prometheus.CounterVec
	itemCount prometheus.Histogram
}

// NewPrometheus registers its collectors on reg and returns a Recorder.
func NewPrometheus(reg prometheus.Registerer) (*Prometheus, error) {
	p := &Prometheus{
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mission_feasibility",
			Name:      "checks_total",
			Help:      "Mission feasibility checks by outcome and first failure event ID.",
		}, []string{"feasible", "first_failure"}),
		itemCount: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "mission_feasibility",
			Name:      "mission_item_count",
			Help:      "Number of mission items processed per check call.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
	}

	if err := reg.Register(p.outcomes); err != nil {
		return nil, err
	}
	if err := reg.Register(p.itemCount); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Prometheus) ObserveCheck(feasible bool, firstFailureEventID string, itemCount int) {
	label := "false"
	if feasible {
		label = "true"
		firstFailureEventID = ""
	}
	p.outcomes.WithLabelValues(label, firstFailureEventID).Inc()
	p.itemCount.Observe(float64(itemCount))
}

// Noop is a Recorder that discards everything; it is the default so the
// validator never requires a registry to be constructed.
type Noop struct{}

func (Noop) ObserveCheck(bool, string, int) {}
