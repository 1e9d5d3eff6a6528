package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/CjMullins87/solar-battery-sim/core/metrics"
)

// PromSink records simulation runs in Prometheus metrics. Useful for long
// sweeps where progress is scraped while the batch is still running.
type PromSink struct {
	runs        *prometheus.CounterVec
	probability *prometheus.GaugeVec
	outcomes    *prometheus.HistogramVec
}

// NewPromSink registers run metrics on the default Prometheus registerer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "simulation_runs_total",
		Help: "Total number of simulated years",
	}, []string{"label"})
	probability := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "simulation_success_probability",
		Help: "Success probability of the most recent run per scenario and year",
	}, []string{"label", "year"})
	outcomes := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "simulation_trial_outcome_kwh",
		Help:    "Distribution of per-trial net outcomes in kWh",
		Buckets: prometheus.LinearBuckets(-50, 10, 21),
	}, []string{"label"})

	if err := reg.Register(runs); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			runs = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(probability); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			probability = are.ExistingCollector.(*prometheus.GaugeVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(outcomes); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			outcomes = are.ExistingCollector.(*prometheus.HistogramVec)
		} else {
			return nil, err
		}
	}

	return &PromSink{runs: runs, probability: probability, outcomes: outcomes}, nil
}

// RecordRun increments the run counter and sets the probability gauge.
func (s *PromSink) RecordRun(rec coremetrics.RunRecord) error {
	s.runs.WithLabelValues(rec.Label).Inc()
	s.probability.WithLabelValues(rec.Label, strconv.Itoa(rec.Year)).Set(rec.SuccessProbability)
	return nil
}

// RecordOutcomes feeds the per-trial outcome histogram.
func (s *PromSink) RecordOutcomes(rec coremetrics.RunRecord, outcomes []float64) error {
	h := s.outcomes.WithLabelValues(rec.Label)
	for _, o := range outcomes {
		h.Observe(o)
	}
	return nil
}
