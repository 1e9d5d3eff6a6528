package metrics

import coremetrics "github.com/CjMullins87/solar-battery-sim/core/metrics"

// MultiSink fans run records out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.RunRecorder
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.RunRecorder) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordRun forwards the record to all sinks, returning the first error
// encountered.
func (m *MultiSink) RecordRun(rec coremetrics.RunRecord) error {
	for _, s := range m.Sinks {
		if err := s.RecordRun(rec); err != nil {
			return err
		}
	}
	return nil
}

// RecordOutcomes forwards raw outcomes to sinks that accept them.
func (m *MultiSink) RecordOutcomes(rec coremetrics.RunRecord, outcomes []float64) error {
	for _, s := range m.Sinks {
		if or, ok := s.(coremetrics.OutcomeRecorder); ok {
			if err := or.RecordOutcomes(rec, outcomes); err != nil {
				return err
			}
		}
	}
	return nil
}
