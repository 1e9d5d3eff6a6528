package metrics

import "time"

// RunRecord captures one simulated year for observability sinks.
type RunRecord struct {
	RunID              string
	Label              string
	Year               int
	Trials             int
	WindowDays         int
	SuccessProbability float64
	TotalCapacityKWh   float64
	TotalAccessibleKWh float64
	AvgNetKWh          float64
	Time               time.Time
}

// RunRecorder records completed simulation years. Implementations must be
// safe for sequential use from a single run loop; they are never called
// concurrently by the engine.
type RunRecorder interface {
	RecordRun(rec RunRecord) error
}

// OutcomeRecorder is implemented by sinks able to record per-trial outcome
// distributions, which only exist when raw capture is requested.
type OutcomeRecorder interface {
	RecordOutcomes(rec RunRecord, outcomes []float64) error
}

// NopRecorder implements RunRecorder with no-op methods.
type NopRecorder struct{}

func (NopRecorder) RecordRun(RunRecord) error                 { return nil }
func (NopRecorder) RecordOutcomes(RunRecord, []float64) error { return nil }
