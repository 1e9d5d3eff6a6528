package metrics

import (
	"testing"

	coremetrics "github.com/CjMullins87/solar-battery-sim/core/metrics"
)

type countingSink struct {
	runs     int
	outcomes int
}

func (c *countingSink) RecordRun(coremetrics.RunRecord) error { c.runs++; return nil }
func (c *countingSink) RecordOutcomes(coremetrics.RunRecord, []float64) error {
	c.outcomes++
	return nil
}

type runOnlySink struct{ runs int }

func (r *runOnlySink) RecordRun(coremetrics.RunRecord) error { r.runs++; return nil }

func TestMultiSinkFansOut(t *testing.T) {
	a := &countingSink{}
	b := &runOnlySink{}
	m := NewMultiSink(a, b)

	if err := m.RecordRun(coremetrics.RunRecord{}); err != nil {
		t.Fatalf("record run: %v", err)
	}
	if a.runs != 1 || b.runs != 1 {
		t.Fatalf("runs not forwarded: a=%d b=%d", a.runs, b.runs)
	}

	// Outcomes only reach sinks implementing OutcomeRecorder.
	if err := m.RecordOutcomes(coremetrics.RunRecord{}, []float64{1}); err != nil {
		t.Fatalf("record outcomes: %v", err)
	}
	if a.outcomes != 1 {
		t.Fatalf("outcomes not forwarded: %d", a.outcomes)
	}
}
