package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	coremetrics "github.com/CjMullins87/solar-battery-sim/core/metrics"
)

func TestPromSinkRecordRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(reg)
	if err != nil {
		t.Fatalf("new sink: %v", err)
	}

	rec := coremetrics.RunRecord{
		RunID:              "run-1",
		Label:              "winter",
		Year:               0,
		Trials:             100,
		SuccessProbability: 0.97,
		Time:               time.Now(),
	}
	if err := sink.RecordRun(rec); err != nil {
		t.Fatalf("record run: %v", err)
	}
	rec.Year = 1
	rec.SuccessProbability = 0.9
	if err := sink.RecordRun(rec); err != nil {
		t.Fatalf("record run: %v", err)
	}

	expected := `
# HELP simulation_runs_total Total number of simulated years
# TYPE simulation_runs_total counter
simulation_runs_total{label="winter"} 2
`
	if err := testutil.CollectAndCompare(sink.runs, strings.NewReader(expected)); err != nil {
		t.Fatalf("unexpected counter state: %v", err)
	}
	if got := testutil.ToFloat64(sink.probability.WithLabelValues("winter", "1")); got != 0.9 {
		t.Fatalf("probability gauge = %v, want 0.9", got)
	}
}

func TestPromSinkRecordOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(reg)
	if err != nil {
		t.Fatalf("new sink: %v", err)
	}
	rec := coremetrics.RunRecord{Label: "winter"}
	if err := sink.RecordOutcomes(rec, []float64{-5, 0, 12.5}); err != nil {
		t.Fatalf("record outcomes: %v", err)
	}
	if c := testutil.CollectAndCount(sink.outcomes); c == 0 {
		t.Fatalf("no histogram samples collected")
	}
}

func TestPromSinkDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewPromSinkWithRegistry(reg); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	// A second sink on the same registry must reuse the collectors.
	if _, err := NewPromSinkWithRegistry(reg); err != nil {
		t.Fatalf("second registration: %v", err)
	}
}
