package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	coremetrics "github.com/CjMullins87/solar-battery-sim/core/metrics"
)

func TestInfluxSinkRecordRun(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		body = string(data)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	sink := NewInfluxSink(srv.URL, "token", "org", "bucket")
	defer sink.Close()

	rec := coremetrics.RunRecord{
		RunID:              "run-1",
		Label:              "winter",
		Year:               2,
		Trials:             500,
		WindowDays:         3,
		SuccessProbability: 0.8123,
		TotalCapacityKWh:   20,
		TotalAccessibleKWh: 18,
		AvgNetKWh:          -3.25,
		Time:               time.Now(),
	}
	if err := sink.RecordRun(rec); err != nil {
		t.Fatalf("record run: %v", err)
	}

	for _, want := range []string{
		"simulation_run",
		`label=winter`,
		`year=2`,
		`run_id=run-1`,
		"success_probability=0.8123",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("line protocol missing %q in %q", want, body)
		}
	}
}
