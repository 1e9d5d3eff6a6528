package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/CjMullins87/solar-battery-sim/core/model"
)

// Report couples a run identifier with its per-year results.
type Report struct {
	RunID   string             `json:"run_id"`
	Label   string             `json:"label"`
	Results []model.YearResult `json:"results"`
}

// WriteJSON writes the report to w in JSON format.
func WriteJSON(w io.Writer, rep Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

// WriteCSV writes one row per simulated year. Raw outcomes are omitted;
// use WriteOutcomesCSV for those.
func WriteCSV(w io.Writer, rep Report) error {
	cw := csv.NewWriter(w)
	header := []string{"run_id", "key", "year", "success_probability",
		"total_capacity_kwh", "total_accessible_kwh", "avg_net_kwh"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, yr := range rep.Results {
		rec := []string{
			rep.RunID,
			yr.Key,
			strconv.Itoa(yr.Year),
			strconv.FormatFloat(yr.Result.SuccessProbability, 'f', 4, 64),
			strconv.FormatFloat(yr.Result.TotalCapacityKWh, 'f', -1, 64),
			strconv.FormatFloat(yr.Result.TotalAccessibleKWh, 'f', -1, 64),
			strconv.FormatFloat(yr.Result.AvgNetConsumptionKWh, 'f', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteOutcomesCSV writes every captured trial outcome, one row per trial.
func WriteOutcomesCSV(w io.Writer, rep Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"key", "trial", "outcome_kwh"}); err != nil {
		return err
	}
	for _, yr := range rep.Results {
		for i, o := range yr.Result.RawOutcomes {
			rec := []string{yr.Key, strconv.Itoa(i), strconv.FormatFloat(o, 'f', -1, 64)}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
