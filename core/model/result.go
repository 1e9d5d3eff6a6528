package model

// SimulationResult summarises one simulated year.
type SimulationResult struct {
	// SuccessProbability is the fraction of trials that survived the
	// window, rounded to 4 decimal places.
	SuccessProbability float64 `json:"success_probability"`
	// TotalCapacityKWh is the summed battery capacity at run time.
	TotalCapacityKWh float64 `json:"total_capacity_kwh"`
	// TotalAccessibleKWh is the summed accessible capacity at run time.
	TotalAccessibleKWh float64 `json:"total_accessible_kwh"`
	// AvgNetConsumptionKWh is the profile mean at run time.
	AvgNetConsumptionKWh float64 `json:"avg_net_consumption_kwh"`
	// RawOutcomes holds the per-trial outcome (accessible capacity plus
	// net consumption over the window). Nil unless capture was requested.
	RawOutcomes []float64 `json:"raw_outcomes,omitempty"`
}

// YearResult is one entry of a multi-year run. Year is the authoritative
// ordering; Key is the label-based identifier kept for reports, which would
// sort "y10" before "y2" if used for ordering.
type YearResult struct {
	Year   int              `json:"year"`
	Key    string           `json:"key"`
	Result SimulationResult `json:"result"`
}
