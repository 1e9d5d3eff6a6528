package config

import "fmt"

// ScenarioConfig holds the simulation parameters.
type ScenarioConfig struct {
	// Label identifies the scenario in results, exports and sinks.
	Label string `json:"label"`
	// Trials is the number of Monte Carlo trials per simulated year.
	Trials int `json:"trials"`
	// WindowDays is the number of consecutive off-grid days per trial.
	WindowDays int `json:"window_days"`
	// Years enables a multi-year run when greater than 1.
	Years int `json:"years"`
	// Seed fixes the random source; 0 seeds from the wall clock.
	Seed uint64 `json:"seed"`
	// CaptureRaw keeps the per-trial outcomes in results and exports.
	CaptureRaw bool `json:"capture_raw"`
	// Reset restores the engine to its construction state after a
	// multi-year run.
	Reset bool `json:"reset"`
	// Workers fans the trial loop out over this many goroutines.
	Workers int `json:"workers"`
}

// SetDefaults applies sane defaults.
func (c *ScenarioConfig) SetDefaults() {
	if c.Label == "" {
		c.Label = "scenario"
	}
	if c.Trials == 0 {
		c.Trials = 10000
	}
	if c.WindowDays == 0 {
		c.WindowDays = 3
	}
	if c.Years == 0 {
		c.Years = 1
	}
	if c.Workers == 0 {
		c.Workers = 1
	}
}

// Validate checks mandatory fields.
func (c ScenarioConfig) Validate() error {
	if c.Trials <= 0 {
		return fmt.Errorf("trials must be positive")
	}
	if c.WindowDays <= 0 {
		return fmt.Errorf("window_days must be positive")
	}
	if c.Years < 1 {
		return fmt.Errorf("years must be at least 1")
	}
	return nil
}

// BatteryConfig describes one storage unit.
type BatteryConfig struct {
	CapacityKWh float64 `json:"capacity_kwh"`
	ReservePct  float64 `json:"reserve_pct"`
	// DegradationSchedule lists per-year fractional capacity losses,
	// consumed front-to-back in multi-year runs.
	DegradationSchedule []float64 `json:"degradation_schedule"`
}

// ProfileConfig describes the daily net consumption distribution.
type ProfileConfig struct {
	AvgNetKWh           float64   `json:"avg_net_kwh"`
	StdevNetKWh         float64   `json:"stdev_net_kwh"`
	DegradationSchedule []float64 `json:"degradation_schedule"`
}

// SweepConfig describes an optional capacity sweep: the scenario is re-run
// with the first battery's capacity swept over [FromKWh, ToKWh].
type SweepConfig struct {
	FromKWh float64 `json:"from_kwh"`
	ToKWh   float64 `json:"to_kwh"`
	StepKWh float64 `json:"step_kwh"`
}

// Enabled reports whether a sweep range was configured.
func (c SweepConfig) Enabled() bool {
	return c.StepKWh > 0
}

// Validate checks the sweep range when one is configured.
func (c SweepConfig) Validate() error {
	if !c.Enabled() {
		return nil
	}
	if c.ToKWh < c.FromKWh {
		return fmt.Errorf("sweep to_kwh must not be below from_kwh")
	}
	if c.FromKWh <= 0 {
		return fmt.Errorf("sweep from_kwh must be positive")
	}
	return nil
}
