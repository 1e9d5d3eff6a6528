package model

// ConsumptionProfile describes one day's net energy balance as a normal
// distribution. Net consumption is production minus consumption: a negative
// mean means the household consumes more than it produces.
type ConsumptionProfile struct {
	MeanDailyKWh float64 // mean of the daily net balance, mutated by Degrade
	// StdDevDailyKWh is deliberately not range-validated; a negative value
	// fails at the first draw rather than at construction.
	StdDevDailyKWh float64

	schedule []float64
	cursor   int
}

// NewConsumptionProfile builds a profile with the given daily mean and
// standard deviation in kWh and a per-year degradation schedule for the
// mean. Schedule elements must be in [0,1).
func NewConsumptionProfile(meanDailyKWh, stdDevDailyKWh float64, schedule []float64) (*ConsumptionProfile, error) {
	if err := checkSchedule(schedule, "degradation_schedule"); err != nil {
		return nil, err
	}
	p := &ConsumptionProfile{MeanDailyKWh: meanDailyKWh, StdDevDailyKWh: stdDevDailyKWh}
	if len(schedule) > 0 {
		p.schedule = append([]float64(nil), schedule...)
	}
	return p, nil
}

// Degrade consumes the next schedule entry and reduces the mean by that
// fraction, covering scenarios where the household grows less efficient
// year over year. No-op once the schedule is exhausted.
func (p *ConsumptionProfile) Degrade() {
	if p.cursor >= len(p.schedule) {
		return
	}
	pct := p.schedule[p.cursor]
	p.cursor++
	p.MeanDailyKWh -= p.MeanDailyKWh * pct
}

// ScheduleRemaining reports how many degradation steps are left.
func (p *ConsumptionProfile) ScheduleRemaining() int {
	return len(p.schedule) - p.cursor
}

// Clone returns an independent copy sharing the immutable schedule slice.
func (p *ConsumptionProfile) Clone() *ConsumptionProfile {
	c := *p
	return &c
}
