package model

// Battery models a storage unit with a usable capacity and a reserve margin
// kept off-limits during off-grid operation.
type Battery struct {
	CapacityKWh float64 // total capacity in kWh, mutated by Degrade
	ReservePct  float64 // fraction of capacity held in reserve, in [0,1)

	// Year-over-year capacity losses, consumed front-to-back by Degrade.
	// The slice itself is never mutated; cursor tracks consumption so a
	// battery can be cloned or reset without copying schedule state.
	schedule []float64
	cursor   int
}

// NewBattery builds a battery with the given capacity in kWh, reserve
// fraction and per-year degradation schedule. ReservePct and every schedule
// element must be in [0,1); a ValidationError is returned otherwise.
// CapacityKWh is not validated, matching the lenient construction contract.
func NewBattery(capacityKWh, reservePct float64, schedule []float64) (*Battery, error) {
	if err := checkPct(reservePct, "reserve_pct"); err != nil {
		return nil, err
	}
	if err := checkSchedule(schedule, "degradation_schedule"); err != nil {
		return nil, err
	}
	b := &Battery{CapacityKWh: capacityKWh, ReservePct: reservePct}
	if len(schedule) > 0 {
		b.schedule = append([]float64(nil), schedule...)
	}
	return b, nil
}

// Degrade consumes the next schedule entry and reduces capacity by that
// fraction. Once the schedule is exhausted it is a no-op.
func (b *Battery) Degrade() {
	if b.cursor >= len(b.schedule) {
		return
	}
	p := b.schedule[b.cursor]
	b.cursor++
	b.CapacityKWh -= b.CapacityKWh * p
}

// AccessibleCapacity returns the capacity usable after the reserve margin.
// Recomputed on every call since CapacityKWh mutates over years.
func (b *Battery) AccessibleCapacity() float64 {
	return b.CapacityKWh * (1 - b.ReservePct)
}

// ScheduleRemaining reports how many degradation steps are left.
func (b *Battery) ScheduleRemaining() int {
	return len(b.schedule) - b.cursor
}

// Clone returns an independent copy. The schedule slice is shared because it
// is immutable; the cursor is copied so degradation state diverges.
func (b *Battery) Clone() *Battery {
	c := *b
	return &c
}
