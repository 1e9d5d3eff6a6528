package sim

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/CjMullins87/solar-battery-sim/core/logger"
	"github.com/CjMullins87/solar-battery-sim/core/metrics"
	"github.com/CjMullins87/solar-battery-sim/core/model"
)

// Engine estimates the probability that a battery bank can cover a
// household's net consumption for a run of consecutive days. It owns its
// batteries and profile; multi-year runs degrade that owned state between
// years and can restore the construction state afterwards.
type Engine struct {
	label      string
	numTrials  int
	windowDays int

	batteries []*model.Battery
	profile   *model.ConsumptionProfile

	// Reset points. These hold the caller's original objects, not copies:
	// a reset restores the very references supplied at construction, so
	// mutations the caller made to them in the meantime become visible.
	initBatteries []*model.Battery
	initProfile   *model.ConsumptionProfile

	src      rand.Source
	log      logger.Logger
	recorder metrics.RunRecorder
	workers  int
	copyObjs bool
	runID    string
}

// Option configures an Engine.
type Option func(*Engine)

// WithoutCopy makes the engine operate directly on the caller's batteries
// and profile instead of deep copies. Degradation then mutates the caller's
// objects.
func WithoutCopy() Option {
	return func(e *Engine) { e.copyObjs = false }
}

// WithRandSource injects the randomness source used for consumption draws.
// Tests use a fixed seed here for deterministic outcomes.
func WithRandSource(src rand.Source) Option {
	return func(e *Engine) { e.src = src }
}

// WithLogger injects the logger used for per-year progress.
func WithLogger(l logger.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithRecorder injects the sink receiving per-year run records.
func WithRecorder(r metrics.RunRecorder) Option {
	return func(e *Engine) { e.recorder = r }
}

// WithWorkers fans the trial loop of a year out over n goroutines. Trials
// are independent, so only the draw order changes; outcome ordering stays
// deterministic for a fixed source because each worker writes to fixed
// slice positions with its own derived rng.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 1 {
			e.workers = n
		}
	}
}

// New builds an engine for numTrials trials of windowDays consecutive days.
// numTrials and windowDays are not validated; non-positive values fail
// naturally at run time (a zero trial count yields a NaN probability).
func New(label string, numTrials, windowDays int, batteries []*model.Battery, profile *model.ConsumptionProfile, opts ...Option) (*Engine, error) {
	if profile == nil {
		return nil, fmt.Errorf("sim: profile is required")
	}
	e := &Engine{
		label:         label,
		numTrials:     numTrials,
		windowDays:    windowDays,
		initBatteries: batteries,
		initProfile:   profile,
		recorder:      metrics.NopRecorder{},
		log:           nopLogger{},
		copyObjs:      true,
		workers:       1,
		runID:         uuid.NewString(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.src == nil {
		seed := uint64(time.Now().UnixNano())
		e.src = rand.NewPCG(seed, seed)
	}
	if e.copyObjs {
		e.batteries = make([]*model.Battery, len(batteries))
		for i, b := range batteries {
			e.batteries[i] = b.Clone()
		}
		e.profile = profile.Clone()
	} else {
		e.batteries = batteries
		e.profile = profile
	}
	return e, nil
}

// RunID identifies this engine instance across sinks and exports.
func (e *Engine) RunID() string { return e.runID }

// Label returns the scenario label.
func (e *Engine) Label() string { return e.label }

// RunSingleYear simulates numTrials independent windows against the current
// battery and profile state. Each trial draws windowDays daily net balances
// and survives when accessible capacity plus the summed balance stays
// strictly positive. Unit and profile state are only read, never written;
// the completed run is reported to the recorder sink as year 0.
func (e *Engine) RunSingleYear(withRaw bool) model.SimulationResult {
	return e.runYear(0, withRaw)
}

func (e *Engine) runYear(year int, withRaw bool) model.SimulationResult {
	var totalCap, totalAccessible float64
	for _, b := range e.batteries {
		totalCap += b.CapacityKWh
		totalAccessible += b.AccessibleCapacity()
	}

	outcomes := make([]float64, e.numTrials)
	if e.workers > 1 {
		e.runTrialsParallel(outcomes, totalAccessible)
	} else {
		e.runTrials(outcomes, totalAccessible, e.src)
	}

	success := 0
	for _, o := range outcomes {
		if o > 0 {
			success++
		}
	}

	res := model.SimulationResult{
		SuccessProbability:   round4(float64(success) / float64(e.numTrials)),
		TotalCapacityKWh:     totalCap,
		TotalAccessibleKWh:   totalAccessible,
		AvgNetConsumptionKWh: e.profile.MeanDailyKWh,
	}
	if withRaw {
		res.RawOutcomes = outcomes
	}
	e.record(year, res)
	return res
}

// RunMultiYear runs numYears consecutive years, degrading the profile and
// then every battery after each year. Years run strictly sequentially since
// each depends on the degradation state left by the previous one. When
// reset is true the engine is restored to the caller-supplied objects
// afterwards, even on cancellation. The returned slice is ordered by year.
func (e *Engine) RunMultiYear(ctx context.Context, numYears int, withRaw, reset bool) ([]model.YearResult, error) {
	if reset {
		defer e.resetSimulation()
	}
	results := make([]model.YearResult, 0, numYears)
	for year := 0; year < numYears; year++ {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res := e.runYear(year, withRaw)
		results = append(results, model.YearResult{
			Year:   year,
			Key:    fmt.Sprintf("%s_y%d", e.label, year),
			Result: res,
		})
		e.log.Infof("year %d: p_success=%.4f accessible=%.2f kWh mean_net=%.2f kWh",
			year, res.SuccessProbability, res.TotalAccessibleKWh, res.AvgNetConsumptionKWh)

		e.profile.Degrade()
		for _, b := range e.batteries {
			b.Degrade()
		}
	}
	return results, nil
}

// resetSimulation points the engine back at the objects supplied to New.
// Deliberately not a snapshot: callers sharing those objects see their own
// external mutations reflected after the reset.
func (e *Engine) resetSimulation() {
	e.batteries = e.initBatteries
	e.profile = e.initProfile
}

func (e *Engine) record(year int, res model.SimulationResult) {
	rec := metrics.RunRecord{
		RunID:              e.runID,
		Label:              e.label,
		Year:               year,
		Trials:             e.numTrials,
		WindowDays:         e.windowDays,
		SuccessProbability: res.SuccessProbability,
		TotalCapacityKWh:   res.TotalCapacityKWh,
		TotalAccessibleKWh: res.TotalAccessibleKWh,
		AvgNetKWh:          res.AvgNetConsumptionKWh,
		Time:               time.Now(),
	}
	if err := e.recorder.RecordRun(rec); err != nil {
		e.log.Warnf("record run: %v", err)
	}
	if res.RawOutcomes != nil {
		if or, ok := e.recorder.(metrics.OutcomeRecorder); ok {
			if err := or.RecordOutcomes(rec, res.RawOutcomes); err != nil {
				e.log.Warnf("record outcomes: %v", err)
			}
		}
	}
}

func (e *Engine) runTrials(outcomes []float64, accessible float64, src rand.Source) {
	dist := distuv.Normal{
		Mu:    e.profile.MeanDailyKWh,
		Sigma: e.profile.StdDevDailyKWh,
		Src:   src,
	}
	for i := range outcomes {
		var net float64
		for d := 0; d < e.windowDays; d++ {
			net += dist.Rand()
		}
		outcomes[i] = accessible + net
	}
}

func (e *Engine) runTrialsParallel(outcomes []float64, accessible float64) {
	chunk := (len(outcomes) + e.workers - 1) / e.workers
	var wg sync.WaitGroup
	for lo := 0; lo < len(outcomes); lo += chunk {
		hi := lo + chunk
		if hi > len(outcomes) {
			hi = len(outcomes)
		}
		// Seeds are drawn from the engine source before spawning so the
		// partition of randomness is deterministic for a fixed source.
		seed := e.src.Uint64()
		wg.Add(1)
		go func(part []float64, seed uint64) {
			defer wg.Done()
			e.runTrials(part, accessible, rand.NewPCG(seed, seed))
		}(outcomes[lo:hi], seed)
	}
	wg.Wait()
}

func round4(f float64) float64 {
	return math.Round(f*10000) / 10000
}

// nopLogger keeps the engine decoupled from infra when no logger is wired.
type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)         {}
func (nopLogger) Debugw(string, map[string]any) {}
func (nopLogger) Infof(string, ...any)          {}
func (nopLogger) Warnf(string, ...any)          {}
func (nopLogger) Errorf(string, ...any)         {}
